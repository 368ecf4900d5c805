package storage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/arzan03/ProductHub/internal/db"
	"github.com/arzan03/ProductHub/internal/models"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoTestDB connects to MONGO_TEST_URI and hands out a throwaway database
// that is dropped when the test ends.
func mongoTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping MongoDB store tests")
	}

	ctx := context.Background()
	client, err := db.ConnectMongoDB(ctx, uri)
	require.NoError(t, err)

	database := client.Database(fmt.Sprintf("producthub_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		_ = database.Drop(ctx)
		db.Disconnect(ctx, client)
	})
	return database
}

func TestMongoUserStore(t *testing.T) {
	testUserStore(t, NewMongoUserStore(mongoTestDB(t)))
}

func TestMongoProductStore(t *testing.T) {
	database := mongoTestDB(t)
	products := NewMongoProductStore(database)

	// createdAt is stored at millisecond resolution.
	testProductStore(t, sleepyInserts{products})
}

type sleepyInserts struct{ ProductStore }

func (s sleepyInserts) Insert(ctx context.Context, p *models.Product) error {
	time.Sleep(5 * time.Millisecond)
	return s.ProductStore.Insert(ctx, p)
}
