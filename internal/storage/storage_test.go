package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/arzan03/ProductHub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeClock advances by one second on every call so insertion order and
// creation order always agree.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func testUserStore(t *testing.T, users UserStore) {
	ctx := context.Background()

	_, err := users.FindByEmail(ctx, "ada@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	user := &models.User{Name: "Ada", Email: "ada@example.com", Password: "hash"}
	require.NoError(t, users.Insert(ctx, user))
	assert.False(t, user.ID.IsZero())
	assert.False(t, user.CreatedAt.IsZero())

	found, err := users.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Ada", found.Name)
	assert.Equal(t, "hash", found.Password)
}

func testProductStore(t *testing.T, products ProductStore) {
	ctx := context.Background()

	phone := &models.Product{Name: "Galaxy S24", Price: 799, Category: "phones", Company: "Samsung", UserID: "u1"}
	laptop := &models.Product{Name: "ThinkPad", Price: 1299.5, Category: "laptops", Company: "Lenovo", UserID: "u2"}
	require.NoError(t, products.Insert(ctx, phone))
	require.NoError(t, products.Insert(ctx, laptop))

	t.Run("list newest first", func(t *testing.T) {
		list, err := products.ListByCreatedDesc(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, laptop.ID, list[0].ID)
		assert.Equal(t, phone.ID, list[1].ID)
		assert.False(t, list[0].CreatedAt.Before(list[1].CreatedAt))
	})

	t.Run("find by id", func(t *testing.T) {
		found, err := products.FindByID(ctx, phone.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, *phone, *found)

		_, err = products.FindByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = products.FindByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("search", func(t *testing.T) {
		got, err := products.Search(ctx, "Leno")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, laptop.ID, got[0].ID)

		got, err = products.Search(ctx, "phone")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, phone.ID, got[0].ID)

		got, err = products.Search(ctx, "samsung")
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)

		_, err = products.Search(ctx, "(")
		assert.Error(t, err)
	})

	t.Run("update", func(t *testing.T) {
		err := products.UpdateByID(ctx, phone.ID.Hex(), models.ProductInput{
			Name: "Galaxy S25", Price: 899, Category: "phones", Company: "Samsung", UserID: "caller",
		})
		require.NoError(t, err)

		found, err := products.FindByID(ctx, phone.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "Galaxy S25", found.Name)
		assert.Equal(t, models.Price(899), found.Price)
		assert.Equal(t, "caller", found.UserID)
		assert.Equal(t, phone.CreatedAt, found.CreatedAt)

		assert.NoError(t, products.UpdateByID(ctx, primitive.NewObjectID().Hex(), models.ProductInput{}))
		assert.ErrorIs(t, products.UpdateByID(ctx, "bad", models.ProductInput{}), ErrInvalidID)
	})

	t.Run("delete", func(t *testing.T) {
		n, err := products.DeleteByID(ctx, primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Zero(t, n)

		_, err = products.DeleteByID(ctx, "bad")
		assert.ErrorIs(t, err, ErrInvalidID)

		n, err = products.DeleteByID(ctx, phone.ID.Hex())
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		_, err = products.FindByID(ctx, phone.ID.Hex())
		assert.ErrorIs(t, err, ErrNotFound)

		list, err := products.ListByCreatedDesc(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, laptop.ID, list[0].ID)
	})
}

func TestMemoryStore_Users(t *testing.T) {
	testUserStore(t, NewMemoryStore(newFakeClock().Now).Users())
}

func TestMemoryStore_Products(t *testing.T) {
	testProductStore(t, NewMemoryStore(newFakeClock().Now).Products())
}

func TestMemoryStore_ListTieBreaksOnID(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	products := NewMemoryStore(func() time.Time { return fixed }).Products()
	ctx := context.Background()

	first := &models.Product{Name: "first"}
	second := &models.Product{Name: "second"}
	require.NoError(t, products.Insert(ctx, first))
	require.NoError(t, products.Insert(ctx, second))

	list, err := products.ListByCreatedDesc(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Name)
	assert.Equal(t, "first", list[1].Name)
}
