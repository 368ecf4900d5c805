package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arzan03/ProductHub/internal/config"
	"github.com/arzan03/ProductHub/internal/db"
	"github.com/arzan03/ProductHub/internal/routes"
	"github.com/arzan03/ProductHub/internal/services"
	"github.com/arzan03/ProductHub/internal/storage"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		users    storage.UserStore
		products storage.ProductStore
		client   *mongo.Client
	)
	switch cfg.StoreDriver {
	case config.DriverMemory:
		slog.Warn("using in-memory store, data is lost on exit")
		mem := storage.NewMemoryStore(nil)
		users, products = mem.Users(), mem.Products()
	default:
		client, err = db.ConnectMongoDB(ctx, cfg.MongoURI)
		if err != nil {
			slog.Error("database connection failed", "err", err)
			os.Exit(1)
		}
		database := client.Database(cfg.MongoDatabase)
		users = storage.NewMongoUserStore(database)
		products = storage.NewMongoProductStore(database)
	}

	tokens := services.NewTokenService(cfg.SecretKey)
	app := routes.New(routes.Services{
		Auth:     services.NewAuthService(users, services.NewPasswordHasher(cfg.BcryptCost), tokens),
		Products: services.NewProductService(products),
		Tokens:   tokens,
	})

	go func() {
		<-ctx.Done()
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			slog.Error("server forced shutdown", "err", err)
		}
	}()

	slog.Info("server starting", "port", cfg.Port, "store", cfg.StoreDriver, "database", cfg.MongoDatabase)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server error", "err", err)
		db.Disconnect(context.Background(), client)
		os.Exit(1)
	}

	db.Disconnect(context.Background(), client)
	slog.Info("server stopped")
}
