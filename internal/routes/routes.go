package routes

import (
	"errors"
	"log/slog"

	"github.com/arzan03/ProductHub/internal/handlers"
	"github.com/arzan03/ProductHub/internal/middleware"
	"github.com/arzan03/ProductHub/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type Services struct {
	Auth     *services.AuthService
	Products *services.ProductService
	Tokens   *services.TokenService
}

// New builds the fiber app with every route registered.
func New(svc Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "ProductHub",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := handlers.NewAuthHandler(svc.Auth)
	app.Post("/signup", auth.Signup)
	app.Post("/login", auth.Login)

	products := handlers.NewProductHandler(svc.Products)
	requireAuth := middleware.AuthMiddleware(svc.Tokens)
	app.Post("/add-product", requireAuth, products.AddProduct)
	app.Get("/products", requireAuth, products.ListProducts)
	app.Get("/product/:id", requireAuth, products.GetProduct)
	app.Put("/product/:id", requireAuth, products.UpdateProduct)
	app.Delete("/product/:id", requireAuth, products.DeleteProduct)
	app.Get("/search/:key", requireAuth, products.SearchProducts)

	return app
}

// errorHandler renders errors that escape a handler, such as unknown routes
// and recovered panics.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	if code >= fiber.StatusInternalServerError {
		slog.Error("unhandled error",
			"err", err,
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.Locals("requestid"))
		message = "Internal Server Error"
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
