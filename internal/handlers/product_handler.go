package handlers

import (
	"errors"
	"net/url"

	"github.com/arzan03/ProductHub/internal/middleware"
	"github.com/arzan03/ProductHub/internal/models"
	"github.com/arzan03/ProductHub/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	products *services.ProductService
}

func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// AddProduct handles POST /add-product. The owner comes from the body's
// userId, not from the token.
func (h *ProductHandler) AddProduct(c *fiber.Ctx) error {
	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(c)
	}

	product, err := h.products.Create(c.UserContext(), input)
	if err != nil {
		logError(c, "add product failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Something went wrong"})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// ListProducts handles GET /products.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.products.List(c.UserContext())
	if err != nil {
		logError(c, "list products failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if len(products) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No Products Found"})
	}

	return c.JSON(products)
}

// GetProduct handles GET /product/:id. A miss is still a 200.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.products.Get(c.UserContext(), c.Params("id"))
	if errors.Is(err, services.ErrProductNotFound) {
		return c.JSON(fiber.Map{"result": "No Record Found."})
	}
	if err != nil {
		logError(c, "get product failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(product)
}

// UpdateProduct handles PUT /product/:id and reassigns the product to the
// caller.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(c)
	}

	callerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized User"})
	}

	written, err := h.products.Update(c.UserContext(), c.Params("id"), callerID, input)
	if err != nil {
		logError(c, "update product failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Something went wrong"})
	}

	return c.JSON(written)
}

// DeleteProduct handles DELETE /product/:id.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	err := h.products.Delete(c.UserContext(), c.Params("id"))
	if errors.Is(err, services.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	if err != nil {
		logError(c, "delete product failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// SearchProducts handles GET /search/:key. No matches is an empty list.
// The route matches on the raw path, so an encoded "/" stays inside the key
// until it is decoded here.
func (h *ProductHandler) SearchProducts(c *fiber.Ctx) error {
	key, err := url.PathUnescape(c.Params("key"))
	if err != nil {
		logError(c, "search key decode failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	products, err := h.products.Search(c.UserContext(), key)
	if err != nil {
		logError(c, "search products failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	return c.JSON(products)
}
