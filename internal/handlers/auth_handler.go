package handlers

import (
	"errors"

	"github.com/arzan03/ProductHub/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var request services.SignupRequest
	if err := c.BodyParser(&request); err != nil {
		return invalidBody(c)
	}

	user, token, err := h.auth.Signup(c.UserContext(), request)
	if errors.Is(err, services.ErrUserExists) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User already exist"})
	}
	if err != nil {
		logError(c, "signup failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "something went wrong"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var request services.LoginRequest
	if err := c.BodyParser(&request); err != nil {
		return invalidBody(c)
	}

	user, token, err := h.auth.Login(c.UserContext(), request)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid credentials"})
	case err != nil:
		logError(c, "login failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "something went wrong"})
	}

	return c.JSON(fiber.Map{
		"message": "user login successfully",
		"id":      user.ID.Hex(),
		"name":    user.Name,
		"email":   request.Email,
		"token":   token,
	})
}
