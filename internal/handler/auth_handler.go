package handler

import (
	"storefront-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ValidateTokenRequest represents the token check request body
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// Login exchanges the admin credentials for the admin token
// POST /admin/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return invalidJSON(c)
		}
	}

	response, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(response)
}

// ValidateToken lets the admin console check a stored token
// POST /admin/token
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var req ValidateTokenRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return invalidJSON(c)
		}
	}

	if err := h.authService.Authorize(req.Token); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
