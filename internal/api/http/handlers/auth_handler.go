package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/insightfulai/platform/internal/api/dto"
	"github.com/insightfulai/platform/internal/service"
	apperrors "github.com/insightfulai/platform/pkg/util"
)

// AuthHandler exposes the session endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login. Credentials arrive form-encoded under the
// OAuth2 password-grant field names. The failure response is identical for an
// unknown user, a wrong password and an inactive account.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	token, _, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return apperrors.NewUnauthorized("incorrect username or password")
	}

	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Logout handles POST /auth/logout. Tokens are stateless, so nothing is
// revoked server-side; the token stays valid until it expires.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Context(), ""); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"message": "Successfully logged out"})
}

// Register handles POST /auth/register. Registration is not implemented; new
// accounts are provisioned out of band.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "User registration endpoint (to be implemented)",
	})
}

// RecoverPassword handles POST /auth/password-recovery/:email. Not implemented.
func (h *AuthHandler) RecoverPassword(c *fiber.Ctx) error {
	if c.Params("email") == "" {
		return apperrors.NewValidationError("email required", nil)
	}
	return c.JSON(fiber.Map{"message": "Password recovery email sent"})
}

// ResetPassword handles POST /auth/reset-password. Not implemented.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Password reset successful"})
}
