package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/insightfulai/platform/internal/api/dto"
	"github.com/insightfulai/platform/internal/auth"
	apperrors "github.com/insightfulai/platform/pkg/util"
)

// UsersHandler exposes account endpoints.
type UsersHandler struct{}

// NewUsersHandler constructs the handler.
func NewUsersHandler() *UsersHandler {
	return &UsersHandler{}
}

// Me handles GET /users/me, returning the authenticated caller's profile.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("could not validate credentials")
	}
	return c.JSON(dto.NewUserResponse(user))
}
