package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/insightfulai/platform/internal/domain"
	"github.com/insightfulai/platform/internal/repository"
	apperrors "github.com/insightfulai/platform/pkg/util"
)

const currentUserKey = "auth_current_user"

// Middleware validates bearer tokens and resolves the calling account. It
// runs per request with no caching; a token remains valid only while its
// signature verifies, it has not expired, and the account is still active.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs the guard.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes. Every failure mode
// collapses to the same generic unauthorized response.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("could not validate credentials")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("could not validate credentials")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("could not validate credentials")
	}

	user, err := m.users.GetByEmail(c.Context(), claims.Subject)
	if err != nil || !user.Active {
		return apperrors.NewUnauthorized("could not validate credentials")
	}

	c.Locals(currentUserKey, user)
	return c.Next()
}

// CurrentUser retrieves the account resolved by Handle.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(currentUserKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
