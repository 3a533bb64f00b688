package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/insightfulai/platform/internal/auth"
	"github.com/insightfulai/platform/internal/config"
	"github.com/insightfulai/platform/internal/domain"
	"github.com/insightfulai/platform/internal/repository"
)

// ErrInvalidCredentials is the single failure returned for every way a login
// can go wrong: unknown email, wrong password, inactive account. Callers must
// not be able to tell these apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService coordinates credential checks and token issuance.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
	logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.AccessTokenTTLMinutes)*time.Minute),
		logger:   logger,
	}
}

// Authenticate resolves an email/password pair to an account. It is a pure
// decision function: lookup, bcrypt compare, active check, no side effects.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Debug("login lookup failed", zap.String("email", email), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.logger.Debug("login password mismatch", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		s.logger.Debug("login for inactive account", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates and issues a signed bearer token for the account.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", time.Time{}, err
	}
	return s.tokenMgr.GenerateToken(user.Email)
}

// Logout is a no-op: tokens are stateless and stay valid until expiry. The
// endpoint exists for client symmetry; true revocation would need a denylist.
func (s *AuthService) Logout(_ context.Context, _ string) error {
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
