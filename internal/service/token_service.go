package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dtroode/recommendme-server/internal/logger"
	"github.com/dtroode/recommendme-server/internal/model"
)

// TokenService issues and verifies identity tokens on top of a TokenManager.
// Tokens are stateless: there is no revocation list, so a token stays valid
// until it expires even after the cookie is cleared.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

// Issue signs a token for email.
func (s *TokenService) Issue(_ context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("issue token: email is empty")
	}

	token, err := s.manager.GenerateToken(model.Identity{Email: email})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// GetIdentity verifies token and returns the identity it carries.
// Failures wrap model.ErrUnauthorized.
func (s *TokenService) GetIdentity(_ context.Context, token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, fmt.Errorf("%w: %w", model.ErrUnauthorized, model.ErrTokenMissing)
	}

	identity, err := s.manager.ParseToken(token)
	if err != nil {
		if !errors.Is(err, model.ErrTokenInvalid) {
			err = fmt.Errorf("%w: %w", model.ErrTokenInvalid, err)
		}
		s.logger.Debug("Token service: token rejected", "error", err)
		return model.Identity{}, fmt.Errorf("%w: %w", model.ErrUnauthorized, err)
	}

	return identity, nil
}
