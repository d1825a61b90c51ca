package middleware

import (
	"context"
	"net/http"

	"github.com/dtroode/recommendme-server/internal/api/http/cookie"
	"github.com/dtroode/recommendme-server/internal/api/http/response"
	"github.com/dtroode/recommendme-server/internal/logger"
	"github.com/dtroode/recommendme-server/internal/model"
)

const unauthorizedMessage = "Unauthorized access"

// TokenService resolves an identity from a token cookie value.
type TokenService interface {
	GetIdentity(ctx context.Context, token string) (model.Identity, error)
}

// Authenticate validates the token cookie and injects the identity into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects the request with 401 unless it carries a valid token cookie.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := cookie.Read(r)
		if token == "" {
			response.Error(w, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		identity, err := m.tokenService.GetIdentity(r.Context(), token)
		if err != nil || identity.Email == "" {
			m.logger.Debug("token rejected", "path", r.URL.Path, "error", err)
			response.Error(w, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
