package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/recommendme-server/internal/api/http/cookie"
	"github.com/dtroode/recommendme-server/internal/api/http/response"
	"github.com/dtroode/recommendme-server/internal/logger"
	"github.com/dtroode/recommendme-server/internal/validation"
)

type TokenIssuer interface {
	Issue(ctx context.Context, email string) (string, error)
}

// Auth issues and clears the identity cookie.
type Auth struct {
	issuer    TokenIssuer
	cookies   cookie.Policy
	validator *validation.Validator
	logger    *logger.Logger
}

func NewAuth(issuer TokenIssuer, cookies cookie.Policy, validator *validation.Validator, logger *logger.Logger) *Auth {
	return &Auth{
		issuer:    issuer,
		cookies:   cookies,
		validator: validator,
		logger:    logger,
	}
}

// IssueToken handles POST /jwt.
func (h *Auth) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	token, err := h.issuer.Issue(r.Context(), req.Email)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	h.cookies.Set(w, token)
	response.JSON(w, http.StatusOK, response.Success{Success: true})
}

// Logout handles POST /deleteCookieOnLogOut.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)
	response.JSON(w, http.StatusOK, response.Success{Success: true})
}
