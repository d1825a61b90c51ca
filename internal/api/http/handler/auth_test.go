package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/recommendme-server/internal/api/http/cookie"
	"github.com/dtroode/recommendme-server/internal/mocks"
	"github.com/dtroode/recommendme-server/internal/testutil"
	"github.com/dtroode/recommendme-server/internal/validation"
)

func TestAuth_IssueToken(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(*mocks.TokenIssuer)
		wantStatus int
		wantCookie bool
	}{
		{
			name: "issued",
			body: `{"email":"a@x.com"}`,
			mockSetup: func(issuer *mocks.TokenIssuer) {
				issuer.On("Issue", mock.Anything, "a@x.com").Return("signed", nil)
			},
			wantStatus: http.StatusOK,
			wantCookie: true,
		},
		{
			name:       "invalid email",
			body:       `{"email":"nope"}`,
			mockSetup:  func(issuer *mocks.TokenIssuer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "signing failure",
			body: `{"email":"a@x.com"}`,
			mockSetup: func(issuer *mocks.TokenIssuer) {
				issuer.On("Issue", mock.Anything, "a@x.com").Return("", errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := mocks.NewTokenIssuer(t)
			tt.mockSetup(issuer)
			h := NewAuth(issuer, cookie.NewPolicy(false), validation.New(), testutil.MakeNoopLogger())

			rec := serve(http.MethodPost, "/jwt", h.IssueToken, "/jwt", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			cookies := rec.Result().Cookies()
			if !tt.wantCookie {
				assert.Empty(t, cookies)
				return
			}
			require.Len(t, cookies, 1)
			assert.Equal(t, "signed", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
			assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
			assert.JSONEq(t, `{"success":true}`, rec.Body.String())
		})
	}
}

func TestAuth_Logout(t *testing.T) {
	h := NewAuth(mocks.NewTokenIssuer(t), cookie.NewPolicy(true), validation.New(), testutil.MakeNoopLogger())

	rec := serve(http.MethodPost, "/deleteCookieOnLogOut", h.Logout, "/deleteCookieOnLogOut", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	header := rec.Header().Get("Set-Cookie")
	assert.Contains(t, header, "token=;")
	assert.Contains(t, header, "Max-Age=0")
	assert.Contains(t, header, "SameSite=None")
}

func TestRoot(t *testing.T) {
	rec := serve(http.MethodGet, "/", Root, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello My Recommendation!", rec.Body.String())
}
