package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/recommendme-server/internal/model"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	id := model.Identity{Email: "a@x.com"}

	tok, err := j.GenerateToken(id)
	require.NoError(t, err)
	got, err := j.ParseToken(tok)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestJWT_EmptyEmail(t *testing.T) {
	j := NewJWT("secret")

	_, err := j.GenerateToken(model.Identity{})
	require.Error(t, err)
}

func TestJWT_Expiry(t *testing.T) {
	issuedAt := time.Now()
	j := NewJWT("secret")
	j.now = func() time.Time { return issuedAt }

	tok, err := j.GenerateToken(model.Identity{Email: "a@x.com"})
	require.NoError(t, err)

	j.now = func() time.Time { return issuedAt.Add(TokenTTL - time.Minute) }
	_, err = j.ParseToken(tok)
	require.NoError(t, err)

	j.now = func() time.Time { return issuedAt.Add(TokenTTL + time.Minute) }
	_, err = j.ParseToken(tok)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWT_ForeignSecret(t *testing.T) {
	tok, err := NewJWT("other").GenerateToken(model.Identity{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = NewJWT("secret").ParseToken(tok)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWT_Malformed(t *testing.T) {
	_, err := NewJWT("secret").ParseToken("not-a-token")
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestJWT_UnsignedRejected(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		Email:            "a@x.com",
	})
	s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWT("secret").ParseToken(s)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestJWT_MissingExpiry(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Email: "a@x.com"})
	s, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWT("secret").ParseToken(s)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}
