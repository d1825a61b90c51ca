package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/recommendme-server/internal/model"
)

// TokenTTL is how long an identity token stays valid after issue.
const TokenTTL = 24 * time.Hour

// Claims represents JWT claims carrying the caller's email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: secretKey, ttl: TokenTTL, now: time.Now}
}

var _ model.TokenManager = (*JWT)(nil)

// GenerateToken signs a token for the identity that expires after TokenTTL.
func (j *JWT) GenerateToken(identity model.Identity) (string, error) {
	if identity.Email == "" {
		return "", fmt.Errorf("identity email is empty")
	}

	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		Email: identity.Email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign identity token: %w", err)
	}

	return tokenString, nil
}

// ParseToken validates signature and expiry and returns the carried identity.
// Every failure wraps model.ErrTokenInvalid.
func (j *JWT) ParseToken(tokenString string) (model.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	},
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %w", model.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return model.Identity{}, fmt.Errorf("%w: token is not valid", model.ErrTokenInvalid)
	}
	if claims.Email == "" {
		return model.Identity{}, fmt.Errorf("%w: email claim is empty", model.ErrTokenInvalid)
	}
	return model.Identity{Email: claims.Email}, nil
}
