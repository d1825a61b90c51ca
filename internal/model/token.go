package model

// TokenManager signs and validates identity tokens.
type TokenManager interface {
	GenerateToken(identity Identity) (string, error)
	ParseToken(token string) (Identity, error)
}
