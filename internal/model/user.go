package model

// Identity is the caller proven by a valid identity token.
type Identity struct {
	Email string
}

// Owns reports whether the identity is the owner addressed by email.
func (i Identity) Owns(email string) bool {
	return i.Email != "" && i.Email == email
}
