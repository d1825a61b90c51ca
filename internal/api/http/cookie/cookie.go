// Package cookie writes and reads the identity token cookie.
package cookie

import "net/http"

// Name is the cookie that carries the identity token.
const Name = "token"

// Policy holds the environment-dependent cookie attributes.
type Policy struct {
	Secure   bool
	SameSite http.SameSite
}

// NewPolicy returns Secure with SameSite=None in production and SameSite=Strict otherwise.
func NewPolicy(production bool) Policy {
	if production {
		return Policy{Secure: true, SameSite: http.SameSiteNoneMode}
	}
	return Policy{Secure: false, SameSite: http.SameSiteStrictMode}
}

// Set writes token as an HTTP-only session cookie.
func (p Policy) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, p.cookie(token, 0))
}

// Clear expires the cookie using the same attributes it was set with.
func (p Policy) Clear(w http.ResponseWriter) {
	http.SetCookie(w, p.cookie("", -1))
}

func (p Policy) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	}
}

// Read returns the token cookie value, or "" when the request has none.
func Read(r *http.Request) string {
	c, err := r.Cookie(Name)
	if err != nil {
		return ""
	}
	return c.Value
}
