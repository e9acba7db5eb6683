package jwt

import (
	"net/http"
	"time"
)

// SetCookie writes the session cookie. Production deployments are served
// cross-site, so the cookie must be Secure with SameSite=None there.
func SetCookie(w http.ResponseWriter, token string, production bool) {
	c := sessionCookie(production)
	c.Value = token
	http.SetCookie(w, c)
}

// ClearCookie expires the session cookie with the same attributes it was set with.
func ClearCookie(w http.ResponseWriter, production bool) {
	c := sessionCookie(production)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

func sessionCookie(production bool) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	if production {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}
