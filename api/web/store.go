package web

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// returns the cookie store that carries the session id between requests
func NewCookieStore(secret []byte, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	store.MaxAge(86400) // matches the session ttl
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode

	return store
}
