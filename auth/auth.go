// Package auth manages the per-browser cookie session: the signed-in user
// and the one-shot flash message.
package auth

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/VSTodd/contact-list/config"
)

var Store *sessions.CookieStore

const SessionName = "contacts-session"

const (
	userKey  = "user"
	flashKey = "message"
)

// InitStore builds the cookie store from the configured session key.
// Two 32-byte keys are derived from it: one for signing, one for content
// encryption.
func InitStore() {
	authKey := sha256.Sum256([]byte(config.AppConfig.SessionKey + "auth"))
	encKey := sha256.Sum256([]byte(config.AppConfig.SessionKey + "encryption"))

	Store = sessions.NewCookieStore(authKey[:], encKey[:])
	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   config.AppConfig.ListenPort != 8080, // default to true unless dev port
		SameSite: http.SameSiteLaxMode,
	}
}

// CurrentUser returns the signed-in username, or "" when signed out.
func CurrentUser(r *http.Request) string {
	session, _ := Store.Get(r, SessionName)
	if user, ok := session.Values[userKey].(string); ok {
		return user
	}
	return ""
}

// SetUser marks the session as signed in.
func SetUser(w http.ResponseWriter, r *http.Request, username string) {
	session, _ := Store.Get(r, SessionName)
	session.Values[userKey] = username
	session.Save(r, w)
}

// ClearUser signs the session out. The session itself survives so a flash
// set afterwards still reaches the browser.
func ClearUser(w http.ResponseWriter, r *http.Request) {
	session, _ := Store.Get(r, SessionName)
	delete(session.Values, userKey)
	session.Save(r, w)
}

// SetFlash stores a message to be shown on the next rendered page.
func SetFlash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := Store.Get(r, SessionName)
	session.Values[flashKey] = message
	session.Save(r, w)
}

// PopFlash returns the pending flash message and clears it, so a message is
// rendered at most once.
func PopFlash(w http.ResponseWriter, r *http.Request) string {
	session, _ := Store.Get(r, SessionName)
	message, ok := session.Values[flashKey].(string)
	if !ok {
		return ""
	}
	delete(session.Values, flashKey)
	session.Save(r, w)
	return message
}
