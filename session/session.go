// Package session holds the authenticated identity context the frontend keeps
// client-side: the backend token, user id and role in short-lived cookies, and
// the display name alongside them.
package session

import (
	"net/http"
	"time"
)

const (
	cookieToken    = "token"
	cookieUserID   = "user_id"
	cookieUserRole = "user_role"
	cookieUserName = "user_name"

	// CredentialTTL is how long the credential cookies live. The backend
	// expires tokens on its own schedule; this only bounds the client copy.
	CredentialTTL = 24 * time.Hour
)

// Session is the credential snapshot read from a request. Fields are empty
// strings when the corresponding cookie is absent.
type Session struct {
	Token       string
	UserID      string
	UserRole    string
	DisplayName string
}

// Authenticated reports whether the session can be treated as logged in.
// Token, user id and role must all be present; partial presence counts as
// unauthenticated.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.UserID != "" && s.UserRole != ""
}

// Store reads and writes credential cookies. There is no partial-write path:
// Set writes token, user id and role together, Clear removes everything.
type Store struct{}

func NewStore() Store {
	return Store{}
}

// Read returns the session carried by the request's cookies.
func (Store) Read(r *http.Request) Session {
	return Session{
		Token:       cookieValue(r, cookieToken),
		UserID:      cookieValue(r, cookieUserID),
		UserRole:    cookieValue(r, cookieUserRole),
		DisplayName: cookieValue(r, cookieUserName),
	}
}

// Set writes the three credential cookies with a fixed expiry.
func (Store) Set(w http.ResponseWriter, token, userID, userRole string) {
	expires := time.Now().Add(CredentialTTL)
	setCookie(w, cookieToken, token, expires)
	setCookie(w, cookieUserID, userID, expires)
	setCookie(w, cookieUserRole, userRole, expires)
}

// SetDisplayName stores the user's display name next to the credentials. It is
// written separately because login learns it from the response body, not the
// headers.
func (Store) SetDisplayName(w http.ResponseWriter, name string) {
	setCookie(w, cookieUserName, name, time.Now().Add(CredentialTTL))
}

// Clear removes all credential cookies and the cached display name.
func (Store) Clear(w http.ResponseWriter) {
	for _, name := range []string{cookieToken, cookieUserID, cookieUserRole, cookieUserName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
	}
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

func setCookie(w http.ResponseWriter, name, value string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
