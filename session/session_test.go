package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/priceopt/pot-web/session"
	"github.com/stretchr/testify/require"
)

func TestAuthenticatedRequiresAllFields(t *testing.T) {
	tests := []struct {
		name string
		sess session.Session
		want bool
	}{
		{"all present", session.Session{Token: "abc", UserID: "1", UserRole: "Admin"}, true},
		{"missing token", session.Session{UserID: "1", UserRole: "Admin"}, false},
		{"missing user id", session.Session{Token: "abc", UserRole: "Admin"}, false},
		{"missing role", session.Session{Token: "abc", UserID: "1"}, false},
		{"only token", session.Session{Token: "abc"}, false},
		{"empty", session.Session{}, false},
		{"display name alone is not auth", session.Session{DisplayName: "John"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.sess.Authenticated())
		})
	}
}

// requestWithCookies replays the Set-Cookie headers of a recorded response as
// request cookies, the way a browser would on the next request.
func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/home", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			continue
		}
		r.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	return r
}

func TestSetThenRead(t *testing.T) {
	store := session.NewStore()

	rec := httptest.NewRecorder()
	store.Set(rec, "abc123", "42", "Admin")
	store.SetDisplayName(rec, "John")

	sess := store.Read(requestWithCookies(t, rec))
	require.Equal(t, "abc123", sess.Token)
	require.Equal(t, "42", sess.UserID)
	require.Equal(t, "Admin", sess.UserRole)
	require.Equal(t, "John", sess.DisplayName)
	require.True(t, sess.Authenticated())
}

func TestClearRemovesEverything(t *testing.T) {
	store := session.NewStore()

	rec := httptest.NewRecorder()
	store.Clear(rec)

	// Every credential cookie, display name included, must be expired.
	names := map[string]bool{}
	for _, c := range rec.Result().Cookies() {
		require.Negative(t, c.MaxAge, "cookie %q should be expired", c.Name)
		names[c.Name] = true
	}
	for _, want := range []string{"token", "user_id", "user_role", "user_name"} {
		require.True(t, names[want], "missing expiry for cookie %q", want)
	}

	sess := store.Read(requestWithCookies(t, rec))
	require.False(t, sess.Authenticated())
	require.Empty(t, sess.DisplayName)
}
