package server

import (
	"net/http"

	"github.com/google/uuid"

	errs "github.com/priceopt/pot-web/internal/errors"
	"github.com/priceopt/pot-web/internal/metrics"
)

const visitCookieName = "visit_id"

// RequireSession guards protected pages. It checks the credential cookies
// once, at request time: token, user id and role must all be present,
// otherwise the request is sent to the login page. It never talks to the
// backend — a stale token passes the guard and is evicted by the first 401 a
// handler runs into.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !s.sessions.Read(r).Authenticated() {
				http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
				return
			}
			next(w, r)
		}
	}
}

// handleUnauthorized tears the session down after any backend call returned
// 401: credentials and page state are dropped together and the user lands on
// the login page. Reports true when err was a 401 and the response has been
// written. Any other error is the caller's to surface.
func (s *Server) handleUnauthorized(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errs.Is(err, errs.ErrUnauthorized) {
		return false
	}

	s.log.Warn().Str("path", r.URL.Path).Msg("Backend returned 401, evicting session")
	metrics.RecordSessionEviction()
	s.clearVisit(w, r)
	http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	return true
}

// clearVisit removes the credential cookies and all page state for the visit.
func (s *Server) clearVisit(w http.ResponseWriter, r *http.Request) {
	s.sessions.Clear(w)
	if c, err := r.Cookie(visitCookieName); err == nil && c.Value != "" {
		if err := s.pages.DeleteVisit(c.Value); err != nil {
			s.log.Err(err).Msg("Failed to delete page state")
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     visitCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// visitID returns the visit identifier the page state is keyed by, minting
// one when the request does not carry it yet.
func (s *Server) visitID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(visitCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     visitCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
