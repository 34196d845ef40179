package server

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"

	errs "github.com/priceopt/pot-web/internal/errors"
	"github.com/priceopt/pot-web/internal/metrics"
)

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName    string
	Error      string
	Registered bool
	Username   string // Preserve username on error
}

// LoginPageHandler displays the login page (GET /login)
func (s *Server) LoginPageHandler() http.HandlerFunc {
	loginTmpl, err := ParseTemplate("login.html")
	if err != nil {
		s.log.Err(err).Msg("Failed to parse login template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if s.sessions.Read(r).Authenticated() {
			http.Redirect(w, r, RouteHome, http.StatusSeeOther)
			return
		}

		data := LoginPageData{
			AppName:    s.config.GetAppName(),
			Error:      r.URL.Query().Get("error"),
			Registered: r.URL.Query().Get("registered") == "1",
			Username:   r.URL.Query().Get("username"),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := loginTmpl.Execute(w, data); err != nil {
			s.log.Err(err).Msg("Failed to render login template")
			http.Error(w, "Failed to render login page", http.StatusInternalServerError)
		}
	}
}

// LoginSubmissionHandler processes the login form submission (POST /login).
// On success it writes all three credential cookies plus the display name and
// starts a fresh visit.
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")
		if username == "" || password == "" {
			s.redirectLoginError(w, r, "Username and Password are required!", username)
			return
		}

		metrics.RecordLoginAttempt()
		creds, err := s.api.Login(r.Context(), username, password)
		if err != nil {
			var ne *errs.NetworkError
			if errs.As(err, &ne) {
				s.redirectLoginError(w, r, "An error occurred during login. Please try again.", username)
				return
			}
			s.redirectLoginError(w, r, err.Error(), username)
			return
		}

		metrics.RecordLoginSuccess()
		s.sessions.Set(w, creds.Token, creds.UserID, creds.UserRole)
		s.sessions.SetDisplayName(w, creds.DisplayName)

		// Any page state of a previous login on this browser is stale now.
		if c, err := r.Cookie(visitCookieName); err == nil && c.Value != "" {
			_ = s.pages.DeleteVisit(c.Value)
		}
		http.SetCookie(w, &http.Cookie{
			Name:     visitCookieName,
			Value:    uuid.NewString(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, RouteHome, http.StatusSeeOther)
	}
}

// RegisterPageData contains data for rendering the registration page
type RegisterPageData struct {
	AppName string
	Error   string
}

// RegisterPageHandler displays the registration page (GET /register)
func (s *Server) RegisterPageHandler() http.HandlerFunc {
	registerTmpl, err := ParseTemplate("register.html")
	if err != nil {
		s.log.Err(err).Msg("Failed to parse register template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := RegisterPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error"),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := registerTmpl.Execute(w, data); err != nil {
			s.log.Err(err).Msg("Failed to render register template")
			http.Error(w, "Failed to render register page", http.StatusInternalServerError)
		}
	}
}

// RegisterSubmissionHandler processes the registration form (POST /register)
// and sends the new user to the login page.
func (s *Server) RegisterSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")
		name := r.FormValue("name")
		email := r.FormValue("email")
		if username == "" || password == "" || name == "" || email == "" {
			http.Redirect(w, r, RouteRegister+"?error="+url.QueryEscape("Please fill all fields."), http.StatusSeeOther)
			return
		}

		if err := s.api.Register(r.Context(), username, password, name, email); err != nil {
			http.Redirect(w, r, RouteRegister+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		http.Redirect(w, r, RouteLogin+"?registered=1", http.StatusSeeOther)
	}
}

// LogoutHandler invalidates the backend token and clears everything the
// frontend holds: credentials, display name and page state. The local
// teardown happens even when the backend call fails.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessions.Read(r)
		if sess.Authenticated() {
			if err := s.api.Logout(r.Context(), sess); err != nil && !errs.Is(err, errs.ErrUnauthorized) {
				s.log.Err(err).Msg("Backend logout failed")
			}
		}

		s.clearVisit(w, r)
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	}
}

// redirectLoginError sends the user back to the login page with an error
// message, preserving the typed username.
func (s *Server) redirectLoginError(w http.ResponseWriter, r *http.Request, errorMsg, username string) {
	redirectURL := RouteLogin + "?error=" + url.QueryEscape(errorMsg)
	if username != "" {
		redirectURL += "&username=" + url.QueryEscape(username)
	}
	http.Redirect(w, r, redirectURL, http.StatusSeeOther)
}
