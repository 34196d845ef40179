package server

import "net/http"

// HomePageData contains data for rendering the home page
type HomePageData struct {
	AppName  string
	UserName string
}

// HomePageHandler displays the landing page with links to the two product
// views (GET /home, session required).
func (s *Server) HomePageHandler() http.HandlerFunc {
	homeTmpl, err := ParseTemplate("home.html")
	if err != nil {
		s.log.Err(err).Msg("Failed to parse home template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessions.Read(r)
		data := HomePageData{
			AppName:  s.config.GetAppName(),
			UserName: sess.DisplayName,
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := homeTmpl.Execute(w, data); err != nil {
			s.log.Err(err).Msg("Failed to render home template")
			http.Error(w, "Failed to render home page", http.StatusInternalServerError)
		}
	}
}
