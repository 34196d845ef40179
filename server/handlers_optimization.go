package server

import (
	"net/http"

	"github.com/priceopt/pot-web/catalog"
	"github.com/priceopt/pot-web/server/pagestate"
)

// OptimizationPageData contains data for rendering the price optimization page
type OptimizationPageData struct {
	AppName    string
	UserName   string
	Search     string
	Category   string
	Categories []string
	Products   []catalog.Product
	Flash      string
}

// OptimizationPageHandler renders the read-only pricing optimization page
// (GET /page-optimization). It keeps its own page state, so its filters are
// independent of the catalog manager's.
func (s *Server) OptimizationPageHandler() http.HandlerFunc {
	optimizationTmpl, err := ParseTemplate("optimization.html")
	if err != nil {
		s.log.Err(err).Msg("Failed to parse optimization template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessions.Read(r)
		state := s.pageState(w, r, pagestate.PageOptimization)

		if !state.Catalog.Loaded() {
			if err := s.refreshCatalog(r.Context(), sess, state); err != nil {
				if s.handleUnauthorized(w, r, err) {
					return
				}
				state.Flash = err.Error()
			}
		}

		data := OptimizationPageData{
			AppName:    s.config.GetAppName(),
			UserName:   sess.DisplayName,
			Search:     state.Search,
			Category:   state.Category,
			Categories: state.Categories,
			Products:   state.Catalog.Visible(),
			Flash:      state.TakeFlash(),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := optimizationTmpl.Execute(w, data); err != nil {
			s.log.Err(err).Msg("Failed to render optimization template")
			http.Error(w, "Failed to render optimization page", http.StatusInternalServerError)
		}
	}
}

// OptimizationFilterHandler applies the search text and category filter on
// the optimization page.
func (s *Server) OptimizationFilterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		state := s.pageState(w, r, pagestate.PageOptimization)
		state.Search = r.FormValue("search")
		state.Category = r.FormValue("category")
		if state.Category == "" {
			state.Category = catalog.AllCategories
		}
		state.Catalog.Apply(state.Search, state.Category)
		http.Redirect(w, r, RouteOptimization, http.StatusSeeOther)
	}
}
