package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET /{$}", s.IndexHandler())

	// AUTH
	s.RegisterRouteFunc("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteLogin, ChainMiddleware(s.LoginSubmissionHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteRegister, ChainMiddleware(s.RegisterPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteRegister, ChainMiddleware(s.RegisterSubmissionHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleware()...))

	// PROTECTED PAGES
	s.RegisterRouteFunc("GET "+RouteHome, ChainMiddleware(s.HomePageHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("GET "+RouteProducts, ChainMiddleware(s.ProductsPageHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("GET "+RouteOptimization, ChainMiddleware(s.OptimizationPageHandler(), s.HTMLMiddleware(s.RequireSession())...))

	// PRODUCT PAGE ACTIONS
	s.RegisterRouteFunc("POST "+RouteProductsFilter, ChainMiddleware(s.ProductsFilterHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("POST "+RouteProductsSelect, ChainMiddleware(s.ProductsSelectHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("POST "+RouteProductsSelectClear, ChainMiddleware(s.ProductsSelectClearHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("POST "+RouteProductsAdd, ChainMiddleware(s.AddModalOpenHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("POST "+RouteProductsAddSave, ChainMiddleware(s.AddModalSaveHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("POST "+RouteProductsEdit, ChainMiddleware(s.EditModalOpenHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("POST "+RouteProductsEditSave, ChainMiddleware(s.EditModalSaveHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("POST "+RouteProductsView, ChainMiddleware(s.ViewModalOpenHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("POST "+RouteProductsDelete, ChainMiddleware(s.DeleteProductHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("POST "+RouteProductsForecast, ChainMiddleware(s.ForecastHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("POST "+RouteProductsModalClose, ChainMiddleware(s.ModalCloseHandler(), s.HTMLMiddleware(s.RequireSession())...))

	// OPTIMIZATION PAGE ACTIONS
	s.RegisterRouteFunc("POST "+RouteOptimizationFilter, ChainMiddleware(s.OptimizationFilterHandler(), s.HTMLMiddleware(s.RequireSession())...))

	// OPERATIONAL
	s.RegisterRouteHandler("GET "+RouteMetrics, promhttp.Handler())
}

// IndexHandler sends the bare root to the login entry point.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	}
}
