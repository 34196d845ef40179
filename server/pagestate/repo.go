// Package pagestate keeps what a browser SPA would hold in component state:
// one State per (visit, page), living only for the duration of a logged-in
// visit. It is dropped on logout and on 401 teardown.
package pagestate

import (
	"github.com/priceopt/pot-web/catalog"
)

// Page names the two product views that carry state.
const (
	PageProducts     = "products"
	PageOptimization = "optimization"
)

// State is the server-side mirror of one page's client state.
type State struct {
	// Filter inputs as last entered by the user.
	Search   string
	Category string

	// Category names for the filter dropdown, fetched with the products.
	Categories []string

	// The product list and its derived filtered view.
	Catalog *catalog.Store

	// Products ticked for demand forecasting (products page only).
	Selection *catalog.Selection

	// Which modal, if any, is open.
	Modal catalog.Modal

	// Last forecast batch; replaced wholesale by each new request.
	Forecasts catalog.ForecastBatch

	// Once a forecast has been computed the forecast column stays visible
	// for the rest of the visit.
	ShowForecastColumn bool

	// One-shot error message rendered on the next page load.
	Flash string
}

// NewState seeds an empty page state with the default filter values.
func NewState() *State {
	return &State{
		Category:  catalog.AllCategories,
		Catalog:   catalog.NewStore(),
		Selection: catalog.NewSelection(),
	}
}

// TakeFlash returns the pending flash message and clears it.
func (s *State) TakeFlash() string {
	msg := s.Flash
	s.Flash = ""
	return msg
}

// Repo stores page state per visit and page.
type Repo interface {
	Upsert(visitID, page string, state *State) error
	Get(visitID, page string) (*State, error)
	// DeleteVisit drops every page's state for a visit (logout, 401).
	DeleteVisit(visitID string) error
}
