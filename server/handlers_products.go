package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/priceopt/pot-web/catalog"
	errs "github.com/priceopt/pot-web/internal/errors"
	"github.com/priceopt/pot-web/roles"
	"github.com/priceopt/pot-web/server/pagestate"
	"github.com/priceopt/pot-web/session"
)

// productRow is one table row: the product plus its per-visit view state.
type productRow struct {
	catalog.Product
	Selected bool
	Forecast string
}

// modalView tells the template which modal to render and with what.
type modalView struct {
	Kind      string // "", "add", "edit", "view", "forecast"
	ProductID int
	Form      catalog.Form
	Product   catalog.Product
	Rows      []productRow // forecast modal: only products the batch covers
}

// ProductsPageData contains data for rendering the catalog manager page
type ProductsPageData struct {
	AppName            string
	UserName           string
	Caps               roles.Capabilities
	Search             string
	Category           string
	Categories         []string
	Products           []productRow
	ShowForecastColumn bool
	HasSelection       bool
	Modal              modalView
	Flash              string
}

// pageState fetches (or seeds) the state of one page for the current visit.
func (s *Server) pageState(w http.ResponseWriter, r *http.Request, page string) *pagestate.State {
	visitID := s.visitID(w, r)
	state, err := s.pages.Get(visitID, page)
	if err != nil {
		state = pagestate.NewState()
		if err := s.pages.Upsert(visitID, page, state); err != nil {
			s.log.Err(err).Str("page", page).Msg("Failed to store page state")
		}
	}
	return state
}

// refreshCatalog refetches categories and products and replaces the page's
// lists wholesale. The sequence number makes an overlapping older refresh a
// no-op instead of clobbering a newer one.
func (s *Server) refreshCatalog(ctx context.Context, sess session.Session, state *pagestate.State) error {
	seq := state.Catalog.Begin()

	categories, err := s.api.Categories(ctx, sess)
	if err != nil {
		return err
	}
	products, err := s.api.Products(ctx, sess)
	if err != nil {
		return err
	}

	if state.Catalog.Replace(seq, products) {
		state.Categories = categories
	}
	return nil
}

// ProductsPageHandler renders the catalog manager (GET /create-manage-product).
func (s *Server) ProductsPageHandler() http.HandlerFunc {
	productsTmpl, err := ParseTemplate("products.html")
	if err != nil {
		s.log.Err(err).Msg("Failed to parse products template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessions.Read(r)
		state := s.pageState(w, r, pagestate.PageProducts)

		if !state.Catalog.Loaded() {
			if err := s.refreshCatalog(r.Context(), sess, state); err != nil {
				if s.handleUnauthorized(w, r, err) {
					return
				}
				state.Flash = err.Error()
			}
		}

		data := ProductsPageData{
			AppName:            s.config.GetAppName(),
			UserName:           sess.DisplayName,
			Caps:               roles.ActionsFor(sess.UserRole),
			Search:             state.Search,
			Category:           state.Category,
			Categories:         state.Categories,
			ShowForecastColumn: state.ShowForecastColumn,
			HasSelection:       state.Selection.Len() > 0,
			Flash:              state.TakeFlash(),
		}
		for _, p := range state.Catalog.Visible() {
			data.Products = append(data.Products, productRow{
				Product:  p,
				Selected: state.Selection.Has(strconv.Itoa(p.ID)),
				Forecast: state.Forecasts.ValueFor(p.ID),
			})
		}
		data.Modal = s.modalView(state)

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := productsTmpl.Execute(w, data); err != nil {
			s.log.Err(err).Msg("Failed to render products template")
			http.Error(w, "Failed to render products page", http.StatusInternalServerError)
		}
	}
}

func (s *Server) modalView(state *pagestate.State) modalView {
	switch state.Modal.Kind() {
	case catalog.ModalAdd:
		return modalView{Kind: "add"}
	case catalog.ModalEdit:
		id := state.Modal.ProductID()
		p, ok := state.Catalog.Get(id)
		if !ok {
			state.Modal.Close()
			return modalView{}
		}
		return modalView{Kind: "edit", ProductID: id, Form: catalog.FormFromProduct(p)}
	case catalog.ModalView:
		id := state.Modal.ProductID()
		p, ok := state.Catalog.Get(id)
		if !ok {
			state.Modal.Close()
			return modalView{}
		}
		return modalView{Kind: "view", ProductID: id, Product: p}
	case catalog.ModalForecast:
		view := modalView{Kind: "forecast"}
		// Only products with a computed forecast appear in the modal; the
		// main table shows the explicit no-data marker for the rest.
		for _, p := range state.Catalog.Visible() {
			if state.Forecasts.Has(p.ID) {
				view.Rows = append(view.Rows, productRow{Product: p, Forecast: state.Forecasts.ValueFor(p.ID)})
			}
		}
		return view
	default:
		return modalView{}
	}
}

// ProductsFilterHandler applies the search text and category filter.
func (s *Server) ProductsFilterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		state := s.pageState(w, r, pagestate.PageProducts)
		state.Search = r.FormValue("search")
		state.Category = r.FormValue("category")
		if state.Category == "" {
			state.Category = catalog.AllCategories
		}
		state.Catalog.Apply(state.Search, state.Category)
		http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
	}
}

// ProductsSelectHandler toggles a product in the forecast selection.
func (s *Server) ProductsSelectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		state := s.pageState(w, r, pagestate.PageProducts)
		if id := r.FormValue("id"); id != "" {
			state.Selection.Toggle(id)
		}
		http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
	}
}

// ProductsSelectClearHandler unticks every selected product.
func (s *Server) ProductsSelectClearHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := s.pageState(w, r, pagestate.PageProducts)
		state.Selection.Clear()
		http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
	}
}

// AddModalOpenHandler opens the add-product modal. Always permitted.
func (s *Server) AddModalOpenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := s.pageState(w, r, pagestate.PageProducts)
		if err := state.Modal.OpenAdd(); err != nil {
			state.Flash = err.Error()
		}
		http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
	}
}

// AddModalSaveHandler validates and submits a new product, then closes the
// modal and refreshes the catalog.
func (s *Server) AddModalSaveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		sess := s.sessions.Read(r)
		state := s.pageState(w, r, pagestate.PageProducts)

		form := productFormFromRequest(r)
		if err := form.Validate(); err != nil {
			state.Flash = err.Error()
			http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
			return
		}

		if err := s.api.CreateProduct(r.Context(), sess, form); err != nil {
			if s.handleUnauthorized(w, r, err) {
				return
			}
			state.Flash = err.Error()
			http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
			return
		}

		state.Modal.Close()
		s.refreshAfterModal(w, r, sess, state)
	}
}

// EditModalOpenHandler opens the edit modal for a product. Gated on the edit
// capability of the current role.
func (s *Server) EditModalOpenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		sess := s.sessions.Read(r)
		if !roles.ActionsFor(sess.UserRole).CanEdit {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		state := s.pageState(w, r, pagestate.PageProducts)
		id, err := strconv.Atoi(r.FormValue("id"))
		if err != nil {
			http.Error(w, "Invalid product id", http.StatusBadRequest)
			return
		}
		if err := state.Modal.OpenEdit(id); err != nil {
			state.Flash = err.Error()
		}
		http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
	}
}

// EditModalSaveHandler diffs the edited form against the product and sends
// only the changed fields. An unchanged form is rejected locally without a
// request.
func (s *Server) EditModalSaveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		sess := s.sessions.Read(r)
		if !roles.ActionsFor(sess.UserRole).CanEdit {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		state := s.pageState(w, r, pagestate.PageProducts)
		id, err := strconv.Atoi(r.FormValue("id"))
		if err != nil {
			http.Error(w, "Invalid product id", http.StatusBadRequest)
			return
		}
		original, ok := state.Catalog.Get(id)
		if !ok {
			state.Flash = errs.ErrProductNotFound.Error()
			http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
			return
		}

		changed, err := catalog.UpdatePayload(original, productFormFromRequest(r))
		if err != nil {
			if errs.Is(err, errs.ErrNoChanges) {
				state.Flash = "No changes were made."
			} else {
				state.Flash = err.Error()
			}
			http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
			return
		}

		if err := s.api.UpdateProduct(r.Context(), sess, id, changed); err != nil {
			if s.handleUnauthorized(w, r, err) {
				return
			}
			state.Flash = err.Error()
			http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
			return
		}

		state.Modal.Close()
		s.refreshAfterModal(w, r, sess, state)
	}
}

// ViewModalOpenHandler opens the read-only product modal. Always permitted.
func (s *Server) ViewModalOpenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		state := s.pageState(w, r, pagestate.PageProducts)
		id, err := strconv.Atoi(r.FormValue("id"))
		if err != nil {
			http.Error(w, "Invalid product id", http.StatusBadRequest)
			return
		}
		if err := state.Modal.OpenView(id); err != nil {
			state.Flash = err.Error()
		}
		http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
	}
}

// DeleteProductHandler deletes a product and removes it from both local
// lists. No refetch happens; a failed delete leaves the lists unchanged.
func (s *Server) DeleteProductHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		sess := s.sessions.Read(r)
		if !roles.ActionsFor(sess.UserRole).CanDelete {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		state := s.pageState(w, r, pagestate.PageProducts)
		id, err := strconv.Atoi(r.FormValue("id"))
		if err != nil {
			http.Error(w, "Invalid product id", http.StatusBadRequest)
			return
		}

		if err := s.api.DeleteProduct(r.Context(), sess, id); err != nil {
			if s.handleUnauthorized(w, r, err) {
				return
			}
			state.Flash = err.Error()
			http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
			return
		}

		state.Catalog.Remove(id)
		http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
	}
}

// ForecastHandler requests a demand forecast for the selected products and
// opens the forecast modal with the returned batch. A failed request leaves
// the selection and the modal untouched.
func (s *Server) ForecastHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessions.Read(r)
		state := s.pageState(w, r, pagestate.PageProducts)

		if state.Selection.Len() == 0 {
			http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
			return
		}

		batch, err := s.api.DemandForecast(r.Context(), sess, state.Selection.IDs())
		if err != nil {
			if s.handleUnauthorized(w, r, err) {
				return
			}
			state.Flash = err.Error()
			http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
			return
		}

		// The new batch replaces the previous one wholesale.
		state.Forecasts = batch
		if err := state.Modal.OpenForecast(); err != nil {
			state.Flash = err.Error()
		}
		http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
	}
}

// ModalCloseHandler closes whichever modal is open. Closing the add or edit
// modal refreshes the catalog; closing the forecast modal makes the forecast
// column sticky for the rest of the visit; closing the view modal does
// nothing else.
func (s *Server) ModalCloseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessions.Read(r)
		state := s.pageState(w, r, pagestate.PageProducts)

		switch state.Modal.Close() {
		case catalog.ModalAdd, catalog.ModalEdit:
			s.refreshAfterModal(w, r, sess, state)
			return
		case catalog.ModalForecast:
			state.ShowForecastColumn = true
		}
		http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
	}
}

// refreshAfterModal runs the full refetch that follows closing the add or
// edit modal, then redirects back to the page.
func (s *Server) refreshAfterModal(w http.ResponseWriter, r *http.Request, sess session.Session, state *pagestate.State) {
	if err := s.refreshCatalog(r.Context(), sess, state); err != nil {
		if s.handleUnauthorized(w, r, err) {
			return
		}
		state.Flash = err.Error()
	}
	http.Redirect(w, r, RouteProducts, http.StatusSeeOther)
}

func productFormFromRequest(r *http.Request) catalog.Form {
	return catalog.Form{
		Name:           r.FormValue("name"),
		CategoryName:   r.FormValue("category_name"),
		CostPrice:      r.FormValue("cost_price"),
		SellingPrice:   r.FormValue("selling_price"),
		Description:    r.FormValue("description"),
		StockAvailable: r.FormValue("stock_available"),
		UnitsSold:      r.FormValue("units_sold"),
	}
}
