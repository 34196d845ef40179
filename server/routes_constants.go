package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth routes
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteLogout   = "/logout"

	// Protected pages
	RouteHome         = "/home"
	RouteProducts     = "/create-manage-product"
	RouteOptimization = "/page-optimization"

	// Product page actions (form posts; redirect back to the page)
	RouteProductsFilter      = "/create-manage-product/filter"
	RouteProductsSelect      = "/create-manage-product/select"
	RouteProductsSelectClear = "/create-manage-product/select/clear"
	RouteProductsAdd         = "/create-manage-product/add"
	RouteProductsAddSave     = "/create-manage-product/add/save"
	RouteProductsEdit        = "/create-manage-product/edit"
	RouteProductsEditSave    = "/create-manage-product/edit/save"
	RouteProductsView        = "/create-manage-product/view"
	RouteProductsDelete      = "/create-manage-product/delete"
	RouteProductsForecast    = "/create-manage-product/forecast"
	RouteProductsModalClose  = "/create-manage-product/modal/close"

	// Optimization page actions
	RouteOptimizationFilter = "/page-optimization/filter"

	// Operational routes
	RouteMetrics = "/metrics"
)
