// Package catalog holds the client-side mirror of the backend's product list:
// the list itself, the derived filtered view, the selection set used for
// demand forecasting, and the modal state driving the product pages.
package catalog

// Category is the nested category object the backend returns per product.
type Category struct {
	Name string `json:"name"`
}

// Product mirrors the backend product representation. Prices and ratings are
// decimal strings on the wire and are kept that way; the frontend never does
// arithmetic on them.
type Product struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	CostPrice      string   `json:"cost_price"`
	SellingPrice   string   `json:"selling_price"`
	StockAvailable int      `json:"stock_available"`
	UnitsSold      int      `json:"units_sold"`
	CustomerRating string   `json:"customer_rating"`
	OptimizedPrice string   `json:"optimized_price"`
	Category       Category `json:"category"`
}
