package catalog

// NoForecast is rendered for a product the forecast batch has no value for.
// A missing forecast is explicit, never shown as zero.
const NoForecast = "-"

// Forecast is one predicted demand value, tied to a product by id.
type Forecast struct {
	ProductID int    `json:"product"`
	Value     string `json:"forecast_value"`
}

// ForecastBatch is the set of forecasts returned by one bulk request. A new
// batch replaces the old one wholesale; batches are never merged.
type ForecastBatch []Forecast

// ValueFor returns the forecast value for the product, or NoForecast when the
// batch has none.
func (b ForecastBatch) ValueFor(productID int) string {
	for _, f := range b {
		if f.ProductID == productID {
			return f.Value
		}
	}
	return NoForecast
}

// Has reports whether the batch carries a value for the product.
func (b ForecastBatch) Has(productID int) bool {
	for _, f := range b {
		if f.ProductID == productID {
			return true
		}
	}
	return false
}
