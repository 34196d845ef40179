package potapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/priceopt/pot-web/catalog"
	errs "github.com/priceopt/pot-web/internal/errors"
	"github.com/priceopt/pot-web/session"
)

// Categories fetches the list of category names.
func (c *Client) Categories(ctx context.Context, sess session.Session) ([]string, error) {
	body, err := c.send(ctx, sess, http.MethodGet, "/api/categories/", nil, "Failed to fetch categories")
	if err != nil {
		return nil, err
	}
	var out struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errs.Wrapf(err, "decode categories")
	}
	return out.Categories, nil
}

// Products fetches the full product list.
func (c *Client) Products(ctx context.Context, sess session.Session) ([]catalog.Product, error) {
	body, err := c.send(ctx, sess, http.MethodGet, "/api/products/", nil, "Failed to fetch products")
	if err != nil {
		return nil, err
	}
	var products []catalog.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, errs.Wrapf(err, "decode products")
	}
	return products, nil
}

// CreateProduct submits a fully filled product form. The created product the
// backend echoes back is not used; callers refresh the whole list instead.
func (c *Client) CreateProduct(ctx context.Context, sess session.Session, form catalog.Form) error {
	_, err := c.send(ctx, sess, http.MethodPost, "/api/product/", form, "Failed to submit the product data")
	return err
}

// UpdateProduct sends a partial update carrying only the changed fields.
func (c *Client) UpdateProduct(ctx context.Context, sess session.Session, id int, changed map[string]string) error {
	path := fmt.Sprintf("/api/product/%d/", id)
	_, err := c.send(ctx, sess, http.MethodPut, path, changed, "Failed to update the product. Status: %d")
	return err
}

// DeleteProduct removes a product. The caller drops it from its local lists
// on success; no refetch follows.
func (c *Client) DeleteProduct(ctx context.Context, sess session.Session, id int) error {
	path := fmt.Sprintf("/api/product/%d/", id)
	_, err := c.send(ctx, sess, http.MethodDelete, path, nil, "Failed to delete the product")
	return err
}

// DemandForecast requests a forecast batch for the selected product ids. The
// backend may return fewer forecasts than requested; missing products are the
// caller's problem to render as "no data".
func (c *Client) DemandForecast(ctx context.Context, sess session.Session, productIDs []string) (catalog.ForecastBatch, error) {
	req := struct {
		ProductIDList []string `json:"product_id_list"`
	}{ProductIDList: productIDs}

	body, err := c.send(ctx, sess, http.MethodPost, "/api/demand-forecast/", req, "Failed to fetch the demand forecast")
	if err != nil {
		return nil, err
	}
	var out struct {
		CreatedForecasts catalog.ForecastBatch `json:"created_forecasts"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errs.Wrapf(err, "decode demand forecast")
	}
	return out.CreatedForecasts, nil
}
