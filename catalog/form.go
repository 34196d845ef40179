package catalog

import (
	"strconv"

	errs "github.com/priceopt/pot-web/internal/errors"
)

// Form is the editable subset of a product, exactly as the add/edit form
// captures it. Numeric fields stay strings until the backend parses them.
type Form struct {
	Name           string `json:"name"`
	CategoryName   string `json:"category_name"`
	CostPrice      string `json:"cost_price"`
	SellingPrice   string `json:"selling_price"`
	Description    string `json:"description"`
	StockAvailable string `json:"stock_available"`
	UnitsSold      string `json:"units_sold"`
}

// Validate rejects the form locally when any field is empty. Nothing is sent
// to the backend for an invalid form.
func (f Form) Validate() error {
	fields := []string{
		f.Name, f.CategoryName, f.CostPrice, f.SellingPrice,
		f.Description, f.StockAvailable, f.UnitsSold,
	}
	for _, v := range fields {
		if v == "" {
			return &errs.ValidationError{Message: "Please fill all fields."}
		}
	}
	return nil
}

// FormFromProduct converts a fetched product into the form the edit modal is
// seeded with.
func FormFromProduct(p Product) Form {
	return Form{
		Name:           p.Name,
		CategoryName:   p.Category.Name,
		CostPrice:      p.CostPrice,
		SellingPrice:   p.SellingPrice,
		Description:    p.Description,
		StockAvailable: strconv.Itoa(p.StockAvailable),
		UnitsSold:      strconv.Itoa(p.UnitsSold),
	}
}

// Diff returns only the fields of edited that differ from original, keyed by
// their wire names. An update sends just this map.
func Diff(original, edited Form) map[string]string {
	changed := map[string]string{}
	pairs := []struct {
		key      string
		old, new string
	}{
		{"name", original.Name, edited.Name},
		{"category_name", original.CategoryName, edited.CategoryName},
		{"cost_price", original.CostPrice, edited.CostPrice},
		{"selling_price", original.SellingPrice, edited.SellingPrice},
		{"description", original.Description, edited.Description},
		{"stock_available", original.StockAvailable, edited.StockAvailable},
		{"units_sold", original.UnitsSold, edited.UnitsSold},
	}
	for _, p := range pairs {
		if p.old != p.new {
			changed[p.key] = p.new
		}
	}
	return changed
}

// UpdatePayload validates the edited form and diffs it against the original.
// An edit identical to the original is rejected locally with ErrNoChanges;
// no request may be issued for it.
func UpdatePayload(original Product, edited Form) (map[string]string, error) {
	if err := edited.Validate(); err != nil {
		return nil, err
	}
	changed := Diff(FormFromProduct(original), edited)
	if len(changed) == 0 {
		return nil, errs.ErrNoChanges
	}
	return changed, nil
}
