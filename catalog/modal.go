package catalog

import errs "github.com/priceopt/pot-web/internal/errors"

// ModalKind enumerates the product page's modal states. At most one modal is
// open at a time; the single kind field makes that structural rather than a
// convention over independent booleans.
type ModalKind int

const (
	ModalClosed ModalKind = iota
	ModalAdd
	ModalEdit
	ModalView
	ModalForecast
)

// Modal is the product page's modal state machine. Edit and View carry the
// selected product's id.
type Modal struct {
	kind      ModalKind
	productID int
}

func (m *Modal) Kind() ModalKind { return m.kind }

// ProductID is meaningful only while an Edit or View modal is open.
func (m *Modal) ProductID() int { return m.productID }

// OpenAdd transitions Closed -> AddOpen.
func (m *Modal) OpenAdd() error {
	return m.open(ModalAdd, 0)
}

// OpenEdit transitions Closed -> EditOpen for the given product. Role gating
// happens at the call site; the state machine only enforces exclusivity.
func (m *Modal) OpenEdit(productID int) error {
	return m.open(ModalEdit, productID)
}

// OpenView transitions Closed -> ViewOpen for the given product.
func (m *Modal) OpenView(productID int) error {
	return m.open(ModalView, productID)
}

// OpenForecast transitions Closed -> ForecastOpen. The caller opens it only
// after the forecast request succeeded; a failed request leaves the modal
// closed.
func (m *Modal) OpenForecast() error {
	return m.open(ModalForecast, 0)
}

// Close returns the kind that was open so the caller can decide the follow-up:
// closing Add or Edit triggers a catalog refresh, closing Forecast makes the
// forecast column sticky, closing View does nothing.
func (m *Modal) Close() ModalKind {
	was := m.kind
	m.kind = ModalClosed
	m.productID = 0
	return was
}

func (m *Modal) open(kind ModalKind, productID int) error {
	if m.kind != ModalClosed {
		return errs.ErrModalOpen
	}
	m.kind = kind
	m.productID = productID
	return nil
}
