package catalog_test

import (
	"testing"

	"github.com/priceopt/pot-web/catalog"
	errs "github.com/priceopt/pot-web/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestModalExclusivity(t *testing.T) {
	var m catalog.Modal
	require.Equal(t, catalog.ModalClosed, m.Kind())

	require.NoError(t, m.OpenEdit(7))
	require.Equal(t, catalog.ModalEdit, m.Kind())
	require.Equal(t, 7, m.ProductID())

	// Opening anything else while a modal is up is refused.
	require.ErrorIs(t, m.OpenAdd(), errs.ErrModalOpen)
	require.ErrorIs(t, m.OpenView(3), errs.ErrModalOpen)
	require.ErrorIs(t, m.OpenForecast(), errs.ErrModalOpen)

	was := m.Close()
	require.Equal(t, catalog.ModalEdit, was)
	require.Equal(t, catalog.ModalClosed, m.Kind())
	require.Zero(t, m.ProductID())
}

func TestModalReopensAfterClose(t *testing.T) {
	var m catalog.Modal

	require.NoError(t, m.OpenAdd())
	require.Equal(t, catalog.ModalAdd, m.Close())

	require.NoError(t, m.OpenForecast())
	require.Equal(t, catalog.ModalForecast, m.Kind())
	require.Equal(t, catalog.ModalForecast, m.Close())

	require.NoError(t, m.OpenView(4))
	require.Equal(t, 4, m.ProductID())
}
