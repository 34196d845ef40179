package pagestate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	errs "github.com/priceopt/pot-web/internal/errors"
	"github.com/priceopt/pot-web/server/pagestate"
)

func TestUpsertAndGet(t *testing.T) {
	repo := pagestate.NewInMemoryRepo()

	state := pagestate.NewState()
	state.Search = "laptop"
	require.NoError(t, repo.Upsert("visit-1", pagestate.PageProducts, state))

	got, err := repo.Get("visit-1", pagestate.PageProducts)
	require.NoError(t, err)
	require.Equal(t, "laptop", got.Search)

	_, err = repo.Get("visit-1", pagestate.PageOptimization)
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = repo.Get("visit-2", pagestate.PageProducts)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUpsertValidatesKeys(t *testing.T) {
	repo := pagestate.NewInMemoryRepo()

	require.Error(t, repo.Upsert("", pagestate.PageProducts, pagestate.NewState()))
	require.Error(t, repo.Upsert("visit-1", "", pagestate.NewState()))
}

func TestDeleteVisitDropsAllPages(t *testing.T) {
	repo := pagestate.NewInMemoryRepo()

	require.NoError(t, repo.Upsert("visit-1", pagestate.PageProducts, pagestate.NewState()))
	require.NoError(t, repo.Upsert("visit-1", pagestate.PageOptimization, pagestate.NewState()))
	require.NoError(t, repo.Upsert("visit-2", pagestate.PageProducts, pagestate.NewState()))

	require.NoError(t, repo.DeleteVisit("visit-1"))

	_, err := repo.Get("visit-1", pagestate.PageProducts)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = repo.Get("visit-1", pagestate.PageOptimization)
	require.ErrorIs(t, err, errs.ErrNotFound)

	got, err := repo.Get("visit-2", pagestate.PageProducts)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestTakeFlashIsOneShot(t *testing.T) {
	state := pagestate.NewState()
	state.Flash = "Unable to update the product"

	require.Equal(t, "Unable to update the product", state.TakeFlash())
	require.Empty(t, state.TakeFlash())
}
