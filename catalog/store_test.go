package catalog_test

import (
	"testing"

	"github.com/priceopt/pot-web/catalog"
	"github.com/stretchr/testify/require"
)

func product(id int, name, category string) catalog.Product {
	return catalog.Product{ID: id, Name: name, Category: catalog.Category{Name: category}}
}

func testProducts() []catalog.Product {
	return []catalog.Product{
		product(1, "Espresso Machine", "Appliances"),
		product(2, "Office Chair", "Furniture"),
		product(3, "Standing Desk", "Furniture"),
		product(4, "desk lamp", "Lighting"),
		product(7, "Coffee Grinder", "Appliances"),
	}
}

func ids(list []catalog.Product) []int {
	out := make([]int, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterCategoryAndSearch(t *testing.T) {
	list := testProducts()

	tests := []struct {
		name     string
		search   string
		category string
		want     []int
	}{
		{"all pass through", "", "All", []int{1, 2, 3, 4, 7}},
		{"category only", "", "Furniture", []int{2, 3}},
		{"search only, case-insensitive", "DESK", "All", []int{3, 4}},
		{"both predicates AND", "desk", "Furniture", []int{3}},
		{"no match", "desk", "Appliances", nil},
		{"unknown category", "", "Toys", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := catalog.Filter(list, tc.search, tc.category)
			if tc.want == nil {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tc.want, ids(got))
		})
	}
}

func TestFilterPreservesOrderAndIsIdempotent(t *testing.T) {
	list := testProducts()

	once := catalog.Filter(list, "e", "All")
	twice := catalog.Filter(once, "e", "All")
	require.Equal(t, once, twice)

	// The result is a subsequence of the input: relative order never changes.
	last := -1
	pos := map[int]int{}
	for i, p := range list {
		pos[p.ID] = i
	}
	for _, p := range once {
		require.Greater(t, pos[p.ID], last)
		last = pos[p.ID]
	}
}

func TestReplaceResetsVisibleList(t *testing.T) {
	s := catalog.NewStore()
	require.False(t, s.Loaded())

	seq := s.Begin()
	require.True(t, s.Replace(seq, testProducts()))
	require.True(t, s.Loaded())

	s.Apply("desk", catalog.AllCategories)
	require.Len(t, s.Visible(), 2)

	// A refresh shows everything again; the filter is not reapplied.
	seq = s.Begin()
	require.True(t, s.Replace(seq, testProducts()))
	require.Len(t, s.Visible(), 5)
}

func TestReplaceDiscardsStaleRefresh(t *testing.T) {
	s := catalog.NewStore()

	first := s.Begin()
	second := s.Begin()

	// The later-issued refresh settles first.
	require.True(t, s.Replace(second, testProducts()))
	require.False(t, s.Replace(first, nil), "stale refresh must be discarded")
	require.Len(t, s.All(), 5)
}

func TestRemoveDropsFromBothLists(t *testing.T) {
	s := catalog.NewStore()
	require.True(t, s.Replace(s.Begin(), testProducts()))
	s.Apply("", "Appliances")

	s.Remove(7)

	require.NotContains(t, ids(s.All()), 7)
	require.NotContains(t, ids(s.Visible()), 7)
	require.Len(t, s.All(), 4)
	require.Len(t, s.Visible(), 1)

	_, ok := s.Get(7)
	require.False(t, ok)
}

func TestRemoveWithPassThroughFilter(t *testing.T) {
	// With no filter applied the visible list is the full list; removing
	// must not corrupt either when they share a backing array.
	s := catalog.NewStore()
	require.True(t, s.Replace(s.Begin(), []catalog.Product{
		product(1, "Espresso Machine", "Appliances"),
		product(2, "Office Chair", "Furniture"),
		product(3, "Standing Desk", "Furniture"),
	}))
	s.Apply("", catalog.AllCategories)

	s.Remove(2)

	require.Equal(t, []int{1, 3}, ids(s.All()))
	require.Equal(t, []int{1, 3}, ids(s.Visible()))
}

func TestForecastBatchMissingProduct(t *testing.T) {
	batch := catalog.ForecastBatch{{ProductID: 3, Value: "120.50"}}

	require.Equal(t, "120.50", batch.ValueFor(3))
	require.Equal(t, catalog.NoForecast, batch.ValueFor(5))
	require.True(t, batch.Has(3))
	require.False(t, batch.Has(5))
}

func TestSelectionToggle(t *testing.T) {
	sel := catalog.NewSelection()
	require.Zero(t, sel.Len())

	sel.Toggle("3")
	sel.Toggle("5")
	sel.Toggle("1")
	require.Equal(t, []string{"3", "5", "1"}, sel.IDs())

	sel.Toggle("5")
	require.Equal(t, []string{"3", "1"}, sel.IDs())
	require.False(t, sel.Has("5"))
	require.True(t, sel.Has("3"))

	sel.Clear()
	require.Zero(t, sel.Len())
}
