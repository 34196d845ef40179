package catalog

import (
	"strings"
	"sync"
)

// AllCategories is the category filter value that matches every product.
const AllCategories = "All"

// Store keeps the full product list as last fetched from the backend plus the
// filtered view derived from it. A Replace swaps both wholesale, which means a
// refresh always shows the unfiltered set until the user filters again — the
// current search text is deliberately not reapplied.
//
// Refreshes overlap when the user triggers a second action before the first
// fetch settles. Each refresh takes a sequence number from Begin and commits
// with it; Replace discards commits older than the newest one already applied,
// so the last issued refresh wins rather than the last settling one.
type Store struct {
	mu        sync.Mutex
	seq       uint64
	committed uint64
	all       []Product
	visible   []Product
}

func NewStore() *Store {
	return &Store{}
}

// Begin reserves a sequence number for a refresh about to be issued.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Replace installs a freshly fetched product list. It reports false, leaving
// the store untouched, when a newer refresh already committed.
func (s *Store) Replace(seq uint64, products []Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.committed {
		return false
	}
	s.committed = seq
	s.all = append([]Product(nil), products...)
	s.visible = append([]Product(nil), products...)
	return true
}

// Apply recomputes the visible list from the full list. Products must match
// the category exactly (unless the category is "All") and contain the search
// text case-insensitively in their name. Order follows the full list.
func (s *Store) Apply(search, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = Filter(s.all, search, category)
}

// Remove drops the product from both the full and the visible list. Used
// after a confirmed delete; no refetch happens.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.all = removeID(s.all, id)
	s.visible = removeID(s.visible, id)
}

// Get returns the product with the given id from the full list.
func (s *Store) Get(id int) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.all {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// All returns a copy of the full list.
func (s *Store) All() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Product(nil), s.all...)
}

// Visible returns a copy of the filtered view.
func (s *Store) Visible() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Product(nil), s.visible...)
}

// Loaded reports whether any refresh has committed yet.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed > 0
}

// Filter derives the visible subsequence of list. Both predicates AND
// together; the input order is preserved.
func Filter(list []Product, search, category string) []Product {
	filtered := list
	if category != AllCategories && category != "" {
		filtered = keep(filtered, func(p Product) bool {
			return p.Category.Name == category
		})
	}
	if search != "" {
		needle := strings.ToLower(search)
		filtered = keep(filtered, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), needle)
		})
	}
	return filtered
}

func keep(list []Product, match func(Product) bool) []Product {
	out := make([]Product, 0, len(list))
	for _, p := range list {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}

func removeID(list []Product, id int) []Product {
	// Copy rather than compact in place: Filter may hand out the input
	// slice itself, so the two lists can share a backing array.
	out := make([]Product, 0, len(list))
	for _, p := range list {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
