package pagestate

import (
	"fmt"
	"sync"

	errs "github.com/priceopt/pot-web/internal/errors"
)

// InMemoryRepo is an in-memory implementation of Repo.
type InMemoryRepo struct {
	mu     sync.RWMutex
	states map[string]map[string]*State // visitID -> page -> State
}

// NewInMemoryRepo creates a new in-memory page state repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		states: make(map[string]map[string]*State),
	}
}

// Upsert creates or replaces the state of one page for a visit.
func (r *InMemoryRepo) Upsert(visitID, page string, state *State) error {
	if visitID == "" {
		return fmt.Errorf("visitID is required")
	}
	if page == "" {
		return fmt.Errorf("page is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.states[visitID]; !ok {
		r.states[visitID] = make(map[string]*State)
	}
	r.states[visitID][page] = state
	return nil
}

// Get retrieves the state of one page for a visit.
func (r *InMemoryRepo) Get(visitID, page string) (*State, error) {
	if visitID == "" {
		return nil, fmt.Errorf("visitID is required")
	}
	if page == "" {
		return nil, fmt.Errorf("page is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	pages, ok := r.states[visitID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	state, ok := pages[page]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return state, nil
}

// DeleteVisit removes all page state belonging to a visit.
func (r *InMemoryRepo) DeleteVisit(visitID string) error {
	if visitID == "" {
		return fmt.Errorf("visitID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, visitID)
	return nil
}

var _ Repo = (*InMemoryRepo)(nil)
