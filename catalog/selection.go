package catalog

// Selection is the set of product ids (as strings, matching the forecast
// request body) chosen for demand forecasting. It keeps click order, since
// that is the order the ids are sent in.
type Selection struct {
	order []string
	ids   map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle adds the id when absent and removes it when present.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the selected ids in click order.
func (s *Selection) IDs() []string {
	return append([]string(nil), s.order...)
}

func (s *Selection) Len() int {
	return len(s.order)
}

// Clear empties the selection. Only explicit user interaction calls this;
// forecasting does not consume the selection.
func (s *Selection) Clear() {
	s.order = nil
	s.ids = make(map[string]struct{})
}
