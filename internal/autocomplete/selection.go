package autocomplete

// Selection is an order-preserving set of option strings. Options are kept in
// the order they were first selected and never appear twice.
type Selection struct {
	items []string
	index map[string]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{index: make(map[string]struct{})}
}

// Select appends option unless it is already present. It reports whether the
// selection changed. Options are not validated against any category.
func (s *Selection) Select(option string) bool {
	if _, ok := s.index[option]; ok {
		return false
	}
	s.index[option] = struct{}{}
	s.items = append(s.items, option)
	return true
}

// Deselect removes option if present and reports whether it was.
func (s *Selection) Deselect(option string) bool {
	if _, ok := s.index[option]; !ok {
		return false
	}
	delete(s.index, option)
	for i, it := range s.items {
		if it == option {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.items = nil
	s.index = make(map[string]struct{})
}

// Contains reports whether option is selected.
func (s *Selection) Contains(option string) bool {
	_, ok := s.index[option]
	return ok
}

// Len returns the number of selected options.
func (s *Selection) Len() int {
	return len(s.items)
}

// Selected returns a copy of the selected options in selection order.
func (s *Selection) Selected() []string {
	return append([]string{}, s.items...)
}
