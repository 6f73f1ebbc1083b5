// Package autocomplete holds the state behind a multi-select autocomplete
// input: the query filter, the selection set, the open/closed panel state and
// the layout anchor used to place the results panel under the input row.
//
// Everything here is synchronous and in-memory. A Widget owns all of its
// state; nothing is shared between instances.
package autocomplete

// Category is a named, ordered list of selectable options.
type Category struct {
	Name    string
	Options []string
}

// CategorySet is an ordered mapping from category name to options. It is
// read-only once built.
type CategorySet struct {
	categories []Category
	index      map[string]int
}

// NewCategorySet builds a CategorySet from categories in display order.
// Options are copied so later changes by the caller are not observed. A
// repeated name replaces the earlier options but keeps the earlier position.
func NewCategorySet(categories ...Category) CategorySet {
	s := CategorySet{index: make(map[string]int, len(categories))}
	for _, c := range categories {
		opts := append([]string(nil), c.Options...)
		if i, ok := s.index[c.Name]; ok {
			s.categories[i].Options = opts
			continue
		}
		s.index[c.Name] = len(s.categories)
		s.categories = append(s.categories, Category{Name: c.Name, Options: opts})
	}
	return s
}

// Len returns the number of categories.
func (s CategorySet) Len() int {
	return len(s.categories)
}

// Keys returns category names in order.
func (s CategorySet) Keys() []string {
	keys := make([]string, len(s.categories))
	for i, c := range s.categories {
		keys[i] = c.Name
	}
	return keys
}

// Options returns a copy of the options for the named category, or nil when
// the category does not exist.
func (s CategorySet) Options(name string) []string {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return append([]string(nil), s.categories[i].Options...)
}

// Categories returns a copy of every category in order.
func (s CategorySet) Categories() []Category {
	out := make([]Category, len(s.categories))
	for i, c := range s.categories {
		out[i] = Category{Name: c.Name, Options: append([]string(nil), c.Options...)}
	}
	return out
}

// OptionCount returns the total number of options across all categories.
func (s CategorySet) OptionCount() int {
	n := 0
	for _, c := range s.categories {
		n += len(c.Options)
	}
	return n
}
