package autocomplete

import "strings"

// FilteredView is the per-category result of Filter. It has exactly one entry
// per input category, in input order, possibly with no options.
type FilteredView []Category

// Get returns the matching options for the named category.
func (v FilteredView) Get(name string) ([]string, bool) {
	for _, c := range v {
		if c.Name == name {
			return c.Options, true
		}
	}
	return nil, false
}

// Empty reports whether no category has a matching option.
func (v FilteredView) Empty() bool {
	for _, c := range v {
		if len(c.Options) > 0 {
			return false
		}
	}
	return true
}

// Filter returns, for every category, the options whose lowercase form
// contains the lowercase query. Order within a category is preserved and an
// empty query matches everything. No trimming or normalization is applied
// beyond strings.ToLower.
func Filter(set CategorySet, query string) FilteredView {
	q := strings.ToLower(query)
	view := make(FilteredView, 0, len(set.categories))
	for _, c := range set.categories {
		matches := make([]string, 0, len(c.Options))
		for _, opt := range c.Options {
			if strings.Contains(strings.ToLower(opt), q) {
				matches = append(matches, opt)
			}
		}
		view = append(view, Category{Name: c.Name, Options: matches})
	}
	return view
}
