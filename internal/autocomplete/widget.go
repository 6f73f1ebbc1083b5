package autocomplete

import "fmt"

// ViewModel is the state snapshot handed to the presentation layer after
// every event. It is a value; mutating it does not affect the Widget.
type ViewModel struct {
	Query    string
	Filtered FilteredView
	Selected []string
	IsOpen   bool
	// PanelOffset is the anchor height plus the panel gap.
	PanelOffset float64
}

// IsSelected reports whether option is in Selected. Renderers use it to show
// matching options that are already selected as disabled.
func (v ViewModel) IsSelected(option string) bool {
	for _, s := range v.Selected {
		if s == option {
			return true
		}
	}
	return false
}

// Widget is the state of a single autocomplete input.
type Widget struct {
	categories CategorySet
	query      string
	selection  *Selection
	focus      Focus
	anchor     Anchor
}

// Option configures a Widget.
type Option func(*Widget)

// WithPanelGap sets the spacing added to the measured input height when
// positioning the results panel.
func WithPanelGap(gap float64) Option {
	return func(w *Widget) {
		w.anchor = NewAnchor(gap)
	}
}

// NewWidget creates a widget over categories. Query is empty, nothing is
// selected, the panel is closed and no height has been measured.
func NewWidget(categories CategorySet, opts ...Option) *Widget {
	w := &Widget{
		categories: categories,
		selection:  NewSelection(),
		anchor:     NewAnchor(DefaultPanelGap),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Categories returns the category set the widget was built with.
func (w *Widget) Categories() CategorySet {
	return w.categories
}

// Handle applies ev and returns any effect the presentation layer should
// perform. Unknown events are rejected with an error and leave the state
// untouched.
func (w *Widget) Handle(ev Event) (Effect, error) {
	switch e := ev.(type) {
	case QueryChanged:
		w.query = e.Text
	case OptionTapped:
		w.selection.Select(e.Option)
	case RemoveTag:
		w.selection.Deselect(e.Option)
	case ClearAll:
		w.selection.Clear()
	case OpenRequested:
		w.focus.Open()
		return EffectFocusInput, nil
	case ToggleOpen:
		w.focus.Toggle()
	case OutsideTapped:
		w.focus.Close()
	case InputRegionMeasured:
		w.anchor.Measure(e.Height)
	default:
		return EffectNone, fmt.Errorf("unknown autocomplete event %T", ev)
	}
	return EffectNone, nil
}

// Query returns the current query text.
func (w *Widget) Query() string {
	return w.query
}

// Selected returns the selected options in selection order.
func (w *Widget) Selected() []string {
	return w.selection.Selected()
}

// IsOpen reports whether the results panel is open.
func (w *Widget) IsOpen() bool {
	return w.focus.IsOpen()
}

// View derives the current view model. The filtered view is recomputed on
// every call.
func (w *Widget) View() ViewModel {
	return ViewModel{
		Query:       w.query,
		Filtered:    Filter(w.categories, w.query),
		Selected:    w.selection.Selected(),
		IsOpen:      w.focus.IsOpen(),
		PanelOffset: w.anchor.Offset(),
	}
}
