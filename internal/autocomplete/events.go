package autocomplete

import "fmt"

// Event is an inbound command from the presentation layer. Each event is
// applied synchronously by Widget.Handle in the order it is delivered.
type Event interface {
	// Kind is a short stable name, used for logging.
	Kind() string
}

// QueryChanged replaces the query with Text verbatim.
type QueryChanged struct{ Text string }

// OptionTapped selects Option.
type OptionTapped struct{ Option string }

// RemoveTag deselects Option.
type RemoveTag struct{ Option string }

// ClearAll empties the selection.
type ClearAll struct{}

// OpenRequested is a tap inside the input region. It opens the panel and asks
// the presentation layer to focus the text-entry control.
type OpenRequested struct{}

// ToggleOpen is a tap on the arrow affordance.
type ToggleOpen struct{}

// OutsideTapped is a tap outside the widget. It closes an open panel.
type OutsideTapped struct{}

// InputRegionMeasured reports the rendered height of the input row.
type InputRegionMeasured struct{ Height float64 }

func (QueryChanged) Kind() string        { return "query_changed" }
func (OptionTapped) Kind() string        { return "option_tapped" }
func (RemoveTag) Kind() string           { return "remove_tag" }
func (ClearAll) Kind() string            { return "clear_all" }
func (OpenRequested) Kind() string       { return "open_requested" }
func (ToggleOpen) Kind() string          { return "toggle_open" }
func (OutsideTapped) Kind() string       { return "outside_tapped" }
func (InputRegionMeasured) Kind() string { return "input_region_measured" }

func (e QueryChanged) String() string        { return fmt.Sprintf("%s(%q)", e.Kind(), e.Text) }
func (e OptionTapped) String() string        { return fmt.Sprintf("%s(%q)", e.Kind(), e.Option) }
func (e RemoveTag) String() string           { return fmt.Sprintf("%s(%q)", e.Kind(), e.Option) }
func (e InputRegionMeasured) String() string { return fmt.Sprintf("%s(%g)", e.Kind(), e.Height) }

// Effect is a side request the presentation layer should carry out after an
// event has been applied.
type Effect int

const (
	EffectNone       Effect = iota
	EffectFocusInput        // give the text-entry control input focus
)
