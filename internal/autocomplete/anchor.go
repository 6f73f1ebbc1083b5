package autocomplete

// DefaultPanelGap is the spacing between the input row and the results panel,
// in the same units as the measured height.
const DefaultPanelGap = 5

// Anchor records the most recent measured height of the input row.
type Anchor struct {
	height float64
	gap    float64
}

// NewAnchor returns an anchor with no measurement and the given gap.
func NewAnchor(gap float64) Anchor {
	return Anchor{gap: gap}
}

// Measure records height. The latest value always wins.
func (a *Anchor) Measure(height float64) {
	a.height = height
}

// Height returns the last measured height.
func (a Anchor) Height() float64 {
	return a.height
}

// Offset returns the vertical offset of the results panel.
func (a Anchor) Offset() float64 {
	return a.height + a.gap
}
