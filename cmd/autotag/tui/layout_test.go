package tui

import (
	"strings"
	"testing"

	catppuccin "github.com/catppuccin/go"
	"github.com/stretchr/testify/assert"
)

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func TestLayoutInputRowWraps(t *testing.T) {
	s := NewStyles("mocha")
	render := func(w int) string { return strings.Repeat("_", w) }

	out := layoutInputRow(s, []string{"aaaa", "bbbb", "cccc"}, 20, 2, 1, render)

	// Chips are 8 wide: two fit on the first row, the third wraps, and the
	// input takes what is left of the second row.
	assert.Len(t, out.rows, 2)
	assert.Equal(t, 20-8-1, out.inputWidth)
	assert.Len(t, out.hits, 3)
	assert.Equal(t, 1, out.hits[0].y0)
	assert.Equal(t, 1, out.hits[1].y0)
	assert.Equal(t, 2, out.hits[2].y0)
	assert.Equal(t, 2+8-2, out.hits[0].x0)
	assert.Equal(t, 2+9+8-2, out.hits[1].x0)
}

func TestLayoutInputRowNarrowInputWraps(t *testing.T) {
	s := NewStyles("mocha")
	render := func(w int) string { return "" }

	out := layoutInputRow(s, []string{"abcdefghijkl"}, 20, 0, 0, render)
	assert.Len(t, out.rows, 2)
	assert.Equal(t, 20, out.inputWidth)
}

func TestLayoutInputRowEmpty(t *testing.T) {
	s := NewStyles("mocha")
	out := layoutInputRow(s, nil, 20, 0, 0, func(w int) string { return "" })
	assert.Len(t, out.rows, 1)
	assert.Equal(t, 20, out.inputWidth)
	assert.Empty(t, out.hits)
}

func TestFrameHitTestOrder(t *testing.T) {
	f := frame{hits: []hitRegion{
		{kind: hitArrow, x0: 5, x1: 5, y0: 1, y1: 1},
		{kind: hitInput, x0: 0, x1: 10, y0: 0, y1: 2},
	}}

	h, ok := f.hitTest(5, 1)
	assert.True(t, ok)
	assert.Equal(t, hitArrow, h.kind)

	h, ok = f.hitTest(4, 1)
	assert.True(t, ok)
	assert.Equal(t, hitInput, h.kind)

	_, ok = f.hitTest(11, 1)
	assert.False(t, ok)
}

func TestFlavorByName(t *testing.T) {
	assert.Equal(t, catppuccin.Latte.Base().Hex, FlavorByName("Latte").Base().Hex)
	assert.Equal(t, catppuccin.Mocha.Base().Hex, FlavorByName("unknown").Base().Hex)
}
