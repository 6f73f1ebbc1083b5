package tui

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/ruminaider/autotag/internal/autocomplete"
)

const (
	minBoxWidth   = 24
	minInputWidth = 8
	removeGlyph   = "✖"
)

// hitKind says what a screen region does when clicked.
type hitKind int

const (
	hitInput          hitKind = iota // anywhere else in the input row: tap-to-focus
	hitTagRemove                     // ✖ on a selected tag
	hitClearAll                      // ✖ clear control
	hitArrow                         // open/close arrow
	hitOption                        // enabled option in the panel
	hitDisabledOption                // already selected option, inert
	hitPanel                         // panel chrome, inert
)

// hitRegion is an inclusive rectangle of terminal cells.
type hitRegion struct {
	kind   hitKind
	x0, x1 int
	y0, y1 int
	option string
}

func (r hitRegion) contains(x, y int) bool {
	return x >= r.x0 && x <= r.x1 && y >= r.y0 && y <= r.y1
}

// frame is one laid-out render of the widget.
type frame struct {
	input       string // bordered input row
	inputHeight int
	panel       string // empty when closed
	panelTop    int
	hits        []hitRegion // most specific first
}

// hitTest returns the first region containing (x, y).
func (f frame) hitTest(x, y int) (hitRegion, bool) {
	for _, r := range f.hits {
		if r.contains(x, y) {
			return r, true
		}
	}
	return hitRegion{}, false
}

// categoryTitle capitalizes the first letter of a category name for display.
func categoryTitle(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// tagChip renders a selected option as " name ✖ " and returns its width.
func tagChip(s Styles, option string, maxWidth int) (string, int) {
	label := option
	if w := maxWidth - 4; w > 0 && ansi.StringWidth(label) > w {
		label = ansi.Truncate(label, w, "…")
	}
	chip := s.Tag.Render(" "+label+" ") + s.TagRemove.Render(removeGlyph) + s.Tag.Render(" ")
	return chip, ansi.StringWidth(label) + 4
}

// padRight pads an already-styled string with spaces to width cells.
func padRight(str string, width int) string {
	if gap := width - ansi.StringWidth(str); gap > 0 {
		return str + strings.Repeat(" ", gap)
	}
	return str
}

// inputLayout is the result of flowing tags and the text input into rows.
type inputLayout struct {
	rows       []string
	inputWidth int // width given to the text input on its row
	hits       []hitRegion
}

// layoutInputRow flows tag chips left to right, wrapping at areaWidth, and
// puts the text input after the last chip. originX/originY locate the first
// content cell on screen.
func layoutInputRow(s Styles, selected []string, areaWidth, originX, originY int, renderInput func(width int) string) inputLayout {
	var (
		out  inputLayout
		row  strings.Builder
		x, y int
	)
	flush := func() {
		out.rows = append(out.rows, padRight(row.String(), areaWidth))
		row.Reset()
		x = 0
		y++
	}

	for _, opt := range selected {
		chip, w := tagChip(s, opt, areaWidth)
		if x > 0 && x+1+w > areaWidth {
			flush()
		}
		if x > 0 {
			row.WriteString(" ")
			x++
		}
		// The ✖ sits two cells from the chip's right edge; accept the
		// trailing pad cell too.
		out.hits = append(out.hits, hitRegion{
			kind:   hitTagRemove,
			x0:     originX + x + w - 2,
			x1:     originX + x + w - 1,
			y0:     originY + y,
			y1:     originY + y,
			option: opt,
		})
		row.WriteString(chip)
		x += w
	}

	remaining := areaWidth - x
	if x > 0 {
		remaining--
	}
	if remaining < minInputWidth && x > 0 {
		flush()
		remaining = areaWidth
	} else if x > 0 {
		row.WriteString(" ")
	}
	out.inputWidth = remaining
	row.WriteString(renderInput(remaining))
	flush()

	return out
}

// renderInputBox renders the bordered input row and its hit regions.
func renderInputBox(s Styles, vm autocomplete.ViewModel, boxWidth int, renderInput func(width int) string) (string, []hitRegion) {
	// Border and horizontal padding take two cells on each side.
	contentWidth := boxWidth - 4

	var controls []string
	var controlsWidth int
	if len(vm.Selected) > 0 {
		controls = append(controls, s.ClearAll.Render(removeGlyph))
		controlsWidth += 2
	}
	controls = append(controls, s.Divider.Render("│"))
	arrow := s.Arrow.Render("▾")
	if vm.IsOpen {
		arrow = s.ArrowFocused.Render("▴")
	}
	controls = append(controls, arrow)
	controlsWidth += 3 // "│ ▾"

	areaWidth := contentWidth - controlsWidth - 1
	flow := layoutInputRow(s, vm.Selected, areaWidth, 2, 1, renderInput)

	rows := make([]string, len(flow.rows))
	blank := strings.Repeat(" ", controlsWidth)
	for i, r := range flow.rows {
		if i == 0 {
			rows[i] = r + " " + strings.Join(controls, " ")
		} else {
			rows[i] = r + " " + blank
		}
	}

	border := s.BorderIdle
	if vm.IsOpen {
		border = s.BorderFocused
	}
	box := s.InputBox.
		BorderForeground(border).
		Width(boxWidth - 2).
		Render(strings.Join(rows, "\n"))

	hits := flow.hits
	cx := 2 + areaWidth + 1
	if len(vm.Selected) > 0 {
		hits = append(hits, hitRegion{kind: hitClearAll, x0: cx, x1: cx, y0: 1, y1: 1})
		cx += 2
	}
	cx += 2 // divider and its space
	hits = append(hits, hitRegion{kind: hitArrow, x0: cx - 1, x1: cx + 1, y0: 1, y1: 1})
	hits = append(hits, hitRegion{
		kind: hitInput,
		x0:   0,
		x1:   boxWidth - 1,
		y0:   0,
		y1:   lipgloss.Height(box) - 1,
	})
	return box, hits
}

// renderPanel renders the results panel at screen row top. maxRows limits
// the panel's total height; 0 means unlimited.
func renderPanel(s Styles, vm autocomplete.ViewModel, boxWidth, top, maxRows, total int) (string, []hitRegion) {
	inner := boxWidth - 2
	type line struct {
		text   string
		kind   hitKind
		option string
	}
	var lines []line

	shown := 0
	for i, cat := range vm.Filtered {
		if i > 0 {
			lines = append(lines, line{text: s.Separator.Render(strings.Repeat("─", inner)), kind: hitPanel})
		}
		title := categoryTitle(cat.Name)
		lines = append(lines, line{text: s.CategoryTitle.Render(title), kind: hitPanel})
		if len(cat.Options) == 0 {
			lines = append(lines, line{text: s.NoOptions.Render("No options found for " + title), kind: hitPanel})
			continue
		}
		for _, opt := range cat.Options {
			shown++
			label := ansi.Truncate(opt, inner-4, "…")
			if vm.IsSelected(opt) {
				lines = append(lines, line{text: s.OptionDisabled.Render(label), kind: hitDisabledOption, option: opt})
			} else {
				lines = append(lines, line{text: s.Option.Render(label), kind: hitOption, option: opt})
			}
		}
	}
	footer := fmt.Sprintf("%s of %s options · %s selected",
		humanize.Comma(int64(shown)), humanize.Comma(int64(total)), humanize.Comma(int64(len(vm.Selected))))
	lines = append(lines, line{text: s.Footer.Render(footer), kind: hitPanel})

	// Keep the footer when clipping to the available rows.
	if maxRows > 2 && len(lines)+2 > maxRows {
		keep := maxRows - 2 - 2
		if keep < 0 {
			keep = 0
		}
		more := line{text: s.NoOptions.Render("…"), kind: hitPanel}
		lines = append(append(lines[:keep:keep], more), lines[len(lines)-1])
	}

	var hits []hitRegion
	rendered := make([]string, len(lines))
	for i, l := range lines {
		rendered[i] = padRight(ansi.Truncate(l.text, inner, "…"), inner)
		if l.kind == hitOption || l.kind == hitDisabledOption {
			y := top + 1 + i
			hits = append(hits, hitRegion{kind: l.kind, x0: 1, x1: boxWidth - 2, y0: y, y1: y, option: l.option})
		}
	}

	panel := s.Panel.Width(inner).Render(strings.Join(rendered, "\n"))
	hits = append(hits, hitRegion{
		kind: hitPanel,
		x0:   0,
		x1:   boxWidth - 1,
		y0:   top,
		y1:   top + lipgloss.Height(panel) - 1,
	})
	return panel, hits
}
