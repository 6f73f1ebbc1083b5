// Package tui renders an autocomplete widget in the terminal. It turns
// keystrokes, mouse presses and its own layout measurements into widget
// commands and draws the resulting view model.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/autotag/internal/autocomplete"
	"github.com/ruminaider/autotag/internal/logging"
)

const defaultWidth = 60

// Options configures a Model.
type Options struct {
	Placeholder string
	PanelGap    int    // rows between the input row and the panel
	Theme       string // catppuccin flavor name
	Width       int    // fixed box width; 0 follows the terminal
	Logger      *logging.Logger
}

// Model is the bubbletea model hosting one autocomplete widget.
type Model struct {
	widget *autocomplete.Widget
	input  textinput.Model
	keys   KeyMap
	styles Styles
	log    *logging.Logger

	fixedWidth    int
	width, height int
	frame         frame

	confirmed bool
	cancelled bool
}

// NewModel creates a model over categories. The panel starts closed and the
// input unfocused.
func NewModel(categories autocomplete.CategorySet, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = opts.Placeholder

	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	styles := NewStyles(opts.Theme)
	ti.PlaceholderStyle = styles.Placeholder
	ti.TextStyle = styles.Text

	m := Model{
		widget:     autocomplete.NewWidget(categories, autocomplete.WithPanelGap(float64(opts.PanelGap))),
		input:      ti,
		keys:       DefaultKeyMap(),
		styles:     styles,
		log:        logger.With("component", "tui"),
		fixedWidth: opts.Width,
	}
	m.relayout()
	return m
}

// Confirmed reports whether the user accepted the selection.
func (m Model) Confirmed() bool { return m.confirmed }

// Cancelled reports whether the user aborted.
func (m Model) Cancelled() bool { return m.cancelled }

// Selected returns the current selection in selection order.
func (m Model) Selected() []string { return m.widget.Selected() }

// ViewModel returns the widget's current view model.
func (m Model) ViewModel() autocomplete.ViewModel { return m.widget.View() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		cmd = m.click(msg.X, msg.Y)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			m.log.Info("selection confirmed", "count", len(m.widget.Selected()))
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			cmd = m.dispatch(autocomplete.ToggleOpen{})
		case key.Matches(msg, m.keys.Focus):
			cmd = m.dispatch(autocomplete.OpenRequested{})
		case key.Matches(msg, m.keys.ClearAll):
			cmd = m.dispatch(autocomplete.ClearAll{})
		default:
			m.input, cmd = m.input.Update(msg)
			if v := m.input.Value(); v != m.widget.Query() {
				m.dispatch(autocomplete.QueryChanged{Text: v})
			}
		}

	default:
		m.input, cmd = m.input.Update(msg)
	}

	m.relayout()
	return m, cmd
}

// click maps a left press at (x, y) to a widget command.
func (m *Model) click(x, y int) tea.Cmd {
	hit, ok := m.frame.hitTest(x, y)
	if !ok {
		return m.dispatch(autocomplete.OutsideTapped{})
	}
	switch hit.kind {
	case hitTagRemove:
		return m.dispatch(autocomplete.RemoveTag{Option: hit.option})
	case hitClearAll:
		return m.dispatch(autocomplete.ClearAll{})
	case hitArrow:
		return m.dispatch(autocomplete.ToggleOpen{})
	case hitOption:
		return m.dispatch(autocomplete.OptionTapped{Option: hit.option})
	case hitInput:
		return m.dispatch(autocomplete.OpenRequested{})
	}
	// Disabled options and panel chrome swallow the tap.
	return nil
}

// dispatch applies ev to the widget and carries out any requested effect.
func (m *Model) dispatch(ev autocomplete.Event) tea.Cmd {
	m.log.Debug("widget event", "kind", ev.Kind(), "event", fmt.Sprint(ev))

	effect, err := m.widget.Handle(ev)
	if err != nil {
		m.log.Error("widget event rejected", "kind", ev.Kind(), "error", err)
		return nil
	}
	if effect == autocomplete.EffectFocusInput && !m.input.Focused() {
		return m.input.Focus()
	}
	return nil
}

func (m Model) boxWidth() int {
	w := m.fixedWidth
	if w == 0 {
		w = m.width
	}
	if w == 0 {
		w = defaultWidth
	}
	if w < minBoxWidth {
		w = minBoxWidth
	}
	return w
}

// relayout renders the input row, reports its measured height to the
// widget, then positions the panel from the updated view model.
func (m *Model) relayout() {
	width := m.boxWidth()

	renderInput := func(w int) string {
		// Leave a cell for the cursor.
		m.input.Width = w - 1
		return m.input.View()
	}

	vm := m.widget.View()
	input, hits := renderInputBox(m.styles, vm, width, renderInput)

	f := frame{input: input, inputHeight: lipgloss.Height(input)}
	if f.inputHeight != m.frame.inputHeight {
		m.dispatch(autocomplete.InputRegionMeasured{Height: float64(f.inputHeight)})
	}

	vm = m.widget.View()
	if vm.IsOpen {
		f.panelTop = int(vm.PanelOffset)
		maxRows := 0
		if m.height > 0 {
			// Leave the help line visible.
			maxRows = m.height - f.panelTop - 1
		}
		panel, panelHits := renderPanel(m.styles, vm, width, f.panelTop, maxRows, m.widget.Categories().OptionCount())
		f.panel = panel
		hits = append(panelHits, hits...)
	}
	f.hits = hits
	m.frame = f
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.frame.input)
	if m.frame.panel != "" {
		b.WriteString(strings.Repeat("\n", m.frame.panelTop-m.frame.inputHeight+1))
		b.WriteString(m.frame.panel)
	}
	b.WriteString("\n")
	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) helpView() string {
	var parts []string
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		parts = append(parts, m.styles.HelpKey.Render(h.Key)+" "+m.styles.Help.Render(h.Desc))
	}
	parts = append(parts, m.styles.Help.Render("click ✖ to remove"))
	return strings.Join(parts, m.styles.Help.Render(" · "))
}
