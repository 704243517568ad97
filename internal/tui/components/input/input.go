package input

import (
	"strings"
	"time"

	"github.com/billie-coop/quiet/internal/debounce"
	"github.com/billie-coop/quiet/internal/tui/components/core"
	"github.com/billie-coop/quiet/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-runewidth"
)

// ChangedMsg is emitted once per quiet period, carrying the settled value
// to whoever owns this input.
type ChangedMsg struct {
	ID    string
	Event debounce.ChangeEvent
}

// BlurredMsg is emitted when focus leaves the field. It carries no value;
// blur never touches the debounce state.
type BlurredMsg struct {
	ID string
}

// Model is a single-line text input whose change notifications are
// debounced: the rendered value tracks every keystroke immediately, but
// the owner only hears about it after the configured quiet period.
type Model struct {
	id    string
	ctrl  *debounce.Controller
	timer *core.OneShot

	label       string
	placeholder string
	errText     string

	cursorPos int // rune index into the live value
	width     int
	height    int
	focused   bool
	enabled   bool
}

// Ensure Model implements required interfaces
var _ core.Component = (*Model)(nil)
var _ core.Sizeable = (*Model)(nil)
var _ core.Focusable = (*Model)(nil)

// New creates a debounced input. The id distinguishes this field's timer
// and commit messages when several inputs share one program.
func New(id string) *Model {
	return &Model{
		id:      id,
		ctrl:    debounce.New("", 0),
		timer:   core.NewOneShot(id),
		enabled: true,
	}
}

// Init initializes the input component
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the input component
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case core.FireMsg:
		if !m.timer.Owns(msg) {
			return m, nil
		}
		// A stale stamp means this timer was superseded or torn down;
		// its expiry is dropped as if it had never been armed.
		ev, ok := m.ctrl.Expire(msg.Gen)
		if !ok {
			return m, nil
		}
		return m, m.emitChanged(ev)

	case tea.KeyMsg:
		if !m.enabled || !m.focused {
			return m, nil
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

// handleKey applies one editing keystroke to the live value.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	value := []rune(m.ctrl.Value())
	keyStr := msg.String()

	// Bubble Tea v2 reports the space bar as "space", not " "
	if keyStr == "space" {
		value = append(value[:m.cursorPos], append([]rune{' '}, value[m.cursorPos:]...)...)
		m.cursorPos++
		return m.edit(value)
	}

	switch keyStr {
	case "backspace":
		if m.cursorPos > 0 {
			value = append(value[:m.cursorPos-1], value[m.cursorPos:]...)
			m.cursorPos--
			return m.edit(value)
		}
	case "delete":
		if m.cursorPos < len(value) {
			value = append(value[:m.cursorPos], value[m.cursorPos+1:]...)
			return m.edit(value)
		}
	case "left":
		if m.cursorPos > 0 {
			m.cursorPos--
		}
	case "right":
		if m.cursorPos < len(value) {
			m.cursorPos++
		}
	case "home", "ctrl+a":
		m.cursorPos = 0
	case "end", "ctrl+e":
		m.cursorPos = len(value)
	case "ctrl+k":
		// Kill to end of line
		if m.cursorPos < len(value) {
			return m.edit(value[:m.cursorPos])
		}
	case "ctrl+u":
		// Kill to beginning of line
		if m.cursorPos > 0 {
			value = value[m.cursorPos:]
			m.cursorPos = 0
			return m.edit(value)
		}
	case "enter", "tab", "esc", "ctrl+c":
		// Don't handle these - let the owner handle them
		return nil
	default:
		if r := []rune(keyStr); len(r) == 1 {
			value = append(value[:m.cursorPos], append([]rune{r[0]}, value[m.cursorPos:]...)...)
			m.cursorPos++
			return m.edit(value)
		}
	}

	return nil
}

// edit records the new live value and acts on the scheduling decision.
func (m *Model) edit(value []rune) tea.Cmd {
	return m.apply(m.ctrl.Keystroke(string(value)))
}

// apply turns a scheduling decision into a command. Cancel needs no
// command: the superseded timer is already invalid by stamp.
func (m *Model) apply(action debounce.TimerAction) tea.Cmd {
	if action == debounce.ActionReschedule {
		return m.timer.Arm(m.ctrl.Generation(), m.ctrl.Duration())
	}
	return nil
}

func (m *Model) emitChanged(ev debounce.ChangeEvent) tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg{ID: m.id, Event: ev}
	}
}

// SetSize sets the dimensions of the input component
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	return nil
}

// View renders the label line, the value line, and the error line.
func (m *Model) View() string {
	t := styles.CurrentTheme()
	var lines []string

	if m.label != "" {
		lines = append(lines, t.S().Label.Render(m.label))
	}

	lines = append(lines, m.viewValue())

	if m.errText != "" {
		lines = append(lines, t.S().Error.Render(m.errText))
	}

	return strings.Join(lines, "\n")
}

func (m *Model) viewValue() string {
	t := styles.CurrentTheme()
	value := m.ctrl.Value()

	if value == "" && m.placeholder != "" && !m.focused {
		return t.S().Placeholder.Render(m.truncate(m.placeholder))
	}

	if !m.focused || !m.enabled {
		return t.S().Text.Render(m.truncate(value))
	}

	// Block cursor over the rune under the insertion point.
	runes := []rune(value)
	before := string(runes[:m.cursorPos])
	cursor := " "
	after := ""
	if m.cursorPos < len(runes) {
		cursor = string(runes[m.cursorPos])
		after = string(runes[m.cursorPos+1:])
	}

	return t.S().Text.Render(m.truncate(before)) +
		t.S().Cursor.Render(cursor) +
		t.S().Text.Render(after)
}

// truncate keeps rendered lines inside the component width, counting
// display cells rather than bytes so wide runes don't overflow.
func (m *Model) truncate(s string) string {
	if m.width <= 0 {
		return s
	}
	return runewidth.Truncate(s, m.width, "…")
}

// Focus focuses the input component
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return nil
}

// Blur removes focus and notifies the owner. It deliberately leaves the
// debounce state alone: a pending commit still fires on schedule.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	return func() tea.Msg {
		return BlurredMsg{ID: m.id}
	}
}

// Focused returns whether the input component is focused
func (m *Model) Focused() bool {
	return m.focused
}

// Value returns the live value, which reflects the most recent keystroke
// or owner push with no delay.
func (m *Model) Value() string {
	return m.ctrl.Value()
}

// SetExternalValue records an owner push. The owner always wins: the live
// value is overwritten even mid-edit and any pending commit whose value
// no longer diverges is dropped.
func (m *Model) SetExternalValue(value string) tea.Cmd {
	cmd := m.apply(m.ctrl.SetExternalValue(value))
	m.cursorPos = len([]rune(value))
	return cmd
}

// SetDebounce changes the quiet period. A pending commit restarts with
// the full new duration.
func (m *Model) SetDebounce(d time.Duration) tea.Cmd {
	return m.apply(m.ctrl.SetDuration(d))
}

// Pending reports whether a commit is counting down.
func (m *Model) Pending() bool {
	return m.ctrl.Pending()
}

// Deadline returns when the pending commit fires. Zero when idle.
func (m *Model) Deadline() time.Time {
	return m.ctrl.Deadline()
}

// Dirty reports whether the live value has diverged from the owner's.
func (m *Model) Dirty() bool {
	return m.ctrl.Dirty()
}

// SetLabel sets the label rendered above the field.
func (m *Model) SetLabel(label string) {
	m.label = label
}

// SetPlaceholder sets the placeholder text
func (m *Model) SetPlaceholder(placeholder string) {
	m.placeholder = placeholder
}

// SetError sets the error text rendered below the field. Purely cosmetic;
// the debounce path never reads it.
func (m *Model) SetError(err string) {
	m.errText = err
}

// SetEnabled enables or disables the input
func (m *Model) SetEnabled(enabled bool) {
	m.enabled = enabled
	if !enabled {
		m.focused = false
	}
}

// Teardown drops any pending commit. Call it before discarding the model
// so a timer armed earlier can never fire a commit for a dead field.
func (m *Model) Teardown() {
	m.ctrl.Teardown()
}
