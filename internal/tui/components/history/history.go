package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/billie-coop/quiet/internal/tui/components/core"
	"github.com/billie-coop/quiet/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Entry is one committed value.
type Entry struct {
	Value string
	At    time.Time
}

// Model lists every value the input has committed, newest at the bottom,
// in a scrollable viewport.
type Model struct {
	viewport viewport.Model
	entries  []Entry
	width    int
	height   int
}

// Ensure Model implements required interfaces
var _ core.Component = (*Model)(nil)
var _ core.Sizeable = (*Model)(nil)

// New creates an empty commit history pane.
func New() *Model {
	vp := viewport.New()
	vp.MouseWheelEnabled = true

	return &Model{
		viewport: vp,
	}
}

// Init initializes the history component
func (h *Model) Init() tea.Cmd {
	return nil
}

// Update forwards scrolling to the viewport.
func (h *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// SetSize sets the dimensions of the history component
func (h *Model) SetSize(width, height int) tea.Cmd {
	h.width = width
	h.height = height
	h.viewport = viewport.New(
		viewport.WithWidth(width),
		viewport.WithHeight(height),
	)
	h.viewport.MouseWheelEnabled = true
	h.refresh()
	return nil
}

// Append records a committed value and scrolls to it.
func (h *Model) Append(value string, at time.Time) {
	h.entries = append(h.entries, Entry{Value: value, At: at})
	h.refresh()
	h.viewport.GotoBottom()
}

// Len returns the number of recorded commits.
func (h *Model) Len() int {
	return len(h.entries)
}

// Last returns the most recent commit, if any.
func (h *Model) Last() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

func (h *Model) refresh() {
	t := styles.CurrentTheme()

	if len(h.entries) == 0 {
		h.viewport.SetContent(t.S().Muted.Render("No commits yet. Type and pause."))
		return
	}

	var b strings.Builder
	for i, e := range h.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		stamp := t.S().Muted.Render(e.At.Format("15:04:05"))
		b.WriteString(fmt.Sprintf("%s %s", stamp, t.S().Text.Render(fmt.Sprintf("%q", e.Value))))
	}
	h.viewport.SetContent(b.String())
}

// View renders the history component
func (h *Model) View() string {
	return h.viewport.View()
}
