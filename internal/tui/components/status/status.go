package status

import (
	"fmt"
	"time"

	"github.com/billie-coop/quiet/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// MessageType represents the type of status message
type MessageType int

const (
	Info MessageType = iota
	Warning
	Error
	Success
)

// StatusMessage represents a status bar message
type StatusMessage struct {
	Content   string
	Type      MessageType
	Timestamp time.Time
}

// Component implements a one-line status bar: persistent left content
// (here, the debounce phase of the watched input) and a transient message
// on the right that clears itself after a few seconds.
type Component struct {
	message     *StatusMessage
	width       int
	leftContent string

	clearAfter time.Duration
}

// New creates a new status bar component
func New() *Component {
	return &Component{
		clearAfter: 5 * time.Second,
	}
}

// SetMessage sets a status message with the given type
func (c *Component) SetMessage(content string, msgType MessageType) tea.Cmd {
	c.message = &StatusMessage{
		Content:   content,
		Type:      msgType,
		Timestamp: time.Now(),
	}

	// The clear command carries the message timestamp; if a newer message
	// arrives first, the stale clear is ignored.
	ts := c.message.Timestamp
	return tea.Tick(c.clearAfter, func(t time.Time) tea.Msg {
		return clearMessageMsg{timestamp: ts}
	})
}

// ShowInfo shows an info message
func (c *Component) ShowInfo(message string) tea.Cmd {
	return c.SetMessage(message, Info)
}

// ShowWarning shows a warning message
func (c *Component) ShowWarning(message string) tea.Cmd {
	return c.SetMessage(message, Warning)
}

// ShowError shows an error message
func (c *Component) ShowError(message string) tea.Cmd {
	return c.SetMessage(message, Error)
}

// ShowSuccess shows a success message
func (c *Component) ShowSuccess(message string) tea.Cmd {
	return c.SetMessage(message, Success)
}

// SetLeftContent sets the left side content (the phase indicator)
func (c *Component) SetLeftContent(content string) {
	c.leftContent = content
}

// SetSize implements the Sizeable interface
func (c *Component) SetSize(width, height int) tea.Cmd {
	c.width = width
	return nil
}

// clearMessageMsg is sent when a status message should be cleared
type clearMessageMsg struct {
	timestamp time.Time
}

// Init implements the Component interface
func (c *Component) Init() tea.Cmd {
	return nil
}

// Update implements the Component interface
func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if clear, ok := msg.(clearMessageMsg); ok {
		// Only clear if this is for the current message
		if c.message != nil && clear.timestamp.Equal(c.message.Timestamp) {
			c.message = nil
		}
	}

	return c, nil
}

// View implements the Component interface
func (c *Component) View() string {
	if c.width == 0 {
		return ""
	}

	t := styles.CurrentTheme()

	barStyle := lipgloss.NewStyle().
		Width(c.width).
		Height(1).
		Background(t.BgSubtle).
		Foreground(t.FgBase).
		Padding(0, 1)

	left := c.leftContent
	right := ""
	if c.message != nil {
		right = c.formatMessage()
	}

	available := c.width - 2 // padding
	left = runewidth.Truncate(left, available, "…")
	lw := runewidth.StringWidth(left)
	if room := available - lw; room <= 0 {
		// No cells left for the transient message; drop it rather than
		// squeeze in a lone ellipsis past the bar edge.
		right = ""
	} else if runewidth.StringWidth(right) > room {
		right = runewidth.Truncate(right, room, "…")
	}

	content := left
	if right != "" {
		gap := available - lw - runewidth.StringWidth(right)
		if gap > 0 {
			content += fmt.Sprintf("%*s%s", gap, "", right)
		} else {
			content += right
		}
	}

	return barStyle.Render(content)
}

// formatMessage prefixes the message with a type marker.
func (c *Component) formatMessage() string {
	switch c.message.Type {
	case Success:
		return "✓ " + c.message.Content
	case Warning:
		return "! " + c.message.Content
	case Error:
		return "✗ " + c.message.Content
	default:
		return c.message.Content
	}
}
