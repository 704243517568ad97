package tui

import (
	"fmt"
	"time"

	"github.com/billie-coop/quiet/internal/config"
	"github.com/billie-coop/quiet/internal/tui/components/history"
	"github.com/billie-coop/quiet/internal/tui/components/input"
	"github.com/billie-coop/quiet/internal/tui/components/status"
	"github.com/billie-coop/quiet/internal/tui/events"
	"github.com/billie-coop/quiet/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// phaseInterval is how often the status bar countdown repaints. It only
// affects the display; commit timing comes from the input's own timer.
const phaseInterval = 250 * time.Millisecond

// phaseTickMsg drives the countdown repaint.
type phaseTickMsg struct{}

// Model is the demo application: one debounced input playing the widget,
// and this model playing the owner on the other side of the commit edge.
type Model struct {
	width  int
	height int

	// Components
	input     *input.Model
	history   *history.Model
	statusBar *status.Component

	// Event system
	eventBroker *events.Broker
	eventSub    <-chan events.Event

	keys     KeyMap
	cfg      *config.Config
	showHelp bool

	// committed is the value the owner currently holds. It only moves
	// when a commit arrives or the owner pushes deliberately.
	committed string
}

// New creates the demo model from a loaded config.
func New(cfg *config.Config) *Model {
	styles.SetDefaultManager(styles.NewManager(cfg.Theme))

	eventBroker := events.NewBroker()

	in := input.New("demo")
	in.SetLabel(cfg.Label)
	in.SetPlaceholder(cfg.Placeholder)
	in.SetDebounce(cfg.Debounce())
	in.SetExternalValue(cfg.Value)

	m := &Model{
		input:       in,
		history:     history.New(),
		statusBar:   status.New(),
		eventBroker: eventBroker,
		keys:        DefaultKeyMap(),
		cfg:         cfg,
		committed:   cfg.Value,
	}

	m.eventSub = eventBroker.Subscribe()

	return m
}

// Init initializes the demo model and all components
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd

	cmds = append(cmds, m.input.Init())
	cmds = append(cmds, m.history.Init())
	cmds = append(cmds, m.statusBar.Init())

	cmds = append(cmds, m.input.Focus())
	cmds = append(cmds, m.listenForEvents())
	cmds = append(cmds, m.phaseTick())
	cmds = append(cmds, m.statusBar.ShowInfo("Type and pause to commit. ctrl+g for help."))

	m.syncPhase()

	return tea.Batch(cmds...)
}

// Update handles all demo updates and routes to components
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case events.Event:
		cmd := m.handleEvent(msg)
		return m, tea.Batch(cmd, m.listenForEvents())

	case phaseTickMsg:
		m.syncPhase()
		return m, m.phaseTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmds = append(cmds, m.resizeComponents())
		return m, tea.Batch(cmds...)

	case input.ChangedMsg:
		// Commit edge: the owner adopts the settled value and pushes it
		// back, which resynchronizes the field to idle.
		m.committed = msg.Event.Value
		cmds = append(cmds, m.input.SetExternalValue(msg.Event.Value))
		m.eventBroker.Publish(events.Event{
			Type:    events.InputCommittedEvent,
			Payload: events.InputCommittedPayload{ID: msg.ID, Event: msg.Event},
		})
		m.syncPhase()
		return m, tea.Batch(cmds...)

	case input.BlurredMsg:
		m.eventBroker.Publish(events.Event{
			Type:    events.InputBlurredEvent,
			Payload: events.InputBlurredPayload{ID: msg.ID},
		})
		return m, nil

	case tea.KeyPressMsg:
		// The help overlay swallows everything except closing it or
		// quitting.
		if m.showHelp && !key.Matches(msg, m.keys.Help) && !key.Matches(msg, m.keys.Quit) {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			// Kill any pending commit before leaving so nothing fires
			// into a dead program.
			m.input.Teardown()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			m.committed = m.cfg.Value
			cmd := m.input.SetExternalValue(m.cfg.Value)
			m.eventBroker.Publish(events.Event{
				Type:    events.InputSyncedEvent,
				Payload: events.InputSyncedPayload{ID: "demo", Value: m.cfg.Value},
			})
			m.syncPhase()
			return m, cmd

		case key.Matches(msg, m.keys.Blur) && m.input.Focused():
			return m, m.input.Blur()

		case key.Matches(msg, m.keys.Focus) && !m.input.Focused():
			return m, m.input.Focus()
		}
	}

	// Everything else goes to the components: typing keys to the input,
	// timer expiries to whoever owns them, scrolling to the history.
	var cmd tea.Cmd

	var inputModel tea.Model
	inputModel, cmd = m.input.Update(msg)
	if im, ok := inputModel.(*input.Model); ok {
		m.input = im
	}
	cmds = append(cmds, cmd)

	var historyModel tea.Model
	historyModel, cmd = m.history.Update(msg)
	if hm, ok := historyModel.(*history.Model); ok {
		m.history = hm
	}
	cmds = append(cmds, cmd)

	var statusModel tea.Model
	statusModel, cmd = m.statusBar.Update(msg)
	if sm, ok := statusModel.(*status.Component); ok {
		m.statusBar = sm
	}
	cmds = append(cmds, cmd)

	m.syncPhase()

	return m, tea.Batch(cmds...)
}

// handleEvent processes events from the event broker
func (m *Model) handleEvent(event events.Event) tea.Cmd {
	switch event.Type {
	case events.InputCommittedEvent:
		if payload, ok := event.Payload.(events.InputCommittedPayload); ok {
			m.history.Append(payload.Event.Value, time.Now())
			return m.statusBar.ShowSuccess(fmt.Sprintf("committed %q", payload.Event.Value))
		}

	case events.InputBlurredEvent:
		return m.statusBar.ShowInfo("field blurred")

	case events.InputSyncedEvent:
		if payload, ok := event.Payload.(events.InputSyncedPayload); ok {
			return m.statusBar.ShowWarning(fmt.Sprintf("owner pushed %q", payload.Value))
		}

	case events.StatusMessageEvent:
		if payload, ok := event.Payload.(events.StatusMessagePayload); ok {
			switch payload.Type {
			case "error":
				return m.statusBar.ShowError(payload.Message)
			case "warning":
				return m.statusBar.ShowWarning(payload.Message)
			case "success":
				return m.statusBar.ShowSuccess(payload.Message)
			default:
				return m.statusBar.ShowInfo(payload.Message)
			}
		}
	}

	return nil
}

// listenForEvents listens for events from the event broker
func (m *Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		return <-m.eventSub
	}
}

func (m *Model) phaseTick() tea.Cmd {
	return tea.Tick(phaseInterval, func(time.Time) tea.Msg {
		return phaseTickMsg{}
	})
}

// syncPhase refreshes the status bar's left side with the controller
// phase: idle, or pending with the remaining countdown.
func (m *Model) syncPhase() {
	if m.input.Pending() {
		remaining := time.Until(m.input.Deadline())
		if remaining < 0 {
			remaining = 0
		}
		m.statusBar.SetLeftContent(fmt.Sprintf("● pending %.1fs", remaining.Seconds()))
		return
	}
	if m.input.Dirty() {
		// Commit delivered but the owner hasn't pushed back yet.
		m.statusBar.SetLeftContent("○ dirty")
		return
	}
	m.statusBar.SetLeftContent("○ idle")
}

// resizeComponents resizes all components based on current window size
func (m *Model) resizeComponents() tea.Cmd {
	var cmds []tea.Cmd

	const statusHeight = 1
	const inputHeight = 3 // label, value, error

	historyHeight := m.height - inputHeight - statusHeight - 4 // borders

	cmds = append(cmds, m.input.SetSize(m.width-4, inputHeight))
	cmds = append(cmds, m.history.SetSize(m.width-4, historyHeight))
	cmds = append(cmds, m.statusBar.SetSize(m.width, statusHeight))

	return tea.Batch(cmds...)
}

// View renders the entire demo
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	t := styles.CurrentTheme()

	inputBorder := t.S().Border
	if m.input.Focused() {
		inputBorder = t.S().BorderFocused
	}
	inputView := inputBorder.
		Width(m.width - 2).
		Render(m.input.View())

	historyView := t.S().Border.
		Width(m.width - 2).
		Render(m.history.View())

	statusView := m.statusBar.View()

	return lipgloss.JoinVertical(lipgloss.Left, inputView, historyView, statusView)
}
