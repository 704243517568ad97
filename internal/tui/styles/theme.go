package styles

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
)

// Theme holds the semantic colors the components draw with.
type Theme struct {
	Name   string
	IsDark bool

	Primary color.Color
	Accent  color.Color

	BgBase   color.Color
	BgSubtle color.Color

	FgBase     color.Color
	FgMuted    color.Color
	FgSubtle   color.Color
	FgInverted color.Color

	Border      color.Color
	BorderFocus color.Color

	Success color.Color
	Error   color.Color
	Warning color.Color
	Info    color.Color

	styles *Styles
}

// Styles are the prebuilt lipgloss styles derived from a theme.
type Styles struct {
	Base  lipgloss.Style
	Title lipgloss.Style
	Text  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Label       lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style

	Border        lipgloss.Style
	BorderFocused lipgloss.Style
}

// S returns the styles for this theme, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().
		Foreground(t.FgBase)

	return &Styles{
		Base: base,

		Title: base.
			Foreground(t.Accent).
			Bold(true),

		Text: base,

		Muted: base.Foreground(t.FgMuted),

		Bold: base.Bold(true),

		Success: base.Foreground(t.Success),

		Error: base.Foreground(t.Error),

		Warning: base.Foreground(t.Warning),

		Info: base.Foreground(t.Info),

		Label: base.
			Foreground(t.FgMuted).
			Bold(true),

		Placeholder: base.Foreground(t.FgSubtle),

		Cursor: base.
			Background(t.Primary).
			Foreground(t.FgInverted),

		Border: base.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		BorderFocused: base.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus),
	}
}

// NewQuietTheme returns the default dark theme.
func NewQuietTheme() *Theme {
	return &Theme{
		Name:   "quiet",
		IsDark: true,

		Primary: lipgloss.Color("205"),
		Accent:  lipgloss.Color("212"),

		BgBase:   lipgloss.Color("235"),
		BgSubtle: lipgloss.Color("237"),

		FgBase:     lipgloss.Color("252"),
		FgMuted:    lipgloss.Color("245"),
		FgSubtle:   lipgloss.Color("241"),
		FgInverted: lipgloss.Color("0"),

		Border:      lipgloss.Color("240"),
		BorderFocus: lipgloss.Color("205"),

		Success: lipgloss.Color("42"),
		Error:   lipgloss.Color("196"),
		Warning: lipgloss.Color("214"),
		Info:    lipgloss.Color("39"),
	}
}

// Manager keeps the registered themes and the active one.
type Manager struct {
	themes  map[string]*Theme
	current *Theme
}

var defaultManager *Manager

// SetDefaultManager replaces the package-level manager.
func SetDefaultManager(m *Manager) {
	defaultManager = m
}

// CurrentTheme returns the active theme, creating the default manager on
// first use.
func CurrentTheme() *Theme {
	if defaultManager == nil {
		defaultManager = NewManager("quiet")
	}
	return defaultManager.Current()
}

// NewManager creates a manager with the built-in themes registered.
func NewManager(defaultTheme string) *Manager {
	m := &Manager{
		themes: make(map[string]*Theme),
	}

	m.Register(NewQuietTheme())

	m.current = m.themes[defaultTheme]
	if m.current == nil {
		m.current = m.themes["quiet"]
	}

	return m
}

// Register adds a theme by name.
func (m *Manager) Register(theme *Theme) {
	m.themes[theme.Name] = theme
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	return m.current
}

// SetTheme switches the active theme by name.
func (m *Manager) SetTheme(name string) error {
	if theme, ok := m.themes[name]; ok {
		m.current = theme
		return nil
	}
	return fmt.Errorf("theme %s not found", name)
}

// List returns the registered theme names.
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	return names
}
