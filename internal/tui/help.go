package tui

import (
	"strings"

	"github.com/charmbracelet/glamour/v2"
)

const helpMarkdown = `# quiet

A debounced text input. The field itself never lags: every keystroke
shows up immediately. The *owner* of the field only hears about the value
after you stop typing for the configured quiet period.

## Keys

| Key | Action |
| --- | ------ |
| ctrl+c | quit |
| esc | blur the field (a pending commit still fires) |
| enter | focus the field again |
| ctrl+r | owner pushes the configured value back (overwrites your edit) |
| ctrl+g | toggle this help |

## Reading the status bar

- **idle** — the field matches the owner's value; nothing scheduled.
- **pending** — you've diverged; the countdown restarts on every
  keystroke and commits when it reaches zero.

Editing back to exactly the owner's value cancels the countdown without
committing.
`

// renderHelp renders the help markdown for the given width. On a
// rendering failure the raw markdown is shown instead.
func (m *Model) renderHelp() string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dracula"),
		glamour.WithWordWrap(m.width-4),
	)
	if err != nil {
		return helpMarkdown
	}

	rendered, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}

	return strings.TrimRight(rendered, "\n")
}
