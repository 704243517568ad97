package status

import (
	"strings"
	"testing"
)

func TestViewShowsPhaseAndMessage(t *testing.T) {
	c := New()
	c.SetSize(40, 1)
	c.SetLeftContent("○ idle")
	_ = c.ShowSuccess("saved")

	view := c.View()
	if !strings.Contains(view, "○ idle") {
		t.Error("view missing phase text")
	}
	if !strings.Contains(view, "✓ saved") {
		t.Error("view missing status message")
	}
}

func TestViewDropsMessageWhenPhaseFillsBar(t *testing.T) {
	c := New()
	c.SetSize(10, 1)
	// Exactly fills the bar interior (width minus one cell of padding
	// on each side), leaving zero cells for the message.
	c.SetLeftContent("12345678")
	_ = c.ShowInfo("hello")

	view := c.View()
	if strings.Contains(view, "\n") {
		t.Errorf("status bar wrapped onto a second line: %q", view)
	}
	if strings.Contains(view, "…") {
		t.Errorf("message remnant rendered with no room left: %q", view)
	}
}

func TestViewTruncatesLongMessage(t *testing.T) {
	c := New()
	c.SetSize(16, 1)
	c.SetLeftContent("idle")
	_ = c.ShowInfo("a much longer message than fits")

	view := c.View()
	if strings.Contains(view, "\n") {
		t.Errorf("status bar wrapped onto a second line: %q", view)
	}
	if !strings.Contains(view, "…") {
		t.Errorf("long message not truncated: %q", view)
	}
}
