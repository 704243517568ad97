package input

import (
	"strings"
	"testing"
	"time"

	"github.com/billie-coop/quiet/internal/tui/components/core"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// testDebounce keeps the armed tea.Tick commands fast enough to execute
// inline: running the command is how a test makes the timer "expire".
const testDebounce = time.Millisecond

func newTestInput(t *testing.T) *Model {
	t.Helper()
	m := New("field")
	if cmd := m.SetDebounce(testDebounce); cmd != nil {
		t.Fatal("SetDebounce scheduled a commit on a clean input")
	}
	m.Focus()
	return m
}

func pressRune(t *testing.T, m *Model, r rune) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	return cmd
}

func pressKey(t *testing.T, m *Model, code rune) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

// run executes an armed timer command and feeds the resulting expiry back
// through Update, returning whatever the component emitted.
func run(t *testing.T, m *Model, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected an armed timer command")
	}
	fire, ok := cmd().(core.FireMsg)
	if !ok {
		t.Fatal("armed command did not produce a FireMsg")
	}
	_, out := m.Update(fire)
	if out == nil {
		return nil
	}
	return out()
}

func TestKeystrokesRenderImmediately(t *testing.T) {
	m := newTestInput(t)

	for i, want := range []string{"a", "ab", "abc"} {
		pressRune(t, m, rune("abc"[i]))
		if m.Value() != want {
			t.Fatalf("Value() = %q after keystroke %d, want %q", m.Value(), i+1, want)
		}
	}
}

func TestBurstCommitsOnceWithFinalValue(t *testing.T) {
	m := newTestInput(t)

	first := pressRune(t, m, 'a')
	second := pressRune(t, m, 'b')

	// The superseded timer expires to nothing.
	if msg := run(t, m, first); msg != nil {
		t.Fatalf("stale timer emitted %T", msg)
	}

	msg := run(t, m, second)
	changed, ok := msg.(ChangedMsg)
	if !ok {
		t.Fatalf("live timer emitted %T, want ChangedMsg", msg)
	}
	if changed.ID != "field" {
		t.Errorf("ChangedMsg.ID = %q, want %q", changed.ID, "field")
	}
	if changed.Event.Value != "ab" || changed.Event.Target.Value != "ab" {
		t.Errorf("commit = %+v, want %q in both fields", changed.Event, "ab")
	}
	if m.Pending() {
		t.Error("still pending after commit")
	}
}

func TestEditingBackToExternalValueCancels(t *testing.T) {
	m := newTestInput(t)
	m.SetExternalValue("x")

	cmd := pressKey(t, m, tea.KeyBackspace) // "" — diverged
	if cmd == nil {
		t.Fatal("divergence did not arm a timer")
	}
	if pressRune(t, m, 'x') != nil { // back to "x" — cancel, nothing armed
		t.Fatal("returning to the external value armed a timer")
	}
	if m.Pending() {
		t.Error("pending after value settled back to external")
	}
	if msg := run(t, m, cmd); msg != nil {
		t.Fatalf("cancelled timer emitted %T", msg)
	}
}

func TestExternalPushOverridesPendingEdit(t *testing.T) {
	m := newTestInput(t)

	cmd := pressRune(t, m, 'y')
	if m.SetExternalValue("fresh") != nil {
		t.Fatal("external sync armed a timer")
	}
	if m.Value() != "fresh" {
		t.Errorf("Value() = %q after external push, want %q", m.Value(), "fresh")
	}
	if m.Pending() {
		t.Error("pending after external push resynchronized the value")
	}
	if msg := run(t, m, cmd); msg != nil {
		t.Fatalf("overridden timer emitted %T", msg)
	}
}

func TestBlurNotifiesOwnerWithoutTouchingTimer(t *testing.T) {
	m := newTestInput(t)

	timerCmd := pressRune(t, m, 'a')
	blurCmd := m.Blur()
	if blurCmd == nil {
		t.Fatal("Blur returned no notification")
	}
	if msg, ok := blurCmd().(BlurredMsg); !ok || msg.ID != "field" {
		t.Fatalf("Blur emitted %#v, want BlurredMsg for %q", msg, "field")
	}
	if m.Focused() {
		t.Error("still focused after Blur")
	}

	// Blur is a pure pass-through: the pending commit still fires.
	if !m.Pending() {
		t.Fatal("Blur cancelled the pending commit")
	}
	if _, ok := run(t, m, timerCmd).(ChangedMsg); !ok {
		t.Error("commit did not fire after blur")
	}

	// A second Blur with no focus change stays silent.
	if m.Blur() != nil {
		t.Error("redundant Blur produced a notification")
	}
}

func TestTeardownSuppressesPendingCommit(t *testing.T) {
	m := newTestInput(t)

	cmd := pressRune(t, m, 'a')
	m.Teardown()
	if m.Pending() {
		t.Error("pending after Teardown")
	}
	if msg := run(t, m, cmd); msg != nil {
		t.Fatalf("torn-down timer emitted %T", msg)
	}
}

func TestIgnoresTimersOwnedByOtherFields(t *testing.T) {
	m := newTestInput(t)
	pressRune(t, m, 'a')

	_, cmd := m.Update(core.FireMsg{ID: "other", Gen: 1})
	if cmd != nil {
		t.Error("reacted to another field's timer")
	}
	if !m.Pending() {
		t.Error("another field's timer disturbed the pending commit")
	}
}

func TestUnfocusedInputIgnoresKeys(t *testing.T) {
	m := New("field")
	m.SetDebounce(testDebounce)

	if cmd := pressRune(t, m, 'a'); cmd != nil {
		t.Error("unfocused input armed a timer")
	}
	if m.Value() != "" {
		t.Errorf("unfocused input accepted text: %q", m.Value())
	}
}

func TestEditingKeys(t *testing.T) {
	tests := []struct {
		name  string
		setup string
		keys  []tea.KeyPressMsg
		want  string
	}{
		{
			name:  "ctrl_u_kills_to_start",
			setup: "hello",
			keys:  []tea.KeyPressMsg{{Code: 'u', Mod: tea.ModCtrl}},
			want:  "",
		},
		{
			name:  "backspace_deletes_before_cursor",
			setup: "ab",
			keys:  []tea.KeyPressMsg{{Code: tea.KeyBackspace}},
			want:  "a",
		},
		{
			name:  "ctrl_k_kills_to_end_after_home",
			setup: "ab",
			keys: []tea.KeyPressMsg{
				{Code: tea.KeyHome},
				{Code: 'k', Mod: tea.ModCtrl},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestInput(t)
			m.SetExternalValue(tt.setup)
			for _, key := range tt.keys {
				m.Update(key)
			}
			if m.Value() != tt.want {
				t.Errorf("Value() = %q, want %q", m.Value(), tt.want)
			}
		})
	}
}

func TestViewShowsLabelValueAndError(t *testing.T) {
	m := newTestInput(t)
	m.SetSize(40, 3)
	m.SetLabel("Name")
	m.SetError("required")
	m.SetExternalValue("gopher")

	view := m.View()
	for _, want := range []string{"Name", "gopher", "required"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewShowsPlaceholderWhenEmptyAndBlurred(t *testing.T) {
	m := New("field")
	m.SetSize(40, 1)
	m.SetPlaceholder("type here")

	if !strings.Contains(m.View(), "type here") {
		t.Errorf("view missing placeholder:\n%s", m.View())
	}
}
