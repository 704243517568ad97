package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// FireMsg is delivered when an armed one-shot elapses.
type FireMsg struct {
	Time time.Time
	ID   string // distinguishes timers owned by different components
	Gen  uint64 // stamp of the arming call; stale stamps must be ignored
}

// OneShot arms single-delivery timers for a component. Bubble Tea has no
// way to cancel a command once issued, so cancellation works by
// invalidation: each Arm carries a stamp, and the consumer drops any
// FireMsg whose stamp is no longer the live one.
type OneShot struct {
	id string
}

// NewOneShot creates a one-shot timer source with the given identity.
func NewOneShot(id string) *OneShot {
	return &OneShot{id: id}
}

// Arm schedules a FireMsg stamped gen after d.
func (o *OneShot) Arm(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FireMsg{Time: t, ID: o.id, Gen: gen}
	})
}

// Owns reports whether the message came from this timer source.
func (o *OneShot) Owns(msg FireMsg) bool {
	return msg.ID == o.id
}
