package debounce

import "time"

// DefaultDuration is the quiet period used when the caller does not
// supply one.
const DefaultDuration = 3 * time.Second

// TimerAction tells the caller what to do with its pending timer after a
// state change. Cancellation is always implicit in Reschedule: the caller
// must drop the old timer before arming the new one.
type TimerAction int

const (
	// ActionNone means the pending timer (if any) is still valid.
	ActionNone TimerAction = iota
	// ActionCancel means any pending timer must be dropped and nothing
	// new scheduled.
	ActionCancel
	// ActionReschedule means any pending timer must be dropped and a new
	// one armed for the full quiet period.
	ActionReschedule
)

// String returns a human-readable name for the action.
func (a TimerAction) String() string {
	switch a {
	case ActionCancel:
		return "cancel"
	case ActionReschedule:
		return "reschedule"
	default:
		return "none"
	}
}

// Target echoes the settled value the way a DOM change event would, so
// owners written against event.Target.Value keep working.
type Target struct {
	Value string
}

// ChangeEvent carries a settled value to the owner once the quiet period
// elapses. The value appears twice on purpose: once as the primary field
// and once echoed under Target.
type ChangeEvent struct {
	Value  string
	Target Target
}

// Controller mediates between raw keystrokes and a downstream owner that
// only wants to hear about the value once typing has settled. It is not
// safe for concurrent use; it expects to live inside a single event loop
// where each handler runs to completion.
type Controller struct {
	external string
	internal string
	duration time.Duration
	clock    Clock

	// gen stamps each armed timer. A timer whose stamp no longer matches
	// has been cancelled; its expiry must be ignored.
	gen      uint64
	armed    bool
	deadline time.Time
}

// New creates a controller whose internal value starts mirroring the
// owner's value. A non-positive duration falls back to DefaultDuration.
func New(value string, d time.Duration) *Controller {
	return NewWithClock(value, d, SystemClock{})
}

// NewWithClock is New with an injected clock.
func NewWithClock(value string, d time.Duration, clk Clock) *Controller {
	if d <= 0 {
		d = DefaultDuration
	}
	if clk == nil {
		clk = SystemClock{}
	}
	return &Controller{
		external: value,
		internal: value,
		duration: d,
		clock:    clk,
	}
}

// Value returns the live value the widget should display. It reflects the
// most recent keystroke or owner push immediately, never delayed.
func (c *Controller) Value() string { return c.internal }

// ExternalValue returns the value the owner last supplied.
func (c *Controller) ExternalValue() string { return c.external }

// Dirty reports whether the live value has diverged from the owner's.
func (c *Controller) Dirty() bool { return c.internal != c.external }

// Pending reports whether a commit timer is armed.
func (c *Controller) Pending() bool { return c.armed }

// Generation returns the stamp of the armed timer. Only meaningful while
// Pending reports true.
func (c *Controller) Generation() uint64 { return c.gen }

// Duration returns the configured quiet period.
func (c *Controller) Duration() time.Duration { return c.duration }

// Deadline returns when the armed timer will fire. Zero when idle.
func (c *Controller) Deadline() time.Time {
	if !c.armed {
		return time.Time{}
	}
	return c.deadline
}

// Keystroke records a raw edit. The live value updates unconditionally
// before the scheduling rule runs, so display latency never depends on
// the quiet period.
func (c *Controller) Keystroke(text string) TimerAction {
	c.internal = text
	return c.evaluate()
}

// SetExternalValue records a push from the owner. The owner is the source
// of truth when it speaks: the live value is overwritten even mid-edit,
// and any pending commit is re-evaluated against the new value.
func (c *Controller) SetExternalValue(value string) TimerAction {
	c.external = value
	c.internal = value
	return c.evaluate()
}

// SetDuration changes the quiet period and re-runs the scheduling rule.
// A pending commit restarts with the full new duration.
func (c *Controller) SetDuration(d time.Duration) TimerAction {
	if d <= 0 {
		d = DefaultDuration
	}
	c.duration = d
	return c.evaluate()
}

// Expire delivers the commit for the timer stamped gen. A stale stamp, or
// an idle controller, yields ok=false and mutates nothing: a cancelled
// timer behaves as if it was never armed. The timer handle is cleared on
// delivery and never self-reschedules.
func (c *Controller) Expire(gen uint64) (ev ChangeEvent, ok bool) {
	if !c.armed || gen != c.gen {
		return ChangeEvent{}, false
	}
	c.armed = false
	return ChangeEvent{
		Value:  c.internal,
		Target: Target{Value: c.internal},
	}, true
}

// Teardown drops any pending timer without committing. Safe to call from
// any state.
func (c *Controller) Teardown() {
	c.armed = false
}

// evaluate is the single transition function behind every mutating entry
// point: cancel-then-maybe-reschedule, never leak-and-replace. Equal
// values need no commit (typing back to the original cancels silently);
// diverged values restart the full quiet period.
func (c *Controller) evaluate() TimerAction {
	if c.internal == c.external {
		if !c.armed {
			return ActionNone
		}
		c.armed = false
		return ActionCancel
	}
	c.gen++
	c.armed = true
	c.deadline = c.clock.Now().Add(c.duration)
	return ActionReschedule
}
