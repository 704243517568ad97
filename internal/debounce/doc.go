// Package debounce holds the state machine behind the debounced text
// input: the live value the user sees, the authoritative value the owner
// last supplied, and at most one pending commit timer. It knows nothing
// about rendering or Bubble Tea; callers drive it from their own event
// loop and act on the timer instructions it hands back.
package debounce
