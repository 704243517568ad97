package events

import "github.com/billie-coop/quiet/internal/debounce"

// EventType identifies the type of event
type EventType string

const (
	// Input events
	InputCommittedEvent EventType = "input.committed"
	InputBlurredEvent   EventType = "input.blurred"
	InputSyncedEvent    EventType = "input.synced"

	// UI events
	StatusMessageEvent EventType = "ui.status"
)

// Event represents an event in the system
type Event struct {
	Type    EventType
	Payload interface{}
}

// Event payload types

// InputCommittedPayload carries a settled value from a debounced input.
type InputCommittedPayload struct {
	ID    string
	Event debounce.ChangeEvent
}

// InputBlurredPayload reports that a field lost focus.
type InputBlurredPayload struct {
	ID string
}

// InputSyncedPayload reports that the owner pushed a value into a field.
type InputSyncedPayload struct {
	ID    string
	Value string
}

// StatusMessagePayload carries a transient status bar message.
type StatusMessagePayload struct {
	Message string
	Type    string // "info", "warning", "error", "success"
}
