package events

import "sync"

// wildcard subscriptions receive every event regardless of type.
const wildcard EventType = "*"

// Broker fans events out to subscriber channels by type. Delivery is
// best-effort: a subscriber that stops draining its channel loses events
// rather than blocking the publisher.
type Broker struct {
	mu         sync.RWMutex
	subs       map[EventType][]chan Event
	bufferSize int
}

// NewBroker creates a new event broker
func NewBroker() *Broker {
	return &Broker{
		subs:       make(map[EventType][]chan Event),
		bufferSize: 10,
	}
}

// Subscribe returns a channel receiving the given event types. With no
// types it receives everything.
func (b *Broker) Subscribe(eventTypes ...EventType) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)

	if len(eventTypes) == 0 {
		eventTypes = []EventType{wildcard}
	}
	for _, et := range eventTypes {
		b.subs[et] = append(b.subs[et], ch)
	}

	return ch
}

// Unsubscribe removes a subscription. With no types it removes the
// channel everywhere. The channel is closed once it no longer appears
// under any type, even when it was registered under several.
func (b *Broker) Unsubscribe(ch <-chan Event, eventTypes ...EventType) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var removed chan Event
	if len(eventTypes) == 0 {
		for et := range b.subs {
			if got := b.remove(et, ch); got != nil {
				removed = got
			}
		}
	} else {
		for _, et := range eventTypes {
			if got := b.remove(et, ch); got != nil {
				removed = got
			}
		}
	}

	if removed != nil && !b.subscribed(removed) {
		close(removed)
	}
}

// Publish sends an event to typed and wildcard subscribers.
func (b *Broker) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	b.send(b.subs[event.Type], event)
	b.send(b.subs[wildcard], event)
}

// PublishAsync sends an event without blocking the caller.
func (b *Broker) PublishAsync(event Event) {
	go b.Publish(event)
}

func (b *Broker) send(channels []chan Event, event Event) {
	for _, ch := range channels {
		select {
		case ch <- event:
		default:
			// subscriber is full; drop rather than block
		}
	}
}

// remove drops target from one type's list and returns the concrete
// channel when found. Closing is the caller's job.
func (b *Broker) remove(eventType EventType, target <-chan Event) chan Event {
	channels := b.subs[eventType]
	for i, ch := range channels {
		if ch == target {
			b.subs[eventType] = append(channels[:i], channels[i+1:]...)
			if len(b.subs[eventType]) == 0 {
				delete(b.subs, eventType)
			}
			return ch
		}
	}
	return nil
}

// subscribed reports whether target is still registered under any type.
func (b *Broker) subscribed(target chan Event) bool {
	for _, channels := range b.subs {
		for _, ch := range channels {
			if ch == target {
				return true
			}
		}
	}
	return false
}

// Clear closes every subscription.
func (b *Broker) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	closed := make(map[chan Event]bool)
	for _, channels := range b.subs {
		for _, ch := range channels {
			if !closed[ch] {
				close(ch)
				closed[ch] = true
			}
		}
	}
	b.subs = make(map[EventType][]chan Event)
}
