// Package input adapts terminal input into host signals for the trackers.
package input

import "github.com/verte-zerg/keix/internal/keys"

// Event is a host signal delivered through a Bus.
type Event interface {
	isEvent()
}

// KeyDown is a press or auto-repeat of a physical key.
type KeyDown struct {
	Code   keys.ID
	Repeat bool

	prevented bool
}

// PreventDefault stops the shell from applying its own binding for the key.
func (e *KeyDown) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a handler consumed the key.
func (e *KeyDown) DefaultPrevented() bool {
	return e.prevented
}

// KeyUp is a release of a physical key.
type KeyUp struct {
	Code keys.ID
}

// TextChange carries the full value of the capture field after an edit.
type TextChange struct {
	Value string
}

func (*KeyDown) isEvent()   {}
func (KeyUp) isEvent()      {}
func (TextChange) isEvent() {}

// Handler receives events published on a Bus.
type Handler func(Event)

// Bus delivers host events synchronously to its subscribers.
type Bus struct {
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id      int
	handler Handler
}

// Subscription detaches a handler from its Bus.
type Subscription struct {
	bus *Bus
	id  int
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h. The returned subscription must be unsubscribed when
// the subscriber is deactivated.
func (b *Bus) Subscribe(h Handler) *Subscription {
	b.nextID++
	b.subs = append(b.subs, subscriber{id: b.nextID, handler: h})
	return &Subscription{bus: b, id: b.nextID}
}

// Publish delivers ev to every subscriber in subscription order.
func (b *Bus) Publish(ev Event) {
	subs := append([]subscriber(nil), b.subs...)
	for _, s := range subs {
		s.handler(ev)
	}
}

// Len returns the number of live subscriptions.
func (b *Bus) Len() int {
	return len(b.subs)
}

// Unsubscribe removes the handler. Calling it again is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.bus == nil {
		return
	}
	subs := s.bus.subs
	for i, sub := range subs {
		if sub.id == s.id {
			s.bus.subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	s.bus = nil
}
