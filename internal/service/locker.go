package service

import "sync"

// EventLocker serialises mutations per event number so that the
// check-then-adjust sequence on an event's inventory cannot interleave.
type EventLocker struct {
	mu    sync.Mutex
	locks map[int64]*eventLock
}

type eventLock struct {
	mu   sync.Mutex
	refs int
}

func NewEventLocker() *EventLocker {
	return &EventLocker{locks: make(map[int64]*eventLock)}
}

// Lock blocks until the event is free and returns the matching unlock func.
func (l *EventLocker) Lock(eventNumber int64) func() {
	l.mu.Lock()
	el, ok := l.locks[eventNumber]
	if !ok {
		el = &eventLock{}
		l.locks[eventNumber] = el
	}
	el.refs++
	l.mu.Unlock()

	el.mu.Lock()

	return func() {
		el.mu.Unlock()

		l.mu.Lock()
		el.refs--
		if el.refs == 0 {
			delete(l.locks, eventNumber)
		}
		l.mu.Unlock()
	}
}
