package selection

import (
	"sync"
)

// KeyHandler receives a key name ("left", "right", "q", ...) and reports
// whether it consumed the key.
type KeyHandler func(key string) bool

// Listener is a registry of key handlers shared by a program. Views attach on
// mount and release on teardown so a torn-down view never sees a key.
type Listener struct {
	mu       sync.Mutex
	next     int
	handlers map[int]KeyHandler
	order    []int
}

// NewListener returns an empty registry.
func NewListener() *Listener {
	return &Listener{handlers: make(map[int]KeyHandler)}
}

// Attach registers h and returns its release function. Release is idempotent.
func (l *Listener) Attach(h KeyHandler) (release func()) {
	l.mu.Lock()
	id := l.next
	l.next++
	if l.handlers == nil {
		l.handlers = make(map[int]KeyHandler)
	}
	l.handlers[id] = h
	l.order = append(l.order, id)
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.handlers, id)
			for i, v := range l.order {
				if v == id {
					l.order = append(l.order[:i], l.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Dispatch offers key to attached handlers in attach order and stops at the
// first one that consumes it.
func (l *Listener) Dispatch(key string) bool {
	l.mu.Lock()
	handlers := make([]KeyHandler, 0, len(l.order))
	for _, id := range l.order {
		handlers = append(handlers, l.handlers[id])
	}
	l.mu.Unlock()

	for _, h := range handlers {
		if h(key) {
			return true
		}
	}
	return false
}

// Len returns the number of attached handlers.
func (l *Listener) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}

// BindKeys attaches the arrow-key mapping for c: left navigates to the
// previous record, right to the next.
func (c *Controller) BindKeys(l *Listener) (release func()) {
	return l.Attach(func(key string) bool {
		switch key {
		case "left":
			c.Navigate(Previous)
			return true
		case "right":
			c.Navigate(Next)
			return true
		}
		return false
	})
}
