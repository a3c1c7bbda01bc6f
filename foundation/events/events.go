// Package events allows goroutines to subscribe to the messages produced by
// the chain and the memo builder.
package events

import (
	"fmt"
	"sync"
)

// messageBuffer is the number of messages a subscriber can fall behind
// before messages to it are dropped.
const messageBuffer = 100

// Events maintains a set of subscriber channels keyed by a unique id.
type Events struct {
	mu   sync.RWMutex
	subs map[string]chan string
}

// New constructs an Events value for subscribing and publishing.
func New() *Events {
	return &Events{
		subs: make(map[string]chan string),
	}
}

// Shutdown closes and removes every subscriber channel.
func (evt *Events) Shutdown() {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	for id, ch := range evt.subs {
		delete(evt.subs, id)
		close(ch)
	}
}

// Acquire returns the channel for the specified id, creating it when the id
// is new.
func (evt *Events) Acquire(id string) <-chan string {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	if ch, exists := evt.subs[id]; exists {
		return ch
	}

	ch := make(chan string, messageBuffer)
	evt.subs[id] = ch

	return ch
}

// Release closes and removes the channel for the specified id.
func (evt *Events) Release(id string) error {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	ch, exists := evt.subs[id]
	if !exists {
		return fmt.Errorf("id %q does not exist", id)
	}

	delete(evt.subs, id)
	close(ch)

	return nil
}

// Subscribers returns the number of active subscribers.
func (evt *Events) Subscribers() int {
	evt.mu.RLock()
	defer evt.mu.RUnlock()

	return len(evt.subs)
}

// Send publishes the message to every subscriber. A subscriber whose buffer
// is full misses the message, Send never blocks.
func (evt *Events) Send(s string) {
	evt.mu.RLock()
	defer evt.mu.RUnlock()

	for _, ch := range evt.subs {
		select {
		case ch <- s:
		default:
		}
	}
}
