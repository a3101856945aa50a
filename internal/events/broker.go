// Package events is the in-process push channel of the client. The sync
// engine publishes pending-change and sync-state notifications here and
// rendering layers (the TUI, the SSE endpoint) subscribe to them, so the core
// never depends on a rendering framework's lifecycle.
package events

import (
	"sync/atomic"
	"time"
)

// Type names an event kind.
type Type string

const (
	TypePendingChanges  Type = "playlist.pending"
	TypePendingCleared  Type = "playlist.pending_cleared"
	TypeVersionsUpdated Type = "playlist.versions_updated"
	TypeDeletedUpstream Type = "playlist.deleted_upstream"
	TypeSyncState       Type = "playlist.sync_state"
	TypeDraftSaved      Type = "draft.saved"
	TypeDraftPublished  Type = "draft.published"
)

// Event is one notification.
type Event struct {
	Type       Type      `json:"type"`
	PlaylistID string    `json:"playlist_id,omitempty"`
	Data       any       `json:"data,omitempty"`
	At         time.Time `json:"at"`
}

// Publisher is the write side of the bus.
type Publisher interface {
	Publish(event Event)
}

// Discard is a [Publisher] that drops every event.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(Event) {}

// Broker fans events out to subscribers.
//
// A single internal loop owns the subscriber set. Public methods talk to it
// over channels, so no mutex is involved. A slow subscriber loses events
// instead of blocking the publisher.
type Broker struct {
	subscribeCh   chan chan Event
	unsubscribeCh chan chan Event
	publishCh     chan Event
	countReqCh    chan chan int

	stopCh  chan struct{}
	stopped chan struct{}
	closed  atomic.Bool
}

const (
	publishBuffer    = 256
	subscriberBuffer = 64
)

// NewBroker starts a broker loop. Call Close to stop it.
func NewBroker() *Broker {
	b := &Broker{
		subscribeCh:   make(chan chan Event),
		unsubscribeCh: make(chan chan Event),
		publishCh:     make(chan Event, publishBuffer),
		countReqCh:    make(chan chan int),
		stopCh:        make(chan struct{}),
		stopped:       make(chan struct{}),
	}

	go b.run()
	return b
}

func (b *Broker) run() {
	defer close(b.stopped)

	subscribers := make(map[chan Event]struct{})

	for {
		select {
		case <-b.stopCh:
			for ch := range subscribers {
				close(ch)
			}
			return

		case ch := <-b.subscribeCh:
			subscribers[ch] = struct{}{}

		case ch := <-b.unsubscribeCh:
			if _, ok := subscribers[ch]; ok {
				delete(subscribers, ch)
				close(ch)
			}

		case event := <-b.publishCh:
			for ch := range subscribers {
				select {
				case ch <- event:
				default:
				}
			}

		case resp := <-b.countReqCh:
			resp <- len(subscribers)
		}
	}
}

// Close stops the loop and closes every subscriber channel. It is safe to
// call more than once.
func (b *Broker) Close() {
	if b.closed.CompareAndSwap(false, true) {
		close(b.stopCh)
	}
	<-b.stopped
}

// Subscribe registers a new subscriber. The returned channel is closed by
// Unsubscribe or Close.
func (b *Broker) Subscribe() chan Event {
	ch := make(chan Event, subscriberBuffer)
	if b.closed.Load() {
		close(ch)
		return ch
	}

	select {
	case b.subscribeCh <- ch:
	case <-b.stopped:
		close(ch)
	}

	return ch
}

// Unsubscribe removes ch and closes it.
func (b *Broker) Unsubscribe(ch chan Event) {
	if b.closed.Load() {
		return
	}
	select {
	case b.unsubscribeCh <- ch:
	case <-b.stopped:
	}
}

// SubscriberCount returns the number of live subscribers.
func (b *Broker) SubscriberCount() int {
	if b.closed.Load() {
		return 0
	}

	resp := make(chan int, 1)
	select {
	case b.countReqCh <- resp:
	case <-b.stopped:
		return 0
	}

	select {
	case n := <-resp:
		return n
	case <-b.stopped:
		return 0
	}
}

// Publish implements [Publisher]. A zero At is stamped with the current
// time.
func (b *Broker) Publish(event Event) {
	if b.closed.Load() {
		return
	}
	if event.At.IsZero() {
		event.At = time.Now()
	}
	select {
	case b.publishCh <- event:
	case <-b.stopped:
	}
}
