// Package vimpubsub is a small generic publish/subscribe broker used to
// fan engine log lines out to anything watching them (a REPL's log
// pane, a tailing CLI subcommand, a test). It is deliberately NOT used
// by internal/vimcore itself: the engine's own EventSink (see
// vimcore/events.go) must deliver synchronously and never drop an
// event, while this broker is asynchronous, buffered, and drops under
// backpressure — the right tradeoff for "best-effort log tailing", the
// wrong one for "the engine's own dispatch loop".
package vimpubsub

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultBufferSize = 64

// EventType distinguishes why an event was published.
type EventType string

const (
	LineAppended EventType = "line-appended"
	StreamClosed EventType = "stream-closed"
)

// Event is a published value with its type and publish time.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp func() time.Time
}

// at returns the event's timestamp, calling Timestamp lazily so
// property/unit tests can construct Events without invoking time.Now.
func (e Event[T]) at() time.Time {
	if e.Timestamp == nil {
		return time.Time{}
	}
	return e.Timestamp()
}

// Broker is a generic, non-blocking pub/sub hub: Publish never blocks
// the publisher, and a slow or absent subscriber just misses events
// rather than stalling the broker.
type Broker[T any] struct {
	mu         sync.RWMutex
	subs       map[chan Event[T]]struct{}
	done       chan struct{}
	bufferSize int
}

// NewBroker returns a broker with a sensible default subscriber buffer.
func NewBroker[T any]() *Broker[T] {
	return NewBrokerWithBuffer[T](defaultBufferSize)
}

// NewBrokerWithBuffer returns a broker whose subscriber channels hold up
// to size buffered events before Publish starts dropping for that
// subscriber.
func NewBrokerWithBuffer[T any](size int) *Broker[T] {
	return &Broker[T]{
		subs:       make(map[chan Event[T]]struct{}),
		done:       make(chan struct{}),
		bufferSize: size,
	}
}

// Subscribe returns a channel of events, automatically unsubscribed and
// closed when ctx is done.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	select {
	case <-b.done:
		closed := make(chan Event[T])
		close(closed)
		return closed
	default:
	}

	sub := make(chan Event[T], b.bufferSize)
	b.subs[sub] = struct{}{}

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		select {
		case <-b.done:
			return
		default:
		}
		delete(b.subs, sub)
		close(sub)
	}()

	return sub
}

// Publish fans payload out to every live subscriber. Never blocks: a
// subscriber whose buffer is full simply misses this event.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	select {
	case <-b.done:
		return
	default:
	}

	now := time.Now()
	event := Event[T]{Type: eventType, Payload: payload, Timestamp: func() time.Time { return now }}
	for sub := range b.subs {
		select {
		case sub <- event:
		default:
		}
	}
}

// Close shuts the broker down, closing every subscriber channel.
// Publish and Subscribe are no-ops after Close.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	select {
	case <-b.done:
		return
	default:
	}
	close(b.done)
	for sub := range b.subs {
		close(sub)
	}
	b.subs = nil
}

// SubscriberCount reports how many subscriptions are currently live.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// ListenCmd adapts a subscription channel into a tea.Cmd that resolves
// to the next Event (or nil once ctx is done / the channel closes).
func ListenCmd[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return event
		}
	}
}

// ContinuousListener threads a broker subscription through a Bubble Tea
// Update loop: call Listen() once after handling each received event to
// keep receiving the next one.
type ContinuousListener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewContinuousListener subscribes to broker for the lifetime of ctx.
func NewContinuousListener[T any](ctx context.Context, broker *Broker[T]) *ContinuousListener[T] {
	return &ContinuousListener[T]{ctx: ctx, ch: broker.Subscribe(ctx)}
}

func (l *ContinuousListener[T]) Listen() tea.Cmd {
	return ListenCmd(l.ctx, l.ch)
}
