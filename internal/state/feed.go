package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// EntityKind names a store slice in change events.
type EntityKind string

const (
	EntityCategories    EntityKind = "categories"
	EntityProducts      EntityKind = "products"
	EntityCollections   EntityKind = "collections"
	EntityOrders        EntityKind = "orders"
	EntityNotifications EntityKind = "notifications"
	EntityProfile       EntityKind = "profile"
	EntityPayment       EntityKind = "payment"
	EntitySocial        EntityKind = "social"
)

// Op describes what happened to a slice.
type Op string

const (
	OpReplace Op = "replace"
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
)

// Event is a store change notification. ID is empty for whole-slice
// replacements and singleton records.
type Event struct {
	Entity EntityKind
	Op     Op
	ID     string
}

// Subscription is a live change-event channel.
type Subscription struct {
	ID     string
	Filter *EventFilter
	Events chan Event
	Done   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
}

// EventFilter restricts which events a subscription receives.
type EventFilter struct {
	Entities []EntityKind
}

// ChangeFeed fans store change events out to subscribers so views can
// re-render the slices they care about without polling.
type ChangeFeed struct {
	mu     sync.RWMutex
	subs   map[string]*Subscription
	logger zerolog.Logger
	nextID int64
	idMu   sync.Mutex
}

// NewChangeFeed creates an empty change feed.
func NewChangeFeed(logger zerolog.Logger) *ChangeFeed {
	return &ChangeFeed{
		subs:   make(map[string]*Subscription),
		logger: logger,
	}
}

// Subscribe creates a subscription that lives until the context is cancelled
// or Unsubscribe is called.
func (f *ChangeFeed) Subscribe(ctx context.Context, filter *EventFilter) *Subscription {
	f.idMu.Lock()
	f.nextID++
	id := fmt.Sprintf("sub-%d", f.nextID)
	f.idMu.Unlock()

	subCtx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		ID:     id,
		Filter: filter,
		Events: make(chan Event, 16),
		Done:   make(chan struct{}),
		ctx:    subCtx,
		cancel: cancel,
	}

	f.mu.Lock()
	f.subs[id] = sub
	f.mu.Unlock()

	f.logger.Debug().Str("subscriptionId", id).Msg("Change feed subscription created")

	go func() {
		<-subCtx.Done()
		f.Unsubscribe(id)
	}()

	return sub
}

// Unsubscribe removes a subscription and closes its channels.
func (f *ChangeFeed) Unsubscribe(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub, ok := f.subs[id]
	if !ok {
		return
	}

	close(sub.Events)
	close(sub.Done)
	sub.cancel()
	delete(f.subs, id)

	f.logger.Debug().Str("subscriptionId", id).Msg("Change feed subscription removed")
}

// Publish delivers an event to every matching subscriber. Delivery is
// non-blocking: a subscriber with a full buffer drops the event.
func (f *ChangeFeed) Publish(event Event) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, sub := range f.subs {
		if !matchesFilter(event, sub.Filter) {
			continue
		}
		select {
		case sub.Events <- event:
		case <-sub.ctx.Done():
		default:
			f.logger.Warn().
				Str("subscriptionId", sub.ID).
				Str("entity", string(event.Entity)).
				Msg("Subscriber buffer full, dropping event")
		}
	}
}

// Len returns the number of active subscriptions.
func (f *ChangeFeed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}

func matchesFilter(event Event, filter *EventFilter) bool {
	if filter == nil || len(filter.Entities) == 0 {
		return true
	}
	for _, kind := range filter.Entities {
		if event.Entity == kind {
			return true
		}
	}
	return false
}
