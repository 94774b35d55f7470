package state

import (
	"context"

	"atelier-admin-core/internal/domain"
)

// Facade is the read-side access point handed to view-layer consumers. It
// exposes slice reads, derived helpers and the change feed, and nothing that
// mutates entities directly.
//
// A Facade must come from Store.Facade. Using a zero-value Facade is a
// programming error and panics, the equivalent of reading application state
// before the store exists.
type Facade struct {
	store *Store
}

func (f Facade) guard() *Store {
	if f.store == nil {
		panic("state: Facade used outside an initialized store; obtain it from Store.Facade")
	}
	return f.store
}

func (f Facade) Categories() []domain.Category { return f.guard().Categories() }

func (f Facade) Products() []domain.Product { return f.guard().Products() }

func (f Facade) Collections() []domain.Collection { return f.guard().Collections() }

func (f Facade) Orders() []domain.Order { return f.guard().Orders() }

func (f Facade) Notifications() []domain.Notification { return f.guard().Notifications() }

func (f Facade) Profile() domain.UserProfile { return f.guard().Profile() }

func (f Facade) PaymentMethods() domain.PaymentMethods { return f.guard().PaymentMethods() }

func (f Facade) SocialAccounts() []domain.SocialAccount { return f.guard().SocialAccounts() }

// UnreadCount returns the number of unread notifications.
func (f Facade) UnreadCount() int { return f.guard().UnreadCount() }

// Subscribe attaches a change-feed subscription scoped to ctx.
func (f Facade) Subscribe(ctx context.Context, filter *EventFilter) *Subscription {
	return f.guard().Feed().Subscribe(ctx, filter)
}
