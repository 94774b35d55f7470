package state

import (
	"sync"

	"atelier-admin-core/internal/domain"

	"github.com/rs/zerolog"
)

// Store holds the current snapshot of every entity collection. It is the
// single owner of all entity records: services are the only writers, UI-side
// consumers read copies through a Facade and never mutate records in place.
//
// Every mutation replaces affected records copy-on-write while holding the
// write lock, so a concurrent reader always observes a complete snapshot.
// Combined mutations (a product update that moves it between categories)
// happen in one critical section; no intermediate state is observable.
//
// Lifecycle: New → hydrate (via the sync service) → ready. A Store starts
// populated with seed data so the admin tool stays usable with no backend.
type Store struct {
	mu     sync.RWMutex
	logger zerolog.Logger
	feed   *ChangeFeed

	categories    []domain.Category
	products      []domain.Product
	collections   []domain.Collection
	orders        []domain.Order
	notifications []domain.Notification
	profile       domain.UserProfile
	payment       domain.PaymentMethods
	social        []domain.SocialAccount
}

// New creates a store pre-populated with seed data.
func New(logger zerolog.Logger) *Store {
	s := &Store{
		logger: logger,
		feed:   NewChangeFeed(logger),
	}
	applySeed(s)
	return s
}

// Facade returns the read-side access point for this store.
func (s *Store) Facade() Facade {
	return Facade{store: s}
}

// Feed returns the store's change feed.
func (s *Store) Feed() *ChangeFeed {
	return s.feed
}

// Reads. All list reads return copies in insertion order.

func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Collections() []domain.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Collection, len(s.collections))
	copy(out, s.collections)
	return out
}

func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Store) Profile() domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Store) PaymentMethods() domain.PaymentMethods {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payment
}

func (s *Store) SocialAccounts() []domain.SocialAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SocialAccount, len(s.social))
	copy(out, s.social)
	return out
}

// Category looks up a category by id. Lookups by name are O(n) scans; the
// category slice is tens of records at most.
func (s *Store) Category(id string) (domain.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}

// Product looks up a product by id.
func (s *Store) Product(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Order looks up an order by id.
func (s *Store) Order(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

// UnreadCount returns the number of unread notifications.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, nt := range s.notifications {
		if !nt.Read {
			n++
		}
	}
	return n
}

// Hydration writes. Each slice is replaced independently so a partial
// hydration (one endpoint down) still applies the data that did arrive.

// SetCategories replaces the category slice.
func (s *Store) SetCategories(categories []domain.Category) {
	s.mu.Lock()
	s.categories = append([]domain.Category(nil), categories...)
	s.mu.Unlock()
	s.feed.Publish(Event{Entity: EntityCategories, Op: OpReplace})
}

// SetProducts replaces the product slice.
func (s *Store) SetProducts(products []domain.Product) {
	s.mu.Lock()
	s.products = append([]domain.Product(nil), products...)
	s.mu.Unlock()
	s.feed.Publish(Event{Entity: EntityProducts, Op: OpReplace})
}

// Category writes.

// ApplyCategoryCreate assigns the next display order, appends the category
// and returns the stored record.
func (s *Store) ApplyCategoryCreate(c domain.Category) domain.Category {
	s.mu.Lock()
	c.DisplayOrder = len(s.categories) + 1
	s.categories = append(append([]domain.Category(nil), s.categories...), c)
	s.mu.Unlock()
	s.feed.Publish(Event{Entity: EntityCategories, Op: OpCreate, ID: c.ID})
	return c
}

// ApplyCategoryUpdate replaces the category with the same id, keeping its
// position. Unknown ids are a no-op.
func (s *Store) ApplyCategoryUpdate(c domain.Category) {
	s.mu.Lock()
	next := make([]domain.Category, len(s.categories))
	for i, prev := range s.categories {
		if prev.ID == c.ID {
			next[i] = c
		} else {
			next[i] = prev
		}
	}
	s.categories = next
	s.mu.Unlock()
	s.feed.Publish(Event{Entity: EntityCategories, Op: OpUpdate, ID: c.ID})
}

// ApplyCategoryDelete removes the category. Products referencing it by name
// are deliberately left alone: the stale reference is a documented
// inconsistency of this layer, not a cleanup guarantee.
func (s *Store) ApplyCategoryDelete(id string) bool {
	s.mu.Lock()
	next := s.categories[:0:0]
	found := false
	for _, c := range s.categories {
		if c.ID == id {
			found = true
			continue
		}
		next = append(next, c)
	}
	s.categories = next
	s.mu.Unlock()
	if found {
		s.feed.Publish(Event{Entity: EntityCategories, Op: OpDelete, ID: id})
	}
	return found
}

// ReorderCategories rearranges the slice to match the given id order and
// reassigns DisplayOrder as a dense 1..N sequence. Ids not present in the
// store are skipped; stored categories missing from the list keep their
// relative order at the tail, so the sequence stays dense either way.
func (s *Store) ReorderCategories(ids []string) {
	s.mu.Lock()
	byID := make(map[string]domain.Category, len(s.categories))
	for _, c := range s.categories {
		byID[c.ID] = c
	}
	next := make([]domain.Category, 0, len(s.categories))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok && !seen[id] {
			next = append(next, c)
			seen[id] = true
		}
	}
	for _, c := range s.categories {
		if !seen[c.ID] {
			next = append(next, c)
		}
	}
	for i := range next {
		next[i].DisplayOrder = i + 1
	}
	s.categories = next
	s.mu.Unlock()
	s.feed.Publish(Event{Entity: EntityCategories, Op: OpReplace})
}

// Product writes. Count maintenance happens inside the same critical section
// as the product change so no reader sees the product slice and the category
// counts disagree beyond the documented missing-reference exception.

// ApplyProductCreate appends the product and increments the product count of
// the category whose name matches. An unknown category name is a no-op.
func (s *Store) ApplyProductCreate(p domain.Product) domain.Product {
	s.mu.Lock()
	s.products = append(append([]domain.Product(nil), s.products...), p)
	s.adjustCountLocked(p.Category, +1)
	s.mu.Unlock()
	s.feed.Publish(Event{Entity: EntityProducts, Op: OpCreate, ID: p.ID})
	return p
}

// ApplyProductUpdate replaces the product with the same id. When the
// category name changed, the old category's count is decremented (floored at
// zero) and the new one's incremented in the same state replace.
func (s *Store) ApplyProductUpdate(p domain.Product, oldCategory string) {
	s.mu.Lock()
	next := make([]domain.Product, len(s.products))
	for i, prev := range s.products {
		if prev.ID == p.ID {
			next[i] = p
		} else {
			next[i] = prev
		}
	}
	s.products = next
	if oldCategory != p.Category {
		s.adjustCountLocked(oldCategory, -1)
		s.adjustCountLocked(p.Category, +1)
	}
	s.mu.Unlock()
	s.feed.Publish(Event{Entity: EntityProducts, Op: OpUpdate, ID: p.ID})
}

// ApplyProductDelete removes the product and decrements its category count.
func (s *Store) ApplyProductDelete(id string) bool {
	s.mu.Lock()
	next := s.products[:0:0]
	category := ""
	found := false
	for _, p := range s.products {
		if p.ID == id {
			category = p.Category
			found = true
			continue
		}
		next = append(next, p)
	}
	s.products = next
	if found {
		s.adjustCountLocked(category, -1)
	}
	s.mu.Unlock()
	if found {
		s.feed.Publish(Event{Entity: EntityProducts, Op: OpDelete, ID: id})
	}
	return found
}

// adjustCountLocked shifts a category's product count by delta, flooring at
// zero. A category name with no matching record is tolerated as a no-op.
// Caller must hold the write lock.
func (s *Store) adjustCountLocked(name string, delta int) {
	if name == "" {
		return
	}
	for i, c := range s.categories {
		if c.Name != name {
			continue
		}
		next := make([]domain.Category, len(s.categories))
		copy(next, s.categories)
		count := c.ProductCount + delta
		if count < 0 {
			count = 0
		}
		next[i].ProductCount = count
		s.categories = next
		return
	}
}

// Local-only writes.

// UpsertCollection inserts the collection or replaces the one sharing its id.
func (s *Store) UpsertCollection(c domain.Collection) {
	s.mu.Lock()
	replaced := false
	next := make([]domain.Collection, len(s.collections))
	for i, prev := range s.collections {
		if prev.ID == c.ID {
			next[i] = c
			replaced = true
		} else {
			next[i] = prev
		}
	}
	if !replaced {
		next = append(next, c)
	}
	s.collections = next
	s.mu.Unlock()
	op := OpCreate
	if replaced {
		op = OpUpdate
	}
	s.feed.Publish(Event{Entity: EntityCollections, Op: op, ID: c.ID})
}

// RemoveCollection deletes a collection by id.
func (s *Store) RemoveCollection(id string) bool {
	s.mu.Lock()
	next := s.collections[:0:0]
	found := false
	for _, c := range s.collections {
		if c.ID == id {
			found = true
			continue
		}
		next = append(next, c)
	}
	s.collections = next
	s.mu.Unlock()
	if found {
		s.feed.Publish(Event{Entity: EntityCollections, Op: OpDelete, ID: id})
	}
	return found
}

// AppendOrder records a new order.
func (s *Store) AppendOrder(o domain.Order) {
	s.mu.Lock()
	s.orders = append(append([]domain.Order(nil), s.orders...), o)
	s.mu.Unlock()
	s.feed.Publish(Event{Entity: EntityOrders, Op: OpCreate, ID: o.ID})
}

// ReplaceOrder replaces the order with the same id.
func (s *Store) ReplaceOrder(o domain.Order) bool {
	s.mu.Lock()
	found := false
	next := make([]domain.Order, len(s.orders))
	for i, prev := range s.orders {
		if prev.ID == o.ID {
			next[i] = o
			found = true
		} else {
			next[i] = prev
		}
	}
	s.orders = next
	s.mu.Unlock()
	if found {
		s.feed.Publish(Event{Entity: EntityOrders, Op: OpUpdate, ID: o.ID})
	}
	return found
}

// PrependNotification inserts a notification at the head of the inbox.
func (s *Store) PrependNotification(n domain.Notification) {
	s.mu.Lock()
	s.notifications = append([]domain.Notification{n}, s.notifications...)
	s.mu.Unlock()
	s.feed.Publish(Event{Entity: EntityNotifications, Op: OpCreate, ID: n.ID})
}

// MarkNotificationRead marks a single notification as read.
func (s *Store) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	found := false
	next := make([]domain.Notification, len(s.notifications))
	for i, prev := range s.notifications {
		if prev.ID == id {
			prev.Read = true
			found = true
		}
		next[i] = prev
	}
	s.notifications = next
	s.mu.Unlock()
	if found {
		s.feed.Publish(Event{Entity: EntityNotifications, Op: OpUpdate, ID: id})
	}
	return found
}

// MarkAllNotificationsRead marks the whole inbox as read.
func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	next := make([]domain.Notification, len(s.notifications))
	for i, prev := range s.notifications {
		prev.Read = true
		next[i] = prev
	}
	s.notifications = next
	s.mu.Unlock()
	s.feed.Publish(Event{Entity: EntityNotifications, Op: OpReplace})
}

// SetProfile replaces the profile record.
func (s *Store) SetProfile(p domain.UserProfile) {
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
	s.feed.Publish(Event{Entity: EntityProfile, Op: OpUpdate})
}

// SetPaymentMethods replaces the payment configuration.
func (s *Store) SetPaymentMethods(pm domain.PaymentMethods) {
	s.mu.Lock()
	s.payment = pm
	s.mu.Unlock()
	s.feed.Publish(Event{Entity: EntityPayment, Op: OpUpdate})
}

// SetSocialAccounts replaces the linked social accounts.
func (s *Store) SetSocialAccounts(accounts []domain.SocialAccount) {
	s.mu.Lock()
	s.social = append([]domain.SocialAccount(nil), accounts...)
	s.mu.Unlock()
	s.feed.Publish(Event{Entity: EntitySocial, Op: OpReplace})
}
