package application

import (
	"fmt"
	"time"

	"atelier-admin-core/internal/domain"
	"atelier-admin-core/internal/ports"
	"atelier-admin-core/internal/state"

	"github.com/rs/zerolog"
)

// LocalService handles the entities with no remote persistence: collections,
// orders, notifications, profile, payment methods and social accounts. Every
// mutation is a copy-on-write into the store; ids come from the injected
// IDSource so tests can produce deterministic ones.
type LocalService struct {
	store  *state.Store
	ids    ports.IDSource
	logger zerolog.Logger
	now    func() time.Time
}

// NewLocalService creates a local service using the wall clock.
func NewLocalService(store *state.Store, ids ports.IDSource, logger zerolog.Logger) *LocalService {
	return NewLocalServiceWithClock(store, ids, logger, time.Now)
}

// NewLocalServiceWithClock creates a local service with an injected clock.
func NewLocalServiceWithClock(store *state.Store, ids ports.IDSource, logger zerolog.Logger, now func() time.Time) *LocalService {
	return &LocalService{
		store:  store,
		ids:    ids,
		logger: logger,
		now:    now,
	}
}

// SaveCollection creates or updates a collection. ProductNames is refreshed
// from the current product slice at save time; it is a denormalized cache
// and goes stale if member products are later renamed.
func (s *LocalService) SaveCollection(input domain.CollectionInput) domain.Collection {
	coll := domain.Collection{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		ProductIDs:  append([]string(nil), input.ProductIDs...),
		CreatedAt:   s.now(),
	}
	if coll.ID == "" {
		coll.ID = s.ids.NewID()
	} else {
		for _, existing := range s.store.Collections() {
			if existing.ID == coll.ID {
				coll.CreatedAt = existing.CreatedAt
				break
			}
		}
	}

	products := s.store.Products()
	byID := make(map[string]string, len(products))
	for _, p := range products {
		byID[p.ID] = p.Name
	}
	for _, id := range coll.ProductIDs {
		if name, ok := byID[id]; ok {
			coll.ProductNames = append(coll.ProductNames, name)
		}
	}

	s.store.UpsertCollection(coll)
	return coll
}

// DeleteCollection removes a collection.
func (s *LocalService) DeleteCollection(id string) error {
	if !s.store.RemoveCollection(id) {
		return fmt.Errorf("delete collection %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CreateOrder records a new order in pending/pending state and drops a
// notification into the inbox.
func (s *LocalService) CreateOrder(input domain.OrderInput) domain.Order {
	order := domain.Order{
		ID:              s.ids.NewID(),
		OrderNumber:     input.OrderNumber,
		CustomerName:    input.CustomerName,
		Email:           input.Email,
		Phone:           input.Phone,
		Date:            s.now(),
		Status:          domain.OrderPending,
		PaymentStatus:   domain.PaymentPending,
		Total:           input.Total,
		Items:           append([]domain.OrderItem(nil), input.Items...),
		ShippingAddress: input.ShippingAddress,
		CustomerType:    input.CustomerType,
	}
	s.store.AppendOrder(order)
	s.AddNotification(domain.NotifyOrder, "New order",
		fmt.Sprintf("%s placed by %s", order.OrderNumber, order.CustomerName))
	return order
}

// UpdateOrderStatus moves an order to a new fulfilment state.
func (s *LocalService) UpdateOrderStatus(id string, status domain.OrderStatus) (domain.Order, error) {
	order, ok := s.store.Order(id)
	if !ok {
		return domain.Order{}, fmt.Errorf("update order %s: %w", id, domain.ErrNotFound)
	}
	order.Status = status
	s.store.ReplaceOrder(order)
	return order, nil
}

// UpdateOrderPayment moves an order to a new payment state.
func (s *LocalService) UpdateOrderPayment(id string, status domain.PaymentStatus) (domain.Order, error) {
	order, ok := s.store.Order(id)
	if !ok {
		return domain.Order{}, fmt.Errorf("update order %s: %w", id, domain.ErrNotFound)
	}
	order.PaymentStatus = status
	s.store.ReplaceOrder(order)
	return order, nil
}

// UpdateOrderTracking sets courier details on an order.
func (s *LocalService) UpdateOrderTracking(id, courierName, trackingNumber string) (domain.Order, error) {
	order, ok := s.store.Order(id)
	if !ok {
		return domain.Order{}, fmt.Errorf("update order %s: %w", id, domain.ErrNotFound)
	}
	order.CourierName = courierName
	order.TrackingNumber = trackingNumber
	s.store.ReplaceOrder(order)
	return order, nil
}

// AddNotification prepends a new unread notification to the inbox.
func (s *LocalService) AddNotification(typ domain.NotificationType, title, message string) domain.Notification {
	n := domain.Notification{
		ID:        s.ids.NewID(),
		Type:      typ,
		Title:     title,
		Message:   message,
		Timestamp: s.now(),
	}
	s.store.PrependNotification(n)
	return n
}

// MarkNotificationRead marks one notification as read.
func (s *LocalService) MarkNotificationRead(id string) error {
	if !s.store.MarkNotificationRead(id) {
		return fmt.Errorf("mark notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkAllNotificationsRead clears the unread count.
func (s *LocalService) MarkAllNotificationsRead() {
	s.store.MarkAllNotificationsRead()
}

// UpdateProfile replaces the shop owner's profile.
func (s *LocalService) UpdateProfile(p domain.UserProfile) {
	s.store.SetProfile(p)
}

// UpdatePaymentMethods replaces the payout configuration.
func (s *LocalService) UpdatePaymentMethods(pm domain.PaymentMethods) {
	s.store.SetPaymentMethods(pm)
}

// SaveSocialAccounts replaces the linked social accounts.
func (s *LocalService) SaveSocialAccounts(accounts []domain.SocialAccount) {
	s.store.SetSocialAccounts(accounts)
}
