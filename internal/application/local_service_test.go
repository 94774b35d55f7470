package application

import (
	"testing"
	"time"

	"atelier-admin-core/internal/domain"
	"atelier-admin-core/internal/infrastructure/idgen"
	"atelier-admin-core/internal/state"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalFixture() (*state.Store, *LocalService) {
	store := state.New(zerolog.Nop())
	store.SetProducts([]domain.Product{
		{ID: "p1", Name: "Rose"},
		{ID: "p2", Name: "Tote"},
	})
	clock := func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	svc := NewLocalServiceWithClock(store, &idgen.SequenceSource{Prefix: "id-"}, zerolog.Nop(), clock)
	return store, svc
}

func TestSaveCollection(t *testing.T) {
	store, svc := newLocalFixture()

	t.Run("create resolves product names", func(t *testing.T) {
		coll := svc.SaveCollection(domain.CollectionInput{
			Name:       "Spring",
			ProductIDs: []string{"p1", "missing", "p2"},
		})

		assert.Equal(t, "id-1", coll.ID)
		assert.Equal(t, []string{"Rose", "Tote"}, coll.ProductNames, "unknown ids are skipped")
		assert.False(t, coll.CreatedAt.IsZero())
	})

	t.Run("update keeps the original CreatedAt", func(t *testing.T) {
		created := svc.SaveCollection(domain.CollectionInput{Name: "Summer"})
		updated := svc.SaveCollection(domain.CollectionInput{
			ID:   created.ID,
			Name: "Summer Picks",
		})

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)

		for _, c := range store.Collections() {
			if c.ID == created.ID {
				assert.Equal(t, "Summer Picks", c.Name)
			}
		}
	})
}

func TestDeleteCollection(t *testing.T) {
	_, svc := newLocalFixture()
	coll := svc.SaveCollection(domain.CollectionInput{Name: "Spring"})

	require.NoError(t, svc.DeleteCollection(coll.ID))
	assert.ErrorIs(t, svc.DeleteCollection(coll.ID), domain.ErrNotFound)
}

func TestCreateOrder(t *testing.T) {
	store, svc := newLocalFixture()
	unreadBefore := store.UnreadCount()

	order := svc.CreateOrder(domain.OrderInput{
		OrderNumber:  "ORD-100",
		CustomerName: "Naila",
		Total:        450,
	})

	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, domain.PaymentPending, order.PaymentStatus)
	assert.NotEmpty(t, order.ID)

	stored, ok := store.Order(order.ID)
	require.True(t, ok)
	assert.Equal(t, "ORD-100", stored.OrderNumber)

	// A new order drops a notification into the inbox.
	assert.Equal(t, unreadBefore+1, store.UnreadCount())
	assert.Equal(t, domain.NotifyOrder, store.Notifications()[0].Type)
}

func TestOrderTransitions(t *testing.T) {
	_, svc := newLocalFixture()
	order := svc.CreateOrder(domain.OrderInput{OrderNumber: "ORD-101"})

	updated, err := svc.UpdateOrderStatus(order.ID, domain.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderShipped, updated.Status)

	updated, err = svc.UpdateOrderPayment(order.ID, domain.PaymentPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, updated.PaymentStatus)

	updated, err = svc.UpdateOrderTracking(order.ID, "Pathao", "TRK-9")
	require.NoError(t, err)
	assert.Equal(t, "Pathao", updated.CourierName)
	assert.Equal(t, "TRK-9", updated.TrackingNumber)

	_, err = svc.UpdateOrderStatus("missing", domain.OrderShipped)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNotificationLifecycle(t *testing.T) {
	store, svc := newLocalFixture()
	store.MarkAllNotificationsRead()

	n := svc.AddNotification(domain.NotifySystem, "Hello", "world")
	assert.Equal(t, 1, store.UnreadCount())

	require.NoError(t, svc.MarkNotificationRead(n.ID))
	assert.Equal(t, 0, store.UnreadCount())
	assert.ErrorIs(t, svc.MarkNotificationRead("missing"), domain.ErrNotFound)

	svc.AddNotification(domain.NotifySystem, "A", "a")
	svc.AddNotification(domain.NotifySystem, "B", "b")
	svc.MarkAllNotificationsRead()
	assert.Equal(t, 0, store.UnreadCount())
}

func TestSettingsWrites(t *testing.T) {
	store, svc := newLocalFixture()

	svc.UpdateProfile(domain.UserProfile{Name: "Naila", ShopName: "Atelier"})
	assert.Equal(t, "Atelier", store.Profile().ShopName)

	svc.UpdatePaymentMethods(domain.PaymentMethods{BkashNumber: "01711", CashOnDelivery: true})
	assert.True(t, store.PaymentMethods().CashOnDelivery)

	svc.SaveSocialAccounts([]domain.SocialAccount{{Platform: "instagram", Handle: "@atelier"}})
	require.Len(t, store.SocialAccounts(), 1)
	assert.Equal(t, "instagram", store.SocialAccounts()[0].Platform)
}
