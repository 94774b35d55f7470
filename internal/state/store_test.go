package state

import (
	"testing"

	"atelier-admin-core/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(zerolog.Nop())
	s.SetCategories([]domain.Category{
		{ID: "c1", Name: "Flowers", ProductCount: 1, DisplayOrder: 1, Active: true},
		{ID: "c2", Name: "Bags", ProductCount: 1, DisplayOrder: 2, Active: true},
	})
	s.SetProducts([]domain.Product{
		{ID: "p1", Name: "Rose", Category: "Flowers"},
		{ID: "p2", Name: "Tote", Category: "Bags"},
	})
	return s
}

func categoryByName(t *testing.T, s *Store, name string) domain.Category {
	t.Helper()
	for _, c := range s.Categories() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("category %q not found", name)
	return domain.Category{}
}

func TestStoreStartsSeeded(t *testing.T) {
	s := New(zerolog.Nop())

	cats := s.Categories()
	prods := s.Products()
	require.NotEmpty(t, cats)
	require.NotEmpty(t, prods)

	// Seed counts must agree with the seeded products.
	counts := make(map[string]int)
	for _, p := range prods {
		counts[p.Category]++
	}
	for _, c := range cats {
		assert.Equal(t, counts[c.Name], c.ProductCount, "count mismatch for %s", c.Name)
	}

	// Display orders are a dense 1..N sequence.
	for i, c := range cats {
		assert.Equal(t, i+1, c.DisplayOrder)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := newTestStore(t)

	cats := s.Categories()
	cats[0].Name = "Mutated"

	assert.Equal(t, "Flowers", s.Categories()[0].Name)
}

func TestApplyProductCreateIncrementsCount(t *testing.T) {
	s := newTestStore(t)

	s.ApplyProductCreate(domain.Product{ID: "p3", Name: "Daisy", Category: "Flowers"})

	assert.Equal(t, 2, categoryByName(t, s, "Flowers").ProductCount)
	assert.Equal(t, 1, categoryByName(t, s, "Bags").ProductCount)
	assert.Len(t, s.Products(), 3)
}

func TestApplyProductCreateUnknownCategoryIsNoOp(t *testing.T) {
	s := newTestStore(t)

	s.ApplyProductCreate(domain.Product{ID: "p3", Name: "Orphan", Category: "Ghosts"})

	assert.Equal(t, 1, categoryByName(t, s, "Flowers").ProductCount)
	assert.Equal(t, 1, categoryByName(t, s, "Bags").ProductCount)
	assert.Len(t, s.Products(), 3)
}

func TestApplyProductUpdateMovesCountsBetweenCategories(t *testing.T) {
	s := newTestStore(t)

	p, ok := s.Product("p1")
	require.True(t, ok)
	p.Category = "Bags"
	s.ApplyProductUpdate(p, "Flowers")

	assert.Equal(t, 0, categoryByName(t, s, "Flowers").ProductCount)
	assert.Equal(t, 2, categoryByName(t, s, "Bags").ProductCount)
}

func TestApplyProductUpdateSameCategoryLeavesCounts(t *testing.T) {
	s := newTestStore(t)

	p, ok := s.Product("p1")
	require.True(t, ok)
	p.Name = "Rose Deluxe"
	s.ApplyProductUpdate(p, "Flowers")

	assert.Equal(t, 1, categoryByName(t, s, "Flowers").ProductCount)
	updated, ok := s.Product("p1")
	require.True(t, ok)
	assert.Equal(t, "Rose Deluxe", updated.Name)
}

func TestApplyProductDeleteDecrementsCount(t *testing.T) {
	s := newTestStore(t)

	require.True(t, s.ApplyProductDelete("p1"))

	assert.Equal(t, 0, categoryByName(t, s, "Flowers").ProductCount)
	assert.Len(t, s.Products(), 1)

	assert.False(t, s.ApplyProductDelete("p1"))
}

func TestCountFloorsAtZero(t *testing.T) {
	s := newTestStore(t)

	// Count already drifted to zero; deleting the product must not go negative.
	s.SetCategories([]domain.Category{
		{ID: "c1", Name: "Flowers", ProductCount: 0, DisplayOrder: 1},
	})
	s.SetProducts([]domain.Product{
		{ID: "p1", Name: "Rose", Category: "Flowers"},
	})
	require.True(t, s.ApplyProductDelete("p1"))

	assert.Equal(t, 0, categoryByName(t, s, "Flowers").ProductCount)
}

func TestApplyCategoryCreateAssignsNextDisplayOrder(t *testing.T) {
	s := newTestStore(t)

	created := s.ApplyCategoryCreate(domain.Category{ID: "c3", Name: "Hangings"})

	assert.Equal(t, 3, created.DisplayOrder)
	assert.Equal(t, 3, categoryByName(t, s, "Hangings").DisplayOrder)
}

func TestApplyCategoryDeleteKeepsProducts(t *testing.T) {
	s := newTestStore(t)

	require.True(t, s.ApplyCategoryDelete("c1"))

	assert.Len(t, s.Categories(), 1)
	// The referencing product keeps its stale category name.
	p, ok := s.Product("p1")
	require.True(t, ok)
	assert.Equal(t, "Flowers", p.Category)
}

func TestReorderCategories(t *testing.T) {
	s := newTestStore(t)
	s.ApplyCategoryCreate(domain.Category{ID: "c3", Name: "Hangings"})

	t.Run("full permutation", func(t *testing.T) {
		s.ReorderCategories([]string{"c3", "c1", "c2"})
		cats := s.Categories()
		require.Len(t, cats, 3)
		assert.Equal(t, []string{"c3", "c1", "c2"}, []string{cats[0].ID, cats[1].ID, cats[2].ID})
		for i, c := range cats {
			assert.Equal(t, i+1, c.DisplayOrder)
		}
	})

	t.Run("unknown ids skipped, missing ids appended", func(t *testing.T) {
		s.ReorderCategories([]string{"c2", "nope"})
		cats := s.Categories()
		require.Len(t, cats, 3)
		assert.Equal(t, "c2", cats[0].ID)
		// The two untouched categories keep their prior relative order.
		assert.Equal(t, "c3", cats[1].ID)
		assert.Equal(t, "c1", cats[2].ID)
		for i, c := range cats {
			assert.Equal(t, i+1, c.DisplayOrder)
		}
	})
}

func TestNotifications(t *testing.T) {
	s := newTestStore(t)
	base := s.UnreadCount()

	s.PrependNotification(domain.Notification{ID: "n1", Title: "first"})
	s.PrependNotification(domain.Notification{ID: "n2", Title: "second"})

	notifs := s.Notifications()
	assert.Equal(t, "n2", notifs[0].ID, "newest notification comes first")
	assert.Equal(t, base+2, s.UnreadCount())

	require.True(t, s.MarkNotificationRead("n1"))
	assert.Equal(t, base+1, s.UnreadCount())
	assert.False(t, s.MarkNotificationRead("missing"))

	s.MarkAllNotificationsRead()
	assert.Equal(t, 0, s.UnreadCount())
}

func TestUpsertCollection(t *testing.T) {
	s := newTestStore(t)
	before := len(s.Collections())

	s.UpsertCollection(domain.Collection{ID: "col1", Name: "Spring"})
	assert.Len(t, s.Collections(), before+1)

	s.UpsertCollection(domain.Collection{ID: "col1", Name: "Spring Picks"})
	colls := s.Collections()
	assert.Len(t, colls, before+1)

	found := false
	for _, c := range colls {
		if c.ID == "col1" {
			found = true
			assert.Equal(t, "Spring Picks", c.Name)
		}
	}
	require.True(t, found)

	require.True(t, s.RemoveCollection("col1"))
	assert.False(t, s.RemoveCollection("col1"))
}

func TestReplaceOrder(t *testing.T) {
	s := newTestStore(t)

	s.AppendOrder(domain.Order{ID: "o1", Status: domain.OrderPending})

	order, ok := s.Order("o1")
	require.True(t, ok)
	order.Status = domain.OrderShipped
	require.True(t, s.ReplaceOrder(order))

	got, ok := s.Order("o1")
	require.True(t, ok)
	assert.Equal(t, domain.OrderShipped, got.Status)

	assert.False(t, s.ReplaceOrder(domain.Order{ID: "missing"}))
}
