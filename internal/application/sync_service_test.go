package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier-admin-core/internal/domain"
	"atelier-admin-core/internal/state"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRemote = errors.New("remote down")

// fakeClient is a programmable catalog client. Nil error fields succeed with
// the configured responses; non-nil ones fail the call.
type fakeClient struct {
	categories []domain.Category
	products   []domain.Product

	fetchCategoriesErr error
	fetchProductsErr   error
	writeErr           error

	categoryEcho domain.CategoryEcho
	productEcho  domain.ProductEcho

	deletes []string
}

func (f *fakeClient) FetchCategories(context.Context) ([]domain.Category, error) {
	if f.fetchCategoriesErr != nil {
		return nil, f.fetchCategoriesErr
	}
	return f.categories, nil
}

func (f *fakeClient) FetchProducts(context.Context) ([]domain.Product, error) {
	if f.fetchProductsErr != nil {
		return nil, f.fetchProductsErr
	}
	return f.products, nil
}

func (f *fakeClient) CreateCategory(context.Context, domain.CategoryInput) (*domain.CategoryEcho, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	echo := f.categoryEcho
	return &echo, nil
}

func (f *fakeClient) UpdateCategory(context.Context, string, domain.CategoryPatch) (*domain.CategoryEcho, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	echo := f.categoryEcho
	return &echo, nil
}

func (f *fakeClient) DeleteCategory(_ context.Context, id string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeClient) CreateProduct(context.Context, domain.ProductInput) (*domain.ProductEcho, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	echo := f.productEcho
	return &echo, nil
}

func (f *fakeClient) UpdateProduct(context.Context, string, domain.ProductPatch) (*domain.ProductEcho, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	echo := f.productEcho
	return &echo, nil
}

func (f *fakeClient) DeleteProduct(_ context.Context, id string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.deletes = append(f.deletes, id)
	return nil
}

// fakeSnapshots is an in-memory snapshot cache.
type fakeSnapshots struct {
	snap *domain.CatalogSnapshot
}

func (f *fakeSnapshots) Save(_ context.Context, snap domain.CatalogSnapshot) error {
	f.snap = &snap
	return nil
}

func (f *fakeSnapshots) Load(context.Context) (*domain.CatalogSnapshot, error) {
	return f.snap, nil
}

func newSyncFixture(client *fakeClient) (*state.Store, *SyncService) {
	store := state.New(zerolog.Nop())
	store.SetCategories([]domain.Category{
		{ID: "c1", Name: "Flowers", ProductCount: 1, DisplayOrder: 1, Active: true},
		{ID: "c2", Name: "Bags", ProductCount: 0, DisplayOrder: 2, Active: true},
	})
	store.SetProducts([]domain.Product{
		{ID: "p1", Name: "Rose", Category: "Flowers"},
	})
	return store, NewSyncService(store, client, zerolog.Nop())
}

func storeCategory(t *testing.T, store *state.Store, name string) domain.Category {
	t.Helper()
	for _, c := range store.Categories() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("category %q not found", name)
	return domain.Category{}
}

func TestHydrateReplacesSlicesAndRecomputesCounts(t *testing.T) {
	client := &fakeClient{
		categories: []domain.Category{
			{ID: "r1", Name: "Flowers", Active: true},
			{ID: "r2", Name: "Bags", Active: true},
		},
		products: []domain.Product{
			{ID: "rp1", Name: "Rose", Category: "Flowers"},
			{ID: "rp2", Name: "Daisy", Category: "Flowers"},
			{ID: "rp3", Name: "Tote", Category: "Bags"},
		},
	}
	store, svc := newSyncFixture(client)

	svc.Hydrate(context.Background())

	cats := store.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, 2, storeCategory(t, store, "Flowers").ProductCount)
	assert.Equal(t, 1, storeCategory(t, store, "Bags").ProductCount)
	for i, c := range cats {
		assert.Equal(t, i+1, c.DisplayOrder)
	}
	assert.Len(t, store.Products(), 3)
}

func TestHydrateIsIdempotent(t *testing.T) {
	client := &fakeClient{
		categories: []domain.Category{{ID: "r1", Name: "Flowers"}},
		products:   []domain.Product{{ID: "rp1", Category: "Flowers"}},
	}
	store, svc := newSyncFixture(client)

	svc.Hydrate(context.Background())
	first := store.Categories()
	svc.Hydrate(context.Background())

	assert.Equal(t, first, store.Categories())
	assert.Len(t, store.Products(), 1)
}

func TestHydrateTotalFailureKeepsCurrentData(t *testing.T) {
	client := &fakeClient{
		fetchCategoriesErr: errRemote,
		fetchProductsErr:   errRemote,
	}
	store, svc := newSyncFixture(client)
	before := store.Categories()

	svc.Hydrate(context.Background())

	assert.Equal(t, before, store.Categories())
	assert.Len(t, store.Products(), 1)
}

func TestHydrateTotalFailureRestoresSnapshot(t *testing.T) {
	client := &fakeClient{
		fetchCategoriesErr: errRemote,
		fetchProductsErr:   errRemote,
	}
	store := state.New(zerolog.Nop())
	snaps := &fakeSnapshots{snap: &domain.CatalogSnapshot{
		Categories: []domain.Category{{ID: "cached", Name: "Cached", ProductCount: 1}},
		Products:   []domain.Product{{ID: "cp1", Category: "Cached"}},
		FetchedAt:  time.Now(),
	}}
	svc := NewSyncServiceWithOptions(store, client, snaps, nil, zerolog.Nop())

	svc.Hydrate(context.Background())

	require.Len(t, store.Categories(), 1)
	assert.Equal(t, "cached", store.Categories()[0].ID)
	assert.Len(t, store.Products(), 1)
}

func TestHydratePartialFailureAppliesWhatArrived(t *testing.T) {
	client := &fakeClient{
		fetchProductsErr: errRemote,
		categories: []domain.Category{
			{ID: "r1", Name: "Flowers"},
		},
	}
	store, svc := newSyncFixture(client)

	svc.Hydrate(context.Background())

	cats := store.Categories()
	require.Len(t, cats, 1)
	assert.Equal(t, "r1", cats[0].ID)
	// Counts come from the failed products fetch and zero out until the next
	// successful hydration.
	assert.Equal(t, 0, cats[0].ProductCount)
	// The product slice kept its prior contents.
	assert.Len(t, store.Products(), 1)
}

func TestHydrateSavesSnapshotOnFullSuccessOnly(t *testing.T) {
	snaps := &fakeSnapshots{}
	store := state.New(zerolog.Nop())

	client := &fakeClient{
		fetchProductsErr: errRemote,
		categories:       []domain.Category{{ID: "r1", Name: "Flowers"}},
	}
	svc := NewSyncServiceWithOptions(store, client, snaps, nil, zerolog.Nop())
	svc.Hydrate(context.Background())
	assert.Nil(t, snaps.snap, "partial hydration must not overwrite the snapshot")

	client.fetchProductsErr = nil
	client.products = []domain.Product{{ID: "rp1", Category: "Flowers"}}
	svc.Hydrate(context.Background())
	require.NotNil(t, snaps.snap)
	assert.Len(t, snaps.snap.Products, 1)
}

func TestCreateCategoryConfirmAfterWrite(t *testing.T) {
	t.Run("success appends with next display order", func(t *testing.T) {
		client := &fakeClient{categoryEcho: domain.CategoryEcho{ID: strp("srv-3")}}
		store, svc := newSyncFixture(client)

		created, err := svc.CreateCategory(context.Background(), domain.CategoryInput{
			Name: "Hangings", Keywords: "wall, art", Active: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "srv-3", created.ID)
		assert.Equal(t, 3, created.DisplayOrder)
		assert.Len(t, store.Categories(), 3)
	})

	t.Run("remote failure leaves store untouched", func(t *testing.T) {
		client := &fakeClient{writeErr: errRemote}
		store, svc := newSyncFixture(client)
		before := store.Categories()

		_, err := svc.CreateCategory(context.Background(), domain.CategoryInput{Name: "Hangings"})
		require.Error(t, err)
		assert.Equal(t, before, store.Categories())
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Run("merges server over patch over prior", func(t *testing.T) {
		client := &fakeClient{categoryEcho: domain.CategoryEcho{Name: strp("Server Name")}}
		store, svc := newSyncFixture(client)

		updated, err := svc.UpdateCategory(context.Background(), "c1", domain.CategoryPatch{
			Name: strp("Patch Name"),
			Slug: strp("patch-slug"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Server Name", updated.Name)
		assert.Equal(t, "patch-slug", updated.Slug)
		assert.Equal(t, 1, updated.ProductCount, "count is never part of the exchange")

		got, ok := store.Category("c1")
		require.True(t, ok)
		assert.Equal(t, *updated, got)
	})

	t.Run("unknown id fails before any remote call", func(t *testing.T) {
		client := &fakeClient{writeErr: errRemote}
		_, svc := newSyncFixture(client)

		_, err := svc.UpdateCategory(context.Background(), "nope", domain.CategoryPatch{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("remote failure leaves store untouched", func(t *testing.T) {
		client := &fakeClient{writeErr: errRemote}
		store, svc := newSyncFixture(client)
		before, _ := store.Category("c1")

		_, err := svc.UpdateCategory(context.Background(), "c1", domain.CategoryPatch{Name: strp("X")})
		require.Error(t, err)
		got, _ := store.Category("c1")
		assert.Equal(t, before, got)
	})
}

func TestDeleteCategory(t *testing.T) {
	client := &fakeClient{}
	store, svc := newSyncFixture(client)

	require.NoError(t, svc.DeleteCategory(context.Background(), "c1"))
	assert.Equal(t, []string{"c1"}, client.deletes)
	_, ok := store.Category("c1")
	assert.False(t, ok)

	// The product referencing the deleted category keeps its name.
	p, ok := store.Product("p1")
	require.True(t, ok)
	assert.Equal(t, "Flowers", p.Category)
}

func TestCreateProductAdjustsCountOnce(t *testing.T) {
	client := &fakeClient{productEcho: domain.ProductEcho{ID: strp("srv-p")}}
	store, svc := newSyncFixture(client)

	created, err := svc.CreateProduct(context.Background(), domain.ProductInput{
		Name: "Daisy", Category: "Flowers",
	})
	require.NoError(t, err)
	assert.Equal(t, "srv-p", created.ID)
	assert.Equal(t, 2, storeCategory(t, store, "Flowers").ProductCount)
}

func TestUpdateProductMovesCountsAtomically(t *testing.T) {
	client := &fakeClient{}
	store, svc := newSyncFixture(client)

	_, err := svc.UpdateProduct(context.Background(), "p1", domain.ProductPatch{
		Category: strp("Bags"),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, storeCategory(t, store, "Flowers").ProductCount)
	assert.Equal(t, 1, storeCategory(t, store, "Bags").ProductCount)
}

func TestUpdateProductToUnknownCategoryDoesNotThrow(t *testing.T) {
	client := &fakeClient{}
	store, svc := newSyncFixture(client)

	updated, err := svc.UpdateProduct(context.Background(), "p1", domain.ProductPatch{
		Category: strp("Ghosts"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ghosts", updated.Category)

	// The old count still drops; the unknown new category is a no-op.
	assert.Equal(t, 0, storeCategory(t, store, "Flowers").ProductCount)
}

func TestUpdateProductRemoteFailureLeavesCounts(t *testing.T) {
	client := &fakeClient{writeErr: errRemote}
	store, svc := newSyncFixture(client)

	_, err := svc.UpdateProduct(context.Background(), "p1", domain.ProductPatch{
		Category: strp("Bags"),
	})
	require.Error(t, err)
	assert.Equal(t, 1, storeCategory(t, store, "Flowers").ProductCount)
	assert.Equal(t, 0, storeCategory(t, store, "Bags").ProductCount)
}

func TestDeleteProductDecrementsCount(t *testing.T) {
	client := &fakeClient{}
	store, svc := newSyncFixture(client)

	require.NoError(t, svc.DeleteProduct(context.Background(), "p1"))
	assert.Equal(t, 0, storeCategory(t, store, "Flowers").ProductCount)
	assert.Empty(t, store.Products())
}

func TestReorderCategoriesIsLocal(t *testing.T) {
	client := &fakeClient{writeErr: errRemote}
	store, svc := newSyncFixture(client)

	svc.ReorderCategories([]string{"c2", "c1"})

	cats := store.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, "c2", cats[0].ID)
	assert.Equal(t, 1, cats[0].DisplayOrder)
	assert.Equal(t, 2, cats[1].DisplayOrder)
}
