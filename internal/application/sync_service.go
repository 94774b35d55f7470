package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"atelier-admin-core/internal/domain"
	"atelier-admin-core/internal/infrastructure/metrics"
	"atelier-admin-core/internal/ports"
	"atelier-admin-core/internal/state"

	"github.com/rs/zerolog"
)

// SyncService keeps the entity store consistent with the remote catalog API.
// It is the store's only remote-facing writer.
//
// Mutations are confirm-after-write: the store changes only once the remote
// call has succeeded, and a failed call leaves the store byte-for-byte
// untouched. There are no retries anywhere; a failed mutation is re-thrown
// to the caller, who retries by clicking again.
type SyncService struct {
	store     *state.Store
	client    ports.CatalogClient
	snapshots ports.SnapshotCache
	metrics   *metrics.SyncMetrics
	logger    zerolog.Logger
}

// NewSyncService creates a sync service without snapshot caching or metrics.
func NewSyncService(store *state.Store, client ports.CatalogClient, logger zerolog.Logger) *SyncService {
	return NewSyncServiceWithOptions(store, client, nil, nil, logger)
}

// NewSyncServiceWithOptions creates a sync service with an optional snapshot
// cache and metric set; either may be nil.
func NewSyncServiceWithOptions(
	store *state.Store,
	client ports.CatalogClient,
	snapshots ports.SnapshotCache,
	m *metrics.SyncMetrics,
	logger zerolog.Logger,
) *SyncService {
	return &SyncService{
		store:     store,
		client:    client,
		snapshots: snapshots,
		metrics:   m,
		logger:    logger,
	}
}

// Hydrate fetches categories and products concurrently and replaces the
// corresponding store slices. It never returns an error: a failed endpoint
// is logged and its slice left as-is, so the dashboard stays usable on seed
// or cached data with no backend at all. Each category's product count is
// recomputed from the fetched products.
func (s *SyncService) Hydrate(ctx context.Context) {
	start := time.Now()

	var (
		wg       sync.WaitGroup
		cats     []domain.Category
		prods    []domain.Product
		catsErr  error
		prodsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cats, catsErr = s.client.FetchCategories(ctx)
	}()
	go func() {
		defer wg.Done()
		prods, prodsErr = s.client.FetchProducts(ctx)
	}()
	wg.Wait()
	s.metrics.ObserveRemote("hydrate", time.Since(start))

	if catsErr != nil {
		s.logger.Warn().Err(catsErr).Msg("Hydration: categories fetch failed, keeping current slice")
	}
	if prodsErr != nil {
		s.logger.Warn().Err(prodsErr).Msg("Hydration: products fetch failed, keeping current slice")
	}

	if catsErr != nil && prodsErr != nil {
		s.metrics.IncOp("hydrate", "fallback")
		s.restoreSnapshot(ctx)
		return
	}

	if prodsErr == nil {
		s.store.SetProducts(prods)
	}
	if catsErr == nil {
		// A failed products fetch contributes an empty count map; the
		// invariant is re-established on the next successful hydration.
		counts := countByCategory(prods)
		for i := range cats {
			cats[i].ProductCount = counts[cats[i].Name]
			cats[i].DisplayOrder = i + 1
		}
		s.store.SetCategories(cats)
	}

	if catsErr == nil && prodsErr == nil {
		s.metrics.IncOp("hydrate", "ok")
		s.saveSnapshot(ctx, cats, prods)
	} else {
		s.metrics.IncOp("hydrate", "partial")
	}

	s.logger.Info().
		Int("categories", len(cats)).
		Int("products", len(prods)).
		Dur("took", time.Since(start)).
		Msg("Store hydrated from catalog API")
}

// CreateCategory posts a new category and appends the confirmed record,
// assigning it the next display order. The created record is returned so the
// caller can decide what to do next (navigate, toast, ...).
func (s *SyncService) CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	start := time.Now()
	echo, err := s.client.CreateCategory(ctx, input)
	s.metrics.ObserveRemote("create_category", time.Since(start))
	if err != nil {
		s.metrics.IncOp("create_category", "error")
		s.logger.Error().Err(err).Str("name", input.Name).Msg("Failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	created := s.store.ApplyCategoryCreate(categoryFromEcho(*echo, input))
	s.metrics.IncOp("create_category", "ok")
	return &created, nil
}

// UpdateCategory puts a partial update and merges the server's response over
// the patch over the prior record. ProductCount and DisplayOrder are never
// part of the exchange and stay untouched.
func (s *SyncService) UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error) {
	prior, ok := s.store.Category(id)
	if !ok {
		return nil, fmt.Errorf("update category %s: %w", id, domain.ErrNotFound)
	}

	start := time.Now()
	echo, err := s.client.UpdateCategory(ctx, id, patch)
	s.metrics.ObserveRemote("update_category", time.Since(start))
	if err != nil {
		s.metrics.IncOp("update_category", "error")
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to update category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	merged := mergeCategory(prior, patch, *echo)
	s.store.ApplyCategoryUpdate(merged)
	s.metrics.IncOp("update_category", "ok")
	return &merged, nil
}

// DeleteCategory deletes remotely, then removes the local record. Products
// referencing the category by name keep their stale reference; subsequent
// count maintenance treats the missing category as a no-op.
func (s *SyncService) DeleteCategory(ctx context.Context, id string) error {
	start := time.Now()
	err := s.client.DeleteCategory(ctx, id)
	s.metrics.ObserveRemote("delete_category", time.Since(start))
	if err != nil {
		s.metrics.IncOp("delete_category", "error")
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.store.ApplyCategoryDelete(id)
	s.metrics.IncOp("delete_category", "ok")
	return nil
}

// ReorderCategories is purely local: ordering is not persisted server-side.
// Display orders are reassigned as a dense 1..N sequence.
func (s *SyncService) ReorderCategories(ids []string) {
	s.store.ReorderCategories(ids)
	s.logger.Debug().Int("count", len(ids)).Msg("Categories reordered")
}

// CreateProduct posts a new product and appends the confirmed record, then
// increments the matching category's product count exactly once. A category
// name unknown to the store leaves the counts alone.
func (s *SyncService) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	start := time.Now()
	echo, err := s.client.CreateProduct(ctx, input)
	s.metrics.ObserveRemote("create_product", time.Since(start))
	if err != nil {
		s.metrics.IncOp("create_product", "error")
		s.logger.Error().Err(err).Str("name", input.Name).Msg("Failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	created := s.store.ApplyProductCreate(productFromEcho(*echo, input))
	s.metrics.IncOp("create_product", "ok")
	return &created, nil
}

// UpdateProduct puts a partial update and merges server over patch over
// prior. When the category name changes, the old and new counts are adjusted
// in a single state replace; no reader observes the intermediate state.
func (s *SyncService) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	prior, ok := s.store.Product(id)
	if !ok {
		return nil, fmt.Errorf("update product %s: %w", id, domain.ErrNotFound)
	}

	start := time.Now()
	echo, err := s.client.UpdateProduct(ctx, id, patch)
	s.metrics.ObserveRemote("update_product", time.Since(start))
	if err != nil {
		s.metrics.IncOp("update_product", "error")
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	merged := mergeProduct(prior, patch, *echo)
	s.store.ApplyProductUpdate(merged, prior.Category)
	s.metrics.IncOp("update_product", "ok")
	return &merged, nil
}

// DeleteProduct deletes remotely, removes the local record and decrements
// the former category's count, floored at zero.
func (s *SyncService) DeleteProduct(ctx context.Context, id string) error {
	start := time.Now()
	err := s.client.DeleteProduct(ctx, id)
	s.metrics.ObserveRemote("delete_product", time.Since(start))
	if err != nil {
		s.metrics.IncOp("delete_product", "error")
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.store.ApplyProductDelete(id)
	s.metrics.IncOp("delete_product", "ok")
	return nil
}

func (s *SyncService) saveSnapshot(ctx context.Context, cats []domain.Category, prods []domain.Product) {
	if s.snapshots == nil {
		return
	}
	snap := domain.CatalogSnapshot{
		Categories: cats,
		Products:   prods,
		FetchedAt:  time.Now(),
	}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to write catalog snapshot")
	}
}

func (s *SyncService) restoreSnapshot(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to load catalog snapshot")
		return
	}
	if snap == nil {
		return
	}
	s.store.SetCategories(snap.Categories)
	s.store.SetProducts(snap.Products)
	s.logger.Info().
		Time("fetchedAt", snap.FetchedAt).
		Msg("Store restored from cached catalog snapshot")
}

func countByCategory(products []domain.Product) map[string]int {
	counts := make(map[string]int, len(products))
	for _, p := range products {
		counts[p.Category]++
	}
	return counts
}
