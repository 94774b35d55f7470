package ports

import (
	"context"

	"atelier-admin-core/internal/domain"
)

// CatalogClient defines the operations the sync engine performs against the
// remote catalog API. Every call is a single attempt: no retries, no backoff.
//
// Fetch methods return fully mapped local records. Write methods return the
// decoded server echo so the caller can reconcile it with its own input;
// absent response fields come back nil.
type CatalogClient interface {
	// Category API
	FetchCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.CategoryEcho, error)
	UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.CategoryEcho, error)
	DeleteCategory(ctx context.Context, id string) error

	// Product API
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.ProductEcho, error)
	UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.ProductEcho, error)
	DeleteProduct(ctx context.Context, id string) error
}
