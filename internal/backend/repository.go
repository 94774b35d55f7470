package backend

import "context"

// Repository defines the persistence operations the catalog API handlers
// need. Update methods return (nil, nil) when the id does not exist.
type Repository interface {
	ListCategories(ctx context.Context) ([]CategoryDoc, error)
	InsertCategory(ctx context.Context, doc CategoryDoc) (CategoryDoc, error)
	UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*CategoryDoc, error)
	DeleteCategory(ctx context.Context, id string) (bool, error)

	ListProducts(ctx context.Context) ([]ProductDoc, error)
	InsertProduct(ctx context.Context, doc ProductDoc) (ProductDoc, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*ProductDoc, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)
}
