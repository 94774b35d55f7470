package ports

import (
	"context"

	"atelier-admin-core/internal/domain"
)

// SnapshotCache persists a last-known-good catalog snapshot between runs.
// Load returns (nil, nil) when no snapshot is stored.
type SnapshotCache interface {
	Save(ctx context.Context, snap domain.CatalogSnapshot) error
	Load(ctx context.Context) (*domain.CatalogSnapshot, error)
}
