package ports

import (
	"context"

	"procurement/internal/core/domain/model/product"
)

// CatalogRepository defines the persistence contract for the shared product
// catalog. The catalog is the template every new order snapshots from.
type CatalogRepository interface {
	// GetAll retrieves the full catalog ordered by category, then name.
	GetAll(ctx context.Context) ([]product.Product, error)

	// Seed inserts catalog entries that do not exist yet. Existing entries
	// are left untouched; called once at startup.
	Seed(ctx context.Context, products []product.Product) error
}
