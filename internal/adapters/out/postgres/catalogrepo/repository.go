package catalogrepo

import (
	"context"

	"procurement/internal/core/domain/model/product"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetAll retrieves the full catalog grouped by category, then name.
func (r *GormCatalogRepository) GetAll(ctx context.Context) ([]product.Product, error) {
	var dtos []CatalogProductDTO
	err := r.db.WithContext(ctx).
		Order("category, name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	products := make([]product.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, toDomain(dto))
	}

	return products, nil
}

// Seed inserts catalog entries that do not exist yet. Existing rows keep
// their current values so manual catalog edits survive restarts.
func (r *GormCatalogRepository) Seed(ctx context.Context, products []product.Product) error {
	if len(products) == 0 {
		return nil
	}

	dtos := make([]CatalogProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, fromDomain(p))
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dtos).Error
}
