// Package catalogrepo persists the shared product catalog, the template every
// new order snapshots from. Catalog rows carry no per-order state.
package catalogrepo

import (
	"procurement/internal/core/domain/model/product"
)

// CatalogProductDTO represents one catalog entry in the database.
type CatalogProductDTO struct {
	ID       string `gorm:"type:text;primaryKey"`
	Name     string `gorm:"type:text"`
	Category string `gorm:"type:text;index"`
	Unit     string `gorm:"type:text"`
}

// TableName specifies the database table name for catalog entries.
func (CatalogProductDTO) TableName() string {
	return "catalog_products"
}

func fromDomain(p product.Product) CatalogProductDTO {
	return CatalogProductDTO{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Unit:     string(p.Unit),
	}
}

func toDomain(dto CatalogProductDTO) product.Product {
	return product.Product{
		ID:       dto.ID,
		Name:     dto.Name,
		Category: dto.Category,
		Unit:     product.Unit(dto.Unit),
	}
}
