package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery retrieves the shared product catalog.
// This is a parameterless query; the catalog is the same for every branch.
type GetCatalogQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetCatalogQuery creates a query to retrieve the catalog.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// CatalogItemResponse represents one catalog entry.
type CatalogItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
}
