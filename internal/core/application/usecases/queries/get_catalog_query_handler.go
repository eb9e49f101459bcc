package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCatalogQueryHandler reads the product catalog from the database.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog queries.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle executes the query. Entries are grouped by category, then sorted by
// name, matching how the role views render the catalog.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) ([]CatalogItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]CatalogItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			unit
		FROM catalog_products
		ORDER BY category, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CatalogItemResponse
		if err = rows.Scan(&item.ID, &item.Name, &item.Category, &item.Unit); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
