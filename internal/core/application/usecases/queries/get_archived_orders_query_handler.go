package queries

import (
	"context"

	"procurement/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetArchivedOrdersQueryHandler reads the completed order archive.
type GetArchivedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetArchivedOrdersQueryHandler creates a handler for archive queries.
func NewGetArchivedOrdersQueryHandler(db *gorm.DB) GetArchivedOrdersQueryHandler {
	return GetArchivedOrdersQueryHandler{db: db}
}

// Handle executes the query, newest first.
func (h GetArchivedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetArchivedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			status,
			branch,
			products,
			created_at,
			delivered_at,
			estimated_delivery_date
		FROM orders
		WHERE status = ?
	`
	args := []any{order.StatusCompleted.String()}
	if query.Branch() != "" {
		sql += ` AND branch = ?`
		args = append(args, query.Branch().String())
	}
	sql += ` ORDER BY id DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
