package queries

import (
	"context"

	"procurement/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads a role's work queue from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for work queue queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first; the id is
// time-ordered, so sorting by id gives creation order.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]string, 0)
	for _, s := range order.ActiveStatusesFor(query.Role()) {
		statuses = append(statuses, s.String())
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
		WHERE status IN ?
	`
	args := []any{statuses}
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
