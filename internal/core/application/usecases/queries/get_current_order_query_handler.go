package queries

import (
	"context"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCurrentOrderQueryHandler reads a branch's in-flight order.
// The uniqueness invariant means the query returns at most one row.
type GetCurrentOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentOrderQueryHandler creates a handler for in-flight order queries.
func NewGetCurrentOrderQueryHandler(db *gorm.DB) GetCurrentOrderQueryHandler {
	return GetCurrentOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the branch
// has no order in flight.
func (h GetCurrentOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	statuses := make([]string, 0)
	for _, s := range order.InFlightStatuses() {
		statuses = append(statuses, s.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			branch,
			products,
			created_at,
			delivered_at,
			estimated_delivery_date
		FROM orders
		WHERE branch = ? AND status IN ?
		ORDER BY id DESC
		LIMIT 1
	`, query.Branch().String(), statuses).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("branch", query.Branch())
	}

	resp, err := scanOrderResponse(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, rows.Err()
}
