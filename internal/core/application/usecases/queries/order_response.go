// Package queries contains read-side operations in the CQRS architecture.
// Query handlers bypass the aggregates and read the database directly,
// returning plain read models shaped for the role views.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"procurement/internal/core/domain/model/product"
)

// OrderResponse is the shared order read model. The products column is stored
// as a json document and is returned as-is, already in wire shape.
type OrderResponse struct {
	ID                    string            `json:"id"`
	Status                string            `json:"status"`
	Branch                string            `json:"branch"`
	Products              []product.Product `json:"products"`
	CreatedAt             time.Time         `json:"createdAt"`
	DeliveredAt           *time.Time        `json:"deliveredAt,omitempty"`
	EstimatedDeliveryDate *time.Time        `json:"estimatedDeliveryDate,omitempty"`
}

// scanOrderResponse reads one row of the canonical order projection:
// id, status, branch, products, created_at, delivered_at, estimated_delivery_date.
func scanOrderResponse(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp         OrderResponse
		productsJSON []byte
		deliveredAt  sql.NullTime
		estimatedAt  sql.NullTime
	)

	if err := rows.Scan(
		&resp.ID,
		&resp.Status,
		&resp.Branch,
		&productsJSON,
		&resp.CreatedAt,
		&deliveredAt,
		&estimatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	if err := json.Unmarshal(productsJSON, &resp.Products); err != nil {
		return OrderResponse{}, err
	}
	if deliveredAt.Valid {
		resp.DeliveredAt = &deliveredAt.Time
	}
	if estimatedAt.Valid {
		resp.EstimatedDeliveryDate = &estimatedAt.Time
	}

	return resp, nil
}
