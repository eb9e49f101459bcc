// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The product snapshot is stored as one jsonb document: the snapshot is always
// read and replaced wholesale, so there is nothing to gain from a child table.
type OrderDTO struct {
	ID                    string `gorm:"type:text;primaryKey"`
	Status                string `gorm:"type:text;index"`
	Branch                string `gorm:"type:text;index"`
	Products              []byte `gorm:"type:jsonb"`
	CreatedAt             time.Time
	DeliveredAt           *time.Time
	EstimatedDeliveryDate *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	productsJSON, err := json.Marshal(aggregate.Products())
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:                    aggregate.ID(),
		Status:                aggregate.Status().String(),
		Branch:                aggregate.Branch().String(),
		Products:              productsJSON,
		CreatedAt:             aggregate.CreatedAt(),
		DeliveredAt:           aggregate.DeliveredAt(),
		EstimatedDeliveryDate: aggregate.EstimatedDeliveryDate(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which validates the
// stored status and branch so corrupt rows surface as errors, not aggregates.
func toDomain(dto OrderDTO) (*order.Order, error) {
	var products []product.Product
	if err := json.Unmarshal(dto.Products, &products); err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		order.Status(dto.Status),
		kernel.Branch(dto.Branch),
		products,
		dto.CreatedAt,
		dto.DeliveredAt,
		dto.EstimatedDeliveryDate,
	)
}
