package http

import (
	"time"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
)

// Error is the wire shape of every error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest opens a new procurement cycle for a branch.
type CreateOrderRequest struct {
	Branch string `json:"branch"`
}

// AdvanceOrderRequest carries one workflow transition. The role and target
// select the transition; exactly one of the edit fields is read, depending on
// the target status:
//
//	sent_to_financier   quantities
//	sent_to_supplier    products (full replacement snapshot)
//	chef_checking       pricing
//	financier_checking  checking
//	completed           products (full replacement snapshot)
type AdvanceOrderRequest struct {
	Role       string                     `json:"role"`
	Target     string                     `json:"target"`
	Quantities map[string]float64         `json:"quantities,omitempty"`
	Products   []product.Product          `json:"products,omitempty"`
	Pricing    *PricingRequest            `json:"pricing,omitempty"`
	Checking   map[string]CheckingRequest `json:"checking,omitempty"`
}

// PricingRequest is the supplier's edit payload.
type PricingRequest struct {
	Products              map[string]PricingItemRequest `json:"products,omitempty"`
	EstimatedDeliveryDate *time.Time                    `json:"estimatedDeliveryDate,omitempty"`
}

// PricingItemRequest is one product's pricing edit.
type PricingItemRequest struct {
	Price        *float64   `json:"price,omitempty"`
	Comment      *string    `json:"comment,omitempty"`
	Checked      *bool      `json:"checked,omitempty"`
	DeliveryDate *time.Time `json:"deliveryDate,omitempty"`
}

// CheckingRequest is one product's chef checking edit.
type CheckingRequest struct {
	Checked     *bool   `json:"checked,omitempty"`
	ChefComment *string `json:"chefComment,omitempty"`
}

func (r PricingRequest) toDomain() order.PricingEdits {
	edits := order.PricingEdits{
		EstimatedDeliveryDate: r.EstimatedDeliveryDate,
	}
	if len(r.Products) > 0 {
		edits.Products = make(map[string]order.PricingEdit, len(r.Products))
		for id, item := range r.Products {
			edits.Products[id] = order.PricingEdit{
				Price:        item.Price,
				Comment:      item.Comment,
				Checked:      item.Checked,
				DeliveryDate: item.DeliveryDate,
			}
		}
	}
	return edits
}

func checkingToDomain(reqs map[string]CheckingRequest) order.CheckingEdits {
	edits := make(order.CheckingEdits, len(reqs))
	for id, item := range reqs {
		edits[id] = order.CheckingEdit{
			Checked:     item.Checked,
			ChefComment: item.ChefComment,
		}
	}
	return edits
}
