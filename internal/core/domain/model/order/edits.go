package order

import (
	"time"

	"procurement/internal/core/domain/model/product"
)

// Edit is the tagged union of per-role, per-status mutations. Each workflow
// transition accepts exactly one edit kind, scoping which fields the acting
// role may write; there is no set-field-by-name operation.
type Edit interface {
	isEdit()
}

// QuantityEdits is the chef's edit while an order is in sent_to_chef:
// per-product ordered quantities, keyed by product id. Products absent from
// the map keep their current quantity.
type QuantityEdits map[string]float64

func (QuantityEdits) isEdit() {}

// PricingEdit is the supplier's per-product edit while an order is in
// sent_to_supplier. Nil fields are left untouched.
type PricingEdit struct {
	Price        *float64
	Comment      *string
	Checked      *bool
	DeliveryDate *time.Time
}

// PricingEdits is the supplier's edit for the sent_to_supplier -> chef_checking
// handoff: per-product pricing keyed by product id, plus the order-level
// estimated delivery date.
type PricingEdits struct {
	Products              map[string]PricingEdit
	EstimatedDeliveryDate *time.Time
}

func (PricingEdits) isEdit() {}

// CheckingEdit is the chef's per-product edit while an order is in
// chef_checking. Nil fields are left untouched.
type CheckingEdit struct {
	Checked     *bool
	ChefComment *string
}

// CheckingEdits is the chef's edit for the chef_checking ->
// financier_checking transition, keyed by product id.
type CheckingEdits map[string]CheckingEdit

func (CheckingEdits) isEdit() {}

// SnapshotReplace is the financier's edit in sent_to_financier and
// financier_checking: the full product list is replaced wholesale. The
// financier may add, edit, or remove any product and any field. The caller is
// expected to have started from the latest server snapshot; concurrent edits
// resolve last-write-wins.
type SnapshotReplace struct {
	Products []product.Product
}

func (SnapshotReplace) isEdit() {}
