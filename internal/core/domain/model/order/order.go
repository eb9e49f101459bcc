package order

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents one procurement cycle for a branch. It is the aggregate
// root that owns the status, the product snapshot, and the order timestamps.
//
// Order follows these invariants:
//   - id is assigned once at creation (time-ordered) and never changes
//   - branch is immutable after creation
//   - status only moves along the workflow's single-successor transition table
//   - the product snapshot is replaced wholesale on every transition
//   - a failed transition leaves the order untouched
//
// All mutation goes through the transition methods; there is no field-level
// setter. Equality is by id.
type Order struct {
	id                    string
	status                Status
	branch                kernel.Branch
	products              []product.Product
	createdAt             time.Time
	deliveredAt           *time.Time
	estimatedDeliveryDate *time.Time

	guard kernel.ConstructorGuard
}

// NewOrder creates a new order for a branch in sent_to_chef status with the
// given product snapshot (normally a fresh catalog snapshot with all
// quantities 0). The id is a time-ordered UUID assigned here; createdAt is
// taken from the caller's clock.
func NewOrder(branch kernel.Branch, products []product.Product, createdAt time.Time) (*Order, error) {
	if err := branch.Validate(); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, errs.NewValueIsRequiredError("products")
	}
	if err := validateSnapshot(products); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return &Order{
		id:        id.String(),
		status:    StatusSentToChef,
		branch:    branch,
		products:  cloneProducts(products),
		createdAt: createdAt,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence. All fields are taken
// as stored; status and branch are validated so corrupt rows surface early.
func RestoreOrder(
	id string,
	status Status,
	branch kernel.Branch,
	products []product.Product,
	createdAt time.Time,
	deliveredAt *time.Time,
	estimatedDeliveryDate *time.Time,
) (*Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := branch.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                    id,
		status:                status,
		branch:                branch,
		products:              cloneProducts(products),
		createdAt:             createdAt,
		deliveredAt:           deliveredAt,
		estimatedDeliveryDate: estimatedDeliveryDate,
		guard:                 kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was created through one of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() string {
	return o.id
}

// Status returns the order's current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// Branch returns the branch the order was placed from.
func (o *Order) Branch() kernel.Branch {
	return o.branch
}

// Products returns a copy of the order's product snapshot.
func (o *Order) Products() []product.Product {
	return cloneProducts(o.products)
}

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns when the supplier's delivery was recorded, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// EstimatedDeliveryDate returns the supplier's estimate, or nil.
func (o *Order) EstimatedDeliveryDate() *time.Time {
	return o.estimatedDeliveryDate
}

// Submit is the chef's transition from sent_to_chef to sent_to_financier.
// Quantities from the edit are applied onto the current snapshot; at least one
// product must end up with quantity > 0.
//
// Returns ErrValidation (ReasonEmptyOrder) when nothing was ordered,
// ErrValidation (ReasonNegativeQuantity) for a negative quantity, and
// ErrInvalidTransition when the order is not in sent_to_chef.
func (o *Order) Submit(edits QuantityEdits) error {
	if err := o.ensureStatus(StatusSentToChef); err != nil {
		return err
	}

	next := cloneProducts(o.products)
	for id, qty := range edits {
		if qty < 0 {
			return NewValidationError(ReasonNegativeQuantity,
				fmt.Errorf("quantity %v for product %s", qty, id))
		}
		i, err := indexByID(next, id)
		if err != nil {
			return err
		}
		next[i].Quantity = qty
	}

	if !anyOrdered(next) {
		return NewValidationError(ReasonEmptyOrder, errors.New("every product has quantity 0"))
	}

	o.products = next
	o.status = StatusSentToFinancier
	return nil
}

// Approve is the financier's transition from sent_to_financier to
// sent_to_supplier. The product snapshot is replaced wholesale; the financier
// may add, edit, or remove any product. The only precondition is a valid,
// non-empty snapshot.
func (o *Order) Approve(edit SnapshotReplace) error {
	if err := o.ensureStatus(StatusSentToFinancier); err != nil {
		return err
	}
	if err := validateReplacement(edit.Products); err != nil {
		return err
	}

	o.products = cloneProducts(edit.Products)
	o.status = StatusSentToSupplier
	return nil
}

// Price is the supplier's transition from sent_to_supplier to chef_checking.
// Per-product pricing edits are applied onto the current snapshot; a product
// with quantity > 0 and no new price falls back to its last known price.
// After the fallback, every ordered product must have a price > 0, else the
// transition fails with ErrValidation (ReasonMissingPrices).
//
// The order-level estimated delivery date is set when the edit carries one.
// deliveredAt is NOT stamped here; that belongs to the gateway layer.
func (o *Order) Price(edits PricingEdits) error {
	if err := o.ensureStatus(StatusSentToSupplier); err != nil {
		return err
	}

	next := cloneProducts(o.products)
	for id, edit := range edits.Products {
		i, err := indexByID(next, id)
		if err != nil {
			return err
		}
		if edit.Price != nil {
			if *edit.Price < 0 {
				return errs.NewValueIsInvalidErrorWithCause("price",
					fmt.Errorf("%v for product %s is negative", *edit.Price, id))
			}
			next[i].Price = cloneFloat(edit.Price)
		}
		if edit.Comment != nil {
			next[i].Comment = cloneString(edit.Comment)
		}
		if edit.Checked != nil {
			next[i].Checked = cloneBool(edit.Checked)
		}
		if edit.DeliveryDate != nil {
			next[i].DeliveryDate = cloneTime(edit.DeliveryDate)
		}
	}

	for i := range next {
		if !next[i].IsOrdered() {
			continue
		}
		if next[i].Price == nil || *next[i].Price <= 0 {
			if last := next[i].EffectivePrice(); last > 0 {
				next[i].Price = &last
			}
		}
		if next[i].Price == nil || *next[i].Price <= 0 {
			return NewValidationError(ReasonMissingPrices,
				fmt.Errorf("product %s is ordered but has no price", next[i].ID))
		}
	}

	o.products = next
	if edits.EstimatedDeliveryDate != nil {
		o.estimatedDeliveryDate = cloneTime(edits.EstimatedDeliveryDate)
	}
	o.status = StatusChefChecking
	return nil
}

// CompleteChecking is the chef's transition from chef_checking to
// financier_checking. Check marks and chef comments are applied onto the
// current snapshot; there is no extra validation.
func (o *Order) CompleteChecking(edits CheckingEdits) error {
	if err := o.ensureStatus(StatusChefChecking); err != nil {
		return err
	}

	next := cloneProducts(o.products)
	for id, edit := range edits {
		i, err := indexByID(next, id)
		if err != nil {
			return err
		}
		if edit.Checked != nil {
			next[i].Checked = cloneBool(edit.Checked)
		}
		if edit.ChefComment != nil {
			next[i].ChefComment = cloneString(edit.ChefComment)
		}
	}

	o.products = next
	o.status = StatusFinancierChecking
	return nil
}

// Finalize is the financier's terminal transition from financier_checking to
// completed. Edit rights mirror Approve: the snapshot is replaced wholesale,
// and a product removed during the price-correction pass is simply absent
// from it. After this the order is an archive record.
func (o *Order) Finalize(edit SnapshotReplace) error {
	if err := o.ensureStatus(StatusFinancierChecking); err != nil {
		return err
	}
	if err := validateReplacement(edit.Products); err != nil {
		return err
	}

	o.products = cloneProducts(edit.Products)
	o.status = StatusCompleted
	return nil
}

// StampDelivered records the delivery time once. Called by the gateway layer
// when an order enters chef_checking without a delivery mark; the engine never
// stamps it on its own.
func (o *Order) StampDelivered(t time.Time) {
	if o.deliveredAt == nil {
		o.deliveredAt = &t
	}
}

// ensureStatus rejects a transition attempted from any status but the expected
// one. This keeps each transition method safe even when called directly,
// independent of the routing in the workflow engine.
func (o *Order) ensureStatus(expected Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != expected {
		next, nextErr := o.status.Next()
		if nextErr != nil {
			return NewInvalidTransitionError(o.status, "",
				fmt.Errorf("order is in %s, which permits no transition", o.status))
		}
		return NewInvalidTransitionError(o.status, next,
			fmt.Errorf("transition requires status %s", expected))
	}
	return nil
}

// validateReplacement checks a wholesale snapshot replacement: non-empty,
// well-formed, and free of negative quantities.
func validateReplacement(products []product.Product) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredError("products")
	}
	return validateSnapshot(products)
}

// validateSnapshot maps a negative quantity to the workflow's dedicated
// validation reason and defers the rest to the product package.
func validateSnapshot(products []product.Product) error {
	for _, p := range products {
		if p.Quantity < 0 {
			return NewValidationError(ReasonNegativeQuantity,
				fmt.Errorf("quantity %v for product %s", p.Quantity, p.ID))
		}
	}
	return product.ValidateSnapshot(products)
}

func indexByID(products []product.Product, id string) (int, error) {
	for i := range products {
		if products[i].ID == id {
			return i, nil
		}
	}
	return 0, errs.NewObjectNotFoundError("product", id)
}

func anyOrdered(products []product.Product) bool {
	for i := range products {
		if products[i].IsOrdered() {
			return true
		}
	}
	return false
}

func cloneProducts(products []product.Product) []product.Product {
	out := make([]product.Product, len(products))
	copy(out, products)
	return out
}

func cloneFloat(v *float64) *float64 {
	c := *v
	return &c
}

func cloneString(v *string) *string {
	c := *v
	return &c
}

func cloneBool(v *bool) *bool {
	c := *v
	return &c
}

func cloneTime(v *time.Time) *time.Time {
	c := *v
	return &c
}
