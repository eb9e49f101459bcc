package product

import (
	"fmt"
	"time"

	"procurement/internal/pkg/errs"
)

// Unit is the measurement unit of a catalog item.
// The string value is used verbatim on the wire and in persistence.
type Unit string

const (
	UnitKg    Unit = "kg"
	UnitPiece Unit = "piece"
	UnitLiter Unit = "liter"
	UnitGram  Unit = "gram"
)

// Units returns all known measurement units.
func Units() []Unit {
	return []Unit{UnitKg, UnitPiece, UnitLiter, UnitGram}
}

// Validate checks that the unit is one of the known measurement units.
func (u Unit) Validate() error {
	switch u {
	case UnitKg, UnitPiece, UnitLiter, UnitGram:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("unit",
			fmt.Errorf("%q is not a known unit", string(u)))
	}
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return string(u)
}

// Product is one line of an order's product snapshot. Catalog identity
// (ID, Name, Category, Unit) is fixed when the snapshot is taken; the
// remaining fields accumulate per-order state as roles work the order.
//
// A quantity of 0 means "not ordered": the line stays in the snapshot but is
// excluded from active views and from checking/pricing screens.
//
// Field ownership per workflow status is enforced by the order package; this
// struct only knows its own invariants (quantity and price never negative).
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
	Unit     Unit    `json:"unit"`

	// Price is the per-unit price, set only by the supplier.
	Price *float64 `json:"price,omitempty"`

	// Comment is the supplier's delivery note.
	Comment *string `json:"comment,omitempty"`

	// ChefComment is set by the chef during checking.
	ChefComment *string `json:"chefComment,omitempty"`

	// Checked marks physical verification by chef or supplier.
	Checked *bool `json:"checked,omitempty"`

	// LastPrice is the prior known price, shown to the supplier as a
	// re-pricing hint and used as the default when no new price is entered.
	LastPrice *float64 `json:"lastPrice,omitempty"`

	// DeliveryDate is the per-item delivery date, set by the supplier.
	DeliveryDate *time.Time `json:"deliveryDate,omitempty"`
}

// Validate checks the product's own invariants: a non-empty id, a known unit,
// a non-negative quantity and, when present, a non-negative price.
func (p Product) Validate() error {
	if p.ID == "" {
		return errs.NewValueIsRequiredError("product id")
	}
	if err := p.Unit.Validate(); err != nil {
		return err
	}
	if p.Quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than or equal to 0", p.Quantity))
	}
	if p.Price != nil && *p.Price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than or equal to 0", *p.Price))
	}
	return nil
}

// IsOrdered reports whether the line was actually ordered (quantity > 0).
func (p Product) IsOrdered() bool {
	return p.Quantity > 0
}

// EffectivePrice returns the price the supplier committed to, falling back to
// the last known price when no new price was entered. Returns 0 when neither
// is available.
func (p Product) EffectivePrice() float64 {
	if p.Price != nil && *p.Price > 0 {
		return *p.Price
	}
	if p.LastPrice != nil && *p.LastPrice > 0 {
		return *p.LastPrice
	}
	return 0
}

// ValidateSnapshot validates every product in a snapshot and checks that ids
// are unique within it.
func ValidateSnapshot(products []Product) error {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.ID]; ok {
			return errs.NewValueIsInvalidErrorWithCause("products",
				fmt.Errorf("duplicate product id %q in snapshot", p.ID))
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
