package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

var ErrPriceOrderCommandIsNotConstructed = errors.New(
	"PriceOrderCommand must be created via NewPriceOrderCommand constructor",
)

// PriceOrderCommand represents the supplier's pricing pass over an approved
// order: per-product prices, comments, and marks, plus the order-level
// estimated delivery date.
type PriceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	role    kernel.Role
	edits   order.PricingEdits

	guard kernel.ConstructorGuard
}

// NewPriceOrderCommand creates a command to price the order and hand it over
// to chef checking.
func NewPriceOrderCommand(orderID string, role kernel.Role, edits order.PricingEdits) (PriceOrderCommand, error) {
	cmd := PriceOrderCommand{
		edits: edits,
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRole(role),
	); err != nil {
		return PriceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PriceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPriceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being priced.
func (c PriceOrderCommand) OrderID() string {
	return c.orderID
}

// Role returns the caller's claimed role.
func (c PriceOrderCommand) Role() kernel.Role {
	return c.role
}

// Edits returns the supplier's pricing edits.
func (c PriceOrderCommand) Edits() order.PricingEdits {
	return c.edits
}

func (c *PriceOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *PriceOrderCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
