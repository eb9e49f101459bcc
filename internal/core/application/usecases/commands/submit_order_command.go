package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents the chef's request to submit an order to the
// financier. Carries per-product quantities keyed by product id; products not
// mentioned keep their current quantity.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	role       kernel.Role
	quantities order.QuantityEdits

	guard kernel.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit the order with the given
// quantities. The role is the caller's claimed role and is checked against the
// workflow table by the handler, not here.
func NewSubmitOrderCommand(orderID string, role kernel.Role, quantities order.QuantityEdits) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		quantities: quantities,
		guard:      kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRole(role),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being submitted.
func (c SubmitOrderCommand) OrderID() string {
	return c.orderID
}

// Role returns the caller's claimed role.
func (c SubmitOrderCommand) Role() kernel.Role {
	return c.role
}

// Quantities returns the per-product quantity edits.
func (c SubmitOrderCommand) Quantities() order.QuantityEdits {
	return c.quantities
}

func (c *SubmitOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
