package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/pkg/errs"
)

var ErrFinalizeOrderCommandIsNotConstructed = errors.New(
	"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
)

// FinalizeOrderCommand represents the financier's price correction pass that
// closes the order. Like approval, it carries a complete replacement snapshot;
// products removed during correction are simply absent from it.
type FinalizeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	role     kernel.Role
	products []product.Product

	guard kernel.ConstructorGuard
}

// NewFinalizeOrderCommand creates a command to finalize and archive the order.
func NewFinalizeOrderCommand(orderID string, role kernel.Role, products []product.Product) (FinalizeOrderCommand, error) {
	cmd := FinalizeOrderCommand{
		products: products,
		guard:    kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRole(role),
	); err != nil {
		return FinalizeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being finalized.
func (c FinalizeOrderCommand) OrderID() string {
	return c.orderID
}

// Role returns the caller's claimed role.
func (c FinalizeOrderCommand) Role() kernel.Role {
	return c.role
}

// Products returns the replacement product snapshot.
func (c FinalizeOrderCommand) Products() []product.Product {
	return c.products
}

func (c *FinalizeOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *FinalizeOrderCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
