package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/pkg/errs"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand represents the financier's approval of a submitted
// order. The financier has full edit rights, so the command carries the
// complete replacement snapshot rather than a delta.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	role     kernel.Role
	products []product.Product

	guard kernel.ConstructorGuard
}

// NewApproveOrderCommand creates a command to approve the order with the given
// replacement snapshot. Snapshot content is validated by the aggregate.
func NewApproveOrderCommand(orderID string, role kernel.Role, products []product.Product) (ApproveOrderCommand, error) {
	cmd := ApproveOrderCommand{
		products: products,
		guard:    kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRole(role),
	); err != nil {
		return ApproveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being approved.
func (c ApproveOrderCommand) OrderID() string {
	return c.orderID
}

// Role returns the caller's claimed role.
func (c ApproveOrderCommand) Role() kernel.Role {
	return c.role
}

// Products returns the replacement product snapshot.
func (c ApproveOrderCommand) Products() []product.Product {
	return c.products
}

func (c *ApproveOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *ApproveOrderCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
