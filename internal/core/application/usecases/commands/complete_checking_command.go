package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

var ErrCompleteCheckingCommandIsNotConstructed = errors.New(
	"CompleteCheckingCommand must be created via NewCompleteCheckingCommand constructor",
)

// CompleteCheckingCommand represents the chef's acceptance pass over a
// delivered order: per-product check marks and discrepancy comments.
type CompleteCheckingCommand struct { //nolint:recvcheck //using for validation
	orderID string
	role    kernel.Role
	edits   order.CheckingEdits

	guard kernel.ConstructorGuard
}

// NewCompleteCheckingCommand creates a command to finish chef checking and
// hand the order to financier checking.
func NewCompleteCheckingCommand(orderID string, role kernel.Role, edits order.CheckingEdits) (CompleteCheckingCommand, error) {
	cmd := CompleteCheckingCommand{
		edits: edits,
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRole(role),
	); err != nil {
		return CompleteCheckingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteCheckingCommand) Validate() error {
	return c.guard.Validate(ErrCompleteCheckingCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being checked.
func (c CompleteCheckingCommand) OrderID() string {
	return c.orderID
}

// Role returns the caller's claimed role.
func (c CompleteCheckingCommand) Role() kernel.Role {
	return c.role
}

// Edits returns the chef's checking edits.
func (c CompleteCheckingCommand) Edits() order.CheckingEdits {
	return c.edits
}

func (c *CompleteCheckingCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteCheckingCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
