package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new procurement cycle for
// a branch. The new order starts as a full catalog snapshot with every
// quantity at 0, waiting for the chef.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.BranchChilanzar)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	branch kernel.Branch

	guard kernel.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open an order for the branch.
// Returns an error when the branch is not a known one.
func NewCreateOrderCommand(branch kernel.Branch) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := orderCommand.setBranch(branch); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Branch returns the branch the order is opened for.
func (c CreateOrderCommand) Branch() kernel.Branch {
	return c.branch
}

func (c *CreateOrderCommand) setBranch(branch kernel.Branch) error {
	if err := branch.Validate(); err != nil {
		return err
	}

	c.branch = branch
	return nil
}
