package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
)

// StampDeliveryCommand triggers a backfill of delivery timestamps for all
// orders sitting in chef_checking without one. The workflow engine never
// stamps deliveredAt itself; normally the pricing handler does it, and this
// batch command covers orders that slipped through.
//
// Example:
//
//	cmd := NewStampDeliveryCommand()
//	handler := NewStampDeliveryCommandHandler(uowFactory)
//
//	// Run periodically from the job scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Delivery stamp pass failed: %v", err)
//	}
type StampDeliveryCommand struct {
	guard kernel.ConstructorGuard
}

var ErrStampDeliveryCommandIsNotConstructed = errors.New(
	"StampDeliveryCommand must be created via NewStampDeliveryCommand constructor",
)

// NewStampDeliveryCommand creates a command to trigger the delivery stamp pass.
// This is a parameterless command that processes all unstamped deliveries.
func NewStampDeliveryCommand() StampDeliveryCommand {
	command := StampDeliveryCommand{
		guard: kernel.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrStampDeliveryCommandIsNotConstructed if validation fails.
func (c *StampDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStampDeliveryCommandIsNotConstructed)
}
