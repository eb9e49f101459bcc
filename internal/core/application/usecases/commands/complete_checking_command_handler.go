package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
)

// CompleteCheckingCommandHandler moves an order from chef_checking to
// financier_checking with the chef's check marks applied.
type CompleteCheckingCommandHandler struct {
	uowFactory OrderUoWFactory
	engine     services.WorkflowEngine
}

// NewCompleteCheckingCommandHandler creates a handler for chef checking.
func NewCompleteCheckingCommandHandler(uowFactory OrderUoWFactory, engine services.WorkflowEngine) CompleteCheckingCommandHandler {
	return CompleteCheckingCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle processes the checking command inside a transaction.
func (h *CompleteCheckingCommandHandler) Handle(ctx context.Context, cmd CompleteCheckingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.engine.Advance(aggregate, cmd.Role(), order.StatusFinancierChecking, cmd.Edits()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
