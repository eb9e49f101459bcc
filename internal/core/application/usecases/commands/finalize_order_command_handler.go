package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
)

// FinalizeOrderCommandHandler moves an order from financier_checking to
// completed, turning it into an archive record.
type FinalizeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	engine     services.WorkflowEngine
}

// NewFinalizeOrderCommandHandler creates a handler for order finalization.
func NewFinalizeOrderCommandHandler(uowFactory OrderUoWFactory, engine services.WorkflowEngine) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle processes the finalization command inside a transaction.
func (h *FinalizeOrderCommandHandler) Handle(ctx context.Context, cmd FinalizeOrderCommand) error {
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

	edit := order.SnapshotReplace{Products: cmd.Products()}
	if err = h.engine.Advance(aggregate, cmd.Role(), order.StatusCompleted, edit); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
