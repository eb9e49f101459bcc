package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
)

// SubmitOrderCommandHandler moves an order from sent_to_chef to
// sent_to_financier through the workflow engine.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	engine     services.WorkflowEngine
}

// NewSubmitOrderCommandHandler creates a handler for chef order submission.
func NewSubmitOrderCommandHandler(uowFactory OrderUoWFactory, engine services.WorkflowEngine) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle loads the order, applies the chef's quantities, and persists the
// advanced order. Workflow violations surface as order.ErrInvalidTransition
// or order.ErrValidation and roll the transaction back.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
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

	if err = h.engine.Advance(aggregate, cmd.Role(), order.StatusSentToFinancier, cmd.Quantities()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
