package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
)

// ApproveOrderCommandHandler moves an order from sent_to_financier to
// sent_to_supplier, replacing the product snapshot with the financier's edits.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	engine     services.WorkflowEngine
}

// NewApproveOrderCommandHandler creates a handler for financier approval.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory, engine services.WorkflowEngine) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle processes the approval command inside a transaction.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
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
	if err = h.engine.Advance(aggregate, cmd.Role(), order.StatusSentToSupplier, edit); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
