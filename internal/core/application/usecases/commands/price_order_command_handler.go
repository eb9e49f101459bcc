package commands

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
)

// PriceOrderCommandHandler moves an order from sent_to_supplier to
// chef_checking. Entering chef_checking means the goods left the supplier, so
// the handler also stamps deliveredAt; the delivery stamp job backfills any
// order that reached chef_checking without one.
type PriceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	engine     services.WorkflowEngine
}

// NewPriceOrderCommandHandler creates a handler for supplier pricing.
func NewPriceOrderCommandHandler(uowFactory OrderUoWFactory, engine services.WorkflowEngine) PriceOrderCommandHandler {
	return PriceOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle processes the pricing command inside a transaction.
func (h *PriceOrderCommandHandler) Handle(ctx context.Context, cmd PriceOrderCommand) error {
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

	if err = h.engine.Advance(aggregate, cmd.Role(), order.StatusChefChecking, cmd.Edits()); err != nil {
		return err
	}
	aggregate.StampDelivered(time.Now().UTC())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
