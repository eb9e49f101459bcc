package commands

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/order"
)

// StampDeliveryCommandHandler backfills deliveredAt for orders that entered
// chef_checking without a stamp. All updates occur within a single transaction.
type StampDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStampDeliveryCommandHandler creates a handler for the delivery stamp pass.
func NewStampDeliveryCommandHandler(uowFactory OrderUoWFactory) StampDeliveryCommandHandler {
	return StampDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle retrieves every order in chef_checking and stamps the ones missing a
// delivery time. Already stamped orders are left untouched.
func (h *StampDeliveryCommandHandler) Handle(ctx context.Context, cmd StampDeliveryCommand) error {
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

	orders, err := orderRepo.GetAllInStatuses(ctx, []order.Status{order.StatusChefChecking})
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, aggregate := range orders {
		if aggregate.DeliveredAt() != nil {
			continue
		}

		aggregate.StampDelivered(now)
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
