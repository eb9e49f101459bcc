package commands

import (
	"context"
	"errors"
	"time"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for opening an order.
// Snapshots the current catalog, carries last known prices from the branch's
// latest completed order, and enforces that the branch has at most one order
// in flight.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory spanning the order and catalog repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Returns errs.ErrConflict when the branch already has an unfinished order.
// The whole sequence runs in one transaction so two concurrent creates for the
// same branch cannot both pass the in-flight check and commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	inFlight, err := orderRepo.GetByBranchInStatuses(ctx, cmd.Branch(), order.InFlightStatuses())
	if err != nil {
		return err
	}
	if len(inFlight) > 0 {
		return errs.NewConflictError("branch", cmd.Branch())
	}

	catalog, err := uow.CatalogRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	snapshot := product.SnapshotFromCatalog(catalog)

	previous, err := orderRepo.GetLatestCompletedByBranch(ctx, cmd.Branch())
	switch {
	case err == nil:
		snapshot = product.CarryLastPrices(snapshot, previous.Products())
	case errors.Is(err, errs.ErrObjectNotFound):
		// First order for the branch, nothing to carry.
	default:
		return err
	}

	aggregate, err := order.NewOrder(cmd.Branch(), snapshot, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
