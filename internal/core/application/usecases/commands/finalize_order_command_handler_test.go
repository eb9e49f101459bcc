package commands_test

import (
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFinalizeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	price := 12000.0
	aggregate, err := order.RestoreOrder("order-1", order.StatusFinancierChecking, kernel.BranchChilanzar,
		[]product.Product{
			{ID: "1", Name: "Milk", Quantity: 5, Unit: product.UnitLiter, Price: &price},
			{ID: "60", Name: "Potato", Quantity: 3, Unit: product.UnitKg, Price: &price},
		}, time.Now(), nil, nil)
	require.NoError(t, err)

	corrected := 11500.0
	cmd, _ := commands.NewFinalizeOrderCommand("order-1", kernel.RoleFinancier, []product.Product{
		{ID: "1", Name: "Milk", Quantity: 5, Unit: product.UnitLiter, Price: &corrected},
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "order-1").Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinalizeOrderCommandHandler(factory, services.NewWorkflowEngine(nil))
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.StatusCompleted, aggregate.Status())
	require.Len(t, aggregate.Products(), 1, "removed product must be gone from the archive record")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFinalizeOrderCommandHandler_Handle_CompletedOrderRejected(t *testing.T) {
	ctx := t.Context()
	aggregate, err := order.RestoreOrder("order-1", order.StatusCompleted, kernel.BranchChilanzar,
		[]product.Product{
			{ID: "1", Name: "Milk", Quantity: 5, Unit: product.UnitLiter},
		}, time.Now(), nil, nil)
	require.NoError(t, err)

	cmd, _ := commands.NewFinalizeOrderCommand("order-1", kernel.RoleFinancier, aggregate.Products())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "order-1").Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinalizeOrderCommandHandler(factory, services.NewWorkflowEngine(nil))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
