package services_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type allowAllAuthorizer struct{}

func (allowAllAuthorizer) CanAct(kernel.Role, order.Status) bool { return true }

type denyAllAuthorizer struct{}

func (denyAllAuthorizer) CanAct(kernel.Role, order.Status) bool { return false }

func price(v float64) *float64 { return &v }

func newTestOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder("order-1", status, kernel.BranchChilanzar,
		[]product.Product{
			{ID: "1", Name: "Milk", Category: "Dairy", Quantity: 0, Unit: product.UnitLiter},
		}, time.Now(), nil, nil)
	require.NoError(t, err)
	return o
}

func TestStatusTableAuthorizer(t *testing.T) {
	auth := services.NewStatusTableAuthorizer()

	t.Run("permits the status actor", func(t *testing.T) {
		assert.True(t, auth.CanAct(kernel.RoleChef, order.StatusSentToChef))
		assert.True(t, auth.CanAct(kernel.RoleFinancier, order.StatusSentToFinancier))
		assert.True(t, auth.CanAct(kernel.RoleSupplier, order.StatusSentToSupplier))
		assert.True(t, auth.CanAct(kernel.RoleChef, order.StatusChefChecking))
		assert.True(t, auth.CanAct(kernel.RoleFinancier, order.StatusFinancierChecking))
	})

	t.Run("denies every other role", func(t *testing.T) {
		assert.False(t, auth.CanAct(kernel.RoleFinancier, order.StatusSentToChef))
		assert.False(t, auth.CanAct(kernel.RoleSupplier, order.StatusChefChecking))
		assert.False(t, auth.CanAct(kernel.RoleChef, order.StatusSentToFinancier))
	})

	t.Run("denies everyone on terminal and reserved statuses", func(t *testing.T) {
		for _, role := range kernel.Roles() {
			assert.False(t, auth.CanAct(role, order.StatusCompleted))
			assert.False(t, auth.CanAct(role, order.StatusSupplierCollecting))
			assert.False(t, auth.CanAct(role, order.StatusSupplierDelivering))
		}
	})
}

func TestWorkflowEngine_Advance(t *testing.T) {
	t.Run("rejects invalid role", func(t *testing.T) {
		engine := services.NewWorkflowEngine(nil)
		o := newTestOrder(t, order.StatusSentToChef)

		err := engine.Advance(o, kernel.Role("janitor"), order.StatusSentToFinancier, order.QuantityEdits{"1": 5})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects invalid target status", func(t *testing.T) {
		engine := services.NewWorkflowEngine(nil)
		o := newTestOrder(t, order.StatusSentToChef)

		err := engine.Advance(o, kernel.RoleChef, order.Status("garbage"), order.QuantityEdits{"1": 5})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects role that is not the status writer", func(t *testing.T) {
		engine := services.NewWorkflowEngine(nil)
		o := newTestOrder(t, order.StatusSentToChef)

		err := engine.Advance(o, kernel.RoleSupplier, order.StatusSentToFinancier, order.QuantityEdits{"1": 5})

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusSentToChef, o.Status())
	})

	t.Run("rejects target that is not the successor", func(t *testing.T) {
		engine := services.NewWorkflowEngine(nil)
		o := newTestOrder(t, order.StatusSentToChef)

		err := engine.Advance(o, kernel.RoleChef, order.StatusCompleted, order.QuantityEdits{"1": 5})

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusSentToChef, o.Status())
	})

	t.Run("rejects edit of the wrong kind", func(t *testing.T) {
		engine := services.NewWorkflowEngine(nil)
		o := newTestOrder(t, order.StatusSentToChef)

		err := engine.Advance(o, kernel.RoleChef, order.StatusSentToFinancier, order.PricingEdits{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.StatusSentToChef, o.Status())
	})

	t.Run("propagates the aggregate's precondition failure", func(t *testing.T) {
		engine := services.NewWorkflowEngine(nil)
		o := newTestOrder(t, order.StatusSentToChef)

		err := engine.Advance(o, kernel.RoleChef, order.StatusSentToFinancier, order.QuantityEdits{})

		require.ErrorIs(t, err, order.ErrValidation)
		assert.Equal(t, order.StatusSentToChef, o.Status())
	})

	t.Run("custom authorizer replaces the static table", func(t *testing.T) {
		o := newTestOrder(t, order.StatusSentToChef)

		err := services.NewWorkflowEngine(denyAllAuthorizer{}).
			Advance(o, kernel.RoleChef, order.StatusSentToFinancier, order.QuantityEdits{"1": 5})
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		err = services.NewWorkflowEngine(allowAllAuthorizer{}).
			Advance(o, kernel.RoleSupplier, order.StatusSentToFinancier, order.QuantityEdits{"1": 5})
		require.NoError(t, err)
		assert.Equal(t, order.StatusSentToFinancier, o.Status())
	})

	t.Run("routes every workflow stage to its transition", func(t *testing.T) {
		engine := services.NewWorkflowEngine(nil)
		o := newTestOrder(t, order.StatusSentToChef)

		require.NoError(t, engine.Advance(o, kernel.RoleChef, order.StatusSentToFinancier,
			order.QuantityEdits{"1": 5}))
		assert.Equal(t, order.StatusSentToFinancier, o.Status())

		require.NoError(t, engine.Advance(o, kernel.RoleFinancier, order.StatusSentToSupplier,
			order.SnapshotReplace{Products: o.Products()}))
		assert.Equal(t, order.StatusSentToSupplier, o.Status())

		require.NoError(t, engine.Advance(o, kernel.RoleSupplier, order.StatusChefChecking,
			order.PricingEdits{Products: map[string]order.PricingEdit{
				"1": {Price: price(12000)},
			}}))
		assert.Equal(t, order.StatusChefChecking, o.Status())

		require.NoError(t, engine.Advance(o, kernel.RoleChef, order.StatusFinancierChecking,
			order.CheckingEdits{}))
		assert.Equal(t, order.StatusFinancierChecking, o.Status())

		require.NoError(t, engine.Advance(o, kernel.RoleFinancier, order.StatusCompleted,
			order.SnapshotReplace{Products: o.Products()}))
		assert.Equal(t, order.StatusCompleted, o.Status())

		err := engine.Advance(o, kernel.RoleFinancier, order.StatusCompleted,
			order.SnapshotReplace{Products: o.Products()})
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}
