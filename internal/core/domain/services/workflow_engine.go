package services

import (
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

// Authorizer decides whether a role may act on an order in a given status.
// The default implementation is the static workflow table; a real
// authorization system can be swapped in at the engine boundary.
type Authorizer interface {
	CanAct(role kernel.Role, status order.Status) bool
}

// StatusTableAuthorizer authorizes by the workflow's static actor table:
// each status has exactly one permitted writer, terminal and reserved
// statuses have none.
type StatusTableAuthorizer struct{}

// NewStatusTableAuthorizer creates the default table-backed authorizer.
func NewStatusTableAuthorizer() StatusTableAuthorizer {
	return StatusTableAuthorizer{}
}

// CanAct reports whether role is the permitted writer for status.
func (StatusTableAuthorizer) CanAct(role kernel.Role, status order.Status) bool {
	actor, err := status.Actor()
	if err != nil {
		return false
	}
	return actor == role
}

// WorkflowEngine validates and applies order workflow transitions. It is a
// pure function of (order, role, target, edit): no locking, no I/O, no side
// effects beyond the mutation of the passed aggregate on success. Concurrent
// writers are resolved last-write-wins at the persistence layer.
//
// Example:
//
//	engine := NewWorkflowEngine(nil) // static table authorization
//	err := engine.Advance(o, kernel.RoleChef, order.StatusSentToFinancier,
//	    order.QuantityEdits{"1": 5})
//	if errors.Is(err, order.ErrValidation) {
//	    // precondition failed, order unchanged
//	}
type WorkflowEngine struct {
	auth Authorizer
}

// NewWorkflowEngine creates a workflow engine with the given authorizer.
// A nil authorizer falls back to the static status table.
func NewWorkflowEngine(auth Authorizer) WorkflowEngine {
	if auth == nil {
		auth = NewStatusTableAuthorizer()
	}
	return WorkflowEngine{auth: auth}
}

// Advance validates and applies one workflow transition:
//
//  1. the acting role must be the permitted writer for the order's status
//  2. target must be the single legal successor of the order's status
//  3. the edit must be the kind the current status accepts; its
//     transition-specific preconditions are checked by the aggregate
//
// On any failure the order is left unmodified and the error is terminal for
// the call. On success the order holds the replaced snapshot and the new
// status, and the caller is responsible for persisting it.
func (e WorkflowEngine) Advance(o *order.Order, role kernel.Role, target order.Status, edit order.Edit) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	current := o.Status()
	if !e.auth.CanAct(role, current) {
		return order.NewInvalidTransitionError(current, target,
			fmt.Errorf("role %s may not write an order in status %s", role, current))
	}
	if err := current.ValidateTransitionTo(target); err != nil {
		return err
	}

	switch current {
	case order.StatusSentToChef:
		edits, ok := edit.(order.QuantityEdits)
		if !ok {
			return wrongEditKind(current, edit)
		}
		return o.Submit(edits)
	case order.StatusSentToFinancier:
		replace, ok := edit.(order.SnapshotReplace)
		if !ok {
			return wrongEditKind(current, edit)
		}
		return o.Approve(replace)
	case order.StatusSentToSupplier:
		edits, ok := edit.(order.PricingEdits)
		if !ok {
			return wrongEditKind(current, edit)
		}
		return o.Price(edits)
	case order.StatusChefChecking:
		edits, ok := edit.(order.CheckingEdits)
		if !ok {
			return wrongEditKind(current, edit)
		}
		return o.CompleteChecking(edits)
	case order.StatusFinancierChecking:
		replace, ok := edit.(order.SnapshotReplace)
		if !ok {
			return wrongEditKind(current, edit)
		}
		return o.Finalize(replace)
	default:
		// Unreachable: statuses without a successor fail ValidateTransitionTo.
		return order.NewInvalidTransitionError(current, target,
			fmt.Errorf("no transition wired for status %s", current))
	}
}

func wrongEditKind(status order.Status, edit order.Edit) error {
	return errs.NewValueIsInvalidErrorWithCause("edit",
		fmt.Errorf("status %s does not accept edit kind %T", status, edit))
}
