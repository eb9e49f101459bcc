package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves the orders a role can currently act on:
// sent_to_chef and chef_checking for the chef, sent_to_financier and
// financier_checking for the financier, sent_to_supplier for the supplier.
// An optional branch narrows the result to one branch's work queue.
//
// Example:
//
//	query, _ := NewGetActiveOrdersQuery(kernel.RoleChef, kernel.BranchChilanzar)
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get work queue: %w", err)
//	}
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	role   kernel.Role
	branch kernel.Branch

	guard kernel.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for a role's work queue.
// Pass the zero Branch to include every branch.
func NewGetActiveOrdersQuery(role kernel.Role, branch kernel.Branch) (GetActiveOrdersQuery, error) {
	query := GetActiveOrdersQuery{
		guard: kernel.NewConstructorGuard(),
	}

	if err := role.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}
	query.role = role

	if branch != "" {
		if err := branch.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
		query.branch = branch
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Role returns the role whose work queue is requested.
func (q GetActiveOrdersQuery) Role() kernel.Role {
	return q.role
}

// Branch returns the branch filter; the zero value means all branches.
func (q GetActiveOrdersQuery) Branch() kernel.Branch {
	return q.branch
}
