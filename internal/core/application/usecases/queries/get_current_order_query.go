package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
)

var ErrGetCurrentOrderQueryIsNotConstructed = errors.New(
	"GetCurrentOrderQuery must be created via NewGetCurrentOrderQuery constructor",
)

// GetCurrentOrderQuery retrieves a branch's single in-flight order, the one
// currently moving through the workflow.
type GetCurrentOrderQuery struct { //nolint:recvcheck //using for validation
	branch kernel.Branch

	guard kernel.ConstructorGuard
}

// NewGetCurrentOrderQuery creates a query for the branch's in-flight order.
func NewGetCurrentOrderQuery(branch kernel.Branch) (GetCurrentOrderQuery, error) {
	query := GetCurrentOrderQuery{
		guard: kernel.NewConstructorGuard(),
	}

	if err := branch.Validate(); err != nil {
		return GetCurrentOrderQuery{}, err
	}
	query.branch = branch

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentOrderQueryIsNotConstructed)
}

// Branch returns the branch whose in-flight order is requested.
func (q GetCurrentOrderQuery) Branch() kernel.Branch {
	return q.branch
}
