package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
)

var ErrGetArchivedOrdersQueryIsNotConstructed = errors.New(
	"GetArchivedOrdersQuery must be created via NewGetArchivedOrdersQuery constructor",
)

// GetArchivedOrdersQuery retrieves completed orders, newest first.
// An optional branch narrows the archive to one branch's history.
type GetArchivedOrdersQuery struct { //nolint:recvcheck //using for validation
	branch kernel.Branch

	guard kernel.ConstructorGuard
}

// NewGetArchivedOrdersQuery creates a query for the order archive.
// Pass the zero Branch to include every branch.
func NewGetArchivedOrdersQuery(branch kernel.Branch) (GetArchivedOrdersQuery, error) {
	query := GetArchivedOrdersQuery{
		guard: kernel.NewConstructorGuard(),
	}

	if branch != "" {
		if err := branch.Validate(); err != nil {
			return GetArchivedOrdersQuery{}, err
		}
		query.branch = branch
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetArchivedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedOrdersQueryIsNotConstructed)
}

// Branch returns the branch filter; the zero value means all branches.
func (q GetArchivedOrdersQuery) Branch() kernel.Branch {
	return q.branch
}
