package queries_test

import (
	"testing"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetActiveOrdersQuery(kernel.RoleChef, kernel.BranchChilanzar)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, kernel.RoleChef, query.Role())
	assert.Equal(t, kernel.BranchChilanzar, query.Branch())
}

func TestNewGetActiveOrdersQuery_AllBranches(t *testing.T) {
	query, err := queries.NewGetActiveOrdersQuery(kernel.RoleFinancier, "")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Empty(t, query.Branch())
}

func TestNewGetActiveOrdersQuery_InvalidRole(t *testing.T) {
	_, err := queries.NewGetActiveOrdersQuery("accountant", kernel.BranchChilanzar)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetActiveOrdersQuery_InvalidBranch(t *testing.T) {
	_, err := queries.NewGetActiveOrdersQuery(kernel.RoleChef, "yunusabad")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetActiveOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetActiveOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}
