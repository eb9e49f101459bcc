package queries_test

import (
	"testing"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCurrentOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCurrentOrderQuery(kernel.BranchOlmazar)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, kernel.BranchOlmazar, query.Branch())
}

func TestNewGetCurrentOrderQuery_BranchRequired(t *testing.T) {
	_, err := queries.NewGetCurrentOrderQuery("")
	require.Error(t, err)
}

func TestNewGetCurrentOrderQuery_InvalidBranch(t *testing.T) {
	_, err := queries.NewGetCurrentOrderQuery("yunusabad")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetCurrentOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCurrentOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCurrentOrderQueryIsNotConstructed)
}
