package queries_test

import (
	"testing"

	"procurement/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCatalogQuery_Valid(t *testing.T) {
	query := queries.NewGetCatalogQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetCatalogQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCatalogQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCatalogQueryIsNotConstructed)
}
