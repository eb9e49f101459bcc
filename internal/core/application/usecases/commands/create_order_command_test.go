package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid branch", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.BranchChilanzar)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, kernel.BranchChilanzar, cmd.Branch())
	})

	t.Run("unknown branch", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.Branch("downtown"))
		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
