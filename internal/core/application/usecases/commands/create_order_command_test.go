package commands_test

import (
	"testing"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/actor"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	a := mustActor(t, "tenant-1", "user-1", actor.User)
	items := []order.Item{{DishRef: "DISH-1", Quantity: 2}}

	cmd, err := commands.NewCreateOrderCommand(a, items, 25.00)
	require.NoError(t, err)
	assert.Equal(t, a, cmd.Actor())
	assert.Equal(t, items, cmd.Items())
	assert.InDelta(t, 25.00, cmd.Total(), 0.0001)
}

func TestNewCreateOrderCommand_EmptyItemsAllowed(t *testing.T) {
	a := mustActor(t, "tenant-1", "user-1", actor.User)

	cmd, err := commands.NewCreateOrderCommand(a, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, cmd.Items())
}

func TestNewCreateOrderCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(actor.Actor{}, nil, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
}

func TestNewCreateOrderCommand_NegativeTotal(t *testing.T) {
	a := mustActor(t, "tenant-1", "user-1", actor.User)

	_, err := commands.NewCreateOrderCommand(a, nil, -0.01)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_InvalidItem(t *testing.T) {
	a := mustActor(t, "tenant-1", "user-1", actor.User)
	items := []order.Item{{DishRef: "", Quantity: 1}}

	_, err := commands.NewCreateOrderCommand(a, items, 10)
	require.Error(t, err)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
