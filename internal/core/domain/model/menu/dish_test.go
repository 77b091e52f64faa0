package menu_test

import (
	"testing"
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDish(t *testing.T) {
	tenant, err := kernel.NewTenantID("BEMBOS")
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		d, dishErr := menu.NewDish(kernel.NewDishID(), tenant, "Burger", "classic", 12.50, "")
		require.NoError(t, dishErr)
		assert.Equal(t, "Burger", d.Name())
		assert.Equal(t, 12.50, d.Price())
		assert.True(t, d.Available())
		require.NoError(t, d.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		_, dishErr := menu.NewDish(kernel.NewDishID(), tenant, "", "", 1, "")
		require.Error(t, dishErr)
	})

	t.Run("negative price", func(t *testing.T) {
		_, dishErr := menu.NewDish(kernel.NewDishID(), tenant, "Burger", "", -1, "")
		require.Error(t, dishErr)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var d menu.Dish
		require.ErrorIs(t, d.Validate(), menu.ErrDishIsNotConstructed)
	})
}

func TestDish_Update(t *testing.T) {
	tenant, _ := kernel.NewTenantID("BEMBOS")
	d, err := menu.NewDish(kernel.NewDishID(), tenant, "Burger", "classic", 12.50, "")
	require.NoError(t, err)

	require.NoError(t, d.Update("Double Burger", "two patties", 18.90, false, "https://img/d1.png"))
	assert.Equal(t, "Double Burger", d.Name())
	assert.Equal(t, 18.90, d.Price())
	assert.False(t, d.Available())
	assert.Equal(t, "https://img/d1.png", d.ImageURL())

	require.Error(t, d.Update("", "", 1, true, ""))
	assert.Equal(t, "Double Burger", d.Name(), "failed update must not change state")
}

func TestRestoreDish(t *testing.T) {
	tenant, _ := kernel.NewTenantID("BEMBOS")
	now := time.Now().UTC()

	d, err := menu.RestoreDish(kernel.NewDishID(), tenant, "Burger", "classic", 12.50, false, "", now, now)
	require.NoError(t, err)
	assert.False(t, d.Available())

	_, err = menu.RestoreDish(kernel.NewDishID(), tenant, "", "", 1, true, "", now, now)
	require.Error(t, err)
}
