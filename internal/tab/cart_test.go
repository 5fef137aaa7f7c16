package tab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restaurantx/tableside/internal/models"
)

func TestCartRejectsNonPositiveQuantity(t *testing.T) {
	c := NewCart()
	require.Error(t, c.AddLine(dish("Caesar", 32.90), 0, models.Customization{}))
	require.Error(t, c.AddLine(dish("Caesar", 32.90), -1, models.Customization{}))
	assert.Empty(t, c.Lines())
}

func TestCartRejectsUnavailableDish(t *testing.T) {
	c := NewCart()
	item := dish("Caesar", 32.90)
	item.Available = false
	require.Error(t, c.AddLine(item, 1, models.Customization{}))
}

func TestCartItemCountAndTotal(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.AddLine(dish("Caesar", 32.90), 2, models.Customization{}))
	require.NoError(t, c.AddLine(dish("Picanha", 89.90), 1,
		models.Customization{Additions: []string{"Bacon"}}))

	assert.Equal(t, 3, c.ItemCount())
	// 2*32.90 + (89.90+5.00)
	assert.Equal(t, models.NewMoneyFromFloat(160.70), c.Total(models.NewMoneyFromFloat(5.00)))
}

func TestCartClear(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.AddLine(dish("Caesar", 32.90), 1, models.Customization{}))
	c.Clear()
	assert.Empty(t, c.Lines())
	assert.Equal(t, 0, c.ItemCount())
}

func TestCartLinesReturnsCopy(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.AddLine(dish("Caesar", 32.90), 1, models.Customization{}))

	lines := c.Lines()
	lines[0].Quantity = 99
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}
