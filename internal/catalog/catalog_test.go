package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restaurantx/tableside/internal/models"
)

func TestSeededHouseMenu(t *testing.T) {
	s := Seeded()
	items := s.Items()
	require.Len(t, items, 6)
	assert.Equal(t, "Risoto de Camarão", items[0].Name)
	assert.Equal(t, models.NewMoneyFromFloat(68.90), items[0].Price)
	for _, it := range items {
		assert.NotEmpty(t, it.ID)
		assert.True(t, it.Available)
	}
}

func TestAddAssignsID(t *testing.T) {
	s := NewStore()
	stored := s.Add(models.MenuItem{Name: "Feijoada", Price: models.NewMoneyFromFloat(45.00), Available: true})
	assert.NotEmpty(t, stored.ID)

	got, err := s.Item(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Feijoada", got.Name)
}

func TestUpdateAndRemove(t *testing.T) {
	s := Seeded()
	items := s.Items()
	first := items[0]

	first.Price = models.NewMoneyFromFloat(74.90)
	require.NoError(t, s.Update(first))
	got, err := s.Item(first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NewMoneyFromFloat(74.90), got.Price)

	require.NoError(t, s.Remove(first.ID))
	_, err = s.Item(first.ID)
	require.ErrorIs(t, err, ErrItemNotFound)
	assert.Len(t, s.Items(), 5)

	require.ErrorIs(t, s.Update(first), ErrItemNotFound)
	require.ErrorIs(t, s.Remove(first.ID), ErrItemNotFound)
}

func TestSetAvailabilityFiltersAvailable(t *testing.T) {
	s := Seeded()
	items := s.Items()

	require.NoError(t, s.SetAvailability(items[0].ID, false))
	available := s.Available()
	assert.Len(t, available, 5)
	for _, it := range available {
		assert.NotEqual(t, items[0].ID, it.ID)
	}

	require.ErrorIs(t, s.SetAvailability("nope", false), ErrItemNotFound)
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	s := Seeded()
	assert.Equal(t,
		[]string{"Pratos Principais", "Massas", "Saladas", "Sobremesas", "Bebidas"},
		s.Categories())
}

func TestAddExtraDishes(t *testing.T) {
	s := Seeded()
	s.AddExtraDishes([]models.ExtraDish{
		{Name: "Moqueca", Category: "Pratos Principais", Price: 79.90},
	})

	items := s.Items()
	require.Len(t, items, 7)
	assert.Equal(t, "Moqueca", items[6].Name)
	assert.True(t, items[6].Available)
}
