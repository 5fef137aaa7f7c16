package backoffice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restaurantx/tableside/internal/models"
)

func waiter(name string) models.Employee {
	return models.Employee{
		Name:  name,
		Role:  "Garçom",
		Phone: "(11) 99999-0001",
		Email: "carlos@restaurante.com",
		Shift: "Tarde (14h-22h)",
	}
}

func TestEmployeeAddDefaultsToActive(t *testing.T) {
	s := NewEmployeeStore()
	stored := s.Add(waiter("Carlos Silva"))

	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, models.EmployeeStatusActive, stored.Status)
	assert.Len(t, s.Active(), 1)
}

func TestEmployeeUpdateAndRemove(t *testing.T) {
	s := NewEmployeeStore()
	stored := s.Add(waiter("Carlos Silva"))

	stored.Shift = "Noite (18h-02h)"
	require.NoError(t, s.Update(stored))
	got, err := s.Employee(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Noite (18h-02h)", got.Shift)

	require.NoError(t, s.Remove(stored.ID))
	_, err = s.Employee(stored.ID)
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestAddReviewRecomputesRating(t *testing.T) {
	s := NewEmployeeStore()
	stored := s.Add(waiter("Carlos Silva"))
	now := time.Now()

	_, err := s.AddReview(stored.ID, "Mesa 4", 5, "ótimo atendimento", now)
	require.NoError(t, err)
	_, err = s.AddReview(stored.ID, "Mesa 7", 4, "", now)
	require.NoError(t, err)

	got, err := s.Employee(stored.ID)
	require.NoError(t, err)
	assert.Len(t, got.Reviews, 2)
	assert.InDelta(t, 4.5, got.Rating, 1e-9)
}

func TestAddReviewValidatesRating(t *testing.T) {
	s := NewEmployeeStore()
	stored := s.Add(waiter("Carlos Silva"))

	_, err := s.AddReview(stored.ID, "Mesa 4", 0, "", time.Now())
	require.Error(t, err)
	_, err = s.AddReview(stored.ID, "Mesa 4", 6, "", time.Now())
	require.Error(t, err)
	_, err = s.AddReview("missing", "Mesa 4", 3, "", time.Now())
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestFirstByRoleSkipsInactive(t *testing.T) {
	s := NewEmployeeStore()
	first := s.Add(waiter("Carlos Silva"))
	second := s.Add(waiter("Ana Souza"))

	first.Status = models.EmployeeStatusInactive
	require.NoError(t, s.Update(first))

	got, ok := s.FirstByRole("Garçom")
	require.True(t, ok)
	assert.Equal(t, second.ID, got.ID)

	_, ok = s.FirstByRole("Chef")
	assert.False(t, ok)
}
