package backoffice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restaurantx/tableside/internal/models"
)

func reservation(name string) models.Reservation {
	return models.Reservation{
		CustomerName:  name,
		CustomerPhone: "(11) 98888-7777",
		When:          time.Now().Add(48 * time.Hour),
		Guests:        2,
		TableNumber:   "5",
	}
}

func TestReservationAddDefaultsToPending(t *testing.T) {
	b := NewReservationBook()
	stored := b.Add(reservation("Maria"))

	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, models.ReservationStatusPending, stored.Status)
}

func TestReservationStatusTransitions(t *testing.T) {
	b := NewReservationBook()
	stored := b.Add(reservation("Maria"))

	require.NoError(t, b.Confirm(stored.ID))
	got, err := b.Reservation(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, got.Status)

	require.NoError(t, b.Cancel(stored.ID))
	got, err = b.Reservation(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCancelled, got.Status)

	require.ErrorIs(t, b.Confirm("missing"), ErrReservationNotFound)
}

func TestReservationUpdateAndRemove(t *testing.T) {
	b := NewReservationBook()
	stored := b.Add(reservation("Maria"))

	stored.Guests = 4
	require.NoError(t, b.Update(stored))
	got, err := b.Reservation(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Guests)

	require.NoError(t, b.Remove(stored.ID))
	_, err = b.Reservation(stored.ID)
	require.ErrorIs(t, err, ErrReservationNotFound)
	assert.Empty(t, b.Reservations())
}
