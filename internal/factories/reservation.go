package factories

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lucsky/cuid"

	"github.com/restaurantx/tableside/internal/models"
)

type ReservationFactory struct{}

func (rf *ReservationFactory) CreateReservation(tableCount int, from time.Time) models.Reservation {
	return models.Reservation{
		ID:            cuid.New(),
		CustomerName:  fake.Person().Name(),
		CustomerPhone: fake.Phone().Number(),
		When:          from.Add(time.Duration(fake.IntBetween(1, 72)) * time.Hour),
		Guests:        fake.IntBetween(1, 8),
		TableNumber:   fmt.Sprintf("%d", rand.Intn(tableCount)+1),
		Status:        models.ReservationStatusPending,
	}
}
