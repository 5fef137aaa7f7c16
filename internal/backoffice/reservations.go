package backoffice

import (
	"sync"

	"github.com/lucsky/cuid"

	"github.com/restaurantx/tableside/internal/models"
)

type ReservationBook struct {
	mu           sync.Mutex
	reservations []*models.Reservation
}

func NewReservationBook() *ReservationBook {
	return &ReservationBook{}
}

func (b *ReservationBook) Add(r models.Reservation) models.Reservation {
	b.mu.Lock()
	defer b.mu.Unlock()
	if r.ID == "" {
		r.ID = cuid.New()
	}
	if r.Status == "" {
		r.Status = models.ReservationStatusPending
	}
	stored := r
	b.reservations = append(b.reservations, &stored)
	return stored
}

func (b *ReservationBook) Update(r models.Reservation) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, res := range b.reservations {
		if res.ID == r.ID {
			stored := r
			b.reservations[i] = &stored
			return nil
		}
	}
	return ErrReservationNotFound
}

func (b *ReservationBook) SetStatus(id string, status models.ReservationStatus) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, res := range b.reservations {
		if res.ID == id {
			res.Status = status
			return nil
		}
	}
	return ErrReservationNotFound
}

func (b *ReservationBook) Confirm(id string) error {
	return b.SetStatus(id, models.ReservationStatusConfirmed)
}

func (b *ReservationBook) Cancel(id string) error {
	return b.SetStatus(id, models.ReservationStatusCancelled)
}

func (b *ReservationBook) Remove(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, res := range b.reservations {
		if res.ID == id {
			b.reservations = append(b.reservations[:i], b.reservations[i+1:]...)
			return nil
		}
	}
	return ErrReservationNotFound
}

func (b *ReservationBook) Reservation(id string) (models.Reservation, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, res := range b.reservations {
		if res.ID == id {
			return *res, nil
		}
	}
	return models.Reservation{}, ErrReservationNotFound
}

func (b *ReservationBook) Reservations() []models.Reservation {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Reservation, 0, len(b.reservations))
	for _, res := range b.reservations {
		out = append(out, *res)
	}
	return out
}
