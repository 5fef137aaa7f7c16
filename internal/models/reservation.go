package models

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID            string            `json:"id"`
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	When          time.Time         `json:"when"`
	Guests        int               `json:"guests"`
	TableNumber   string            `json:"table_number"`
	Status        ReservationStatus `json:"status"`
	Notes         string            `json:"notes"`
}
