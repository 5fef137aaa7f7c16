package models

import "time"

// OrderStatus is the current position of an order in its lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Terminal reports whether no further transition is defined from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusConfirmed || s == OrderStatusCancelled
}

// Customization is attached per order line, not per dish: the same dish can
// appear twice on a tab with different additions. Additions carry a flat
// surcharge each; removals and notes are free.
type Customization struct {
	Additions []string `json:"additions"`
	Removals  []string `json:"removals"`
	Notes     string   `json:"notes"`
}

// CartLine is a line still in the cart, pointing at a live catalog dish.
type CartLine struct {
	Item          MenuItem      `json:"item"`
	Quantity      int           `json:"quantity"`
	Customization Customization `json:"customization"`
}

// OrderLine is the immutable snapshot of a cart line taken at checkout.
// UnitPrice already includes the addition surcharge and is never recomputed
// from the catalog.
type OrderLine struct {
	ItemName      string        `json:"item_name"`
	Quantity      int           `json:"quantity"`
	UnitPrice     Money         `json:"unit_price"`
	Customization Customization `json:"customization"`
}

func (l OrderLine) Subtotal() Money {
	return l.UnitPrice * Money(l.Quantity)
}

type Order struct {
	ID          int         `json:"id"`
	TableNumber string      `json:"table_number"`
	Lines       []OrderLine `json:"lines"`
	Total       Money       `json:"total"`
	Status      OrderStatus `json:"status"`
	PlacedAt    time.Time   `json:"placed_at"`
	CanCancel   bool        `json:"can_cancel"`
}
