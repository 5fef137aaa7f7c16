package models

import "time"

type PaymentMethod string

const (
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodDebit  PaymentMethod = "debit"
	PaymentMethodPix    PaymentMethod = "pix"
	PaymentMethodCash   PaymentMethod = "cash"
)

// Receipt is what the simulated terminal hands back. Payment never touches
// order state: there is no paid status on an order.
type Receipt struct {
	ID           string        `json:"id"`
	TabID        string        `json:"tab_id"`
	Amount       Money         `json:"amount"`
	Method       PaymentMethod `json:"method"`
	CashTendered Money         `json:"cash_tendered,omitempty"`
	Change       Money         `json:"change,omitempty"`
	PaidAt       time.Time     `json:"paid_at"`
}
