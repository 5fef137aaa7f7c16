package tab

import "github.com/restaurantx/tableside/internal/models"

// BillFor sums the totals of all non-cancelled orders. It is used the same
// way by the tab view and the payment screen.
func BillFor(orders []models.Order) models.Money {
	var sum models.Money
	for _, o := range orders {
		if o.Status == models.OrderStatusCancelled {
			continue
		}
		sum += o.Total
	}
	return sum
}

// BillSummary is the presentation-layer breakdown of a bill. The service
// fee exists only here, never on an order.
type BillSummary struct {
	Subtotal   models.Money `json:"subtotal"`
	ServiceFee models.Money `json:"service_fee"`
	Total      models.Money `json:"total"`
}

func Summarize(orders []models.Order, serviceFeePct float64) BillSummary {
	subtotal := BillFor(orders)
	fee := subtotal.Percent(serviceFeePct)
	return BillSummary{
		Subtotal:   subtotal,
		ServiceFee: fee,
		Total:      subtotal + fee,
	}
}
