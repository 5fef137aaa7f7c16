package simulator

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/restaurantx/tableside/internal/models"
)

const (
	topicOrders       = "order_events"
	topicWaiter       = "waiter_events"
	topicPayments     = "payment_events"
	topicReservations = "reservation_events"
)

type baseEvent struct {
	Timestamp   int64  `json:"timestamp"`
	EventType   string `json:"eventType"`
	TableNumber string `json:"tableNumber,omitempty"`
}

type orderEvent struct {
	baseEvent
	OrderID   int     `json:"orderId"`
	Total     float64 `json:"total"`
	Status    string  `json:"status"`
	CanCancel bool    `json:"canCancel"`
}

type waiterEvent struct {
	baseEvent
	RequestType string `json:"requestType"`
	Message     string `json:"message,omitempty"`
}

type paymentEvent struct {
	baseEvent
	ReceiptID string  `json:"receiptId"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Change    float64 `json:"change,omitempty"`
}

type reservationEvent struct {
	baseEvent
	ReservationID string `json:"reservationId"`
	CustomerName  string `json:"customerName"`
	Guests        int    `json:"guests"`
	Status        string `json:"status"`
}

func newBaseEvent(eventType, table string) baseEvent {
	return baseEvent{
		Timestamp:   time.Now().Unix(),
		EventType:   eventType,
		TableNumber: table,
	}
}

func (d *DiningRoom) emitOrder(eventType string, o models.Order) {
	d.emit(topicOrders, orderEvent{
		baseEvent: newBaseEvent(eventType, o.TableNumber),
		OrderID:   o.ID,
		Total:     o.Total.Float(),
		Status:    string(o.Status),
		CanCancel: o.CanCancel,
	})
}

func (d *DiningRoom) emitWaiterCall(call models.WaiterCall) {
	d.emit(topicWaiter, waiterEvent{
		baseEvent:   newBaseEvent("WaiterCalled", call.TableNumber),
		RequestType: call.RequestType,
		Message:     call.Message,
	})
}

func (d *DiningRoom) emitPayment(table string, receipt models.Receipt) {
	d.emit(topicPayments, paymentEvent{
		baseEvent: newBaseEvent("PaymentCompleted", table),
		ReceiptID: receipt.ID,
		Amount:    receipt.Amount.Float(),
		Method:    string(receipt.Method),
		Change:    receipt.Change.Float(),
	})
}

func (d *DiningRoom) emitReservation(r models.Reservation) {
	d.emit(topicReservations, reservationEvent{
		baseEvent:     newBaseEvent("ReservationBooked", r.TableNumber),
		ReservationID: r.ID,
		CustomerName:  r.CustomerName,
		Guests:        r.Guests,
		Status:        string(r.Status),
	})
}

func (d *DiningRoom) emit(topic string, payload interface{}) {
	msg, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to serialize event", "topic", topic, "error", err)
		return
	}
	d.outMu.Lock()
	defer d.outMu.Unlock()
	if d.out == nil {
		return
	}
	if err := d.out.WriteMessage(topic, msg); err != nil {
		slog.Error("failed to write event", "topic", topic, "error", err)
	}
}
