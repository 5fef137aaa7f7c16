// Package tab owns a table's running account: the cart being built, the
// orders placed from it, and the bill. An order starts out pending and may
// be cancelled by the guest until the confirmation window elapses, at which
// point it locks. Orders are never deleted, only marked cancelled.
package tab

import (
	"fmt"
	"sync"
	"time"

	"github.com/restaurantx/tableside/internal/models"
)

type Tab struct {
	mu     sync.Mutex
	cfg    *models.Config
	table  string
	cart   *Cart
	seq    *Sequence
	orders []*models.Order
	timers map[int]*time.Timer

	now         func() time.Time
	onConfirmed func(models.Order)
}

// New opens a tab for a table. The sequence is shared across tabs so order
// numbers stay unique for the session.
func New(table string, cfg *models.Config, seq *Sequence) *Tab {
	return &Tab{
		cfg:    cfg,
		table:  table,
		cart:   NewCart(),
		seq:    seq,
		timers: make(map[int]*time.Timer),
		now:    time.Now,
	}
}

func (t *Tab) Table() string { return t.table }

func (t *Tab) Cart() *Cart { return t.cart }

// SetConfirmListener registers a callback invoked after an order
// auto-confirms. Set it before placing orders.
func (t *Tab) SetConfirmListener(fn func(models.Order)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onConfirmed = fn
}

// Checkout snapshots the cart into a new pending order, prices each line at
// its current catalog price plus the per-addition surcharge, and arms the
// confirmation timer. The cart is cleared as part of the same step: either
// the order exists and the cart is empty, or neither changed.
func (t *Tab) Checkout() (models.Order, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := t.cart.drain()
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	surcharge := t.cfg.Surcharge()
	order := &models.Order{
		ID:          t.seq.Next(),
		TableNumber: t.table,
		Lines:       make([]models.OrderLine, 0, len(lines)),
		Status:      models.OrderStatusPending,
		PlacedAt:    t.now(),
		CanCancel:   true,
	}
	for _, l := range lines {
		line := priceLine(l, surcharge)
		order.Lines = append(order.Lines, line)
		order.Total += line.Subtotal()
	}
	t.orders = append(t.orders, order)

	id := order.ID
	t.timers[id] = time.AfterFunc(t.cfg.ConfirmationWindow, func() {
		t.confirm(id)
	})

	return cloneOrder(order), nil
}

// Cancel moves a pending order to cancelled. Once an order has confirmed
// (or was already cancelled) it reports ErrCancellationNotAllowed and
// leaves the order untouched.
func (t *Tab) Cancel(orderID int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	order := t.find(orderID)
	if order == nil {
		return fmt.Errorf("order %d: %w", orderID, ErrOrderNotFound)
	}
	if order.Status != models.OrderStatusPending {
		return fmt.Errorf("order %d is %s: %w", orderID, order.Status, ErrCancellationNotAllowed)
	}

	order.Status = models.OrderStatusCancelled
	order.CanCancel = false

	// Stopping the timer is only an optimization; the status guard in
	// confirm is what keeps a late firing harmless.
	if timer, ok := t.timers[orderID]; ok {
		timer.Stop()
		delete(t.timers, orderID)
	}
	return nil
}

// confirm is the timer-driven transition. It fires once per order and does
// nothing if the order already left pending, so a cancel that won the race
// is never overwritten.
func (t *Tab) confirm(orderID int) {
	t.mu.Lock()
	order := t.find(orderID)
	if order == nil || order.Status != models.OrderStatusPending {
		t.mu.Unlock()
		return
	}
	order.Status = models.OrderStatusConfirmed
	order.CanCancel = false
	delete(t.timers, orderID)

	callback := t.onConfirmed
	snapshot := cloneOrder(order)
	t.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

// Order returns a copy of one order.
func (t *Tab) Order(orderID int) (models.Order, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	order := t.find(orderID)
	if order == nil {
		return models.Order{}, fmt.Errorf("order %d: %w", orderID, ErrOrderNotFound)
	}
	return cloneOrder(order), nil
}

// Orders returns copies of every order in placement order, cancelled ones
// included.
func (t *Tab) Orders() []models.Order {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]models.Order, 0, len(t.orders))
	for _, o := range t.orders {
		out = append(out, cloneOrder(o))
	}
	return out
}

// OpenCount is the number of non-cancelled orders, shown as the tab badge.
func (t *Tab) OpenCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, o := range t.orders {
		if o.Status != models.OrderStatusCancelled {
			n++
		}
	}
	return n
}

// Bill is the raw sum of non-cancelled order totals, before service fee.
func (t *Tab) Bill() models.Money {
	return BillFor(t.Orders())
}

// Summary is the bill plus the service fee applied at display time.
func (t *Tab) Summary() BillSummary {
	return Summarize(t.Orders(), t.cfg.ServiceFeePercentage)
}

func (t *Tab) find(orderID int) *models.Order {
	for _, o := range t.orders {
		if o.ID == orderID {
			return o
		}
	}
	return nil
}

func priceLine(l models.CartLine, surcharge models.Money) models.OrderLine {
	unit := l.Item.Price + surcharge*models.Money(len(l.Customization.Additions))
	return models.OrderLine{
		ItemName:      l.Item.Name,
		Quantity:      l.Quantity,
		UnitPrice:     unit,
		Customization: cloneCustomization(l.Customization),
	}
}

func cloneOrder(o *models.Order) models.Order {
	out := *o
	out.Lines = make([]models.OrderLine, len(o.Lines))
	for i, l := range o.Lines {
		l.Customization = cloneCustomization(l.Customization)
		out.Lines[i] = l
	}
	return out
}

func cloneCustomization(c models.Customization) models.Customization {
	out := c
	if c.Additions != nil {
		out.Additions = append([]string(nil), c.Additions...)
	}
	if c.Removals != nil {
		out.Removals = append([]string(nil), c.Removals...)
	}
	return out
}
