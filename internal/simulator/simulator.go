// Package simulator drives a demo dining session: guests arrive at tables,
// build carts from the catalog, place and sometimes cancel orders inside
// the confirmation window, call waiters, and settle their bills at closing
// time. Every lifecycle event is emitted as JSON to the configured output.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/restaurantx/tableside/internal/backoffice"
	"github.com/restaurantx/tableside/internal/catalog"
	"github.com/restaurantx/tableside/internal/factories"
	"github.com/restaurantx/tableside/internal/models"
	"github.com/restaurantx/tableside/internal/payment"
	"github.com/restaurantx/tableside/internal/tab"
)

type DiningRoom struct {
	Config       *models.Config
	Catalog      *catalog.Store
	Employees    *backoffice.EmployeeStore
	Reservations *backoffice.ReservationBook
	Calls        *backoffice.CallLog
	Terminal     *payment.Terminal
	Tabs         map[string]*tab.Tab
	Seq          *tab.Sequence
	Rng          *rand.Rand
	EventQueue   *models.EventQueue

	out   OutputDestination
	outMu sync.Mutex
}

// cancelAttempt schedules a guest trying to cancel an order; the attempt
// may land after the window on purpose.
type cancelAttempt struct {
	table   string
	orderID int
}

func New(cfg *models.Config) *DiningRoom {
	seed := int64(cfg.Seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DiningRoom{
		Config:       cfg,
		Catalog:      catalog.Seeded(),
		Employees:    backoffice.NewEmployeeStore(),
		Reservations: backoffice.NewReservationBook(),
		Calls:        backoffice.NewCallLog(),
		Terminal:     payment.NewTerminal(payment.DefaultProcessingDelay),
		Tabs:         make(map[string]*tab.Tab),
		Seq:          tab.NewSequence(),
		Rng:          rand.New(rand.NewSource(seed)),
		EventQueue:   models.NewEventQueue(),
	}
}

func (d *DiningRoom) Run() error {
	out, err := d.determineOutputDestination()
	if err != nil {
		return err
	}
	d.out = out
	defer d.closeOutput()

	d.seedData()
	slog.Info("dining session starts",
		"tables", d.Config.TableCount,
		"duration", d.Config.SessionDuration.String(),
		"confirmation_window", d.Config.ConfirmationWindow.String())

	bar := progressbar.Default(int64(d.Config.SessionDuration/time.Second), "dining session")
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	end := time.Now().Add(d.Config.SessionDuration)
	for time.Now().Before(end) {
		<-ticker.C
		d.processDueEvents()
		d.maybeSeatGuests()
		_ = bar.Add(1)
	}
	d.processDueEvents()
	d.settleAllBills()
	_ = bar.Finish()

	orders, revenue := d.sessionTotals()
	slog.Info("dining session complete", "orders", orders, "revenue", revenue.String())
	return nil
}

func (d *DiningRoom) seedData() {
	d.Catalog.AddExtraDishes(d.Config.ExtraDishes)

	specials := &factories.SpecialFactory{}
	for i := 0; i < d.Rng.Intn(3)+2; i++ {
		d.Catalog.Add(specials.CreateSpecial())
	}

	staff := &factories.EmployeeFactory{}
	d.Employees.Add(models.Employee{
		Name:  "Carlos Silva",
		Role:  "Garçom",
		Phone: "(11) 99999-0001",
		Email: "carlos@restaurante.com",
		Shift: "Tarde (14h-22h)",
	})
	for i := 0; i < 4; i++ {
		d.Employees.Add(staff.CreateEmployee())
	}

	bookings := &factories.ReservationFactory{}
	for i := 0; i < d.Rng.Intn(4)+3; i++ {
		r := d.Reservations.Add(bookings.CreateReservation(d.Config.TableCount, time.Now()))
		if d.Rng.Float64() < 0.5 {
			_ = d.Reservations.Confirm(r.ID)
			r.Status = models.ReservationStatusConfirmed
		}
		d.emitReservation(r)
	}
}

func (d *DiningRoom) processDueEvents() {
	for {
		next := d.EventQueue.Peek()
		if next == nil || next.Time.After(time.Now()) {
			break
		}
		event := d.EventQueue.Dequeue()
		if event != nil {
			d.processEvent(event)
		}
	}
}

func (d *DiningRoom) processEvent(event *models.Event) {
	switch event.Type {
	case models.EventGuestArrives:
		d.handleGuestArrives(event.Data.(models.Guest))
	case models.EventBuildCart:
		d.handleBuildCart(event.Data.(models.Guest))
	case models.EventPlaceOrder:
		d.handlePlaceOrder(event.Data.(models.Guest))
	case models.EventCancelOrder:
		d.handleCancelOrder(event.Data.(cancelAttempt))
	case models.EventCallWaiter:
		d.handleCallWaiter(event.Data.(models.Guest))
	}
}

func (d *DiningRoom) maybeSeatGuests() {
	if d.Rng.Float64() >= d.Config.GuestArrivalRate {
		return
	}
	table := fmt.Sprintf("%d", d.Rng.Intn(d.Config.TableCount)+1)
	guests := &factories.GuestFactory{}
	d.EventQueue.Enqueue(&models.Event{
		Time: time.Now(),
		Type: models.EventGuestArrives,
		Data: guests.CreateGuest(table),
	})
}

func (d *DiningRoom) handleGuestArrives(guest models.Guest) {
	d.tabFor(guest.TableNumber)
	slog.Debug("guest seated", "guest", guest.Name, "table", guest.TableNumber)
	d.scheduleAfter(d.secondsBetween(1, 3), models.EventBuildCart, guest)
}

func (d *DiningRoom) handleBuildCart(guest models.Guest) {
	dishes := d.Catalog.Available()
	if len(dishes) == 0 {
		return
	}
	t := d.tabFor(guest.TableNumber)
	lineCount := d.Rng.Intn(3) + 1
	for i := 0; i < lineCount; i++ {
		dish := dishes[d.Rng.Intn(len(dishes))]
		if err := t.Cart().AddLine(dish, d.Rng.Intn(2)+1, d.randomCustomization()); err != nil {
			slog.Debug("line rejected", "dish", dish.Name, "error", err)
		}
	}
	d.scheduleAfter(d.secondsBetween(1, 2), models.EventPlaceOrder, guest)
}

func (d *DiningRoom) handlePlaceOrder(guest models.Guest) {
	t := d.tabFor(guest.TableNumber)
	order, err := t.Checkout()
	if err != nil {
		if !errors.Is(err, tab.ErrEmptyCart) {
			slog.Warn("checkout failed", "table", guest.TableNumber, "error", err)
		}
		return
	}
	d.emitOrder("OrderPlaced", order)

	if d.Rng.Float64() < d.Config.CancelProbability {
		// Some attempts deliberately land after the window to exercise
		// the locked path.
		delay := time.Duration(d.Rng.Int63n(int64(d.Config.ConfirmationWindow * 3 / 2)))
		d.EventQueue.Enqueue(&models.Event{
			Time: time.Now().Add(delay),
			Type: models.EventCancelOrder,
			Data: cancelAttempt{table: guest.TableNumber, orderID: order.ID},
		})
	}
	if d.Rng.Float64() < d.Config.WaiterCallRate {
		d.scheduleAfter(d.secondsBetween(2, 8), models.EventCallWaiter, guest)
	}
}

func (d *DiningRoom) handleCancelOrder(attempt cancelAttempt) {
	t := d.tabFor(attempt.table)
	err := t.Cancel(attempt.orderID)
	switch {
	case err == nil:
		order, _ := t.Order(attempt.orderID)
		d.emitOrder("OrderCancelled", order)
	case errors.Is(err, tab.ErrCancellationNotAllowed):
		order, _ := t.Order(attempt.orderID)
		d.emitOrder("OrderCancelRejected", order)
	default:
		slog.Warn("cancel failed", "table", attempt.table, "order", attempt.orderID, "error", err)
	}
}

func (d *DiningRoom) handleCallWaiter(guest models.Guest) {
	keys := make([]string, 0, len(models.QuickRequests))
	for k := range models.QuickRequests {
		keys = append(keys, k)
	}
	call, err := d.Calls.QuickCall(guest.TableNumber, keys[d.Rng.Intn(len(keys))], time.Now())
	if err != nil {
		slog.Warn("waiter call failed", "table", guest.TableNumber, "error", err)
		return
	}
	d.emitWaiterCall(call)
}

func (d *DiningRoom) settleAllBills() {
	var wg sync.WaitGroup
	for table, t := range d.Tabs {
		summary := t.Summary()
		if summary.Subtotal == 0 {
			continue
		}
		method := d.randomMethod()
		wg.Add(1)
		go func(table string, summary tab.BillSummary, method models.PaymentMethod) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			tabID := "MESA-" + table
			var receipt models.Receipt
			var err error
			if method == models.PaymentMethodCash {
				tendered := roundUpToTen(summary.Total)
				receipt, err = d.Terminal.ChargeCash(ctx, tabID, summary.Total, tendered)
			} else {
				receipt, err = d.Terminal.Charge(ctx, tabID, summary.Total, method)
			}
			if err != nil {
				slog.Warn("payment failed", "table", table, "error", err)
				return
			}
			d.emitPayment(table, receipt)
		}(table, summary, method)
	}
	wg.Wait()
}

func (d *DiningRoom) tabFor(table string) *tab.Tab {
	if t, ok := d.Tabs[table]; ok {
		return t
	}
	t := tab.New(table, d.Config, d.Seq)
	t.SetConfirmListener(func(o models.Order) {
		d.emitOrder("OrderConfirmed", o)
	})
	d.Tabs[table] = t
	return t
}

func (d *DiningRoom) randomCustomization() models.Customization {
	var c models.Customization
	if d.Rng.Float64() < 0.5 {
		n := d.Rng.Intn(2) + 1
		for i := 0; i < n; i++ {
			c.Additions = append(c.Additions, catalog.Additions[d.Rng.Intn(len(catalog.Additions))])
		}
	}
	if d.Rng.Float64() < 0.3 {
		c.Removals = append(c.Removals, catalog.Removals[d.Rng.Intn(len(catalog.Removals))])
	}
	return c
}

func (d *DiningRoom) randomMethod() models.PaymentMethod {
	methods := []models.PaymentMethod{
		models.PaymentMethodCredit,
		models.PaymentMethodDebit,
		models.PaymentMethodPix,
		models.PaymentMethodCash,
	}
	return methods[d.Rng.Intn(len(methods))]
}

func (d *DiningRoom) scheduleAfter(delay time.Duration, eventType string, guest models.Guest) {
	d.EventQueue.Enqueue(&models.Event{
		Time: time.Now().Add(delay),
		Type: eventType,
		Data: guest,
	})
}

func (d *DiningRoom) secondsBetween(min, max int) time.Duration {
	return time.Duration(d.Rng.Intn(max-min+1)+min) * time.Second
}

func (d *DiningRoom) sessionTotals() (int, models.Money) {
	count := 0
	var revenue models.Money
	for _, t := range d.Tabs {
		orders := t.Orders()
		count += len(orders)
		revenue += tab.BillFor(orders)
	}
	return count, revenue
}

func (d *DiningRoom) closeOutput() {
	d.outMu.Lock()
	defer d.outMu.Unlock()
	if closer, ok := d.out.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("failed to close output", "error", err)
		}
	}
	d.out = nil
}

func roundUpToTen(m models.Money) models.Money {
	const ten = models.Money(1000)
	if m%ten == 0 {
		return m
	}
	return (m/ten + 1) * ten
}
