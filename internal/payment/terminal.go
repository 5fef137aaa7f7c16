// Package payment simulates the settlement step. The terminal waits a fixed
// processing delay and hands back a receipt; it never reaches into order
// state, so there is no paid status anywhere.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/restaurantx/tableside/internal/models"
)

const DefaultProcessingDelay = 2 * time.Second

var (
	ErrNothingToPay     = errors.New("nothing to pay")
	ErrInsufficientCash = errors.New("cash tendered is below the amount due")
	ErrUnknownMethod    = errors.New("unknown payment method")
)

type Terminal struct {
	delay time.Duration
	now   func() time.Time
}

func NewTerminal(delay time.Duration) *Terminal {
	return &Terminal{delay: delay, now: time.Now}
}

// Charge settles a bill with a non-cash method.
func (t *Terminal) Charge(ctx context.Context, tabID string, amount models.Money, method models.PaymentMethod) (models.Receipt, error) {
	if method == models.PaymentMethodCash {
		return models.Receipt{}, fmt.Errorf("cash payments go through ChargeCash: %w", ErrUnknownMethod)
	}
	return t.settle(ctx, tabID, amount, method, 0)
}

// ChargeCash settles a bill in cash and computes the change.
func (t *Terminal) ChargeCash(ctx context.Context, tabID string, amount, tendered models.Money) (models.Receipt, error) {
	if amount > 0 && tendered < amount {
		return models.Receipt{}, ErrInsufficientCash
	}
	return t.settle(ctx, tabID, amount, models.PaymentMethodCash, tendered)
}

func (t *Terminal) settle(ctx context.Context, tabID string, amount models.Money, method models.PaymentMethod, tendered models.Money) (models.Receipt, error) {
	if amount <= 0 {
		return models.Receipt{}, ErrNothingToPay
	}
	switch method {
	case models.PaymentMethodCredit, models.PaymentMethodDebit, models.PaymentMethodPix, models.PaymentMethodCash:
	default:
		return models.Receipt{}, fmt.Errorf("%q: %w", method, ErrUnknownMethod)
	}

	if t.delay > 0 {
		select {
		case <-time.After(t.delay):
		case <-ctx.Done():
			return models.Receipt{}, ctx.Err()
		}
	}

	receipt := models.Receipt{
		ID:     uuid.NewString(),
		TabID:  tabID,
		Amount: amount,
		Method: method,
		PaidAt: t.now(),
	}
	if method == models.PaymentMethodCash {
		receipt.CashTendered = tendered
		receipt.Change = tendered - amount
	}
	return receipt, nil
}
