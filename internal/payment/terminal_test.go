package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restaurantx/tableside/internal/models"
)

func TestChargeReturnsReceipt(t *testing.T) {
	term := NewTerminal(0)

	receipt, err := term.Charge(context.Background(), "MESA-7", models.NewMoneyFromFloat(99.00), models.PaymentMethodPix)
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, "MESA-7", receipt.TabID)
	assert.Equal(t, models.NewMoneyFromFloat(99.00), receipt.Amount)
	assert.Equal(t, models.PaymentMethodPix, receipt.Method)
	assert.False(t, receipt.PaidAt.IsZero())
}

func TestChargeNothingToPay(t *testing.T) {
	term := NewTerminal(0)
	_, err := term.Charge(context.Background(), "MESA-7", 0, models.PaymentMethodCredit)
	require.ErrorIs(t, err, ErrNothingToPay)
}

func TestChargeRejectsCashMethod(t *testing.T) {
	term := NewTerminal(0)
	_, err := term.Charge(context.Background(), "MESA-7", models.NewMoneyFromFloat(10.00), models.PaymentMethodCash)
	require.ErrorIs(t, err, ErrUnknownMethod)
}

func TestChargeRejectsUnknownMethod(t *testing.T) {
	term := NewTerminal(0)
	_, err := term.Charge(context.Background(), "MESA-7", models.NewMoneyFromFloat(10.00), models.PaymentMethod("cheque"))
	require.ErrorIs(t, err, ErrUnknownMethod)
}

func TestChargeCashComputesChange(t *testing.T) {
	term := NewTerminal(0)

	receipt, err := term.ChargeCash(context.Background(), "MESA-2", models.NewMoneyFromFloat(87.50), models.NewMoneyFromFloat(100.00))
	require.NoError(t, err)
	assert.Equal(t, models.NewMoneyFromFloat(12.50), receipt.Change)
	assert.Equal(t, models.NewMoneyFromFloat(100.00), receipt.CashTendered)
}

func TestChargeCashInsufficient(t *testing.T) {
	term := NewTerminal(0)
	_, err := term.ChargeCash(context.Background(), "MESA-2", models.NewMoneyFromFloat(87.50), models.NewMoneyFromFloat(50.00))
	require.ErrorIs(t, err, ErrInsufficientCash)
}

func TestChargeHonoursContextDuringDelay(t *testing.T) {
	term := NewTerminal(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := term.Charge(ctx, "MESA-2", models.NewMoneyFromFloat(10.00), models.PaymentMethodDebit)
	require.ErrorIs(t, err, context.Canceled)
}
