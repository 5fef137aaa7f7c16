package models

import (
	"fmt"
	"math"
)

// Money represents currency in minor units (cents) to avoid float drift
// when summing bills. Config values and display use decimal amounts.
type Money int64

// NewMoneyFromFloat creates Money from a decimal amount, rounding to the
// nearest cent.
func NewMoneyFromFloat(f float64) Money {
	return Money(math.Round(f * 100.0))
}

func (m Money) Float() float64 { return float64(m) / 100.0 }

// Percent returns p (a fraction, e.g. 0.10) of m, rounded to the nearest cent.
func (m Money) Percent(p float64) Money {
	return Money(math.Round(float64(m) * p))
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Float())
}
