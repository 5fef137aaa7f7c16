package tab

import (
	"fmt"
	"sync"

	"github.com/restaurantx/tableside/internal/models"
)

// Cart accumulates lines before checkout. It upholds the line contract
// (positive quantity, available dish) so the order book only ever receives
// well-formed lines.
type Cart struct {
	mu    sync.Mutex
	lines []models.CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) AddLine(item models.MenuItem, quantity int, customization models.Customization) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if !item.Available {
		return fmt.Errorf("%s is not available", item.Name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, models.CartLine{
		Item:          item,
		Quantity:      quantity,
		Customization: customization,
	})
	return nil
}

// Lines returns a copy of the accumulated lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// ItemCount is the sum of quantities across lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Total prices the cart as checkout would, for the running footer display.
func (c *Cart) Total(surcharge models.Money) models.Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total models.Money
	for _, l := range c.lines {
		unit := l.Item.Price + surcharge*models.Money(len(l.Customization.Additions))
		total += unit * models.Money(l.Quantity)
	}
	return total
}

// drain takes every line out of the cart in one step, so checkout sees a
// snapshot and clears the cart atomically.
func (c *Cart) drain() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := c.lines
	c.lines = nil
	return lines
}
