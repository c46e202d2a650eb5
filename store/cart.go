package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dapizza/storefront/models"
)

// CartAggregator holds the selected-item lines and the drawer
// visibility flag, and computes derived totals. At most one line
// exists per menu item id; re-adding merges into the existing line.
//
// Like the catalog, mutations referencing an unknown line are silent
// no-ops.
type CartAggregator struct {
	mu     sync.Mutex
	isOpen bool
	lines  []models.CartLine
}

func NewCartAggregator() *CartAggregator {
	return &CartAggregator{}
}

// AddItem merges the item into the cart. An existing line for the same
// id gets quantity+1 with its name/price snapshot untouched; otherwise
// a new line is appended with quantity 1, snapshotting id, name and
// price from the given item.
func (ca *CartAggregator) AddItem(item models.MenuItem) {
	ca.mu.Lock()
	defer ca.mu.Unlock()

	for i := range ca.lines {
		if ca.lines[i].PizzaID == item.ID {
			ca.lines[i].Quantity++
			return
		}
	}
	ca.lines = append(ca.lines, models.CartLine{
		PizzaID:   item.ID,
		PizzaName: item.Name,
		Price:     item.Price,
		Quantity:  1,
	})
}

// RemoveItem deletes the line for the given id, if present. This is
// the only way a line leaves the cart; quantity updates never delete.
func (ca *CartAggregator) RemoveItem(pizzaID string) {
	ca.mu.Lock()
	defer ca.mu.Unlock()

	for i := range ca.lines {
		if ca.lines[i].PizzaID == pizzaID {
			ca.lines = append(ca.lines[:i], ca.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to max(1, quantity). Values
// below one are clamped up, never removing the line.
func (ca *CartAggregator) UpdateQuantity(pizzaID string, quantity int) {
	ca.mu.Lock()
	defer ca.mu.Unlock()
	ca.setQuantity(pizzaID, quantity)
}

// AdjustQuantity applies a signed delta (+1/-1 from the drawer
// controls) to the current quantity before clamping, under a single
// lock so the read-modify-write cannot interleave.
func (ca *CartAggregator) AdjustQuantity(pizzaID string, delta int) {
	ca.mu.Lock()
	defer ca.mu.Unlock()

	for _, line := range ca.lines {
		if line.PizzaID == pizzaID {
			ca.setQuantity(pizzaID, line.Quantity+delta)
			return
		}
	}
}

func (ca *CartAggregator) setQuantity(pizzaID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range ca.lines {
		if ca.lines[i].PizzaID == pizzaID {
			ca.lines[i].Quantity = quantity
			return
		}
	}
}

// TotalItems sums the quantities across all lines. 0 for an empty cart.
func (ca *CartAggregator) TotalItems() int {
	ca.mu.Lock()
	defer ca.mu.Unlock()

	total := 0
	for _, line := range ca.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums price*quantity across all lines using decimal
// arithmetic, so currency amounts never drift. 0 for an empty cart.
func (ca *CartAggregator) TotalPrice() decimal.Decimal {
	ca.mu.Lock()
	defer ca.mu.Unlock()

	total := decimal.Zero
	for _, line := range ca.lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// ToggleOpen flips the drawer visibility flag.
func (ca *CartAggregator) ToggleOpen() {
	ca.mu.Lock()
	defer ca.mu.Unlock()
	ca.isOpen = !ca.isOpen
}

// Close marks the drawer closed. Idempotent, and never touches the
// line list.
func (ca *CartAggregator) Close() {
	ca.mu.Lock()
	defer ca.mu.Unlock()
	ca.isOpen = false
}

// Clear empties the line list. The visibility flag is left alone.
func (ca *CartAggregator) Clear() {
	ca.mu.Lock()
	defer ca.mu.Unlock()
	ca.lines = nil
}

// State returns a renderable snapshot: the visibility flag plus a copy
// of the line list.
func (ca *CartAggregator) State() models.CartState {
	ca.mu.Lock()
	defer ca.mu.Unlock()

	lines := make([]models.CartLine, len(ca.lines))
	copy(lines, ca.lines)
	return models.CartState{IsOpen: ca.isOpen, Lines: lines}
}
