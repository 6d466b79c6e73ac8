package cartstate

import (
	"github.com/swasthiksuvarna/storefront-api/models"
	"github.com/swasthiksuvarna/storefront-api/notify"
	"github.com/swasthiksuvarna/storefront-api/store"
)

// Controller owns the cart lines for one slot. At most one line exists per
// product id: adding an already-present product raises its quantity instead
// of appending a second row.
//
// Like the task controller, mutations persist the next snapshot before
// replacing the in-memory one.
type Controller struct {
	store    store.Store
	slot     string
	notifier notify.Notifier
	items    []models.CartLine
}

func NewController(st store.Store, slot string, n notify.Notifier) (*Controller, error) {
	c := &Controller{store: st, slot: slot, notifier: n}
	if err := st.Load(slot, &c.items); err != nil {
		return nil, err
	}
	return c, nil
}

// Items returns the current snapshot in insertion order.
func (c *Controller) Items() []models.CartLine {
	return c.items
}

// Add merges by product id. Attributes on an existing row (size, color)
// stay as first added; a repeat add only increases the quantity.
func (c *Controller) Add(line models.CartLine) error {
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	next := append([]models.CartLine(nil), c.items...)
	if i := index(next, line.ProductID); i >= 0 {
		next[i].Quantity += line.Quantity
	} else {
		next = append(next, line)
	}

	if err := c.store.Save(c.slot, next); err != nil {
		return err
	}
	c.items = next

	c.notifier.Notify("Product added to cart", notify.Success)
	return nil
}

// Remove drops the line for the product. Unknown ids are a silent no-op.
func (c *Controller) Remove(productID uint) error {
	i := index(c.items, productID)
	if i < 0 {
		return nil
	}

	next := append(append([]models.CartLine{}, c.items[:i]...), c.items[i+1:]...)
	if err := c.store.Save(c.slot, next); err != nil {
		return err
	}
	c.items = next

	c.notifier.Notify("Product removed from cart", notify.Success)
	return nil
}

// Increase bumps the quantity by one, without an upper bound.
func (c *Controller) Increase(productID uint) error {
	i := index(c.items, productID)
	if i < 0 {
		return nil
	}

	next := append([]models.CartLine(nil), c.items...)
	next[i].Quantity++
	if err := c.store.Save(c.slot, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

// Decrease lowers the quantity by one, clamped at 1. Dropping a line
// requires an explicit Remove.
func (c *Controller) Decrease(productID uint) error {
	i := index(c.items, productID)
	if i < 0 || c.items[i].Quantity <= 1 {
		return nil
	}

	next := append([]models.CartLine(nil), c.items...)
	next[i].Quantity--
	if err := c.store.Save(c.slot, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

// Clear empties the cart.
func (c *Controller) Clear() error {
	if len(c.items) == 0 {
		return nil
	}
	if err := c.store.Save(c.slot, []models.CartLine{}); err != nil {
		return err
	}
	c.items = nil

	c.notifier.Notify("Cart cleared", notify.Success)
	return nil
}

func index(items []models.CartLine, productID uint) int {
	for i, line := range items {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}
