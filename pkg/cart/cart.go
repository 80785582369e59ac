// Package cart holds the ordered list of pizza names pending payment.
package cart

import "sync"

// Cart is an ordered list of item names. The zero value is an empty cart
// ready for use.
type Cart struct {
	mu    sync.Mutex
	items []string
}

func New() *Cart {
	return &Cart{}
}

// Add appends name to the cart.
func (c *Cart) Add(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, name)
}

// Remove deletes the first occurrence of name and reports whether it was present.
func (c *Cart) Remove(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item == name {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// View returns a snapshot of the cart contents.
func (c *Cart) View() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Settle calls fn with a snapshot of the cart while holding the cart lock and
// empties the cart only if fn returns nil.
func (c *Cart) Settle(fn func(items []string) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := fn(c.snapshot()); err != nil {
		return err
	}
	c.items = nil
	return nil
}

func (c *Cart) snapshot() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}
