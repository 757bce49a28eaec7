package cart

import (
	"github.com/google/uuid"
)

// Line is a cart entry holding a price snapshot taken when the product
// was added; later catalog price changes do not touch it.
type Line struct {
	ProductID   uuid.UUID
	ProductName string
	SellerEmail string
	Price       float64
	Quantity    int
}

// Cart is plain in-memory session state. It is not safe for concurrent
// use; Store serializes access.
type Cart struct {
	lines []Line
}

// Add appends the line, or bumps the quantity when the product is
// already in the cart. Quantities below one count as one.
func (c *Cart) Add(line Line) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == line.ProductID {
			c.lines[i].Quantity += line.Quantity
			return
		}
	}
	c.lines = append(c.lines, line)
}

// UpdateQuantity sets the line quantity; zero or negative removes the line.
// Returns false when the product is not in the cart.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) bool {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			if quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				c.lines[i].Quantity = quantity
			}
			return true
		}
	}
	return false
}

func (c *Cart) Remove(productID uuid.UUID) bool {
	return c.UpdateQuantity(productID, 0)
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy so callers cannot mutate cart state behind the lock.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the sum over lines of snapshot price times quantity.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}
