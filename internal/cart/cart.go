package cart

import (
	"github.com/pehchaan/marketplace-demo/internal/catalog"
)

// Line pairs a product with a quantity. The cart holds at most one line per
// product ID; repeated adds merge into the existing line.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is the ordered set of lines, in first-added order.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add merges quantity into an existing line for the product, or appends a
// new line. Quantities below one count as one. No stock clamp here; that is
// a detail-view concern (see SetQuantity).
func (c *Cart) Add(p catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Lines {
		if c.Lines[i].Product.ID == p.ID {
			c.Lines[i].Quantity += quantity
			return
		}
	}

	c.Lines = append(c.Lines, Line{Product: p, Quantity: quantity})
}

// Remove deletes the line for the product. Removing an absent product is a
// no-op, not an error.
func (c *Cart) Remove(productID string) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity of an existing line, clamped to
// [1, stock]. Returns false when the product is not in the cart.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	for i := range c.Lines {
		if c.Lines[i].Product.ID != productID {
			continue
		}

		if quantity < 1 {
			quantity = 1
		}
		if stock := c.Lines[i].Product.Stock; quantity > stock {
			quantity = stock
		}

		c.Lines[i].Quantity = quantity
		return true
	}

	return false
}

// Total is the sum of price x quantity over all lines. Prices are whole
// rupees, so the arithmetic is exact.
func (c Cart) Total() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Product.Price * line.Quantity
	}
	return total
}

// Count is the sum of quantities, shown on the cart badge.
func (c Cart) Count() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) Clear() {
	c.Lines = nil
}

// Clone returns a deep copy. Order snapshots take copies so later cart
// mutation cannot corrupt a placed order.
func (c Cart) Clone() Cart {
	if len(c.Lines) == 0 {
		return Cart{}
	}

	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}
