// Package cart aggregates shopping-cart lines. Carts live on the client;
// the server only ever sees one at checkout, so this package is pure state
// arithmetic shared by the checkout service and its tests.
package cart

// Item is one cart line. Identity for deduplication is the
// (ProductID, Size) pair; the same shirt in two sizes is two lines.
type Item struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
}

// Cart is an ordered list of deduplicated lines.
type Cart struct {
	items []Item
}

func (c *Cart) find(productID, size string) int {
	for i, item := range c.items {
		if item.ProductID == productID && item.Size == size {
			return i
		}
	}
	return -1
}

// Add puts one unit of a product into the cart, merging into an existing
// line with the same identity.
func (c *Cart) Add(productID, name string, price float64, size string) {
	if i := c.find(productID, size); i >= 0 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, Item{
		ProductID: productID,
		Name:      name,
		Price:     price,
		Quantity:  1,
		Size:      size,
	})
}

// Remove drops a line entirely.
func (c *Cart) Remove(productID, size string) {
	if i := c.find(productID, size); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (c *Cart) UpdateQuantity(productID, size string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID, size)
		return
	}
	if i := c.find(productID, size); i >= 0 {
		c.items[i].Quantity = quantity
	}
}

// Clear empties the cart.
func (c *Cart) Clear() { c.items = nil }

// Items returns the lines in insertion order.
func (c *Cart) Items() []Item { return c.items }

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// TotalPrice sums price times quantity across all lines.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
