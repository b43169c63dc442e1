package cart

import "testing"

func TestAddDeduplicatesByProductAndSize(t *testing.T) {
	var c Cart
	c.Add("p1", "Scarf", 10, "")
	c.Add("p1", "Scarf", 10, "")
	c.Add("p1", "Shirt", 25, "M")
	c.Add("p1", "Shirt", 25, "L")

	items := c.Items()
	if len(items) != 3 {
		t.Fatalf("got %d lines, want 3", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("same product+size should merge: quantity = %d, want 2", items[0].Quantity)
	}
	if items[1].Quantity != 1 || items[2].Quantity != 1 {
		t.Errorf("different sizes must stay separate lines: %+v", items[1:])
	}
}

func TestUpdateQuantity(t *testing.T) {
	var c Cart
	c.Add("p1", "Scarf", 10, "")
	c.Add("p2", "Badge", 2, "")

	c.UpdateQuantity("p1", "", 5)
	if c.Items()[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", c.Items()[0].Quantity)
	}

	// Zero or negative removes the line.
	c.UpdateQuantity("p2", "", 0)
	if len(c.Items()) != 1 {
		t.Errorf("zero quantity should remove the line, got %+v", c.Items())
	}

	// Updating an absent line is a no-op.
	c.UpdateQuantity("missing", "", 3)
	if len(c.Items()) != 1 {
		t.Errorf("updating a missing line must not add one")
	}
}

func TestRemoveAndClear(t *testing.T) {
	var c Cart
	c.Add("p1", "Scarf", 10, "")
	c.Add("p2", "Shirt", 25, "M")

	c.Remove("p2", "L") // wrong size, no-op
	if len(c.Items()) != 2 {
		t.Fatalf("remove with wrong size must not match")
	}

	c.Remove("p2", "M")
	if len(c.Items()) != 1 {
		t.Fatalf("remove failed: %+v", c.Items())
	}

	c.Clear()
	if len(c.Items()) != 0 || c.Count() != 0 {
		t.Errorf("clear left items behind")
	}
}

func TestCountAndTotalPrice(t *testing.T) {
	var c Cart
	c.Add("p1", "Scarf", 10, "")
	c.Add("p1", "Scarf", 10, "")
	c.Add("p2", "Shirt", 25.5, "M")

	if got := c.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if got := c.TotalPrice(); got != 45.5 {
		t.Errorf("TotalPrice() = %v, want 45.5", got)
	}
}
