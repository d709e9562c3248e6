package models

// CartLineItem is one entry of a session cart. Quantity is always >= 1 while
// the entry is stored.
type CartLineItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsMembers bool   `json:"isMembers"`
	Quantity  int    `json:"quantity"`
}

// Cart keeps line items in insertion order with at most one entry per id.
type Cart struct {
	Items []CartLineItem `json:"items"`
}

func NewCart() *Cart {
	return &Cart{Items: []CartLineItem{}}
}

func (c *Cart) index(id string) int {
	for i, item := range c.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// AddItem increments the quantity of an existing entry or appends a new one
// with quantity 1.
func (c *Cart) AddItem(id, name string, isMembers bool) {
	if i := c.index(id); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, CartLineItem{
		ID:        id,
		Name:      name,
		IsMembers: isMembers,
		Quantity:  1,
	})
}

// UpdateQuantity sets the quantity of an entry. A quantity <= 0 removes it.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	if i := c.index(id); i >= 0 {
		c.Items[i].Quantity = quantity
	}
}

func (c *Cart) RemoveItem(id string) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

func (c *Cart) Clear() {
	c.Items = []CartLineItem{}
}

// TotalItems is the sum of quantities, not the number of entries.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Clone() *Cart {
	items := make([]CartLineItem, len(c.Items))
	copy(items, c.Items)
	return &Cart{Items: items}
}
