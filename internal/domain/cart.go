package domain

import "sort"

// CartLine is one product entry in a cart. Price is recorded when the line is
// first added and is not re-read on repeat adds, so a mid-session price change
// never moves an already-carted line.
type CartLine struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Image     string  `json:"image" bson:"image"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Pos       int     `json:"pos" bson:"pos"` // insertion order of the first add
}

// Subtotal is the line's extended price.
func (l CartLine) Subtotal() float64 {
	return float64(l.Quantity) * l.Price
}

// Cart is the session-scoped shopping cart. It is a pure value transformer:
// mutations change only the receiver, persistence is the caller's job.
type Cart struct {
	Items map[string]CartLine `json:"items"`
	Seq   int                 `json:"seq"`
}

func NewCart() *Cart {
	return &Cart{Items: map[string]CartLine{}}
}

// AddItem puts one unit of the product into the cart. A repeat add increments
// the existing line's quantity by one and keeps the originally recorded price.
func (c *Cart) AddItem(productID string, p Product) {
	if c.Items == nil {
		c.Items = map[string]CartLine{}
	}
	if line, ok := c.Items[productID]; ok {
		line.Quantity++
		c.Items[productID] = line
		return
	}
	c.Items[productID] = CartLine{
		ProductID: productID,
		Name:      p.Name,
		Image:     p.Image,
		Price:     p.Price,
		Quantity:  1,
		Pos:       c.Seq,
	}
	c.Seq++
}

// UpdateQuantity sets the line's quantity to exactly quantity. Zero or
// negative removes the line. Unknown product IDs are ignored.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	line, ok := c.Items[productID]
	if !ok {
		return
	}
	if quantity <= 0 {
		delete(c.Items, productID)
		return
	}
	line.Quantity = quantity
	c.Items[productID] = line
}

// Delete removes the line if present.
func (c *Cart) Delete(productID string) {
	delete(c.Items, productID)
}

// ItemList returns the lines ordered by first-add time, the order used for
// rendering and for snapshotting into an order.
func (c *Cart) ItemList() []CartLine {
	lines := make([]CartLine, 0, len(c.Items))
	for _, line := range c.Items {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Pos < lines[j].Pos })
	return lines
}

// Total recomputes the cart total from the current lines on every call.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Items {
		total += float64(line.Quantity) * line.Price
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
