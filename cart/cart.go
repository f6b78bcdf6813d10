// Package cart keeps the ordered list of items the shopper has added.
package cart

import (
	"fmt"

	"github.com/mytheresa/go-storefront/events"
	"github.com/mytheresa/go-storefront/models"
	"github.com/shopspring/decimal"
)

// ViewModel is the shopping cart. Items keep insertion order.
type ViewModel struct {
	bus   *events.Bus
	items []models.CartItem
}

func New(bus *events.Bus) *ViewModel {
	return &ViewModel{bus: bus}
}

// Add appends item to the end of the cart.
func (c *ViewModel) Add(item models.CartItem) {
	c.items = append(c.items, item)
}

// RemoveAt drops the item at position and announces it on the bus so its
// catalog can restock the variant.
func (c *ViewModel) RemoveAt(position int) (models.CartItem, error) {
	if position < 0 || position >= len(c.items) {
		return models.CartItem{}, fmt.Errorf("remove cart item %d of %d: %w", position, len(c.items), models.ErrOutOfRange)
	}
	item := c.items[position]
	c.items = append(c.items[:position:position], c.items[position+1:]...)

	c.bus.Publish(events.CartItemRemoved, models.CartItemRemoved{
		Product:   item.Product,
		VariantID: item.VariantID,
	})
	return item, nil
}

// Items returns a copy of the cart contents.
func (c *ViewModel) Items() []models.CartItem {
	return append([]models.CartItem(nil), c.items...)
}

func (c *ViewModel) Len() int {
	return len(c.items)
}

// Total sums the item prices, rounded to cents.
func (c *ViewModel) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Price)
	}
	return total.Round(2)
}

// FormattedTotal is Total with exactly two decimals, "0.00" for an empty cart.
func (c *ViewModel) FormattedTotal() string {
	return c.Total().StringFixed(2)
}
