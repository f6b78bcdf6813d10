// Package inventory holds the purchasable variants of a product and the
// currently selected one.
package inventory

import (
	"fmt"

	"github.com/mytheresa/go-storefront/models"
)

// Catalog is an ordered list of variants with a selection cursor.
// The selected index always points at an existing variant.
type Catalog struct {
	variants []models.Variant
	selected int
}

// NewCatalog copies variants into a new catalog with the first one selected.
func NewCatalog(variants []models.Variant) (*Catalog, error) {
	if len(variants) == 0 {
		return nil, models.ErrEmptyCatalog
	}
	seen := make(map[int]struct{}, len(variants))
	for _, v := range variants {
		if _, dup := seen[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", models.ErrInvalidVariant, v.ID)
		}
		seen[v.ID] = struct{}{}
		if v.Price.IsNegative() {
			return nil, fmt.Errorf("%w: variant %d has negative price", models.ErrInvalidVariant, v.ID)
		}
		if v.Quantity < 0 {
			return nil, fmt.Errorf("%w: variant %d has negative quantity", models.ErrInvalidVariant, v.ID)
		}
	}
	return &Catalog{
		variants: append([]models.Variant(nil), variants...),
	}, nil
}

// Select moves the cursor to index.
func (c *Catalog) Select(index int) error {
	if index < 0 || index >= len(c.variants) {
		return fmt.Errorf("select variant %d of %d: %w", index, len(c.variants), models.ErrOutOfRange)
	}
	c.selected = index
	return nil
}

func (c *Catalog) Selected() int {
	return c.selected
}

func (c *Catalog) Current() models.Variant {
	return c.variants[c.selected]
}

func (c *Catalog) Len() int {
	return len(c.variants)
}

// Variants returns a copy of the variants in catalog order.
func (c *Catalog) Variants() []models.Variant {
	return append([]models.Variant(nil), c.variants...)
}

// DecrementStock takes one unit of the selected variant.
func (c *Catalog) DecrementStock() error {
	v := &c.variants[c.selected]
	if v.Quantity <= 0 {
		return fmt.Errorf("variant %d: %w", v.ID, models.ErrInsufficientStock)
	}
	v.Quantity--
	return nil
}

// Restock puts one unit of the variant with the given id back.
func (c *Catalog) Restock(variantID int) error {
	for i := range c.variants {
		if c.variants[i].ID == variantID {
			c.variants[i].Quantity++
			return nil
		}
	}
	return fmt.Errorf("restock variant %d: %w", variantID, models.ErrUnknownVariant)
}
