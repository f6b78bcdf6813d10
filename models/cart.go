package models

import (
	"github.com/shopspring/decimal"
)

// CartItem is a snapshot of a variant taken when it was added to the cart.
// Later catalog changes never alter it.
type CartItem struct {
	Product   string
	VariantID int
	Color     string
	Price     decimal.Decimal
}

// Label is the line shown for the item in the cart table.
func (i CartItem) Label() string {
	return i.Product + " - " + i.Color
}

// CartItemRemoved is published when an item leaves the cart so the owning
// catalog can put the unit back in stock.
type CartItemRemoved struct {
	Product   string
	VariantID int
}
