package inventory

import "fmt"

// StockStatus is the availability message shown for a remaining quantity.
func StockStatus(quantity int) string {
	switch {
	case quantity > 10:
		return "In stock"
	case quantity > 1:
		return fmt.Sprintf("Almost sold out, %d available", quantity)
	case quantity == 1:
		return "Hurry, 1 left"
	default:
		return "Out of stock"
	}
}
