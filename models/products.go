package models

import (
	"github.com/shopspring/decimal"
)

// Product is the seed for the storefront's single product.
// It carries the brand, the display name, a list of details and its variants.
type Product struct {
	ID       uint            `gorm:"primaryKey"`
	Code     string          `gorm:"uniqueIndex;not null"`
	Brand    string          `gorm:"not null"`
	Name     string          `gorm:"not null"`
	Details  []ProductDetail `gorm:"foreignKey:ProductID"`
	Variants []Variant       `gorm:"foreignKey:ProductID"`
}

func (p *Product) TableName() string {
	return "products"
}

// DetailLines returns the product details as plain text, in display order.
func (p Product) DetailLines() []string {
	lines := make([]string, len(p.Details))
	for i, d := range p.Details {
		lines[i] = d.Text
	}
	return lines
}

// ProductDetail is one bullet of the product's description.
type ProductDetail struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"not null"`
	Position  int    `gorm:"not null"`
	Text      string `gorm:"not null"`
}

func (d *ProductDetail) TableName() string {
	return "product_details"
}

// Variant is one purchasable configuration of a product.
// Quantity is the remaining stock and never goes below zero.
type Variant struct {
	ID        int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID uint            `gorm:"not null"`
	Position  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Color     string          `gorm:"not null"`
	Image     string          `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
}

func (v *Variant) TableName() string {
	return "variants"
}

// DefaultProduct is the built-in seed used when no database is configured.
func DefaultProduct() Product {
	return Product{
		Code:  "marlin-7",
		Brand: "Trek",
		Name:  "Marlin 7 Gen 2 Mountain Bike",
		Details: []ProductDetail{
			{Position: 0, Text: "Alpha Silver Aluminium Frame"},
			{Position: 1, Text: "14g Stainless Steel Spokes"},
			{Position: 2, Text: "Weight: 13.77 kg"},
		},
		Variants: []Variant{
			{ID: 2234, Position: 0, Price: decimal.RequireFromString("1449.99"), Color: "Navy", Image: "./images/black-bike.jpg", Quantity: 15},
			{ID: 2235, Position: 1, Price: decimal.RequireFromString("1459.99"), Color: "Red", Image: "./images/red-bike.jpg", Quantity: 5},
			{ID: 2236, Position: 2, Price: decimal.RequireFromString("1469.99"), Color: "Turquoise", Image: "./images/mint-bike.jpg", Quantity: 1},
		},
	}
}
