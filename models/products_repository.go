package models

import (
	"errors"

	"gorm.io/gorm"
)

// ProductsRepository reads product seeds. It never writes: storefront state
// lives in memory for the lifetime of the process.
type ProductsRepository struct {
	db *gorm.DB
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) GetByCode(code string) (*Product, error) {
	var product Product
	if err := r.db.
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("variants.position")
		}).
		Preload("Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_details.position")
		}).
		Where("code = ?", code).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}
