package models

import "errors"

var (
	// ErrOutOfRange is returned for an index or position outside the collection.
	ErrOutOfRange = errors.New("index out of range")
	// ErrUnknownVariant is returned when a restock targets a variant the catalog does not hold.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrInsufficientStock is returned when the selected variant has no units left.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrValidationFailed is returned when a review draft is incomplete.
	ErrValidationFailed = errors.New("validation failed")
	// ErrEmptyCatalog is returned when a catalog is built without variants.
	ErrEmptyCatalog = errors.New("catalog has no variants")
	// ErrInvalidVariant is returned for seed variants with negative price or stock, or duplicate ids.
	ErrInvalidVariant = errors.New("invalid variant")
)
