// Package product derives what the product page shows from the variant
// catalog and turns the shopper's clicks into catalog and cart changes.
package product

import (
	"errors"
	"fmt"

	"github.com/mytheresa/go-storefront/events"
	"github.com/mytheresa/go-storefront/inventory"
	"github.com/mytheresa/go-storefront/models"
	"github.com/shopspring/decimal"
)

const (
	FreeShipping     = "Free"
	StandardShipping = "$15.99"
)

// CartSink receives items added from the product page.
type CartSink interface {
	Add(item models.CartItem)
}

// ViewModel owns the catalog and the review list of one product.
type ViewModel struct {
	brand   string
	name    string
	details []string
	premium bool

	catalog *inventory.Catalog
	reviews []models.Review

	bus  *events.Bus
	sink CartSink
	subs []events.Subscription
}

// New builds the view-model and subscribes it to review and cart-removal events.
func New(p models.Product, bus *events.Bus, sink CartSink, premium bool) (*ViewModel, error) {
	if sink == nil {
		return nil, errors.New("product: nil cart sink")
	}
	catalog, err := inventory.NewCatalog(p.Variants)
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", p.Code, err)
	}

	vm := &ViewModel{
		brand:   p.Brand,
		name:    p.Name,
		details: p.DetailLines(),
		premium: premium,
		catalog: catalog,
		bus:     bus,
		sink:    sink,
	}
	vm.subs = []events.Subscription{
		events.On(bus, events.ReviewSubmitted, vm.onReviewSubmitted),
		events.On(bus, events.CartItemRemoved, vm.onCartItemRemoved),
	}
	return vm, nil
}

func (vm *ViewModel) onReviewSubmitted(r models.Review) error {
	vm.reviews = append(vm.reviews, r)
	return nil
}

// Items removed from the cart only restock the product they were bought from.
func (vm *ViewModel) onCartItemRemoved(r models.CartItemRemoved) error {
	if r.Product != vm.name {
		return nil
	}
	return vm.catalog.Restock(r.VariantID)
}

// Close drops the bus subscriptions.
func (vm *ViewModel) Close() {
	for _, s := range vm.subs {
		vm.bus.Unsubscribe(s)
	}
	vm.subs = nil
}

func (vm *ViewModel) Name() string {
	return vm.name
}

// Title joins brand and product name.
func (vm *ViewModel) Title() string {
	return vm.brand + " " + vm.name
}

func (vm *ViewModel) Details() []string {
	return append([]string(nil), vm.details...)
}

func (vm *ViewModel) Image() string {
	return vm.catalog.Current().Image
}

func (vm *ViewModel) Price() decimal.Decimal {
	return vm.catalog.Current().Price
}

func (vm *ViewModel) Quantity() int {
	return vm.catalog.Current().Quantity
}

func (vm *ViewModel) InStock() bool {
	return vm.Quantity() > 0
}

func (vm *ViewModel) StockStatus() string {
	return inventory.StockStatus(vm.Quantity())
}

func (vm *ViewModel) Shipping() string {
	if vm.premium {
		return FreeShipping
	}
	return StandardShipping
}

func (vm *ViewModel) Variants() []models.Variant {
	return vm.catalog.Variants()
}

func (vm *ViewModel) Selected() int {
	return vm.catalog.Selected()
}

// SelectVariant switches the page to the variant at index.
func (vm *ViewModel) SelectVariant(index int) error {
	return vm.catalog.Select(index)
}

// AddToCart snapshots the selected variant, hands it to the cart and takes
// one unit out of stock. Nothing is added when the variant is sold out.
func (vm *ViewModel) AddToCart() (models.CartItem, error) {
	v := vm.catalog.Current()
	if v.Quantity <= 0 {
		return models.CartItem{}, fmt.Errorf("add variant %d to cart: %w", v.ID, models.ErrInsufficientStock)
	}
	item := models.CartItem{
		Product:   vm.name,
		VariantID: v.ID,
		Color:     v.Color,
		Price:     v.Price,
	}
	vm.sink.Add(item)
	if err := vm.catalog.DecrementStock(); err != nil {
		return item, err
	}
	return item, nil
}

// Reviews returns the submitted reviews in arrival order.
func (vm *ViewModel) Reviews() []models.Review {
	return append([]models.Review(nil), vm.reviews...)
}
