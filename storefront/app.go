// Package storefront is the top-level owner of storefront state. It sits
// between the product page and the cart, which never reference each other.
package storefront

import (
	"sync"

	"github.com/mytheresa/go-storefront/cart"
	"github.com/mytheresa/go-storefront/events"
	"github.com/mytheresa/go-storefront/models"
	"github.com/mytheresa/go-storefront/product"
	"github.com/mytheresa/go-storefront/review"
	"go.uber.org/zap"
)

type Options struct {
	Premium bool
	Logger  *zap.Logger
}

// App holds the premium shipping flag, the cart and its visibility, and the
// product page wired to them through a shared bus.
//
// The view-models underneath are single-threaded. Callers on several
// goroutines go through Do.
type App struct {
	mu sync.Mutex

	logger      *zap.Logger
	bus         *events.Bus
	premium     bool
	cartVisible bool

	cart    *cart.ViewModel
	product *product.ViewModel
	form    *review.Form
}

func New(seed models.Product, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		logger:  logger,
		bus:     events.NewBus(logger.Named("events")),
		premium: opts.Premium,
	}
	a.cart = cart.New(a.bus)
	a.form = review.NewForm(a.bus)

	p, err := product.New(seed, a.bus, a, opts.Premium)
	if err != nil {
		return nil, err
	}
	a.product = p

	logger.Info("storefront ready",
		zap.String("product", p.Title()),
		zap.Int("variants", len(seed.Variants)),
		zap.Bool("premium", opts.Premium),
	)
	return a, nil
}

// Add receives items from the product page.
func (a *App) Add(item models.CartItem) {
	a.cart.Add(item)
	a.logger.Debug("item added to cart",
		zap.Int("variant", item.VariantID),
		zap.String("price", item.Price.StringFixed(2)),
		zap.Int("cart_size", a.cart.Len()),
	)
}

// Do runs fn with exclusive access to the app.
func (a *App) Do(fn func(*App) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fn(a)
}

func (a *App) Premium() bool {
	return a.premium
}

func (a *App) CartVisible() bool {
	return a.cartVisible
}

// ToggleCart shows or hides the cart contents.
func (a *App) ToggleCart() bool {
	a.cartVisible = !a.cartVisible
	return a.cartVisible
}

func (a *App) HideCart() {
	a.cartVisible = false
}

func (a *App) CartCount() int {
	return a.cart.Len()
}

func (a *App) Cart() *cart.ViewModel {
	return a.cart
}

func (a *App) Product() *product.ViewModel {
	return a.product
}

func (a *App) ReviewForm() *review.Form {
	return a.form
}

func (a *App) Bus() *events.Bus {
	return a.bus
}

// Close unsubscribes the product page and shuts the bus down.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.product.Close()
	a.bus.Close()
}
