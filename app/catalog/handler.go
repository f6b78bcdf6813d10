package catalog

import (
	"net/http"
	"strconv"

	"github.com/mytheresa/go-storefront/app/api"
	"github.com/mytheresa/go-storefront/product"
	"github.com/mytheresa/go-storefront/storefront"
	"go.uber.org/zap"
)

type Product struct {
	Title    string    `json:"title"`
	Image    string    `json:"image"`
	Price    float64   `json:"price"`
	Status   string    `json:"status"`
	InStock  bool      `json:"in_stock"`
	Shipping string    `json:"shipping"`
	Details  []string  `json:"details"`
	Selected int       `json:"selected"`
	Variants []Variant `json:"variants"`
}

type Variant struct {
	ID       int     `json:"id"`
	Color    string  `json:"color"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CartItem struct {
	Product string  `json:"product"`
	Variant int     `json:"variant"`
	Color   string  `json:"color"`
	Price   float64 `json:"price"`
}

type AddToCartResponse struct {
	Item      CartItem `json:"item"`
	CartCount int      `json:"cart_count"`
}

type Storefront interface {
	Do(fn func(*storefront.App) error) error
}

type CatalogHandler struct {
	store  Storefront
	logger *zap.Logger
}

func NewCatalogHandler(s Storefront, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{
		store:  s,
		logger: logger,
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	var response Product
	_ = h.store.Do(func(a *storefront.App) error {
		response = toProduct(a.Product())
		return nil
	})
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *CatalogHandler) HandleSelectVariant(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		api.WriteMessage(w, http.StatusBadRequest, "Invalid variant index")
		return
	}

	var response Product
	err = h.store.Do(func(a *storefront.App) error {
		if err := a.Product().SelectVariant(index); err != nil {
			return err
		}
		response = toProduct(a.Product())
		return nil
	})
	if err != nil {
		api.WriteError(w, h.logger, err, "Failed to select variant")
		return
	}
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *CatalogHandler) HandleAddToCart(w http.ResponseWriter, r *http.Request) {
	var response AddToCartResponse
	err := h.store.Do(func(a *storefront.App) error {
		item, err := a.Product().AddToCart()
		if err != nil {
			return err
		}
		response = AddToCartResponse{
			Item: CartItem{
				Product: item.Product,
				Variant: item.VariantID,
				Color:   item.Color,
				Price:   item.Price.InexactFloat64(),
			},
			CartCount: a.CartCount(),
		}
		return nil
	})
	if err != nil {
		api.WriteError(w, h.logger, err, "Failed to add to cart")
		return
	}
	h.logger.Info("added to cart", zap.Int("variant", response.Item.Variant), zap.Int("cart_count", response.CartCount))
	api.WriteJSON(w, http.StatusCreated, response)
}

func toProduct(p *product.ViewModel) Product {
	variants := p.Variants()
	out := make([]Variant, len(variants))
	for i, v := range variants {
		out[i] = Variant{
			ID:       v.ID,
			Color:    v.Color,
			Image:    v.Image,
			Price:    v.Price.InexactFloat64(),
			Quantity: v.Quantity,
		}
	}
	return Product{
		Title:    p.Title(),
		Image:    p.Image(),
		Price:    p.Price().InexactFloat64(),
		Status:   p.StockStatus(),
		InStock:  p.InStock(),
		Shipping: p.Shipping(),
		Details:  p.Details(),
		Selected: p.Selected(),
		Variants: out,
	}
}
