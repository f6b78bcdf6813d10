package cart

import (
	"net/http"
	"strconv"

	"github.com/mytheresa/go-storefront/app/api"
	"github.com/mytheresa/go-storefront/storefront"
	"go.uber.org/zap"
)

type Item struct {
	Num     int     `json:"num"`
	Label   string  `json:"label"`
	Variant int     `json:"variant"`
	Price   float64 `json:"price"`
}

type Response struct {
	Visible bool   `json:"visible"`
	Count   int    `json:"count"`
	Items   []Item `json:"items"`
	Total   string `json:"total"`
}

type Storefront interface {
	Do(fn func(*storefront.App) error) error
}

type CartHandler struct {
	store  Storefront
	logger *zap.Logger
}

func NewCartHandler(s Storefront, logger *zap.Logger) *CartHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartHandler{store: s, logger: logger}
}

func (h *CartHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	var response Response
	_ = h.store.Do(func(a *storefront.App) error {
		response = toResponse(a)
		return nil
	})
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *CartHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	position, err := strconv.Atoi(r.PathValue("position"))
	if err != nil {
		api.WriteMessage(w, http.StatusBadRequest, "Invalid cart position")
		return
	}

	var response Response
	err = h.store.Do(func(a *storefront.App) error {
		item, err := a.Cart().RemoveAt(position)
		if err != nil {
			return err
		}
		h.logger.Info("removed from cart", zap.Int("position", position), zap.Int("variant", item.VariantID))
		response = toResponse(a)
		return nil
	})
	if err != nil {
		api.WriteError(w, h.logger, err, "Failed to remove cart item")
		return
	}
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *CartHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	var response Response
	_ = h.store.Do(func(a *storefront.App) error {
		a.ToggleCart()
		response = toResponse(a)
		return nil
	})
	api.WriteJSON(w, http.StatusOK, response)
}

func toResponse(a *storefront.App) Response {
	c := a.Cart()
	items := c.Items()
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = Item{
			Num:     i + 1,
			Label:   it.Label(),
			Variant: it.VariantID,
			Price:   it.Price.InexactFloat64(),
		}
	}
	return Response{
		Visible: a.CartVisible(),
		Count:   len(items),
		Items:   out,
		Total:   c.FormattedTotal(),
	}
}
