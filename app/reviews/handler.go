package reviews

import (
	"encoding/json"
	"net/http"

	"github.com/mytheresa/go-storefront/app/api"
	"github.com/mytheresa/go-storefront/review"
	"github.com/mytheresa/go-storefront/storefront"
	"go.uber.org/zap"
)

type ReviewResponse struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

type Storefront interface {
	Do(fn func(*storefront.App) error) error
}

type ReviewHandler struct {
	store  Storefront
	logger *zap.Logger
}

func NewReviewHandler(s Storefront, logger *zap.Logger) *ReviewHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewHandler{store: s, logger: logger}
}

func (h *ReviewHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	var response []ReviewResponse
	_ = h.store.Do(func(a *storefront.App) error {
		reviews := a.Product().Reviews()
		response = make([]ReviewResponse, len(reviews))
		for i, rv := range reviews {
			response[i] = ReviewResponse{
				Name:   rv.Name,
				Rating: rv.Rating,
				Review: rv.Body,
			}
		}
		return nil
	})
	api.WriteJSON(w, http.StatusOK, response)
}

func (h *ReviewHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name   string `json:"name"`
		Review string `json:"review"`
		Rating int    `json:"rating"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var response ReviewResponse
	err := h.store.Do(func(a *storefront.App) error {
		form := a.ReviewForm()
		form.Fill(review.Draft{Name: input.Name, Body: input.Review, Rating: input.Rating})
		rv, err := form.Submit()
		if err != nil {
			return err
		}
		response = ReviewResponse{Name: rv.Name, Rating: rv.Rating, Review: rv.Body}
		return nil
	})
	if err != nil {
		api.WriteError(w, h.logger, err, "Failed to submit review")
		return
	}

	h.logger.Info("review submitted", zap.String("name", response.Name), zap.Int("rating", response.Rating))
	api.WriteJSON(w, http.StatusCreated, response)
}
