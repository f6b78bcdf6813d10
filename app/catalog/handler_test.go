package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mytheresa/go-storefront/models"
	"github.com/mytheresa/go-storefront/storefront"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock Storefront ---

type MockStore struct {
	App   *storefront.App
	Err   error
	calls int
}

func (m *MockStore) Do(fn func(*storefront.App) error) error {
	m.calls++
	if m.Err != nil {
		return m.Err
	}
	return fn(m.App)
}

func newMockStore(t *testing.T) *MockStore {
	t.Helper()
	app, err := storefront.New(models.Product{
		Code:    "marlin-7",
		Brand:   "Trek",
		Name:    "Marlin 7",
		Details: []models.ProductDetail{{Text: "Aluminium frame"}},
		Variants: []models.Variant{
			{ID: 1, Price: decimal.RequireFromString("1449.99"), Color: "Navy", Image: "navy.jpg", Quantity: 15},
			{ID: 2, Price: decimal.RequireFromString("1459.99"), Color: "Red", Image: "red.jpg", Quantity: 1},
		},
	}, storefront.Options{Premium: true})
	require.NoError(t, err)
	return &MockStore{App: app}
}

// --- Tests ---

func TestHandleGet(t *testing.T) {
	store := newMockStore(t)
	handler := NewCatalogHandler(store, nil)
	req := httptest.NewRequest("GET", "/product", nil)
	rec := httptest.NewRecorder()

	handler.HandleGet(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Trek Marlin 7", resp.Title)
	assert.Equal(t, "navy.jpg", resp.Image)
	assert.Equal(t, 1449.99, resp.Price)
	assert.Equal(t, "In stock", resp.Status)
	assert.True(t, resp.InStock)
	assert.Equal(t, "Free", resp.Shipping)
	assert.Equal(t, []string{"Aluminium frame"}, resp.Details)
	assert.Equal(t, 0, resp.Selected)
	assert.Len(t, resp.Variants, 2)
	assert.Equal(t, 1459.99, resp.Variants[1].Price)
}

func TestHandleSelectVariant(t *testing.T) {
	testCases := []struct {
		name               string
		index              string
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:               "Select second variant",
			index:              "1",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Product
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 1, resp.Selected)
				assert.Equal(t, "red.jpg", resp.Image)
				assert.Equal(t, "Hurry, 1 left", resp.Status)
			},
		},
		{
			name:               "Index out of range",
			index:              "5",
			expectedStatusCode: http.StatusNotFound,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Contains(t, errResp["error"], "index out of range")
			},
		},
		{
			name:               "Index not a number",
			index:              "red",
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "Invalid variant index", errResp["error"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			store := newMockStore(t)
			handler := NewCatalogHandler(store, nil)
			req := httptest.NewRequest("POST", "/product/variants/"+tc.index, nil)
			req.SetPathValue("index", tc.index)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleSelectVariant(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

func TestHandleAddToCart(t *testing.T) {
	store := newMockStore(t)
	handler := NewCatalogHandler(store, nil)
	require.NoError(t, store.App.Product().SelectVariant(1))

	rec := httptest.NewRecorder()
	handler.HandleAddToCart(rec, httptest.NewRequest("POST", "/product/cart", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp AddToCartResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, CartItem{Product: "Marlin 7", Variant: 2, Color: "Red", Price: 1459.99}, resp.Item)
	assert.Equal(t, 1, resp.CartCount)

	rec = httptest.NewRecorder()
	handler.HandleAddToCart(rec, httptest.NewRequest("POST", "/product/cart", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 1, store.App.CartCount())
}

func TestHandleAddToCartInternalError(t *testing.T) {
	store := &MockStore{Err: errors.New("store unavailable")}
	handler := NewCatalogHandler(store, nil)
	rec := httptest.NewRecorder()

	handler.HandleAddToCart(rec, httptest.NewRequest("POST", "/product/cart", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var errResp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, "Failed to add to cart", errResp["error"])
	assert.Equal(t, 1, store.calls)
}
