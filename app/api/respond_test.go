package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mytheresa/go-storefront/models"
	"github.com/mytheresa/go-storefront/review"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteError(t *testing.T) {
	testCases := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedError      string
		expectedFields     map[string]string
		expectedLogs       int
	}{
		{
			name:               "Out of range",
			err:                fmt.Errorf("select variant 9 of 3: %w", models.ErrOutOfRange),
			expectedStatusCode: http.StatusNotFound,
			expectedError:      "select variant 9 of 3: index out of range",
		},
		{
			name:               "Sold out",
			err:                fmt.Errorf("add variant 2 to cart: %w", models.ErrInsufficientStock),
			expectedStatusCode: http.StatusConflict,
			expectedError:      "add variant 2 to cart: insufficient stock",
		},
		{
			name:               "Validation",
			err:                &review.ValidationError{Fields: []review.FieldError{{Field: "body", Message: "is required"}}},
			expectedStatusCode: http.StatusUnprocessableEntity,
			expectedError:      "validation failed: body",
			expectedFields:     map[string]string{"body": "is required"},
		},
		{
			name:               "Unexpected",
			err:                errors.New("disk on fire"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      "Failed to handle request",
			expectedLogs:       1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)
			rec := httptest.NewRecorder()

			WriteError(rec, zap.New(core), tc.err, "Failed to handle request")

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var resp ErrorResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tc.expectedError, resp.Error)
			assert.Equal(t, tc.expectedFields, resp.Fields)
			assert.Equal(t, tc.expectedLogs, logs.Len())
		})
	}
}
