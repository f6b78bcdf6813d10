package review

import (
	"errors"
	"testing"

	"github.com/mytheresa/go-storefront/events"
	"github.com/mytheresa/go-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitValidation(t *testing.T) {
	testCases := []struct {
		name           string
		draft          Draft
		expectedFields []FieldError
	}{
		{
			name:  "Empty draft",
			draft: Draft{},
			expectedFields: []FieldError{
				{Field: "name", Message: "is required"},
				{Field: "body", Message: "is required"},
				{Field: "rating", Message: "is required"},
			},
		},
		{
			name:           "Missing body",
			draft:          Draft{Name: "Ann", Rating: 5},
			expectedFields: []FieldError{{Field: "body", Message: "is required"}},
		},
		{
			name:           "Missing rating",
			draft:          Draft{Name: "Ann", Body: "Great"},
			expectedFields: []FieldError{{Field: "rating", Message: "is required"}},
		},
		{
			name:           "Rating above range",
			draft:          Draft{Name: "Ann", Body: "Great", Rating: 6},
			expectedFields: []FieldError{{Field: "rating", Message: "must be at most 5"}},
		},
		{
			name:           "Negative rating",
			draft:          Draft{Name: "Ann", Body: "Great", Rating: -1},
			expectedFields: []FieldError{{Field: "rating", Message: "must be at least 1"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			bus := events.NewBus(nil)
			var published int
			bus.Subscribe(events.ReviewSubmitted, func(any) error { published++; return nil })
			form := NewForm(bus)
			form.Fill(tc.draft)

			// Act
			_, err := form.Submit()

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrValidationFailed)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.expectedFields, ve.Fields)
			assert.Equal(t, 0, published)
			assert.Equal(t, tc.draft, form.Draft(), "draft must be left as typed")
		})
	}
}

func TestSubmitPublishesAndResets(t *testing.T) {
	bus := events.NewBus(nil)
	var received []models.Review
	events.On(bus, events.ReviewSubmitted, func(r models.Review) error {
		received = append(received, r)
		return nil
	})
	form := NewForm(bus)
	form.SetName("Ann")
	form.SetBody("Great")
	form.SetRating(5)

	r, err := form.Submit()

	require.NoError(t, err)
	expected := models.Review{Name: "Ann", Body: "Great", Rating: 5}
	assert.Equal(t, expected, r)
	assert.Equal(t, []models.Review{expected}, received)
	assert.Equal(t, Draft{}, form.Draft())
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{{Field: "body"}, {Field: "rating"}}}
	assert.Equal(t, "validation failed: body, rating", err.Error())
}
