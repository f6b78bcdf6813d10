// Package review holds the transient state of the review form.
package review

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mytheresa/go-storefront/events"
	"github.com/mytheresa/go-storefront/models"
)

// Draft is what the shopper has typed so far. Zero values mean unset.
type Draft struct {
	Name   string `json:"name" validate:"required"`
	Body   string `json:"body" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

// FieldError describes one field that blocks submission.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists the draft fields that failed, in form order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("%s: %s", models.ErrValidationFailed, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return models.ErrValidationFailed
}

// Form validates the draft and publishes it as a review.
type Form struct {
	bus      *events.Bus
	validate *validator.Validate
	draft    Draft
}

func NewForm(bus *events.Bus) *Form {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return &Form{bus: bus, validate: v}
}

func (f *Form) SetName(name string) {
	f.draft.Name = name
}

func (f *Form) SetBody(body string) {
	f.draft.Body = body
}

func (f *Form) SetRating(rating int) {
	f.draft.Rating = rating
}

// Fill replaces the whole draft.
func (f *Form) Fill(d Draft) {
	f.draft = d
}

func (f *Form) Draft() Draft {
	return f.draft
}

// Submit publishes the draft as a review and clears the form. An incomplete
// draft is left untouched and reported as a *ValidationError.
func (f *Form) Submit() (models.Review, error) {
	if err := f.validate.Struct(f.draft); err != nil {
		return models.Review{}, toValidationError(err)
	}

	r := models.Review{
		Name:   f.draft.Name,
		Body:   f.draft.Body,
		Rating: f.draft.Rating,
	}
	f.bus.Publish(events.ReviewSubmitted, r)
	f.draft = Draft{}
	return r, nil
}

func toValidationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", models.ErrValidationFailed, err)
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(ve))}
	for _, fe := range ve {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: messageForTag(fe.Tag(), fe.Param()),
		})
	}
	return out
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	default:
		return "is invalid"
	}
}
