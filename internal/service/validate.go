package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CampgroundForm is the already-decoded campground payload. Unknown form
// fields never make it into the struct, so they are ignored by design of
// the decode step, not rejected here.
type CampgroundForm struct {
	Title       string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Location    string  `validate:"required"`
	Description string  `validate:"required"`
}

type ReviewForm struct {
	Rating int    `validate:"min=1,max=5"`
	Body   string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateCampground is a pure check; it mutates nothing.
func ValidateCampground(form CampgroundForm) error {
	return runValidate(form)
}

func ValidateReview(form ReviewForm) error {
	return runValidate(form)
}

func runValidate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageFor(fe),
		})
	}
	return &ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
