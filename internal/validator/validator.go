package validator

import (
	"errors"
	"fmt"

	"github.com/cinebook/movie-booking-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("genre", validateGenre)
	validator.RegisterValidation("year_range", validateYearRange)
	validator.RegisterValidation("seat_id", validateSeatID)

	return validator
}

func validateGenre(fl validator.FieldLevel) bool {
	return domain.IsValidGenre(fl.Field().String())
}

func validateYearRange(fl validator.FieldLevel) bool {
	year := int(fl.Field().Int())

	return year >= domain.MinMovieYear && year <= domain.MaxMovieYear()
}

func validateSeatID(fl validator.FieldLevel) bool {
	return domain.IsValidSeatID(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", err.Param())
	case "unique":
		return "must not contain duplicates"
	case "genre":
		return "must be a valid genre"
	case "year_range":
		return fmt.Sprintf("must be between %d and %d", domain.MinMovieYear, domain.MaxMovieYear())
	case "seat_id":
		return "must be a seat label in the hall layout"
	default:
		return "is invalid"
	}
}

// ValidationMessages flattens a validator error into per-field messages,
// e.g. "Year must be between 1900 and 2031".
func ValidationMessages(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s %s", fieldError.Field(), ValidationMessage(fieldError)))
	}

	return messages
}
