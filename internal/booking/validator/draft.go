package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"homehive/pkg/logger"
	"homehive/pkg/model"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// ByField indexes the errors for form rendering.
func (v ValidationErrors) ByField() map[string]string {
	out := make(map[string]string, len(v))
	for _, err := range v {
		if _, ok := out[err.Field]; !ok {
			out[err.Field] = err.Message
		}
	}
	return out
}

type DraftValidator struct {
	validate *validator.Validate
	logger   *logger.Logger

	// today is injectable so date-boundary cases are testable.
	today func() time.Time
}

func NewDraftValidator(log *logger.Logger) *DraftValidator {
	return &DraftValidator{
		validate: validator.New(),
		logger:   log,
		today:    time.Now,
	}
}

// Validate evaluates every rule and returns all violations at once, keyed by
// field. A nil return means the draft is submittable against the property.
func (v *DraftValidator) Validate(draft *model.BookingDraft, property *model.Property) error {
	var result ValidationErrors

	if err := v.validate.Struct(draft); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			result = append(result, v.translateValidationErrors(validationErrs)...)
		} else {
			return err
		}
	}

	result = append(result, v.validateDates(draft, result.ByField())...)
	result = append(result, v.validateGuests(draft, property)...)

	if len(result) > 0 {
		return result
	}
	return nil
}

// validateDates runs the cross-field date rules, skipping fields that
// already failed structural validation.
func (v *DraftValidator) validateDates(draft *model.BookingDraft, failed map[string]string) ValidationErrors {
	var result ValidationErrors

	var checkIn, checkOut time.Time
	var err error

	if _, ok := failed["checkIn"]; !ok {
		checkIn, err = time.Parse(dateLayout, draft.CheckIn)
		if err != nil {
			return result
		}
		if checkIn.Before(v.todayDateOnly()) {
			result = append(result, ValidationError{
				Field:   "checkIn",
				Message: "check-in date cannot be in the past",
			})
		}
	} else {
		return result
	}

	if _, ok := failed["checkOut"]; !ok {
		checkOut, err = time.Parse(dateLayout, draft.CheckOut)
		if err != nil {
			return result
		}
		if !checkOut.After(checkIn) {
			result = append(result, ValidationError{
				Field:   "checkOut",
				Message: "check-out date must be after check-in date",
			})
		}
	}

	return result
}

func (v *DraftValidator) validateGuests(draft *model.BookingDraft, property *model.Property) ValidationErrors {
	if property == nil || draft.Guests < 1 {
		// guests < 1 is already reported by the struct rules.
		return nil
	}

	if draft.Guests > property.MaxGuests {
		return ValidationErrors{
			ValidationError{
				Field:   "guests",
				Message: fmt.Sprintf("guest count (%d) exceeds maximum capacity (%d)", draft.Guests, property.MaxGuests),
			},
		}
	}
	return nil
}

func (v *DraftValidator) todayDateOnly() time.Time {
	now := v.today()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (v *DraftValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		field := fieldKey(err.Field())
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s", field, err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", field, err.Param())
		case "datetime":
			message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   field,
			Message: message,
		})
	}

	return validationErrors
}

// fieldKey maps Go struct field names to the camelCase form field keys the
// UI layer renders against.
func fieldKey(structField string) string {
	switch structField {
	case "PropertyID":
		return "propertyId"
	case "CheckIn":
		return "checkIn"
	case "CheckOut":
		return "checkOut"
	case "Guests":
		return "guests"
	}
	return structField
}
