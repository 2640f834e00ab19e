package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validations for domain enums
	_ = v.RegisterValidation("source_kind", validateSourceKind)
	_ = v.RegisterValidation("element", validateElement)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names and provides cleaner error messages.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "source_kind":
			errs[field] = "Invalid source kind"
		case "element":
			errs[field] = "Invalid element"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "uuid":
			errs[field] = "Must be a valid UUID"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidElements defines the supported elemental affinities
var ValidElements = map[domain.ElementID]bool{
	domain.ElementFire:  true,
	domain.ElementWater: true,
	domain.ElementWood:  true,
	domain.ElementMetal: true,
	domain.ElementEarth: true,
}

func validateSourceKind(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	if kind == "" {
		return true
	}
	return domain.IsValidSourceKind(domain.SourceKind(kind))
}

func validateElement(fl validator.FieldLevel) bool {
	element := fl.Field().String()
	if element == "" {
		return true
	}
	return ValidElements[domain.ElementID(strings.ToLower(element))]
}
