package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hrone/internal/identifier"
)

// FieldError describes a single failed constraint in a form a client can
// act on programmatically: the field path, the constraint that failed and
// the value that was received.
type FieldError struct {
	Field      string      `json:"field"`
	Constraint string      `json:"constraint"`
	Value      interface{} `json:"value"`
}

// newValidator builds a validator that reports fields by their JSON names
// and validates identifier-typed fields through the identifier adapter.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on an empty tag name.
	_ = validate.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return identifier.IsValid(fl.Field().String())
	})
	return validate
}

// formatValidationErrors flattens validator output into per-field diagnostics.
func formatValidationErrors(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Constraint: "valid", Value: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		constraint := e.Tag()
		if e.Param() != "" {
			constraint += "=" + e.Param()
		}
		fieldErrors = append(fieldErrors, FieldError{
			Field:      fieldPath(e),
			Constraint: constraint,
			Value:      e.Value(),
		})
	}
	return fieldErrors
}

// fieldPath strips the root struct name from the namespace, leaving paths
// like "items[0].product_id".
func fieldPath(e validator.FieldError) string {
	path := e.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}
	return path
}

// respondValidationErrors writes the 422 payload for failed input validation.
func respondValidationErrors(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  formatValidationErrors(err),
	})
}

// internalError returns a generic 500 body; the failure detail is logged at
// the call site and never echoed to clients.
func internalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
	})
}
