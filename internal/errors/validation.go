package errors

import (
	"fmt"
	"sort"
	"strings"
)

const metaValidationErrors = "validation_errors"

// ValidationError collects messages per field
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// Error implements the error interface. Fields are listed in name order.
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

func newValidationError() *ValidationError {
	return &ValidationError{
		Fields: make(map[string][]string),
	}
}

// AddFieldError adds an error for a specific field
func (v *ValidationError) AddFieldError(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

// HasErrors returns true if there are any validation errors
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError converts the validation error to an InvalidArgument *Error
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}
	return InvalidArgument(v.Error()).WithMeta(metaValidationErrors, v.Fields)
}

// ValidationBuilder accumulates field errors. Build returns nil when empty.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		err: newValidationError(),
	}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.AddFieldError(field, message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if vb.err.HasErrors() {
		return vb.err.ToError()
	}
	return nil
}

// FieldErrors returns the per-field messages carried by a validation error
func FieldErrors(err error) map[string][]string {
	fields, _ := GetMeta(err)[metaValidationErrors].(map[string][]string)
	return fields
}

// ValidateRequired checks if a string field is present
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateMaxLength checks a string length in runes
func ValidateMaxLength(field, value string, maxValue int, vb *ValidationBuilder) {
	if len([]rune(value)) > maxValue {
		vb.Fieldf(field, "must be no more than %d characters", maxValue)
	}
}

// ValidateRange checks if a value is within a range
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum checks if a value is in a list of allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
