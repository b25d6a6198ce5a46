package types

import "fmt"

// ValidationError is returned when a value is rejected by a descriptor's
// Validate. It carries the rejected value and the type's expectation.
type ValidationError struct {
	Value       any
	Expectation string
}

// NewValidationError creates a validation error for a rejected value
func NewValidationError(value any, expectation string) *ValidationError {
	return &ValidationError{Value: value, Expectation: expectation}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is not %s", FormatValue(e.Value), e.Expectation)
}

// ConfigurationError signals a structurally invalid descriptor
// configuration, a programming mistake in schema definition rather than a
// runtime data problem.
type ConfigurationError struct {
	Message string
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// FormatValue renders a rejected value for error messages: strings are
// quoted, everything else uses its default formatting.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	case []byte:
		return fmt.Sprintf("%q", string(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
