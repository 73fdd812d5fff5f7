package wordpress

import (
	"fmt"
	"math"
	"net/http"
	"regexp"
)

// Parameter validators reject malformed input before a request is issued.
// All of them are pure functions: a violation produces a 400-status
// *APIError naming the offending field, never a side effect.

func validationError(code ErrorCode, format string, args ...interface{}) *APIError {
	return &APIError{
		Message: fmt.Sprintf(format, args...),
		Status:  http.StatusBadRequest,
		Code:    code,
	}
}

// ValidateRequired rejects nil values and empty strings.
func ValidateRequired(value interface{}, field string) error {
	if value == nil {
		return validationError(CodeMissingParameter, "required parameter %q is missing", field)
	}
	if s, ok := value.(string); ok && s == "" {
		return validationError(CodeMissingParameter, "required parameter %q is missing", field)
	}
	return nil
}

// StringOptions constrains ValidateString.
type StringOptions struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
}

// ValidateString checks that value is a string within the given bounds.
// An absent optional value yields the empty string.
func ValidateString(value interface{}, field string, opts StringOptions) (string, error) {
	if value == nil {
		if opts.Required {
			return "", validationError(CodeMissingParameter, "required parameter %q is missing", field)
		}
		return "", nil
	}

	s, ok := value.(string)
	if !ok {
		return "", validationError(CodeInvalidParameterType, "parameter %q must be a string, got %T", field, value)
	}
	if opts.Required && s == "" {
		return "", validationError(CodeMissingParameter, "required parameter %q is missing", field)
	}
	if opts.MinLength > 0 && len(s) < opts.MinLength {
		return "", validationError(CodeParameterTooShort, "parameter %q must be at least %d characters", field, opts.MinLength)
	}
	if opts.MaxLength > 0 && len(s) > opts.MaxLength {
		return "", validationError(CodeParameterTooLong, "parameter %q must be at most %d characters", field, opts.MaxLength)
	}
	if opts.Pattern != nil && s != "" && !opts.Pattern.MatchString(s) {
		return "", validationError(CodeInvalidParameterFormat, "parameter %q does not match the expected format", field)
	}
	return s, nil
}

// NumberOptions constrains ValidateNumber.
type NumberOptions struct {
	Required bool
	Min      *float64
	Max      *float64
	Integer  bool
}

// ValidateNumber checks that value is numeric within the given bounds.
// JSON-decoded arguments arrive as float64; native int kinds are accepted
// for direct callers.
func ValidateNumber(value interface{}, field string, opts NumberOptions) (float64, error) {
	if value == nil {
		if opts.Required {
			return 0, validationError(CodeMissingParameter, "required parameter %q is missing", field)
		}
		return 0, nil
	}

	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	default:
		return 0, validationError(CodeInvalidParameterType, "parameter %q must be a number, got %T", field, value)
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, validationError(CodeInvalidParameterType, "parameter %q must be a finite number", field)
	}
	if opts.Integer && n != math.Trunc(n) {
		return 0, validationError(CodeInvalidParameterType, "parameter %q must be an integer", field)
	}
	if opts.Min != nil && n < *opts.Min {
		return 0, validationError(CodeParameterTooSmall, "parameter %q must be at least %v", field, *opts.Min)
	}
	if opts.Max != nil && n > *opts.Max {
		return 0, validationError(CodeParameterTooLarge, "parameter %q must be at most %v", field, *opts.Max)
	}
	return n, nil
}

// ArrayOptions constrains ValidateArray. Item, when set, validates each
// element; its failures are reported with the element index qualified in
// the message so the caller can identify the bad element.
type ArrayOptions struct {
	Required bool
	MinItems int
	MaxItems int
	Item     func(value interface{}, field string) error
}

// ValidateArray checks that value is an array within the given bounds.
func ValidateArray(value interface{}, field string, opts ArrayOptions) ([]interface{}, error) {
	if value == nil {
		if opts.Required {
			return nil, validationError(CodeMissingParameter, "required parameter %q is missing", field)
		}
		return nil, nil
	}

	items, ok := value.([]interface{})
	if !ok {
		return nil, validationError(CodeInvalidParameterType, "parameter %q must be an array, got %T", field, value)
	}
	if opts.MinItems > 0 && len(items) < opts.MinItems {
		return nil, validationError(CodeArrayTooShort, "parameter %q must have at least %d items", field, opts.MinItems)
	}
	if opts.MaxItems > 0 && len(items) > opts.MaxItems {
		return nil, validationError(CodeArrayTooLong, "parameter %q must have at most %d items", field, opts.MaxItems)
	}

	if opts.Item != nil {
		for i, item := range items {
			indexed := fmt.Sprintf("%s[%d]", field, i)
			if err := opts.Item(item, indexed); err != nil {
				// Surface the item validator's message, not its error value,
				// so internals do not leak through.
				return nil, validationError(CodeArrayItemInvalid, "parameter %q has an invalid item: %s", field, err.Error())
			}
		}
	}
	return items, nil
}

// ValidateID checks a WordPress numeric id: required, integral, and >= 1.
func ValidateID(value interface{}, field string) (int, error) {
	one := 1.0
	n, err := ValidateNumber(value, field, NumberOptions{Required: true, Integer: true, Min: &one})
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
