package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Declared type names with validation rules.
const (
	TypeBool    = "bool"
	TypeInteger = "integer"
	TypeString  = "String"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("schema validation failed")

// ValidationError reports a value that does not match its declared type.
type ValidationError struct {
	Key   string
	Type  string
	Value string
	Err   error
}

// Error returns the error message
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("key %q: value %q is not a valid %s", e.Key, e.Value, e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap returns the underlying parse error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks value against declaredType.
//
// "bool" accepts the literals of strconv.ParseBool after trimming and
// lower-casing, "integer" accepts base-10 integers in the int32 range, and
// "String" or any unrecognized type accepts everything.
func Validate(key, value, declaredType string) error {
	var err error

	switch declaredType {
	case TypeBool:
		_, err = strconv.ParseBool(strings.ToLower(strings.TrimSpace(value)))
	case TypeInteger:
		_, err = strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	default:
		return nil
	}

	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return &ValidationError{Key: key, Type: declaredType, Value: value, Err: err}
	}
	return nil
}

// Known reports whether declaredType has a validation rule.
func Known(declaredType string) bool {
	switch declaredType {
	case TypeBool, TypeInteger, TypeString:
		return true
	}
	return false
}
