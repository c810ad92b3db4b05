package catalog

import (
	"bytes"
	"strings"
)

// ValidationError represents a single field-level validation failure.
type ValidationError struct {
	Field  string // the field that caused the validation error
	Value  any    // the offending value
	ErrStr string // the error message
}

// Error allows ValidationError to satisfy the error interface.
func (ve ValidationError) Error() string {
	if len(ve.Field) > 0 {
		return ve.Field + ": " + ve.ErrStr
	}
	return ve.ErrStr
}

// ValidationErrors is a collection of field-level validation failures.
type ValidationErrors []ValidationError

// Error allows ValidationErrors to satisfy the error interface.
func (ves ValidationErrors) Error() string {
	buff := bytes.NewBufferString("")
	for i := 0; i < len(ves); i++ {
		buff.WriteString(ves[i].Error())
		buff.WriteString("; ")
	}
	return strings.TrimSpace(buff.String())
}

func errMissingRequiredAttribute(attr string, value ...any) ValidationError {
	return ValidationError{Field: attr, Value: value, ErrStr: "missing required attribute"}
}

func errInvalidVersionFormat(attr string, value ...any) ValidationError {
	return ValidationError{Field: attr, Value: value, ErrStr: "must be semver with three numeric components (e.g. 1.0.0)"}
}

func errInvalidFeeType(attr string, value ...any) ValidationError {
	return ValidationError{Field: attr, Value: value, ErrStr: "must be one of free, one_time, subscription, rev_share"}
}

func errInvalidURL(attr string, value ...any) ValidationError {
	return ValidationError{Field: attr, Value: value, ErrStr: "must be a valid URL"}
}

func errValidationFailed(attr string, value ...any) ValidationError {
	return ValidationError{Field: attr, Value: value, ErrStr: "validation failed"}
}
