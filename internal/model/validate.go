package model

import (
	"fmt"
	"regexp"
)

// ErrorKind classifies a field-level validation rejection.
type ErrorKind string

const (
	InvalidDateFormat  ErrorKind = "InvalidDateFormat"
	InvalidEmailFormat ErrorKind = "InvalidEmailFormat"
	InvalidCountryCode ErrorKind = "InvalidCountryCode"
)

// FieldError is a typed rejection of a present value. Absent values never
// produce a FieldError; validation only constrains values that were supplied.
type FieldError struct {
	Kind  ErrorKind
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (%q)", e.Field, e.message(), e.Value)
}

func (e *FieldError) message() string {
	switch e.Kind {
	case InvalidDateFormat:
		return "must be YYYY, YYYY-MM or YYYY-MM-DD"
	case InvalidEmailFormat:
		return "must look like local@domain.tld"
	case InvalidCountryCode:
		return "must be 2 uppercase letters (ISO-3166-1 ALPHA-2)"
	default:
		return "invalid value"
	}
}

// Regex patterns
var (
	// Three date granularities: YYYY, YYYY-MM, YYYY-MM-DD. This is a
	// fixed-width character-class match, not a calendar check; 2023-19-39
	// passes syntactically.
	dateRegex = regexp.MustCompile(`^([1-2][0-9]{3}-[0-1][0-9]-[0-3][0-9]|[1-2][0-9]{3}-[0-1][0-9]|[1-2][0-9]{3})$`)

	// Permissive, intentionally not RFC 5322: no whitespace, one @, a dot
	// somewhere in the domain part.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidDate reports whether s matches one of the three date granularities.
func ValidDate(s string) bool {
	return dateRegex.MatchString(s)
}

// ValidEmail reports whether s is an acceptable email address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidCountryCode reports whether s is exactly two uppercase ASCII letters.
// The actual ISO-3166-1 code list is not consulted.
func ValidCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// checkDate validates a present date string, returning a field-qualified
// error on rejection. Empty strings pass trivially.
func checkDate(field, s string) error {
	if s == "" || ValidDate(s) {
		return nil
	}
	return &FieldError{Kind: InvalidDateFormat, Field: field, Value: s}
}

func checkEmail(field, s string) error {
	if s == "" || ValidEmail(s) {
		return nil
	}
	return &FieldError{Kind: InvalidEmailFormat, Field: field, Value: s}
}

func checkCountryCode(field, s string) error {
	if s == "" || ValidCountryCode(s) {
		return nil
	}
	return &FieldError{Kind: InvalidCountryCode, Field: field, Value: s}
}
