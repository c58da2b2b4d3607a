// Copyright (c) 2026 Durafone. All rights reserved.

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the handler/service layers — never in
// storage. It ensures that business logic only operates on semantically valid
// data. Validation failures are surfaced immediately, before any network or
// database work happens.
package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/durafone/storefront/internal/platform/apperr"
)

var (
	// digitsOnly strips formatting characters from numeric documents (CPF, phone).
	digitsOnly = regexp.MustCompile(`\D`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// CPF fails if the value is not a valid Brazilian CPF number.
//
// # Format
//
// Accepts both formatted ("123.456.789-09") and bare ("12345678909") input.
// Validates the two check digits; repeated-digit sequences are rejected.
func (v *Validator) CPF(field, value string) *Validator {
	if !isValidCPF(value) {
		v.add(field, "Must be a valid CPF")
	}
	return v
}

// Phone fails if the value does not contain a plausible Brazilian phone
// number (10 or 11 digits, area code included).
func (v *Validator) Phone(field, value string) *Validator {
	digits := digitsOnly.ReplaceAllString(value, "")
	if len(digits) < 10 || len(digits) > 11 {
		v.add(field, "Must be a valid phone number with area code")
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("rating", rating < 0 || rating > 5, "Must be between 0 and 5")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}

// isValidCPF implements the CPF check-digit algorithm.
func isValidCPF(value string) bool {
	digits := digitsOnly.ReplaceAllString(value, "")
	if len(digits) != 11 {
		return false
	}

	// Sequences like "00000000000" pass the checksum but are not issued.
	allEqual := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	return checkDigit(digits, 9) && checkDigit(digits, 10)
}

// checkDigit verifies the CPF verification digit at the given position (9 or 10).
func checkDigit(digits string, position int) bool {
	sum := 0
	weight := position + 1
	for i := 0; i < position; i++ {
		sum += int(digits[i]-'0') * (weight - i)
	}

	expected := 0
	if remainder := sum % 11; remainder >= 2 {
		expected = 11 - remainder
	}

	return int(digits[position]-'0') == expected
}
