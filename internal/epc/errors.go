package epc

import (
	"errors"
	"fmt"
)

var (
	// ErrConflictingRemittanceFields reports that both the structured
	// reference and the unstructured text were set; the standard allows
	// at most one.
	ErrConflictingRemittanceFields = errors.New("structured reference and unstructured text are mutually exclusive")

	// ErrIncompatibleVersionForMissingBIC reports that version 001 was
	// requested without a BIC; 001 payloads require one.
	ErrIncompatibleVersionForMissingBIC = errors.New("version 001 requires a BIC")
)

// Reasons carried by InvalidIBANError.
const (
	IBANReasonNonAlphanumeric = "non-alphanumeric"
	IBANReasonCountryLength   = "wrong length for declared country"
	IBANReasonTooShort        = "too short"
	IBANReasonTooLong         = "too long"
	IBANReasonChecksum        = "checksum mismatch"
)

// Reasons carried by InvalidBICError.
const (
	BICReasonLength    = "length must be 8 or 11"
	BICReasonStructure = "malformed SWIFT code"
)

// Reasons carried by InvalidAmountError.
const (
	AmountReasonNegative  = "negative"
	AmountReasonZero      = "zero"
	AmountReasonPrecision = "more than two decimal places"
	AmountReasonOverflow  = "exceeds 999999999.99"
	AmountReasonFormat    = "not a decimal number"
)

// FieldTooLongError reports a field exceeding its EPC069-12 upper bound.
type FieldTooLongError struct {
	Field  string
	Max    int
	Actual int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("%s is %d characters, at most %d allowed", e.Field, e.Actual, e.Max)
}

// RequiredFieldError reports an empty mandatory field.
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// InvalidCharacterError reports the first character of a field that
// falls outside the EPC-permitted set. Position is a zero-based rune
// index.
type InvalidCharacterError struct {
	Field    string
	Char     rune
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s contains disallowed character %q at position %d", e.Field, e.Char, e.Position)
}

// InvalidIBANError reports a structurally invalid IBAN or a mod-97
// checksum failure.
type InvalidIBANError struct {
	Reason string
}

func (e *InvalidIBANError) Error() string {
	return "invalid IBAN: " + e.Reason
}

// InvalidBICError reports a malformed BIC.
type InvalidBICError struct {
	Reason string
}

func (e *InvalidBICError) Error() string {
	return "invalid BIC: " + e.Reason
}

// InvalidAmountError reports an amount outside 0.01-999999999.99 or
// with sub-cent precision.
type InvalidAmountError struct {
	Reason string
}

func (e *InvalidAmountError) Error() string {
	return "invalid amount: " + e.Reason
}

// PayloadTooLargeError reports an assembled payload over the 331-byte
// Girocode maximum.
type PayloadTooLargeError struct {
	Actual int
	Max    int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("payload is %d bytes, at most %d allowed", e.Actual, e.Max)
}
