package epc

import "errors"

// Validation failure kinds, used for error reporting and metrics
// labels.
const (
	KindFieldTooLong          = "fieldTooLong"
	KindRequiredField         = "requiredField"
	KindInvalidCharacter      = "invalidCharacter"
	KindInvalidIBAN           = "invalidIban"
	KindInvalidBIC            = "invalidBic"
	KindInvalidAmount         = "invalidAmount"
	KindConflictingRemittance = "conflictingRemittanceFields"
	KindIncompatibleVersion   = "incompatibleVersionForMissingBic"
	KindPayloadTooLarge       = "payloadTooLarge"
	KindUnknown               = "unknown"
)

// ErrorKind classifies a Build error into its failure kind.
func ErrorKind(err error) string {
	var (
		tooLong  *FieldTooLongError
		required *RequiredFieldError
		badChar  *InvalidCharacterError
		badIBAN  *InvalidIBANError
		badBIC   *InvalidBICError
		badAmt   *InvalidAmountError
		tooLarge *PayloadTooLargeError
	)
	switch {
	case errors.As(err, &tooLong):
		return KindFieldTooLong
	case errors.As(err, &required):
		return KindRequiredField
	case errors.As(err, &badChar):
		return KindInvalidCharacter
	case errors.As(err, &badIBAN):
		return KindInvalidIBAN
	case errors.As(err, &badBIC):
		return KindInvalidBIC
	case errors.As(err, &badAmt):
		return KindInvalidAmount
	case errors.Is(err, ErrConflictingRemittanceFields):
		return KindConflictingRemittance
	case errors.Is(err, ErrIncompatibleVersionForMissingBIC):
		return KindIncompatibleVersion
	case errors.As(err, &tooLarge):
		return KindPayloadTooLarge
	default:
		return KindUnknown
	}
}

// IsValidationError reports whether err is one of the closed set of
// input validation failures, as opposed to an infrastructure error.
func IsValidationError(err error) bool {
	return ErrorKind(err) != KindUnknown
}
