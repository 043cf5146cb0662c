// Package epc builds and validates EPC069-12 (Girocode) payloads for
// SEPA credit transfers. The payload is the newline-delimited text block
// that banking apps scan to pre-fill a transfer.
package epc

// Field names as reported in validation errors.
const (
	FieldBeneficiaryName     = "beneficiaryName"
	FieldIBAN                = "iban"
	FieldBIC                 = "bic"
	FieldPurposeCode         = "purposeCode"
	FieldRemittanceReference = "remittanceReference"
	FieldRemittanceText      = "remittanceText"
	FieldInformationText     = "informationText"
)

// Upper bounds per EPC069-12.
const (
	maxNameLen      = 70
	maxPurposeLen   = 4
	maxReferenceLen = 35
	maxTextLen      = 140
	maxInfoLen      = 70
	maxIBANLen      = 34
)

// PaymentRecord holds one SEPA credit transfer to encode. Optional
// fields are left empty (or nil for Amount). The record is read-only
// for the duration of a Build call.
type PaymentRecord struct {
	// BeneficiaryName is the account holder receiving the transfer
	// (AT-21, max 70 characters).
	BeneficiaryName string

	// IBAN of the beneficiary account (AT-20). Only IBAN addressing
	// is allowed in an EPC QR code.
	IBAN string

	// BIC of the beneficiary bank (AT-23). Mandatory for version 001
	// payloads, optional for version 002 inside the EEA.
	BIC string

	// Amount in EUR (AT-04), 0.01 to 999999999.99. Nil means the
	// payer fills in the amount.
	Amount *Amount

	// PurposeCode is the SEPA purpose of the transfer (AT-44),
	// up to 4 uppercase letters.
	PurposeCode string

	// RemittanceReference is a structured creditor reference
	// (AT-05, max 35 characters). Mutually exclusive with
	// RemittanceText.
	RemittanceReference string

	// RemittanceText is unstructured remittance information
	// (AT-05, max 140 characters). Mutually exclusive with
	// RemittanceReference.
	RemittanceText string

	// InformationText is beneficiary-to-originator information
	// shown to the payer (max 70 characters).
	InformationText string
}
