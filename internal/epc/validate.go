package epc

import "unicode/utf8"

// validate runs every field check in the fixed order version → BIC →
// name → IBAN → amount → purpose → remittance → information and stops
// at the first failure, so an invalid record always reports the same
// error.
func validate(rec PaymentRecord, version Version) error {
	if version == Version1 && rec.BIC == "" {
		return ErrIncompatibleVersionForMissingBIC
	}

	if rec.BIC != "" {
		if err := validateBIC(rec.BIC); err != nil {
			return err
		}
	}

	if rec.BeneficiaryName == "" {
		return &RequiredFieldError{Field: FieldBeneficiaryName}
	}
	if err := checkTextField(FieldBeneficiaryName, rec.BeneficiaryName, maxNameLen); err != nil {
		return err
	}

	if rec.IBAN == "" {
		return &RequiredFieldError{Field: FieldIBAN}
	}
	if err := validateIBAN(rec.IBAN); err != nil {
		return err
	}

	if rec.Amount != nil {
		if _, err := NewAmount(rec.Amount.euro, rec.Amount.cent); err != nil {
			return err
		}
	}

	if rec.PurposeCode != "" {
		if err := validatePurpose(rec.PurposeCode); err != nil {
			return err
		}
	}

	if rec.RemittanceReference != "" && rec.RemittanceText != "" {
		return ErrConflictingRemittanceFields
	}
	if rec.RemittanceReference != "" {
		if err := checkTextField(FieldRemittanceReference, rec.RemittanceReference, maxReferenceLen); err != nil {
			return err
		}
	}
	if rec.RemittanceText != "" {
		if err := checkTextField(FieldRemittanceText, rec.RemittanceText, maxTextLen); err != nil {
			return err
		}
	}

	if rec.InformationText != "" {
		if err := checkTextField(FieldInformationText, rec.InformationText, maxInfoLen); err != nil {
			return err
		}
	}

	return nil
}

// checkTextField enforces the length bound, then scans the character
// set. Lengths count runes, the byte ceiling is enforced on the
// assembled payload.
func checkTextField(field, value string, maxLen int) error {
	if n := utf8.RuneCountInString(value); n > maxLen {
		return &FieldTooLongError{Field: field, Max: maxLen, Actual: n}
	}
	return checkCharset(field, value)
}

// validatePurpose accepts 1-4 uppercase letters, the shape of the SEPA
// purpose-code list. Codes are not looked up against the registry.
func validatePurpose(code string) error {
	runes := []rune(code)
	if len(runes) > maxPurposeLen {
		return &FieldTooLongError{Field: FieldPurposeCode, Max: maxPurposeLen, Actual: len(runes)}
	}
	for i, r := range runes {
		if r < 'A' || r > 'Z' {
			return &InvalidCharacterError{Field: FieldPurposeCode, Char: r, Position: i}
		}
	}
	return nil
}
