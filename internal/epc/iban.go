package epc

// ibanLengths maps ISO 3166 country codes to the IBAN length registered
// for that country. Countries missing from the table still get the
// charset and mod-97 checks.
var ibanLengths = map[string]int{
	"AD": 24, "AE": 23, "AL": 28, "AT": 20, "AZ": 28,
	"BA": 20, "BE": 16, "BG": 22, "BH": 22, "BR": 29, "BY": 28,
	"CH": 21, "CR": 22, "CY": 28, "CZ": 24,
	"DE": 22, "DK": 18, "DO": 28,
	"EE": 20, "EG": 29, "ES": 24,
	"FI": 18, "FO": 18, "FR": 27,
	"GB": 22, "GE": 22, "GI": 23, "GL": 18, "GR": 27, "GT": 28,
	"HR": 21, "HU": 28,
	"IE": 22, "IL": 23, "IQ": 23, "IS": 26, "IT": 27,
	"JO": 30,
	"KW": 30, "KZ": 20,
	"LB": 28, "LC": 32, "LI": 21, "LT": 20, "LU": 20, "LV": 21,
	"MC": 27, "MD": 24, "ME": 22, "MK": 19, "MR": 27, "MT": 31, "MU": 30,
	"NL": 18, "NO": 15,
	"PK": 24, "PL": 28, "PS": 29, "PT": 25,
	"QA": 29,
	"RO": 24, "RS": 22,
	"SA": 24, "SE": 24, "SI": 19, "SK": 24, "SM": 27, "ST": 25, "SV": 28,
	"TL": 23, "TN": 24, "TR": 26,
	"UA": 29,
	"VA": 22, "VG": 24,
	"XK": 20,
}

// validateIBAN performs the structural checks and the ISO 7064 mod-97
// checksum. The IBAN must arrive without spaces; callers that accept
// the paper format strip them first.
func validateIBAN(iban string) error {
	if len(iban) < 5 {
		return &InvalidIBANError{Reason: IBANReasonTooShort}
	}
	if len(iban) > maxIBANLen {
		return &InvalidIBANError{Reason: IBANReasonTooLong}
	}
	for i := 0; i < len(iban); i++ {
		c := iban[i]
		switch {
		case i < 2 && !(c >= 'A' && c <= 'Z'):
			// country code
			return &InvalidIBANError{Reason: IBANReasonNonAlphanumeric}
		case i >= 2 && i < 4 && !(c >= '0' && c <= '9'):
			// check digits
			return &InvalidIBANError{Reason: IBANReasonNonAlphanumeric}
		case !(c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'):
			return &InvalidIBANError{Reason: IBANReasonNonAlphanumeric}
		}
	}
	if want, ok := ibanLengths[iban[:2]]; ok && len(iban) != want {
		return &InvalidIBANError{Reason: IBANReasonCountryLength}
	}
	if mod97(iban[4:]+iban[:4]) != 1 {
		return &InvalidIBANError{Reason: IBANReasonChecksum}
	}
	return nil
}

// mod97 computes the ISO 7064 remainder of the rearranged IBAN, with
// letters substituted by 10-35.
func mod97(s string) int {
	rem := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			v := int(c-'A') + 10
			rem = (rem*100 + v) % 97
		} else {
			rem = (rem*10 + int(c-'0')) % 97
		}
	}
	return rem
}

// validateBIC checks the SWIFT code structure: 4-letter bank code,
// 2-letter country code, 2 alphanumeric location characters and an
// optional 3-character branch code.
func validateBIC(bic string) error {
	if len(bic) != 8 && len(bic) != 11 {
		return &InvalidBICError{Reason: BICReasonLength}
	}
	for i := 0; i < len(bic); i++ {
		c := bic[i]
		letter := c >= 'A' && c <= 'Z'
		digit := c >= '0' && c <= '9'
		if i < 6 {
			if !letter {
				return &InvalidBICError{Reason: BICReasonStructure}
			}
		} else if !letter && !digit {
			return &InvalidBICError{Reason: BICReasonStructure}
		}
	}
	return nil
}
