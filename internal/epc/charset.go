package epc

import (
	"strconv"
	"strings"
	"unicode"
)

// Charset is the character-set code declared on line 3 of the payload,
// one of the eight sets enumerated by EPC069-12.
type Charset int

const (
	CharsetUTF8       Charset = 1
	CharsetISO8859_1  Charset = 2
	CharsetISO8859_2  Charset = 3
	CharsetISO8859_4  Charset = 4
	CharsetISO8859_5  Charset = 5
	CharsetISO8859_7  Charset = 6
	CharsetISO8859_10 Charset = 7
	CharsetISO8859_15 Charset = 8
)

// String returns the digit emitted on the payload's character-set line.
func (c Charset) String() string {
	return strconv.Itoa(int(c))
}

// CharsetSelection is the policy for choosing the declared character
// set.
type CharsetSelection int

const (
	// SelectUTF8 always declares UTF-8, regardless of content.
	SelectUTF8 CharsetSelection = iota

	// SelectAuto declares ISO 8859-1 when every text field is plain
	// ASCII and UTF-8 otherwise. ASCII bytes are identical in both
	// sets, so the declared set always matches the emitted bytes.
	SelectAuto
)

// Punctuation permitted by the EPC basic (SWIFT) character set, besides
// letters, digits and space.
const basicPunctuation = `/-?:().,'+ `

// permittedRune reports whether r may appear in a free-text payload
// field. The basic SWIFT set is always allowed; graphic characters
// beyond ASCII (umlauts, accents) are allowed and force the UTF-8
// character set. Control characters, including the line terminator,
// and ASCII punctuation outside the SWIFT set are rejected.
func permittedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case strings.ContainsRune(basicPunctuation, r):
		return true
	case r > unicode.MaxASCII:
		return unicode.IsGraphic(r)
	default:
		return false
	}
}

// checkCharset scans left to right and reports the first disallowed
// rune, so the same invalid input always yields the same error.
func checkCharset(field, value string) error {
	for i, r := range []rune(value) {
		if !permittedRune(r) {
			return &InvalidCharacterError{Field: field, Char: r, Position: i}
		}
	}
	return nil
}

// asciiOnly reports whether every rune of every text field fits in
// plain ASCII, which is what lets SelectAuto declare ISO 8859-1.
func asciiOnly(rec PaymentRecord) bool {
	for _, s := range []string{
		rec.BeneficiaryName,
		rec.RemittanceReference,
		rec.RemittanceText,
		rec.InformationText,
	} {
		for _, r := range s {
			if r > unicode.MaxASCII {
				return false
			}
		}
	}
	return true
}

// selectCharset applies the configured policy to the validated record.
func selectCharset(policy CharsetSelection, rec PaymentRecord) Charset {
	if policy == SelectAuto && asciiOnly(rec) {
		return CharsetISO8859_1
	}
	return CharsetUTF8
}
