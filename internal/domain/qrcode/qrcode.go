package qrcode

// Format selects the image codec for a rendered QR code.
type Format string

const (
	FormatPNG Format = "png"
	FormatQOI Format = "qoi"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatPNG:
		return FormatPNG, true
	case FormatQOI:
		return FormatQOI, true
	}
	return "", false
}

// Generator renders a finished EPC payload into a QR code image. The
// payload must be submitted byte for byte: the character set declared
// on line 3 of the payload has to match the bytes the QR code carries.
type Generator interface {
	Generate(payload string, format Format, size int) ([]byte, error)
}
