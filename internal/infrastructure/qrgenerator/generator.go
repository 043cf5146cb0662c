package qrgenerator

import (
	"bytes"
	"fmt"

	qr "github.com/skip2/go-qrcode"
	"github.com/xfmoulet/qoi"

	"github.com/girohub/epc-qr/internal/domain/qrcode"
)

// Generator renders EPC payloads with skip2/go-qrcode at medium error
// correction, the level EPC069-12 recommends for Girocodes.
type Generator struct {
	size int
}

// NewGenerator returns a Generator with the given default pixel size,
// used when a request does not pick its own.
func NewGenerator(size int) *Generator {
	return &Generator{size: size}
}

func (g *Generator) Generate(payload string, format qrcode.Format, size int) ([]byte, error) {
	if size <= 0 {
		size = g.size
	}

	switch format {
	case qrcode.FormatPNG, "":
		return qr.Encode(payload, qr.Medium, size)
	case qrcode.FormatQOI:
		code, err := qr.New(payload, qr.Medium)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := qoi.Encode(&buf, code.Image(size)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
}
