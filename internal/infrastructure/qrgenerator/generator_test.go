package qrgenerator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girohub/epc-qr/internal/domain/qrcode"
	"github.com/girohub/epc-qr/internal/infrastructure/qrgenerator"
)

const payload = "BCD\n002\n1\nSCT\n\nMax Mustermann\nDE02120300000000202051\nEUR12.50"

func TestGenerate_PNG(t *testing.T) {
	g := qrgenerator.NewGenerator(256)

	img, err := g.Generate(payload, qrcode.FormatPNG, 0)
	require.NoError(t, err)
	require.NotEmpty(t, img)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), img[:8])
}

func TestGenerate_QOI(t *testing.T) {
	g := qrgenerator.NewGenerator(256)

	img, err := g.Generate(payload, qrcode.FormatQOI, 128)
	require.NoError(t, err)
	require.NotEmpty(t, img)
	assert.Equal(t, []byte("qoif"), img[:4])
}

func TestGenerate_UnknownFormat(t *testing.T) {
	g := qrgenerator.NewGenerator(256)

	_, err := g.Generate(payload, "bmp", 0)
	assert.Error(t, err)
}
