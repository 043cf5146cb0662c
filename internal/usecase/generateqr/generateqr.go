package generateqr

import (
	"time"

	"github.com/girohub/epc-qr/internal/domain/qrcode"
	"github.com/girohub/epc-qr/internal/epc"
	"github.com/girohub/epc-qr/internal/metrics"
)

type Request struct {
	Record epc.PaymentRecord
	Format qrcode.Format
	Size   int
}

type Response struct {
	Image   []byte
	Payload string
	Charset epc.Charset
}

type UseCase struct {
	builder   *epc.Builder
	generator qrcode.Generator
	metrics   *metrics.Metrics
}

func NewUseCase(builder *epc.Builder, generator qrcode.Generator, m *metrics.Metrics) *UseCase {
	return &UseCase{builder: builder, generator: generator, metrics: m}
}

// Execute builds the canonical payload for the record and renders it
// into a QR image. A validation failure aborts before any rendering;
// no partial payload ever reaches the generator.
func (uc *UseCase) Execute(req Request) (*Response, error) {
	payload, err := uc.Payload(req.Record)
	if err != nil {
		return nil, err
	}

	format := req.Format
	if format == "" {
		format = qrcode.FormatPNG
	}

	start := time.Now()
	img, err := uc.generator.Generate(payload.String(), format, req.Size)
	if err != nil {
		return nil, err
	}
	uc.metrics.ObserveRender(string(format), start)

	return &Response{
		Image:   img,
		Payload: payload.String(),
		Charset: payload.Charset(),
	}, nil
}

// Payload builds the canonical payload without rendering, for callers
// that want the raw text block.
func (uc *UseCase) Payload(rec epc.PaymentRecord) (*epc.Payload, error) {
	payload, err := uc.builder.Build(rec)
	if err != nil {
		uc.metrics.IncBuildFailure(epc.ErrorKind(err))
		return nil, err
	}
	uc.metrics.IncPayloadBuilt()
	return payload, nil
}
