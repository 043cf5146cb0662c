package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/girohub/epc-qr/internal/epc"
)

// PaymentRequest is a registered SEPA credit transfer whose QR code can
// be served repeatedly, e.g. from an invoice link or a printed payment
// slip.
type PaymentRequest struct {
	id        uuid.UUID
	record    epc.PaymentRecord
	createdAt time.Time
}

// NewPaymentRequest validates the record by building its payload once
// and assigns a fresh id. Invalid records never reach the store.
func NewPaymentRequest(record epc.PaymentRecord) (*PaymentRequest, error) {
	if _, err := epc.Build(record); err != nil {
		return nil, err
	}
	return &PaymentRequest{
		id:        uuid.New(),
		record:    record,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructPaymentRequest rebuilds an entity from stored state
// without re-validating.
func ReconstructPaymentRequest(id uuid.UUID, record epc.PaymentRecord, createdAt time.Time) *PaymentRequest {
	return &PaymentRequest{id: id, record: record, createdAt: createdAt}
}

func (p *PaymentRequest) ID() uuid.UUID {
	return p.id
}

func (p *PaymentRequest) Record() epc.PaymentRecord {
	return p.record
}

func (p *PaymentRequest) CreatedAt() time.Time {
	return p.createdAt
}
