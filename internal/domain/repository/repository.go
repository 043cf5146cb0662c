package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/girohub/epc-qr/internal/domain/entity"
)

// ErrNotFound is returned when no payment request exists for an id.
var ErrNotFound = errors.New("payment request not found")

type PaymentRequestRepository interface {
	Create(ctx context.Context, req *entity.PaymentRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentRequest, error)
}
