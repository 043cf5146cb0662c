package requests

import (
	"context"

	"github.com/google/uuid"

	"github.com/girohub/epc-qr/internal/domain/entity"
	"github.com/girohub/epc-qr/internal/domain/repository"
	"github.com/girohub/epc-qr/internal/epc"
)

// UseCase registers payment requests and looks them up for QR serving.
type UseCase struct {
	repo repository.PaymentRequestRepository
}

func NewUseCase(repo repository.PaymentRequestRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create validates the record, stores it and returns the new entity.
func (uc *UseCase) Create(ctx context.Context, rec epc.PaymentRecord) (*entity.PaymentRequest, error) {
	req, err := entity.NewPaymentRequest(rec)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// Get returns the stored payment request for id, or
// repository.ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, id uuid.UUID) (*entity.PaymentRequest, error) {
	return uc.repo.FindByID(ctx, id)
}
