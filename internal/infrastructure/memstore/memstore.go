// Package memstore holds an in-memory PaymentRequestRepository for
// tests and for running the service without a database.
package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/girohub/epc-qr/internal/domain/entity"
	"github.com/girohub/epc-qr/internal/domain/repository"
)

type PaymentRequestRepo struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*entity.PaymentRequest
}

func NewPaymentRequestRepo() *PaymentRequestRepo {
	return &PaymentRequestRepo{byID: make(map[uuid.UUID]*entity.PaymentRequest)}
}

func (r *PaymentRequestRepo) Create(_ context.Context, req *entity.PaymentRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[req.ID()] = req
	return nil
}

func (r *PaymentRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PaymentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return req, nil
}
