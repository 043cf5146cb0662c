package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/girohub/epc-qr/internal/domain/entity"
	"github.com/girohub/epc-qr/internal/domain/repository"
	"github.com/girohub/epc-qr/internal/epc"
)

type PaymentRequestRepo struct {
	pool *pgxpool.Pool
}

func NewPaymentRequestRepo(pool *pgxpool.Pool) *PaymentRequestRepo {
	return &PaymentRequestRepo{pool: pool}
}

func (r *PaymentRequestRepo) Create(ctx context.Context, req *entity.PaymentRequest) error {
	rec := req.Record()

	var amountCents *int64
	if rec.Amount != nil {
		cents := rec.Amount.Euro()*100 + rec.Amount.Cent()
		amountCents = &cents
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO payment_requests
		 (id, beneficiary_name, iban, bic, amount_cents, purpose_code,
		  remittance_reference, remittance_text, information_text, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		req.ID(), rec.BeneficiaryName, rec.IBAN, rec.BIC, amountCents,
		rec.PurposeCode, rec.RemittanceReference, rec.RemittanceText,
		rec.InformationText, req.CreatedAt(),
	)
	return err
}

func (r *PaymentRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentRequest, error) {
	var (
		rec         epc.PaymentRecord
		amountCents *int64
		createdAt   time.Time
	)
	err := r.pool.QueryRow(ctx,
		`SELECT beneficiary_name, iban, bic, amount_cents, purpose_code,
		        remittance_reference, remittance_text, information_text, created_at
		 FROM payment_requests WHERE id = $1`,
		id,
	).Scan(
		&rec.BeneficiaryName, &rec.IBAN, &rec.BIC, &amountCents,
		&rec.PurposeCode, &rec.RemittanceReference, &rec.RemittanceText,
		&rec.InformationText, &createdAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if amountCents != nil {
		amount, err := epc.NewAmount(*amountCents/100, *amountCents%100)
		if err != nil {
			return nil, err
		}
		rec.Amount = &amount
	}

	return entity.ReconstructPaymentRequest(id, rec, createdAt), nil
}
