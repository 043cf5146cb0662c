package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/girohub/epc-qr/internal/domain/entity"
	"github.com/girohub/epc-qr/internal/domain/qrcode"
	"github.com/girohub/epc-qr/internal/domain/repository"
	"github.com/girohub/epc-qr/internal/epc"
	"github.com/girohub/epc-qr/internal/usecase/generateqr"
	"github.com/girohub/epc-qr/internal/usecase/requests"
)

type Handler struct {
	generateQRUC *generateqr.UseCase
	requestsUC   *requests.UseCase
}

func NewHandler(generateQRUC *generateqr.UseCase, requestsUC *requests.UseCase) *Handler {
	return &Handler{
		generateQRUC: generateQRUC,
		requestsUC:   requestsUC,
	}
}

// PaymentRecordBody is the JSON shape of a payment record. Amount is a
// decimal string such as "12.50".
type PaymentRecordBody struct {
	BeneficiaryName     string `json:"beneficiary_name"`
	IBAN                string `json:"iban"`
	BIC                 string `json:"bic,omitempty"`
	Amount              string `json:"amount,omitempty"`
	PurposeCode         string `json:"purpose_code,omitempty"`
	RemittanceReference string `json:"remittance_reference,omitempty"`
	RemittanceText      string `json:"remittance_text,omitempty"`
	InformationText     string `json:"information_text,omitempty"`
}

type CreateRequestResponse struct {
	ID        string `json:"id"`
	Payload   string `json:"payload"`
	CreatedAt string `json:"created_at"`
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func (b PaymentRecordBody) toRecord() (epc.PaymentRecord, error) {
	rec := epc.PaymentRecord{
		BeneficiaryName:     b.BeneficiaryName,
		IBAN:                b.IBAN,
		BIC:                 b.BIC,
		PurposeCode:         b.PurposeCode,
		RemittanceReference: b.RemittanceReference,
		RemittanceText:      b.RemittanceText,
		InformationText:     b.InformationText,
	}
	if b.Amount != "" {
		amount, err := epc.ParseAmount(b.Amount)
		if err != nil {
			return epc.PaymentRecord{}, err
		}
		rec.Amount = &amount
	}
	return rec, nil
}

func recordFromQuery(r *http.Request) (epc.PaymentRecord, error) {
	q := r.URL.Query()
	return PaymentRecordBody{
		BeneficiaryName:     q.Get("name"),
		IBAN:                q.Get("iban"),
		BIC:                 q.Get("bic"),
		Amount:              q.Get("amount"),
		PurposeCode:         q.Get("purpose"),
		RemittanceReference: q.Get("reference"),
		RemittanceText:      q.Get("text"),
		InformationText:     q.Get("info"),
	}.toRecord()
}

// HandleRenderQR renders a QR image for the record in the request body.
func (h *Handler) HandleRenderQR(w http.ResponseWriter, r *http.Request) {
	var body PaymentRecordBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}

	rec, err := body.toRecord()
	if err != nil {
		writeBuildError(w, err)
		return
	}

	h.renderQR(w, r, rec)
}

// HandlePayloadPreview returns the canonical payload text without
// rendering an image.
func (h *Handler) HandlePayloadPreview(w http.ResponseWriter, r *http.Request) {
	rec, err := recordFromQuery(r)
	if err != nil {
		writeBuildError(w, err)
		return
	}

	payload, err := h.generateQRUC.Payload(rec)
	if err != nil {
		writeBuildError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(payload.Bytes())
}

// HandleCreateRequest stores a payment request for later QR serving.
func (h *Handler) HandleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var body PaymentRecordBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}

	rec, err := body.toRecord()
	if err != nil {
		writeBuildError(w, err)
		return
	}

	req, err := h.requestsUC.Create(r.Context(), rec)
	if err != nil {
		writeBuildError(w, err)
		return
	}

	payload, err := h.generateQRUC.Payload(req.Record())
	if err != nil {
		writeError(w, http.StatusInternalServerError, errorBody{Error: "payload build failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(CreateRequestResponse{
		ID:        req.ID().String(),
		Payload:   payload.String(),
		CreatedAt: req.CreatedAt().Format(time.RFC3339),
	})
}

// HandleGetRequest returns the stored record for an id.
func (h *Handler) HandleGetRequest(w http.ResponseWriter, r *http.Request) {
	req, ok := h.lookupRequest(w, r)
	if !ok {
		return
	}

	rec := req.Record()
	body := PaymentRecordBody{
		BeneficiaryName:     rec.BeneficiaryName,
		IBAN:                rec.IBAN,
		BIC:                 rec.BIC,
		PurposeCode:         rec.PurposeCode,
		RemittanceReference: rec.RemittanceReference,
		RemittanceText:      rec.RemittanceText,
		InformationText:     rec.InformationText,
	}
	if rec.Amount != nil {
		body.Amount = rec.Amount.String()
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

// HandleRequestQR renders the QR image for a stored payment request.
func (h *Handler) HandleRequestQR(w http.ResponseWriter, r *http.Request) {
	req, ok := h.lookupRequest(w, r)
	if !ok {
		return
	}

	h.renderQR(w, r, req.Record())
}

func (h *Handler) lookupRequest(w http.ResponseWriter, r *http.Request) (*entity.PaymentRequest, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errorBody{Error: "invalid request id"})
		return nil, false
	}

	stored, err := h.requestsUC.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, errorBody{Error: "payment request not found"})
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, errorBody{Error: "lookup failed"})
		return nil, false
	}
	return stored, true
}

func (h *Handler) renderQR(w http.ResponseWriter, r *http.Request, rec epc.PaymentRecord) {
	format := qrcode.FormatPNG
	if f := r.URL.Query().Get("format"); f != "" {
		parsed, ok := qrcode.ParseFormat(f)
		if !ok {
			writeError(w, http.StatusBadRequest, errorBody{Error: "unsupported image format"})
			return
		}
		format = parsed
	}

	size := 0
	if s := r.URL.Query().Get("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, errorBody{Error: "invalid size"})
			return
		}
		size = n
	}

	resp, err := h.generateQRUC.Execute(generateqr.Request{
		Record: rec,
		Format: format,
		Size:   size,
	})
	if err != nil {
		if epc.IsValidationError(err) {
			writeBuildError(w, err)
			return
		}
		writeError(w, http.StatusInternalServerError, errorBody{Error: "qr generation failed"})
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(resp.Image)
}

func contentType(format qrcode.Format) string {
	if format == qrcode.FormatQOI {
		return "image/qoi"
	}
	return "image/png"
}

func writeBuildError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, errorBody{Error: err.Error(), Kind: epc.ErrorKind(err)})
}

func writeError(w http.ResponseWriter, status int, body errorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
