package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/skylift-cargo/pricing-api/internal/domain"
	"github.com/skylift-cargo/pricing-api/internal/engine"
	"github.com/skylift-cargo/pricing-api/internal/platform/httpx"
	"github.com/skylift-cargo/pricing-api/internal/services"
)

const maxPricingRequestBody = 256 * 1024

var (
	errEmptyBody    = errors.New("request body is empty")
	errBodyTooLarge = errors.New("request body too large")
)

// PricingService prices one airwaybill against the pricing engine.
type PricingService interface {
	PriceAirwaybill(ctx context.Context, cmd services.PriceAirwaybillCommand) (domain.PricingResult, error)
}

// PricingHandlers exposes the airwaybill pricing endpoint.
type PricingHandlers struct {
	pricing PricingService
}

// NewPricingHandlers constructs a pricing handler set.
func NewPricingHandlers(svc PricingService) *PricingHandlers {
	return &PricingHandlers{pricing: svc}
}

// Routes registers the pricing endpoints beneath /airwaybills.
func (h *PricingHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/{awbID}/price", h.price)
}

type priceRequest struct {
	RequestType   string                     `json:"requestType"`
	Consolidation bool                       `json:"consolidation"`
	Operation     string                     `json:"operation"`
	RatingLines   []domain.RatingLineRequest `json:"ratingLines"`
	Warnings      []domain.Warning           `json:"warnings,omitempty"`
}

func (h *PricingHandlers) price(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.pricing == nil {
		httpx.WriteError(ctx, w, httpx.NewError("service_unavailable", "pricing service not available", http.StatusServiceUnavailable))
		return
	}

	awbID := strings.TrimSpace(chi.URLParam(r, "awbID"))
	if awbID == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "airwaybill id is required", http.StatusBadRequest))
		return
	}

	body, err := readLimitedBody(r, maxPricingRequestBody)
	if err != nil {
		switch {
		case errors.Is(err, errBodyTooLarge):
			httpx.WriteError(ctx, w, httpx.NewError("payload_too_large", "request body exceeds allowed size", http.StatusRequestEntityTooLarge))
		case errors.Is(err, errEmptyBody):
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body is required", http.StatusBadRequest))
		default:
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
		}
		return
	}

	var req priceRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "invalid JSON payload", http.StatusBadRequest))
		return
	}
	if strings.TrimSpace(req.RequestType) == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "requestType is required", http.StatusBadRequest))
		return
	}

	cmd := services.PriceAirwaybillCommand{
		AirwaybillID:  awbID,
		Consolidation: req.Consolidation,
		Operation:     domain.Operation(strings.ToUpper(strings.TrimSpace(req.Operation))),
		Request: &domain.RatingRequest{
			RequestType: req.RequestType,
			RatingLines: req.RatingLines,
		},
		Warnings: req.Warnings,
	}

	result, err := h.pricing.PriceAirwaybill(ctx, cmd)
	if err != nil {
		writePricingError(ctx, w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, result)
}

func writePricingError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrPricingEngine):
		httpx.WriteError(ctx, w, httpx.NewError("pricing_engine_failed", err.Error(), http.StatusBadGateway))
	case errors.Is(err, engine.ErrCalculateFailed):
		httpx.WriteError(ctx, w, httpx.NewError("pricing_engine_unreachable", err.Error(), http.StatusBadGateway))
	case errors.Is(err, services.ErrMissingLineNumber):
		httpx.WriteError(ctx, w, httpx.NewError("pricing_line_missing", err.Error(), http.StatusBadGateway))
	case errors.Is(err, services.ErrUnrecognizedEnum):
		httpx.WriteError(ctx, w, httpx.NewError("unrecognized_value", err.Error(), http.StatusBadGateway))
	case errors.Is(err, services.ErrUnsupportedRequestType):
		httpx.WriteError(ctx, w, httpx.NewError("unsupported_request_type", err.Error(), http.StatusUnprocessableEntity))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("internal_error", "failed to price airwaybill", http.StatusInternalServerError))
	}
}

func readLimitedBody(r *http.Request, limit int64) ([]byte, error) {
	if r == nil || r.Body == nil {
		return nil, errEmptyBody
	}
	if limit <= 0 {
		limit = maxPricingRequestBody
	}
	reader := io.LimitReader(r.Body, limit+1)
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errEmptyBody
	}
	if int64(len(data)) > limit {
		return nil, errBodyTooLarge
	}
	return data, nil
}

func writeJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
