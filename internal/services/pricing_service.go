package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/skylift-cargo/pricing-api/internal/domain"
	"github.com/skylift-cargo/pricing-api/internal/engine"
)

var (
	// ErrPricingEngine is returned when the engine reports a non-2xx status
	// or sends an empty response; the wrapped message carries the status code
	// and a dump of the raw payload.
	ErrPricingEngine = errors.New("pricing: engine found no rates or returned an empty response")
	// ErrMissingLineNumber is returned when a priced sell rate arrives
	// without a usable line number. The whole transformation is aborted.
	ErrMissingLineNumber = errors.New("pricing: sell rate line number missing")
	// ErrUnsupportedRequestType is returned when the caller-supplied request
	// type has no mapped calculation mode.
	ErrUnsupportedRequestType = errors.New("pricing: unsupported request type")
	// ErrUnrecognizedEnum is returned when a code in the engine response has
	// no mapped enum constant (adhoc reference type).
	ErrUnrecognizedEnum = errors.New("pricing: unrecognized enum value")
)

// PricingEngineClient is the outbound boundary to the pricing engine.
type PricingEngineClient interface {
	CalculatePrice(ctx context.Context, param engine.Parameter) (engine.Result, error)
}

// HouseWaybillCounter looks up the house-waybill count for an airwaybill.
type HouseWaybillCounter interface {
	HouseWaybillCount(ctx context.Context, airwaybillID string) (*int, error)
}

// PriceAirwaybillCommand bundles one pricing invocation. Warnings seeds the
// accumulator that collected warnings are appended to.
type PriceAirwaybillCommand struct {
	AirwaybillID  string
	Consolidation bool
	Operation     domain.Operation
	Request       *domain.RatingRequest
	Warnings      []domain.Warning
}

// PricingService invokes the pricing engine for an airwaybill and normalizes
// its response into the domain pricing model. One call handles exactly one
// request/response cycle; nothing is shared across calls.
type PricingService struct {
	engine PricingEngineClient
	hawb   HouseWaybillCounter
	newRef func() string
	logger func(context.Context, string, map[string]any)
}

// PricingServiceDeps lists the collaborators of the pricing service.
type PricingServiceDeps struct {
	Engine    PricingEngineClient
	HAWBCount HouseWaybillCounter
	NewRef    func() string
	Logger    func(context.Context, string, map[string]any)
}

// NewPricingService validates the dependencies and builds a pricing service.
func NewPricingService(deps PricingServiceDeps) (*PricingService, error) {
	if deps.Engine == nil {
		return nil, errors.New("pricing service: engine client is required")
	}
	if deps.HAWBCount == nil {
		return nil, errors.New("pricing service: house waybill counter is required")
	}
	newRef := deps.NewRef
	if newRef == nil {
		newRef = func() string { return "" }
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &PricingService{
		engine: deps.Engine,
		hawb:   deps.HAWBCount,
		newRef: newRef,
		logger: logger,
	}, nil
}

// PriceAirwaybill builds the engine request, performs the engine call, and
// normalizes the response. There is no partial-result mode: either the full
// normalized result is produced or an error is returned.
func (s *PricingService) PriceAirwaybill(ctx context.Context, cmd PriceAirwaybillCommand) (domain.PricingResult, error) {
	if cmd.Request == nil {
		return domain.PricingResult{}, errors.New("pricing service: rating request is required")
	}

	param, err := s.buildEngineRequest(ctx, cmd)
	if err != nil {
		return domain.PricingResult{}, err
	}

	res, err := s.engine.CalculatePrice(ctx, param)
	if err != nil {
		return domain.PricingResult{}, err
	}
	if !res.IsSuccess() || !res.HasBody() {
		return domain.PricingResult{}, fmt.Errorf("%w: status %d, response %s",
			ErrPricingEngine, res.StatusCode, string(res.Raw))
	}

	s.logger(ctx, "pricing_engine_response", map[string]any{
		"airwaybillId": cmd.AirwaybillID,
		"status":       res.StatusCode,
		"sellRates":    len(res.Body.PricedSellRates),
		"rateLines":    len(res.Body.PricedIATARateLines),
	})

	return s.normalize(ctx, cmd, res.Body, res.Raw)
}

// buildEngineRequest maps the domain rating request onto the engine request
// shape, numbering the rating lines and attaching channel, calculation mode,
// and the consolidation house-waybill count when applicable.
func (s *PricingService) buildEngineRequest(ctx context.Context, cmd PriceAirwaybillCommand) (engine.Parameter, error) {
	numberRatingLines(cmd.Request.RatingLines)

	param := engine.Parameter{
		AirwaybillID:     cmd.AirwaybillID,
		PricingReference: s.newRef(),
		RequestChannel:   engine.RequestChannelAWB,
		RatingLines:      engineRatingLines(cmd.Request.RatingLines),
	}

	toCalculate, ok := engine.ToCalculateFromValue(cmd.Request.RequestType)
	if !ok {
		return engine.Parameter{}, fmt.Errorf("%w: %q", ErrUnsupportedRequestType, cmd.Request.RequestType)
	}
	param.ToCalculate = toCalculate

	if cmd.Consolidation && cmd.Operation == domain.OperationAWBUpdate {
		count, err := s.hawb.HouseWaybillCount(ctx, cmd.AirwaybillID)
		if err != nil {
			return engine.Parameter{}, err
		}
		hawbCount := 0
		if count != nil {
			hawbCount = *count
		}
		param.HAWBCount = &hawbCount
		s.logger(ctx, "consolidation_hawb_count", map[string]any{
			"airwaybillId": cmd.AirwaybillID,
			"hawbCount":    hawbCount,
		})
	}

	return param, nil
}

// numberRatingLines stamps 1-based sequential line numbers onto the rating
// lines in submission order, overwriting whatever was there before.
func numberRatingLines(lines []domain.RatingLineRequest) {
	for i := range lines {
		lines[i].LineNumber = strconv.Itoa(i + 1)
	}
}

func engineRatingLines(lines []domain.RatingLineRequest) []engine.RatingLine {
	if len(lines) == 0 {
		return nil
	}
	out := make([]engine.RatingLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, engine.RatingLine{
			LineNumber:       line.LineNumber,
			RateClass:        line.RateClass,
			Commodity:        line.Commodity,
			Pieces:           line.Pieces,
			Weight:           engineWeight(line.GrossWeight),
			ChargeableWeight: engineWeight(line.ChargeableWeight),
			Rate:             engineAmount(line.RateCharge),
			ULDType:          line.ULDType,
		})
	}
	return out
}

func engineWeight(w *domain.Weight) *engine.WeightAmount {
	if w == nil {
		return nil
	}
	amount := w.Amount
	return &engine.WeightAmount{Amount: &amount, Unit: w.Unit}
}

func engineAmount(m *domain.Money) *engine.Amount {
	if m == nil {
		return nil
	}
	amount := m.Amount.InexactFloat64()
	out := &engine.Amount{Amount: &amount}
	if m.Currency != nil {
		out.CurrencyCode = m.Currency.Code
	}
	return out
}

// normalize assembles the full pricing result from a successful engine body.
func (s *PricingService) normalize(ctx context.Context, cmd PriceAirwaybillCommand, body *engine.PricedResource, raw []byte) (domain.PricingResult, error) {
	result := domain.PricingResult{}

	if len(body.PricedIATARateLines) > 0 {
		result.RatingLines = buildRatingLines(body.PricedIATARateLines, cmd.Request)
	}

	priceLines, err := s.buildPriceLines(ctx, body, raw)
	if err != nil {
		return domain.PricingResult{}, err
	}
	result.PriceLines = priceLines

	result.Price = &domain.ChargeEstimate{
		FreightCharge:      buildFreightCharge(body),
		GrossFreightCharge: buildGrossFreightCharge(body),
		NetFreightCharge:   buildNetFreightCharge(body),
		Tax:                buildTax(body),
		OtherCharges:       buildOtherCharges(body),
	}

	result.Taxes = buildTaxResources(body)

	result.GlobalWarnings = append(cmd.Warnings, flattenWarnings(collectWarnings(body))...)
	if result.GlobalWarnings == nil {
		result.GlobalWarnings = []domain.Warning{}
	}

	// Engine cost calculation is a pending feature; any prior costs are
	// cleared so downstream assembly never sees stale figures.
	result.Costs = []domain.Cost{}

	return result, nil
}
