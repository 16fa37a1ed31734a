package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/skylift-cargo/pricing-api/internal/domain"
	"github.com/skylift-cargo/pricing-api/internal/engine"
)

// buildPriceLines turns the priced sell rates into price lines, pairing each
// with the published rate at the same position when one exists. A sell rate
// without a parseable line number aborts the whole normalization; the raw
// payload is carried in the error for diagnosis.
func (s *PricingService) buildPriceLines(ctx context.Context, body *engine.PricedResource, raw []byte) ([]domain.PriceLine, error) {
	lines := make([]domain.PriceLine, 0, len(body.PricedSellRates))

	for _, sell := range body.PricedSellRates {
		if strings.TrimSpace(sell.LineNumber) == "" {
			return nil, fmt.Errorf("%w: response %s", ErrMissingLineNumber, string(raw))
		}
		lineNo, err := strconv.Atoi(strings.TrimSpace(sell.LineNumber))
		if err != nil {
			return nil, fmt.Errorf("%w: line number %q, response %s", ErrMissingLineNumber, sell.LineNumber, string(raw))
		}

		sellDetail, err := sellRateDetail(sell)
		if err != nil {
			return nil, err
		}

		line := domain.PriceLine{
			Line:            lineNo,
			PriceRates:      []domain.PriceRate{{PriceType: domain.PriceTypeSell, Detail: sellDetail}},
			AirwaybillPrice: airwaybillPrice(sell),
		}

		if len(body.PricedPublishedRates) > 0 {
			if lineNo >= 1 && lineNo <= len(body.PricedPublishedRates) {
				pubDetail, err := publishedRateDetail(body.PricedPublishedRates[lineNo-1])
				if err != nil {
					return nil, err
				}
				line.PriceRates = append(line.PriceRates, domain.PriceRate{
					PriceType: domain.PriceTypePublished,
					Detail:    pubDetail,
				})
			} else {
				s.logger(ctx, "published_rate_unpaired", map[string]any{
					"lineNumber":     lineNo,
					"publishedRates": len(body.PricedPublishedRates),
				})
			}
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// sellRateDetail maps one priced sell rate onto a rate detail.
func sellRateDetail(sell engine.PricedSellRate) (domain.PriceRateDetail, error) {
	detail := domain.PriceRateDetail{
		PriceSequence:  int64Ptr(sell.SequenceID),
		ConversionRate: sell.ExchangeRate,
		RateClass:      sell.RateClass,
		RateCurrency:   sell.PriceCurrencyCode,
		RateRemarks:    sell.PriceReferenceSeq,
	}

	if sell.Rate != nil && sell.Rate.Amount != nil {
		detail.NetRate = decimalPtr(sell.Rate.Amount)
		detail.RatePerQuantity = decimalPtr(sell.Rate.Amount)
	}
	if sell.MinimumBasic != nil && sell.MinimumBasic.Amount != nil {
		detail.RateMinimumAmount = decimalPtr(sell.MinimumBasic.Amount)
	}
	detail.RateTotalAmount = decimalPtr(sell.TotalAmount)
	detail.RateChargeWeight = domainWeight(sell.ChargeableWeight)

	if sell.AddOn != "" {
		addOn, err := strconv.ParseFloat(strings.TrimSpace(sell.AddOn), 64)
		if err != nil {
			return domain.PriceRateDetail{}, fmt.Errorf("pricing: parse add-on rate %q: %w", sell.AddOn, err)
		}
		detail.AddOnRatePerQuantity = &addOn
	}

	if sell.PriceReferenceType != "" {
		adhoc, ok := engine.AdhocTypeFromValue(sell.PriceReferenceType)
		if !ok {
			return domain.PriceRateDetail{}, fmt.Errorf("%w: price reference type %q", ErrUnrecognizedEnum, sell.PriceReferenceType)
		}
		detail.AdhocType = string(adhoc)
	}

	return detail, nil
}

// publishedRateDetail maps one priced published rate onto a rate detail.
func publishedRateDetail(pub engine.PricedPublishedRate) (domain.PriceRateDetail, error) {
	detail := domain.PriceRateDetail{}

	// TODO: confirm this rule with the rate-class rule owners. The inner
	// condition can never hold once the outer one does, so the combined
	// branch never runs and every published rate takes the path below it.
	if pub.RateClass == "B" {
		if pub.RateClass == "K" {
			detail.RateTotalAmount = decimalPtr(pub.TotalAmount)
			if pub.RateClass == "B" {
				detail.RateMinimumAmount = decimalPtr(pub.MinimumBasic)
			}
			if pub.RateClass == "K" {
				detail.RatePerQuantity = decimalPtr(pub.Rate)
			}
			detail.RateClass = "B"
			detail.RateCurrency = pub.PriceCurrencyCode
			if pub.PriceReferenceType != "" {
				adhoc, ok := engine.AdhocTypeFromValue(pub.PriceReferenceType)
				if !ok {
					return domain.PriceRateDetail{}, fmt.Errorf("%w: price reference type %q", ErrUnrecognizedEnum, pub.PriceReferenceType)
				}
				detail.AdhocType = string(adhoc)
			}
			return detail, nil
		}
	}

	detail.RateClass = pub.RateClass
	detail.RateCurrency = pub.PriceCurrencyCode

	if pub.PriceReferenceType != "" {
		adhoc, ok := engine.AdhocTypeFromValue(pub.PriceReferenceType)
		if !ok {
			return domain.PriceRateDetail{}, fmt.Errorf("%w: price reference type %q", ErrUnrecognizedEnum, pub.PriceReferenceType)
		}
		detail.AdhocType = string(adhoc)
	}

	if pub.Rate != nil {
		detail.NetRate = decimalPtr(pub.Rate)
		switch class := pub.RateClass; {
		case class != "" && (strings.EqualFold(class, "U") || strings.EqualFold(class, "B")):
			detail.RatePerQuantity = decimalPtr(pub.Rate)
			detail.RateMinimumAmount = decimalPtr(pub.MinimumBasic)
		case class != "" && !strings.EqualFold(class, "M"):
			detail.RatePerQuantity = decimalPtr(pub.Rate)
		default:
			detail.RateMinimumAmount = decimalPtr(pub.MinimumBasic)
		}
	}

	detail.RateChargeWeight = domainWeight(pub.ChargeableWeight)
	detail.RateTotalAmount = decimalPtr(pub.TotalAmount)

	return detail, nil
}

// airwaybillPrice lifts the airwaybill-level fields off a sell rate.
func airwaybillPrice(sell engine.PricedSellRate) *domain.AirwaybillPrice {
	price := &domain.AirwaybillPrice{
		ChargeableWeight: domainWeight(sell.ChargeableWeight),
		GrossWeight:      domainWeight(sell.Weight),
		Commodity:        sell.Commodity,
		PriceClass:       sell.PriceClassCode,
		ProductCode:      sell.ProductCode,
		OriginCode:       sell.OriginAirportCode,
		DestinationCode:  sell.DestinationAirportCode,
		ContourCode:      sell.ContourCode,
		ULDNumber:        sell.ULDNumber,
		ULDType:          sell.ULDType,
	}
	if sell.Pieces != nil {
		pieces := *sell.Pieces
		price.Pieces = &pieces
	}
	return price
}

func int64Ptr(v *int) *int64 {
	if v == nil {
		return nil
	}
	out := int64(*v)
	return &out
}

func decimalPtr(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}

func domainWeight(w *engine.WeightAmount) *domain.Weight {
	if w == nil {
		return nil
	}
	out := &domain.Weight{Unit: w.Unit}
	if w.Amount != nil {
		out.Amount = *w.Amount
	}
	return out
}
