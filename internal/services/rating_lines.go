package services

import (
	"github.com/skylift-cargo/pricing-api/internal/domain"
	"github.com/skylift-cargo/pricing-api/internal/engine"
)

// buildRatingLines maps the priced IATA rate lines back onto the domain
// rating lines, joining each with the request line of the same line number
// to restore the request-only fields the engine does not echo.
func buildRatingLines(priced []engine.PricedIATARateLine, req *domain.RatingRequest) []domain.RatingLine {
	lines := make([]domain.RatingLine, 0, len(priced))
	for _, p := range priced {
		line := domain.RatingLine{
			LineNumber: p.LineNumber,
			RateClass:  p.RateClass,
			Commodity:  p.Commodity,
			Rate:       moneyFromAmount(p.Rate),
			Total:      moneyFromAmount(p.Total),
			ULDType:    p.ULDType,
		}

		if p.Pieces != nil && *p.Pieces != 0 {
			pieces := *p.Pieces
			line.Pieces = &pieces
		}

		// The gross weight only carries over on lines that also have a
		// chargeable weight; a bare gross weight is dropped.
		if p.ChargeableWeight != nil {
			line.ChargeableWeight = domainWeight(p.ChargeableWeight)
			if p.Weight != nil && p.Weight.Amount != nil {
				line.GrossWeight = domainWeight(p.Weight)
			}
		}

		if match := matchRequestLine(req, p.LineNumber); match != nil {
			line.Service = match.Service
			line.NatureOfGoods = match.NatureOfGoods
			line.GoodsType = match.GoodsType
			line.ManuallyChanged = match.ManuallyChanged
		}

		lines = append(lines, line)
	}
	return lines
}

func matchRequestLine(req *domain.RatingRequest, lineNumber string) *domain.RatingLineRequest {
	if req == nil || lineNumber == "" {
		return nil
	}
	for i := range req.RatingLines {
		if req.RatingLines[i].LineNumber == lineNumber {
			return &req.RatingLines[i]
		}
	}
	return nil
}
