package services

import (
	"strings"

	"github.com/skylift-cargo/pricing-api/internal/domain"
	"github.com/skylift-cargo/pricing-api/internal/engine"
)

// warningSource tags where in the engine response a warning was found. The
// tag drives collection order and logging only; it is dropped when warnings
// are flattened into the result.
type warningSource string

const (
	warningSourceGlobal      warningSource = "global"
	warningSourceRateLine    warningSource = "rate_line"
	warningSourceOtherCharge warningSource = "other_charge"
	warningSourceTaxCode     warningSource = "tax_code"
	warningSourceSellRate    warningSource = "sell_rate"
)

type sourcedWarning struct {
	source  warningSource
	message string
}

// collectWarnings walks every warning-bearing part of the response in a
// fixed order: global warnings first, then rate lines, other charges, tax
// codes, and finally sell rates. Blank messages are skipped.
func collectWarnings(body *engine.PricedResource) []sourcedWarning {
	var collected []sourcedWarning

	add := func(source warningSource, message string) {
		if strings.TrimSpace(message) == "" {
			return
		}
		collected = append(collected, sourcedWarning{source: source, message: message})
	}

	for _, w := range body.GlobalWarnings {
		add(warningSourceGlobal, w.Message)
	}
	for _, line := range body.PricedIATARateLines {
		add(warningSourceRateLine, line.WarningMessage)
	}
	for _, oc := range body.PricedOtherCharges {
		add(warningSourceOtherCharge, oc.WarningMessage)
	}
	if body.TaxDetails != nil {
		for _, tc := range body.TaxDetails.TaxCodeList {
			add(warningSourceTaxCode, tc.WarningMessage)
		}
	}
	for _, sell := range body.PricedSellRates {
		for _, w := range sell.WarningMessage {
			add(warningSourceSellRate, w.Message)
		}
	}

	return collected
}

// flattenWarnings drops the source tags, preserving collection order.
func flattenWarnings(collected []sourcedWarning) []domain.Warning {
	if len(collected) == 0 {
		return nil
	}
	out := make([]domain.Warning, 0, len(collected))
	for _, w := range collected {
		out = append(out, domain.Warning{Message: w.message})
	}
	return out
}
