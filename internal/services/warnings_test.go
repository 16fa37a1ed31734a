package services

import (
	"testing"

	"github.com/skylift-cargo/pricing-api/internal/engine"
)

func TestCollectWarningsOrderAndBlanks(t *testing.T) {
	body := &engine.PricedResource{
		GlobalWarnings: []engine.Warning{
			{Message: "global one"},
			{Message: "  "},
		},
		PricedIATARateLines: []engine.PricedIATARateLine{
			{LineNumber: "1", WarningMessage: "rate line one"},
			{LineNumber: "2"},
		},
		PricedOtherCharges: []engine.PricedOtherCharge{
			{Code: "FSC", WarningMessage: "charge one"},
		},
		TaxDetails: &engine.TaxDetails{
			TaxCodeList: []engine.TaxCode{
				{WarningMessage: "tax one"},
				{WarningMessage: ""},
			},
		},
		PricedSellRates: []engine.PricedSellRate{
			{LineNumber: "1", WarningMessage: []engine.Warning{
				{Message: "sell one"},
				{Message: ""},
				{Message: "sell two"},
			}},
		},
	}

	collected := collectWarnings(body)

	want := []sourcedWarning{
		{warningSourceGlobal, "global one"},
		{warningSourceRateLine, "rate line one"},
		{warningSourceOtherCharge, "charge one"},
		{warningSourceTaxCode, "tax one"},
		{warningSourceSellRate, "sell one"},
		{warningSourceSellRate, "sell two"},
	}
	if len(collected) != len(want) {
		t.Fatalf("collected %d warnings, want %d: %+v", len(collected), len(want), collected)
	}
	for i, w := range want {
		if collected[i] != w {
			t.Errorf("warning %d = %+v, want %+v", i, collected[i], w)
		}
	}

	flat := flattenWarnings(collected)
	if len(flat) != len(want) {
		t.Fatalf("flattened %d warnings, want %d", len(flat), len(want))
	}
	for i, w := range want {
		if flat[i].Message != w.message {
			t.Errorf("flattened %d = %q, want %q", i, flat[i].Message, w.message)
		}
	}
}

func TestCollectWarningsEmptyResponse(t *testing.T) {
	if got := collectWarnings(&engine.PricedResource{}); len(got) != 0 {
		t.Errorf("expected no warnings, got %+v", got)
	}
	if got := flattenWarnings(nil); got != nil {
		t.Errorf("expected nil flatten result, got %+v", got)
	}
}
