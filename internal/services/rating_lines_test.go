package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/skylift-cargo/pricing-api/internal/domain"
	"github.com/skylift-cargo/pricing-api/internal/engine"
)

func TestBuildRatingLinesJoinsRequestFields(t *testing.T) {
	priced := []engine.PricedIATARateLine{{
		LineNumber:       "1",
		RateClass:        "Q",
		Commodity:        "0300",
		Pieces:           iptr(3),
		ChargeableWeight: &engine.WeightAmount{Amount: fptr(450), Unit: "KG"},
		Weight:           &engine.WeightAmount{Amount: fptr(430), Unit: "KG"},
		Rate:             &engine.Amount{Amount: fptr(2.1), CurrencyCode: "USD"},
		Total:            &engine.Amount{Amount: fptr(945), CurrencyCode: "USD"},
		ULDType:          "PMC",
	}}
	req := &domain.RatingRequest{
		RatingLines: []domain.RatingLineRequest{{
			LineNumber:      "1",
			Service:         "EXPRESS",
			NatureOfGoods:   "CONSOL",
			GoodsType:       "GEN",
			ManuallyChanged: true,
		}},
	}

	lines := buildRatingLines(priced, req)
	if len(lines) != 1 {
		t.Fatalf("rating lines = %d, want 1", len(lines))
	}

	pieces := 3
	usd := &domain.Currency{Code: "USD"}
	want := domain.RatingLine{
		LineNumber:       "1",
		RateClass:        "Q",
		Commodity:        "0300",
		Pieces:           &pieces,
		ChargeableWeight: &domain.Weight{Amount: 450, Unit: "KG"},
		GrossWeight:      &domain.Weight{Amount: 430, Unit: "KG"},
		Rate:             &domain.Money{Amount: decimal.NewFromFloat(2.1), Currency: usd},
		Total:            &domain.Money{Amount: decimal.NewFromFloat(945), Currency: usd},
		ULDType:          "PMC",
		Service:          "EXPRESS",
		NatureOfGoods:    "CONSOL",
		GoodsType:        "GEN",
		ManuallyChanged:  true,
	}
	if diff := cmp.Diff(want, lines[0], decimalComparer); diff != "" {
		t.Errorf("rating line mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRatingLinesGrossWeightNeedsChargeableWeight(t *testing.T) {
	priced := []engine.PricedIATARateLine{{
		LineNumber: "1",
		Weight:     &engine.WeightAmount{Amount: fptr(430), Unit: "KG"},
	}}

	lines := buildRatingLines(priced, nil)
	if lines[0].GrossWeight != nil {
		t.Errorf("gross weight should be dropped without a chargeable weight, got %+v", lines[0].GrossWeight)
	}
	if lines[0].ChargeableWeight != nil {
		t.Errorf("chargeable weight should be absent, got %+v", lines[0].ChargeableWeight)
	}
}

func TestBuildRatingLinesZeroPiecesDropped(t *testing.T) {
	priced := []engine.PricedIATARateLine{
		{LineNumber: "1", Pieces: iptr(0)},
		{LineNumber: "2"},
	}

	lines := buildRatingLines(priced, nil)
	if lines[0].Pieces != nil {
		t.Errorf("zero pieces should map to nil, got %d", *lines[0].Pieces)
	}
	if lines[1].Pieces != nil {
		t.Errorf("missing pieces should stay nil, got %d", *lines[1].Pieces)
	}
}

func TestBuildRatingLinesNoRequestMatch(t *testing.T) {
	priced := []engine.PricedIATARateLine{{LineNumber: "5"}}
	req := &domain.RatingRequest{
		RatingLines: []domain.RatingLineRequest{{LineNumber: "1", Service: "EXPRESS"}},
	}

	lines := buildRatingLines(priced, req)
	if lines[0].Service != "" || lines[0].ManuallyChanged {
		t.Errorf("unmatched line should not inherit request fields, got %+v", lines[0])
	}
}
