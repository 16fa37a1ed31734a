package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/skylift-cargo/pricing-api/internal/domain"
	"github.com/skylift-cargo/pricing-api/internal/engine"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func dptr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func priceResult(t *testing.T, body *engine.PricedResource) domain.PricingResult {
	t.Helper()
	eng := &fakeEngine{result: successResult(body)}
	svc := newTestService(t, eng, &fakeHAWBCounter{})
	result, err := svc.PriceAirwaybill(context.Background(), PriceAirwaybillCommand{
		AirwaybillID: "020-12345675",
		Request:      &domain.RatingRequest{RequestType: "ALL"},
	})
	if err != nil {
		t.Fatalf("PriceAirwaybill: %v", err)
	}
	return result
}

func priceError(t *testing.T, body *engine.PricedResource) error {
	t.Helper()
	eng := &fakeEngine{result: successResult(body)}
	svc := newTestService(t, eng, &fakeHAWBCounter{})
	_, err := svc.PriceAirwaybill(context.Background(), PriceAirwaybillCommand{
		AirwaybillID: "020-12345675",
		Request:      &domain.RatingRequest{RequestType: "ALL"},
	})
	return err
}

func TestPriceLinesSellAndPublishedPairing(t *testing.T) {
	body := &engine.PricedResource{
		PricedSellRates: []engine.PricedSellRate{{
			LineNumber:         "1",
			SequenceID:         iptr(42),
			ExchangeRate:       fptr(1.25),
			RateClass:          "Q",
			PriceCurrencyCode:  "EUR",
			Rate:               &engine.Amount{Amount: fptr(100)},
			MinimumBasic:       &engine.Amount{Amount: fptr(80)},
			AddOn:              "2.5",
			TotalAmount:        fptr(450),
			ChargeableWeight:   &engine.WeightAmount{Amount: fptr(450), Unit: "KG"},
			PriceReferenceSeq:  "PRS-7",
			PriceReferenceType: "SPOT",
		}},
		PricedPublishedRates: []engine.PricedPublishedRate{{
			RateClass:         "M",
			PriceCurrencyCode: "EUR",
			Rate:              fptr(120),
			MinimumBasic:      fptr(50),
			TotalAmount:       fptr(500),
			ChargeableWeight:  &engine.WeightAmount{Amount: fptr(450), Unit: "KG"},
		}},
	}

	result := priceResult(t, body)
	if len(result.PriceLines) != 1 {
		t.Fatalf("price lines = %d, want 1", len(result.PriceLines))
	}
	line := result.PriceLines[0]
	if line.Line != 1 {
		t.Errorf("line = %d, want 1", line.Line)
	}
	if len(line.PriceRates) != 2 {
		t.Fatalf("price rates = %d, want 2", len(line.PriceRates))
	}

	sell := line.PriceRates[0]
	if sell.PriceType != domain.PriceTypeSell {
		t.Errorf("first rate type = %q, want SELL", sell.PriceType)
	}
	seq := int64(42)
	addOn := 2.5
	conv := 1.25
	wantSell := domain.PriceRateDetail{
		PriceSequence:        &seq,
		ConversionRate:       &conv,
		RateClass:            "Q",
		RateCurrency:         "EUR",
		NetRate:              dptr(100),
		RatePerQuantity:      dptr(100),
		AddOnRatePerQuantity: &addOn,
		RateMinimumAmount:    dptr(80),
		RateChargeWeight:     &domain.Weight{Amount: 450, Unit: "KG"},
		RateTotalAmount:      dptr(450),
		RateRemarks:          "PRS-7",
		AdhocType:            "SPOT",
	}
	if diff := cmp.Diff(wantSell, sell.Detail, decimalComparer); diff != "" {
		t.Errorf("sell detail mismatch (-want +got):\n%s", diff)
	}

	pub := line.PriceRates[1]
	if pub.PriceType != domain.PriceTypePublished {
		t.Errorf("second rate type = %q, want PUBLISHED", pub.PriceType)
	}
	wantPub := domain.PriceRateDetail{
		RateClass:         "M",
		RateCurrency:      "EUR",
		NetRate:           dptr(120),
		RateMinimumAmount: dptr(50),
		RateChargeWeight:  &domain.Weight{Amount: 450, Unit: "KG"},
		RateTotalAmount:   dptr(500),
	}
	if diff := cmp.Diff(wantPub, pub.Detail, decimalComparer); diff != "" {
		t.Errorf("published detail mismatch (-want +got):\n%s", diff)
	}
}

func TestPriceLinesMissingLineNumber(t *testing.T) {
	tests := []struct {
		name       string
		lineNumber string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"non numeric", "abc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := &engine.PricedResource{
				PricedSellRates: []engine.PricedSellRate{{LineNumber: tc.lineNumber}},
			}
			err := priceError(t, body)
			if !errors.Is(err, ErrMissingLineNumber) {
				t.Fatalf("expected ErrMissingLineNumber, got %v", err)
			}
		})
	}
}

func TestPriceLinesPublishedOutOfRange(t *testing.T) {
	body := &engine.PricedResource{
		PricedSellRates: []engine.PricedSellRate{
			{LineNumber: "1", Rate: &engine.Amount{Amount: fptr(100)}},
			{LineNumber: "2", Rate: &engine.Amount{Amount: fptr(200)}},
		},
		PricedPublishedRates: []engine.PricedPublishedRate{
			{RateClass: "N", Rate: fptr(110)},
		},
	}

	result := priceResult(t, body)
	if len(result.PriceLines) != 2 {
		t.Fatalf("price lines = %d, want 2", len(result.PriceLines))
	}
	if got := len(result.PriceLines[0].PriceRates); got != 2 {
		t.Errorf("line 1 rates = %d, want 2", got)
	}
	if got := len(result.PriceLines[1].PriceRates); got != 1 {
		t.Errorf("line 2 rates = %d, want 1 (no published rate to pair)", got)
	}
}

func TestPublishedRateClassQuantityRules(t *testing.T) {
	tests := []struct {
		name         string
		rateClass    string
		wantQuantity bool
		wantMinimum  bool
	}{
		{"class U takes both", "U", true, true},
		{"class B takes both", "B", true, true},
		{"lowercase u takes both", "u", true, true},
		{"class N quantity only", "N", true, false},
		{"class Q quantity only", "Q", true, false},
		{"class M minimum only", "M", false, true},
		{"lowercase m minimum only", "m", false, true},
		{"empty class minimum only", "", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			detail, err := publishedRateDetail(engine.PricedPublishedRate{
				RateClass:    tc.rateClass,
				Rate:         fptr(75),
				MinimumBasic: fptr(30),
			})
			if err != nil {
				t.Fatalf("publishedRateDetail: %v", err)
			}

			if detail.NetRate == nil || !detail.NetRate.Equal(decimal.NewFromFloat(75)) {
				t.Errorf("net rate = %v, want 75", detail.NetRate)
			}
			if got := detail.RatePerQuantity != nil; got != tc.wantQuantity {
				t.Errorf("ratePerQuantity present = %v, want %v", got, tc.wantQuantity)
			}
			if got := detail.RateMinimumAmount != nil; got != tc.wantMinimum {
				t.Errorf("rateMinimumAmount present = %v, want %v", got, tc.wantMinimum)
			}
		})
	}
}

func TestPublishedRateClassBTakesGeneralPath(t *testing.T) {
	detail, err := publishedRateDetail(engine.PricedPublishedRate{
		RateClass:         "B",
		Rate:              fptr(75),
		MinimumBasic:      fptr(30),
		TotalAmount:       fptr(150),
		PriceCurrencyCode: "USD",
		ChargeableWeight:  &engine.WeightAmount{Amount: fptr(40), Unit: "KG"},
	})
	if err != nil {
		t.Fatalf("publishedRateDetail: %v", err)
	}

	if detail.NetRate == nil || !detail.NetRate.Equal(decimal.NewFromFloat(75)) {
		t.Errorf("net rate = %v, want 75", detail.NetRate)
	}
	if detail.RatePerQuantity == nil || detail.RateMinimumAmount == nil {
		t.Errorf("class B keeps both quantity and minimum, got %+v", detail)
	}
	if detail.RateTotalAmount == nil || !detail.RateTotalAmount.Equal(decimal.NewFromFloat(150)) {
		t.Errorf("rate total = %v, want 150", detail.RateTotalAmount)
	}
	if detail.RateChargeWeight == nil || detail.RateChargeWeight.Unit != "KG" {
		t.Errorf("charge weight = %+v, want KG weight", detail.RateChargeWeight)
	}
	if detail.RateClass != "B" {
		t.Errorf("rate class = %q, want B", detail.RateClass)
	}
}

func TestPublishedRateWithoutRateSkipsQuantityRules(t *testing.T) {
	detail, err := publishedRateDetail(engine.PricedPublishedRate{
		RateClass:    "U",
		MinimumBasic: fptr(30),
	})
	if err != nil {
		t.Fatalf("publishedRateDetail: %v", err)
	}
	if detail.NetRate != nil || detail.RatePerQuantity != nil || detail.RateMinimumAmount != nil {
		t.Errorf("no rate figures expected without a published rate, got %+v", detail)
	}
	if detail.RateClass != "U" {
		t.Errorf("rate class = %q, want U", detail.RateClass)
	}
}

func TestPriceLinesUnknownPriceReferenceType(t *testing.T) {
	body := &engine.PricedResource{
		PricedSellRates: []engine.PricedSellRate{{
			LineNumber:         "1",
			PriceReferenceType: "MYSTERY",
		}},
	}
	err := priceError(t, body)
	if !errors.Is(err, ErrUnrecognizedEnum) {
		t.Fatalf("expected ErrUnrecognizedEnum, got %v", err)
	}
}

func TestPriceLinesAirwaybillPrice(t *testing.T) {
	body := &engine.PricedResource{
		PricedSellRates: []engine.PricedSellRate{{
			LineNumber:             "1",
			ChargeableWeight:       &engine.WeightAmount{Amount: fptr(520), Unit: "KG"},
			Weight:                 &engine.WeightAmount{Amount: fptr(480), Unit: "KG"},
			Commodity:              "0300",
			PriceClassCode:         "PC1",
			ProductCode:            "GEN",
			OriginAirportCode:      "AMS",
			DestinationAirportCode: "JFK",
			ContourCode:            "MD",
			ULDNumber:              "PMC12345KL",
			ULDType:                "PMC",
			Pieces:                 iptr(4),
		}},
	}

	result := priceResult(t, body)
	price := result.PriceLines[0].AirwaybillPrice
	if price == nil {
		t.Fatal("airwaybill price should be set")
	}

	pieces := 4
	want := &domain.AirwaybillPrice{
		ChargeableWeight: &domain.Weight{Amount: 520, Unit: "KG"},
		GrossWeight:      &domain.Weight{Amount: 480, Unit: "KG"},
		Commodity:        "0300",
		PriceClass:       "PC1",
		ProductCode:      "GEN",
		OriginCode:       "AMS",
		DestinationCode:  "JFK",
		ContourCode:      "MD",
		ULDNumber:        "PMC12345KL",
		ULDType:          "PMC",
		Pieces:           &pieces,
	}
	if diff := cmp.Diff(want, price); diff != "" {
		t.Errorf("airwaybill price mismatch (-want +got):\n%s", diff)
	}
}

func TestSellRateDetailBadAddOn(t *testing.T) {
	_, err := sellRateDetail(engine.PricedSellRate{LineNumber: "1", AddOn: "not-a-number"})
	if err == nil {
		t.Fatal("expected error for unparseable add-on")
	}
}
