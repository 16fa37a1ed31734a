package services

import (
	"github.com/shopspring/decimal"

	"github.com/skylift-cargo/pricing-api/internal/domain"
	"github.com/skylift-cargo/pricing-api/internal/engine"
)

// buildFreightCharge folds the sell figures of the priced sell rates. Rates
// are visited in response order and every visit replaces both figures, so the
// last line always wins, even when it carries no figures of its own.
func buildFreightCharge(body *engine.PricedResource) domain.FreightCharge {
	charge := domain.FreightCharge{}
	for _, sell := range body.PricedSellRates {
		charge.SellRate = nil
		charge.SellTotal = nil
		if sell.Rate != nil && sell.Rate.Amount != nil {
			charge.SellRate = &domain.Money{Amount: decimal.NewFromFloat(*sell.Rate.Amount)}
		}
		if sell.TotalAmount != nil {
			charge.SellTotal = &domain.Money{Amount: decimal.NewFromFloat(*sell.TotalAmount)}
		}
	}
	return charge
}

// buildGrossFreightCharge maps the engine charges summary onto the gross
// freight breakdown. Absent summary groups stay nil.
func buildGrossFreightCharge(body *engine.PricedResource) domain.GrossFreightCharge {
	summary := body.ChargesSummary
	if summary == nil {
		return domain.GrossFreightCharge{}
	}
	return domain.GrossFreightCharge{
		WeightCharge:           prepaidCollect(summary.WeightCharge),
		TotalCharges:           prepaidCollect(summary.TotalCharges),
		ValuationCharge:        prepaidCollect(summary.ValuationCharge),
		OtherChargesDueAgent:   prepaidCollect(summary.OtherChargesDueAgent),
		OtherChargesDueCarrier: prepaidCollect(summary.OtherChargesDueCarrier),
	}
}

func prepaidCollect(pc *engine.PrepaidCollectAmount) *domain.PrepaidCollect {
	if pc == nil {
		return nil
	}
	return &domain.PrepaidCollect{
		Prepaid: moneyFromAmount(pc.Prepaid),
		Collect: moneyFromAmount(pc.Collect),
	}
}

// buildNetFreightCharge gathers the commission and net figures. All monetary
// fields are denominated in the airwaybill currency except the net freight
// rate, which is a bare per-unit figure.
func buildNetFreightCharge(body *engine.PricedResource) domain.NetFreightCharge {
	currency := &domain.Currency{Code: body.AirwaybillCurrencyCode}
	charge := domain.NetFreightCharge{}

	if commission := body.IATACommission; commission != nil {
		charge.IATACommissionPercentage = decimalPtr(commission.IATAPercentage)
		amount := decimal.Zero
		if commission.CommissionAmount != nil && commission.CommissionAmount.Amount != nil {
			amount = decimal.NewFromFloat(*commission.CommissionAmount.Amount)
		}
		charge.IATACommission = &domain.Money{Amount: amount, Currency: currency}
	}

	netTotal := decimal.Zero
	if body.NetNetAmount != nil && body.NetNetAmount.Amount != nil && body.NetNetAmount.Amount.Amount != nil {
		netTotal = decimal.NewFromFloat(*body.NetNetAmount.Amount.Amount)
	}
	charge.NetTotal = &domain.Money{Amount: netTotal, Currency: currency}

	netFreightTotal := decimal.Zero
	if body.NetAmount != nil && body.NetAmount.Amount != nil {
		netFreightTotal = decimal.NewFromFloat(*body.NetAmount.Amount)
	}
	charge.NetFreightTotal = &domain.Money{Amount: netFreightTotal, Currency: currency}

	if body.NetRate != nil {
		charge.NetFreightRate = &domain.Money{Amount: decimal.NewFromFloat(*body.NetRate)}
	}

	if body.Incentive != nil {
		amount := decimal.Zero
		if body.Incentive.IncentiveAmount != nil && body.Incentive.IncentiveAmount.Amount != nil {
			amount = decimal.NewFromFloat(*body.Incentive.IncentiveAmount.Amount)
		}
		charge.Incentive = &domain.Money{Amount: amount, Currency: currency}
	}

	return charge
}

// buildTax maps the tax details onto the agent/carrier tax split. Both sides
// are emitted whenever tax details are present, zero when the engine omitted
// the respective amount.
func buildTax(body *engine.PricedResource) domain.Tax {
	details := body.TaxDetails
	if details == nil {
		return domain.Tax{}
	}
	return domain.Tax{
		DueAgent:   moneyOrZero(details.TaxAmountAgent),
		DueCarrier: moneyOrZero(details.TaxAmountCarrier),
	}
}

// buildOtherCharges maps the priced surcharges in response order. The line
// number is the 1-based position in that order.
func buildOtherCharges(body *engine.PricedResource) []domain.OtherCharge {
	charges := make([]domain.OtherCharge, 0, len(body.PricedOtherCharges))
	for i, oc := range body.PricedOtherCharges {
		charge := domain.OtherCharge{
			Exclude:      oc.Exclude,
			Code:         oc.Code,
			CalcSequence: int64Ptr(oc.SequenceID),
			Line:         i + 1,
		}
		if oc.Amount != nil {
			charge.Charge = moneyFromAmount(oc.Amount)
		}
		switch {
		case oc.Type == engine.OtherChargeTypeCollect:
			charge.PrepaidCollect = "C"
		case oc.Type != "":
			charge.PrepaidCollect = "P"
		}
		charges = append(charges, charge)
	}
	return charges
}

// buildTaxResources maps the tax code list onto positional tax resources.
func buildTaxResources(body *engine.PricedResource) []domain.TaxResource {
	if body.TaxDetails == nil {
		return []domain.TaxResource{}
	}
	taxes := make([]domain.TaxResource, 0, len(body.TaxDetails.TaxCodeList))
	for i, tc := range body.TaxDetails.TaxCodeList {
		taxes = append(taxes, domain.TaxResource{
			TaxCodes:      tc.TaxCodes,
			TaxLiability:  tc.TaxLiability,
			Line:          i + 1,
			TaxBaseAmount: decimalPtr(tc.BaseAmount),
			Amount:        decimalPtr(tc.TaxAmount),
			TaxSequence:   int64Ptr(tc.SequenceID),
		})
	}
	return taxes
}

// moneyFromAmount converts an engine amount, keeping its own currency code.
func moneyFromAmount(a *engine.Amount) *domain.Money {
	if a == nil {
		return nil
	}
	money := &domain.Money{}
	if a.Amount != nil {
		money.Amount = decimal.NewFromFloat(*a.Amount)
	}
	if a.CurrencyCode != "" {
		money.Currency = &domain.Currency{Code: a.CurrencyCode}
	}
	return money
}

// moneyOrZero behaves like moneyFromAmount but yields a zero amount rather
// than nil when the source is absent.
func moneyOrZero(a *engine.Amount) *domain.Money {
	if money := moneyFromAmount(a); money != nil {
		return money
	}
	return &domain.Money{Amount: decimal.Zero}
}
