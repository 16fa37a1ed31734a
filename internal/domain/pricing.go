package domain

import "github.com/shopspring/decimal"

// PriceType distinguishes the rate variants attached to a price line.
type PriceType string

const (
	// PriceTypeSell marks the rate charged to the customer.
	PriceTypeSell PriceType = "SELL"
	// PriceTypePublished marks the tariff rate paired with a sell rate.
	PriceTypePublished PriceType = "PUBLISHED"
)

// Currency wraps an ISO currency code.
type Currency struct {
	Code string `json:"code"`
}

// Money is a monetary amount with an optional currency qualifier.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency *Currency       `json:"currency,omitempty"`
}

// Weight is a weight figure with its unit code.
type Weight struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit,omitempty"`
}

// Warning carries a single human-readable message. Provenance is not part of
// the external shape; once emitted, warnings from every source look alike.
type Warning struct {
	Message string `json:"message"`
}

// PricingResult is the normalized pricing model assembled from an engine
// response, consumed by the airwaybill response assembly downstream.
type PricingResult struct {
	RatingLines    []RatingLine    `json:"ratingLines,omitempty"`
	Price          *ChargeEstimate `json:"price,omitempty"`
	PriceLines     []PriceLine     `json:"priceLines"`
	Taxes          []TaxResource   `json:"taxes"`
	GlobalWarnings []Warning       `json:"globalWarnings"`
	Costs          []Cost          `json:"costs"`
}

// Cost is reserved for engine-side cost calculation, which is not produced
// yet; results always carry an empty cost list.
type Cost struct {
	Code   string `json:"code,omitempty"`
	Amount *Money `json:"amount,omitempty"`
}

// RatingLine is an enriched IATA rating line combining the priced output with
// request-side fields matched by line number.
type RatingLine struct {
	LineNumber       string  `json:"lineNumber"`
	RateClass        string  `json:"rateClass"`
	Commodity        string  `json:"commodity"`
	Pieces           *int    `json:"pieces,omitempty"`
	ChargeableWeight *Weight `json:"chargeableWeight,omitempty"`
	GrossWeight      *Weight `json:"grossWeight,omitempty"`
	Rate             *Money  `json:"rate,omitempty"`
	Total            *Money  `json:"total,omitempty"`
	ULDType          string  `json:"uldType,omitempty"`
	Service          string  `json:"service,omitempty"`
	NatureOfGoods    string  `json:"natureOfGoods,omitempty"`
	GoodsType        string  `json:"goodsType,omitempty"`
	ManuallyChanged  bool    `json:"manuallyChanged,omitempty"`
}

// PriceLine groups the sell rate and its paired published rate for one line.
type PriceLine struct {
	Line            int              `json:"line"`
	PriceRates      []PriceRate      `json:"priceRates"`
	AirwaybillPrice *AirwaybillPrice `json:"airwaybillPrice,omitempty"`
}

// PriceRate is a single rate entry of a price line.
type PriceRate struct {
	PriceType PriceType       `json:"priceType"`
	Detail    PriceRateDetail `json:"priceRateDetail"`
}

// PriceRateDetail carries the rate figures for one price type. Optional
// monetary fields stay nil when the engine did not supply them.
type PriceRateDetail struct {
	PriceSequence        *int64           `json:"priceSequence,omitempty"`
	ConversionRate       *float64         `json:"conversionRate,omitempty"`
	RateClass            string           `json:"rateClass,omitempty"`
	RateCurrency         string           `json:"rateCurrency,omitempty"`
	NetRate              *decimal.Decimal `json:"netRate,omitempty"`
	RatePerQuantity      *decimal.Decimal `json:"ratePerQuantity,omitempty"`
	AddOnRatePerQuantity *float64         `json:"addOnRatePerQuantity,omitempty"`
	RateMinimumAmount    *decimal.Decimal `json:"rateMinimumAmount,omitempty"`
	RateChargeWeight     *Weight          `json:"rateChargeWeight,omitempty"`
	RateTotalAmount      *decimal.Decimal `json:"rateTotalAmount,omitempty"`
	RateRemarks          string           `json:"rateRemarks,omitempty"`
	AdhocType            string           `json:"adhocType,omitempty"`
}

// AirwaybillPrice holds the airwaybill-level fields derived from a sell rate.
type AirwaybillPrice struct {
	ChargeableWeight *Weight `json:"chargeableWeight,omitempty"`
	GrossWeight      *Weight `json:"grossWeight,omitempty"`
	Commodity        string  `json:"commodity,omitempty"`
	PriceClass       string  `json:"priceClass,omitempty"`
	ProductCode      string  `json:"productCode,omitempty"`
	OriginCode       string  `json:"originCode,omitempty"`
	DestinationCode  string  `json:"destinationCode,omitempty"`
	ContourCode      string  `json:"contourCode,omitempty"`
	ULDNumber        string  `json:"uldNumber,omitempty"`
	ULDType          string  `json:"uldType,omitempty"`
	Pieces           *int    `json:"pieces,omitempty"`
}

// ChargeEstimate aggregates the charge summaries derived from one response.
type ChargeEstimate struct {
	FreightCharge      FreightCharge      `json:"freightCharge"`
	GrossFreightCharge GrossFreightCharge `json:"grossFreightCharge"`
	NetFreightCharge   NetFreightCharge   `json:"netFreightCharge"`
	Tax                Tax                `json:"tax"`
	OtherCharges       []OtherCharge      `json:"otherCharges"`
}

// FreightCharge carries the sell figures of the last priced sell rate.
type FreightCharge struct {
	SellRate  *Money `json:"sellRate,omitempty"`
	SellTotal *Money `json:"sellTotal,omitempty"`
}

// PrepaidCollect splits an amount into its prepaid and collect portions.
type PrepaidCollect struct {
	Prepaid *Money `json:"prepaid,omitempty"`
	Collect *Money `json:"collect,omitempty"`
}

// GrossFreightCharge mirrors the engine's charges summary.
type GrossFreightCharge struct {
	WeightCharge           *PrepaidCollect `json:"weightCharge,omitempty"`
	TotalCharges           *PrepaidCollect `json:"totalCharges,omitempty"`
	ValuationCharge        *PrepaidCollect `json:"valuationCharge,omitempty"`
	OtherChargesDueAgent   *PrepaidCollect `json:"otherChargesDueAgent,omitempty"`
	OtherChargesDueCarrier *PrepaidCollect `json:"otherChargesDueCarrier,omitempty"`
}

// NetFreightCharge gathers the commission and net figures of the response,
// all denominated in the airwaybill currency.
type NetFreightCharge struct {
	IATACommissionPercentage *decimal.Decimal `json:"iataCommissionPercentage,omitempty"`
	IATACommission           *Money           `json:"iataCommission,omitempty"`
	NetTotal                 *Money           `json:"netTotal,omitempty"`
	NetFreightTotal          *Money           `json:"netFreightTotal,omitempty"`
	NetFreightRate           *Money           `json:"netFreightRate,omitempty"`
	Incentive                *Money           `json:"incentive,omitempty"`
}

// Tax summarises the tax amounts owed to agent and carrier.
type Tax struct {
	DueAgent   *Money `json:"dueAgent,omitempty"`
	DueCarrier *Money `json:"dueCarrier,omitempty"`
}

// OtherCharge is one priced surcharge with its prepaid/collect marker.
type OtherCharge struct {
	Charge         *Money `json:"charge,omitempty"`
	Exclude        string `json:"exclude,omitempty"`
	Code           string `json:"code,omitempty"`
	CalcSequence   *int64 `json:"calcSequence,omitempty"`
	PrepaidCollect string `json:"prepaidCollect,omitempty"`
	Line           int    `json:"line"`
}

// TaxResource is one tax code entry with a positional line number.
type TaxResource struct {
	TaxCodes      []string         `json:"taxCodes,omitempty"`
	TaxLiability  string           `json:"taxLiability,omitempty"`
	Line          int              `json:"line"`
	TaxBaseAmount *decimal.Decimal `json:"taxBaseAmount,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	TaxSequence   *int64           `json:"taxSequence,omitempty"`
}
