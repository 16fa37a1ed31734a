package engine

import "strings"

// RequestChannelAWB is the only channel this service submits on; the engine
// also serves booking and quotation channels that are out of scope here.
const RequestChannelAWB = "AWB"

// ToCalculate selects which result groups the engine computes.
type ToCalculate string

const (
	// ToCalculateAll requests rates, other charges and taxes in one pass.
	ToCalculateAll ToCalculate = "ALL"
	// ToCalculateRates requests IATA and sell/published rate lines only.
	ToCalculateRates ToCalculate = "RATES"
	// ToCalculateOtherCharges requests surcharges only.
	ToCalculateOtherCharges ToCalculate = "OTHER_CHARGES"
	// ToCalculateTaxes requests tax details only.
	ToCalculateTaxes ToCalculate = "TAXES"
)

// ToCalculateFromValue maps a request-type code onto the engine enum. The
// second return reports whether the value has a mapped constant.
func ToCalculateFromValue(value string) (ToCalculate, bool) {
	switch ToCalculate(strings.ToUpper(strings.TrimSpace(value))) {
	case ToCalculateAll:
		return ToCalculateAll, true
	case ToCalculateRates:
		return ToCalculateRates, true
	case ToCalculateOtherCharges:
		return ToCalculateOtherCharges, true
	case ToCalculateTaxes:
		return ToCalculateTaxes, true
	}
	return "", false
}

// AdhocType classifies a manually-added price reference.
type AdhocType string

const (
	// AdhocTypeAdhoc marks a one-off manually negotiated price.
	AdhocTypeAdhoc AdhocType = "ADHOC"
	// AdhocTypeSpot marks a spot-quote reference.
	AdhocTypeSpot AdhocType = "SPOT"
	// AdhocTypeContract marks a contract-rate reference.
	AdhocTypeContract AdhocType = "CONTRACT"
	// AdhocTypePromotion marks a promotional price reference.
	AdhocTypePromotion AdhocType = "PROMOTION"
)

// AdhocTypeFromValue maps a price-reference-type code onto the adhoc enum.
func AdhocTypeFromValue(value string) (AdhocType, bool) {
	switch AdhocType(strings.ToUpper(strings.TrimSpace(value))) {
	case AdhocTypeAdhoc:
		return AdhocTypeAdhoc, true
	case AdhocTypeSpot:
		return AdhocTypeSpot, true
	case AdhocTypeContract:
		return AdhocTypeContract, true
	case AdhocTypePromotion:
		return AdhocTypePromotion, true
	}
	return "", false
}

// OtherChargeTypeCollect is the engine-side marker for collect surcharges;
// every other non-empty type is treated as prepaid.
const OtherChargeTypeCollect = "COLLECT"

// Parameter is the request payload submitted to the pricing engine.
type Parameter struct {
	AirwaybillID     string       `json:"airwaybillId"`
	PricingReference string       `json:"pricingReference,omitempty"`
	RequestChannel   string       `json:"requestChannel"`
	ToCalculate      ToCalculate  `json:"toCalculate"`
	HAWBCount        *int         `json:"hawbCount,omitempty"`
	RatingLines      []RatingLine `json:"ratingLines,omitempty"`
}

// RatingLine is one rating line of the engine request.
type RatingLine struct {
	LineNumber       string        `json:"lineNumber"`
	RateClass        string        `json:"rateClass,omitempty"`
	Commodity        string        `json:"commodity,omitempty"`
	Pieces           *int          `json:"pieces,omitempty"`
	Weight           *WeightAmount `json:"weight,omitempty"`
	ChargeableWeight *WeightAmount `json:"chargeableWeight,omitempty"`
	Rate             *Amount       `json:"rate,omitempty"`
	ULDType          string        `json:"uldType,omitempty"`
}

// Amount is the engine's monetary amount shape.
type Amount struct {
	Amount       *float64 `json:"amount,omitempty"`
	CurrencyCode string   `json:"currencyCode,omitempty"`
}

// WeightAmount is the engine's weight shape.
type WeightAmount struct {
	Amount *float64 `json:"amount,omitempty"`
	Unit   string   `json:"unit,omitempty"`
}

// Warning is one engine-side warning message.
type Warning struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

// PricedResource is the engine's full pricing response. The published rate at
// index i corresponds to the sell rate at index i; the collections carry no
// explicit pairing key.
type PricedResource struct {
	PricedIATARateLines    []PricedIATARateLine  `json:"pricedIataRateLines,omitempty"`
	PricedSellRates        []PricedSellRate      `json:"pricedSellRates,omitempty"`
	PricedPublishedRates   []PricedPublishedRate `json:"pricedPublishedRates,omitempty"`
	PricedOtherCharges     []PricedOtherCharge   `json:"pricedOtherCharges,omitempty"`
	TaxDetails             *TaxDetails           `json:"taxDetails,omitempty"`
	ChargesSummary         *ChargesSummary       `json:"chargesSummary,omitempty"`
	IATACommission         *IATACommission       `json:"iataCommission,omitempty"`
	Incentive              *Incentive            `json:"incentive,omitempty"`
	NetAmount              *Amount               `json:"netAmount,omitempty"`
	NetNetAmount           *NetNetAmount         `json:"netNetAmount,omitempty"`
	NetRate                *float64              `json:"netRate,omitempty"`
	AirwaybillCurrencyCode string                `json:"airwaybillCurrencyCode,omitempty"`
	GlobalWarnings         []Warning             `json:"globalWarnings,omitempty"`
}

// NetNetAmount wraps the net-net figure in the engine's nested amount shape.
type NetNetAmount struct {
	Amount *Amount `json:"amount,omitempty"`
}

// PricedIATARateLine is one priced IATA rating line.
type PricedIATARateLine struct {
	LineNumber       string        `json:"lineNumber,omitempty"`
	RateClass        string        `json:"rateClass,omitempty"`
	Commodity        string        `json:"commodity,omitempty"`
	Pieces           *int          `json:"pieces,omitempty"`
	Weight           *WeightAmount `json:"weight,omitempty"`
	ChargeableWeight *WeightAmount `json:"chargeableWeight,omitempty"`
	Rate             *Amount       `json:"rate,omitempty"`
	Total            *Amount       `json:"total,omitempty"`
	ULDType          string        `json:"uldType,omitempty"`
	WarningMessage   string        `json:"warningMessage,omitempty"`
}

// PricedSellRate is one priced sell-rate line.
type PricedSellRate struct {
	LineNumber             string        `json:"lineNumber,omitempty"`
	SequenceID             *int          `json:"sequenceId,omitempty"`
	ExchangeRate           *float64      `json:"exchangeRate,omitempty"`
	RateClass              string        `json:"rateClass,omitempty"`
	PriceCurrencyCode      string        `json:"priceCurrencyCode,omitempty"`
	Rate                   *Amount       `json:"rate,omitempty"`
	MinimumBasic           *Amount       `json:"minimumBasic,omitempty"`
	AddOn                  string        `json:"addOn,omitempty"`
	TotalAmount            *float64      `json:"totalAmount,omitempty"`
	Weight                 *WeightAmount `json:"weight,omitempty"`
	ChargeableWeight       *WeightAmount `json:"chargeableWeight,omitempty"`
	PriceReferenceSeq      string        `json:"priceReferenceSeq,omitempty"`
	PriceReferenceType     string        `json:"priceReferenceType,omitempty"`
	Commodity              string        `json:"commodity,omitempty"`
	PriceClassCode         string        `json:"priceClassCode,omitempty"`
	ProductCode            string        `json:"productCode,omitempty"`
	OriginAirportCode      string        `json:"originAirportCode,omitempty"`
	DestinationAirportCode string        `json:"destinationAirportCode,omitempty"`
	ContourCode            string        `json:"contourCode,omitempty"`
	ULDNumber              string        `json:"uldNumber,omitempty"`
	ULDType                string        `json:"uldType,omitempty"`
	Pieces                 *int          `json:"pieces,omitempty"`
	WarningMessage         []Warning     `json:"warningMessage,omitempty"`
}

// PricedPublishedRate is one priced tariff-rate line, positionally paired
// with the sell rate of the same index.
type PricedPublishedRate struct {
	RateClass          string        `json:"rateClass,omitempty"`
	PriceCurrencyCode  string        `json:"priceCurrencyCode,omitempty"`
	Rate               *float64      `json:"rate,omitempty"`
	MinimumBasic       *float64      `json:"minimumBasic,omitempty"`
	TotalAmount        *float64      `json:"totalAmount,omitempty"`
	ChargeableWeight   *WeightAmount `json:"chargeableWeight,omitempty"`
	PriceReferenceType string        `json:"priceReferenceType,omitempty"`
}

// PricedOtherCharge is one priced surcharge.
type PricedOtherCharge struct {
	Amount         *Amount `json:"amount,omitempty"`
	Exclude        string  `json:"exclude,omitempty"`
	Code           string  `json:"code,omitempty"`
	SequenceID     *int    `json:"sequenceId,omitempty"`
	Type           string  `json:"type,omitempty"`
	WarningMessage string  `json:"warningMessage,omitempty"`
}

// TaxDetails groups the tax code list with the agent/carrier tax amounts.
type TaxDetails struct {
	TaxCodeList      []TaxCode `json:"taxCodeList,omitempty"`
	TaxAmountAgent   *Amount   `json:"taxAmountAgent,omitempty"`
	TaxAmountCarrier *Amount   `json:"taxAmountCarrier,omitempty"`
}

// TaxCode is one tax code entry of the tax details.
type TaxCode struct {
	TaxCodes       []string `json:"taxCodes,omitempty"`
	TaxLiability   string   `json:"taxLiability,omitempty"`
	BaseAmount     *float64 `json:"baseAmount,omitempty"`
	TaxAmount      *float64 `json:"taxAmount,omitempty"`
	SequenceID     *int     `json:"sequenceId,omitempty"`
	WarningMessage string   `json:"warningMessage,omitempty"`
}

// ChargesSummary is the prepaid/collect breakdown of the gross charges.
type ChargesSummary struct {
	WeightCharge           *PrepaidCollectAmount `json:"weightCharge,omitempty"`
	TotalCharges           *PrepaidCollectAmount `json:"totalCharges,omitempty"`
	ValuationCharge        *PrepaidCollectAmount `json:"valuationCharge,omitempty"`
	OtherChargesDueAgent   *PrepaidCollectAmount `json:"otherChargesDueAgent,omitempty"`
	OtherChargesDueCarrier *PrepaidCollectAmount `json:"otherChargesDueCarrier,omitempty"`
}

// PrepaidCollectAmount splits one charge into prepaid and collect amounts.
type PrepaidCollectAmount struct {
	Prepaid *Amount `json:"prepaid,omitempty"`
	Collect *Amount `json:"collect,omitempty"`
}

// IATACommission carries the commission percentage and amount.
type IATACommission struct {
	IATAPercentage   *float64 `json:"iataPercentage,omitempty"`
	CommissionAmount *Amount  `json:"commissionAmount,omitempty"`
}

// Incentive carries the carrier incentive amount.
type Incentive struct {
	IncentiveAmount *Amount `json:"incentiveAmount,omitempty"`
}
