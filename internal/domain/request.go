package domain

// Operation identifies which airwaybill operation triggered the pricing call.
type Operation string

const (
	// OperationAWBCreate prices a new airwaybill.
	OperationAWBCreate Operation = "AWB_CREATE"
	// OperationAWBUpdate reprices an existing airwaybill.
	OperationAWBUpdate Operation = "AWB_UPDATE"
)

// RatingRequest is the domain-side pricing request for one airwaybill.
type RatingRequest struct {
	RequestType string              `json:"requestType"`
	RatingLines []RatingLineRequest `json:"ratingLines"`
}

// RatingLineRequest is one outbound rating line. Line numbers are re-derived
// from the slice position on every pricing call, overwriting any prior value.
type RatingLineRequest struct {
	LineNumber       string  `json:"lineNumber,omitempty"`
	RateClass        string  `json:"rateClass,omitempty"`
	Commodity        string  `json:"commodity,omitempty"`
	Pieces           *int    `json:"pieces,omitempty"`
	GrossWeight      *Weight `json:"grossWeight,omitempty"`
	ChargeableWeight *Weight `json:"chargeableWeight,omitempty"`
	RateCharge       *Money  `json:"rateCharge,omitempty"`
	Service          string  `json:"service,omitempty"`
	NatureOfGoods    string  `json:"natureOfGoods,omitempty"`
	GoodsType        string  `json:"goodsType,omitempty"`
	ULDType          string  `json:"uldType,omitempty"`
	ManuallyChanged  bool    `json:"manuallyChanged,omitempty"`
}
