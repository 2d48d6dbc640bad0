package model

// Totals is the aggregated cost breakdown of one quotation. Values are in
// currency units and unrounded; formatting belongs to the rendering layer.
type Totals struct {
	TransportTotal       float64 `json:"transportTotal"`
	HotelTotal           float64 `json:"hotelTotal"`
	AdditionalCostsTotal float64 `json:"additionalCostsTotal"`
	Subtotal             float64 `json:"subtotal"`
	ServiceChargeAmount  float64 `json:"serviceChargeAmount"`
	GrandTotal           float64 `json:"grandTotal"`
}
