// Package pricing computes cost totals from a quotation snapshot. It is pure
// arithmetic: no validation, no clamping. Inputs are validated at the form
// boundary before they reach the aggregate.
package pricing

import "github.com/travelpro/quotes-service/internal/model"

// CalculateTotals derives the six-field cost breakdown from a quotation.
// A nil quotation is the defined zero-state (nothing selected), not an error.
func CalculateTotals(q *model.Quotation) model.Totals {
	if q == nil {
		return model.Totals{}
	}

	travelers := float64(q.Details.NumberOfTravelers)

	var transportTotal float64
	for _, leg := range q.TransportOptions {
		transportTotal += leg.CostPerTraveler * travelers
	}

	var hotelTotal float64
	for _, item := range q.ItineraryItems {
		if item.HotelCost != nil {
			hotelTotal += *item.HotelCost
		}
	}

	var additionalCostsTotal float64
	for _, cost := range q.AdditionalCosts {
		additionalCostsTotal += cost.Amount
	}

	subtotal := transportTotal + hotelTotal + additionalCostsTotal

	var serviceChargeAmount float64
	if q.ServiceCharge != nil {
		switch q.ServiceCharge.Type {
		case model.ChargeFixed:
			serviceChargeAmount = q.ServiceCharge.Value
		case model.ChargePercentage:
			serviceChargeAmount = subtotal * q.ServiceCharge.Value / 100
		}
	}

	return model.Totals{
		TransportTotal:       transportTotal,
		HotelTotal:           hotelTotal,
		AdditionalCostsTotal: additionalCostsTotal,
		Subtotal:             subtotal,
		ServiceChargeAmount:  serviceChargeAmount,
		GrandTotal:           subtotal + serviceChargeAmount,
	}
}
