package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/travelpro/quotes-service/internal/model"
	"github.com/travelpro/quotes-service/internal/pricing"
)

func ptr(v float64) *float64 { return &v }

func quotationWith(travelers int) *model.Quotation {
	return &model.Quotation{
		Details: model.QuotationDetails{NumberOfTravelers: travelers},
	}
}

func TestCalculateTotals_NilQuotation(t *testing.T) {
	assert.Equal(t, model.Totals{}, pricing.CalculateTotals(nil))
}

func TestCalculateTotals_TransportMultipliesTravelers(t *testing.T) {
	q := quotationWith(2)
	q.TransportOptions = []model.Transport{
		{CostPerTraveler: 100},
		{CostPerTraveler: 250},
	}

	totals := pricing.CalculateTotals(q)

	assert.Equal(t, 700.0, totals.TransportTotal)
	assert.Equal(t, 700.0, totals.Subtotal)
	assert.Equal(t, 700.0, totals.GrandTotal)
}

func TestCalculateTotals_HotelIgnoresItemsWithoutCost(t *testing.T) {
	q := quotationWith(1)
	q.ItineraryItems = []model.ItineraryItem{
		{HotelCost: ptr(50)},
		{HotelCost: nil},
		{HotelCost: ptr(75)},
	}

	totals := pricing.CalculateTotals(q)

	assert.Equal(t, 125.0, totals.HotelTotal)
}

func TestCalculateTotals_HotelCostIsFlatNotPerTraveler(t *testing.T) {
	q := quotationWith(4)
	q.ItineraryItems = []model.ItineraryItem{{HotelCost: ptr(200)}}

	assert.Equal(t, 200.0, pricing.CalculateTotals(q).HotelTotal)
}

func TestCalculateTotals_EmptyAdditionalCosts(t *testing.T) {
	q := quotationWith(1)

	totals := pricing.CalculateTotals(q)

	assert.Equal(t, 0.0, totals.AdditionalCostsTotal)
}

func TestCalculateTotals_ServiceCharge(t *testing.T) {
	base := func() *model.Quotation {
		q := quotationWith(2)
		q.TransportOptions = []model.Transport{
			{CostPerTraveler: 100},
			{CostPerTraveler: 250},
		}
		return q
	}

	tests := []struct {
		name        string
		charge      *model.ServiceCharge
		wantCharge  float64
		wantGrand   float64
	}{
		{"fixed", &model.ServiceCharge{Type: model.ChargeFixed, Value: 40}, 40, 740},
		{"percentage", &model.ServiceCharge{Type: model.ChargePercentage, Value: 10}, 70, 770},
		{"none", nil, 0, 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := base()
			q.ServiceCharge = tt.charge

			totals := pricing.CalculateTotals(q)

			assert.Equal(t, 700.0, totals.Subtotal)
			assert.Equal(t, tt.wantCharge, totals.ServiceChargeAmount)
			assert.Equal(t, tt.wantGrand, totals.GrandTotal)
		})
	}
}

func TestCalculateTotals_AllCategories(t *testing.T) {
	q := quotationWith(3)
	q.TransportOptions = []model.Transport{{CostPerTraveler: 120}}
	q.ItineraryItems = []model.ItineraryItem{
		{HotelCost: ptr(80)},
		{},
	}
	q.AdditionalCosts = []model.AdditionalCost{
		{Amount: 25},
		{Amount: 15},
	}
	q.ServiceCharge = &model.ServiceCharge{Type: model.ChargePercentage, Value: 5}

	totals := pricing.CalculateTotals(q)

	assert.Equal(t, 360.0, totals.TransportTotal)
	assert.Equal(t, 80.0, totals.HotelTotal)
	assert.Equal(t, 40.0, totals.AdditionalCostsTotal)
	assert.Equal(t, 480.0, totals.Subtotal)
	assert.Equal(t, 24.0, totals.ServiceChargeAmount)
	assert.Equal(t, 504.0, totals.GrandTotal)
}

func TestCalculateTotals_Idempotent(t *testing.T) {
	q := quotationWith(2)
	q.TransportOptions = []model.Transport{{CostPerTraveler: 99.5}}
	q.ServiceCharge = &model.ServiceCharge{Type: model.ChargePercentage, Value: 12.5}

	first := pricing.CalculateTotals(q)
	second := pricing.CalculateTotals(q)

	assert.Equal(t, first, second)
}
