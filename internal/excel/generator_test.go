package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/travelpro/quotes-service/internal/excel"
	"github.com/travelpro/quotes-service/internal/model"
	"github.com/travelpro/quotes-service/internal/pricing"
)

func sampleDocument() model.QuoteDocument {
	hotelCost := 125.0
	q := model.Quotation{
		Details: model.QuotationDetails{
			ID:                "11111111-2222-3333-4444-555555555555",
			CustomerName:      "Alex Rivera",
			NumberOfTravelers: 2,
			StartDate:         time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:           time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			TravelLocations:   "Lisbon, Porto",
			CreatedAt:         time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
			Status:            model.StatusDraft,
		},
		TransportOptions: []model.Transport{
			{ID: "t1", From: "Lisbon", To: "Porto", Mode: model.TransportTrain, CostPerTraveler: 45},
		},
		ItineraryItems: []model.ItineraryItem{
			{
				ID:        "i1",
				Date:      time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
				Location:  "Porto",
				HotelName: "Hotel Douro",
				HotelCost: &hotelCost,
			},
		},
		AdditionalCosts: []model.AdditionalCost{
			{ID: "c1", Description: "Travel insurance", Amount: 60},
		},
		ServiceCharge: &model.ServiceCharge{Type: model.ChargePercentage, Value: 10},
	}
	return model.QuoteDocument{
		Quotation:   q,
		Totals:      pricing.CalculateTotals(&q),
		CompanyName: "TravelPro Agency",
		Currency:    "USD",
		Terms: model.QuoteTerms{
			ValidityDays:      14,
			DepositPercent:    25,
			PaymentDaysBefore: 30,
		},
		GeneratedAt: time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
	}
}

func TestGenerate(t *testing.T) {
	content, err := excel.NewGenerator().Generate(sampleDocument())
	require.NoError(t, err)
	require.NotEmpty(t, content)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.ElementsMatch(t, []string{"Summary", "Transport", "Itinerary", "Additional Costs"}, file.GetSheetList())

	customer, err := file.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Alex Rivera", customer)

	grandLabel, err := file.GetCellValue("Summary", "A15")
	require.NoError(t, err)
	assert.Equal(t, "Grand total", grandLabel)

	grand, err := file.GetCellValue("Summary", "B15")
	require.NoError(t, err)
	assert.Equal(t, "302.5", grand)

	legFrom, err := file.GetCellValue("Transport", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", legFrom)

	legTotal, err := file.GetCellValue("Transport", "F2")
	require.NoError(t, err)
	assert.Equal(t, "90", legTotal)

	hotel, err := file.GetCellValue("Itinerary", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Hotel Douro", hotel)

	costDesc, err := file.GetCellValue("Additional Costs", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Travel insurance", costDesc)
}

func TestGenerate_EmptyLineItems(t *testing.T) {
	doc := sampleDocument()
	doc.Quotation.TransportOptions = nil
	doc.Quotation.ItineraryItems = nil
	doc.Quotation.AdditionalCosts = nil
	doc.Quotation.ServiceCharge = nil
	doc.Totals = pricing.CalculateTotals(&doc.Quotation)

	content, err := excel.NewGenerator().Generate(doc)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	grand, err := file.GetCellValue("Summary", "B15")
	require.NoError(t, err)
	assert.Equal(t, "0", grand)
}
