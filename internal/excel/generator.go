// Package excel renders a quotation as a workbook: a summary sheet plus one
// sheet per line-item category.
package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/travelpro/quotes-service/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(doc model.QuoteDocument) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, doc); err != nil {
		return nil, err
	}
	if err := g.writeTransport(file, doc); err != nil {
		return nil, err
	}
	if err := g.writeItinerary(file, doc); err != nil {
		return nil, err
	}
	if err := g.writeAdditionalCosts(file, doc); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, doc model.QuoteDocument) error {
	details := doc.Quotation.Details

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Company")
	set("B1", doc.CompanyName)
	set("A2", "Customer")
	set("B2", details.CustomerName)
	set("A3", "Travelers")
	set("B3", details.NumberOfTravelers)
	set("A4", "Start date")
	set("B4", formatDate(details.StartDate))
	set("A5", "End date")
	set("B5", formatDate(details.EndDate))
	set("A6", "Locations")
	set("B6", details.TravelLocations)
	set("A7", "Status")
	set("B7", string(details.Status))
	set("A8", "Currency")
	set("B8", doc.Currency)

	summaryRow := 10
	rows := []struct {
		label string
		value float64
	}{
		{"Transport total", doc.Totals.TransportTotal},
		{"Hotel total", doc.Totals.HotelTotal},
		{"Additional costs total", doc.Totals.AdditionalCostsTotal},
		{"Subtotal", doc.Totals.Subtotal},
		{"Service charge", doc.Totals.ServiceChargeAmount},
		{"Grand total", doc.Totals.GrandTotal},
	}
	for i, row := range rows {
		set(fmt.Sprintf("A%d", summaryRow+i), row.label)
		set(fmt.Sprintf("B%d", summaryRow+i), row.value)
	}

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 32)
	return nil
}

func (g *Generator) writeTransport(file *excelize.File, doc model.QuoteDocument) error {
	sheet := "Transport"
	if _, err := file.NewSheet(sheet); err != nil {
		return err
	}

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"From", "To", "Mode", "Date", "Cost per traveler", "Leg total"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	travelers := float64(doc.Quotation.Details.NumberOfTravelers)
	for i, leg := range doc.Quotation.TransportOptions {
		row := i + 2
		set(fmt.Sprintf("A%d", row), leg.From)
		set(fmt.Sprintf("B%d", row), leg.To)
		set(fmt.Sprintf("C%d", row), string(leg.Mode))
		if leg.Date != nil {
			set(fmt.Sprintf("D%d", row), formatDate(*leg.Date))
		}
		set(fmt.Sprintf("E%d", row), leg.CostPerTraveler)
		set(fmt.Sprintf("F%d", row), leg.CostPerTraveler*travelers)
	}

	_ = file.SetColWidth(sheet, "A", "B", 24)
	_ = file.SetColWidth(sheet, "C", "D", 14)
	_ = file.SetColWidth(sheet, "E", "F", 18)
	return nil
}

func (g *Generator) writeItinerary(file *excelize.File, doc model.QuoteDocument) error {
	sheet := "Itinerary"
	if _, err := file.NewSheet(sheet); err != nil {
		return err
	}

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Date", "Location", "Activities", "Hotel", "Hotel cost", "Local travel", "Notes"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, item := range doc.Quotation.ItineraryItems {
		row := i + 2
		set(fmt.Sprintf("A%d", row), formatDate(item.Date))
		set(fmt.Sprintf("B%d", row), item.Location)
		set(fmt.Sprintf("C%d", row), item.Activities)
		set(fmt.Sprintf("D%d", row), item.HotelName)
		if item.HotelCost != nil {
			set(fmt.Sprintf("E%d", row), *item.HotelCost)
		}
		set(fmt.Sprintf("F%d", row), item.LocalTravel)
		set(fmt.Sprintf("G%d", row), item.Notes)
	}

	_ = file.SetColWidth(sheet, "A", "A", 14)
	_ = file.SetColWidth(sheet, "B", "D", 26)
	_ = file.SetColWidth(sheet, "E", "E", 12)
	_ = file.SetColWidth(sheet, "F", "G", 26)
	return nil
}

func (g *Generator) writeAdditionalCosts(file *excelize.File, doc model.QuoteDocument) error {
	sheet := "Additional Costs"
	if _, err := file.NewSheet(sheet); err != nil {
		return err
	}

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Description")
	set("B1", "Amount")
	for i, cost := range doc.Quotation.AdditionalCosts {
		row := i + 2
		set(fmt.Sprintf("A%d", row), cost.Description)
		set(fmt.Sprintf("B%d", row), cost.Amount)
	}

	_ = file.SetColWidth(sheet, "A", "A", 40)
	_ = file.SetColWidth(sheet, "B", "B", 14)
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
