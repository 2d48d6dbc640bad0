// Package pdf renders a quotation as a printable document.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/travelpro/quotes-service/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(doc model.QuoteDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	details := doc.Quotation.Details

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, doc.CompanyName, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "B", 13)
	pdf.CellFormat(0, 8, "Travel Quote", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Quote ref %s, issued %s", shortRef(details.ID), formatDate(doc.GeneratedAt)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	g.addClientBlock(pdf, details)
	pdf.Ln(2)
	g.addTravelBlock(pdf, details, doc.Currency)
	pdf.Ln(4)

	g.addTransportSection(pdf, doc)
	g.addItinerarySection(pdf, doc)
	if len(doc.Quotation.AdditionalCosts) > 0 {
		g.addAdditionalCostsSection(pdf, doc)
	}
	g.addSummarySection(pdf, doc)
	g.addTermsSection(pdf, doc.Terms)

	pdf.SetFont(g.fontName, "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s - thank you for travelling with us.", doc.CompanyName), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) addClientBlock(pdf *gofpdf.Fpdf, details model.QuotationDetails) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, "Client", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.MultiCell(0, 5, details.CustomerName, "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Travelers: %d", details.NumberOfTravelers), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Status: %s", details.Status), "", "L", false)
}

func (g *Generator) addTravelBlock(pdf *gofpdf.Fpdf, details model.QuotationDetails, currency string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, "Travel details", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf("Dates: %s to %s", formatDate(details.StartDate), formatDate(details.EndDate)), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Locations: %s", safeValue(details.TravelLocations)), "", "L", false)
	if details.Budget != nil {
		pdf.MultiCell(0, 5, fmt.Sprintf("Budget: %s %s", formatAmount(*details.Budget), currency), "", "L", false)
	}
}

func (g *Generator) addTransportSection(pdf *gofpdf.Fpdf, doc model.QuoteDocument) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Transportation", "", 1, "L", false, 0, "")

	travelers := float64(doc.Quotation.Details.NumberOfTravelers)
	headers := []string{"From", "To", "Mode", "Date", "Per traveler", "Total"}
	widths := []float64{35, 35, 20, 25, 32, 33}
	g.drawTableRow(pdf, headers, widths, true)

	for _, leg := range doc.Quotation.TransportOptions {
		date := "-"
		if leg.Date != nil {
			date = formatDate(*leg.Date)
		}
		row := []string{
			leg.From,
			leg.To,
			string(leg.Mode),
			date,
			formatAmount(leg.CostPerTraveler),
			formatAmount(leg.CostPerTraveler * travelers),
		}
		g.drawTableRow(pdf, row, widths, false)
	}

	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Transport total: %s %s", formatAmount(doc.Totals.TransportTotal), doc.Currency), "", 1, "R", false, 0, "")
	pdf.Ln(2)
}

func (g *Generator) addItinerarySection(pdf *gofpdf.Fpdf, doc model.QuoteDocument) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Itinerary", "", 1, "L", false, 0, "")

	headers := []string{"Date", "Location", "Hotel", "Hotel cost"}
	widths := []float64{25, 65, 60, 30}
	g.drawTableRow(pdf, headers, widths, true)

	for _, item := range doc.Quotation.ItineraryItems {
		hotelCost := "-"
		if item.HotelCost != nil {
			hotelCost = formatAmount(*item.HotelCost)
		}
		row := []string{
			formatDate(item.Date),
			item.Location,
			safeValue(item.HotelName),
			hotelCost,
		}
		g.drawTableRow(pdf, row, widths, false)
	}

	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Hotel total: %s %s", formatAmount(doc.Totals.HotelTotal), doc.Currency), "", 1, "R", false, 0, "")
	pdf.Ln(2)
}

func (g *Generator) addAdditionalCostsSection(pdf *gofpdf.Fpdf, doc model.QuoteDocument) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Additional costs", "", 1, "L", false, 0, "")

	headers := []string{"Description", "Amount"}
	widths := []float64{140, 40}
	g.drawTableRow(pdf, headers, widths, true)

	for _, cost := range doc.Quotation.AdditionalCosts {
		g.drawTableRow(pdf, []string{cost.Description, formatAmount(cost.Amount)}, widths, false)
	}

	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Additional costs total: %s %s", formatAmount(doc.Totals.AdditionalCostsTotal), doc.Currency), "", 1, "R", false, 0, "")
	pdf.Ln(2)
}

func (g *Generator) addSummarySection(pdf *gofpdf.Fpdf, doc model.QuoteDocument) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Cost summary", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	lines := []struct {
		label string
		value float64
	}{
		{"Transportation", doc.Totals.TransportTotal},
		{"Hotels", doc.Totals.HotelTotal},
		{"Additional costs", doc.Totals.AdditionalCostsTotal},
		{"Subtotal", doc.Totals.Subtotal},
		{serviceChargeLabel(doc.Quotation.ServiceCharge), doc.Totals.ServiceChargeAmount},
	}
	for _, line := range lines {
		pdf.CellFormat(140, 6, line.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%s %s", formatAmount(line.value), doc.Currency), "", 1, "R", false, 0, "")
	}

	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(140, 8, "Grand total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%s %s", formatAmount(doc.Totals.GrandTotal), doc.Currency), "T", 1, "R", false, 0, "")
	pdf.Ln(4)
}

func (g *Generator) addTermsSection(pdf *gofpdf.Fpdf, terms model.QuoteTerms) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Terms and conditions", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 9)

	lines := []string{
		fmt.Sprintf("1. This quotation is valid for %d days from the issue date.", terms.ValidityDays),
		fmt.Sprintf("2. A deposit of %d%% is required to confirm the booking.", terms.DepositPercent),
		fmt.Sprintf("3. Full payment is required %d days before the travel start date.", terms.PaymentDaysBefore),
		"4. Cancellation policy applies as per our standard terms.",
		"5. Prices are subject to change based on availability.",
		"6. Travel insurance is strongly recommended.",
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	pdf.Ln(4)
}

func (g *Generator) drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(g.fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i >= len(cols)-2 && !header {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func serviceChargeLabel(charge *model.ServiceCharge) string {
	if charge == nil {
		return "Service charge"
	}
	if charge.Type == model.ChargePercentage {
		return fmt.Sprintf("Service charge (%s%%)", formatAmount(charge.Value))
	}
	return "Service charge (fixed)"
}

func shortRef(id string) string {
	if len(id) >= 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02 Jan 2006")
}
