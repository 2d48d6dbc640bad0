package model

import "time"

// QuoteTerms are the boilerplate figures printed in the terms section of an
// exported quotation document.
type QuoteTerms struct {
	ValidityDays      int
	DepositPercent    int
	PaymentDaysBefore int
}

// QuoteDocument is the snapshot handed to the PDF and Excel generators:
// the quotation, its computed totals, and presentation settings.
type QuoteDocument struct {
	Quotation   Quotation
	Totals      Totals
	CompanyName string
	Currency    string
	Terms       QuoteTerms
	GeneratedAt time.Time
}
