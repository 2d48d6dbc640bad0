package model

import "time"

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// Step is a stage of the guided quotation wizard.
type Step string

const (
	StepDetails   Step = "details"
	StepTransport Step = "transport"
	StepItinerary Step = "itinerary"
	StepCosts     Step = "costs"
	StepSummary   Step = "summary"
	StepPreview   Step = "preview"
)

type QuotationDetails struct {
	ID                string     `json:"id"`
	CustomerName      string     `json:"customerName"`
	NumberOfTravelers int        `json:"numberOfTravelers"`
	StartDate         time.Time  `json:"startDate"`
	EndDate           time.Time  `json:"endDate"`
	TravelLocations   string     `json:"travelLocations"`
	Budget            *float64   `json:"budget,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	Status            Status     `json:"status"`
}

// Quotation is the aggregate root: customer details plus every line-item
// category and the optional service charge.
type Quotation struct {
	Details          QuotationDetails `json:"details"`
	TransportOptions []Transport      `json:"transportOptions"`
	ItineraryItems   []ItineraryItem  `json:"itineraryItems"`
	AdditionalCosts  []AdditionalCost `json:"additionalCosts"`
	ServiceCharge    *ServiceCharge   `json:"serviceCharge,omitempty"`
}

// Clone returns a deep copy. Saved entries and the quotation under edit must
// stay independent, so every handoff between the two goes through Clone.
func (q *Quotation) Clone() *Quotation {
	if q == nil {
		return nil
	}
	out := &Quotation{
		Details:          q.Details,
		TransportOptions: make([]Transport, len(q.TransportOptions)),
		ItineraryItems:   make([]ItineraryItem, len(q.ItineraryItems)),
		AdditionalCosts:  make([]AdditionalCost, len(q.AdditionalCosts)),
	}
	if q.Details.Budget != nil {
		budget := *q.Details.Budget
		out.Details.Budget = &budget
	}
	for i, leg := range q.TransportOptions {
		out.TransportOptions[i] = leg
		if leg.Date != nil {
			date := *leg.Date
			out.TransportOptions[i].Date = &date
		}
	}
	for i, item := range q.ItineraryItems {
		out.ItineraryItems[i] = item
		if item.HotelCost != nil {
			cost := *item.HotelCost
			out.ItineraryItems[i].HotelCost = &cost
		}
	}
	copy(out.AdditionalCosts, q.AdditionalCosts)
	if q.ServiceCharge != nil {
		charge := *q.ServiceCharge
		out.ServiceCharge = &charge
	}
	return out
}
