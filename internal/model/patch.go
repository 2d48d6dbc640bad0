package model

import "time"

// Patch structs carry partial updates: nil fields leave the target unchanged.
// ID, CreatedAt and minted ids are never patchable.

type DetailsPatch struct {
	CustomerName      *string    `json:"customerName,omitempty"`
	NumberOfTravelers *int       `json:"numberOfTravelers,omitempty"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	TravelLocations   *string    `json:"travelLocations,omitempty"`
	Budget            *float64   `json:"budget,omitempty"`
	Status            *Status    `json:"status,omitempty"`
}

func (d *QuotationDetails) Apply(p DetailsPatch) {
	if p.CustomerName != nil {
		d.CustomerName = *p.CustomerName
	}
	if p.NumberOfTravelers != nil {
		d.NumberOfTravelers = *p.NumberOfTravelers
	}
	if p.StartDate != nil {
		d.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		d.EndDate = *p.EndDate
	}
	if p.TravelLocations != nil {
		d.TravelLocations = *p.TravelLocations
	}
	if p.Budget != nil {
		budget := *p.Budget
		d.Budget = &budget
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
}

type TransportPatch struct {
	From            *string        `json:"from,omitempty"`
	To              *string        `json:"to,omitempty"`
	Mode            *TransportMode `json:"mode,omitempty"`
	CostPerTraveler *float64       `json:"costPerTraveler,omitempty"`
	Date            *time.Time     `json:"date,omitempty"`
	Notes           *string        `json:"notes,omitempty"`
}

func (t *Transport) Apply(p TransportPatch) {
	if p.From != nil {
		t.From = *p.From
	}
	if p.To != nil {
		t.To = *p.To
	}
	if p.Mode != nil {
		t.Mode = *p.Mode
	}
	if p.CostPerTraveler != nil {
		t.CostPerTraveler = *p.CostPerTraveler
	}
	if p.Date != nil {
		date := *p.Date
		t.Date = &date
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
}

type ItineraryItemPatch struct {
	Date        *time.Time `json:"date,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Activities  *string    `json:"activities,omitempty"`
	HotelName   *string    `json:"hotelName,omitempty"`
	HotelCost   *float64   `json:"hotelCost,omitempty"`
	LocalTravel *string    `json:"localTravel,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

func (i *ItineraryItem) Apply(p ItineraryItemPatch) {
	if p.Date != nil {
		i.Date = *p.Date
	}
	if p.Location != nil {
		i.Location = *p.Location
	}
	if p.Activities != nil {
		i.Activities = *p.Activities
	}
	if p.HotelName != nil {
		i.HotelName = *p.HotelName
	}
	if p.HotelCost != nil {
		cost := *p.HotelCost
		i.HotelCost = &cost
	}
	if p.LocalTravel != nil {
		i.LocalTravel = *p.LocalTravel
	}
	if p.Notes != nil {
		i.Notes = *p.Notes
	}
}

type AdditionalCostPatch struct {
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
}

func (c *AdditionalCost) Apply(p AdditionalCostPatch) {
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Amount != nil {
		c.Amount = *p.Amount
	}
}
