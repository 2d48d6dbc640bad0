package model

import "time"

type TransportMode string

const (
	TransportPlane TransportMode = "plane"
	TransportTrain TransportMode = "train"
	TransportBus   TransportMode = "bus"
)

type ChargeType string

const (
	ChargeFixed      ChargeType = "fixed"
	ChargePercentage ChargeType = "percentage"
)

// Transport is one leg of the trip. CostPerTraveler is multiplied by the
// traveler count on the parent quotation, which the leg does not carry itself.
type Transport struct {
	ID              string        `json:"id"`
	From            string        `json:"from"`
	To              string        `json:"to"`
	Mode            TransportMode `json:"mode"`
	CostPerTraveler float64       `json:"costPerTraveler"`
	Date            *time.Time    `json:"date,omitempty"`
	Notes           string        `json:"notes,omitempty"`
}

// ItineraryItem is one day of the trip. HotelCost is a flat contribution,
// not per traveler; nil means no hotel booked that day.
type ItineraryItem struct {
	ID          string     `json:"id"`
	Date        time.Time  `json:"date"`
	Location    string     `json:"location"`
	Activities  string     `json:"activities,omitempty"`
	HotelName   string     `json:"hotelName,omitempty"`
	HotelCost   *float64   `json:"hotelCost,omitempty"`
	LocalTravel string     `json:"localTravel,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type AdditionalCost struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// ServiceCharge is the single per-quotation fee: an absolute amount when
// fixed, or a percentage of the pre-charge subtotal.
type ServiceCharge struct {
	Type  ChargeType `json:"type"`
	Value float64    `json:"value"`
}
