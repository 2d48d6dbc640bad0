// Package registry owns the quotation editing session: the saved collection,
// the single quotation under edit, and the active wizard step. It is the only
// mutation surface for quotation data.
//
// Mutations aimed at a missing current quotation or an unknown id are quiet
// no-ops, reported through the boolean return so callers can respond without
// the session ever faulting mid-edit.
package registry

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travelpro/quotes-service/internal/model"
	"github.com/travelpro/quotes-service/internal/pricing"
)

// Registry serializes access with a mutex: the session models a single user,
// but the HTTP boundary may deliver that user's actions on different
// goroutines. Each operation is one atomic state transition.
type Registry struct {
	mu         sync.Mutex
	quotations []*model.Quotation
	current    *model.Quotation
	step       model.Step
}

// New constructs an empty session. The step is meaningless until a current
// quotation exists; callers land on the quotation list until then.
func New() *Registry {
	return &Registry{step: model.StepDetails}
}

// NewQuotationInput carries the validated details for a fresh quotation.
// ID, CreatedAt and Status are minted here, never supplied.
type NewQuotationInput struct {
	CustomerName      string
	NumberOfTravelers int
	StartDate         time.Time
	EndDate           time.Time
	TravelLocations   string
	Budget            *float64
}

// CreateNewQuotation starts a draft with empty line-item lists, makes it
// current, and moves the wizard to the transport step.
func (r *Registry) CreateNewQuotation(in NewQuotationInput) model.Quotation {
	r.mu.Lock()
	defer r.mu.Unlock()

	q := &model.Quotation{
		Details: model.QuotationDetails{
			ID:                uuid.NewString(),
			CustomerName:      in.CustomerName,
			NumberOfTravelers: in.NumberOfTravelers,
			StartDate:         in.StartDate,
			EndDate:           in.EndDate,
			TravelLocations:   in.TravelLocations,
			Budget:            in.Budget,
			CreatedAt:         time.Now(),
			Status:            model.StatusDraft,
		},
		TransportOptions: []model.Transport{},
		ItineraryItems:   []model.ItineraryItem{},
		AdditionalCosts:  []model.AdditionalCost{},
	}
	r.current = q
	r.step = model.StepTransport
	return *q.Clone()
}

// UpdateQuotationDetails merges a partial update into the current quotation's
// details; line items are untouched.
func (r *Registry) UpdateQuotationDetails(p model.DetailsPatch) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return false
	}
	r.current.Details.Apply(p)
	return true
}

func (r *Registry) AddTransport(leg model.Transport) (model.Transport, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return model.Transport{}, false
	}
	leg.ID = uuid.NewString()
	r.current.TransportOptions = append(r.current.TransportOptions, leg)
	return leg, true
}

func (r *Registry) UpdateTransport(id string, p model.TransportPatch) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return false
	}
	for i := range r.current.TransportOptions {
		if r.current.TransportOptions[i].ID == id {
			r.current.TransportOptions[i].Apply(p)
			return true
		}
	}
	return false
}

func (r *Registry) RemoveTransport(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return false
	}
	for i, leg := range r.current.TransportOptions {
		if leg.ID == id {
			r.current.TransportOptions = append(r.current.TransportOptions[:i], r.current.TransportOptions[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Registry) AddItineraryItem(item model.ItineraryItem) (model.ItineraryItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return model.ItineraryItem{}, false
	}
	item.ID = uuid.NewString()
	r.current.ItineraryItems = append(r.current.ItineraryItems, item)
	return item, true
}

func (r *Registry) UpdateItineraryItem(id string, p model.ItineraryItemPatch) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return false
	}
	for i := range r.current.ItineraryItems {
		if r.current.ItineraryItems[i].ID == id {
			r.current.ItineraryItems[i].Apply(p)
			return true
		}
	}
	return false
}

func (r *Registry) RemoveItineraryItem(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return false
	}
	for i, item := range r.current.ItineraryItems {
		if item.ID == id {
			r.current.ItineraryItems = append(r.current.ItineraryItems[:i], r.current.ItineraryItems[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Registry) AddAdditionalCost(cost model.AdditionalCost) (model.AdditionalCost, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return model.AdditionalCost{}, false
	}
	cost.ID = uuid.NewString()
	r.current.AdditionalCosts = append(r.current.AdditionalCosts, cost)
	return cost, true
}

func (r *Registry) UpdateAdditionalCost(id string, p model.AdditionalCostPatch) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return false
	}
	for i := range r.current.AdditionalCosts {
		if r.current.AdditionalCosts[i].ID == id {
			r.current.AdditionalCosts[i].Apply(p)
			return true
		}
	}
	return false
}

func (r *Registry) RemoveAdditionalCost(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return false
	}
	for i, cost := range r.current.AdditionalCosts {
		if cost.ID == id {
			r.current.AdditionalCosts = append(r.current.AdditionalCosts[:i], r.current.AdditionalCosts[i+1:]...)
			return true
		}
	}
	return false
}

// SetServiceCharge replaces the quotation's single service charge wholesale.
func (r *Registry) SetServiceCharge(charge model.ServiceCharge) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return false
	}
	r.current.ServiceCharge = &charge
	return true
}

// SaveQuotation upserts a deep copy of the current quotation into the saved
// collection, matched by details id. The returned snapshot is what was saved.
func (r *Registry) SaveQuotation() (model.Quotation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return model.Quotation{}, false
	}
	saved := r.current.Clone()
	for i, q := range r.quotations {
		if q.Details.ID == saved.Details.ID {
			r.quotations[i] = saved
			return *saved.Clone(), true
		}
	}
	r.quotations = append(r.quotations, saved)
	return *saved.Clone(), true
}

// DuplicateQuotation deep-copies a saved entry under a fresh id with
// " (Copy)" appended to the customer name and draft status. The quotation
// under edit and the wizard step are not affected.
func (r *Registry) DuplicateQuotation(id string) (model.Quotation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	source := r.findSaved(id)
	if source == nil {
		return model.Quotation{}, false
	}
	dup := source.Clone()
	dup.Details.ID = uuid.NewString()
	dup.Details.CustomerName += " (Copy)"
	dup.Details.CreatedAt = time.Now()
	dup.Details.Status = model.StatusDraft
	r.quotations = append(r.quotations, dup)
	return *dup.Clone(), true
}

// EditQuotation makes a copy of a saved entry current and rewinds the wizard
// to the details step.
func (r *Registry) EditQuotation(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	source := r.findSaved(id)
	if source == nil {
		return false
	}
	r.current = source.Clone()
	r.step = model.StepDetails
	return true
}

// DeleteQuotation removes a saved entry; if it was also the quotation under
// edit, the session drops back to the landing state.
func (r *Registry) DeleteQuotation(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, q := range r.quotations {
		if q.Details.ID == id {
			r.quotations = append(r.quotations[:i], r.quotations[i+1:]...)
			if r.current != nil && r.current.Details.ID == id {
				r.current = nil
			}
			return true
		}
	}
	return false
}

// ResetCurrentQuotation discards unsaved edits and returns to the landing
// state. Saved entries are untouched.
func (r *Registry) ResetCurrentQuotation() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = nil
}

// Totals delegates to the aggregation engine over the current quotation;
// with nothing under edit it reports the zero-state breakdown.
func (r *Registry) Totals() model.Totals {
	r.mu.Lock()
	defer r.mu.Unlock()

	return pricing.CalculateTotals(r.current)
}

// CurrentQuotation returns a snapshot of the quotation under edit, or nil.
func (r *Registry) CurrentQuotation() *model.Quotation {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current.Clone()
}

// Quotations returns snapshots of the saved collection in insertion order.
func (r *Registry) Quotations() []model.Quotation {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Quotation, len(r.quotations))
	for i, q := range r.quotations {
		out[i] = *q.Clone()
	}
	return out
}

// Restore seeds the saved collection, replacing whatever is there. Used to
// rehydrate a session from an external archive at startup.
func (r *Registry) Restore(quotations []model.Quotation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.quotations = make([]*model.Quotation, len(quotations))
	for i := range quotations {
		r.quotations[i] = quotations[i].Clone()
	}
}

// findSaved is called with the mutex held.
func (r *Registry) findSaved(id string) *model.Quotation {
	for _, q := range r.quotations {
		if q.Details.ID == id {
			return q
		}
	}
	return nil
}
