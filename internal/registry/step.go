package registry

import (
	"fmt"

	"github.com/travelpro/quotes-service/internal/model"
)

var stepOrder = []model.Step{
	model.StepDetails,
	model.StepTransport,
	model.StepItinerary,
	model.StepCosts,
	model.StepSummary,
	model.StepPreview,
}

// StepGuardError reports why the wizard refused to leave a step.
type StepGuardError struct {
	Step   model.Step
	Reason string
}

func (e *StepGuardError) Error() string {
	return fmt.Sprintf("cannot leave step %q: %s", e.Step, e.Reason)
}

// Step returns the active wizard step.
func (r *Registry) Step() model.Step {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.step
}

// SetStep jumps to a step directly. Jumps are never gated; the guard rules
// apply only to Advance.
func (r *Registry) SetStep(step model.Step) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.step = step
}

// Advance moves the wizard one step forward, enforcing each step's
// minimum-content rule: at least one transport leg before leaving transport,
// at least one itinerary item before leaving itinerary. With no current
// quotation, or already on the last step, it does nothing.
func (r *Registry) Advance() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return nil
	}
	switch r.step {
	case model.StepTransport:
		if len(r.current.TransportOptions) == 0 {
			return &StepGuardError{Step: r.step, Reason: "add at least one transport option before continuing"}
		}
	case model.StepItinerary:
		if len(r.current.ItineraryItems) == 0 {
			return &StepGuardError{Step: r.step, Reason: "add at least one itinerary item before continuing"}
		}
	}
	for i, step := range stepOrder {
		if step == r.step {
			if i+1 < len(stepOrder) {
				r.step = stepOrder[i+1]
			}
			return nil
		}
	}
	return nil
}
