package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/NexaiGuy/nexai-website/internal/catalog"
	"github.com/NexaiGuy/nexai-website/internal/dispatch"
)

// FormState is the mutable record of everything the user has entered during
// one wizard session. It is owned exclusively by its Session.
type FormState struct {
	ProjectType      string `json:"project_type"`
	Budget           string `json:"budget"`
	Timeline         string `json:"timeline"`
	Description      string `json:"description"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Company          string `json:"company"`
	Phone            string `json:"phone"`
	SelectedTimeSlot string `json:"selected_time_slot"`
}

// Dispatcher is the contract the wizard consumes to send booking emails.
// Both the in-process dispatch.Service and the HTTP dispatch.Client satisfy it.
type Dispatcher interface {
	Dispatch(ctx context.Context, req *dispatch.EmailDispatchRequest) (*dispatch.Result, error)
}

// Session is one user's pass through the booking wizard. It is not safe for
// concurrent use; the Store serializes access per session.
type Session struct {
	ID        string    `json:"id"`
	Step      Step      `json:"-"`
	Form      FormState `json:"form"`
	Warning   string    `json:"warning,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	catalog *catalog.Catalog
}

// NewSession creates a session in the Closed resting state.
func NewSession(id string, cat *catalog.Catalog) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		Step:      StepClosed,
		CreatedAt: now,
		UpdatedAt: now,
		catalog:   cat,
	}
}

// Open moves a Closed session to the first form step.
func (s *Session) Open() error {
	if s.Step != StepClosed {
		return ErrAlreadyOpen
	}
	s.Step = firstFormStep
	s.touch()
	return nil
}

// SetProjectType records the chosen service. Pure setter; validity is
// computed on demand by StepValid.
func (s *Session) SetProjectType(id string) {
	s.Form.ProjectType = id
	s.touch()
}

// SetBudget records the chosen budget bracket.
func (s *Session) SetBudget(id string) {
	s.Form.Budget = id
	s.touch()
}

// SetTimeline records the chosen delivery timeline.
func (s *Session) SetTimeline(id string) {
	s.Form.Timeline = id
	s.touch()
}

// SetDescription records the project description.
func (s *Session) SetDescription(text string) {
	s.Form.Description = text
	s.touch()
}

// SetContactField records one of the contact fields by name.
func (s *Session) SetContactField(field, value string) error {
	switch field {
	case "name":
		s.Form.Name = value
	case "email":
		s.Form.Email = value
	case "company":
		s.Form.Company = value
	case "phone":
		s.Form.Phone = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	s.touch()
	return nil
}

// StepValid reports whether the given form step's requirements are met.
// Validity is per-step; it says nothing about later steps.
func (s *Session) StepValid(step Step) bool {
	switch step {
	case StepProjectType:
		return s.Form.ProjectType != ""
	case StepBudgetTimeline:
		return s.Form.Budget != "" && s.Form.Timeline != ""
	case StepDescription:
		// Minimum-content guard against empty submissions.
		return len(s.Form.Description) > 10
	case StepContact:
		return s.Form.Name != "" && s.Form.Email != "" && s.Form.Company != ""
	default:
		return false
	}
}

// Advance moves to the next step. It is rejected while the current step is
// incomplete, so a later step always implies every earlier step was filled
// in. From the contact step it enters slot selection.
func (s *Session) Advance() error {
	if !s.Step.isFormStep() {
		return ErrNotInFormStep
	}
	if !s.StepValid(s.Step) {
		return ErrStepIncomplete
	}
	if s.Step == lastFormStep {
		s.Step = StepSlotSelection
	} else {
		s.Step++
	}
	s.touch()
	return nil
}

// Retreat moves to the previous step. At the first step it is a no-op.
// From slot selection it returns to the contact step.
func (s *Session) Retreat() error {
	switch {
	case s.Step == firstFormStep:
		return nil
	case s.Step.isFormStep():
		s.Step--
	case s.Step == StepSlotSelection:
		s.Step = StepContact
	default:
		return ErrNotInFormStep
	}
	s.touch()
	return nil
}

// SelectTimeSlot records the chosen consultation slot. Only available during
// slot selection; the slot must come from the offered set. Reselecting
// before confirmation is allowed. Does not advance.
func (s *Session) SelectTimeSlot(slot string) error {
	if s.Step != StepSlotSelection {
		return ErrNotSelectingSlot
	}
	if !s.catalog.ValidTimeSlot(slot) {
		return fmt.Errorf("%w: %q", ErrUnknownTimeSlot, slot)
	}
	s.Form.SelectedTimeSlot = slot
	s.touch()
	return nil
}

// ConfirmBooking drives the terminal transition: it enters Dispatching,
// submits the email dispatch request, and ends Confirmed whether or not
// delivery succeeded. A delivery failure only records a warning for the
// user; the booking itself stands.
func (s *Session) ConfirmBooking(ctx context.Context, d Dispatcher) error {
	switch s.Step {
	case StepSlotSelection:
	case StepDispatching:
		return ErrDispatchInFlight
	default:
		return ErrNotSelectingSlot
	}
	if s.Form.SelectedTimeSlot == "" {
		return ErrNoTimeSlot
	}

	s.Step = StepDispatching
	req := s.buildDispatchRequest()
	if _, err := d.Dispatch(ctx, req); err != nil {
		s.Warning = fmt.Sprintf(
			"Meeting confirmed! However, there was an issue sending confirmation emails. We'll contact you directly at %s.",
			s.Form.Email,
		)
	}
	s.Step = StepConfirmed
	s.touch()
	return nil
}

// EmailFailed reports whether the confirmed booking's emails failed to send.
func (s *Session) EmailFailed() bool {
	return s.Warning != ""
}

// Reset returns the session to Closed and discards all entered values.
func (s *Session) Reset() {
	s.Form = FormState{}
	s.Warning = ""
	s.Step = StepClosed
	s.touch()
}

// buildDispatchRequest snapshots FormState into the immutable request sent
// to the dispatcher, resolving catalog ids to their display labels.
func (s *Session) buildDispatchRequest() *dispatch.EmailDispatchRequest {
	return &dispatch.EmailDispatchRequest{
		FormData: dispatch.FormData{
			Name:        s.Form.Name,
			Email:       s.Form.Email,
			Company:     s.Form.Company,
			Phone:       s.Form.Phone,
			ProjectType: s.catalog.ServiceTitle(s.Form.ProjectType),
			Budget:      s.catalog.BudgetLabel(s.Form.Budget),
			Timeline:    s.catalog.TimelineLabel(s.Form.Timeline),
			Description: s.Form.Description,
		},
		TimeSlot: s.Form.SelectedTimeSlot,
	}
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}
