package wizard

// Step identifies the wizard's current position. The four data-collection
// steps are numbered 1-4 so arithmetic on them matches the on-screen step
// indicator; everything after StepContact is a distinct phase, not a step.
type Step int

const (
	// StepClosed is the resting state before the wizard is opened and
	// after an explicit exit.
	StepClosed Step = iota
	StepProjectType
	StepBudgetTimeline
	StepDescription
	StepContact
	StepSlotSelection
	StepDispatching
	StepConfirmed
)

const (
	firstFormStep = StepProjectType
	lastFormStep  = StepContact
)

func (s Step) String() string {
	switch s {
	case StepClosed:
		return "closed"
	case StepProjectType:
		return "project_type"
	case StepBudgetTimeline:
		return "budget_timeline"
	case StepDescription:
		return "description"
	case StepContact:
		return "contact"
	case StepSlotSelection:
		return "slot_selection"
	case StepDispatching:
		return "dispatching"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// isFormStep reports whether s is one of the four data-collection steps.
func (s Step) isFormStep() bool {
	return s >= firstFormStep && s <= lastFormStep
}
