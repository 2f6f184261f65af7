package wizard

import "errors"

var (
	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotOpen is returned for operations that require an opened wizard.
	ErrNotOpen = errors.New("wizard is not open")

	// ErrAlreadyOpen is returned when opening a session that is already active.
	ErrAlreadyOpen = errors.New("wizard is already open")

	// ErrStepIncomplete is returned by Advance when the current step's
	// required fields are not filled in.
	ErrStepIncomplete = errors.New("current step is incomplete")

	// ErrNotInFormStep is returned when Advance/Retreat is called outside
	// the four data-collection steps.
	ErrNotInFormStep = errors.New("not in a form step")

	// ErrNotSelectingSlot is returned when a time slot is chosen outside
	// the slot-selection phase.
	ErrNotSelectingSlot = errors.New("not in slot selection")

	// ErrUnknownTimeSlot is returned for slots outside the offered set.
	ErrUnknownTimeSlot = errors.New("unknown time slot")

	// ErrNoTimeSlot is returned by ConfirmBooking when no slot is selected.
	ErrNoTimeSlot = errors.New("no time slot selected")

	// ErrDispatchInFlight is returned when ConfirmBooking is called while a
	// previous dispatch is still running.
	ErrDispatchInFlight = errors.New("booking confirmation already in progress")

	// ErrUnknownField is returned by SetContactField for unsupported fields.
	ErrUnknownField = errors.New("unknown contact field")
)
