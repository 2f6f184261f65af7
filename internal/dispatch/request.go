package dispatch

import "strings"

// FormData carries the contact and project fields collected by the wizard.
// Labels (projectType, budget, timeline) arrive already resolved to their
// display form; the dispatcher never sees raw catalog ids.
type FormData struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Phone       string `json:"phone,omitempty"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Description string `json:"description"`
}

// EmailDispatchRequest is the immutable snapshot the wizard submits when a
// booking is confirmed. Constructed once; never mutated.
type EmailDispatchRequest struct {
	FormData FormData `json:"formData"`
	TimeSlot string   `json:"timeSlot"`
}

// Validate rejects requests missing the required contact fields.
// Email format is deliberately not checked: any non-empty string passes.
func (r *EmailDispatchRequest) Validate() error {
	if strings.TrimSpace(r.FormData.Name) == "" ||
		strings.TrimSpace(r.FormData.Email) == "" ||
		strings.TrimSpace(r.FormData.Company) == "" {
		return ErrMissingContactFields
	}
	return nil
}

// Result is the dispatch outcome returned to the wizard.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}
