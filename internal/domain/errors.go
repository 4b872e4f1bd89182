package domain

import "errors"

// Error is a domain error carrying a stable code. Adapters resolve the code
// to a user-facing message through the "errors.<code>" lexicon keys.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Domain errors.
var (
	ErrEventNotFound        = &Error{Code: "event_not_found", Message: "event not found"}
	ErrInvalidDate          = &Error{Code: "invalid_date", Message: "date must be DD/MM/YYYY"}
	ErrWizardBusy           = &Error{Code: "wizard_busy", Message: "another wizard is already active"}
	ErrNoEventSelected      = &Error{Code: "no_event_selected", Message: "no event selected"}
	ErrUnexpectedWizardStep = &Error{Code: "unexpected_wizard_step", Message: "input does not match the active wizard step"}
)

// Code returns the domain code wrapped in err, or "" when err is not a domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
