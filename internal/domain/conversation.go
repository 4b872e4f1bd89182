package domain

// WizardState is the step a user's conversation is waiting on.
type WizardState string

// Conversation states. StateIdle is the baseline with no wizard active.
const (
	StateIdle                    WizardState = ""
	StateAwaitingEventName       WizardState = "create_event:name"
	StateAwaitingEventDate       WizardState = "create_event:date"
	StateAwaitingParticipantName WizardState = "add_participant:name"
)

// IsIdle reports whether no wizard is active.
func (s WizardState) IsIdle() bool {
	return s == StateIdle
}

func (s WizardState) String() string {
	if s == StateIdle {
		return "idle"
	}
	return string(s)
}
