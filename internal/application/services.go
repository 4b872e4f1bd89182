package application

import (
	"rosterbot/internal/ports/input"
	"rosterbot/internal/ports/output"
)

// Services bundles the storage use cases bound to one session.
type Services struct {
	Events       input.EventUseCase
	Participants input.ParticipantUseCase
}

// NewServices wires the use cases over the repositories of s.
func NewServices(s output.Session) Services {
	return Services{
		Events:       NewEventService(s.Events()),
		Participants: NewParticipantService(s.Participants(), s.Events()),
	}
}
