package entities

import "time"

// Event is a named, dated event owned by a single chat user.
type Event struct {
	ID           int64
	Title        string
	Date         time.Time // calendar date, time part is always zero (UTC)
	OwnerID      int64
	Participants []Participant
}

// OwnedBy reports whether userID created the event.
func (e *Event) OwnedBy(userID int64) bool {
	return e != nil && e.OwnerID == userID
}
