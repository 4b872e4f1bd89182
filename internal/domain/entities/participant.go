package entities

// Participant is a roster entry of an event.
type Participant struct {
	ID      int64
	EventID int64
	Name    string
}
