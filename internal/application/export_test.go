package application

import "time"

// WithClock replaces the service clock in tests.
func (s *ConversationService) WithClock(now func() time.Time) *ConversationService {
	s.now = now
	return s
}
