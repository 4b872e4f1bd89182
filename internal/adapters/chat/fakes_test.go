package chat

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/ports/output"
	"rosterbot/pkg/keyboard"
)

// memStore is an in-memory Store. Sessions share one dataset; commits and
// rollbacks are only counted. failCommit makes a session fail after fn
// succeeded, like a connection lost at COMMIT.
type memStore struct {
	mu           sync.Mutex
	nextID       int64
	events       map[int64]entities.Event
	participants map[int64]entities.Participant
	failCreate   error
	failCommit   error

	sessions, commits, rollbacks int
}

func newMemStore() *memStore {
	return &memStore{
		events:       map[int64]entities.Event{},
		participants: map[int64]entities.Participant{},
	}
}

func (s *memStore) WithinSession(ctx context.Context, fn func(ctx context.Context, session output.Session) error) error {
	s.sessions++
	if err := fn(ctx, s); err != nil {
		s.rollbacks++
		return err
	}
	if s.failCommit != nil {
		s.rollbacks++
		return s.failCommit
	}
	s.commits++
	return nil
}

func (s *memStore) Events() output.EventRepository             { return memEvents{s} }
func (s *memStore) Participants() output.ParticipantRepository { return memParticipants{s} }

func (s *memStore) addEvent(title string, ownerID int64) entities.Event {
	e, _ := memEvents{s}.Create(context.Background(), title, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), ownerID)
	return *e
}

func (s *memStore) addParticipant(eventID int64, name string) entities.Participant {
	p, _ := memParticipants{s}.Create(context.Background(), eventID, name)
	return *p
}

func (s *memStore) participantsOf(eventID int64) []entities.Participant {
	out := []entities.Participant{}
	for _, p := range s.participants {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type memEvents struct{ s *memStore }

func (r memEvents) Create(_ context.Context, title string, date time.Time, ownerID int64) (*entities.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failCreate != nil {
		return nil, r.s.failCreate
	}
	r.s.nextID++
	e := entities.Event{ID: r.s.nextID, Title: title, Date: date, OwnerID: ownerID}
	r.s.events[e.ID] = e
	return &e, nil
}

func (r memEvents) FindByOwnerID(_ context.Context, ownerID int64) ([]entities.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entities.Event{}
	for _, e := range r.s.events {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memEvents) FindByID(_ context.Context, id int64) (*entities.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	e.Participants = r.s.participantsOf(id)
	return &e, nil
}

func (r memEvents) DeleteOwned(_ context.Context, ownerID, eventID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[eventID]
	if !ok || e.OwnerID != ownerID {
		return 0, nil
	}
	delete(r.s.events, eventID)
	for id, p := range r.s.participants {
		if p.EventID == eventID {
			delete(r.s.participants, id)
		}
	}
	return 1, nil
}

type memParticipants struct{ s *memStore }

func (r memParticipants) Create(_ context.Context, eventID int64, name string) (*entities.Participant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[eventID]; !ok {
		return nil, errors.New("foreign key violation")
	}
	r.s.nextID++
	p := entities.Participant{ID: r.s.nextID, EventID: eventID, Name: name}
	r.s.participants[p.ID] = p
	return &p, nil
}

func (r memParticipants) FindByEventID(_ context.Context, eventID int64) ([]entities.Participant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.participantsOf(eventID), nil
}

func (r memParticipants) DeleteFromEvent(_ context.Context, eventID, participantID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.participants[participantID]
	if !ok || p.EventID != eventID {
		return 0, nil
	}
	delete(r.s.participants, participantID)
	return 1, nil
}

type sentMessage struct {
	ChatID int64
	Text   string
	Markup *keyboard.Markup
}

type editedMessage struct {
	ChatID, MessageID int64
	Text              string
	Markup            *keyboard.Markup
}

type deletedMessage struct {
	ChatID, MessageID int64
}

type answer struct {
	CallbackID, Text string
}

// recordingMessenger records every outbound call.
type recordingMessenger struct {
	mu      sync.Mutex
	nextID  int64
	sent    []sentMessage
	edited  []editedMessage
	deleted []deletedMessage
	answers []answer
}

func (m *recordingMessenger) Send(_ context.Context, chatID int64, text string, markup *keyboard.Markup) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.sent = append(m.sent, sentMessage{chatID, text, markup})
	return 1000 + m.nextID, nil
}

func (m *recordingMessenger) Edit(_ context.Context, chatID, messageID int64, text string, markup *keyboard.Markup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edited = append(m.edited, editedMessage{chatID, messageID, text, markup})
	return nil
}

func (m *recordingMessenger) Delete(_ context.Context, chatID, messageID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, deletedMessage{chatID, messageID})
	return nil
}

func (m *recordingMessenger) AnswerCallback(_ context.Context, callbackID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answers = append(m.answers, answer{callbackID, text})
	return nil
}

func (m *recordingMessenger) texts() []string {
	out := make([]string, len(m.sent))
	for i, s := range m.sent {
		out[i] = s.Text
	}
	return out
}

func (m *recordingMessenger) lastEdit() editedMessage {
	if len(m.edited) == 0 {
		return editedMessage{}
	}
	return m.edited[len(m.edited)-1]
}

// keyT renders a key, suffixed by the Title or Label template value if any.
type keyT struct{}

func (keyT) T(_ string, key string, data map[string]any) string {
	for _, field := range []string{"Title", "Label"} {
		if v, ok := data[field]; ok {
			return fmt.Sprintf("%s:%v", key, v)
		}
	}
	return key
}

func actions(m *keyboard.Markup) [][]string {
	if m == nil {
		return nil
	}
	out := make([][]string, len(m.Rows))
	for i, row := range m.Rows {
		for _, b := range row {
			out[i] = append(out[i], b.Action)
		}
	}
	return out
}
