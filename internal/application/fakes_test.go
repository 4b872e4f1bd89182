package application_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/ports/output"
)

// memSession is an in-memory Session honoring owner scoping and the
// event -> participants cascade.
type memSession struct {
	mu           sync.Mutex
	nextID       int64
	events       map[int64]entities.Event
	participants map[int64]entities.Participant
	failCreate   error
}

func newMemSession() *memSession {
	return &memSession{
		events:       map[int64]entities.Event{},
		participants: map[int64]entities.Participant{},
	}
}

func (m *memSession) Events() output.EventRepository             { return memEvents{m} }
func (m *memSession) Participants() output.ParticipantRepository { return memParticipants{m} }

type memEvents struct{ m *memSession }

func (r memEvents) Create(_ context.Context, title string, date time.Time, ownerID int64) (*entities.Event, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failCreate != nil {
		return nil, r.m.failCreate
	}
	r.m.nextID++
	e := entities.Event{ID: r.m.nextID, Title: title, Date: date, OwnerID: ownerID}
	r.m.events[e.ID] = e
	return &e, nil
}

func (r memEvents) FindByOwnerID(_ context.Context, ownerID int64) ([]entities.Event, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := []entities.Event{}
	for _, e := range r.m.events {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memEvents) FindByID(_ context.Context, id int64) (*entities.Event, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	e, ok := r.m.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	e.Participants = r.m.participantsOf(id)
	return &e, nil
}

func (r memEvents) DeleteOwned(_ context.Context, ownerID, eventID int64) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	e, ok := r.m.events[eventID]
	if !ok || e.OwnerID != ownerID {
		return 0, nil
	}
	delete(r.m.events, eventID)
	for id, p := range r.m.participants {
		if p.EventID == eventID {
			delete(r.m.participants, id)
		}
	}
	return 1, nil
}

type memParticipants struct{ m *memSession }

func (r memParticipants) Create(_ context.Context, eventID int64, name string) (*entities.Participant, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.events[eventID]; !ok {
		return nil, errors.New("foreign key violation")
	}
	r.m.nextID++
	p := entities.Participant{ID: r.m.nextID, EventID: eventID, Name: name}
	r.m.participants[p.ID] = p
	return &p, nil
}

func (r memParticipants) FindByEventID(_ context.Context, eventID int64) ([]entities.Participant, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.m.participantsOf(eventID), nil
}

func (r memParticipants) DeleteFromEvent(_ context.Context, eventID, participantID int64) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.participants[participantID]
	if !ok || p.EventID != eventID {
		return 0, nil
	}
	delete(r.m.participants, participantID)
	return 1, nil
}

func (m *memSession) participantsOf(eventID int64) []entities.Participant {
	out := []entities.Participant{}
	for _, p := range m.participants {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// memConversations is a ConversationStore backed by a map.
type memConversations struct {
	mu    sync.Mutex
	items map[int64]entities.Conversation
}

func newMemConversations() *memConversations {
	return &memConversations{items: map[int64]entities.Conversation{}}
}

func (s *memConversations) Get(_ context.Context, userID int64) (*entities.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.items[userID]
	if !ok {
		return &entities.Conversation{UserID: userID}, nil
	}
	return &c, nil
}

func (s *memConversations) Put(_ context.Context, c *entities.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[c.UserID] = *c
	return nil
}

func (s *memConversations) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, userID)
	return nil
}

func (s *memConversations) Expire(_ context.Context, before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, c := range s.items {
		if c.UpdatedAt.Before(before) {
			delete(s.items, id)
			n++
		}
	}
	return n, nil
}

type deletedMessage struct{ chatID, messageID int64 }

type recordingDeleter struct {
	deleted []deletedMessage
	err     error
}

func (d *recordingDeleter) Delete(_ context.Context, chatID, messageID int64) error {
	d.deleted = append(d.deleted, deletedMessage{chatID, messageID})
	return d.err
}
