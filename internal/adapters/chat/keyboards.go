package chat

import (
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/ports/output"
	"rosterbot/pkg/keyboard"
)

// Exact action tokens.
const (
	actionEditEvents            = "edit_events"
	actionDeleteEvent           = "delete_event"
	actionDeleteParticipant     = "delete_participant"
	actionBackParticipantDelete = "back_participant_delete"
	actionCancelDelete          = "cancel_delete"
	actionChoiceBack            = "choice_back"
	actionAdd                   = "add"
	actionHomeBack              = "home_back"
	actionClose                 = "close"
)

// Verbs of parameterized action tokens.
const (
	verbEventEdit              = "event_edit"                // :eventID
	verbEvent                  = "event"                     // :eventID
	verbParticipant            = "participant"               // :participantID
	verbEventDelete            = "event_delete"              // :eventID
	verbDelParticipantForEvent = "del_participant_for_event" // :eventID
	verbParticipantDelete      = "participant_delete"        // :participantID:eventID
)

const rosterWidth = 2

// renderer builds the button grids. Labels come from the lexicon of the
// user's locale; record titles and names are used verbatim.
type renderer struct {
	t      output.T
	locale string
}

func (r renderer) label(key string) string {
	return r.t.T(r.locale, "button."+key, nil)
}

func (r renderer) deleteLabel(s string) string {
	return r.t.T(r.locale, "button.delete_item", map[string]any{"Label": s})
}

func (r renderer) control(key, action string) keyboard.Button {
	return keyboard.Button{Label: r.label(key), Action: action}
}

// events lists the user's events for editing, one per row.
func (r renderer) events(events []entities.Event) *keyboard.Markup {
	b := keyboard.NewBuilder()
	for _, e := range events {
		b.Row(1, keyboard.Button{Label: e.Title, Action: keyboard.Format(verbEventEdit, e.ID)})
	}
	return b.Row(1, r.control("edit_events", actionEditEvents)).Markup()
}

// choice is shown once an event is selected.
func (r renderer) choice() *keyboard.Markup {
	return keyboard.NewBuilder().
		Row(2, r.control("back", actionChoiceBack), r.control("add", actionAdd)).
		Markup()
}

func (r renderer) myEvents(events []entities.Event) *keyboard.Markup {
	b := keyboard.NewBuilder()
	for _, e := range events {
		b.Row(1, keyboard.Button{Label: e.Title, Action: keyboard.Format(verbEvent, e.ID)})
	}
	return b.Row(1, r.control("close", actionClose)).Markup()
}

func (r renderer) roster(participants []entities.Participant) *keyboard.Markup {
	buttons := make([]keyboard.Button, len(participants))
	for i, p := range participants {
		buttons[i] = keyboard.Button{Label: p.Name, Action: keyboard.Format(verbParticipant, p.ID)}
	}
	return keyboard.NewBuilder().
		Row(rosterWidth, buttons...).
		Row(1, r.control("back", actionHomeBack)).
		Markup()
}

func (r renderer) deleteMenu() *keyboard.Markup {
	return keyboard.NewBuilder().
		Row(2, r.control("delete_event", actionDeleteEvent), r.control("delete_participant", actionDeleteParticipant)).
		Row(1, r.control("cancel", actionCancelDelete)).
		Markup()
}

func (r renderer) deleteEvents(events []entities.Event) *keyboard.Markup {
	b := keyboard.NewBuilder()
	for _, e := range events {
		b.Row(1, keyboard.Button{Label: r.deleteLabel(e.Title), Action: keyboard.Format(verbEventDelete, e.ID)})
	}
	return b.Row(1, r.control("cancel", actionBackParticipantDelete)).Markup()
}

func (r renderer) deleteParticipants(participants []entities.Participant) *keyboard.Markup {
	buttons := make([]keyboard.Button, len(participants))
	for i, p := range participants {
		buttons[i] = keyboard.Button{
			Label:  r.deleteLabel(p.Name),
			Action: keyboard.Format(verbParticipantDelete, p.ID, p.EventID),
		}
	}
	return keyboard.NewBuilder().
		Row(rosterWidth, buttons...).
		Row(1, r.control("cancel", actionBackParticipantDelete)).
		Markup()
}

func (r renderer) eventsForParticipants(events []entities.Event) *keyboard.Markup {
	b := keyboard.NewBuilder()
	for _, e := range events {
		b.Row(1, keyboard.Button{Label: e.Title, Action: keyboard.Format(verbDelParticipantForEvent, e.ID)})
	}
	return b.Row(1, r.control("back", actionBackParticipantDelete)).Markup()
}
