package chat

import (
	"context"
	"html"
	"strconv"

	"rosterbot/internal/application"
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/ports/input"
)

func (r *Router) replyWith(key string) handlerFunc {
	return func(_ context.Context, req *request) error {
		req.send(req.text(key, nil), nil)
		return nil
	}
}

func (r *Router) cancelWith(key string) handlerFunc {
	return func(ctx context.Context, req *request) error {
		cancelled, err := r.convs.Cancel(ctx, req.UserID)
		if err != nil {
			return err
		}
		reply := key
		if !cancelled {
			reply = "nothing_to_cancel"
		}
		req.send(req.text(reply, nil), nil)
		return nil
	}
}

func (r *Router) onCreateEvent(ctx context.Context, req *request) error {
	tr, err := r.convs.StartEventCreation(ctx, req.UserID)
	if err != nil {
		return err
	}
	if !tr.From.IsIdle() {
		r.log.Infof("ROUTER", "user=%d restarted create_event from %s", req.UserID, tr.From)
	}
	req.send(req.text(tr.Reply, nil), nil)
	return nil
}

func (r *Router) onEditEvents(ctx context.Context, req *request) error {
	events, err := req.svc.Events.ListEvents(ctx, req.UserID)
	if err != nil {
		return err
	}
	req.send(req.text("events_info", nil), req.kb.events(events))
	return nil
}

func (r *Router) onMyEvents(ctx context.Context, req *request) error {
	events, err := req.svc.Events.ListEvents(ctx, req.UserID)
	if err != nil {
		return err
	}
	req.send(myEventsText(req, events), req.kb.myEvents(events))
	return nil
}

func myEventsText(req *request, events []entities.Event) string {
	if len(events) == 0 {
		return req.text("no_events", nil)
	}
	return req.text("my_events", nil)
}

// Wizard text input.

func (r *Router) onEventName(ctx context.Context, req *request) error {
	tr, err := r.convs.SubmitEventName(ctx, req.UserID, req.Text, req.HasText)
	if err != nil {
		return err
	}
	req.send(req.text(tr.Reply, nil), nil)
	return nil
}

func (r *Router) onEventDate(ctx context.Context, req *request) error {
	tr, err := r.convs.SubmitEventDate(ctx, req.svc.Events, req.UserID, req.Text, req.HasText)
	if err != nil {
		return err
	}
	r.finishOnCommit(req, tr)
	req.send(req.text(tr.Reply, eventData(tr.Event)), nil)
	return nil
}

func (r *Router) onParticipantName(ctx context.Context, req *request) error {
	tr, err := r.convs.SubmitParticipantName(ctx, req.svc.Participants, req.UserID, req.Text)
	if err != nil {
		return err
	}
	r.finishOnCommit(req, tr)
	req.send(req.text(tr.Reply, participantAddedData(tr, req.Text)), nil)
	return nil
}

// finishOnCommit leaves the wizard once its result is saved. Until the
// session commits the staged data stays, so a failed save can be retried.
func (r *Router) finishOnCommit(req *request, tr input.Transition) {
	if tr.From == tr.To || !tr.To.IsIdle() {
		return
	}
	userID := req.UserID
	req.afterCommit(func(ctx context.Context) error {
		return r.convs.Finish(ctx, userID)
	})
}

// eventData is the template data of an event. User text is escaped since
// messages are rendered as HTML.
func eventData(e *entities.Event) map[string]any {
	if e == nil {
		return nil
	}
	return map[string]any{
		"Title": html.EscapeString(e.Title),
		"Date":  application.FormatEventDate(e.Date),
	}
}

func participantAddedData(tr input.Transition, name string) map[string]any {
	data := eventData(tr.Event)
	if data == nil {
		data = map[string]any{}
	}
	data["Name"] = html.EscapeString(name)
	if tr.Event != nil {
		data["Count"] = strconv.Itoa(len(tr.Event.Participants))
	}
	return data
}

// Callback screens.

func (r *Router) showEvents(ctx context.Context, req *request) error {
	events, err := req.svc.Events.ListEvents(ctx, req.UserID)
	if err != nil {
		return err
	}
	req.edit(req.text("events_info", nil), req.kb.events(events))
	return nil
}

func (r *Router) showMyEvents(ctx context.Context, req *request) error {
	events, err := req.svc.Events.ListEvents(ctx, req.UserID)
	if err != nil {
		return err
	}
	req.edit(myEventsText(req, events), req.kb.myEvents(events))
	return nil
}

func (r *Router) showDeleteMenu(_ context.Context, req *request) error {
	req.edit(req.text("delete_events_info", nil), req.kb.deleteMenu())
	return nil
}

func (r *Router) onDeleteEventMenu(ctx context.Context, req *request) error {
	events, err := req.svc.Events.ListEvents(ctx, req.UserID)
	if err != nil {
		return err
	}
	req.edit(req.text("delete_event_prompt", nil), req.kb.deleteEvents(events))
	return nil
}

func (r *Router) onDeleteParticipantMenu(ctx context.Context, req *request) error {
	events, err := req.svc.Events.ListEvents(ctx, req.UserID)
	if err != nil {
		return err
	}
	req.edit(req.text("choose_event_for_participant", nil), req.kb.eventsForParticipants(events))
	return nil
}

// onAdd turns the choice screen into the name prompt; that message is
// deleted again once the name arrives.
func (r *Router) onAdd(ctx context.Context, req *request) error {
	tr, err := r.convs.StartParticipantAdd(ctx, req.UserID, req.ChatID, req.MessageID)
	if err != nil {
		return err
	}
	req.edit(req.text(tr.Reply, nil), nil)
	return nil
}

func (r *Router) onClose(_ context.Context, req *request) error {
	req.remove()
	return nil
}

func (r *Router) onEventEdit(ctx context.Context, req *request) error {
	eventID := req.action.Args[0]
	event, err := ownedEvent(ctx, req, eventID)
	if err != nil {
		return err
	}
	if err := r.convs.SelectEvent(ctx, req.UserID, event.ID); err != nil {
		return err
	}
	req.edit(req.text("event_selected", eventData(event)), req.kb.choice())
	return nil
}

func (r *Router) onEvent(ctx context.Context, req *request) error {
	eventID := req.action.Args[0]
	event, err := ownedEvent(ctx, req, eventID)
	if err != nil {
		return err
	}
	req.edit(req.text("event_participants", eventData(event)), req.kb.roster(event.Participants))
	return nil
}

// onParticipant only acknowledges: roster buttons are display entries.
func (r *Router) onParticipant(context.Context, *request) error {
	return nil
}

func (r *Router) onEventDelete(ctx context.Context, req *request) error {
	eventID := req.action.Args[0]
	if err := req.svc.Events.DeleteEvent(ctx, req.UserID, eventID); err != nil {
		return err
	}
	events, err := req.svc.Events.ListEvents(ctx, req.UserID)
	if err != nil {
		return err
	}
	req.edit(req.text("event_delete", nil), req.kb.deleteEvents(events))
	return nil
}

func (r *Router) onParticipantsForDelete(ctx context.Context, req *request) error {
	eventID := req.action.Args[0]
	event, err := ownedEvent(ctx, req, eventID)
	if err != nil {
		return err
	}
	req.edit(req.text("delete_participant_prompt", nil), req.kb.deleteParticipants(event.Participants))
	return nil
}

func (r *Router) onParticipantDelete(ctx context.Context, req *request) error {
	participantID := req.action.Args[0]
	eventID := req.action.Args[1]
	if _, err := ownedEvent(ctx, req, eventID); err != nil {
		return err
	}
	if err := req.svc.Participants.RemoveParticipant(ctx, eventID, participantID); err != nil {
		return err
	}
	participants, err := req.svc.Participants.ListParticipants(ctx, eventID)
	if err != nil {
		return err
	}
	req.edit(req.text("participant_deleted", nil), req.kb.deleteParticipants(participants))
	return nil
}
