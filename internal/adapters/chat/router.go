package chat

import (
	"context"

	"rosterbot/internal/application"
	"rosterbot/internal/domain"
	"rosterbot/internal/domain/entities"
	"rosterbot/internal/infrastructure/logger"
	"rosterbot/internal/ports/input"
	"rosterbot/internal/ports/output"
	"rosterbot/pkg/keyboard"
)

// Handler consumes normalized updates. Transports feed a Handler; *Router
// is the one used in production.
type Handler interface {
	Handle(ctx context.Context, u Update)
}

var _ Handler = (*Router)(nil)

type handlerFunc func(ctx context.Context, req *request) error

// route is one dispatch table entry. Routes with session set run inside a
// storage session opened by the router. args is the number of ids a verb
// prefix route expects in its action token.
type route struct {
	name    string
	handle  handlerFunc
	session bool
	args    int
}

// Router dispatches inbound updates. Priority: state-scoped entries
// (free text of the active wizard, cancel commands while a wizard runs),
// then commands, then exact callback tokens, then callback verb prefixes.
type Router struct {
	store    output.Store
	convs    input.ConversationUseCase
	messages output.Messenger
	t        output.T
	log      *logger.Logger
	locks    *userLocks

	stateText     map[domain.WizardState]route
	stateCommands map[string]route
	commands      map[string]route
	callbacks     map[string]route
	prefixes      map[string]route
}

func NewRouter(
	store output.Store,
	convs input.ConversationUseCase,
	messages output.Messenger,
	t output.T,
	log *logger.Logger,
) *Router {
	r := &Router{
		store:    store,
		convs:    convs,
		messages: messages,
		t:        t,
		log:      log,
		locks:    newUserLocks(),
	}
	r.registerRoutes()
	return r
}

func (r *Router) registerRoutes() {
	r.stateText = map[domain.WizardState]route{
		domain.StateAwaitingEventName:       {name: "event_name", handle: r.onEventName},
		domain.StateAwaitingEventDate:       {name: "event_date", handle: r.onEventDate, session: true},
		domain.StateAwaitingParticipantName: {name: "participant_name", handle: r.onParticipantName, session: true},
	}

	r.stateCommands = map[string]route{
		CommandCancel:            {name: "cancel", handle: r.cancelWith("cancel")},
		CommandCancelParticipant: {name: "cancel_participant", handle: r.cancelWith("cancel_participant")},
	}

	r.commands = map[string]route{
		CommandStart:             {name: "start", handle: r.replyWith("start")},
		CommandHelp:              {name: "help", handle: r.replyWith("help")},
		CommandCancel:            {name: "nothing_to_cancel", handle: r.replyWith("nothing_to_cancel")},
		CommandCancelParticipant: {name: "nothing_to_cancel", handle: r.replyWith("nothing_to_cancel")},
		CommandCreateEvent:       {name: "create_event", handle: r.onCreateEvent},
		CommandEditEvents:        {name: "edit_events", handle: r.onEditEvents, session: true},
		CommandMyEvents:          {name: "my_events", handle: r.onMyEvents, session: true},
	}

	r.callbacks = map[string]route{
		actionEditEvents:            {name: "edit_events", handle: r.showDeleteMenu},
		actionDeleteEvent:           {name: "delete_event", handle: r.onDeleteEventMenu, session: true},
		actionDeleteParticipant:     {name: "delete_participant", handle: r.onDeleteParticipantMenu, session: true},
		actionBackParticipantDelete: {name: "back_participant_delete", handle: r.showDeleteMenu},
		actionCancelDelete:          {name: "cancel_delete", handle: r.showEvents, session: true},
		actionChoiceBack:            {name: "choice_back", handle: r.showEvents, session: true},
		actionAdd:                   {name: "add", handle: r.onAdd},
		actionHomeBack:              {name: "home_back", handle: r.showMyEvents, session: true},
		actionClose:                 {name: "close", handle: r.onClose},
	}

	r.prefixes = map[string]route{
		verbEventEdit:              {name: "event_edit", handle: r.onEventEdit, session: true, args: 1},
		verbEvent:                  {name: "event", handle: r.onEvent, session: true, args: 1},
		verbParticipant:            {name: "participant", handle: r.onParticipant, args: 1},
		verbEventDelete:            {name: "event_delete", handle: r.onEventDelete, session: true, args: 1},
		verbDelParticipantForEvent: {name: "del_participant_for_event", handle: r.onParticipantsForDelete, session: true, args: 1},
		verbParticipantDelete:      {name: "participant_delete", handle: r.onParticipantDelete, session: true, args: 2},
	}
}

// request carries one update through its handler. State completions and
// outbound operations are queued and only performed once the storage
// session committed.
type request struct {
	Update
	action    keyboard.Action
	svc       application.Services
	kb        renderer
	t         output.T
	messages  output.Messenger
	committed []func(ctx context.Context) error
	outbox    []func(ctx context.Context) error
	ackText   string
}

func (q *request) afterCommit(fn func(ctx context.Context) error) {
	q.committed = append(q.committed, fn)
}

func (q *request) text(key string, data map[string]any) string {
	return q.t.T(q.Locale, key, data)
}

func (q *request) send(text string, markup *keyboard.Markup) {
	chatID := q.ChatID
	q.outbox = append(q.outbox, func(ctx context.Context) error {
		_, err := q.messages.Send(ctx, chatID, text, markup)
		return err
	})
}

func (q *request) edit(text string, markup *keyboard.Markup) {
	chatID, messageID := q.ChatID, q.MessageID
	q.outbox = append(q.outbox, func(ctx context.Context) error {
		return q.messages.Edit(ctx, chatID, messageID, text, markup)
	})
}

func (q *request) remove() {
	chatID, messageID := q.ChatID, q.MessageID
	q.outbox = append(q.outbox, func(ctx context.Context) error {
		return q.messages.Delete(ctx, chatID, messageID)
	})
}

// Handle processes one update to completion. Updates of the same user are
// handled one at a time; callbacks are always answered exactly once.
func (r *Router) Handle(ctx context.Context, u Update) {
	unlock := r.locks.Lock(u.UserID)
	defer unlock()

	r.log.LogUpdate(u.Kind.String(), u.UserID, u.describe())

	req := &request{
		Update:   u,
		kb:       renderer{t: r.t, locale: u.Locale},
		t:        r.t,
		messages: r.messages,
	}

	if err := r.dispatch(ctx, req); err != nil {
		r.reportError(req, err)
	}

	for _, fn := range req.committed {
		if err := fn(ctx); err != nil {
			r.log.Errorf("ROUTER", "user=%d %s after commit: %v", u.UserID, u.describe(), err)
		}
	}

	for _, op := range req.outbox {
		if err := op(ctx); err != nil {
			r.log.Warnf("ROUTER", "outbound failed user=%d: %v", u.UserID, err)
		}
	}

	if u.Kind == KindCallback {
		if err := r.messages.AnswerCallback(ctx, u.CallbackID, req.ackText); err != nil {
			r.log.Warnf("ROUTER", "answer callback failed user=%d: %v", u.UserID, err)
		}
	}
}

func (r *Router) dispatch(ctx context.Context, req *request) error {
	rt, ok, err := r.resolve(ctx, req)
	if err != nil || !ok {
		return err
	}
	r.log.Debugf("ROUTER", "user=%d -> %s", req.UserID, rt.name)

	if !rt.session {
		return rt.handle(ctx, req)
	}
	return r.store.WithinSession(ctx, func(ctx context.Context, s output.Session) error {
		req.svc = application.NewServices(s)
		return rt.handle(ctx, req)
	})
}

func (r *Router) resolve(ctx context.Context, req *request) (route, bool, error) {
	switch req.Kind {
	case KindMessage:
		conv, err := r.convs.Current(ctx, req.UserID)
		if err != nil {
			return route{}, false, err
		}
		rt, ok := r.stateText[conv.State]
		return rt, ok, nil

	case KindCommand:
		if rt, ok := r.stateCommands[req.Command]; ok {
			conv, err := r.convs.Current(ctx, req.UserID)
			if err != nil {
				return route{}, false, err
			}
			if !conv.State.IsIdle() {
				return rt, true, nil
			}
		}
		rt, ok := r.commands[req.Command]
		return rt, ok, nil

	case KindCallback:
		if rt, ok := r.callbacks[req.Data]; ok {
			return rt, true, nil
		}
		action, err := keyboard.Parse(req.Data)
		if err != nil {
			r.log.Warnf("ROUTER", "user=%d: %v", req.UserID, err)
			return route{}, false, nil
		}
		rt, ok := r.prefixes[action.Verb]
		if !ok {
			return route{}, false, nil
		}
		if len(action.Args) != rt.args {
			r.log.Warnf("ROUTER", "user=%d: %s wants %d argument(s), got %q", req.UserID, rt.name, rt.args, req.Data)
			return route{}, false, nil
		}
		req.action = action
		return rt, true, nil
	}
	return route{}, false, nil
}

// reportError drops queued output and tells the user. Domain errors map to
// their own lexicon entry, everything else to errors.generic.
func (r *Router) reportError(req *request, err error) {
	req.committed = nil
	req.outbox = nil

	key := "errors.generic"
	if code := domain.Code(err); code != "" {
		key = "errors." + code
		r.log.Warnf("ROUTER", "user=%d %s: %v", req.UserID, req.describe(), err)
	} else {
		r.log.Errorf("ROUTER", "user=%d %s: %v", req.UserID, req.describe(), err)
	}

	text := req.text(key, nil)
	if req.Kind == KindCallback {
		req.ackText = text
		return
	}
	req.send(text, nil)
}

// ownedEvent loads an event with its roster and hides events of other users.
func ownedEvent(ctx context.Context, req *request, eventID int64) (*entities.Event, error) {
	event, err := req.svc.Events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.OwnedBy(req.UserID) {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}
