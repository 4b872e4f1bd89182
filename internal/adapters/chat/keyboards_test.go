package chat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterbot/internal/domain/entities"
	"rosterbot/pkg/keyboard"
)

func TestRenderers_ControlRowLast(t *testing.T) {
	kb := renderer{t: keyT{}, locale: "en"}
	events := []entities.Event{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}
	participants := []entities.Participant{{ID: 5, EventID: 1, Name: "x"}, {ID: 6, EventID: 1, Name: "y"}, {ID: 7, EventID: 1, Name: "z"}}

	tests := []struct {
		name    string
		markup  *keyboard.Markup
		control string
	}{
		{"events", kb.events(events), actionEditEvents},
		{"choice", kb.choice(), actionAdd},
		{"my events", kb.myEvents(events), actionClose},
		{"roster", kb.roster(participants), actionHomeBack},
		{"delete menu", kb.deleteMenu(), actionCancelDelete},
		{"delete events", kb.deleteEvents(events), actionBackParticipantDelete},
		{"delete participants", kb.deleteParticipants(participants), actionBackParticipantDelete},
		{"events for participants", kb.eventsForParticipants(events), actionBackParticipantDelete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotEmpty(t, tt.markup.Rows)
			last := tt.markup.Rows[len(tt.markup.Rows)-1]
			assert.Equal(t, tt.control, last[len(last)-1].Action)
		})
	}
}

func TestRenderers_EmptyListsKeepControls(t *testing.T) {
	kb := renderer{t: keyT{}}

	assert.Equal(t, [][]string{{actionEditEvents}}, actions(kb.events(nil)))
	assert.Equal(t, [][]string{{actionHomeBack}}, actions(kb.roster(nil)))
	assert.Equal(t, [][]string{{actionBackParticipantDelete}}, actions(kb.deleteParticipants(nil)))
}

func TestRenderers_VerbsDoNotOverlap(t *testing.T) {
	kb := renderer{t: keyT{}}
	events := []entities.Event{{ID: 3, Title: "A"}}
	participants := []entities.Participant{{ID: 4, EventID: 3, Name: "x"}}

	verbs := map[string]string{}
	for name, m := range map[string]*keyboard.Markup{
		"events":                  kb.events(events),
		"my events":               kb.myEvents(events),
		"roster":                  kb.roster(participants),
		"delete events":           kb.deleteEvents(events),
		"delete participants":     kb.deleteParticipants(participants),
		"events for participants": kb.eventsForParticipants(events),
	} {
		a, err := keyboard.Parse(m.Rows[0][0].Action)
		require.NoError(t, err)
		require.NotEmpty(t, a.Args, name)
		if prev, ok := verbs[a.Verb]; ok {
			t.Fatalf("verb %q emitted by %s and %s", a.Verb, prev, name)
		}
		verbs[a.Verb] = name
	}
	assert.Len(t, verbs, 6)
}

func TestRenderers_ParticipantDeleteCarriesBothIDs(t *testing.T) {
	kb := renderer{t: keyT{}}
	m := kb.deleteParticipants([]entities.Participant{{ID: 7, EventID: 42, Name: "Alice"}})

	assert.Equal(t, "participant_delete:7:42", m.Rows[0][0].Action)
	assert.Equal(t, "button.delete_item:Alice", m.Rows[0][0].Label)
}

func TestCommandMenu(t *testing.T) {
	menu := CommandMenu(keyT{}, "ru")
	require.Len(t, menu, 7)
	assert.Equal(t, CommandInfo{Name: "start", Description: "commands.start"}, menu[0])

	names := map[string]bool{}
	for _, c := range menu {
		names[c.Name] = true
	}
	for _, c := range []string{CommandHelp, CommandCancel, CommandCancelParticipant, CommandCreateEvent, CommandEditEvents, CommandMyEvents} {
		assert.True(t, names[c], c)
	}
}

func TestUserLocks(t *testing.T) {
	l := newUserLocks()

	unlockA := l.Lock(1)
	unlockB := l.Lock(2)
	assert.Equal(t, 2, l.size())

	done := make(chan struct{})
	go func() {
		unlock := l.Lock(1)
		unlock()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("second lock of the same user must wait")
	default:
	}

	unlockA()
	<-done
	unlockB()
	assert.Zero(t, l.size())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "command", KindCommand.String())
	assert.Equal(t, "callback", KindCallback.String())
	assert.Equal(t, "kind(9)", fmt.Sprint(Kind(9)))
}
