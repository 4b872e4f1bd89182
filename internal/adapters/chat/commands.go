package chat

import "rosterbot/internal/ports/output"

// Command names, without the leading slash.
const (
	CommandStart             = "start"
	CommandHelp              = "help"
	CommandCancel            = "cancel"
	CommandCancelParticipant = "cancel_participant"
	CommandCreateEvent       = "create_event"
	CommandEditEvents        = "edit_events"
	CommandMyEvents          = "my_events"
)

// menuOrder is the order commands are published to the platform menu.
var menuOrder = []string{
	CommandStart,
	CommandCreateEvent,
	CommandEditEvents,
	CommandMyEvents,
	CommandCancel,
	CommandCancelParticipant,
	CommandHelp,
}

// CommandInfo is a command with its localized description.
type CommandInfo struct {
	Name        string
	Description string
}

// CommandMenu lists the user-facing commands described in locale.
func CommandMenu(t output.T, locale string) []CommandInfo {
	out := make([]CommandInfo, len(menuOrder))
	for i, name := range menuOrder {
		out[i] = CommandInfo{Name: name, Description: t.T(locale, "commands."+name, nil)}
	}
	return out
}
