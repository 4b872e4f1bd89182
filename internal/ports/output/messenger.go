package output

import (
	"context"

	"rosterbot/pkg/keyboard"
)

// Messenger is the outbound side of the chat transport. A nil markup sends
// or leaves the message without buttons.
type Messenger interface {
	Send(ctx context.Context, chatID int64, text string, markup *keyboard.Markup) (messageID int64, err error)
	Edit(ctx context.Context, chatID, messageID int64, text string, markup *keyboard.Markup) error
	Delete(ctx context.Context, chatID, messageID int64) error
	AnswerCallback(ctx context.Context, callbackID, text string) error
}
