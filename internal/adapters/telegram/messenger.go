package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rosterbot/internal/ports/output"
	"rosterbot/pkg/keyboard"
)

var _ output.Messenger = (*Bot)(nil)

func (b *Bot) Send(_ context.Context, chatID int64, text string, markup *keyboard.Markup) (int64, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if kb := toInlineMarkup(markup); kb != nil {
		msg.ReplyMarkup = *kb
	}
	sent, err := b.api.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}
	return int64(sent.MessageID), nil
}

// Edit replaces the text and buttons of a message. A nil markup removes
// the buttons.
func (b *Bot) Edit(_ context.Context, chatID, messageID int64, text string, markup *keyboard.Markup) error {
	edit := tgbotapi.NewEditMessageText(chatID, int(messageID), text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = toInlineMarkup(markup)
	if _, err := b.api.Request(edit); err != nil {
		if isNotModified(err) {
			return nil
		}
		return fmt.Errorf("edit message: %w", err)
	}
	return nil
}

func (b *Bot) Delete(_ context.Context, chatID, messageID int64) error {
	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, int(messageID))); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

func (b *Bot) AnswerCallback(_ context.Context, callbackID, text string) error {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}

// toInlineMarkup converts a grid, or returns nil when it has no buttons.
func toInlineMarkup(m *keyboard.Markup) *tgbotapi.InlineKeyboardMarkup {
	if m.Empty() {
		return nil
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(m.Rows))
	for _, r := range m.Rows {
		if len(r) == 0 {
			continue
		}
		row := make([]tgbotapi.InlineKeyboardButton, len(r))
		for i, btn := range r {
			row[i] = tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.Action)
		}
		rows = append(rows, row)
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

// Re-rendering an unchanged screen (e.g. a no-op delete) is not an error.
func isNotModified(err error) bool {
	return strings.Contains(err.Error(), "message is not modified")
}
