package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"rosterbot/internal/ports/output"
	"rosterbot/pkg/keyboard"
)

var _ output.Messenger = (*Bot)(nil)

func (b *Bot) Send(_ context.Context, chatID int64, text string, markup *keyboard.Markup) (int64, error) {
	msg, err := b.session.ChannelMessageSendComplex(formatSnowflake(chatID), &discordgo.MessageSend{
		Content:    toMarkdown(text),
		Components: toComponents(markup, b.log),
	})
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}
	return parseSnowflake(msg.ID), nil
}

// Edit replaces the content and buttons of a message. A nil markup removes
// the buttons.
func (b *Bot) Edit(_ context.Context, chatID, messageID int64, text string, markup *keyboard.Markup) error {
	content := toMarkdown(text)
	components := toComponents(markup, b.log)
	_, err := b.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         formatSnowflake(messageID),
		Channel:    formatSnowflake(chatID),
		Content:    &content,
		Components: &components,
	})
	if err != nil {
		return fmt.Errorf("edit message: %w", err)
	}
	return nil
}

func (b *Bot) Delete(_ context.Context, chatID, messageID int64) error {
	if err := b.session.ChannelMessageDelete(formatSnowflake(chatID), formatSnowflake(messageID)); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

// AnswerCallback resolves a pending button interaction: silently, or with
// an ephemeral notice when text is set. Unknown or already answered IDs
// are ignored.
func (b *Bot) AnswerCallback(_ context.Context, callbackID, text string) error {
	i, ok := b.takePending(callbackID)
	if !ok {
		return nil
	}
	var err error
	if text == "" {
		err = acknowledgeComponent(b.session, i)
	} else {
		err = respondEphemeral(b.session, i, toMarkdown(text))
	}
	if err != nil {
		return fmt.Errorf("answer interaction: %w", err)
	}
	return nil
}
