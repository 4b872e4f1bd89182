package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rosterbot/internal/adapters/chat"
	"rosterbot/internal/infrastructure/logger"
)

// Bot is the Telegram adapter: a long-polling update source and the
// outbound Messenger.
type Bot struct {
	api *tgbotapi.BotAPI
	log *logger.Logger
	wg  sync.WaitGroup
}

func NewBot(token string, log *logger.Logger) (*Bot, error) {
	if err := tgbotapi.SetLogger(stdLogger(log)); err != nil {
		return nil, fmt.Errorf("telegram logger: %w", err)
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Bot{api: api, log: log}, nil
}

// PublishCommands sets the command menu shown by Telegram clients.
func (b *Bot) PublishCommands(menu []chat.CommandInfo) error {
	commands := make([]tgbotapi.BotCommand, len(menu))
	for i, c := range menu {
		commands[i] = tgbotapi.BotCommand{Command: c.Name, Description: c.Description}
	}
	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		return fmt.Errorf("set my commands: %w", err)
	}
	return nil
}

// Run long-polls updates until ctx is cancelled. Each update is handled in
// its own goroutine; Run waits for them before returning.
func (b *Bot) Run(ctx context.Context, handler chat.Handler) error {
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
		return fmt.Errorf("drop pending updates: %w", err)
	}
	b.log.Infof("TELEGRAM", "🤖 Authorized as @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.wg.Wait()
			return nil
		case update, ok := <-updates:
			if !ok {
				b.wg.Wait()
				return nil
			}
			cu, ok := toUpdate(update)
			if !ok {
				continue
			}
			b.wg.Add(1)
			go func() {
				defer b.wg.Done()
				handler.Handle(ctx, cu)
			}()
		}
	}
}

// toUpdate normalizes a Telegram update. Only messages and callback
// queries are of interest.
func toUpdate(u tgbotapi.Update) (chat.Update, bool) {
	switch {
	case u.Message != nil && u.Message.From != nil:
		m := u.Message
		out := chat.Update{
			UserID:    m.From.ID,
			ChatID:    m.Chat.ID,
			MessageID: int64(m.MessageID),
			Locale:    m.From.LanguageCode,
		}
		if m.IsCommand() {
			out.Kind = chat.KindCommand
			out.Command = strings.ToLower(m.Command())
			return out, true
		}
		out.Kind = chat.KindMessage
		out.Text = m.Text
		out.HasText = m.Text != ""
		return out, true

	case u.CallbackQuery != nil && u.CallbackQuery.From != nil:
		q := u.CallbackQuery
		out := chat.Update{
			Kind:       chat.KindCallback,
			UserID:     q.From.ID,
			CallbackID: q.ID,
			Data:       q.Data,
			Locale:     q.From.LanguageCode,
		}
		if q.Message != nil {
			out.ChatID = q.Message.Chat.ID
			out.MessageID = int64(q.Message.MessageID)
		}
		return out, true
	}
	return chat.Update{}, false
}

// stdLogger routes the library's log output through our logger.
func stdLogger(l *logger.Logger) *log.Logger {
	return log.New(l.Writer("TELEGRAM"), "", 0)
}
