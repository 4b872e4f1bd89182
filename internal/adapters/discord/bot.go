package discord

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/bwmarrin/discordgo"

	"rosterbot/internal/adapters/chat"
	"rosterbot/internal/infrastructure/logger"
)

// Bot is the Discord adapter: a gateway update source and the outbound
// Messenger. Button presses are interactions that must be answered; they
// stay pending until the router answers them or the handler returns.
type Bot struct {
	session *discordgo.Session
	log     *logger.Logger
	menu    []chat.CommandInfo

	mu      sync.Mutex
	pending map[string]*discordgo.Interaction
	wg      sync.WaitGroup
}

func NewBot(token string, log *logger.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsDirectMessages |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent
	return &Bot{
		session: s,
		log:     log,
		pending: make(map[string]*discordgo.Interaction),
	}, nil
}

// PublishCommands records the slash command menu. It is registered once the
// gateway session is open.
func (b *Bot) PublishCommands(menu []chat.CommandInfo) error {
	b.menu = menu
	return nil
}

// Run opens the gateway and dispatches updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context, handler chat.Handler) error {
	removeInteraction := b.session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.onInteraction(ctx, handler, i)
	})
	defer removeInteraction()
	removeMessage := b.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		b.onMessage(ctx, handler, s.State.User.ID, m)
	})
	defer removeMessage()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	b.registerCommands()
	b.log.Infof("DISCORD", "🤖 Online as %s", b.session.State.User.Username)

	<-ctx.Done()
	b.wg.Wait()
	return nil
}

func (b *Bot) registerCommands() {
	if len(b.menu) == 0 {
		return
	}
	commands := make([]*discordgo.ApplicationCommand, len(b.menu))
	for i, c := range b.menu {
		commands[i] = &discordgo.ApplicationCommand{Name: c.Name, Description: c.Description}
	}
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, "", commands); err != nil {
		b.log.Warnf("DISCORD", "⚠️ register slash commands: %v", err)
	}
}

func (b *Bot) onInteraction(ctx context.Context, handler chat.Handler, i *discordgo.InteractionCreate) {
	u, ok := fromInteraction(i)
	if !ok {
		return
	}
	switch u.Kind {
	case chat.KindCommand:
		// Slash commands need an answer within three seconds; the replies
		// themselves are posted to the channel.
		if err := respondEphemeral(b.session, i.Interaction, "✅ /"+u.Command); err != nil {
			b.log.Warnf("DISCORD", "⚠️ acknowledge /%s: %v", u.Command, err)
		}
	case chat.KindCallback:
		b.mu.Lock()
		b.pending[i.ID] = i.Interaction
		b.mu.Unlock()
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		handler.Handle(ctx, u)
		if u.Kind == chat.KindCallback {
			_ = b.AnswerCallback(ctx, u.CallbackID, "")
		}
	}()
}

func (b *Bot) onMessage(ctx context.Context, handler chat.Handler, selfID string, m *discordgo.MessageCreate) {
	u, ok := fromMessage(m, selfID)
	if !ok {
		return
	}
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		handler.Handle(ctx, u)
	}()
}

func (b *Bot) takePending(id string) (*discordgo.Interaction, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i, ok := b.pending[id]
	delete(b.pending, id)
	return i, ok
}

func parseSnowflake(id string) int64 {
	n, _ := strconv.ParseInt(id, 10, 64)
	return n
}

func formatSnowflake(id int64) string {
	return strconv.FormatInt(id, 10)
}
