package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"

	"rosterbot/internal/adapters/chat"
	"rosterbot/internal/adapters/discord"
	"rosterbot/internal/adapters/telegram"
	"rosterbot/internal/application"
	"rosterbot/internal/config"
	"rosterbot/internal/infrastructure/database"
	"rosterbot/internal/infrastructure/i18n"
	"rosterbot/internal/infrastructure/logger"
	"rosterbot/internal/infrastructure/scheduler"
	"rosterbot/internal/infrastructure/statestore"
	"rosterbot/internal/ports/output"
)

// transport is a chat platform: it receives updates and sends messages.
type transport interface {
	output.Messenger
	PublishCommands(menu []chat.CommandInfo) error
	Run(ctx context.Context, handler chat.Handler) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration: %v", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("❌ Configuration: %v", err)
	}
	l, err := logger.New(logger.Options{Level: level, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("❌ Logger: %v", err)
	}
	defer l.Close()
	log.SetFlags(0)
	log.SetOutput(l.Writer("BOT"))

	if err := run(cfg, l); err != nil {
		l.Fatal("BOT", fmt.Sprintf("❌ %v", err))
	}
}

func run(cfg *config.Config, l *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, l); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, l)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()
	store := database.NewStore(pool)

	states, closeStates, err := newStateStore(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer closeStates()

	translator := i18n.NewTranslator(cfg.DefaultLocale, l)

	bot, err := newTransport(cfg, l)
	if err != nil {
		return err
	}
	if err := bot.PublishCommands(chat.CommandMenu(translator, cfg.DefaultLocale)); err != nil {
		l.Warnf("BOT", "⚠️ publish command menu: %v", err)
	}

	convs := application.NewConversationService(states, bot)
	router := chat.NewRouter(store, convs, bot, translator, l)

	if cfg.StateBackend == config.StateBackendMemory {
		sweeper := scheduler.NewSweeper(convs, cfg.StateIdleTimeout, l)
		if err := sweeper.Start(ctx, scheduler.DefaultSpec); err != nil {
			return err
		}
	}

	l.Infof("BOT", "🚀 Starting %s transport", cfg.Transport)
	if err := bot.Run(ctx, router); err != nil {
		return fmt.Errorf("%s transport: %w", cfg.Transport, err)
	}
	l.Info("BOT", "👋 Stopped")
	return nil
}

func newTransport(cfg *config.Config, l *logger.Logger) (transport, error) {
	switch cfg.Transport {
	case config.TransportDiscord:
		return discord.NewBot(cfg.Token, l)
	default:
		return telegram.NewBot(cfg.Token, l)
	}
}

// newStateStore returns the conversation store and a function releasing it.
func newStateStore(ctx context.Context, cfg *config.Config, l *logger.Logger) (output.ConversationStore, func(), error) {
	if cfg.StateBackend != config.StateBackendRedis {
		return statestore.NewMemory(), func() {}, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	rs := statestore.NewRedis(client, cfg.StateIdleTimeout)
	if err := rs.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis: %w", err)
	}
	l.Infof("BOT", "✅ Conversation state in Redis at %s", cfg.RedisAddr)
	return rs, func() { _ = client.Close() }, nil
}
