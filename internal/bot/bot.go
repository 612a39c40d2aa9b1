package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/artwork"
	"github.com/sryimsuki-lab/youtube-telegram-bot/internal/config"
)

// Bot owns the Telegram long-poll loop and dispatches each message to the
// pipeline.
type Bot struct {
	api      *tgbotapi.BotAPI
	pipeline *Pipeline
	timeout  int
	log      *slog.Logger
}

// New authenticates against the Telegram API and assembles the bot.
func New(cfg *config.Config, engine Engine, log *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	log.Info("authorized", slog.String("username", api.Self.UserName))

	fetcher := artwork.NewFetcher(cfg.Download.ThumbnailTimeout)

	b := &Bot{
		api:      api,
		pipeline: NewPipeline(api, engine, fetcher, cfg.Download, log),
		timeout:  cfg.Bot.UpdateTimeout,
		log:      log,
	}
	b.registerCommands()
	return b, nil
}

func (b *Bot) registerCommands() {
	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Show the welcome message"},
	)
	if _, err := b.api.Request(commands); err != nil {
		b.log.Warn("command registration failed", slog.Any("error", err))
	}
}

// Run consumes updates until ctx is cancelled. Each link runs on its own
// goroutine, so a long playlist never blocks the update loop.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.timeout

	updates := b.api.GetUpdatesChan(u)
	b.log.Info("listening for updates")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.log.Info("update loop stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}

	if msg.IsCommand() {
		if msg.Command() == "start" {
			b.pipeline.reply(msg.Chat.ID, welcomeText)
		}
		// Unknown commands are ignored, not treated as links.
		return
	}

	go b.pipeline.Run(ctx, msg.Chat.ID, msg.Text)
}
