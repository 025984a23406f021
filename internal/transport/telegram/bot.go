package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/tallybot/internal/config"
	"github.com/sandevgo/tallybot/internal/core"
	"github.com/sandevgo/tallybot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot    *tele.Bot
	tally  core.Tally
	router core.CmdRouter
	sender *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	tally core.Tally,
	router core.CmdRouter,
) (*Bot, error) {
	logger := log.FromCtx(ctx)

	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
		// One update at a time keeps each chat's messages in arrival order.
		Synchronous: true,
		OnError: func(err error, c tele.Context) {
			logger.Error().Err(err).Msg("telegram handler failed")
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		tally:  tally,
		router: router,
		sender: newSender(),
	}

	// Per-update context carrying a chat-scoped logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Chat() == nil {
				return nil
			}
			c.Set(baseContextKey, log.WithChat(ctx, c.Chat().ID))
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleText)
	b.Handle(tele.OnCallback, bot.handleCallback)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	if err := b.bot.SetCommands(botCommands(b.router.ListCommands())); err != nil {
		logger.Warn().Err(err).Msg("failed to register telegram commands")
	}

	logger.Info().Str("bot", b.bot.Me.Username).Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleText(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	id := c.Chat().ID
	text := c.Text()

	if strings.HasPrefix(text, "/") {
		if resp, ok := b.router.Execute(ctx, id, text); ok {
			return b.sender.send(ctx, c, resp)
		}
	}

	for _, resp := range b.tally.OnTextMessage(ctx, id, text, c.Message().Time()) {
		if err := b.sender.send(ctx, c, resp); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) handleCallback(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	_ = c.Respond()

	token := core.Selector(strings.TrimSpace(c.Callback().Data))
	log.FromCtx(ctx).Debug().Str("token", string(token)).Msg("menu selection")

	resp := b.tally.OnMenuSelection(ctx, c.Chat().ID, token)

	// Reply keyboards cannot be attached by editing an inline message.
	if len(resp.Suggestions) > 0 {
		return b.sender.send(ctx, c, resp)
	}
	return b.sender.edit(ctx, c, resp)
}

func botCommands(cmds []core.Command) []tele.Command {
	out := make([]tele.Command, 0, len(cmds))
	for _, cmd := range cmds {
		out = append(out, tele.Command{Text: cmd.Name(), Description: cmd.Description()})
	}
	return out
}
