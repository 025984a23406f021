package telegram

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sandevgo/tallybot/internal/core"
	"github.com/sandevgo/tallybot/pkg/conv"
	"github.com/sandevgo/tallybot/pkg/log"
	"github.com/sandevgo/tallybot/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

type sender struct {
	retrier *retry.Retrier
}

func newSender() *sender {
	cfg := retry.NewDefaultConfig()
	cfg.Permanent = isPermanent
	cfg.Wait = floodWait
	return &sender{retrier: retry.NewRetrier(cfg)}
}

// send delivers resp as new messages. Markup goes on the last chunk.
func (s *sender) send(ctx context.Context, c tele.Context, resp core.Response) error {
	logger := log.FromCtx(ctx)
	chunks, opts := render(resp)

	for i, chunk := range chunks {
		chunkOpts := opts.text
		if i == len(chunks)-1 {
			chunkOpts = opts.all()
		}
		err := s.retrier.Do(ctx, func() error {
			return c.Send(chunk, chunkOpts...)
		})
		if err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram message")
			return err
		}
	}
	return nil
}

// edit replaces the message the callback came from, or sends when it cannot.
func (s *sender) edit(ctx context.Context, c tele.Context, resp core.Response) error {
	chunks, opts := render(resp)
	if len(chunks) > 1 {
		return s.send(ctx, c, resp)
	}

	err := s.retrier.Do(ctx, func() error {
		err := c.EditOrSend(chunks[0], opts.all()...)
		if errors.Is(err, tele.ErrSameMessageContent) {
			return nil
		}
		return err
	})
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to edit telegram message")
	}
	return err
}

type sendOptions struct {
	text   []any
	markup *tele.ReplyMarkup
}

func (o sendOptions) all() []any {
	if o.markup == nil {
		return o.text
	}
	return append(append([]any{}, o.text...), o.markup)
}

func render(resp core.Response) ([]string, sendOptions) {
	var opts sendOptions
	text := resp.Text
	if resp.Structured {
		text = strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(text)))
		opts.text = append(opts.text, tele.ModeHTML)
	}

	switch {
	case len(resp.Menu) > 0:
		opts.markup = menuMarkup(resp.Menu)
	case len(resp.Suggestions) > 0:
		opts.markup = suggestionMarkup(resp.Suggestions)
	}

	return splitHTML(text, maxTelegramMsgLen), opts
}

// menuMarkup uses the raw token as callback data so every press reaches OnCallback.
func menuMarkup(options []core.MenuOption) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(options))
	for _, o := range options {
		rows = append(rows, m.Row(tele.Btn{Text: o.Label, Data: string(o.Token)}))
	}
	m.Inline(rows...)
	return m
}

func suggestionMarkup(suggestions [][]string) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	rows := make([]tele.Row, 0, len(suggestions))
	for _, line := range suggestions {
		btns := make([]tele.Btn, 0, len(line))
		for _, label := range line {
			btns = append(btns, m.Text(label))
		}
		rows = append(rows, m.Row(btns...))
	}
	m.Reply(rows...)
	return m
}

func isPermanent(err error) bool {
	var tgErr *tele.Error
	if errors.As(err, &tgErr) {
		return tgErr.Code >= http.StatusBadRequest && tgErr.Code < http.StatusInternalServerError &&
			tgErr.Code != http.StatusTooManyRequests
	}
	return false
}

func floodWait(err error) (time.Duration, bool) {
	var flood tele.FloodError
	if errors.As(err, &flood) {
		return time.Duration(flood.RetryAfter) * time.Second, true
	}
	return 0, false
}

// splitHTML splits text into chunks respecting Telegram's limit.
// It tries to split at newlines to preserve formatting.
func splitHTML(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		} else {
			cut = runeBoundary(text, cut)
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}

// runeBoundary moves cut back so it does not split a multi-byte rune.
func runeBoundary(text string, cut int) int {
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return cut
}
