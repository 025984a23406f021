package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/sandevgo/tallybot/internal/config"
	"github.com/sandevgo/tallybot/internal/core"
	"github.com/sandevgo/tallybot/pkg/conv"
	"github.com/sandevgo/tallybot/pkg/log"
)

// localConversation is the single conversation a terminal session owns.
const localConversation core.ConversationID = 1

type ReadLine struct {
	tally  core.Tally
	router core.CmdRouter
	rl     *readline.Instance
	now    func() time.Time
}

func NewReadLine(tally core.Tally, router core.CmdRouter, cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "💵 > ",
		HistoryFile:     cfg.GetHistoryPath(),
		AutoComplete:    completer(tally.Menu().Menu, router.ListCommands()),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		tally:  tally,
		router: router,
		rl:     rl,
		now:    time.Now,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	ctx = log.WithChat(ctx, localConversation)
	logger := log.FromCtx(ctx)
	logger.Info().Msg("terminal chat started. Type 'exit' to quit.")

	r.print(r.rl.Stdout(), r.tally.Menu())

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		r.handle(ctx, line, r.rl.Stdout())
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

func (r *ReadLine) handle(ctx context.Context, line string, out io.Writer) {
	if strings.HasPrefix(line, "/") {
		if resp, ok := r.router.Execute(ctx, localConversation, line); ok {
			r.print(out, resp)
			return
		}
	}

	for _, resp := range r.tally.OnTextMessage(ctx, localConversation, line, r.now()) {
		r.print(out, resp)
	}
}

func (r *ReadLine) print(out io.Writer, resp core.Response) {
	text := resp.Text
	if resp.Structured {
		plain, err := conv.MarkdownToText([]byte(text))
		if err == nil {
			text = plain
		}
	}
	fmt.Fprintln(out, text)

	for _, opt := range resp.Menu {
		fmt.Fprintf(out, "  /sum %-14s %s\n", opt.Token, opt.Label)
	}
	for _, row := range resp.Suggestions {
		fmt.Fprintf(out, "  › %s\n", strings.Join(row, " | "))
	}
}

func completer(menu []core.MenuOption, cmds []core.Command) *readline.PrefixCompleter {
	tokens := make([]readline.PrefixCompleterInterface, 0, len(menu))
	for _, opt := range menu {
		tokens = append(tokens, readline.PcItem(string(opt.Token)))
	}

	items := make([]readline.PrefixCompleterInterface, 0, len(cmds))
	for _, cmd := range cmds {
		if cmd.Name() == "sum" {
			items = append(items, readline.PcItem("/sum", tokens...))
			continue
		}
		items = append(items, readline.PcItem("/"+cmd.Name()))
	}
	return readline.NewPrefixCompleter(items...)
}
