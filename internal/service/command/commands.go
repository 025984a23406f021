package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/tallybot/internal/core"
)

type tallyService interface {
	Menu() core.Response
	OnMenuSelection(ctx context.Context, id core.ConversationID, token core.Selector) core.Response
	SumRange(ctx context.Context, id core.ConversationID, line string) core.Response
	Cancel(ctx context.Context, id core.ConversationID) core.Response
}

// StartCommand shows the window menu.
type StartCommand struct {
	tally tallyService
}

func NewStartCommand(tally tallyService) *StartCommand {
	return &StartCommand{tally: tally}
}

func (c *StartCommand) Name() string        { return "start" }
func (c *StartCommand) Description() string { return "បង្ហាញម៉ឺនុយជ្រើសរើសចន្លោះពេល" }

func (c *StartCommand) Execute(ctx context.Context, id core.ConversationID, args []string) (core.Response, error) {
	return c.tally.Menu(), nil
}

// SumCommand selects a window by its token, e.g. /sum week.
type SumCommand struct {
	tally tallyService
}

func NewSumCommand(tally tallyService) *SumCommand {
	return &SumCommand{tally: tally}
}

func (c *SumCommand) Name() string        { return "sum" }
func (c *SumCommand) Description() string { return "គណនាផលបូកតាមចន្លោះពេល (today_morning, today_evening, week, month, custom, range)" }

func (c *SumCommand) Execute(ctx context.Context, id core.ConversationID, args []string) (core.Response, error) {
	if len(args) == 0 {
		return c.tally.Menu(), nil
	}
	return c.tally.OnMenuSelection(ctx, id, core.Selector(strings.ToLower(args[0]))), nil
}

// RangeCommand sums a one-line range, or asks for one when called bare.
type RangeCommand struct {
	tally tallyService
}

func NewRangeCommand(tally tallyService) *RangeCommand {
	return &RangeCommand{tally: tally}
}

func (c *RangeCommand) Name() string        { return "range" }
func (c *RangeCommand) Description() string { return "គណនាផលបូកសម្រាប់ចន្លោះ A to B" }

func (c *RangeCommand) Execute(ctx context.Context, id core.ConversationID, args []string) (core.Response, error) {
	if len(args) == 0 {
		return c.tally.OnMenuSelection(ctx, id, core.SelectorRange), nil
	}
	return c.tally.SumRange(ctx, id, strings.Join(args, " ")), nil
}

type CancelCommand struct {
	tally tallyService
}

func NewCancelCommand(tally tallyService) *CancelCommand {
	return &CancelCommand{tally: tally}
}

func (c *CancelCommand) Name() string        { return "cancel" }
func (c *CancelCommand) Description() string { return "បោះបង់ការជ្រើសរើសពេលវេលា" }

func (c *CancelCommand) Execute(ctx context.Context, id core.ConversationID, args []string) (core.Response, error) {
	return c.tally.Cancel(ctx, id), nil
}

type HelpCommand struct {
	list      func() []core.Command
	formatter *ResponseFormatter
}

func NewHelpCommand(list func() []core.Command) *HelpCommand {
	return &HelpCommand{list: list, formatter: NewResponseFormatter()}
}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "បង្ហាញជំនួយ" }

func (c *HelpCommand) Execute(ctx context.Context, id core.ConversationID, args []string) (core.Response, error) {
	sections := []string{c.formatter.Info(core.TallyName)}
	for _, cmd := range c.list() {
		sections = append(sections, c.formatter.Label(fmt.Sprintf("/%s", cmd.Name()), cmd.Description()))
	}
	sections = append(sections, c.formatter.Examples([]string{
		"$3.79",
		"បានទទួល 28.80 ដុល្លារ",
		"/range 2025-07-01 00:00 to 2025-07-31 23:59",
	}))

	return core.Response{Text: c.formatter.Combine(sections...), Structured: true}, nil
}
