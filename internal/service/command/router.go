package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/tallybot/internal/core"
)

type Router struct {
	commands  map[string]core.Command
	formatter *ResponseFormatter
}

func New(commands []core.Command) *Router {
	c := &Router{
		commands:  make(map[string]core.Command),
		formatter: NewResponseFormatter(),
	}

	for _, cmd := range commands {
		c.commands[cmd.Name()] = cmd
	}
	return c
}

// Register adds a command after construction, e.g. one that needs the router itself.
func (c *Router) Register(cmd core.Command) {
	c.commands[cmd.Name()] = cmd
}

func (c *Router) Execute(ctx context.Context, id core.ConversationID, input string) (core.Response, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return core.Response{}, false
	}

	parts := strings.Fields(input)
	name := strings.TrimPrefix(parts[0], "/")
	// group chats address commands as /start@botname
	if at := strings.Index(name, "@"); at != -1 {
		name = name[:at]
	}
	args := parts[1:]

	cmd, ok := c.commands[name]
	if !ok {
		return core.Response{Text: fmt.Sprintf("❌ មិនស្គាល់ពាក្យបញ្ជា /%s", name)}, true
	}

	result, err := cmd.Execute(ctx, id, args)
	if err != nil {
		return core.Response{Text: c.formatter.Error(err), Structured: true}, true
	}
	return result, true
}

func (c *Router) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		res = append(res, cmd)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name() < res[j].Name() })
	return res
}

var _ core.CmdRouter = (*Router)(nil)
