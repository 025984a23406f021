package command

import (
	"github.com/sandevgo/tallybot/internal/core"
)

func NewCommands(tally tallyService) []core.Command {
	return []core.Command{
		NewStartCommand(tally),
		NewSumCommand(tally),
		NewRangeCommand(tally),
		NewCancelCommand(tally),
	}
}

// NewRouter builds the router with every command, including /help.
func NewRouter(tally tallyService) *Router {
	r := New(NewCommands(tally))
	r.Register(NewHelpCommand(r.ListCommands))
	return r
}
