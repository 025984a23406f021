package core

import "context"

type CmdRouter interface {
	Execute(ctx context.Context, id ConversationID, input string) (Response, bool)
	ListCommands() []Command
}

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, id ConversationID, args []string) (Response, error)
}
