package core

import (
	"context"
	"time"
)

// Tally is the core surface the transports talk to.
type Tally interface {
	OnTextMessage(ctx context.Context, id ConversationID, text string, ts time.Time) []Response
	OnMenuSelection(ctx context.Context, id ConversationID, token Selector) Response
	Menu() Response
}
