package core

import (
	"context"

	"github.com/shopspring/decimal"
)

type AmountRepository interface {
	Append(ctx context.Context, id ConversationID, rec AmountRecord)
	Query(ctx context.Context, id ConversationID, window TimeWindow) (count int, sum decimal.Decimal)
}
