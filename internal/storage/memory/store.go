package memory

import (
	"context"
	"sync"

	"github.com/sandevgo/tallybot/internal/core"
	"github.com/sandevgo/tallybot/internal/service/extract"
	"github.com/sandevgo/tallybot/pkg/log"
	"github.com/shopspring/decimal"
)

// Store keeps every conversation's amount records for the lifetime of the process.
// Records are never evicted, reordered or deduplicated.
type Store struct {
	mu   sync.RWMutex
	logs map[core.ConversationID][]core.AmountRecord
}

func NewStore() *Store {
	return &Store{
		logs: make(map[core.ConversationID][]core.AmountRecord),
	}
}

func (s *Store) Append(ctx context.Context, id core.ConversationID, rec core.AmountRecord) {
	amounts := make([]string, len(rec.Amounts))
	copy(amounts, rec.Amounts)
	rec.Amounts = amounts

	s.mu.Lock()
	s.logs[id] = append(s.logs[id], rec)
	size := len(s.logs[id])
	s.mu.Unlock()

	log.FromCtx(ctx).Debug().
		Int64("chat_id", id).
		Int("amounts", len(amounts)).
		Int("records", size).
		Msg("amount record stored")
}

// Query sums every amount whose record timestamp lies in the window, bounds included.
// The log is scanned in full; it is not assumed to be sorted.
func (s *Store) Query(ctx context.Context, id core.ConversationID, window core.TimeWindow) (int, decimal.Decimal) {
	s.mu.RLock()
	records := s.logs[id]
	s.mu.RUnlock()

	logger := log.FromCtx(ctx)

	var (
		count int
		sum   = decimal.Zero
	)
	for _, rec := range records {
		if !window.Contains(rec.Timestamp) {
			continue
		}
		for _, raw := range rec.Amounts {
			amount, err := extract.ParseAmount(raw)
			if err != nil {
				logger.Debug().Err(err).Str("amount", raw).Msg("skipping unparsable amount")
				continue
			}
			sum = sum.Add(amount)
			count++
		}
	}
	return count, sum
}

// Records returns a copy of the conversation's log in append order.
func (s *Store) Records(id core.ConversationID) []core.AmountRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.AmountRecord, len(s.logs[id]))
	copy(out, s.logs[id])
	return out
}

func (s *Store) Conversations() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs)
}
