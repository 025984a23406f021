package memory

import (
	"context"
	"testing"
	"time"

	"github.com/sandevgo/tallybot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var zone = time.FixedZone("UTC+7", 7*60*60)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, time.July, day, hour, minute, 0, 0, zone)
}

func record(ts time.Time, amounts ...string) core.AmountRecord {
	return core.AmountRecord{Timestamp: ts, Amounts: amounts, RawText: "test"}
}

func TestStore_QueryUnknownConversation(t *testing.T) {
	s := NewStore()
	count, sum := s.Query(context.Background(), 42, core.TimeWindow{Start: at(1, 0, 0), End: at(31, 23, 59)})
	assert.Equal(t, 0, count)
	assert.Equal(t, "0.00", sum.StringFixed(2))
	assert.Equal(t, 0, s.Conversations())
}

func TestStore_Query(t *testing.T) {
	window := core.TimeWindow{Start: at(1, 6, 0), End: at(1, 13, 30)}

	tests := []struct {
		name      string
		records   []core.AmountRecord
		wantCount int
		wantSum   string
	}{
		{
			name:      "empty log",
			wantCount: 0,
			wantSum:   "0.00",
		},
		{
			name:      "single amount inside",
			records:   []core.AmountRecord{record(at(1, 7, 0), "3.79")},
			wantCount: 1,
			wantSum:   "3.79",
		},
		{
			name: "bounds are inclusive",
			records: []core.AmountRecord{
				record(at(1, 6, 0), "1"),
				record(at(1, 13, 30), "2"),
			},
			wantCount: 2,
			wantSum:   "3.00",
		},
		{
			name: "outside window excluded",
			records: []core.AmountRecord{
				record(at(1, 5, 59), "1"),
				record(at(1, 13, 31), "2"),
				record(at(2, 7, 0), "4"),
			},
			wantCount: 0,
			wantSum:   "0.00",
		},
		{
			name:      "count is per amount not per record",
			records:   []core.AmountRecord{record(at(1, 8, 0), "1.10", "2.20", "3.30")},
			wantCount: 3,
			wantSum:   "6.60",
		},
		{
			name: "unparsable amounts skipped",
			records: []core.AmountRecord{
				record(at(1, 8, 0), "1.50", "oops", "1.234"),
				record(at(1, 9, 0), "2"),
			},
			wantCount: 2,
			wantSum:   "3.50",
		},
		{
			name: "unsorted log",
			records: []core.AmountRecord{
				record(at(1, 12, 0), "5"),
				record(at(1, 4, 0), "100"),
				record(at(1, 7, 0), "5"),
			},
			wantCount: 2,
			wantSum:   "10.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := NewStore()
			for _, r := range tt.records {
				s.Append(ctx, 1, r)
			}

			count, sum := s.Query(ctx, 1, window)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantSum, sum.StringFixed(2))
		})
	}
}

func TestStore_QueryIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Append(ctx, 1, record(at(1, 7, 0), "3.79"))
	s.Append(ctx, 1, record(at(1, 14, 0), "1.23"))

	window := core.TimeWindow{Start: at(1, 0, 0), End: at(1, 23, 59)}
	c1, s1 := s.Query(ctx, 1, window)
	c2, s2 := s.Query(ctx, 1, window)
	assert.Equal(t, c1, c2)
	assert.True(t, s1.Equal(s2))
	assert.Equal(t, "5.02", s1.StringFixed(2))
}

func TestStore_ConversationsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Append(ctx, 1, record(at(1, 7, 0), "10"))
	s.Append(ctx, 2, record(at(1, 7, 0), "20"))

	window := core.TimeWindow{Start: at(1, 0, 0), End: at(1, 23, 59)}
	_, sum1 := s.Query(ctx, 1, window)
	_, sum2 := s.Query(ctx, 2, window)
	assert.Equal(t, "10.00", sum1.StringFixed(2))
	assert.Equal(t, "20.00", sum2.StringFixed(2))
	assert.Equal(t, 2, s.Conversations())
}

func TestStore_QueryLargeAmounts(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Append(ctx, 1, record(at(1, 7, 0), "90000000000000000", "90000000000000000"))
	s.Append(ctx, 1, record(at(1, 8, 0), "99999999999999999999", "5"))

	count, sum := s.Query(ctx, 1, core.TimeWindow{Start: at(1, 0, 0), End: at(1, 23, 59)})
	assert.Equal(t, 4, count)
	assert.Equal(t, "100180000000000000004.00", sum.StringFixed(2))
	assert.True(t, sum.IsPositive())
}

func TestStore_RecordsAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	amounts := []string{"1"}
	s.Append(ctx, 1, record(at(1, 7, 0), amounts...))
	amounts[0] = "999"

	recs := s.Records(1)
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"1"}, recs[0].Amounts)

	recs[0].RawText = "changed"
	assert.Equal(t, "test", s.Records(1)[0].RawText)
}

func TestStore_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var g errgroup.Group
	for id := core.ConversationID(1); id <= 8; id++ {
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				s.Append(ctx, id, record(at(1, 7, 0), "1"))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	window := core.TimeWindow{Start: at(1, 0, 0), End: at(1, 23, 59)}
	for id := core.ConversationID(1); id <= 8; id++ {
		count, sum := s.Query(ctx, id, window)
		assert.Equal(t, 100, count)
		assert.Equal(t, "100.00", sum.StringFixed(2))
	}
}
