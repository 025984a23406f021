package core

import "time"

const (
	TallyName    = "TallyBot"
	TallyVersion = "0.1.0"
)

// ConversationID identifies one chat thread.
type ConversationID = int64

// Selector is the token carried by a menu option.
type Selector string

const (
	SelectorTodayMorning Selector = "today_morning"
	SelectorTodayEvening Selector = "today_evening"
	SelectorWeek         Selector = "week"
	SelectorMonth        Selector = "month"
	SelectorCustom       Selector = "custom"
	SelectorRange        Selector = "range"
)

// AmountRecord is one message that yielded at least one amount.
// Amounts stay as the captured decimal strings and are parsed when summed.
type AmountRecord struct {
	Timestamp time.Time
	Amounts   []string
	RawText   string
}

// TimeWindow bounds are inclusive on both ends.
type TimeWindow struct {
	Start time.Time
	End   time.Time
	Label string
}

func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

type MenuOption struct {
	Label string
	Token Selector
}

// Response is a transport-neutral reply.
type Response struct {
	Text string
	// Structured marks Text as Markdown that the transport renders.
	Structured bool
	// Menu is rendered as inline buttons.
	Menu []MenuOption
	// Suggestions are quick-reply rows.
	Suggestions [][]string
}
