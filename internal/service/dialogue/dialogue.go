package dialogue

import (
	"sync"
	"time"

	"github.com/sandevgo/tallybot/internal/core"
)

type Stage int

const (
	StageIdle Stage = iota
	StageAwaitStartDate
	StageAwaitStartTime
	StageAwaitEndDate
	StageAwaitEndTime
	StageAwaitCombinedRange
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageAwaitStartDate:
		return "awaiting_start_date"
	case StageAwaitStartTime:
		return "awaiting_start_time"
	case StageAwaitEndDate:
		return "awaiting_end_date"
	case StageAwaitEndTime:
		return "awaiting_end_time"
	case StageAwaitCombinedRange:
		return "awaiting_combined_range"
	default:
		return "unknown"
	}
}

// Mode selects the entry point of a dialogue.
type Mode int

const (
	ModeGuided Mode = iota
	ModeCombined
)

// State is the progress of one conversation's dialogue. Fields are nil until collected.
type State struct {
	Stage     Stage
	StartDate *Date
	StartTime *Clock
	EndDate   *Date
	EndTime   *Clock
}

// Outcome describes what one message did to the dialogue.
type Outcome struct {
	// Stage is the stage the conversation is in after the message.
	Stage Stage
	// Err is a validation error; the stage and collected fields are unchanged when set.
	Err error
	// Window is set once the range is complete.
	Window *core.TimeWindow
}

// Manager holds at most one in-progress dialogue per conversation.
// There is no timeout: an abandoned dialogue stays until completed, cancelled or restarted.
type Manager struct {
	mu     sync.Mutex
	states map[core.ConversationID]*State
	loc    *time.Location
	label  string
}

func NewManager(loc *time.Location, label string) *Manager {
	return &Manager{
		states: make(map[core.ConversationID]*State),
		loc:    loc,
		label:  label,
	}
}

// Begin starts a dialogue, replacing any dialogue already in progress.
func (m *Manager) Begin(id core.ConversationID, mode Mode) Stage {
	stage := StageAwaitStartDate
	if mode == ModeCombined {
		stage = StageAwaitCombinedRange
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[id] = &State{Stage: stage}
	return stage
}

func (m *Manager) Cancel(id core.ConversationID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.states[id]
	delete(m.states, id)
	return ok
}

// State returns a copy of the conversation's dialogue state.
func (m *Manager) State(id core.ConversationID) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.states[id]
	if !ok {
		return State{Stage: StageIdle}, false
	}
	return *st, true
}

func (m *Manager) Active(id core.ConversationID) bool {
	_, ok := m.State(id)
	return ok
}

// Handle feeds one message into the conversation's dialogue.
// It returns false when no dialogue is active and the message was not consumed.
func (m *Manager) Handle(id core.ConversationID, text string) (Outcome, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.states[id]
	if !ok {
		return Outcome{Stage: StageIdle}, false
	}

	out := m.advance(st, text)
	if out.Window != nil {
		delete(m.states, id)
	}
	return out, true
}

func (m *Manager) advance(st *State, text string) Outcome {
	switch st.Stage {
	case StageAwaitStartDate:
		d, err := ParseDate(text)
		if err != nil {
			return Outcome{Stage: st.Stage, Err: err}
		}
		st.StartDate = &d
		st.Stage = StageAwaitStartTime

	case StageAwaitStartTime:
		c, err := ParseClock(text)
		if err != nil {
			return Outcome{Stage: st.Stage, Err: err}
		}
		st.StartTime = &c
		st.Stage = StageAwaitEndDate

	case StageAwaitEndDate:
		d, err := ParseDate(text)
		if err != nil {
			return Outcome{Stage: st.Stage, Err: err}
		}
		st.EndDate = &d
		st.Stage = StageAwaitEndTime

	case StageAwaitEndTime:
		c, err := ParseClock(text)
		if err != nil {
			return Outcome{Stage: st.Stage, Err: err}
		}
		st.EndTime = &c
		w := core.TimeWindow{
			Start: Combine(*st.StartDate, *st.StartTime, m.loc),
			End:   Combine(*st.EndDate, *st.EndTime, m.loc),
			Label: m.label,
		}
		return Outcome{Stage: StageIdle, Window: &w}

	case StageAwaitCombinedRange:
		start, end, err := ParseRange(text, m.loc)
		if err != nil {
			return Outcome{Stage: st.Stage, Err: err}
		}
		w := core.TimeWindow{Start: start, End: end, Label: m.label}
		return Outcome{Stage: StageIdle, Window: &w}
	}

	return Outcome{Stage: st.Stage}
}
