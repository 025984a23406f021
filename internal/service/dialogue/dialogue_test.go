package dialogue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLabel = "custom"

func TestManager_IdleDoesNotConsume(t *testing.T) {
	m := NewManager(zone, testLabel)

	out, consumed := m.Handle(1, "2025-07-01")
	assert.False(t, consumed)
	assert.Equal(t, StageIdle, out.Stage)
	assert.False(t, m.Active(1))
}

func TestManager_GuidedFlow(t *testing.T) {
	m := NewManager(zone, testLabel)
	require.Equal(t, StageAwaitStartDate, m.Begin(1, ModeGuided))

	steps := []struct {
		input     string
		wantStage Stage
		wantErr   error
	}{
		{input: "bad-date", wantStage: StageAwaitStartDate, wantErr: ErrInvalidDate},
		{input: "2025-07-01", wantStage: StageAwaitStartTime},
		{input: "25:00", wantStage: StageAwaitStartTime, wantErr: ErrInvalidTime},
		{input: "06:00", wantStage: StageAwaitEndDate},
		{input: "tomorrow", wantStage: StageAwaitEndDate, wantErr: ErrInvalidDate},
		{input: "2025-07-31", wantStage: StageAwaitEndTime},
		{input: "2025-07-31", wantStage: StageAwaitEndTime, wantErr: ErrInvalidTime},
	}

	for _, s := range steps {
		out, consumed := m.Handle(1, s.input)
		require.True(t, consumed, s.input)
		assert.Equal(t, s.wantStage, out.Stage, s.input)
		if s.wantErr != nil {
			assert.ErrorIs(t, out.Err, s.wantErr, s.input)
		} else {
			assert.NoError(t, out.Err, s.input)
		}
		assert.Nil(t, out.Window)
	}

	st, ok := m.State(1)
	require.True(t, ok)
	assert.Equal(t, Date{2025, time.July, 1}, *st.StartDate)
	assert.Equal(t, Clock{6, 0}, *st.StartTime)
	assert.Equal(t, Date{2025, time.July, 31}, *st.EndDate)
	assert.Nil(t, st.EndTime)

	out, consumed := m.Handle(1, "23:59")
	require.True(t, consumed)
	require.NoError(t, out.Err)
	require.NotNil(t, out.Window)
	assert.Equal(t, StageIdle, out.Stage)
	assert.True(t, time.Date(2025, time.July, 1, 6, 0, 0, 0, zone).Equal(out.Window.Start))
	assert.True(t, time.Date(2025, time.July, 31, 23, 59, 0, 0, zone).Equal(out.Window.End))
	assert.Equal(t, testLabel, out.Window.Label)

	assert.False(t, m.Active(1), "state must be cleared after completion")
}

func TestManager_InvalidStartDateKeepsStage(t *testing.T) {
	m := NewManager(zone, testLabel)
	m.Begin(1, ModeGuided)

	out, _ := m.Handle(1, "bad-date")
	assert.ErrorIs(t, out.Err, ErrInvalidDate)

	st, ok := m.State(1)
	require.True(t, ok)
	assert.Equal(t, StageAwaitStartDate, st.Stage)
	assert.Nil(t, st.StartDate)

	out, _ = m.Handle(1, "2025-07-01")
	require.NoError(t, out.Err)
	st, _ = m.State(1)
	assert.Equal(t, StageAwaitStartTime, st.Stage)
	require.NotNil(t, st.StartDate)
	assert.Equal(t, "2025-07-01", st.StartDate.String())
}

func TestManager_CombinedFlow(t *testing.T) {
	m := NewManager(zone, testLabel)
	require.Equal(t, StageAwaitCombinedRange, m.Begin(1, ModeCombined))

	out, consumed := m.Handle(1, "2025-07-01 00:00 2025-07-31 23:59")
	require.True(t, consumed)
	assert.ErrorIs(t, out.Err, ErrMissingSeparator)
	assert.Equal(t, StageAwaitCombinedRange, out.Stage)
	assert.True(t, m.Active(1))

	out, _ = m.Handle(1, "2025-07-01 00:00 to 2025-07-31 23:59")
	require.NoError(t, out.Err)
	require.NotNil(t, out.Window)
	assert.True(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, zone).Equal(out.Window.Start))
	assert.True(t, time.Date(2025, time.July, 31, 23, 59, 0, 0, zone).Equal(out.Window.End))
	assert.False(t, m.Active(1))
}

func TestManager_BeginReplacesActiveDialogue(t *testing.T) {
	m := NewManager(zone, testLabel)
	m.Begin(1, ModeGuided)
	m.Handle(1, "2025-07-01")

	m.Begin(1, ModeCombined)
	st, ok := m.State(1)
	require.True(t, ok)
	assert.Equal(t, StageAwaitCombinedRange, st.Stage)
	assert.Nil(t, st.StartDate)
}

func TestManager_Cancel(t *testing.T) {
	m := NewManager(zone, testLabel)
	assert.False(t, m.Cancel(1))

	m.Begin(1, ModeGuided)
	assert.True(t, m.Cancel(1))
	assert.False(t, m.Active(1))
}

func TestManager_ConversationsAreIndependent(t *testing.T) {
	m := NewManager(zone, testLabel)
	m.Begin(1, ModeGuided)
	m.Begin(2, ModeCombined)

	out, _ := m.Handle(1, "2025-07-01")
	assert.Equal(t, StageAwaitStartTime, out.Stage)

	st, _ := m.State(2)
	assert.Equal(t, StageAwaitCombinedRange, st.Stage)
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "awaiting_start_date", StageAwaitStartDate.String())
	assert.Equal(t, "awaiting_combined_range", StageAwaitCombinedRange.String())
	assert.Equal(t, "idle", StageIdle.String())
}
