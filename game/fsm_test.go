package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateMachineHappyPath(t *testing.T) {
	m := NewStateMachine()
	assert.Equal(t, StateIdle, m.State())

	assert.True(t, m.Apply(EventStart))
	assert.Equal(t, StateLoading, m.State())

	assert.True(t, m.Apply(EventLoadSuccess))
	assert.Equal(t, StateQuestionActive, m.State())

	assert.True(t, m.Apply(EventSubmitAnswer))
	assert.Equal(t, StateFeedbackView, m.State())

	assert.True(t, m.Apply(EventNextQuestion))
	assert.Equal(t, StateQuestionActive, m.State())

	assert.True(t, m.Apply(EventSubmitAnswer))
	assert.True(t, m.Apply(EventFinishQuiz))
	assert.Equal(t, StateSummary, m.State())
}

func TestStateMachineEmptyPool(t *testing.T) {
	m := NewStateMachine()
	assert.True(t, m.Apply(EventStart))
	assert.True(t, m.Apply(EventLoadEmpty))
	assert.Equal(t, StateEmpty, m.State())
}

func TestStateMachineInvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		state ScreenState
		event ScreenEvent
	}{
		{"submit from idle", StateIdle, EventSubmitAnswer},
		{"start while loading", StateLoading, EventStart},
		{"finish without feedback", StateQuestionActive, EventFinishQuiz},
		{"next question while active", StateQuestionActive, EventNextQuestion},
		{"submit twice", StateFeedbackView, EventSubmitAnswer},
		{"summary only exits via reset", StateSummary, EventStart},
		{"empty only exits via reset", StateEmpty, EventLoadSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := RestoreStateMachine(tt.state)
			assert.False(t, m.Apply(tt.event))
			assert.Equal(t, tt.state, m.State(), "rejected event must not move the state")
		})
	}
}

func TestStateMachineResetFromAnyState(t *testing.T) {
	states := []ScreenState{
		StateIdle, StateLoading, StateQuestionActive,
		StateFeedbackView, StateSummary, StateEmpty,
	}
	for _, state := range states {
		m := RestoreStateMachine(state)
		assert.True(t, m.Apply(EventReset))
		assert.Equal(t, StateIdle, m.State())
	}
}

func TestRestoreStateMachineUnknownState(t *testing.T) {
	m := RestoreStateMachine(ScreenState("BOGUS"))
	assert.Equal(t, StateIdle, m.State())
}
