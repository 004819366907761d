package game

import (
	log "github.com/sirupsen/logrus"
)

type ScreenState string

const (
	StateIdle           ScreenState = "IDLE"
	StateLoading        ScreenState = "LOADING"
	StateQuestionActive ScreenState = "QUESTION_ACTIVE"
	StateFeedbackView   ScreenState = "FEEDBACK_VIEW"
	StateSummary        ScreenState = "SUMMARY"
	StateEmpty          ScreenState = "EMPTY_STATE"
)

type ScreenEvent string

const (
	EventStart        ScreenEvent = "START"
	EventLoadSuccess  ScreenEvent = "LOAD_SUCCESS"
	EventLoadEmpty    ScreenEvent = "LOAD_EMPTY"
	EventSubmitAnswer ScreenEvent = "SUBMIT_ANSWER"
	EventNextQuestion ScreenEvent = "NEXT_QUESTION"
	EventFinishQuiz   ScreenEvent = "FINISH_QUIZ"
	EventReset        ScreenEvent = "RESET"
)

type transitionKey struct {
	from  ScreenState
	event ScreenEvent
}

// transitions is the full legal table. Reset is handled separately since it
// is valid from every state. Summary and EmptyState only exit via Reset.
var transitions = map[transitionKey]ScreenState{
	{StateIdle, EventStart}:                StateLoading,
	{StateLoading, EventLoadSuccess}:       StateQuestionActive,
	{StateLoading, EventLoadEmpty}:         StateEmpty,
	{StateQuestionActive, EventSubmitAnswer}: StateFeedbackView,
	{StateFeedbackView, EventNextQuestion}: StateQuestionActive,
	{StateFeedbackView, EventFinishQuiz}:   StateSummary,
}

// StateMachine guards the screen lifecycle of one session. It records state
// only; it never fetches data or touches the blackboard.
type StateMachine struct {
	state ScreenState
}

func NewStateMachine() *StateMachine {
	return &StateMachine{state: StateIdle}
}

// RestoreStateMachine rebuilds a machine at a snapshotted state. Unknown
// states fall back to Idle.
func RestoreStateMachine(state ScreenState) *StateMachine {
	switch state {
	case StateIdle, StateLoading, StateQuestionActive, StateFeedbackView, StateSummary, StateEmpty:
		return &StateMachine{state: state}
	default:
		log.WithField("state", state).Error("unknown screen state in snapshot, restoring as idle")
		return &StateMachine{state: StateIdle}
	}
}

func (m *StateMachine) State() ScreenState {
	return m.state
}

// Apply attempts a transition. Invalid pairs are reported and leave the
// state unchanged; the caller never gets an error to propagate.
func (m *StateMachine) Apply(event ScreenEvent) bool {
	if event == EventReset {
		m.state = StateIdle
		return true
	}

	next, ok := transitions[transitionKey{from: m.state, event: event}]
	if !ok {
		log.WithFields(log.Fields{
			"state": m.state,
			"event": event,
		}).Error("invalid screen transition rejected")
		return false
	}

	m.state = next
	return true
}
