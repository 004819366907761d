package game

import (
	"fmt"
)

// Step snapshot tags. The set is closed; RestoreDirector rejects anything
// else so a stale snapshot cannot resurrect as a half-built step.
const (
	snapText         = "text"
	snapQuestionLoop = "question_loop"
	snapSummary      = "summary"
	snapDashboard    = "dashboard"
)

// StepSnapshot is the serializable record of one step. Questions are stored
// by id only and refetched on restore; the snapshot never carries a store
// handle or any other live resource.
type StepSnapshot struct {
	Type string `json:"type"`

	// text
	Title       string `json:"title,omitempty"`
	Body        string `json:"body,omitempty"`
	ButtonLabel string `json:"button_label,omitempty"`

	// question loop
	FlowTitle     string        `json:"flow_title,omitempty"`
	QuestionIDs   []string      `json:"question_ids,omitempty"`
	Index         int           `json:"index,omitempty"`
	FeedbackMode  bool          `json:"feedback_mode,omitempty"`
	LastResult    *AnswerResult `json:"last_result,omitempty"`
	History       []bool        `json:"history,omitempty"`
	CurrentStreak int           `json:"current_streak,omitempty"`
	Language      string        `json:"language,omitempty"`

	// summary
	PassingScore int `json:"passing_score,omitempty"`

	// dashboard
	SprintQuestions int `json:"sprint_questions,omitempty"`
}

// DirectorSnapshot captures one session's engine state between requests:
// the blackboard data, the current step and the pending queue.
type DirectorSnapshot struct {
	UserID   string                 `json:"user_id"`
	Data     map[string]interface{} `json:"data"`
	Current  *StepSnapshot          `json:"current,omitempty"`
	Queue    []StepSnapshot         `json:"queue"`
	Complete bool                   `json:"complete"`
}

// Snapshot serializes the director and its blackboard.
func (d *Director) Snapshot() DirectorSnapshot {
	snap := DirectorSnapshot{
		UserID:   d.ctx.UserID,
		Data:     d.ctx.Data,
		Complete: d.complete,
		Queue:    make([]StepSnapshot, 0, len(d.queue)),
	}
	if d.current != nil {
		s := snapshotStep(d.current)
		snap.Current = &s
	}
	for _, step := range d.queue {
		snap.Queue = append(snap.Queue, snapshotStep(step))
	}
	return snap
}

func snapshotStep(step Step) StepSnapshot {
	switch s := step.(type) {
	case *TextStep:
		return StepSnapshot{
			Type:        snapText,
			Title:       s.Title,
			Body:        s.Body,
			ButtonLabel: s.ButtonLabel,
		}
	case *QuestionLoopStep:
		ids := make([]string, 0, len(s.Questions))
		for _, q := range s.Questions {
			ids = append(ids, q.ID)
		}
		return StepSnapshot{
			Type:          snapQuestionLoop,
			FlowTitle:     s.FlowTitle,
			QuestionIDs:   ids,
			Index:         s.Index,
			FeedbackMode:  s.FeedbackMode,
			LastResult:    s.LastResult,
			History:       s.History,
			CurrentStreak: s.CurrentStreak,
			Language:      s.language,
		}
	case *SummaryStep:
		return StepSnapshot{
			Type:         snapSummary,
			Title:        s.Title,
			PassingScore: s.PassingScore,
		}
	case *DashboardStep:
		return StepSnapshot{
			Type:            snapDashboard,
			SprintQuestions: s.SprintQuestions,
		}
	default:
		// All step variants live in this package; hitting this means a new
		// variant was added without a snapshot case.
		panic(fmt.Sprintf("unsnapshotable step type %T", step))
	}
}

// RestoreDirector rebuilds a director from a snapshot, re-injecting the
// store into a fresh context. The current step is restored as already
// entered; queued steps will have Enter called when they become current.
func RestoreDirector(snap DirectorSnapshot, store Store, profile ProfileSink) (*Director, error) {
	ctx := NewContext(snap.UserID, store)
	ctx.Profile = profile
	if snap.Data != nil {
		ctx.Data = snap.Data
	}

	d := &Director{ctx: ctx, complete: snap.Complete}

	if snap.Current != nil {
		step, err := restoreStep(*snap.Current, store, true)
		if err != nil {
			return nil, err
		}
		d.current = step
	}
	for _, s := range snap.Queue {
		step, err := restoreStep(s, store, false)
		if err != nil {
			return nil, err
		}
		d.queue = append(d.queue, step)
	}
	return d, nil
}

func restoreStep(snap StepSnapshot, store Store, entered bool) (Step, error) {
	switch snap.Type {
	case snapText:
		step := NewTextStep(snap.Title, snap.Body, snap.ButtonLabel)
		step.entered = entered
		return step, nil
	case snapQuestionLoop:
		questions, err := store.GetQuestionsByIDs(snap.QuestionIDs)
		if err != nil {
			return nil, fmt.Errorf("refetch snapshot questions: %w", err)
		}
		step := NewQuestionLoopStep(snap.FlowTitle, orderQuestionsByIDs(questions, snap.QuestionIDs))
		step.Index = snap.Index
		step.FeedbackMode = snap.FeedbackMode
		step.LastResult = snap.LastResult
		step.History = snap.History
		step.CurrentStreak = snap.CurrentStreak
		if snap.Language != "" {
			step.language = snap.Language
		}
		step.entered = entered
		return step, nil
	case snapSummary:
		step := NewSummaryStep(snap.Title, snap.PassingScore)
		step.entered = entered
		return step, nil
	case snapDashboard:
		step := NewDashboardStep(snap.SprintQuestions)
		step.entered = entered
		return step, nil
	default:
		return nil, fmt.Errorf("unknown step type %q in snapshot", snap.Type)
	}
}
