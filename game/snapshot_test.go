package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	store := newMockStore(testQuestion("q1", "A"), testQuestion("q2", "B"))
	ctx := NewContext("user_1", store)
	ctx.SetTotalQuestions(2)

	d := NewDirector(ctx)
	questions, _ := store.GetQuestionsByIDs([]string{"q1", "q2"})
	require.NoError(t, d.StartFlow("test", []Step{
		NewQuestionLoopStep("Runda", questions),
		NewSummaryStep("Podsumowanie", 2),
	}))

	// Mid-round: one correct answer, sitting in feedback.
	require.NoError(t, d.HandleAction(ActionSubmitAnswer, "A"))

	snap := d.Snapshot()
	assert.Equal(t, "user_1", snap.UserID)
	require.NotNil(t, snap.Current)
	assert.Equal(t, "question_loop", snap.Current.Type)
	assert.Equal(t, []string{"q1", "q2"}, snap.Current.QuestionIDs)
	require.Len(t, snap.Queue, 1)
	assert.Equal(t, "summary", snap.Queue[0].Type)

	// Through the wire, as the session store does it.
	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	var decoded DirectorSnapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))

	restored, err := RestoreDirector(decoded, store, nil)
	require.NoError(t, err)

	// The restored director resumes exactly where the original stopped.
	ui, err := restored.GetUIModel()
	require.NoError(t, err)
	require.Equal(t, UITypeFeedback, ui.Type)
	assert.True(t, ui.Feedback.IsCorrect)
	assert.Equal(t, "q1", ui.Feedback.Question.QuestionID)
	assert.Equal(t, []bool{true}, ui.Feedback.Question.SessionHistory)

	require.NoError(t, restored.HandleAction(ActionNextQuestion, ""))
	require.NoError(t, restored.HandleAction(ActionSubmitAnswer, "B"))
	require.NoError(t, restored.HandleAction(ActionNextQuestion, ""))

	ui, err = restored.GetUIModel()
	require.NoError(t, err)
	require.Equal(t, UITypeSummary, ui.Type)
	assert.Equal(t, 2, ui.Summary.Score, "score survives the JSON round trip")
	assert.Equal(t, 2, ui.Summary.TotalQuestions)
	assert.True(t, ui.Summary.Passed)
}

func TestSnapshotTextAndDashboardSteps(t *testing.T) {
	store := newMockStore()
	ctx := NewContext("user_1", store)

	d := NewDirector(ctx)
	require.NoError(t, d.StartFlow("test", []Step{
		NewTextStep("Witaj", "Treść", "Start"),
		NewDashboardStep(15),
	}))

	snap := d.Snapshot()
	require.NotNil(t, snap.Current)
	assert.Equal(t, "text", snap.Current.Type)
	assert.Equal(t, "Witaj", snap.Current.Title)
	require.Len(t, snap.Queue, 1)
	assert.Equal(t, "dashboard", snap.Queue[0].Type)
	assert.Equal(t, 15, snap.Queue[0].SprintQuestions)

	restored, err := RestoreDirector(snap, store, nil)
	require.NoError(t, err)

	ui, err := restored.GetUIModel()
	require.NoError(t, err)
	require.Equal(t, UITypeText, ui.Type)
	assert.Equal(t, "Witaj", ui.Text.Title)
	assert.Equal(t, "Start", ui.Text.ButtonLabel)
}

func TestRestoreDirectorUnknownStepType(t *testing.T) {
	snap := DirectorSnapshot{
		UserID:  "user_1",
		Current: &StepSnapshot{Type: "hologram"},
	}

	_, err := RestoreDirector(snap, newMockStore(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hologram")
}

func TestRestoreCompleteDirector(t *testing.T) {
	snap := DirectorSnapshot{UserID: "user_1", Complete: true}

	restored, err := RestoreDirector(snap, newMockStore(), nil)
	require.NoError(t, err)
	assert.True(t, restored.IsComplete())

	ui, err := restored.GetUIModel()
	require.NoError(t, err)
	assert.Equal(t, UITypeEmpty, ui.Type)
}
