package game

import (
	"encoding/json"
	"time"

	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurs-wjo/wjo_api/model"
)

type savedAttempt struct {
	QuestionID string
	IsCorrect  bool
}

// mockStore backs the engine tests with an in-memory question bank.
type mockStore struct {
	questions     []model.Question
	attempts      []savedAttempt
	answeredToday bool
	profile       model.UserProfile
}

func newMockStore(questions ...model.Question) *mockStore {
	return &mockStore{
		questions: questions,
		profile: model.UserProfile{
			UserID:            "user_1",
			StreakDays:        1,
			DailyGoal:         3,
			PreferredLanguage: "pl",
		},
	}
}

func (m *mockStore) GetAllQuestions() ([]model.Question, error) {
	return m.questions, nil
}

func (m *mockStore) GetQuestionsByIDs(ids []string) ([]model.Question, error) {
	var out []model.Question
	for _, q := range m.questions {
		for _, id := range ids {
			if q.ID == id {
				out = append(out, q)
			}
		}
	}
	return out, nil
}

func (m *mockStore) GetQuestionsByCategory(category, userID string, limit int) ([]model.Question, error) {
	var out []model.Question
	for _, q := range m.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockStore) GetRepetitionCandidates(userID string) ([]model.QuestionCandidate, error) {
	candidates := make([]model.QuestionCandidate, 0, len(m.questions))
	for _, q := range m.questions {
		candidates = append(candidates, model.QuestionCandidate{Question: q})
	}
	return candidates, nil
}

func (m *mockStore) GetCategoryStats(userID string) ([]model.CategoryStat, error) {
	return nil, nil
}

func (m *mockStore) GetMasteryPercentage(userID, category string) (float64, error) {
	return 0, nil
}

func (m *mockStore) GetOrCreateProfile(userID string) (*model.UserProfile, error) {
	p := m.profile
	return &p, nil
}

func (m *mockStore) SaveProfile(profile *model.UserProfile) error {
	m.profile = *profile
	return nil
}

func (m *mockStore) SaveAttempt(userID, questionID string, isCorrect bool) error {
	m.attempts = append(m.attempts, savedAttempt{QuestionID: questionID, IsCorrect: isCorrect})
	return nil
}

func (m *mockStore) WasQuestionAnsweredOnDate(userID, questionID string, day time.Time) (bool, error) {
	return m.answeredToday, nil
}

func (m *mockStore) ResetUserProgress(userID string) error {
	m.attempts = nil
	return nil
}

func (m *mockStore) Count() (int64, error) {
	return int64(len(m.questions)), nil
}

// mockSink counts accounting callbacks.
type mockSink struct {
	increments int
	flushes    int
	onboarded  bool
}

func (s *mockSink) IncrementDailyProgress() error {
	s.increments++
	return nil
}

func (s *mockSink) CompleteOnboarding() error {
	s.onboarded = true
	return nil
}

func (s *mockSink) FlushOnExit() error {
	s.flushes++
	return nil
}

func testQuestion(id, correct string) model.Question {
	return model.Question{
		ID:            id,
		Text:          "Pytanie " + id,
		Options:       json.RawMessage(`{"A":"tak","B":"nie"}`),
		CorrectOption: correct,
		Category:      "Prawo i Dozór Techniczny",
	}
}

func TestDirectorRunsQuizFlow(t *testing.T) {
	store := newMockStore(testQuestion("q1", "A"), testQuestion("q2", "A"))
	sink := &mockSink{}
	ctx := NewContext("user_1", store)
	ctx.Profile = sink
	ctx.SetTotalQuestions(2)

	d := NewDirector(ctx)
	questions, err := store.GetQuestionsByIDs([]string{"q1", "q2"})
	require.NoError(t, err)

	err = d.StartFlow("test_sprint", []Step{
		NewTextStep("Start", "", ""),
		NewQuestionLoopStep("Runda", questions),
		NewSummaryStep("Podsumowanie", 2),
	})
	require.NoError(t, err)

	ui, err := d.GetUIModel()
	require.NoError(t, err)
	assert.Equal(t, UITypeText, ui.Type)

	require.NoError(t, d.HandleAction(ActionNext, ""))
	ui, err = d.GetUIModel()
	require.NoError(t, err)
	require.Equal(t, UITypeQuestion, ui.Type)
	assert.Equal(t, "q1", ui.Question.QuestionID)
	assert.Equal(t, 1, ui.Question.CurrentIndex)
	assert.Equal(t, 2, ui.Question.TotalCount)

	// Correct answer flips into feedback without advancing.
	require.NoError(t, d.HandleAction(ActionSubmitAnswer, "A"))
	ui, err = d.GetUIModel()
	require.NoError(t, err)
	require.Equal(t, UITypeFeedback, ui.Type)
	assert.True(t, ui.Feedback.IsCorrect)
	assert.Equal(t, "A", ui.Feedback.CorrectOption)

	require.NoError(t, d.HandleAction(ActionNextQuestion, ""))

	// Wrong answer on the second question.
	require.NoError(t, d.HandleAction(ActionSubmitAnswer, "B"))
	ui, err = d.GetUIModel()
	require.NoError(t, err)
	require.Equal(t, UITypeFeedback, ui.Type)
	assert.False(t, ui.Feedback.IsCorrect)

	// Exhausting the list lands on the summary.
	require.NoError(t, d.HandleAction(ActionNextQuestion, ""))
	ui, err = d.GetUIModel()
	require.NoError(t, err)
	require.Equal(t, UITypeSummary, ui.Type)
	assert.Equal(t, 1, ui.Summary.Score)
	assert.Equal(t, 2, ui.Summary.TotalQuestions)
	assert.Equal(t, 1, ui.Summary.MistakeCount)
	assert.False(t, ui.Summary.Passed)
	assert.True(t, ui.Summary.CanReview)

	// Exactly one persisted attempt per answer.
	require.Len(t, store.attempts, 2)
	assert.Equal(t, savedAttempt{QuestionID: "q1", IsCorrect: true}, store.attempts[0])
	assert.Equal(t, savedAttempt{QuestionID: "q2", IsCorrect: false}, store.attempts[1])
	assert.Equal(t, 2, sink.increments)

	require.NoError(t, d.HandleAction(ActionFinish, ""))
	assert.True(t, d.IsComplete())
}

func TestDirectorReviewMistakesBranch(t *testing.T) {
	store := newMockStore(testQuestion("q1", "A"))
	ctx := NewContext("user_1", store)
	ctx.SetTotalQuestions(1)

	d := NewDirector(ctx)
	questions, _ := store.GetQuestionsByIDs([]string{"q1"})
	require.NoError(t, d.StartFlow("test_sprint", []Step{
		NewQuestionLoopStep("Runda", questions),
		NewSummaryStep("Podsumowanie", 1),
	}))

	require.NoError(t, d.HandleAction(ActionSubmitAnswer, "B"))
	require.NoError(t, d.HandleAction(ActionNextQuestion, ""))

	ui, err := d.GetUIModel()
	require.NoError(t, err)
	require.Equal(t, UITypeSummary, ui.Type)
	require.True(t, ui.Summary.CanReview)

	// The branch serves the missed question again.
	require.NoError(t, d.HandleAction(ActionReviewMistakes, ""))
	ui, err = d.GetUIModel()
	require.NoError(t, err)
	require.Equal(t, UITypeQuestion, ui.Type)
	assert.Equal(t, "q1", ui.Question.QuestionID)

	require.NoError(t, d.HandleAction(ActionSubmitAnswer, "A"))
	require.NoError(t, d.HandleAction(ActionNextQuestion, ""))

	// The interrupted summary reappears with a clean slate.
	ui, err = d.GetUIModel()
	require.NoError(t, err)
	require.Equal(t, UITypeSummary, ui.Type)
	assert.Equal(t, 0, ui.Summary.MistakeCount)
	assert.False(t, ui.Summary.CanReview)
	assert.True(t, ui.Summary.Passed, "the review answer still counts toward the score")
	assert.False(t, d.IsComplete())

	require.NoError(t, d.HandleAction(ActionFinish, ""))
	assert.True(t, d.IsComplete())

	// Review attempts persist like first attempts.
	require.Len(t, store.attempts, 2)
	assert.False(t, store.attempts[0].IsCorrect)
	assert.True(t, store.attempts[1].IsCorrect)
}

func TestBranchParksCurrentStepBehindBranch(t *testing.T) {
	store := newMockStore(testQuestion("q1", "A"))
	ctx := NewContext("user_1", store)
	ctx.SetErrors([]string{"q1"})
	ctx.SetTotalQuestions(1)

	d := NewDirector(ctx)
	require.NoError(t, d.StartFlow("test", []Step{
		NewSummaryStep("Podsumowanie", 1),
		NewTextStep("Koniec", "", ""),
	}))

	require.NoError(t, d.HandleAction(ActionReviewMistakes, ""))
	ui, err := d.GetUIModel()
	require.NoError(t, err)
	require.Equal(t, UITypeQuestion, ui.Type)

	require.NoError(t, d.HandleAction(ActionSubmitAnswer, "A"))
	require.NoError(t, d.HandleAction(ActionNextQuestion, ""))

	// Back on the summary, with the trailing script still intact behind it.
	ui, err = d.GetUIModel()
	require.NoError(t, err)
	require.Equal(t, UITypeSummary, ui.Type)

	require.NoError(t, d.HandleAction(ActionFinish, ""))
	ui, err = d.GetUIModel()
	require.NoError(t, err)
	require.Equal(t, UITypeText, ui.Type)
	assert.Equal(t, "Koniec", ui.Text.Title)
	assert.False(t, d.IsComplete())
}

func TestDirectorActionWithNoStep(t *testing.T) {
	store := newMockStore()
	d := NewDirector(NewContext("user_1", store))
	require.NoError(t, d.StartFlow("empty", nil))
	assert.True(t, d.IsComplete())

	// Reported no-op, never an error.
	require.NoError(t, d.HandleAction(ActionNext, ""))

	ui, err := d.GetUIModel()
	require.NoError(t, err)
	assert.Equal(t, UITypeEmpty, ui.Type)
	assert.NotEmpty(t, ui.Empty.Message)
}

func TestSubmitWhileInFeedbackIgnored(t *testing.T) {
	store := newMockStore(testQuestion("q1", "A"))
	ctx := NewContext("user_1", store)

	d := NewDirector(ctx)
	questions, _ := store.GetQuestionsByIDs([]string{"q1"})
	require.NoError(t, d.StartFlow("test", []Step{NewQuestionLoopStep("Runda", questions)}))

	require.NoError(t, d.HandleAction(ActionSubmitAnswer, "A"))
	require.NoError(t, d.HandleAction(ActionSubmitAnswer, "B"))

	require.Len(t, store.attempts, 1, "a second submit in feedback mode must not persist")
	assert.Equal(t, 1, ctx.Score())
}

func TestRepeatAnswerSameDaySkipsDailyProgress(t *testing.T) {
	store := newMockStore(testQuestion("q1", "A"))
	store.answeredToday = true
	sink := &mockSink{}
	ctx := NewContext("user_1", store)
	ctx.Profile = sink

	d := NewDirector(ctx)
	questions, _ := store.GetQuestionsByIDs([]string{"q1"})
	require.NoError(t, d.StartFlow("test", []Step{NewQuestionLoopStep("Runda", questions)}))

	require.NoError(t, d.HandleAction(ActionSubmitAnswer, "A"))

	require.Len(t, store.attempts, 1, "the attempt itself still persists")
	assert.Equal(t, 0, sink.increments, "daily goal counts first answers of the day only")
}

func TestQuestionStreakTracking(t *testing.T) {
	store := newMockStore(testQuestion("q1", "A"), testQuestion("q2", "A"), testQuestion("q3", "A"))
	ctx := NewContext("user_1", store)

	d := NewDirector(ctx)
	questions, _ := store.GetQuestionsByIDs([]string{"q1", "q2", "q3"})
	require.NoError(t, d.StartFlow("test", []Step{NewQuestionLoopStep("Runda", questions)}))

	require.NoError(t, d.HandleAction(ActionSubmitAnswer, "A"))
	require.NoError(t, d.HandleAction(ActionNextQuestion, ""))
	require.NoError(t, d.HandleAction(ActionSubmitAnswer, "A"))

	ui, err := d.GetUIModel()
	require.NoError(t, err)
	assert.Equal(t, 2, ui.Feedback.Question.CurrentStreak)

	require.NoError(t, d.HandleAction(ActionNextQuestion, ""))
	require.NoError(t, d.HandleAction(ActionSubmitAnswer, "B"))

	ui, err = d.GetUIModel()
	require.NoError(t, err)
	assert.Equal(t, 0, ui.Feedback.Question.CurrentStreak, "a miss resets the in-session streak")
	assert.Equal(t, []bool{true, true, false}, ui.Feedback.Question.SessionHistory)
}
