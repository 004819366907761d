package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailySprintFlow(t *testing.T) {
	store := newMockStore(
		testQuestion("q1", "A"),
		testQuestion("q2", "A"),
		testQuestion("q3", "A"),
	)
	ctx := NewContext("user_1", store)

	cfg := DefaultConfig()
	cfg.SprintQuestions = 2

	result, err := BuildDailySprintFlow(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "daily_sprint", result.Name)
	assert.False(t, result.Empty)
	require.Len(t, result.Steps, 2)
	assert.Equal(t, 2, ctx.TotalQuestions())

	loop, ok := result.Steps[0].(*QuestionLoopStep)
	require.True(t, ok)
	assert.Equal(t, "🚀 Codzienny Sprint", loop.FlowTitle)
	assert.Len(t, loop.Questions, 2)
}

func TestBuildDailySprintBonusMode(t *testing.T) {
	store := newMockStore(
		testQuestion("q1", "A"),
		testQuestion("q2", "A"),
		testQuestion("q3", "A"),
	)
	store.profile.DailyGoal = 3
	store.profile.DailyProgress = 3
	ctx := NewContext("user_1", store)

	cfg := DefaultConfig()
	cfg.BonusSprintQuestions = 2

	result, err := BuildDailySprintFlow(ctx, cfg)
	require.NoError(t, err)

	loop, ok := result.Steps[0].(*QuestionLoopStep)
	require.True(t, ok)
	assert.Equal(t, "🔥 Runda Bonusowa", loop.FlowTitle)
	assert.Len(t, loop.Questions, 2, "bonus mode serves the short round")
}

func TestBuildDailySprintEmptyBank(t *testing.T) {
	store := newMockStore()
	ctx := NewContext("user_1", store)

	result, err := BuildDailySprintFlow(ctx, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, result.Empty)
	require.Len(t, result.Steps, 1)
	_, ok := result.Steps[0].(*TextStep)
	assert.True(t, ok, "empty result shows a congratulation card, not a quiz")
}

func TestBuildCategorySprintFlow(t *testing.T) {
	store := newMockStore(testQuestion("q1", "A"), testQuestion("q2", "A"))
	ctx := NewContext("user_1", store)

	result, err := BuildCategorySprintFlow(ctx, DefaultConfig(), "Prawo i Dozór Techniczny")
	require.NoError(t, err)
	assert.False(t, result.Empty)

	loop, ok := result.Steps[0].(*QuestionLoopStep)
	require.True(t, ok)
	assert.Equal(t, "📚 Prawo i Dozór Techniczny", loop.FlowTitle)
}

func TestBuildCategorySprintUnknownCategory(t *testing.T) {
	store := newMockStore(testQuestion("q1", "A"))
	ctx := NewContext("user_1", store)

	result, err := BuildCategorySprintFlow(ctx, DefaultConfig(), "Nie Ma Takiej")
	require.NoError(t, err)
	assert.True(t, result.Empty)
}

func TestBuildOnboardingFlowMarksCompletion(t *testing.T) {
	store := newMockStore()
	sink := &mockSink{}
	ctx := NewContext("user_1", store)
	ctx.Profile = sink

	result, err := BuildOnboardingFlow(ctx, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, result.Steps, 3)
	assert.True(t, sink.onboarded, "onboarding completes up front, not on flow finish")
	assert.Equal(t, 1, ctx.TotalQuestions())
}

func TestBuildOnboardingFlowWithoutSink(t *testing.T) {
	store := newMockStore()
	ctx := NewContext("user_1", store)

	_, err := BuildOnboardingFlow(ctx, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, store.profile.HasCompletedOnboarding, "falls back to a direct profile write")
}

func TestBuildDemoFlow(t *testing.T) {
	store := newMockStore(testQuestion("d1", "A"), testQuestion("d2", "B"))
	ctx := NewContext("user_1", store)

	cfg := DefaultConfig()
	cfg.DemoQuestionIDs = []string{"d1", "d2"}

	result, err := BuildDemoFlow(ctx, cfg)
	require.NoError(t, err)
	assert.False(t, result.Empty)
	require.Len(t, result.Steps, 3)

	loop, ok := result.Steps[1].(*QuestionLoopStep)
	require.True(t, ok)
	assert.Equal(t, "⭐ Demo", loop.FlowTitle)
}

func TestBuildDemoFlowMissingConfig(t *testing.T) {
	store := newMockStore()
	ctx := NewContext("user_1", store)

	result, err := BuildDemoFlow(ctx, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, result.Empty)
}
