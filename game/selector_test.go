package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kurs-wjo/wjo_api/model"
)

func makeCandidates(newCount, learningCount, reviewCount int) []model.QuestionCandidate {
	var candidates []model.QuestionCandidate
	for i := 0; i < newCount; i++ {
		candidates = append(candidates, model.QuestionCandidate{
			Question: model.Question{ID: fmt.Sprintf("new_%d", i)},
			Seen:     false,
		})
	}
	for i := 0; i < learningCount; i++ {
		candidates = append(candidates, model.QuestionCandidate{
			Question: model.Question{ID: fmt.Sprintf("learning_%d", i)},
			Seen:     true,
			Streak:   1,
		})
	}
	for i := 0; i < reviewCount; i++ {
		candidates = append(candidates, model.QuestionCandidate{
			Question: model.Question{ID: fmt.Sprintf("review_%d", i)},
			Seen:     true,
			Streak:   5,
		})
	}
	return candidates
}

func countByPrefix(questions []model.Question) map[string]int {
	counts := map[string]int{}
	for _, q := range questions {
		switch {
		case len(q.ID) > 4 && q.ID[:4] == "new_":
			counts["new"]++
		case len(q.ID) > 9 && q.ID[:9] == "learning_":
			counts["learning"]++
		default:
			counts["review"]++
		}
	}
	return counts
}

func TestSelectRatioSplit(t *testing.T) {
	s := NewSpacedRepetitionSelector(3, 0.6)

	selected := s.Select(makeCandidates(20, 20, 20), 10)
	assert.Len(t, selected, 10)

	counts := countByPrefix(selected)
	assert.Equal(t, 6, counts["new"], "60%% of the round should be unseen material")
	assert.Equal(t, 4, counts["learning"]+counts["review"], "the rest comes from seen material")
}

func TestSelectLearningBeatsReview(t *testing.T) {
	s := NewSpacedRepetitionSelector(3, 0.6)

	// 4 review slots, 4 learning candidates: review questions never make it.
	selected := s.Select(makeCandidates(20, 4, 20), 10)
	counts := countByPrefix(selected)
	assert.Equal(t, 4, counts["learning"])
	assert.Equal(t, 0, counts["review"])
}

func TestSelectBackfillFromNew(t *testing.T) {
	s := NewSpacedRepetitionSelector(3, 0.6)

	// No seen material at all; new questions fill every slot.
	selected := s.Select(makeCandidates(20, 0, 0), 10)
	assert.Len(t, selected, 10)
	assert.Equal(t, 10, countByPrefix(selected)["new"])
}

func TestSelectBackfillFromReview(t *testing.T) {
	s := NewSpacedRepetitionSelector(3, 0.6)

	// Only 2 unseen questions; seen material backfills the new slots.
	selected := s.Select(makeCandidates(2, 10, 10), 10)
	assert.Len(t, selected, 10)
	assert.Equal(t, 2, countByPrefix(selected)["new"])
}

func TestSelectShortPool(t *testing.T) {
	s := NewSpacedRepetitionSelector(3, 0.6)

	selected := s.Select(makeCandidates(2, 1, 0), 10)
	assert.Len(t, selected, 3, "too few candidates just shortens the round")
}

func TestSelectDegenerateInputs(t *testing.T) {
	s := NewSpacedRepetitionSelector(3, 0.6)

	assert.Empty(t, s.Select(nil, 10))
	assert.Empty(t, s.Select(makeCandidates(5, 0, 0), 0))
}

func TestSelectNoDuplicates(t *testing.T) {
	s := NewSpacedRepetitionSelector(3, 0.6)

	selected := s.Select(makeCandidates(8, 4, 4), 12)
	seen := map[string]bool{}
	for _, q := range selected {
		assert.False(t, seen[q.ID], "question %s selected twice", q.ID)
		seen[q.ID] = true
	}
}

func TestNewSelectorClampsBadTunables(t *testing.T) {
	s := NewSpacedRepetitionSelector(0, 0)
	assert.Equal(t, DefaultConfig().MasteryThreshold, s.MasteryThreshold)
	assert.Equal(t, DefaultConfig().NewRatio, s.NewRatio)

	s = NewSpacedRepetitionSelector(3, 1.5)
	assert.Equal(t, DefaultConfig().NewRatio, s.NewRatio)
}

func TestPrioritizeWeakQuestions(t *testing.T) {
	weighted := []WeightedQuestion{
		{Question: model.Question{ID: "strong"}, Streak: 5},
		{Question: model.Question{ID: "weak"}, Streak: 0},
		{Question: model.Question{ID: "medium"}, Streak: 2},
	}

	questions := PrioritizeWeakQuestions(weighted, 2)
	assert.Len(t, questions, 2)
	assert.Equal(t, "weak", questions[0].ID)
	assert.Equal(t, "medium", questions[1].ID)
}

func TestPrioritizeWeakQuestionsLimitPastEnd(t *testing.T) {
	weighted := []WeightedQuestion{
		{Question: model.Question{ID: "a"}, Streak: 1},
	}
	assert.Len(t, PrioritizeWeakQuestions(weighted, 10), 1)
	assert.Empty(t, PrioritizeWeakQuestions(nil, 10))
}
