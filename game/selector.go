package game

import (
	"math/rand"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/kurs-wjo/wjo_api/model"
)

// SpacedRepetitionSelector builds the smart mix of a sprint: a new/review
// split by ratio with backfill from whichever side still has material.
type SpacedRepetitionSelector struct {
	MasteryThreshold int
	NewRatio         float64
}

func NewSpacedRepetitionSelector(masteryThreshold int, newRatio float64) *SpacedRepetitionSelector {
	if masteryThreshold <= 0 {
		masteryThreshold = DefaultConfig().MasteryThreshold
	}
	if newRatio <= 0 || newRatio > 1 {
		newRatio = DefaultConfig().NewRatio
	}
	return &SpacedRepetitionSelector{MasteryThreshold: masteryThreshold, NewRatio: newRatio}
}

// Select never errors: too few candidates just shortens the result.
func (s *SpacedRepetitionSelector) Select(candidates []model.QuestionCandidate, limit int) []model.Question {
	if limit <= 0 || len(candidates) == 0 {
		return []model.Question{}
	}

	var newPool, learningPool, reviewPool []model.QuestionCandidate
	for _, c := range candidates {
		switch {
		case !c.Seen:
			newPool = append(newPool, c)
		case c.Streak < s.MasteryThreshold:
			learningPool = append(learningPool, c)
		default:
			reviewPool = append(reviewPool, c)
		}
	}

	log.WithFields(log.Fields{
		"new":      len(newPool),
		"learning": len(learningPool),
		"review":   len(reviewPool),
		"limit":    limit,
	}).Info("spaced repetition pools")

	targetNew := int(float64(limit) * s.NewRatio)
	targetReview := limit - targetNew

	shuffleCandidates(newPool)
	shuffleCandidates(learningPool)
	shuffleCandidates(reviewPool)

	// Learning before review so weaker material wins the review slots.
	mixedReview := append(append([]model.QuestionCandidate{}, learningPool...), reviewPool...)

	selected := make([]model.QuestionCandidate, 0, limit)
	selected = append(selected, takeCandidates(mixedReview, targetReview)...)
	selected = append(selected, takeCandidates(newPool, targetNew)...)

	if len(selected) < limit {
		leftoverReview := dropCandidates(mixedReview, targetReview)
		selected = append(selected, takeCandidates(leftoverReview, limit-len(selected))...)
	}
	if len(selected) < limit {
		leftoverNew := dropCandidates(newPool, targetNew)
		selected = append(selected, takeCandidates(leftoverNew, limit-len(selected))...)
	}

	shuffleCandidates(selected)

	questions := make([]model.Question, 0, len(selected))
	for _, c := range selected {
		questions = append(questions, c.Question)
	}
	return questions
}

func shuffleCandidates(pool []model.QuestionCandidate) {
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}

func takeCandidates(pool []model.QuestionCandidate, n int) []model.QuestionCandidate {
	if n <= 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

func dropCandidates(pool []model.QuestionCandidate, n int) []model.QuestionCandidate {
	if n <= 0 {
		return pool
	}
	if n >= len(pool) {
		return nil
	}
	return pool[n:]
}

// WeightedQuestion pairs a question with its current streak for category
// practice selection.
type WeightedQuestion struct {
	Question model.Question
	Streak   int
}

// PrioritizeWeakQuestions sorts weakest first with uniform random
// tiebreak, then truncates to limit.
func PrioritizeWeakQuestions(weighted []WeightedQuestion, limit int) []model.Question {
	if len(weighted) == 0 || limit <= 0 {
		return []model.Question{}
	}

	type ranked struct {
		WeightedQuestion
		tiebreak float64
	}
	candidates := make([]ranked, len(weighted))
	for i, w := range weighted {
		candidates[i] = ranked{WeightedQuestion: w, tiebreak: rand.Float64()}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Streak != candidates[j].Streak {
			return candidates[i].Streak < candidates[j].Streak
		}
		return candidates[i].tiebreak < candidates[j].tiebreak
	})

	if limit > len(candidates) {
		limit = len(candidates)
	}
	questions := make([]model.Question, 0, limit)
	for _, c := range candidates[:limit] {
		questions = append(questions, c.Question)
	}
	return questions
}
