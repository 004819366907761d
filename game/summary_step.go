package game

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/kurs-wjo/wjo_api/model"
)

// SummaryStep closes a quiz round. It owns no quiz state of its own, it
// projects score, total and mistakes from the blackboard.
type SummaryStep struct {
	Title        string
	PassingScore int

	entered bool
}

func NewSummaryStep(title string, passingScore int) *SummaryStep {
	if title == "" {
		title = "Podsumowanie"
	}
	return &SummaryStep{Title: title, PassingScore: passingScore}
}

func (s *SummaryStep) Enter(ctx *Context) error {
	s.entered = true
	return nil
}

func (s *SummaryStep) UIModel(ctx *Context) (UIModel, error) {
	if !s.entered {
		return UIModel{}, errors.New("summary step used before enter")
	}

	score := ctx.Score()
	mistakes := ctx.Errors()
	return UIModel{
		Type: UITypeSummary,
		Summary: &SummaryPayload{
			Title:          s.Title,
			Score:          score,
			TotalQuestions: ctx.TotalQuestions(),
			MistakeCount:   len(mistakes),
			Passed:         s.PassingScore > 0 && score >= s.PassingScore,
			CanReview:      len(mistakes) > 0,
		},
	}, nil
}

func (s *SummaryStep) HandleAction(ctx *Context, action string, payload string) (StepResult, error) {
	if !s.entered {
		return Stay, errors.New("summary step used before enter")
	}

	switch action {
	case ActionFinish:
		return Next, nil
	case ActionReviewMistakes:
		return s.reviewMistakes(ctx)
	}
	return Stay, nil
}

// reviewMistakes branches into a fresh loop over the missed questions.
// Errors are cleared first so the branch cannot recurse forever.
func (s *SummaryStep) reviewMistakes(ctx *Context) (StepResult, error) {
	errorIDs := ctx.Errors()
	if len(errorIDs) == 0 {
		return Next, nil
	}

	questions, err := ctx.Store.GetQuestionsByIDs(errorIDs)
	if err != nil {
		return Stay, fmt.Errorf("fetch mistake questions: %w", err)
	}
	if len(questions) == 0 {
		log.WithField("ids", errorIDs).Warn("mistake questions no longer exist, finishing instead")
		return Next, nil
	}

	ordered := orderQuestionsByIDs(questions, errorIDs)
	ctx.SetErrors([]string{})

	return BranchTo(NewQuestionLoopStep("🛠️ Poprawa Błędów", ordered)), nil
}

// orderQuestionsByIDs restores the order mistakes were made in, since the
// store is free to return rows in any order.
func orderQuestionsByIDs(questions []model.Question, ids []string) []model.Question {
	byID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]model.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered
}
