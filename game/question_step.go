package game

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kurs-wjo/wjo_api/model"
	"github.com/kurs-wjo/wjo_api/shared"
)

// AnswerResult holds the outcome of the last submitted answer while the
// step sits in feedback mode.
type AnswerResult struct {
	IsCorrect      bool   `json:"is_correct"`
	SelectedOption string `json:"selected_option"`
	CorrectOption  string `json:"correct_option"`
}

// QuestionLoopStep walks an ordered question list with a cursor. After an
// answer it serves a FEEDBACK model from the same step until NEXT_QUESTION
// moves the cursor; exhausting the list advances the flow.
type QuestionLoopStep struct {
	FlowTitle string
	Questions []model.Question

	Index         int
	FeedbackMode  bool
	LastResult    *AnswerResult
	History       []bool
	CurrentStreak int

	language string
	entered  bool
}

func NewQuestionLoopStep(flowTitle string, questions []model.Question) *QuestionLoopStep {
	return &QuestionLoopStep{
		FlowTitle: flowTitle,
		Questions: questions,
		language:  shared.LanguagePolish,
	}
}

func (s *QuestionLoopStep) Enter(ctx *Context) error {
	s.entered = true
	ctx.EnsureCounters()

	profile, err := ctx.Store.GetOrCreateProfile(ctx.UserID)
	if err != nil {
		log.WithError(err).WithField("user_id", ctx.UserID).Warn("failed to fetch profile language, defaulting to pl")
		s.language = shared.LanguagePolish
		return nil
	}
	s.language = shared.NormalizeLanguage(profile.PreferredLanguage)
	return nil
}

func (s *QuestionLoopStep) categoryMastery(ctx *Context, category string) float64 {
	mastery, err := ctx.Store.GetMasteryPercentage(ctx.UserID, category)
	if err != nil {
		log.WithError(err).WithField("category", category).Warn("failed to fetch category mastery")
		return 0.0
	}
	return mastery
}

func (s *QuestionLoopStep) UIModel(ctx *Context) (UIModel, error) {
	if !s.entered {
		return UIModel{}, errors.New("question loop step used before enter")
	}
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return UIModel{}, fmt.Errorf("question cursor %d out of range for %d questions", s.Index, len(s.Questions))
	}

	q := s.Questions[s.Index]
	base := QuestionPayload{
		FlowTitle:         s.FlowTitle,
		QuestionID:        q.ID,
		Text:              q.Text,
		Options:           q.Options,
		Hint:              q.Hint,
		ImageURL:          q.ImageURL,
		CurrentIndex:      s.Index + 1,
		TotalCount:        len(s.Questions),
		CategoryMastery:   s.categoryMastery(ctx, q.Category),
		SessionHistory:    append([]bool{}, s.History...),
		CurrentStreak:     s.CurrentStreak,
		PreferredLanguage: s.language,
	}

	if s.FeedbackMode && s.LastResult != nil {
		return UIModel{
			Type: UITypeFeedback,
			Feedback: &FeedbackPayload{
				Question:       base,
				IsCorrect:      s.LastResult.IsCorrect,
				SelectedOption: s.LastResult.SelectedOption,
				CorrectOption:  s.LastResult.CorrectOption,
				Explanation:    q.Explanation,
			},
		}, nil
	}

	return UIModel{Type: UITypeQuestion, Question: &base}, nil
}

func (s *QuestionLoopStep) HandleAction(ctx *Context, action string, payload string) (StepResult, error) {
	if !s.entered {
		return Stay, errors.New("question loop step used before enter")
	}

	switch action {
	case ActionSubmitAnswer:
		return s.submitAnswer(ctx, payload)
	case ActionNextQuestion:
		s.Index++
		s.FeedbackMode = false
		s.LastResult = nil
		if s.Index >= len(s.Questions) {
			return Next, nil
		}
		return Stay, nil
	}
	return Stay, nil
}

func (s *QuestionLoopStep) submitAnswer(ctx *Context, selected string) (StepResult, error) {
	if s.FeedbackMode {
		log.WithField("user_id", ctx.UserID).Warn("answer submitted while in feedback mode, ignoring")
		return Stay, nil
	}
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return Stay, fmt.Errorf("question cursor %d out of range for %d questions", s.Index, len(s.Questions))
	}

	q := s.Questions[s.Index]
	isCorrect := selected == q.CorrectOption

	// Checked before the upsert stamps today's timestamp.
	answeredToday, err := ctx.Store.WasQuestionAnsweredOnDate(ctx.UserID, q.ID, time.Now())
	if err != nil {
		log.WithError(err).WithField("question_id", q.ID).Warn("answered-today check failed, counting as first attempt")
		answeredToday = false
	}

	if err := ctx.Store.SaveAttempt(ctx.UserID, q.ID, isCorrect); err != nil {
		return Stay, fmt.Errorf("save attempt for question %s: %w", q.ID, err)
	}

	if isCorrect {
		ctx.AddScore(1)
		s.CurrentStreak++
	} else {
		ctx.AppendError(q.ID)
		s.CurrentStreak = 0
	}
	s.History = append(s.History, isCorrect)

	if !answeredToday && ctx.Profile != nil {
		if err := ctx.Profile.IncrementDailyProgress(); err != nil {
			log.WithError(err).WithField("user_id", ctx.UserID).Warn("failed to record daily progress")
		}
	}

	s.FeedbackMode = true
	s.LastResult = &AnswerResult{
		IsCorrect:      isCorrect,
		SelectedOption: selected,
		CorrectOption:  q.CorrectOption,
	}
	return Stay, nil
}
