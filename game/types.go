package game

import (
	"encoding/json"
	"time"

	"github.com/kurs-wjo/wjo_api/model"
)

// Store is the persistence surface the engine needs. The services layer
// provides the gorm backed implementation; tests provide mocks.
type Store interface {
	GetAllQuestions() ([]model.Question, error)
	GetQuestionsByIDs(ids []string) ([]model.Question, error)
	GetQuestionsByCategory(category, userID string, limit int) ([]model.Question, error)
	GetRepetitionCandidates(userID string) ([]model.QuestionCandidate, error)
	GetCategoryStats(userID string) ([]model.CategoryStat, error)
	GetMasteryPercentage(userID, category string) (float64, error)
	GetOrCreateProfile(userID string) (*model.UserProfile, error)
	SaveProfile(profile *model.UserProfile) error
	SaveAttempt(userID, questionID string, isCorrect bool) error
	WasQuestionAnsweredOnDate(userID, questionID string, day time.Time) (bool, error)
	ResetUserProgress(userID string) error
	Count() (int64, error)
}

// ProfileSink receives gamification accounting events from the engine.
// Implemented by the profile accountant; optional in tests.
type ProfileSink interface {
	IncrementDailyProgress() error
	CompleteOnboarding() error
	FlushOnExit() error
}

// Player actions accepted by HandleAction.
const (
	ActionNext           = "NEXT"
	ActionSubmitAnswer   = "SUBMIT_ANSWER"
	ActionNextQuestion   = "NEXT_QUESTION"
	ActionFinish         = "FINISH"
	ActionReviewMistakes = "REVIEW_MISTAKES"
)

type UIModelType string

const (
	UITypeText      UIModelType = "TEXT"
	UITypeQuestion  UIModelType = "QUESTION"
	UITypeFeedback  UIModelType = "FEEDBACK"
	UITypeSummary   UIModelType = "SUMMARY"
	UITypeDashboard UIModelType = "DASHBOARD"
	UITypeEmpty     UIModelType = "EMPTY"
)

// UIModel is the renderable projection of the current step. Exactly one
// payload field matching Type is set; the set of types is closed.
type UIModel struct {
	Type      UIModelType       `json:"type"`
	Text      *TextPayload      `json:"text,omitempty"`
	Question  *QuestionPayload  `json:"question,omitempty"`
	Feedback  *FeedbackPayload  `json:"feedback,omitempty"`
	Summary   *SummaryPayload   `json:"summary,omitempty"`
	Dashboard *DashboardPayload `json:"dashboard,omitempty"`
	Empty     *EmptyPayload     `json:"empty,omitempty"`
}

type TextPayload struct {
	Title       string `json:"title"`
	Body        string `json:"body,omitempty"`
	ButtonLabel string `json:"button_label"`
}

type QuestionPayload struct {
	FlowTitle         string          `json:"flow_title"`
	QuestionID        string          `json:"question_id"`
	Text              string          `json:"text"`
	Options           json.RawMessage `json:"options"`
	Hint              string          `json:"hint,omitempty"`
	ImageURL          string          `json:"image_url,omitempty"`
	CurrentIndex      int             `json:"current_index"`
	TotalCount        int             `json:"total_count"`
	CategoryMastery   float64         `json:"category_mastery"`
	SessionHistory    []bool          `json:"session_history"`
	CurrentStreak     int             `json:"current_streak"`
	PreferredLanguage string          `json:"preferred_language"`
}

type FeedbackPayload struct {
	Question       QuestionPayload `json:"question"`
	IsCorrect      bool            `json:"is_correct"`
	SelectedOption string          `json:"selected_option"`
	CorrectOption  string          `json:"correct_option"`
	Explanation    string          `json:"explanation,omitempty"`
}

type SummaryPayload struct {
	Title          string `json:"title"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	MistakeCount   int    `json:"mistake_count"`
	Passed         bool   `json:"passed"`
	CanReview      bool   `json:"can_review"`
}

type DashboardCategory struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Progress float64 `json:"progress"`
	Icon     string  `json:"icon"`
	Subtitle string  `json:"subtitle"`
}

type DashboardPayload struct {
	TotalQuestions     int                 `json:"total_questions"`
	MasteredQuestions  int                 `json:"mastered_questions"`
	RemainingQuestions int                 `json:"remaining_questions"`
	GlobalProgress     float64             `json:"global_progress"`
	DaysLeft           int                 `json:"days_left"`
	ProjectedFinish    string              `json:"projected_finish"`
	StreakDays         int                 `json:"streak_days"`
	DailyGoal          int                 `json:"daily_goal"`
	DailyProgress      int                 `json:"daily_progress"`
	BonusMode          bool                `json:"bonus_mode"`
	Categories         []DashboardCategory `json:"categories"`
}

type EmptyPayload struct {
	Message string `json:"message"`
}
