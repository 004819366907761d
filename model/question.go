package model

import (
	"encoding/json"
	"time"
)

// Question is one multiple choice item of the certification bank.
// Options holds a JSON object keyed by option letter (A-D).
type Question struct {
	ID            string          `json:"id" gorm:"primaryKey"`
	Text          string          `json:"text" gorm:"type:text;not null"`
	Options       json.RawMessage `json:"options" gorm:"type:text;not null"`
	CorrectOption string          `json:"correct_option" gorm:"not null"`
	Explanation   string          `json:"explanation,omitempty" gorm:"type:text"`
	Hint          string          `json:"hint,omitempty" gorm:"type:text"`
	Category      string          `json:"category" gorm:"index;not null"`
	ImageURL      string          `json:"image_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OptionMap decodes the options column into key to label form.
func (q *Question) OptionMap() (map[string]string, error) {
	options := map[string]string{}
	if len(q.Options) == 0 {
		return options, nil
	}
	if err := json.Unmarshal(q.Options, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// Attempt is the current answer state for one (user, question) pair.
// It is upserted in place, not appended; UpdatedAt backs the
// answered-today checks.
type Attempt struct {
	UserID             string    `json:"user_id" gorm:"primaryKey"`
	QuestionID         string    `json:"question_id" gorm:"primaryKey"`
	IsCorrect          bool      `json:"is_correct"`
	ConsecutiveCorrect int       `json:"consecutive_correct" gorm:"default:0"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// QuestionCandidate annotates a question with the caller's mastery state.
// Computed per selection call, never persisted.
type QuestionCandidate struct {
	Question Question
	Streak   int
	Seen     bool
}

// CategoryStat is one row of the per category mastery aggregate.
type CategoryStat struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
	Mastered int    `json:"mastered"`
}
