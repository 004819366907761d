package dto

import (
	"encoding/json"

	"github.com/kurs-wjo/wjo_api/model"
)

// CreateQuestionRequest adds one item to the certification bank. Options is
// a JSON object keyed by option letter; CorrectOption must name one of its
// keys, which the content service checks beyond tag validation.
type CreateQuestionRequest struct {
	ID            string          `json:"id" validate:"required,min=1,max=64"`
	Text          string          `json:"text" validate:"required"`
	Options       json.RawMessage `json:"options" validate:"required"`
	CorrectOption string          `json:"correct_option" validate:"required,oneof=A B C D"`
	Explanation   string          `json:"explanation"`
	Hint          string          `json:"hint"`
	Category      string          `json:"category" validate:"required,max=100"`
	ImageURL      string          `json:"image_url" validate:"omitempty,url"`
}

func (c CreateQuestionRequest) Validate() error {
	return GetValidator().Struct(c)
}

type UpdateQuestionRequest struct {
	Text          string          `json:"text" validate:"omitempty"`
	Options       json.RawMessage `json:"options" validate:"omitempty"`
	CorrectOption string          `json:"correct_option" validate:"omitempty,oneof=A B C D"`
	Explanation   string          `json:"explanation"`
	Hint          string          `json:"hint"`
	Category      string          `json:"category" validate:"omitempty,max=100"`
	ImageURL      string          `json:"image_url" validate:"omitempty,url"`
}

func (u UpdateQuestionRequest) Validate() error {
	return GetValidator().Struct(u)
}

// ImportQuestionsRequest bulk loads a question bank export. Existing ids
// are overwritten so re-imports converge.
type ImportQuestionsRequest struct {
	Questions []CreateQuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

func (i ImportQuestionsRequest) Validate() error {
	return GetValidator().Struct(i)
}

type ImportQuestionsResponse struct {
	Imported int `json:"imported"`
}

type QuestionListResponse struct {
	Questions []model.Question `json:"questions"`
	Total     int64            `json:"total"`
}
