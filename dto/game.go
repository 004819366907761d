package dto

import "github.com/kurs-wjo/wjo_api/game"

// StartSessionRequest opens a round of the named flow. Category is only
// meaningful for the category sprint.
type StartSessionRequest struct {
	Flow     string `json:"flow" validate:"required,oneof=daily_sprint category_sprint onboarding demo"`
	Category string `json:"category" validate:"omitempty,max=100"`
}

func (s StartSessionRequest) Validate() error {
	return GetValidator().Struct(s)
}

// ActionRequest is one player interaction routed into the running session.
type ActionRequest struct {
	Action  string `json:"action" validate:"required,oneof=NEXT SUBMIT_ANSWER NEXT_QUESTION FINISH REVIEW_MISTAKES"`
	Payload string `json:"payload" validate:"omitempty,max=10"`
}

func (a ActionRequest) Validate() error {
	return GetValidator().Struct(a)
}

// SessionResponse is the full client view after any session call: the
// screen the state machine sits in plus the renderable model for it.
type SessionResponse struct {
	SessionID string       `json:"session_id" example:"0190a7b2-33cc-7d30-b1f2-9c1de0a3f001"`
	Screen    string       `json:"screen" example:"QUIZ"`
	Complete  bool         `json:"complete"`
	UI        game.UIModel `json:"ui"`
}
