package dto

import "github.com/kurs-wjo/wjo_api/model"

type ProfileResponse struct {
	Profile   *model.UserProfile `json:"profile"`
	BonusMode bool               `json:"bonus_mode"`
	Mastery   float64            `json:"mastery"`
}

type UpdateLanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=pl en uk ka"`
}

func (u UpdateLanguageRequest) Validate() error {
	return GetValidator().Struct(u)
}

type UpdateDailyGoalRequest struct {
	DailyGoal int `json:"daily_goal" validate:"required,min=1,max=50"`
}

func (u UpdateDailyGoalRequest) Validate() error {
	return GetValidator().Struct(u)
}

type ResetProgressResponse struct {
	UserID  string `json:"user_id"`
	Deleted bool   `json:"deleted"`
}
