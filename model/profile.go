package model

import (
	"encoding/json"
	"time"
)

// UserProfile carries the gamification state for one user. Login streak and
// daily progress are maintained by the profile service rules, everything
// else is written straight through.
type UserProfile struct {
	UserID                 string          `json:"user_id" gorm:"primaryKey"`
	StreakDays             int             `json:"streak_days" gorm:"default:1"`
	LastLogin              time.Time       `json:"last_login"`
	DailyGoal              int             `json:"daily_goal" gorm:"default:3"`
	DailyProgress          int             `json:"daily_progress" gorm:"default:0"`
	LastDailyReset         time.Time       `json:"last_daily_reset"`
	HasCompletedOnboarding bool            `json:"has_completed_onboarding" gorm:"default:false"`
	PreferredLanguage      string          `json:"preferred_language" gorm:"default:pl"`
	Metadata               json.RawMessage `json:"metadata,omitempty" gorm:"type:text"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// IsBonusMode reports whether the daily goal is already met, which unlocks
// the short bonus round.
func (p *UserProfile) IsBonusMode() bool {
	return p.DailyProgress >= p.DailyGoal
}
