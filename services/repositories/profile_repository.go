package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kurs-wjo/wjo_api/model"
	"github.com/kurs-wjo/wjo_api/shared"
)

// ProfileRepository persists the gamification profile rows.
type ProfileRepository struct {
	BaseRepository

	defaultDailyGoal int
}

func NewProfileRepository(db *gorm.DB, defaultDailyGoal int) *ProfileRepository {
	if defaultDailyGoal <= 0 {
		defaultDailyGoal = 3
	}
	return &ProfileRepository{
		BaseRepository:   NewBaseRepository(db),
		defaultDailyGoal: defaultDailyGoal,
	}
}

func (ds *ProfileRepository) Get(userID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := ds.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetOrCreate returns the profile, minting a fresh one on first contact.
func (ds *ProfileRepository) GetOrCreate(userID string) (*model.UserProfile, error) {
	profile, err := ds.Get(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	fresh := &model.UserProfile{
		UserID:            userID,
		StreakDays:        1,
		LastLogin:         now,
		DailyGoal:         ds.defaultDailyGoal,
		DailyProgress:     0,
		LastDailyReset:    now,
		PreferredLanguage: shared.LanguagePolish,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := ds.db.Create(fresh).Error; err != nil {
		return nil, err
	}
	return fresh, nil
}

func (ds *ProfileRepository) Save(profile *model.UserProfile) error {
	profile.UpdatedAt = time.Now()
	return ds.db.Save(profile).Error
}

func (ds *ProfileRepository) Delete(userID string) error {
	return ds.db.Where("user_id = ?", userID).Delete(&model.UserProfile{}).Error
}
