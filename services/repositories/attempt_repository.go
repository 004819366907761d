package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kurs-wjo/wjo_api/model"
)

// AttemptRepository maintains the per (user, question) answer state.
type AttemptRepository struct {
	BaseRepository
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Upsert records one answer in place. A correct answer extends the
// consecutive streak, a wrong one resets it to zero; the row is created on
// first contact with the question.
func (ds *AttemptRepository) Upsert(userID, questionID string, isCorrect bool) error {
	streak := 0
	if isCorrect {
		streak = 1
	}

	attempt := model.Attempt{
		UserID:             userID,
		QuestionID:         questionID,
		IsCorrect:          isCorrect,
		ConsecutiveCorrect: streak,
		UpdatedAt:          time.Now(),
	}

	return ds.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_correct": isCorrect,
			"consecutive_correct": gorm.Expr(
				"CASE WHEN ? THEN attempts.consecutive_correct + 1 ELSE 0 END", isCorrect),
			"updated_at": time.Now(),
		}),
	}).Create(&attempt).Error
}

func (ds *AttemptRepository) Get(userID, questionID string) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := ds.db.Where("user_id = ? AND question_id = ?", userID, questionID).First(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (ds *AttemptRepository) GetByUser(userID string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	if err := ds.db.Where("user_id = ?", userID).Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

// WasAnsweredOnDate reports whether the attempt row was last touched on the
// same calendar day. The date comparison happens here rather than in SQL so
// sqlite and postgres agree.
func (ds *AttemptRepository) WasAnsweredOnDate(userID, questionID string, day time.Time) (bool, error) {
	attempt, err := ds.Get(userID, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	y1, m1, d1 := attempt.UpdatedAt.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2, nil
}

func (ds *AttemptRepository) DeleteByUser(userID string) error {
	return ds.db.Where("user_id = ?", userID).Delete(&model.Attempt{}).Error
}
