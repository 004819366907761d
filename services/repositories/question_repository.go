package repositories

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kurs-wjo/wjo_api/model"
)

// QuestionRepository handles question bank database operations
type QuestionRepository struct {
	BaseRepository
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *QuestionRepository) GetAll() ([]model.Question, error) {
	var questions []model.Question
	if err := ds.db.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (ds *QuestionRepository) GetByID(id string) (*model.Question, error) {
	var question model.Question
	if err := ds.db.Where("id = ?", id).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (ds *QuestionRepository) GetByIDs(ids []string) ([]model.Question, error) {
	if len(ids) == 0 {
		return []model.Question{}, nil
	}
	var questions []model.Question
	if err := ds.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (ds *QuestionRepository) GetByCategory(category string) ([]model.Question, error) {
	var questions []model.Question
	if err := ds.db.Where("category = ?", category).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (ds *QuestionRepository) Count() (int64, error) {
	var count int64
	if err := ds.db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (ds *QuestionRepository) Create(question *model.Question) error {
	question.CreatedAt = time.Now()
	question.UpdatedAt = time.Now()
	return ds.db.Create(question).Error
}

func (ds *QuestionRepository) Update(question *model.Question) error {
	question.UpdatedAt = time.Now()
	return ds.db.Save(question).Error
}

func (ds *QuestionRepository) Delete(id string) error {
	return ds.db.Where("id = ?", id).Delete(&model.Question{}).Error
}

// Upsert writes the question regardless of whether the id exists, so bank
// re-imports converge on the imported payload.
func (ds *QuestionRepository) Upsert(question *model.Question) error {
	question.UpdatedAt = time.Now()
	return ds.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"text", "options", "correct_option", "explanation", "hint", "category", "image_url", "updated_at",
		}),
	}).Create(question).Error
}

func (ds *QuestionRepository) List(offset, limit int) ([]model.Question, error) {
	var questions []model.Question
	query := ds.db.Order("category, id")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
