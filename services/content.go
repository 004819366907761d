package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/kurs-wjo/wjo_api/dto"
	"github.com/kurs-wjo/wjo_api/game"
	"github.com/kurs-wjo/wjo_api/model"
	"github.com/kurs-wjo/wjo_api/services/repositories"
	"github.com/kurs-wjo/wjo_api/shared"
)

// ContentService owns the question bank and the per-user mastery reads the
// quiz engine needs. It satisfies game.Store.
type ContentService struct {
	context.DefaultService
	dbSvc DbService

	questionRepo *repositories.QuestionRepository
	attemptRepo  *repositories.AttemptRepository
	profileRepo  *repositories.ProfileRepository

	cfg game.Config
}

const CONTENT_SVC = "content_svc"

func (svc ContentService) Id() string {
	return CONTENT_SVC
}

func (svc *ContentService) Configure(ctx *context.Context) error {
	svc.cfg = loadGameConfig()
	return svc.DefaultService.Configure(ctx)
}

func (svc *ContentService) Start() error {
	svc.dbSvc = svc.Service(DbSvcId()).(DbService)
	svc.questionRepo = repositories.NewQuestionRepository(svc.dbSvc.Db())
	svc.attemptRepo = repositories.NewAttemptRepository(svc.dbSvc.Db())
	svc.profileRepo = repositories.NewProfileRepository(svc.dbSvc.Db(), svc.cfg.DailyGoal)
	return nil
}

// ==================== QUESTION READS ====================

func (svc *ContentService) GetAllQuestions() ([]model.Question, error) {
	questions, err := svc.questionRepo.GetAll()
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}
	return questions, nil
}

func (svc *ContentService) GetQuestionsByIDs(ids []string) ([]model.Question, error) {
	questions, err := svc.questionRepo.GetByIDs(ids)
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}
	return questions, nil
}

// GetQuestionsByCategory serves category practice: the caller's weakest
// questions in the category first, random order among equals.
func (svc *ContentService) GetQuestionsByCategory(category, userID string, limit int) ([]model.Question, error) {
	questions, err := svc.questionRepo.GetByCategory(category)
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}

	streaks, err := svc.attemptStreaks(userID)
	if err != nil {
		return nil, err
	}

	weighted := make([]game.WeightedQuestion, 0, len(questions))
	for _, q := range questions {
		weighted = append(weighted, game.WeightedQuestion{
			Question: q,
			Streak:   streaks[q.ID],
		})
	}
	return game.PrioritizeWeakQuestions(weighted, limit), nil
}

// GetRepetitionCandidates annotates the full bank with the caller's current
// streaks for the spaced repetition selector.
func (svc *ContentService) GetRepetitionCandidates(userID string) ([]model.QuestionCandidate, error) {
	questions, err := svc.questionRepo.GetAll()
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}

	attempts, err := svc.attemptRepo.GetByUser(userID)
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}
	byQuestion := make(map[string]model.Attempt, len(attempts))
	for _, a := range attempts {
		byQuestion[a.QuestionID] = a
	}

	candidates := make([]model.QuestionCandidate, 0, len(questions))
	for _, q := range questions {
		attempt, seen := byQuestion[q.ID]
		candidates = append(candidates, model.QuestionCandidate{
			Question: q,
			Streak:   attempt.ConsecutiveCorrect,
			Seen:     seen,
		})
	}
	return candidates, nil
}

func (svc *ContentService) GetCategoryStats(userID string) ([]model.CategoryStat, error) {
	questions, err := svc.questionRepo.GetAll()
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}

	streaks, err := svc.attemptStreaks(userID)
	if err != nil {
		return nil, err
	}

	totals := map[string]int{}
	mastered := map[string]int{}
	for _, q := range questions {
		totals[q.Category]++
		if streaks[q.ID] >= svc.cfg.MasteryThreshold {
			mastered[q.Category]++
		}
	}

	// Known categories first in dashboard order, then any strays.
	stats := make([]model.CategoryStat, 0, len(totals))
	emitted := map[string]bool{}
	for _, category := range game.Categories {
		if totals[category] == 0 {
			continue
		}
		stats = append(stats, model.CategoryStat{
			Category: category,
			Total:    totals[category],
			Mastered: mastered[category],
		})
		emitted[category] = true
	}
	for _, q := range questions {
		if emitted[q.Category] {
			continue
		}
		stats = append(stats, model.CategoryStat{
			Category: q.Category,
			Total:    totals[q.Category],
			Mastered: mastered[q.Category],
		})
		emitted[q.Category] = true
	}
	return stats, nil
}

func (svc *ContentService) GetMasteryPercentage(userID, category string) (float64, error) {
	questions, err := svc.questionRepo.GetByCategory(category)
	if err != nil {
		return 0, svc.dbSvc.HandleError(err)
	}
	if len(questions) == 0 {
		return 0, nil
	}

	streaks, err := svc.attemptStreaks(userID)
	if err != nil {
		return 0, err
	}

	mastered := 0
	for _, q := range questions {
		if streaks[q.ID] >= svc.cfg.MasteryThreshold {
			mastered++
		}
	}
	return float64(mastered) / float64(len(questions)), nil
}

func (svc *ContentService) attemptStreaks(userID string) (map[string]int, error) {
	attempts, err := svc.attemptRepo.GetByUser(userID)
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}
	streaks := make(map[string]int, len(attempts))
	for _, a := range attempts {
		streaks[a.QuestionID] = a.ConsecutiveCorrect
	}
	return streaks, nil
}

// ==================== PROGRESS WRITES ====================

// GetOrCreateProfile returns the profile with the day bookkeeping already
// applied: a stale daily counter is reset and the login streak advanced, so
// no reader ever sees yesterday's progress as today's.
func (svc *ContentService) GetOrCreateProfile(userID string) (*model.UserProfile, error) {
	profile, err := svc.profileRepo.GetOrCreate(userID)
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}

	now := time.Now()
	streakChanged := applyLoginStreak(profile, now)
	resetChanged := applyDailyReset(profile, now)
	if streakChanged || resetChanged {
		if err := svc.profileRepo.Save(profile); err != nil {
			return nil, svc.dbSvc.HandleError(err)
		}
	}
	return profile, nil
}

func (svc *ContentService) SaveProfile(profile *model.UserProfile) error {
	if err := svc.profileRepo.Save(profile); err != nil {
		return svc.dbSvc.HandleError(err)
	}
	return nil
}

func (svc *ContentService) SaveAttempt(userID, questionID string, isCorrect bool) error {
	if err := svc.attemptRepo.Upsert(userID, questionID, isCorrect); err != nil {
		return svc.dbSvc.HandleError(err)
	}
	return nil
}

func (svc *ContentService) WasQuestionAnsweredOnDate(userID, questionID string, day time.Time) (bool, error) {
	answered, err := svc.attemptRepo.WasAnsweredOnDate(userID, questionID, day)
	if err != nil {
		return false, svc.dbSvc.HandleError(err)
	}
	return answered, nil
}

// ResetUserProgress wipes attempts and the profile. The next profile read
// mints a fresh one.
func (svc *ContentService) ResetUserProgress(userID string) error {
	if err := svc.attemptRepo.DeleteByUser(userID); err != nil {
		return svc.dbSvc.HandleError(err)
	}
	if err := svc.profileRepo.Delete(userID); err != nil {
		return svc.dbSvc.HandleError(err)
	}
	log.WithField("user_id", userID).Info("user progress reset")
	return nil
}

func (svc *ContentService) Count() (int64, error) {
	count, err := svc.questionRepo.Count()
	if err != nil {
		return 0, svc.dbSvc.HandleError(err)
	}
	return count, nil
}

// ==================== ADMIN BANK MANAGEMENT ====================

func (svc *ContentService) CreateQuestion(req dto.CreateQuestionRequest) (*model.Question, error) {
	question := questionFromRequest(req)
	if err := validateQuestionPayload(question); err != nil {
		return nil, shared.NewBadRequestError(err, "Invalid question payload")
	}

	if err := svc.questionRepo.Create(question); err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}
	return question, nil
}

func (svc *ContentService) UpdateQuestion(id string, req dto.UpdateQuestionRequest) (*model.Question, error) {
	question, err := svc.questionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Question not found")
		}
		return nil, svc.dbSvc.HandleError(err)
	}

	if req.Text != "" {
		question.Text = req.Text
	}
	if len(req.Options) > 0 {
		question.Options = req.Options
	}
	if req.CorrectOption != "" {
		question.CorrectOption = req.CorrectOption
	}
	if req.Explanation != "" {
		question.Explanation = req.Explanation
	}
	if req.Hint != "" {
		question.Hint = req.Hint
	}
	if req.Category != "" {
		question.Category = req.Category
	}
	if req.ImageURL != "" {
		question.ImageURL = req.ImageURL
	}

	if err := validateQuestionPayload(question); err != nil {
		return nil, shared.NewBadRequestError(err, "Invalid question payload")
	}

	if err := svc.questionRepo.Update(question); err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}
	return question, nil
}

func (svc *ContentService) DeleteQuestion(id string) error {
	if _, err := svc.questionRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError(err, "Question not found")
		}
		return svc.dbSvc.HandleError(err)
	}
	if err := svc.questionRepo.Delete(id); err != nil {
		return svc.dbSvc.HandleError(err)
	}
	return nil
}

func (svc *ContentService) GetQuestion(id string) (*model.Question, error) {
	question, err := svc.questionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Question not found")
		}
		return nil, svc.dbSvc.HandleError(err)
	}
	return question, nil
}

func (svc *ContentService) ListQuestions(offset, limit int) (*dto.QuestionListResponse, error) {
	questions, err := svc.questionRepo.List(offset, limit)
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}
	total, err := svc.questionRepo.Count()
	if err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}
	return &dto.QuestionListResponse{Questions: questions, Total: total}, nil
}

// ImportQuestions bulk upserts a bank export; existing ids are overwritten.
func (svc *ContentService) ImportQuestions(req dto.ImportQuestionsRequest) (int, error) {
	imported := 0
	for _, item := range req.Questions {
		question := questionFromRequest(item)
		if err := validateQuestionPayload(question); err != nil {
			return imported, shared.NewBadRequestError(err, fmt.Sprintf("Invalid question %s", item.ID))
		}
		if err := svc.questionRepo.Upsert(question); err != nil {
			return imported, svc.dbSvc.HandleError(err)
		}
		imported++
	}

	log.WithField("imported", imported).Info("question bank import finished")
	return imported, nil
}

// SetQuestionImage stores the uploaded image URL on the question.
func (svc *ContentService) SetQuestionImage(id, url string) (*model.Question, error) {
	question, err := svc.questionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Question not found")
		}
		return nil, svc.dbSvc.HandleError(err)
	}

	question.ImageURL = url
	if err := svc.questionRepo.Update(question); err != nil {
		return nil, svc.dbSvc.HandleError(err)
	}
	return question, nil
}

func questionFromRequest(req dto.CreateQuestionRequest) *model.Question {
	return &model.Question{
		ID:            req.ID,
		Text:          req.Text,
		Options:       req.Options,
		CorrectOption: req.CorrectOption,
		Explanation:   req.Explanation,
		Hint:          req.Hint,
		Category:      req.Category,
		ImageURL:      req.ImageURL,
	}
}

// validateQuestionPayload checks what tag validation cannot: options must
// decode to a key/label object and the correct option must be one of its
// keys.
func validateQuestionPayload(q *model.Question) error {
	options := map[string]string{}
	if err := json.Unmarshal(q.Options, &options); err != nil {
		return fmt.Errorf("options must be a JSON object of option labels: %w", err)
	}
	if len(options) < 2 {
		return errors.New("question needs at least two options")
	}
	for key := range options {
		if !shared.IsValidOptionKey(key) {
			return fmt.Errorf("unknown option key %q", key)
		}
	}
	if _, ok := options[q.CorrectOption]; !ok {
		return fmt.Errorf("correct option %q is not among the options", q.CorrectOption)
	}
	return nil
}
