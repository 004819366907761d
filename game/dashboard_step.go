package game

import (
	"errors"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"
)

// DashboardStep projects the landing screen: global mastery totals, a
// finish-date estimate based on sprint throughput, and per category
// progress tiles.
type DashboardStep struct {
	SprintQuestions int

	entered bool
}

func NewDashboardStep(sprintQuestions int) *DashboardStep {
	if sprintQuestions <= 0 {
		sprintQuestions = DefaultConfig().SprintQuestions
	}
	return &DashboardStep{SprintQuestions: sprintQuestions}
}

func (s *DashboardStep) Enter(ctx *Context) error {
	s.entered = true
	ctx.ClearCounters()
	return nil
}

func (s *DashboardStep) UIModel(ctx *Context) (UIModel, error) {
	if !s.entered {
		return UIModel{}, errors.New("dashboard step used before enter")
	}

	stats, err := ctx.Store.GetCategoryStats(ctx.UserID)
	if err != nil {
		return UIModel{}, fmt.Errorf("fetch category stats: %w", err)
	}

	totalQuestions := 0
	totalMastered := 0
	for _, stat := range stats {
		totalQuestions += stat.Total
		totalMastered += stat.Mastered
	}
	remaining := totalQuestions - totalMastered

	daysLeft := 0
	if remaining > 0 {
		daysLeft = int(math.Ceil(float64(remaining) / float64(s.SprintQuestions)))
	}
	finishDate := time.Now().AddDate(0, 0, daysLeft)

	globalProgress := 0.0
	if totalQuestions > 0 {
		globalProgress = float64(totalMastered) / float64(totalQuestions)
	}

	categories := make([]DashboardCategory, 0, len(stats))
	for _, stat := range stats {
		progress := 0.0
		if stat.Total > 0 {
			progress = float64(stat.Mastered) / float64(stat.Total)
		}
		categories = append(categories, DashboardCategory{
			ID:       stat.Category,
			Name:     truncateName(stat.Category, 30),
			Progress: progress,
			Icon:     CategoryIcon(stat.Category),
			Subtitle: fmt.Sprintf("%d / %d Zrobione", stat.Mastered, stat.Total),
		})
	}

	payload := DashboardPayload{
		TotalQuestions:     totalQuestions,
		MasteredQuestions:  totalMastered,
		RemainingQuestions: remaining,
		GlobalProgress:     globalProgress,
		DaysLeft:           daysLeft,
		ProjectedFinish:    finishDate.Format("02 Jan"),
		Categories:         categories,
	}

	profile, err := ctx.Store.GetOrCreateProfile(ctx.UserID)
	if err != nil {
		log.WithError(err).WithField("user_id", ctx.UserID).Warn("failed to fetch profile for dashboard")
	} else {
		payload.StreakDays = profile.StreakDays
		payload.DailyGoal = profile.DailyGoal
		payload.DailyProgress = profile.DailyProgress
		payload.BonusMode = profile.IsBonusMode()
	}

	return UIModel{Type: UITypeDashboard, Dashboard: &payload}, nil
}

func (s *DashboardStep) HandleAction(ctx *Context, action string, payload string) (StepResult, error) {
	if !s.entered {
		return Stay, errors.New("dashboard step used before enter")
	}
	return Stay, nil
}

// truncateName shortens long category labels for tile headers, rune aware
// for the Polish names.
func truncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max-2]) + "..."
}
