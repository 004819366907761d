package services

import (
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/kurs-wjo/wjo_api/dto"
	"github.com/kurs-wjo/wjo_api/game"
	"github.com/kurs-wjo/wjo_api/model"
)

// ProfileService runs the gamification accounting: login streaks, daily
// goal progress and language preference. Daily progress increments are
// batched in memory and flushed at a threshold or on critical events so a
// sprint does not write the profile row once per answer.
type ProfileService struct {
	context.DefaultService
	dbSvc      DbService
	contentSvc *ContentService

	cfg game.Config

	mu      sync.Mutex
	pending map[string]pendingProgress
}

// pendingProgress buffers unflushed daily-goal counts. The day stamp keeps a
// rollover from leaking yesterday's counts into the new day.
type pendingProgress struct {
	count int
	day   time.Time
}

const PROFILE_SVC = "profile_svc"

// Pending increments flush to the database once a user accumulates this
// many unsaved answers.
const pendingFlushThreshold = 5

func (svc ProfileService) Id() string {
	return PROFILE_SVC
}

func (svc *ProfileService) Configure(ctx *context.Context) error {
	svc.cfg = loadGameConfig()
	svc.pending = map[string]pendingProgress{}
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProfileService) Start() error {
	svc.dbSvc = svc.Service(DbSvcId()).(DbService)
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)
	return nil
}

func (svc *ProfileService) Shutdown() {
	if err := svc.FlushAll(); err != nil {
		log.WithError(err).Error("failed to flush pending progress on shutdown")
	}
}

// ==================== ACCOUNTING RULES ====================

// applyLoginStreak advances the login streak for a new calendar day: a
// consecutive day extends it, any gap restarts at one. A clock that moved
// backwards also restarts, rather than guessing.
func applyLoginStreak(p *model.UserProfile, now time.Time) bool {
	delta := calendarDaysBetween(p.LastLogin, now)
	if delta == 0 {
		return false
	}

	if delta == 1 {
		p.StreakDays++
	} else {
		p.StreakDays = 1
	}
	p.LastLogin = now
	return true
}

// applyDailyReset zeroes today's progress counter when the day rolled over
// since the last reset. Must run before any increment lands.
func applyDailyReset(p *model.UserProfile, now time.Time) bool {
	if calendarDaysBetween(p.LastDailyReset, now) == 0 {
		return false
	}
	p.DailyProgress = 0
	p.LastDailyReset = now
	return true
}

func calendarDaysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	return int(toDay.Sub(fromDay).Hours() / 24)
}

// ==================== SERVICE SURFACE ====================

// TouchLogin runs the once-per-day bookkeeping when a device checks in. The
// streak and reset rules apply inside the profile read itself; this is the
// named touchpoint for it.
func (svc *ProfileService) TouchLogin(userID string) (*model.UserProfile, error) {
	return svc.contentSvc.GetOrCreateProfile(userID)
}

func (svc *ProfileService) GetProfile(userID string) (*dto.ProfileResponse, error) {
	profile, err := svc.contentSvc.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}

	svc.mu.Lock()
	if entry, ok := svc.pending[userID]; ok && calendarDaysBetween(entry.day, time.Now()) == 0 {
		profile.DailyProgress += entry.count
	}
	svc.mu.Unlock()

	mastery := 0.0
	stats, err := svc.contentSvc.GetCategoryStats(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("failed to compute mastery for profile")
	} else {
		total, mastered := 0, 0
		for _, stat := range stats {
			total += stat.Total
			mastered += stat.Mastered
		}
		if total > 0 {
			mastery = float64(mastered) / float64(total)
		}
	}

	return &dto.ProfileResponse{
		Profile:   profile,
		BonusMode: profile.IsBonusMode(),
		Mastery:   mastery,
	}, nil
}

// SetLanguage is a critical write: pending progress flushes first so the
// save does not clobber unflushed counts.
func (svc *ProfileService) SetLanguage(userID, language string) (*model.UserProfile, error) {
	if err := svc.FlushUser(userID); err != nil {
		return nil, err
	}

	profile, err := svc.contentSvc.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}
	profile.PreferredLanguage = language
	if err := svc.contentSvc.SaveProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (svc *ProfileService) SetDailyGoal(userID string, goal int) (*model.UserProfile, error) {
	if err := svc.FlushUser(userID); err != nil {
		return nil, err
	}

	profile, err := svc.contentSvc.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}
	profile.DailyGoal = goal
	if err := svc.contentSvc.SaveProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (svc *ProfileService) CompleteOnboarding(userID string) error {
	if err := svc.FlushUser(userID); err != nil {
		return err
	}

	profile, err := svc.contentSvc.GetOrCreateProfile(userID)
	if err != nil {
		return err
	}
	if profile.HasCompletedOnboarding {
		return nil
	}
	profile.HasCompletedOnboarding = true
	return svc.contentSvc.SaveProfile(profile)
}

func (svc *ProfileService) ResetProgress(userID string) error {
	svc.dropPending(userID)
	return svc.contentSvc.ResetUserProgress(userID)
}

// IncrementDailyProgress buffers one answered-today count for the user,
// flushing once the batch threshold is reached. A buffer left over from a
// previous day is discarded, not counted.
func (svc *ProfileService) IncrementDailyProgress(userID string) error {
	now := time.Now()

	svc.mu.Lock()
	entry := svc.pending[userID]
	if calendarDaysBetween(entry.day, now) != 0 {
		entry = pendingProgress{}
	}
	entry.count++
	entry.day = now
	svc.pending[userID] = entry
	count := entry.count
	svc.mu.Unlock()

	if count >= pendingFlushThreshold {
		return svc.FlushUser(userID)
	}
	return nil
}

// FlushUser lands the user's buffered increments. Counts stamped with a
// previous day are dropped; they belonged to a day that is already over.
func (svc *ProfileService) FlushUser(userID string) error {
	now := time.Now()

	svc.mu.Lock()
	entry := svc.pending[userID]
	delete(svc.pending, userID)
	svc.mu.Unlock()

	if entry.count == 0 || calendarDaysBetween(entry.day, now) != 0 {
		return nil
	}

	profile, err := svc.contentSvc.GetOrCreateProfile(userID)
	if err != nil {
		svc.restorePending(userID, entry)
		return err
	}
	profile.DailyProgress += entry.count
	if err := svc.contentSvc.SaveProfile(profile); err != nil {
		svc.restorePending(userID, entry)
		return err
	}
	return nil
}

// restorePending puts a buffer back after a failed flush so the counts are
// retried rather than lost. Counts accrued meanwhile on the same day are
// merged; a buffer already stamped with a newer day wins outright.
func (svc *ProfileService) restorePending(userID string, entry pendingProgress) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	cur, ok := svc.pending[userID]
	if !ok {
		svc.pending[userID] = entry
		return
	}
	if calendarDaysBetween(entry.day, cur.day) == 0 {
		cur.count += entry.count
		svc.pending[userID] = cur
	}
}

func (svc *ProfileService) FlushAll() error {
	svc.mu.Lock()
	users := make([]string, 0, len(svc.pending))
	for userID := range svc.pending {
		users = append(users, userID)
	}
	svc.mu.Unlock()

	var lastErr error
	for _, userID := range users {
		if err := svc.FlushUser(userID); err != nil {
			log.WithError(err).WithField("user_id", userID).Error("failed to flush pending progress")
			lastErr = err
		}
	}
	return lastErr
}

func (svc *ProfileService) dropPending(userID string) {
	svc.mu.Lock()
	delete(svc.pending, userID)
	svc.mu.Unlock()
}

// SinkFor binds the engine's profile callbacks to one user.
func (svc *ProfileService) SinkFor(userID string) game.ProfileSink {
	return &profileSink{svc: svc, userID: userID}
}

type profileSink struct {
	svc    *ProfileService
	userID string
}

func (s *profileSink) IncrementDailyProgress() error {
	return s.svc.IncrementDailyProgress(s.userID)
}

func (s *profileSink) CompleteOnboarding() error {
	return s.svc.CompleteOnboarding(s.userID)
}

func (s *profileSink) FlushOnExit() error {
	return s.svc.FlushUser(s.userID)
}
