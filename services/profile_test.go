package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kurs-wjo/wjo_api/model"
)

func day(yearDay int, hour int) time.Time {
	return time.Date(2026, time.March, yearDay, hour, 0, 0, 0, time.UTC)
}

func TestApplyLoginStreak(t *testing.T) {
	tests := []struct {
		name       string
		lastLogin  time.Time
		now        time.Time
		startDays  int
		wantDays   int
		wantChange bool
	}{
		{"same day is a no-op", day(10, 8), day(10, 22), 4, 4, false},
		{"next day extends", day(10, 23), day(11, 1), 4, 5, true},
		{"two day gap restarts", day(10, 8), day(12, 8), 4, 1, true},
		{"long gap restarts", day(1, 8), day(20, 8), 9, 1, true},
		{"clock moved backwards restarts", day(12, 8), day(10, 8), 4, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &model.UserProfile{StreakDays: tt.startDays, LastLogin: tt.lastLogin}
			changed := applyLoginStreak(p, tt.now)
			assert.Equal(t, tt.wantChange, changed)
			assert.Equal(t, tt.wantDays, p.StreakDays)
			if tt.wantChange {
				assert.Equal(t, tt.now, p.LastLogin)
			} else {
				assert.Equal(t, tt.lastLogin, p.LastLogin, "no-op must not touch the login stamp")
			}
		})
	}
}

func TestApplyDailyReset(t *testing.T) {
	p := &model.UserProfile{DailyProgress: 7, LastDailyReset: day(10, 8)}

	assert.False(t, applyDailyReset(p, day(10, 23)))
	assert.Equal(t, 7, p.DailyProgress, "same day keeps the counter")

	assert.True(t, applyDailyReset(p, day(11, 0)))
	assert.Equal(t, 0, p.DailyProgress)
	assert.Equal(t, day(11, 0), p.LastDailyReset)

	// Idempotent within the new day.
	assert.False(t, applyDailyReset(p, day(11, 14)))
}

func TestCalendarDaysBetween(t *testing.T) {
	assert.Equal(t, 0, calendarDaysBetween(day(10, 1), day(10, 23)))
	assert.Equal(t, 1, calendarDaysBetween(day(10, 23), day(11, 0)), "midnight boundary counts as a new day")
	assert.Equal(t, 5, calendarDaysBetween(day(10, 12), day(15, 12)))
	assert.Equal(t, -2, calendarDaysBetween(day(12, 8), day(10, 8)))
}

func TestRestorePendingKeepsCountsAfterFailedFlush(t *testing.T) {
	svc := &ProfileService{pending: map[string]pendingProgress{}}

	// Nothing accrued meanwhile: the buffer comes back whole.
	svc.restorePending("u1", pendingProgress{count: 3, day: day(10, 9)})
	assert.Equal(t, 3, svc.pending["u1"].count)

	// Same-day counts accrued during the flush are merged, not clobbered.
	svc.pending["u1"] = pendingProgress{count: 2, day: day(10, 11)}
	svc.restorePending("u1", pendingProgress{count: 3, day: day(10, 9)})
	assert.Equal(t, 5, svc.pending["u1"].count)

	// A buffer already stamped with a newer day wins; stale counts drop.
	svc.pending["u1"] = pendingProgress{count: 1, day: day(11, 8)}
	svc.restorePending("u1", pendingProgress{count: 3, day: day(10, 9)})
	assert.Equal(t, 1, svc.pending["u1"].count)
}

func TestBonusModeFollowsDailyGoal(t *testing.T) {
	p := &model.UserProfile{DailyGoal: 3, DailyProgress: 2}
	assert.False(t, p.IsBonusMode())

	p.DailyProgress = 3
	assert.True(t, p.IsBonusMode())

	p.DailyProgress = 10
	assert.True(t, p.IsBonusMode())
}
