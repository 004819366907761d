package services

import (
	goContext "context"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/kurs-wjo/wjo_api/dto"
	"github.com/kurs-wjo/wjo_api/game"
	"github.com/kurs-wjo/wjo_api/shared"
)

// GameService runs the quiz sessions: one director plus one screen state
// machine per session, held in memory and snapshotted to Redis after every
// mutation so a restarted instance can pick sessions back up.
type GameService struct {
	context.DefaultService
	contentSvc    *ContentService
	profileSvc    *ProfileService
	redisSvc      *RedisService
	monitoringSvc *MonitoringService

	cfg game.Config

	mu       sync.Mutex
	sessions map[string]*gameSession
}

type gameSession struct {
	mu sync.Mutex

	userID   string
	flow     string
	director *game.Director
	fsm      *game.StateMachine
}

// sessionSnapshot is the Redis record of one session.
type sessionSnapshot struct {
	UserID   string                `json:"user_id"`
	Flow     string                `json:"flow"`
	Screen   game.ScreenState      `json:"screen"`
	Director game.DirectorSnapshot `json:"director"`
}

const GAME_SVC = "game_svc"

const (
	sessionKeyPrefix = "session:"
	sessionTTL       = 24 * time.Hour
)

func (svc GameService) Id() string {
	return GAME_SVC
}

func (svc *GameService) Configure(ctx *context.Context) error {
	svc.cfg = loadGameConfig()
	svc.sessions = map[string]*gameSession{}
	return svc.DefaultService.Configure(ctx)
}

func (svc *GameService) Start() error {
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)
	svc.profileSvc = svc.Service(PROFILE_SVC).(*ProfileService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

// ==================== SESSION LIFECYCLE ====================

func (svc *GameService) StartSession(userID string, req dto.StartSessionRequest) (*dto.SessionResponse, error) {
	gameCtx := game.NewContext(userID, svc.contentSvc)
	gameCtx.Profile = svc.profileSvc.SinkFor(userID)

	fsm := game.NewStateMachine()
	fsm.Apply(game.EventStart)

	flow, err := svc.buildFlow(gameCtx, req)
	if err != nil {
		fsm.Apply(game.EventReset)
		return nil, err
	}

	director := game.NewDirector(gameCtx)
	if err := director.StartFlow(flow.Name, flow.Steps); err != nil {
		fsm.Apply(game.EventReset)
		return nil, err
	}

	if flow.Empty {
		fsm.Apply(game.EventLoadEmpty)
	} else {
		fsm.Apply(game.EventLoadSuccess)
	}

	sessionID, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	sess := &gameSession{
		userID:   userID,
		flow:     flow.Name,
		director: director,
		fsm:      fsm,
	}

	svc.mu.Lock()
	svc.sessions[sessionID.String()] = sess
	count := len(svc.sessions)
	svc.mu.Unlock()

	svc.monitoringSvc.RecordSessionStarted(flow.Name)
	svc.monitoringSvc.SetActiveSessions(count)

	svc.persistSession(sessionID.String(), sess)

	log.WithFields(log.Fields{
		"session_id": sessionID.String(),
		"user_id":    userID,
		"flow":       flow.Name,
	}).Info("session started")

	return svc.response(sessionID.String(), sess)
}

func (svc *GameService) GetSession(userID, sessionID string) (*dto.SessionResponse, error) {
	sess, err := svc.lookupSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return svc.response(sessionID, sess)
}

// HandleAction routes one player action into the session, then resyncs the
// screen state machine to the step the director landed on.
func (svc *GameService) HandleAction(userID, sessionID string, req dto.ActionRequest) (*dto.SessionResponse, error) {
	sess, err := svc.lookupSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.director.HandleAction(req.Action, req.Payload); err != nil {
		return nil, shared.NewInternalError(err, "Failed to handle action")
	}

	ui, err := sess.director.GetUIModel()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to project session screen")
	}

	svc.applyScreenEvent(sess, req.Action, ui)

	if req.Action == game.ActionSubmitAnswer && ui.Type == game.UITypeFeedback && ui.Feedback != nil {
		svc.monitoringSvc.RecordAnswer(ui.Feedback.IsCorrect)
	}
	if sess.director.IsComplete() {
		svc.monitoringSvc.RecordFlowCompleted(sess.flow)
	}

	svc.persistSession(sessionID, sess)
	svc.monitoringSvc.ObserveActionDuration(req.Action, time.Since(start))

	return svc.responseWithUI(sessionID, sess, ui)
}

// EndSession flushes pending profile accounting and drops the session.
func (svc *GameService) EndSession(userID, sessionID string) error {
	sess, err := svc.lookupSession(userID, sessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	if err := sess.director.Context().Profile.FlushOnExit(); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("failed to flush profile on session end")
	}
	sess.fsm.Apply(game.EventReset)
	sess.mu.Unlock()

	svc.mu.Lock()
	delete(svc.sessions, sessionID)
	count := len(svc.sessions)
	svc.mu.Unlock()
	svc.monitoringSvc.SetActiveSessions(count)

	if err := svc.redisSvc.Delete(goContext.Background(), sessionKeyPrefix+sessionID); err != nil {
		log.WithError(err).WithField("session_id", sessionID).Warn("failed to delete session snapshot")
	}

	return nil
}

// Dashboard projects the landing screen outside any session.
func (svc *GameService) Dashboard(userID string) (*game.UIModel, error) {
	gameCtx := game.NewContext(userID, svc.contentSvc)

	step := game.NewDashboardStep(svc.cfg.SprintQuestions)
	if err := step.Enter(gameCtx); err != nil {
		return nil, shared.NewInternalError(err, "Failed to build dashboard")
	}
	ui, err := step.UIModel(gameCtx)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to build dashboard")
	}
	return &ui, nil
}

// ==================== INTERNALS ====================

func (svc *GameService) buildFlow(ctx *game.Context, req dto.StartSessionRequest) (*game.FlowResult, error) {
	switch req.Flow {
	case shared.FlowDailySprint:
		return game.BuildDailySprintFlow(ctx, svc.cfg)
	case shared.FlowCategorySprint:
		if req.Category == "" {
			return nil, shared.NewBadRequestError(nil, "Category is required for a category sprint")
		}
		return game.BuildCategorySprintFlow(ctx, svc.cfg, req.Category)
	case shared.FlowOnboarding:
		return game.BuildOnboardingFlow(ctx, svc.cfg)
	case shared.FlowDemo:
		return game.BuildDemoFlow(ctx, svc.cfg)
	default:
		return nil, shared.NewBadRequestError(nil, "Unknown flow")
	}
}

// applyScreenEvent maps the business outcome of an action onto the screen
// state machine. A mistake-review branch re-enters the quiz loop from the
// summary, which the screen machine only allows via a fresh start.
func (svc *GameService) applyScreenEvent(sess *gameSession, action string, ui game.UIModel) {
	if sess.director.IsComplete() {
		sess.fsm.Apply(game.EventReset)
		return
	}

	switch action {
	case game.ActionSubmitAnswer:
		if ui.Type == game.UITypeFeedback {
			sess.fsm.Apply(game.EventSubmitAnswer)
		}
	case game.ActionNextQuestion:
		if ui.Type == game.UITypeSummary {
			sess.fsm.Apply(game.EventFinishQuiz)
		} else {
			sess.fsm.Apply(game.EventNextQuestion)
		}
	case game.ActionReviewMistakes:
		if ui.Type == game.UITypeQuestion {
			sess.fsm.Apply(game.EventReset)
			sess.fsm.Apply(game.EventStart)
			sess.fsm.Apply(game.EventLoadSuccess)
		}
	}
}

// lookupSession finds the session in memory or restores it from its Redis
// snapshot, re-injecting the live store and profile sink.
func (svc *GameService) lookupSession(userID, sessionID string) (*gameSession, error) {
	svc.mu.Lock()
	sess, ok := svc.sessions[sessionID]
	svc.mu.Unlock()

	if !ok {
		var snap sessionSnapshot
		found, err := svc.redisSvc.GetJSON(goContext.Background(), sessionKeyPrefix+sessionID, &snap)
		if err != nil {
			return nil, shared.NewInternalError(err, "Failed to load session")
		}
		if !found {
			return nil, shared.NewNotFoundError(nil, "Session not found")
		}

		director, err := game.RestoreDirector(snap.Director, svc.contentSvc, svc.profileSvc.SinkFor(snap.UserID))
		if err != nil {
			return nil, shared.NewInternalError(err, "Failed to restore session")
		}

		sess = &gameSession{
			userID:   snap.UserID,
			flow:     snap.Flow,
			director: director,
			fsm:      game.RestoreStateMachine(snap.Screen),
		}

		svc.mu.Lock()
		if existing, ok := svc.sessions[sessionID]; ok {
			sess = existing
		} else {
			svc.sessions[sessionID] = sess
		}
		count := len(svc.sessions)
		svc.mu.Unlock()
		svc.monitoringSvc.SetActiveSessions(count)

		log.WithFields(log.Fields{
			"session_id": sessionID,
			"user_id":    snap.UserID,
		}).Info("session restored from snapshot")
	}

	if sess.userID != userID {
		return nil, shared.NewForbiddenError(nil, "Session belongs to another user")
	}
	return sess, nil
}

// persistSession writes the snapshot. Failures are logged, not returned:
// the in-memory session keeps serving and the next mutation retries.
func (svc *GameService) persistSession(sessionID string, sess *gameSession) {
	snap := sessionSnapshot{
		UserID:   sess.userID,
		Flow:     sess.flow,
		Screen:   sess.fsm.State(),
		Director: sess.director.Snapshot(),
	}
	if err := svc.redisSvc.SetJSON(goContext.Background(), sessionKeyPrefix+sessionID, snap, sessionTTL); err != nil {
		log.WithError(err).WithField("session_id", sessionID).Warn("failed to persist session snapshot")
	}
}

func (svc *GameService) response(sessionID string, sess *gameSession) (*dto.SessionResponse, error) {
	ui, err := sess.director.GetUIModel()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to project session screen")
	}
	return svc.responseWithUI(sessionID, sess, ui)
}

func (svc *GameService) responseWithUI(sessionID string, sess *gameSession, ui game.UIModel) (*dto.SessionResponse, error) {
	return &dto.SessionResponse{
		SessionID: sessionID,
		Screen:    string(sess.fsm.State()),
		Complete:  sess.director.IsComplete(),
		UI:        ui,
	}, nil
}

// loadGameConfig reads the engine tunables from the environment, keeping
// the defaults where a variable is unset or unparsable.
func loadGameConfig() game.Config {
	cfg := game.DefaultConfig()

	if v, err := strconv.Atoi(os.Getenv("SPRINT_QUESTIONS")); err == nil && v > 0 {
		cfg.SprintQuestions = v
	}
	if v, err := strconv.Atoi(os.Getenv("BONUS_SPRINT_QUESTIONS")); err == nil && v > 0 {
		cfg.BonusSprintQuestions = v
	}
	if v, err := strconv.Atoi(os.Getenv("DAILY_GOAL")); err == nil && v > 0 {
		cfg.DailyGoal = v
	}
	if v, err := strconv.Atoi(os.Getenv("MASTERY_THRESHOLD")); err == nil && v > 0 {
		cfg.MasteryThreshold = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("NEW_RATIO"), 64); err == nil && v > 0 && v <= 1 {
		cfg.NewRatio = v
	}
	if v, err := strconv.Atoi(os.Getenv("PASSING_SCORE")); err == nil && v > 0 {
		cfg.PassingScore = v
	}
	if raw := os.Getenv("DEMO_QUESTION_IDS"); raw != "" {
		ids := []string{}
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		cfg.DemoQuestionIDs = ids
	}

	return cfg
}
