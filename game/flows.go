package game

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/kurs-wjo/wjo_api/model"
)

// FlowResult is a built step script plus the empty marker the session
// layer maps onto the load-empty screen transition.
type FlowResult struct {
	Name  string
	Steps []Step
	Empty bool
}

// BuildDailySprintFlow assembles the everyday round: spaced repetition mix
// at sprint size, or the short bonus round once the daily goal is met.
func BuildDailySprintFlow(ctx *Context, cfg Config) (*FlowResult, error) {
	ctx.SetScore(0)
	ctx.SetErrors([]string{})

	profile, err := ctx.Store.GetOrCreateProfile(ctx.UserID)
	if err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}

	limit := cfg.SprintQuestions
	title := "🚀 Codzienny Sprint"
	if profile.IsBonusMode() {
		limit = cfg.BonusSprintQuestions
		title = "🔥 Runda Bonusowa"
	}

	candidates, err := ctx.Store.GetRepetitionCandidates(ctx.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetch repetition candidates: %w", err)
	}

	selector := NewSpacedRepetitionSelector(cfg.MasteryThreshold, cfg.NewRatio)
	questions := selector.Select(candidates, limit)

	log.WithFields(log.Fields{
		"user_id":   ctx.UserID,
		"questions": len(questions),
		"bonus":     profile.IsBonusMode(),
	}).Info("daily sprint generated")

	if len(questions) == 0 {
		return &FlowResult{
			Name:  "daily_sprint",
			Empty: true,
			Steps: []Step{NewTextStep(
				"Gratulacje! 🏆",
				"Opanowałeś cały materiał! Wróć później na powtórkę.",
				"Menu",
			)},
		}, nil
	}

	ctx.SetTotalQuestions(len(questions))
	return &FlowResult{
		Name: "daily_sprint",
		Steps: []Step{
			NewQuestionLoopStep(title, questions),
			NewSummaryStep("Podsumowanie", cfg.PassingScore),
		},
	}, nil
}

// BuildCategorySprintFlow assembles focused practice over one category,
// weakest questions first.
func BuildCategorySprintFlow(ctx *Context, cfg Config, category string) (*FlowResult, error) {
	ctx.SetScore(0)
	ctx.SetErrors([]string{})

	questions, err := ctx.Store.GetQuestionsByCategory(category, ctx.UserID, cfg.SprintQuestions)
	if err != nil {
		return nil, fmt.Errorf("fetch category questions: %w", err)
	}

	log.WithFields(log.Fields{
		"category":  category,
		"questions": len(questions),
	}).Info("category sprint generated")

	if len(questions) == 0 {
		return &FlowResult{
			Name:  "category_sprint",
			Empty: true,
			Steps: []Step{NewTextStep(
				"Pusto",
				fmt.Sprintf("Brak pytań w kategorii: %s", category),
				"Menu",
			)},
		}, nil
	}

	ctx.SetTotalQuestions(len(questions))
	return &FlowResult{
		Name: "category_sprint",
		Steps: []Step{
			NewQuestionLoopStep(fmt.Sprintf("📚 %s", category), questions),
			NewSummaryStep("Podsumowanie", cfg.PassingScore),
		},
	}, nil
}

// BuildOnboardingFlow runs the built-in tutorial and marks onboarding done
// up front so an abandoned tutorial does not repeat forever.
func BuildOnboardingFlow(ctx *Context, cfg Config) (*FlowResult, error) {
	ctx.SetScore(0)
	ctx.SetErrors([]string{})

	tutorial := model.Question{
		ID:            "TUT-01",
		Text:          "To jest pytanie treningowe. Gdzie składować materiały łatwopalne?",
		Options:       json.RawMessage(`{"A":"W strefie bezpiecznej (Zielona)","B":"Przy piecu"}`),
		CorrectOption: "A",
		Explanation:   "Materiały łatwopalne muszą być w strefie wyznaczonej przepisami PPOŻ.",
		Category:      "Tutorial",
	}

	if ctx.Profile != nil {
		if err := ctx.Profile.CompleteOnboarding(); err != nil {
			return nil, fmt.Errorf("mark onboarding complete: %w", err)
		}
	} else {
		profile, err := ctx.Store.GetOrCreateProfile(ctx.UserID)
		if err != nil {
			return nil, fmt.Errorf("ensure profile: %w", err)
		}
		profile.HasCompletedOnboarding = true
		if err := ctx.Store.SaveProfile(profile); err != nil {
			return nil, fmt.Errorf("mark onboarding complete: %w", err)
		}
	}

	ctx.SetTotalQuestions(1)
	return &FlowResult{
		Name: "onboarding",
		Steps: []Step{
			NewTextStep(
				"👋 Witaj w Magazynie!",
				"Jesteś nowym operatorem wózka. Przejdźmy szybkie szkolenie BHP.",
				"Dalej",
			),
			NewQuestionLoopStep("🎓 Szkolenie Wstępne", []model.Question{tutorial}),
			NewTextStep(
				"Szkolenie Zakończone",
				"Jesteś gotowy do pracy!",
				"Rozpocznij Sprint 🚀",
			),
		},
	}, nil
}

const demoIntro = `### 🚀 **Zdasz za pierwszym razem.**
Inteligentna nauka do egzaminu UDT.

💡 **Inteligentne Wyjaśnienia**
Zrozum sens, a nie tylko wkuwaj.

⚠️ **Unikaj Pułapek Egzaminacyjnych**
Ostrzeżenia przed podchwytliwymi pytaniami.

🌍 **PL 🇵🇱 / UA 🇺🇦 / EN 🇬🇧**
Ucz się pytań w swoim języku, żeby zrozumieć. Zdawaj po polsku.
`

// BuildDemoFlow serves the fixed showcase set, no selection algorithm.
func BuildDemoFlow(ctx *Context, cfg Config) (*FlowResult, error) {
	ctx.SetScore(0)
	ctx.SetErrors([]string{})

	questions, err := ctx.Store.GetQuestionsByIDs(cfg.DemoQuestionIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch demo questions: %w", err)
	}

	if len(questions) == 0 {
		return &FlowResult{
			Name:  "demo",
			Empty: true,
			Steps: []Step{NewTextStep(
				"Konfiguracja Demo",
				"Nie znaleziono pytań demo w bazie danych.",
				"Zamknij",
			)},
		}, nil
	}

	ctx.SetTotalQuestions(len(questions))
	return &FlowResult{
		Name: "demo",
		Steps: []Step{
			NewTextStep("", demoIntro, "Rozpocznij Test 🚀"),
			NewQuestionLoopStep("⭐ Demo", questions),
			NewSummaryStep("Podsumowanie", 0),
		},
	}, nil
}
