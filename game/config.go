package game

// Config groups the tunables of the selection and flow logic. Values come
// from the environment at service start; DefaultConfig is the fallback.
type Config struct {
	SprintQuestions      int
	BonusSprintQuestions int
	DailyGoal            int
	MasteryThreshold     int
	NewRatio             float64
	PassingScore         int
	DemoQuestionIDs      []string
}

func DefaultConfig() Config {
	return Config{
		SprintQuestions:      15,
		BonusSprintQuestions: 5,
		DailyGoal:            3,
		MasteryThreshold:     1,
		NewRatio:             0.6,
		PassingScore:         11,
	}
}

// Categories of the certification question bank, in dashboard order.
var Categories = []string{
	"Prawo i Dozór Techniczny",
	"Bezpieczeństwo i Organizacja Pracy",
	"Budowa i Parametry Techniczne",
	"Diagramy Udźwigu i Ładunki",
	"Napęd i Zasilanie",
	"Wyposażenie i Kontrolki",
}

var categoryIcons = map[string]string{
	"Prawo i Dozór Techniczny":           "⚖️",
	"Bezpieczeństwo i Organizacja Pracy": "🦺",
	"Budowa i Parametry Techniczne":      "🔧",
	"Diagramy Udźwigu i Ładunki":         "📊",
	"Napęd i Zasilanie":                  "🔋",
	"Wyposażenie i Kontrolki":            "🎛️",
}

// CategoryIcon returns the dashboard icon for a category, with a neutral
// fallback for unknown labels.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return "📦"
}
