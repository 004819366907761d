package shared

const (
	UserID = "user_id"

	FlowDailySprint    = "daily_sprint"
	FlowCategorySprint = "category_sprint"
	FlowOnboarding     = "onboarding"
	FlowDemo           = "demo"

	LanguagePolish    = "pl"
	LanguageEnglish   = "en"
	LanguageUkrainian = "uk"
	LanguageGeorgian  = "ka"
)

// OptionKeys is the fixed answer alphabet for multiple choice questions.
var OptionKeys = []string{"A", "B", "C", "D"}

// NormalizeLanguage maps an arbitrary code onto the supported set,
// falling back to Polish.
func NormalizeLanguage(code string) string {
	switch code {
	case LanguagePolish, LanguageEnglish, LanguageUkrainian, LanguageGeorgian:
		return code
	default:
		return LanguagePolish
	}
}

// IsValidOptionKey reports whether key is part of the answer alphabet.
func IsValidOptionKey(key string) bool {
	for _, k := range OptionKeys {
		if k == key {
			return true
		}
	}
	return false
}
