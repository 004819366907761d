package game

import "errors"

// TextStep shows a static screen with a single continue button. Used for
// onboarding copy, flow intros and end cards.
type TextStep struct {
	Title       string
	Body        string
	ButtonLabel string

	entered bool
}

func NewTextStep(title, body, buttonLabel string) *TextStep {
	if buttonLabel == "" {
		buttonLabel = "Dalej"
	}
	return &TextStep{Title: title, Body: body, ButtonLabel: buttonLabel}
}

func (s *TextStep) Enter(ctx *Context) error {
	s.entered = true
	return nil
}

func (s *TextStep) UIModel(ctx *Context) (UIModel, error) {
	if !s.entered {
		return UIModel{}, errors.New("text step used before enter")
	}
	return UIModel{
		Type: UITypeText,
		Text: &TextPayload{
			Title:       s.Title,
			Body:        s.Body,
			ButtonLabel: s.ButtonLabel,
		},
	}, nil
}

func (s *TextStep) HandleAction(ctx *Context, action string, payload string) (StepResult, error) {
	if !s.entered {
		return Stay, errors.New("text step used before enter")
	}
	if action == ActionNext {
		return Next, nil
	}
	return Stay, nil
}
