package game

import (
	log "github.com/sirupsen/logrus"
)

// Director sequences the steps of one flow. It owns the pending queue and
// the single current step; branching inserts at the queue front and parks
// the interrupted step right behind it, so the original script resumes
// once the branch runs out.
type Director struct {
	ctx *Context

	queue    []Step
	current  Step
	complete bool
}

func NewDirector(ctx *Context) *Director {
	return &Director{ctx: ctx}
}

func (d *Director) Context() *Context {
	return d.ctx
}

func (d *Director) IsComplete() bool {
	return d.complete
}

// StartFlow replaces any running flow with the given step script and
// advances into its first step.
func (d *Director) StartFlow(name string, steps []Step) error {
	log.WithFields(log.Fields{
		"flow":    name,
		"steps":   len(steps),
		"user_id": d.ctx.UserID,
	}).Info("starting flow")

	d.queue = steps
	d.current = nil
	d.complete = false
	return d.advance()
}

// GetUIModel projects the current step, or the empty sentinel once the
// flow has run out of steps.
func (d *Director) GetUIModel() (UIModel, error) {
	if d.current != nil {
		return d.current.UIModel(d.ctx)
	}
	return UIModel{
		Type:  UITypeEmpty,
		Empty: &EmptyPayload{Message: "Brak aktywnej rundy"},
	}, nil
}

// HandleAction routes one player action into the current step and applies
// the step's verdict. With no current step this is a reported no-op.
func (d *Director) HandleAction(action string, payload string) error {
	if d.current == nil {
		log.WithFields(log.Fields{
			"action":   action,
			"complete": d.complete,
		}).Error("action received with no active step")
		return nil
	}

	result, err := d.current.HandleAction(d.ctx, action, payload)
	if err != nil {
		return err
	}

	if result.Branch != nil {
		// The branching step is not consumed; it resumes after the branch.
		d.queue = append([]Step{result.Branch, d.current}, d.queue...)
		return d.advance()
	}
	if result.Advance {
		return d.advance()
	}
	return nil
}

func (d *Director) advance() error {
	if len(d.queue) == 0 {
		log.WithField("user_id", d.ctx.UserID).Info("flow finished")
		d.current = nil
		d.complete = true
		return nil
	}

	d.current = d.queue[0]
	d.queue = d.queue[1:]
	return d.current.Enter(d.ctx)
}
