package game

// StepResult tells the director what to do after an action. The zero value
// means stay on the current step and re-render it.
type StepResult struct {
	Advance bool
	Branch  Step
}

var (
	// Stay keeps the current step active.
	Stay = StepResult{}
	// Next advances past the current step.
	Next = StepResult{Advance: true}
)

// BranchTo inserts step to run immediately next; the rest of the queue
// resumes after it.
func BranchTo(step Step) StepResult {
	return StepResult{Branch: step}
}

// Step is one unit of a scripted flow. Enter runs exactly once when the
// step becomes current; UIModel must be a pure projection; HandleAction
// mutates step or blackboard state and steers the director.
type Step interface {
	Enter(ctx *Context) error
	UIModel(ctx *Context) (UIModel, error)
	HandleAction(ctx *Context, action string, payload string) (StepResult, error)
}
