package game

// Blackboard keys shared between steps of one flow.
const (
	keyScore          = "score"
	keyErrors         = "errors"
	keyTotalQuestions = "total_questions"
)

// Context is the per session blackboard. Data is mutated only by the
// current step during Enter and HandleAction.
type Context struct {
	UserID  string
	Store   Store
	Profile ProfileSink
	Data    map[string]interface{}
}

func NewContext(userID string, store Store) *Context {
	return &Context{
		UserID: userID,
		Store:  store,
		Data:   map[string]interface{}{},
	}
}

// ResetData clears the blackboard between flows.
func (c *Context) ResetData() {
	c.Data = map[string]interface{}{}
}

func (c *Context) intValue(key string) int {
	switch v := c.Data[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

func (c *Context) Score() int {
	return c.intValue(keyScore)
}

func (c *Context) SetScore(score int) {
	c.Data[keyScore] = score
}

func (c *Context) AddScore(delta int) {
	c.Data[keyScore] = c.Score() + delta
}

func (c *Context) TotalQuestions() int {
	return c.intValue(keyTotalQuestions)
}

func (c *Context) SetTotalQuestions(total int) {
	c.Data[keyTotalQuestions] = total
}

func (c *Context) Errors() []string {
	switch v := c.Data[keyErrors].(type) {
	case []string:
		return v
	case []interface{}:
		ids := make([]string, 0, len(v))
		for _, item := range v {
			if id, ok := item.(string); ok {
				ids = append(ids, id)
			}
		}
		return ids
	default:
		return nil
	}
}

func (c *Context) SetErrors(ids []string) {
	c.Data[keyErrors] = ids
}

func (c *Context) AppendError(questionID string) {
	c.Data[keyErrors] = append(c.Errors(), questionID)
}

// EnsureCounters seeds the score and error keys if a previous step has not
// already done so.
func (c *Context) EnsureCounters() {
	if _, ok := c.Data[keyScore]; !ok {
		c.SetScore(0)
	}
	if _, ok := c.Data[keyErrors]; !ok {
		c.SetErrors([]string{})
	}
}

// ClearCounters drops score and error state, used when returning to the
// dashboard between quizzes.
func (c *Context) ClearCounters() {
	delete(c.Data, keyScore)
	delete(c.Data, keyErrors)
}
