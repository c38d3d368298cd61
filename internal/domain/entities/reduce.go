package entities

// ActionKind identifies a user action on the quiz presenter.
type ActionKind int

const (
	// ActionChangeTopic selects another topic.
	ActionChangeTopic ActionKind = iota
	// ActionSelectOption selects an answer option.
	ActionSelectOption
	// ActionSubmit submits the selected option.
	ActionSubmit
	// ActionAdvance moves to the next question or the results.
	ActionAdvance
	// ActionRestart starts the topic over.
	ActionRestart
)

// String returns the action name used in logs.
func (k ActionKind) String() string {
	switch k {
	case ActionChangeTopic:
		return "change_topic"
	case ActionSelectOption:
		return "select_option"
	case ActionSubmit:
		return "submit"
	case ActionAdvance:
		return "advance"
	case ActionRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Position pins an action to the question it was rendered for.
type Position struct {
	Topic    string
	Question int
}

// Action is a single user event.
type Action struct {
	Kind   ActionKind
	Topic  string    // target topic for ActionChangeTopic
	Option int       // option index for ActionSelectOption
	At     *Position // when set, the action is dropped unless the session is still there
}

// Reduce applies an action to the session and reports whether the state changed.
func Reduce(c *Catalog, s Session, a Action) (Session, bool) {
	if a.At != nil && (a.At.Topic != s.Topic || a.At.Question != s.QuestionIndex) {
		return s, false
	}

	switch a.Kind {
	case ActionChangeTopic:
		return s.ChangeTopic(c, a.Topic)
	case ActionSelectOption:
		return s.SelectOption(c, a.Option)
	case ActionSubmit:
		return s.Submit(c)
	case ActionAdvance:
		return s.Advance(c)
	case ActionRestart:
		return s.Restart()
	default:
		return s, false
	}
}
