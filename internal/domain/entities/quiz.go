package entities

import "errors"

// NoOption marks a session in which no option is selected for the current question.
const NoOption = -1

// ErrSessionNotFound is returned by session stores when a chat has no live session.
var ErrSessionNotFound = errors.New("quiz session not found")

// Session is the view state of one quiz presenter.
// It is the only mutable entity; every transition returns a new value.
type Session struct {
	Topic          string `json:"topic"`           // selected topic name, always present in the catalog
	QuestionIndex  int    `json:"question_index"`  // index of the current question within the topic
	SelectedOption int    `json:"selected_option"` // selected option index or NoOption
	Submitted      bool   `json:"submitted"`       // answer for the current question was submitted
	Score          int    `json:"score"`           // correct answers in the current attempt
	ShowResults    bool   `json:"show_results"`    // the results screen is shown
}

// NewSession creates the initial session: first topic, first question, nothing selected.
func NewSession(c *Catalog) Session {
	return Session{
		Topic:          c.Default().Name,
		SelectedOption: NoOption,
	}
}

// Valid reports whether the session still points into the catalog.
// Sessions read back from storage may predate a change of the question bank.
func (s Session) Valid(c *Catalog) bool {
	t, ok := c.Topic(s.Topic)
	if !ok {
		return false
	}
	if s.QuestionIndex < 0 || s.QuestionIndex >= t.Len() {
		return false
	}
	if s.SelectedOption != NoOption && (s.SelectedOption < 0 || s.SelectedOption >= len(t.Questions[s.QuestionIndex].Options)) {
		return false
	}
	return s.Score >= 0 && s.Score <= t.Len()
}

// HasSelection reports whether an option is selected.
func (s Session) HasSelection() bool {
	return s.SelectedOption != NoOption
}

// ChangeTopic switches to another topic and starts a fresh attempt.
// Unknown topics are ignored.
func (s Session) ChangeTopic(c *Catalog, topic string) (Session, bool) {
	if _, ok := c.Topic(topic); !ok {
		return s, false
	}

	next := Session{
		Topic:          topic,
		SelectedOption: NoOption,
	}
	return next, next != s
}

// SelectOption selects an option of the current question.
// The selection is locked once the answer is submitted.
func (s Session) SelectOption(c *Catalog, option int) (Session, bool) {
	if s.Submitted || s.ShowResults {
		return s, false
	}

	q, ok := c.Question(s.Topic, s.QuestionIndex)
	if !ok || option < 0 || option >= len(q.Options) {
		return s, false
	}

	if s.SelectedOption == option {
		return s, false
	}

	s.SelectedOption = option
	return s, true
}

// Submit checks the selected option and locks the current question.
// It is the only transition that changes the score.
func (s Session) Submit(c *Catalog) (Session, bool) {
	if !s.HasSelection() || s.Submitted || s.ShowResults {
		return s, false
	}

	q, ok := c.Question(s.Topic, s.QuestionIndex)
	if !ok {
		return s, false
	}

	if q.IsCorrect(s.SelectedOption) {
		s.Score++
	}
	s.Submitted = true

	return s, true
}

// Advance moves to the next question, or to the results screen after the last one.
func (s Session) Advance(c *Catalog) (Session, bool) {
	if !s.Submitted || s.ShowResults {
		return s, false
	}

	t, ok := c.Topic(s.Topic)
	if !ok {
		return s, false
	}

	if s.QuestionIndex < t.Len()-1 {
		s.QuestionIndex++
		s.SelectedOption = NoOption
		s.Submitted = false
		return s, true
	}

	s.ShowResults = true
	return s, true
}

// Restart starts the current topic over.
func (s Session) Restart() (Session, bool) {
	next := Session{
		Topic:          s.Topic,
		SelectedOption: NoOption,
	}
	return next, next != s
}

// IsLastQuestion reports whether the current question is the last of the topic.
func (s Session) IsLastQuestion(c *Catalog) bool {
	t, ok := c.Topic(s.Topic)
	return ok && s.QuestionIndex == t.Len()-1
}
