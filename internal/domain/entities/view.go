package entities

// OptionMark is the visual classification of an answer option.
type OptionMark int

const (
	MarkNeutral OptionMark = iota
	MarkSelected
	MarkCorrect
	MarkIncorrect
)

// ResultTier buckets a finished attempt for the results message.
type ResultTier int

const (
	TierRetry ResultTier = iota
	TierGood
	TierPerfect
)

// Message returns the results screen text of the tier.
func (t ResultTier) Message() string {
	switch t {
	case TierPerfect:
		return "Отлично! Вы ответили на все вопросы правильно!"
	case TierGood:
		return "Хороший результат! Но есть над чем поработать."
	default:
		return "Попробуйте еще раз, чтобы улучшить свой результат."
	}
}

// TierFor returns the result tier of score out of total.
// Half or more, counted exactly (2*score >= total), is a good result.
func TierFor(score, total int) ResultTier {
	switch {
	case score == total:
		return TierPerfect
	case 2*score >= total:
		return TierGood
	default:
		return TierRetry
	}
}

// View is everything a host needs to draw the presenter.
type View struct {
	Session    Session
	Topics     []string // topic names for the selector
	TopicIndex int      // display position of the current topic
	Question   Question // current question, zero on the results screen of an empty topic
	Total      int      // number of questions in the topic
}

// NewView derives the render contract from a session.
func NewView(c *Catalog, s Session) View {
	t, _ := c.Topic(s.Topic)
	q, _ := c.Question(s.Topic, s.QuestionIndex)

	return View{
		Session:    s,
		Topics:     c.Topics(),
		TopicIndex: c.TopicIndex(s.Topic),
		Question:   q,
		Total:      t.Len(),
	}
}

// Mark classifies option i of the current question.
func (v View) Mark(i int) OptionMark {
	s := v.Session
	switch {
	case s.Submitted && i == v.Question.CorrectAnswer:
		return MarkCorrect
	case s.Submitted && i == s.SelectedOption:
		return MarkIncorrect
	case i == s.SelectedOption:
		return MarkSelected
	default:
		return MarkNeutral
	}
}

// AnswerCorrect reports whether the submitted answer was correct.
func (v View) AnswerCorrect() bool {
	return v.Session.Submitted && v.Question.IsCorrect(v.Session.SelectedOption)
}

// CanSubmit reports whether the submit control is enabled.
func (v View) CanSubmit() bool {
	s := v.Session
	return s.HasSelection() && !s.Submitted && !s.ShowResults
}

// IsLastQuestion reports whether advancing leads to the results screen.
func (v View) IsLastQuestion() bool {
	return v.Session.QuestionIndex == v.Total-1
}

// Tier returns the result tier of the attempt.
func (v View) Tier() ResultTier {
	return TierFor(v.Session.Score, v.Total)
}

// OptionLetter returns the A-D label of option i.
func OptionLetter(i int) string {
	return string(rune('A' + i))
}
