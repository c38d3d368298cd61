package entities

// OptionsPerQuestion is the number of answer options every question carries.
const OptionsPerQuestion = 4

// Question is a single multiple-choice question of a topic.
type Question struct {
	Prompt        string   `yaml:"prompt"`      // question text shown to the user
	Options       []string `yaml:"options"`     // exactly four answer options
	CorrectAnswer int      `yaml:"correct"`     // index of the correct option (0-3)
	Explanation   string   `yaml:"explanation"` // shown after the answer is submitted
}

// IsCorrect reports whether the option index is the correct answer.
func (q Question) IsCorrect(option int) bool {
	return option == q.CorrectAnswer
}

// Topic is a named, ordered list of questions.
type Topic struct {
	Name      string     `yaml:"name"`
	Questions []Question `yaml:"questions"`
}

// Len returns the number of questions in the topic.
func (t Topic) Len() int {
	return len(t.Questions)
}
