package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/cs-quiz-bot/internal/domain/entities"
)

// screen selects which face of the quiz message is drawn.
type screen int

const (
	screenQuiz screen = iota
	screenTopics
)

// renderScreen renders the quiz message text with its keyboard.
func renderScreen(v *entities.View, s screen) (string, tgbotapi.InlineKeyboardMarkup) {
	if s == screenTopics {
		return renderTopics(v), buildTopicsKeyboard(v)
	}

	if v.Session.ShowResults {
		return renderResults(v), buildResultsKeyboard()
	}

	return renderQuestion(v), buildQuestionKeyboard(v)
}

func renderQuestion(v *entities.View) string {
	var sb strings.Builder

	sb.WriteString(bold("Тестирование по теме"))
	sb.WriteString("\n")
	sb.WriteString(italic(v.Session.Topic))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("Вопрос %d из %d", v.Session.QuestionIndex+1, v.Total)))
	sb.WriteString("\n\n")
	sb.WriteString(bold(v.Question.Prompt))
	sb.WriteString("\n\n")

	for i, option := range v.Question.Options {
		sb.WriteString(markEmoji(v.Mark(i)))
		sb.WriteString(" ")
		sb.WriteString(md(entities.OptionLetter(i) + ". " + option))
		sb.WriteString("\n")
	}

	if v.Session.Submitted {
		sb.WriteString("\n")
		if v.AnswerCorrect() {
			sb.WriteString("✅ " + bold("Правильно!"))
		} else {
			sb.WriteString("❌ " + bold("Неправильно!"))
		}
		if v.Question.Explanation != "" {
			sb.WriteString("\n")
			sb.WriteString(md(v.Question.Explanation))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func renderResults(v *entities.View) string {
	var sb strings.Builder

	sb.WriteString(bold("Результаты теста"))
	sb.WriteString("\n")
	sb.WriteString(italic(v.Session.Topic))
	sb.WriteString("\n\n")
	sb.WriteString(md("Ваш результат: "))
	sb.WriteString(bold(fmt.Sprintf("%d/%d", v.Session.Score, v.Total)))
	sb.WriteString("\n\n")
	sb.WriteString(md(v.Tier().Message()))

	return sb.String()
}

func renderTopics(v *entities.View) string {
	var sb strings.Builder

	sb.WriteString(bold("📚 Выберите тему"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Текущая тема: "))
	sb.WriteString(italic(v.Session.Topic))
	sb.WriteString("\n")
	sb.WriteString(md("При смене темы тест начнётся заново."))

	return sb.String()
}

// markEmoji returns the visual marker of an option.
func markEmoji(m entities.OptionMark) string {
	switch m {
	case entities.MarkSelected:
		return "🔘"
	case entities.MarkCorrect:
		return "✅"
	case entities.MarkIncorrect:
		return "❌"
	default:
		return "▫️"
	}
}
