package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aliskhannn/cs-quiz-bot/internal/domain/entities"
)

const (
	colorTitle    = lipgloss.Color("33")
	colorMuted    = lipgloss.Color("242")
	colorSelected = lipgloss.Color("39")
	colorCorrect  = lipgloss.Color("42")
	colorWrong    = lipgloss.Color("196")
)

// renderHeader renders the screen title.
func renderHeader(noColor bool) string {
	if noColor {
		return "Тестирование по теме"
	}
	return lipgloss.NewStyle().Bold(true).Foreground(colorTitle).Render("Тестирование по теме")
}

// renderTabs renders the topic selector with the current topic highlighted.
func renderTabs(v entities.View, noColor bool) string {
	tabs := make([]string, 0, len(v.Topics))
	for i, name := range v.Topics {
		if i == v.TopicIndex {
			if noColor {
				tabs = append(tabs, "["+name+"]")
				continue
			}
			tabs = append(tabs, lipgloss.NewStyle().Bold(true).Underline(true).Render(name))
			continue
		}
		tabs = append(tabs, stylize(name, noColor, colorMuted))
	}
	return strings.Join(tabs, "  ")
}

func renderQuestion(v entities.View, cursor int, noColor bool) string {
	lines := []string{
		stylize(fmt.Sprintf("Вопрос %d из %d", v.Session.QuestionIndex+1, v.Total), noColor, colorMuted),
		"",
		v.Question.Prompt,
		"",
	}

	for i, option := range v.Question.Options {
		pointer := "  "
		if i == cursor && !v.Session.Submitted {
			pointer = "› "
		}
		line := markLabel(v.Mark(i)) + " " + entities.OptionLetter(i) + ". " + option
		lines = append(lines, pointer+stylize(line, noColor, markColor(v.Mark(i))))
	}

	if v.Session.Submitted {
		lines = append(lines, "", renderBanner(v, noColor))
	}

	lines = append(lines, "", renderAction(v, noColor))

	return strings.Join(lines, "\n")
}

// renderBanner renders the verdict and explanation of a submitted answer.
func renderBanner(v entities.View, noColor bool) string {
	verdict := stylize("Неправильно!", noColor, colorWrong)
	if v.AnswerCorrect() {
		verdict = stylize("Правильно!", noColor, colorCorrect)
	}
	if v.Question.Explanation == "" {
		return verdict
	}
	return verdict + "\n" + v.Question.Explanation
}

// renderAction renders the label of the enter key.
func renderAction(v entities.View, noColor bool) string {
	switch {
	case v.Session.Submitted && v.IsLastQuestion():
		return "[enter] Посмотреть результаты"
	case v.Session.Submitted:
		return "[enter] Следующий вопрос"
	case v.CanSubmit():
		return "[enter] Проверить ответ"
	default:
		return stylize("[enter] Проверить ответ", noColor, colorMuted)
	}
}

func renderResults(v entities.View, noColor bool) string {
	score := fmt.Sprintf("%d/%d", v.Session.Score, v.Total)
	if !noColor {
		score = lipgloss.NewStyle().Bold(true).Render(score)
	}

	return strings.Join([]string{
		stylize("Результаты теста", noColor, colorTitle),
		"",
		"Ваш результат: " + score,
		v.Tier().Message(),
		"",
		"[r] Пройти тест заново",
	}, "\n")
}

func markLabel(m entities.OptionMark) string {
	switch m {
	case entities.MarkSelected:
		return "(•)"
	case entities.MarkCorrect:
		return "(✓)"
	case entities.MarkIncorrect:
		return "(✗)"
	default:
		return "( )"
	}
}

func markColor(m entities.OptionMark) lipgloss.Color {
	switch m {
	case entities.MarkSelected:
		return colorSelected
	case entities.MarkCorrect:
		return colorCorrect
	case entities.MarkIncorrect:
		return colorWrong
	default:
		return ""
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor || color == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
