package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/cs-quiz-bot/internal/domain/entities"
)

// buildQuestionKeyboard builds keyboard for a quiz question.
func buildQuestionKeyboard(v *entities.View) tgbotapi.InlineKeyboardMarkup {
	topic := v.TopicIndex
	question := v.Session.QuestionIndex

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(v.Question.Options)+2)

	// Answered questions collapse the options into a single row of marks.
	var marks []tgbotapi.InlineKeyboardButton
	for i := range v.Question.Options {
		label := markEmoji(v.Mark(i)) + " " + entities.OptionLetter(i)
		btn := tgbotapi.NewInlineKeyboardButtonData(label, buildOptionCallback(topic, question, i))
		if v.Session.Submitted {
			marks = append(marks, btn)
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn))
	}
	if len(marks) > 0 {
		rows = append(rows, marks)
	}

	switch {
	case v.CanSubmit():
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Проверить ответ", buildSubmitCallback(topic, question)),
		))
	case v.Session.Submitted:
		label := "Следующий вопрос ▶️"
		if v.IsLastQuestion() {
			label = "Посмотреть результаты 🏁"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildNextCallback(topic, question)),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📚 Сменить тему", buildTopicsCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildResultsKeyboard builds keyboard for the results screen.
func buildResultsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Пройти тест заново", buildRestartCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Сменить тему", buildTopicsCallback()),
		),
	)
}

// buildTopicsKeyboard builds the topic selector.
// The current topic leads back to the running attempt instead of resetting it.
func buildTopicsKeyboard(v *entities.View) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(v.Topics)+1)

	for i, name := range v.Topics {
		data := buildTopicCallback(i)
		if i == v.TopicIndex {
			name = "✅ " + name
			data = buildBackCallback()
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(name, data),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Назад к тесту", buildBackCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
