// messages.go contains message templates for Telegram.

package telegram

import "strings"

// Error messages.
const (
	msgInternalError  = "Что\\-то пошло не так\\. Попробуйте позже\\."
	msgStaleMessage   = "Это сообщение устарело. Откройте тест командой /quiz."
	msgTopicNotFound  = "Такой темы больше нет."
	msgUnknownCommand = "Неизвестная команда\\.\n\n" + commandList
	msgHint           = "Я понимаю только команды\\.\n\n" + commandList
)

const msgStopped = "Тест остановлен\\. Прогресс текущей попытки сброшен\\.\n\nЧтобы начать заново, отправьте /quiz\\."

const commandList = "/quiz — открыть тест\n" +
	"/topics — выбрать тему\n" +
	"/restart — пройти тему заново\n" +
	"/stop — остановить тест\n" +
	"/help — помощь"

var msgWelcome = welcomeMarkdownV2()

var msgHelp = helpMarkdownV2()

// welcomeMarkdownV2 builds the welcome message safely for MarkdownV2.
func welcomeMarkdownV2() string {
	var sb strings.Builder

	sb.WriteString(bold("CS Quiz Bot"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Проверьте свои знания по информатике: выберите тему, отвечайте на вопросы и смотрите результат в конце."))
	sb.WriteString("\n\n")
	sb.WriteString(md("Нажмите на вариант ответа, затем «Проверить ответ». После проверки появится пояснение."))

	return sb.String()
}

func helpMarkdownV2() string {
	var sb strings.Builder

	sb.WriteString(bold("Команды"))
	sb.WriteString("\n\n")
	sb.WriteString(commandList)

	return sb.String()
}
