package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/cs-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/cs-quiz-bot/internal/repository"
	"github.com/aliskhannn/cs-quiz-bot/internal/service"
	"github.com/aliskhannn/cs-quiz-bot/internal/storage"
)

const testChatID int64 = 100

// fakeBot records everything the handler sends to Telegram.
type fakeBot struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	lastID   int
	updates  chan tgbotapi.Update
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.sent = append(b.sent, c)
	if _, ok := c.(tgbotapi.MessageConfig); ok {
		b.lastID++
		return tgbotapi.Message{MessageID: b.lastID}, nil
	}
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.requests = append(b.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) edits() []tgbotapi.EditMessageTextConfig {
	var out []tgbotapi.EditMessageTextConfig
	for _, c := range b.sent {
		if e, ok := c.(tgbotapi.EditMessageTextConfig); ok {
			out = append(out, e)
		}
	}
	return out
}

func (b *fakeBot) messages() []tgbotapi.MessageConfig {
	var out []tgbotapi.MessageConfig
	for _, c := range b.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, m)
		}
	}
	return out
}

func (b *fakeBot) answers() []tgbotapi.CallbackConfig {
	var out []tgbotapi.CallbackConfig
	for _, c := range b.requests {
		if a, ok := c.(tgbotapi.CallbackConfig); ok {
			out = append(out, a)
		}
	}
	return out
}

func newTestHandler(t *testing.T) (*Handler, *fakeBot) {
	t.Helper()

	catalog, err := repository.LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	bot := &fakeBot{updates: make(chan tgbotapi.Update, 8)}
	quiz := service.NewQuizService(catalog, storage.NewSessionStorage())

	return NewHandler(bot, zap.NewNop(), quiz, storage.NewMessageStorage()), bot
}

func commandUpdate(text string) tgbotapi.Update {
	cmd := strings.Fields(text)[0]
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 1000,
			From:      &tgbotapi.User{ID: testChatID},
			Chat:      &tgbotapi.Chat{ID: testChatID},
			Text:      text,
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(cmd)},
			},
		},
	}
}

func callbackUpdate(messageID int, data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb",
			From: &tgbotapi.User{ID: testChatID},
			Message: &tgbotapi.Message{
				MessageID: messageID,
				Chat:      &tgbotapi.Chat{ID: testChatID},
			},
			Data: data,
		},
	}
}

func keyboardData(kb *tgbotapi.InlineKeyboardMarkup) []string {
	var out []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			if btn.CallbackData != nil {
				out = append(out, *btn.CallbackData)
			}
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// TestQuizCommandSendsFirstQuestion verifies /quiz draws the default topic's first question.
func TestQuizCommandSendsFirstQuestion(t *testing.T) {
	h, bot := newTestHandler(t)

	h.handleUpdate(context.Background(), commandUpdate("/quiz"))

	msgs := bot.messages()
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	msg := msgs[0]
	if msg.ParseMode != tgbotapi.ModeMarkdownV2 {
		t.Fatalf("expected MarkdownV2, got %q", msg.ParseMode)
	}
	if !strings.Contains(msg.Text, "Вопрос 1 из 2") || !strings.Contains(msg.Text, "Алгоритмы сортировки") {
		t.Fatalf("unexpected question text %q", msg.Text)
	}

	kb, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("expected inline keyboard, got %T", msg.ReplyMarkup)
	}
	data := keyboardData(&kb)
	if contains(data, buildSubmitCallback(0, 0)) {
		t.Fatalf("submit must not be offered without a selection: %v", data)
	}
	for i := 0; i < entities.OptionsPerQuestion; i++ {
		if !contains(data, buildOptionCallback(0, 0, i)) {
			t.Fatalf("missing option %d button: %v", i, data)
		}
	}
	if !contains(data, buildTopicsCallback()) {
		t.Fatalf("missing topic selector button: %v", data)
	}
}

// TestAnswerFlowEditsMessage walks select, submit and advance through callbacks.
func TestAnswerFlowEditsMessage(t *testing.T) {
	h, bot := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, commandUpdate("/quiz"))

	h.handleUpdate(ctx, callbackUpdate(1, buildOptionCallback(0, 0, 0)))
	edits := bot.edits()
	if len(edits) != 1 {
		t.Fatalf("expected one edit after selecting, got %d", len(edits))
	}
	if !contains(keyboardData(edits[0].ReplyMarkup), buildSubmitCallback(0, 0)) {
		t.Fatalf("expected submit button after selecting")
	}

	h.handleUpdate(ctx, callbackUpdate(1, buildSubmitCallback(0, 0)))
	edits = bot.edits()
	if len(edits) != 2 || !strings.Contains(edits[1].Text, "Правильно") {
		t.Fatalf("expected correct banner, got %+v", edits)
	}
	if !contains(keyboardData(edits[1].ReplyMarkup), buildNextCallback(0, 0)) {
		t.Fatalf("expected next button after submitting")
	}

	h.handleUpdate(ctx, callbackUpdate(1, buildNextCallback(0, 0)))
	edits = bot.edits()
	if len(edits) != 3 || !strings.Contains(edits[2].Text, "Вопрос 2 из 2") {
		t.Fatalf("expected second question, got %+v", edits)
	}

	if got := len(bot.answers()); got != 3 {
		t.Fatalf("expected every callback to be answered, got %d answers", got)
	}
}

// TestResultsScreen verifies the final screen shows the score and tier message.
func TestResultsScreen(t *testing.T) {
	h, bot := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, commandUpdate("/quiz"))
	for _, data := range []string{
		buildOptionCallback(0, 0, 0),
		buildSubmitCallback(0, 0),
		buildNextCallback(0, 0),
		buildOptionCallback(0, 1, 0),
		buildSubmitCallback(0, 1),
		buildNextCallback(0, 1),
	} {
		h.handleUpdate(ctx, callbackUpdate(1, data))
	}

	edits := bot.edits()
	last := edits[len(edits)-1]
	if !strings.Contains(last.Text, "1/2") {
		t.Fatalf("expected score 1/2, got %q", last.Text)
	}
	if !strings.Contains(last.Text, md(entities.TierGood.Message())) {
		t.Fatalf("expected good tier message, got %q", last.Text)
	}
	if !contains(keyboardData(last.ReplyMarkup), buildRestartCallback()) {
		t.Fatalf("expected restart button on results screen")
	}

	h.handleUpdate(ctx, callbackUpdate(1, buildRestartCallback()))
	edits = bot.edits()
	if !strings.Contains(edits[len(edits)-1].Text, "Вопрос 1 из 2") {
		t.Fatalf("expected restart to return to the first question")
	}
}

// TestUnchangedCallbackDoesNotEdit verifies no-op presses only answer the callback.
func TestUnchangedCallbackDoesNotEdit(t *testing.T) {
	h, bot := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, commandUpdate("/quiz"))
	h.handleUpdate(ctx, callbackUpdate(1, buildOptionCallback(0, 0, 2)))
	h.handleUpdate(ctx, callbackUpdate(1, buildOptionCallback(0, 0, 2)))
	h.handleUpdate(ctx, callbackUpdate(1, buildNextCallback(0, 0)))

	if got := len(bot.edits()); got != 1 {
		t.Fatalf("expected a single edit, got %d", got)
	}
	if got := len(bot.answers()); got != 3 {
		t.Fatalf("expected three answered callbacks, got %d", got)
	}
}

// TestStaleCallbackIsDropped verifies presses rendered for another question are ignored.
func TestStaleCallbackIsDropped(t *testing.T) {
	h, bot := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, commandUpdate("/quiz"))
	h.handleUpdate(ctx, callbackUpdate(1, buildOptionCallback(0, 1, 1)))
	h.handleUpdate(ctx, callbackUpdate(1, buildOptionCallback(1, 0, 1)))

	if got := len(bot.edits()); got != 0 {
		t.Fatalf("expected stale presses to be ignored, got %d edits", got)
	}
}

// TestOldMessageCallbackIsRejected verifies only the latest quiz message stays interactive.
func TestOldMessageCallbackIsRejected(t *testing.T) {
	h, bot := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, commandUpdate("/quiz"))
	h.handleUpdate(ctx, commandUpdate("/quiz"))

	var cleared bool
	for _, c := range bot.requests {
		if e, ok := c.(tgbotapi.EditMessageReplyMarkupConfig); ok && e.MessageID == 1 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected keyboard of the previous quiz message to be cleared")
	}

	h.handleUpdate(ctx, callbackUpdate(1, buildOptionCallback(0, 0, 0)))

	if got := len(bot.edits()); got != 0 {
		t.Fatalf("expected no edits for an old message, got %d", got)
	}
	answers := bot.answers()
	if len(answers) != 1 || answers[0].Text != msgStaleMessage {
		t.Fatalf("expected stale notice, got %+v", answers)
	}
}

// TestTopicSelector verifies switching topics through the selector.
func TestTopicSelector(t *testing.T) {
	h, bot := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, commandUpdate("/quiz"))
	h.handleUpdate(ctx, callbackUpdate(1, buildTopicsCallback()))

	edits := bot.edits()
	if len(edits) != 1 {
		t.Fatalf("expected selector edit, got %d", len(edits))
	}
	data := keyboardData(edits[0].ReplyMarkup)
	if !contains(data, buildTopicCallback(1)) || !contains(data, buildTopicCallback(2)) {
		t.Fatalf("expected other topics in selector: %v", data)
	}
	if contains(data, buildTopicCallback(0)) {
		t.Fatalf("current topic must lead back instead of resetting: %v", data)
	}

	h.handleUpdate(ctx, callbackUpdate(1, buildTopicCallback(1)))
	edits = bot.edits()
	last := edits[len(edits)-1]
	if !strings.Contains(last.Text, "Основы Python") || !strings.Contains(last.Text, "Вопрос 1 из 2") {
		t.Fatalf("expected first question of the new topic, got %q", last.Text)
	}
}

// TestMalformedCallbackIsAnswered verifies garbage data only clears the spinner.
func TestMalformedCallbackIsAnswered(t *testing.T) {
	h, bot := newTestHandler(t)

	h.handleUpdate(context.Background(), callbackUpdate(1, "quiz:opt:x"))

	if len(bot.sent) != 0 {
		t.Fatalf("expected nothing sent, got %d", len(bot.sent))
	}
	if len(bot.answers()) != 1 {
		t.Fatalf("expected the callback to be answered")
	}
}

// TestStopCommand verifies /stop discards the presenter and the live message.
func TestStopCommand(t *testing.T) {
	h, bot := newTestHandler(t)
	ctx := context.Background()

	h.handleUpdate(ctx, commandUpdate("/quiz"))
	h.handleUpdate(ctx, callbackUpdate(1, buildOptionCallback(0, 0, 1)))
	h.handleUpdate(ctx, commandUpdate("/stop"))

	if _, ok := h.messages.Get(testChatID); ok {
		t.Fatalf("expected live message to be forgotten")
	}
	msgs := bot.messages()
	if msgs[len(msgs)-1].Text != msgStopped {
		t.Fatalf("expected stop message, got %q", msgs[len(msgs)-1].Text)
	}

	h.handleUpdate(ctx, commandUpdate("/quiz"))
	msgs = bot.messages()
	if strings.Contains(msgs[len(msgs)-1].Text, "🔘") {
		t.Fatalf("expected a fresh attempt after stop")
	}
}

// TestUnknownCommand verifies unknown commands get the command list.
func TestUnknownCommand(t *testing.T) {
	h, bot := newTestHandler(t)

	h.handleUpdate(context.Background(), commandUpdate("/random"))

	msgs := bot.messages()
	if len(msgs) != 1 || msgs[0].Text != msgUnknownCommand {
		t.Fatalf("expected unknown command reply, got %+v", msgs)
	}
}

type failingQuiz struct{}

var errBroken = errors.New("broken")

func (failingQuiz) TopicAt(int) (string, bool) { return "", false }
func (failingQuiz) Start(context.Context, int64) (*entities.View, error) {
	return nil, errBroken
}
func (failingQuiz) Dispatch(context.Context, int64, entities.Action) (*entities.View, bool, error) {
	return nil, false, errBroken
}
func (failingQuiz) Restart(context.Context, int64) (*entities.View, bool, error) {
	return nil, false, errBroken
}
func (failingQuiz) Stop(context.Context, int64) error { return errBroken }

// TestServiceErrorRepliesInternalError verifies failures surface as a generic reply.
func TestServiceErrorRepliesInternalError(t *testing.T) {
	bot := &fakeBot{}
	h := NewHandler(bot, zap.NewNop(), failingQuiz{}, storage.NewMessageStorage())
	ctx := context.Background()

	h.handleUpdate(ctx, commandUpdate("/quiz"))
	h.handleUpdate(ctx, callbackUpdate(1, buildRestartCallback()))

	msgs := bot.messages()
	if len(msgs) != 2 {
		t.Fatalf("expected two error replies, got %d", len(msgs))
	}
	for _, m := range msgs {
		if m.Text != msgInternalError {
			t.Fatalf("expected internal error reply, got %q", m.Text)
		}
	}
}

// TestRunStopsWhenUpdatesClose verifies the polling loop drains and returns.
func TestRunStopsWhenUpdatesClose(t *testing.T) {
	h, bot := newTestHandler(t)

	bot.updates <- commandUpdate("/start")
	close(bot.updates)

	if err := h.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	msgs := bot.messages()
	if len(msgs) != 2 || msgs[0].Text != msgWelcome {
		t.Fatalf("expected welcome and quiz messages, got %d", len(msgs))
	}
}
