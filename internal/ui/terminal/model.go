package terminal

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/aliskhannn/cs-quiz-bot/internal/domain/entities"
)

// Model renders the quiz presenter in a terminal using Bubble Tea.
type Model struct {
	catalog *entities.Catalog
	session entities.Session
	cursor  int
	keys    keyMap
	help    help.Model
	noColor bool
	logger  *zap.Logger
}

// Options configures the terminal model.
type Options struct {
	NoColor bool
	Logger  *zap.Logger
}

// NewModel mounts a fresh presenter on the catalog's first topic.
func NewModel(c *entities.Catalog, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		catalog: c,
		session: entities.NewSession(c),
		keys:    defaultKeyMap(),
		help:    help.New(),
		noColor: opts.NoColor,
		logger:  logger,
	}
}

// Session returns the presenter state.
func (m Model) Session() entities.Session {
	return m.session
}

// Init has nothing to start; the quiz is driven by key presses only.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update maps key presses to presenter actions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Info("quiz closed",
			zap.String("topic", m.session.Topic),
			zap.Int("score", m.session.Score),
		)
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevTopic):
		return m.shiftTopic(-1), nil

	case key.Matches(msg, m.keys.NextTopic):
		return m.shiftTopic(1), nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.optionCount()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Pick):
		option, _ := optionForKey(msg.String())
		return m.selectOption(option), nil

	case key.Matches(msg, m.keys.Toggle):
		return m.selectOption(m.cursor), nil

	case key.Matches(msg, m.keys.Confirm):
		if m.session.Submitted {
			return m.dispatch(entities.Action{Kind: entities.ActionAdvance}), nil
		}
		return m.dispatch(entities.Action{Kind: entities.ActionSubmit}), nil

	case key.Matches(msg, m.keys.Restart):
		return m.dispatch(entities.Action{Kind: entities.ActionRestart}), nil
	}

	return m, nil
}

// View renders the quiz screen.
func (m Model) View() string {
	view := entities.NewView(m.catalog, m.session)

	body := renderQuestion(view, m.cursor, m.noColor)
	if m.session.ShowResults {
		body = renderResults(view, m.noColor)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.noColor),
		renderTabs(view, m.noColor),
		"",
		body,
		"",
		m.help.View(m.keys),
	)
}

func (m Model) selectOption(option int) Model {
	next := m.dispatch(entities.Action{Kind: entities.ActionSelectOption, Option: option})
	if next.session.SelectedOption == option {
		next.cursor = option
	}
	return next
}

// shiftTopic moves to the neighbouring topic, wrapping around the ends.
func (m Model) shiftTopic(delta int) Model {
	n := m.catalog.Len()
	if n == 0 {
		return m
	}

	i := (m.catalog.TopicIndex(m.session.Topic) + delta + n) % n
	t, ok := m.catalog.TopicAt(i)
	if !ok {
		return m
	}

	return m.dispatch(entities.Action{Kind: entities.ActionChangeTopic, Topic: t.Name})
}

// dispatch applies an action and resets the cursor when the question changes.
func (m Model) dispatch(a entities.Action) Model {
	next, changed := entities.Reduce(m.catalog, m.session, a)
	if !changed {
		return m
	}

	m.logger.Debug("quiz action",
		zap.Stringer("action", a.Kind),
		zap.String("topic", next.Topic),
		zap.Int("question", next.QuestionIndex),
	)

	if next.Topic != m.session.Topic || next.QuestionIndex != m.session.QuestionIndex || next.ShowResults != m.session.ShowResults {
		m.cursor = 0
	}
	if next.SelectedOption == entities.NoOption && m.session.SelectedOption != entities.NoOption {
		m.cursor = 0
	}
	m.session = next
	return m
}

func (m Model) optionCount() int {
	q, ok := m.catalog.Question(m.session.Topic, m.session.QuestionIndex)
	if !ok {
		return 0
	}
	return len(q.Options)
}
