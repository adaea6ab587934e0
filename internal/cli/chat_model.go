package cli

import (
	"context"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type chatKeyMap struct {
	Submit key.Binding
	Quit   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Clear  key.Binding
}

func defaultChatKeys() chatKeyMap {
	return chatKeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "отправить")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "выход")),
		Prev:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "история")),
		Next:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "история")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "стереть")),
	}
}

// replyMsg carries the result of a turn computed off the UI loop.
type replyMsg struct {
	result turnResult
	err    error
}

// chatModel is the bubbletea model of the interactive chat. Answers are
// printed above the prompt with tea.Println so the terminal scrollback
// keeps the conversation.
type chatModel struct {
	ctx    context.Context
	app    *App
	userID string
	name   string

	input textinput.Model
	keys  chatKeyMap
	width int

	busy     bool
	quitting bool

	history    []string
	historyIdx int
}

func newChatModel(ctx context.Context, app *App, userID, name string) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "например: хочу борщ"
	ti.CharLimit = 500

	hist := loadHistory(app.HistoryPath)
	return chatModel{
		ctx:        ctx,
		app:        app,
		userID:     userID,
		name:       name,
		input:      ti,
		keys:       defaultChatKeys(),
		history:    hist,
		historyIdx: len(hist),
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatWelcome(m.name, shortcutHelp())),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-len([]rune(m.promptLabel()))-4, 10)
		return m, nil

	case replyMsg:
		m.busy = false
		return m.showReply(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case m.busy:
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Prev):
			m.historyUp()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.historyDown()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	if m.quitting {
		return formatter.Dim("До свидания!") + "\n"
	}
	if m.busy {
		return m.prompt() + formatter.Dim("…")
	}
	return m.prompt() + m.input.View()
}

func (m chatModel) promptLabel() string {
	if m.name != "" {
		return m.name
	}
	return "restobot"
}

func (m chatModel) prompt() string {
	return formatter.StylePurple.Render(m.promptLabel()) + " " + formatter.Dim("❯") + " "
}

func (m chatModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}
	m.addHistory(line)

	if s, ok := lookupShortcut(line); ok && s.quit {
		m.quitting = true
		return m, tea.Quit
	}

	m.busy = true
	ctx, bot, userID := m.ctx, m.app.Bot, m.userID
	return m, tea.Sequence(
		tea.Println(formatter.FormatUserLine(m.name, line)),
		func() tea.Msg {
			res, err := runTurn(ctx, bot, userID, line)
			return replyMsg{result: res, err: err}
		},
	)
}

func (m chatModel) showReply(msg replyMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.app.logger().Error("turn failed", zap.String("user", m.userID), zap.Error(msg.err))
		return m, tea.Println(formatter.FormatError(msg.err))
	}
	if msg.result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	cmds := []tea.Cmd{tea.Println(formatter.FormatReply(msg.result.Reply))}
	if msg.result.FollowUp != "" {
		cmds = append(cmds, tea.Println(formatter.FormatFollowUp(msg.result.FollowUp)))
	}
	return m, tea.Sequence(cmds...)
}

func (m *chatModel) addHistory(line string) {
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
	appendHistory(m.app.HistoryPath, line)
}

func (m *chatModel) historyUp() {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	}
}

func (m *chatModel) historyDown() {
	if m.historyIdx < len(m.history)-1 {
		m.historyIdx++
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
		return
	}
	m.historyIdx = len(m.history)
	m.input.Reset()
}
