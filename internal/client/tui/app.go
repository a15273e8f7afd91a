// internal/client/tui/app.go
package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"chatline/internal/client/compose"
	"chatline/internal/client/logging"
	"chatline/internal/client/models"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/samber/lo"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	tabStyle = headerStyle.
			Background(lipgloss.Color("#383838"))

	timestampStyleBase = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	conversationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFD700")).
				PaddingRight(1)

	usernameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#874BFD")).
			PaddingRight(1).
			Width(15).
			Align(lipgloss.Left)

	contentStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2A2A3A"))
)

var (
	errMissingRecipient = errors.New("add a recipient before sending")
	errEmptyMessage     = errors.New("message is empty")
)

type Options struct {
	UserName string
	History  []models.Message
	Compose  ComposeOptions
}

type Model struct {
	viewport viewport.Model
	box      *ComposeBox
	state    *compose.State
	status   *StatusView
	keys     KeyMap
	help     help.Model
	messages []models.Message
	selected int
	userName string
	width    int
	height   int
}

func NewModel(opts Options) Model {
	// get term size
	width, height, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		width = 80 // Fallback
		height = 24
	}

	box := NewComposeBox(opts.Compose)
	m := Model{
		viewport: viewport.New(width, height-4),
		box:      box,
		state:    compose.New(box, box.Pills(), box),
		status:   NewStatusView(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		messages: append([]models.Message(nil), opts.History...),
		selected: len(opts.History) - 1,
		userName: opts.UserName,
	}
	m.resize(width, height)
	return m
}

// State exposes the compose state of the session.
func (m Model) State() *compose.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.state.IsComposing() {
			return m, m.updateComposing(msg)
		}
		return m, m.updateBrowsing(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case models.MessageSent:
		m.messages = append(m.messages, msg.Message)
		m.selected = len(m.messages) - 1
		m.updateContent()
		return m, nil
	}

	if m.state.IsComposing() {
		return m, m.box.Update(msg)
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) updateBrowsing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.NewChannel):
		m.openCompose(compose.MessageTypeChannel)
	case key.Matches(msg, m.keys.NewDirect):
		m.openCompose(compose.MessageTypeDirect)
	case key.Matches(msg, m.keys.Reply):
		sel, ok := m.selectedMessage()
		if !ok {
			return nil
		}
		t := compose.MessageTypeDirect
		if sel.IsChannel() {
			t = compose.MessageTypeChannel
		}
		m.openCompose(t)
		if err := m.box.Focus(compose.ContentControl); err != nil {
			m.fail(err)
		}
	}
	return nil
}

func (m *Model) updateComposing(msg tea.KeyMsg) tea.Cmd {
	focusedID, _ := m.box.FocusedControl()

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeCompose()
		return nil
	case key.Matches(msg, m.keys.NextField):
		m.box.FocusNext()
		return nil
	case key.Matches(msg, m.keys.PrevField):
		m.box.FocusPrev()
		return nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	switch msg.Type {
	case tea.KeyUp, tea.KeyDown:
		empty, err := m.state.IsFocusInEmptyCompose()
		if err != nil {
			m.fail(err)
			return nil
		}
		if empty {
			if msg.Type == tea.KeyUp {
				m.moveSelection(-1)
			} else {
				m.moveSelection(1)
			}
			return nil
		}

	case tea.KeyBackspace:
		if focusedID == compose.ContentControl {
			atStart, err := m.state.CursorAtStartOfEmptyCompose()
			if err != nil {
				m.fail(err)
				return nil
			}
			if atStart {
				m.box.FocusPrev()
				return nil
			}
		}
	}

	if focusedID != compose.ContentControl && editsValue(focusedID, msg) {
		m.state.SetRecipientEditedManually(true)
	}
	return m.box.Update(msg)
}

func (m *Model) openCompose(t compose.MessageType) {
	m.state.SetMessageType(t)
	m.state.SetRecipientEditedManually(false)
	m.box.Open(t)
	m.autofill()
	m.resize(m.width, m.height)

	logging.Logger.Info().
		Str("session", m.box.SessionID()).
		Str("type", t.String()).
		Msg("compose opened")
}

func (m *Model) closeCompose() {
	logging.Logger.Info().
		Str("session", m.box.SessionID()).
		Str("type", m.state.MessageType().String()).
		Msg("compose closed")

	m.box.Close()
	m.state.Reset()
	m.resize(m.width, m.height)
}

// autofill copies the recipient of the selected message into the compose
// box unless the user already typed one.
func (m *Model) autofill() {
	if m.state.IsRecipientEditedManually() {
		return
	}
	sel, ok := m.selectedMessage()
	if !ok {
		return
	}

	switch m.state.MessageType() {
	case compose.MessageTypeChannel:
		if !sel.IsChannel() {
			return
		}
		if err := m.state.SetChannelName(sel.Channel); err != nil {
			m.fail(err)
			return
		}
		if _, err := m.state.SetTopic(sel.Topic); err != nil {
			m.fail(err)
		}
	case compose.MessageTypeDirect:
		if !sel.IsDirect() {
			return
		}
		people := lo.Without(lo.Uniq(append(append([]string{}, sel.Recipients...), sel.SenderName)), m.userName)
		m.state.SetPrivateRecipients(strings.Join(people, ", "))
	}
}

func (m *Model) submit() tea.Cmd {
	full, err := m.state.HasFullRecipient()
	if err != nil {
		m.fail(err)
		return nil
	}
	if !full {
		m.fail(errMissingRecipient)
		return nil
	}
	hasContent, err := m.state.HasMessageContent()
	if err != nil {
		m.fail(err)
		return nil
	}
	if !hasContent {
		m.fail(errEmptyMessage)
		return nil
	}

	content, err := m.state.MessageContent()
	if err != nil {
		m.fail(err)
		return nil
	}

	var msg models.Message
	if m.state.MessageType() == compose.MessageTypeChannel {
		channel, err := m.state.ChannelName()
		if err != nil {
			m.fail(err)
			return nil
		}
		topic, err := m.state.Topic()
		if err != nil {
			m.fail(err)
			return nil
		}
		msg = models.NewChannelMessage(m.userName, channel, topic, content)
	} else {
		msg = models.NewDirectMessage(m.userName, m.state.PrivateRecipients(), content)
	}

	m.status.Info("Message to %s added", msg.Conversation())
	m.closeCompose()
	return func() tea.Msg {
		return models.MessageSent{Message: msg}
	}
}

func (m *Model) moveSelection(step int) {
	if len(m.messages) == 0 {
		return
	}
	next := max(0, min(m.selected+step, len(m.messages)-1))
	if next == m.selected {
		return
	}
	m.selected = next
	m.updateContent()
	if m.state.IsComposing() {
		m.autofill()
	}
}

func (m *Model) fail(err error) {
	logging.Logger.Warn().Err(err).Str("session", m.box.SessionID()).Msg("compose error")
	m.status.Error(err)
}

func (m Model) selectedMessage() (models.Message, bool) {
	if m.selected < 0 || m.selected >= len(m.messages) {
		return models.Message{}, false
	}
	return m.messages[m.selected], true
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.box.SetWidth(width)
	m.status.Resize(width)
	m.help.Width = width

	// header, status and help lines
	reserved := 3
	if m.box.IsOpen() {
		reserved += lipgloss.Height(m.box.View())
	}
	m.viewport.Width = width
	m.viewport.Height = max(height-reserved, 1)
	m.updateContent()
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	if m.box.IsOpen() {
		sb.WriteString(m.box.View())
		sb.WriteString("\n")
	}
	sb.WriteString(m.status.View())
	sb.WriteString("\n")
	if m.state.IsComposing() {
		sb.WriteString(m.help.View(composeKeys(m.keys)))
	} else {
		sb.WriteString(m.help.View(browseKeys(m.keys)))
	}

	return sb.String()
}

func (m *Model) updateContent() {
	m.viewport.SetContent(m.renderMessages())

	// one line per message
	if m.selected < m.viewport.YOffset {
		m.viewport.SetYOffset(m.selected)
	} else if m.selected >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.selected - m.viewport.Height + 1)
	}
}

func (m Model) renderMessages() string {
	if len(m.messages) == 0 {
		return "No messages yet. Press c to start a conversation."
	}

	lines := make([]string, 0, len(m.messages))
	for i, msg := range m.messages {
		timestamp := m.formatTimestamp(msg.SentAt.Local()) // convert to local time

		timestampStyle := timestampStyleBase
		if len(timestamp) > 8 {
			timestampStyle = timestampStyle.Width(20)
		} else {
			timestampStyle = timestampStyle.Width(10)
		}

		line := fmt.Sprintf("%s%s%s%s",
			timestampStyle.Render(timestamp),
			conversationStyle.Render(msg.Conversation()),
			usernameStyle.Render(msg.SenderName),
			contentStyle.Render(strings.ReplaceAll(msg.Content, "\n", " ")))
		if i == m.selected {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) formatTimestamp(t time.Time) string {
	now := time.Now()
	if t.Year() == now.Year() && t.Month() == now.Month() && t.Day() == now.Day() {
		return t.Format("15:04:05")
	} else if t.Year() == now.Year() {
		return fmt.Sprintf("[%s %s]", t.Format("02/01"), t.Format("15:04:05"))
	}
	return fmt.Sprintf("[%s %s]", t.Format("02/01/06"), t.Format("15:04:05"))
}

func (m Model) renderHeader() string {
	title := headerStyle.Render("chatline")

	label := "browsing"
	switch m.state.MessageType() {
	case compose.MessageTypeChannel:
		label = "new channel message"
	case compose.MessageTypeDirect:
		label = "new direct message"
	}
	if m.state.IsRecipientEditedManually() {
		label += " (recipient edited)"
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, tabStyle.Render(label))
}

// editsValue reports whether msg changes the value of control id. Enter
// commits the pending recipient text as a pill.
func editsValue(id compose.ControlID, msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete, tea.KeyCtrlU, tea.KeyCtrlK, tea.KeyCtrlW:
		return true
	case tea.KeyEnter:
		return id == compose.RecipientControl
	}
	return false
}
