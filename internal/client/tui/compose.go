// internal/client/tui/compose.go
package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"chatline/internal/client/compose"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	composeStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type ComposeOptions struct {
	ContentCharLimit int
	TopicCharLimit   int
	ChannelCharLimit int
}

// ComposeBox owns the input controls of the compose form. It is the
// FieldAccess and FocusTracker of compose.State: controls are addressed by
// compose.ControlID and only exist while the box is open.
type ComposeBox struct {
	channel   textinput.Model
	topic     textinput.Model
	recipient textinput.Model
	content   textarea.Model
	pills     *RecipientPills

	mounted   []compose.ControlID
	focused   compose.ControlID
	sessionID string
	width     int
}

func NewComposeBox(opts ComposeOptions) *ComposeBox {
	channel := textinput.New()
	channel.Placeholder = "channel"
	channel.Prompt = "#"
	channel.CharLimit = opts.ChannelCharLimit

	topic := textinput.New()
	topic.Placeholder = "topic"
	topic.Prompt = "> "
	topic.CharLimit = opts.TopicCharLimit

	recipient := textinput.New()
	recipient.Placeholder = "Add recipients..."
	recipient.Prompt = ""
	recipient.CharLimit = 200

	content := textarea.New()
	content.Placeholder = "Type a message..."
	content.ShowLineNumbers = false
	content.CharLimit = opts.ContentCharLimit
	content.SetHeight(4)

	return &ComposeBox{
		channel:   channel,
		topic:     topic,
		recipient: recipient,
		content:   content,
		pills:     NewRecipientPills(),
	}
}

// Open mounts the controls for t and focuses the first one.
func (c *ComposeBox) Open(t compose.MessageType) {
	switch t {
	case compose.MessageTypeChannel:
		c.mounted = []compose.ControlID{compose.ChannelControl, compose.TopicControl, compose.ContentControl}
	case compose.MessageTypeDirect:
		c.mounted = []compose.ControlID{compose.RecipientControl, compose.ContentControl}
	default:
		c.Close()
		return
	}
	c.sessionID = uuid.NewString()
	c.focus(c.mounted[0])
}

// Close clears and unmounts every control.
func (c *ComposeBox) Close() {
	c.channel.Reset()
	c.topic.Reset()
	c.recipient.Reset()
	c.content.Reset()
	c.pills.Clear()
	c.blurAll()
	c.mounted = nil
	c.focused = ""
	c.sessionID = ""
}

func (c *ComposeBox) IsOpen() bool {
	return len(c.mounted) > 0
}

func (c *ComposeBox) SessionID() string {
	return c.sessionID
}

func (c *ComposeBox) Pills() *RecipientPills {
	return c.pills
}

func (c *ComposeBox) ReadValue(id compose.ControlID) (string, error) {
	if err := c.checkMounted(id); err != nil {
		return "", err
	}
	switch id {
	case compose.ChannelControl:
		return c.channel.Value(), nil
	case compose.TopicControl:
		return c.topic.Value(), nil
	case compose.RecipientControl:
		return c.recipient.Value(), nil
	default:
		return c.content.Value(), nil
	}
}

func (c *ComposeBox) WriteValue(id compose.ControlID, value string) error {
	if err := c.checkMounted(id); err != nil {
		return err
	}
	switch id {
	case compose.ChannelControl:
		c.channel.SetValue(value)
	case compose.TopicControl:
		c.topic.SetValue(value)
	case compose.RecipientControl:
		c.recipient.SetValue(value)
	default:
		c.content.SetValue(value)
	}
	return nil
}

// ReadCursorOffset returns the cursor position in runes from the start of the
// control value.
func (c *ComposeBox) ReadCursorOffset(id compose.ControlID) (int, error) {
	if err := c.checkMounted(id); err != nil {
		return 0, err
	}
	switch id {
	case compose.ChannelControl:
		return c.channel.Position(), nil
	case compose.TopicControl:
		return c.topic.Position(), nil
	case compose.RecipientControl:
		return c.recipient.Position(), nil
	default:
		return textareaOffset(c.content), nil
	}
}

func (c *ComposeBox) FocusedControl() (compose.ControlID, bool) {
	return c.focused, c.focused != ""
}

// Focus moves input focus to a mounted control.
func (c *ComposeBox) Focus(id compose.ControlID) error {
	if err := c.checkMounted(id); err != nil {
		return err
	}
	c.focus(id)
	return nil
}

func (c *ComposeBox) FocusNext() {
	c.cycle(1)
}

func (c *ComposeBox) FocusPrev() {
	c.cycle(-1)
}

// Update forwards msg to the focused control.
func (c *ComposeBox) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch c.focused {
	case compose.ChannelControl:
		c.channel, cmd = c.channel.Update(msg)
	case compose.TopicControl:
		c.topic, cmd = c.topic.Update(msg)
	case compose.RecipientControl:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case ",", "enter":
				c.pills.Append(c.recipient.Value())
				c.recipient.Reset()
				return nil
			case "backspace":
				if c.recipient.Value() == "" {
					c.pills.RemoveLast()
					return nil
				}
			}
		}
		c.recipient, cmd = c.recipient.Update(msg)
	case compose.ContentControl:
		c.content, cmd = c.content.Update(msg)
	}
	return cmd
}

func (c *ComposeBox) SetWidth(width int) {
	c.width = width
	inner := width - 6
	if inner < 20 {
		inner = 20
	}
	c.channel.Width = inner / 3
	c.topic.Width = inner / 2
	c.recipient.Width = inner / 2
	c.content.SetWidth(inner)
}

func (c *ComposeBox) View() string {
	if !c.IsOpen() {
		return ""
	}

	var sb strings.Builder
	if c.isMounted(compose.ChannelControl) {
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, c.channel.View(), "  ", c.topic.View()))
	} else {
		sb.WriteString(labelStyle.Render("To: "))
		sb.WriteString(c.pills.View())
		sb.WriteString(c.recipient.View())
	}
	sb.WriteString("\n")
	sb.WriteString(c.content.View())

	style := composeStyle
	if c.width > 0 {
		style = style.Width(c.width - 2)
	}
	return style.Render(sb.String())
}

func (c *ComposeBox) cycle(step int) {
	if len(c.mounted) == 0 {
		return
	}
	idx := max(lo.IndexOf(c.mounted, c.focused), 0)
	idx = (idx + step + len(c.mounted)) % len(c.mounted)
	c.focus(c.mounted[idx])
}

func (c *ComposeBox) focus(id compose.ControlID) {
	c.blurAll()
	c.focused = id
	switch id {
	case compose.ChannelControl:
		c.channel.Focus()
	case compose.TopicControl:
		c.topic.Focus()
	case compose.RecipientControl:
		c.recipient.Focus()
	case compose.ContentControl:
		c.content.Focus()
	}
}

func (c *ComposeBox) blurAll() {
	c.channel.Blur()
	c.topic.Blur()
	c.recipient.Blur()
	c.content.Blur()
}

func (c *ComposeBox) isMounted(id compose.ControlID) bool {
	return lo.Contains(c.mounted, id)
}

func (c *ComposeBox) checkMounted(id compose.ControlID) error {
	if !c.isMounted(id) {
		return fmt.Errorf("%w: %s", compose.ErrControlNotMounted, id)
	}
	return nil
}

// textareaOffset converts the row/column cursor of a textarea into an
// absolute rune offset.
func textareaOffset(ta textarea.Model) int {
	lines := strings.Split(ta.Value(), "\n")
	offset := 0
	for i := 0; i < ta.Line() && i < len(lines); i++ {
		offset += utf8.RuneCountInString(lines[i]) + 1
	}
	info := ta.LineInfo()
	return offset + info.StartColumn + info.ColumnOffset
}
