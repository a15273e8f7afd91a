// internal/client/tui/notifications.go
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5AF78E"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

type Notification struct {
	Message   string
	Timestamp time.Time
	IsError   bool
}

// StatusView is the one line notice area under the compose box.
type StatusView struct {
	notifications []Notification
	width         int
}

func NewStatusView() *StatusView {
	return &StatusView{
		notifications: make([]Notification, 0),
	}
}

func (s *StatusView) Info(format string, args ...any) {
	s.add(fmt.Sprintf(format, args...), false)
}

func (s *StatusView) Error(err error) {
	s.add(err.Error(), true)
}

// Last returns the most recent notification, if any.
func (s *StatusView) Last() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}

func (s *StatusView) Resize(width int) {
	s.width = width
}

func (s *StatusView) View() string {
	notif, ok := s.Last()
	if !ok {
		return ""
	}
	style := successStyle
	if notif.IsError {
		style = errorStyle
	}
	if s.width > 0 {
		style = style.MaxWidth(s.width)
	}
	return style.Render(fmt.Sprintf("[%s] %s", notif.Timestamp.Format("15:04:05"), notif.Message))
}

func (s *StatusView) add(msg string, isError bool) {
	s.notifications = append(s.notifications, Notification{
		Message:   msg,
		Timestamp: time.Now(),
		IsError:   isError,
	})

	// Keep only last 10 notifications
	if len(s.notifications) > 10 {
		s.notifications = s.notifications[len(s.notifications)-10:]
	}
}
