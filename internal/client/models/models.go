// internal/client/models/models.go
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// type of message
const (
	MessageTypeChannel = "channel"
	MessageTypeDirect  = "direct"
)

type Message struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Channel    string    `json:"channel,omitempty"`
	Topic      string    `json:"topic,omitempty"`
	Recipients []string  `json:"recipients,omitempty"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent_at"`
}

// channel message
func NewChannelMessage(sender, channel, topic, content string) Message {
	return Message{
		ID:         uuid.NewString(),
		Type:       MessageTypeChannel,
		Channel:    channel,
		Topic:      topic,
		SenderName: sender,
		Content:    content,
		SentAt:     time.Now(),
	}
}

// direct message
func NewDirectMessage(sender string, recipients []string, content string) Message {
	return Message{
		ID:         uuid.NewString(),
		Type:       MessageTypeDirect,
		Recipients: append([]string(nil), recipients...),
		SenderName: sender,
		Content:    content,
		SentAt:     time.Now(),
	}
}

func (m *Message) IsChannel() bool {
	return m.Type == MessageTypeChannel
}

func (m *Message) IsDirect() bool {
	return m.Type == MessageTypeDirect
}

// Conversation renders "#channel > topic" or the recipient list.
func (m *Message) Conversation() string {
	if m.IsChannel() {
		return fmt.Sprintf("#%s > %s", m.Channel, m.Topic)
	}
	return strings.Join(m.Recipients, ", ")
}

// MessageSent is emitted once a composed message leaves the compose box.
type MessageSent struct {
	Message Message
}
