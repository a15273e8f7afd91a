// internal/client/compose/state.go

// Package compose tracks the state of the message compose box. Only the
// message type and the manual-edit flag live in memory; every other value is
// read live from the controls through FieldAccess.
package compose

import (
	"strings"
	"unicode"
)

type State struct {
	messageType             MessageType
	recipientEditedManually bool

	fields     FieldAccess
	recipients RecipientList
	focus      FocusTracker
}

func New(fields FieldAccess, recipients RecipientList, focus FocusTracker) *State {
	return &State{
		fields:     fields,
		recipients: recipients,
		focus:      focus,
	}
}

// Reset restores the defaults. Called when the compose box closes.
func (s *State) Reset() {
	s.messageType = MessageTypeNone
	s.recipientEditedManually = false
}

func (s *State) SetRecipientEditedManually(flag bool) {
	s.recipientEditedManually = flag
}

func (s *State) IsRecipientEditedManually() bool {
	return s.recipientEditedManually
}

func (s *State) SetMessageType(t MessageType) {
	s.messageType = t
}

func (s *State) MessageType() MessageType {
	return s.messageType
}

// RecipientHasTopics reports whether the active type is anything but a
// channel message. Callers rely on this exact boolean.
func (s *State) RecipientHasTopics() bool {
	return s.messageType != MessageTypeChannel
}

func (s *State) IsComposing() bool {
	return s.messageType != MessageTypeNone
}

func (s *State) ChannelName() (string, error) {
	v, err := s.fields.ReadValue(ChannelControl)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

func (s *State) SetChannelName(name string) error {
	return s.fields.WriteValue(ChannelControl, name)
}

func (s *State) Topic() (string, error) {
	v, err := s.fields.ReadValue(TopicControl)
	if err != nil {
		return "", err
	}
	return trimEnd(v), nil
}

// SetTopic writes the topic and returns the value it replaced.
func (s *State) SetTopic(topic string) (string, error) {
	return s.swap(TopicControl, topic)
}

// MessageContent keeps leading whitespace: indented lines start code blocks.
func (s *State) MessageContent() (string, error) {
	v, err := s.fields.ReadValue(ContentControl)
	if err != nil {
		return "", err
	}
	return trimEnd(v), nil
}

// SetMessageContent writes the body and returns the value it replaced.
func (s *State) SetMessageContent(content string) (string, error) {
	return s.swap(ContentControl, content)
}

func (s *State) UntrimmedMessageContent() (string, error) {
	return s.fields.ReadValue(ContentControl)
}

func (s *State) HasMessageContent() (bool, error) {
	content, err := s.MessageContent()
	if err != nil {
		return false, err
	}
	return content != "", nil
}

func (s *State) CursorAtStartOfEmptyCompose() (bool, error) {
	content, err := s.MessageContent()
	if err != nil {
		return false, err
	}
	if content != "" {
		return false, nil
	}
	offset, err := s.fields.ReadCursorOffset(ContentControl)
	if err != nil {
		return false, err
	}
	return offset == 0, nil
}

// IsFocusInEmptyCompose decides whether arrow keys should navigate the
// message list instead of moving the cursor of a non-empty input.
func (s *State) IsFocusInEmptyCompose() (bool, error) {
	if !s.IsComposing() {
		return false, nil
	}
	raw, err := s.UntrimmedMessageContent()
	if err != nil {
		return false, err
	}
	if raw != "" {
		return false, nil
	}

	id, ok := s.focus.FocusedControl()
	if !ok {
		return false, nil
	}

	switch id {
	case ContentControl:
		return true, nil
	case RecipientControl:
		return len(s.PrivateRecipients()) == 0, nil
	case ChannelControl, TopicControl:
		v, err := s.fields.ReadValue(id)
		if err != nil {
			return false, err
		}
		return v == "", nil
	}
	return false, nil
}

func (s *State) PrivateRecipients() []string {
	return s.recipients.Addresses()
}

func (s *State) SetPrivateRecipients(addresses string) {
	s.recipients.SetFromAddressString(addresses)
}

func (s *State) HasFullRecipient() (bool, error) {
	if s.messageType == MessageTypeChannel {
		name, err := s.ChannelName()
		if err != nil {
			return false, err
		}
		topic, err := s.Topic()
		if err != nil {
			return false, err
		}
		return name != "" && topic != "", nil
	}
	return len(s.PrivateRecipients()) > 0, nil
}

func (s *State) swap(id ControlID, value string) (string, error) {
	old, err := s.fields.ReadValue(id)
	if err != nil {
		return "", err
	}
	if err := s.fields.WriteValue(id, value); err != nil {
		return "", err
	}
	return trimEnd(old), nil
}

func trimEnd(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
