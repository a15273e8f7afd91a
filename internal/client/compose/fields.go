// internal/client/compose/fields.go
//go:generate go run go.uber.org/mock/mockgen -source=fields.go -destination=../mocks/mock_compose.go -package=mocks

package compose

import (
	"errors"
	"fmt"
)

// ControlID identifies an input control of the compose box.
type ControlID string

const (
	ChannelControl   ControlID = "channel_message_recipient_channel"
	TopicControl     ControlID = "channel_message_recipient_topic"
	ContentControl   ControlID = "compose-textarea"
	RecipientControl ControlID = "private_message_recipient"
)

// ErrControlNotMounted is returned by FieldAccess implementations when the
// requested control does not exist (yet).
var ErrControlNotMounted = errors.New("control not mounted")

// MessageType is the recipient kind the compose box targets.
type MessageType int

const (
	MessageTypeNone MessageType = iota
	MessageTypeChannel
	MessageTypeDirect
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeChannel:
		return "channel"
	case MessageTypeDirect:
		return "direct"
	default:
		return "none"
	}
}

func ParseMessageType(s string) (MessageType, error) {
	switch s {
	case "", "none":
		return MessageTypeNone, nil
	case "channel":
		return MessageTypeChannel, nil
	case "direct":
		return MessageTypeDirect, nil
	}
	return MessageTypeNone, fmt.Errorf("unknown message type %q", s)
}

// FieldAccess reads and writes the live value held by a named control.
type FieldAccess interface {
	ReadValue(id ControlID) (string, error)
	WriteValue(id ControlID, value string) error
	ReadCursorOffset(id ControlID) (int, error)
}

// RecipientList holds the direct message recipients. Parsing of the address
// string is owned by the implementation.
type RecipientList interface {
	SetFromAddressString(value string)
	Addresses() []string
}

// FocusTracker reports which control currently has input focus.
type FocusTracker interface {
	FocusedControl() (ControlID, bool)
}
