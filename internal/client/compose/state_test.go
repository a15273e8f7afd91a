package compose_test

import (
	"errors"
	"testing"

	"chatline/internal/client/compose"
	"chatline/internal/client/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	fields     *mocks.MockFieldAccess
	recipients *mocks.MockRecipientList
	focus      *mocks.MockFocusTracker
	state      *compose.State
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		fields:     mocks.NewMockFieldAccess(ctrl),
		recipients: mocks.NewMockRecipientList(ctrl),
		focus:      mocks.NewMockFocusTracker(ctrl),
	}
	f.state = compose.New(f.fields, f.recipients, f.focus)
	return f
}

func TestState_MessageType(t *testing.T) {
	f := newFixture(t)
	req := require.New(t)

	req.Equal(compose.MessageTypeNone, f.state.MessageType())
	req.False(f.state.IsComposing())
	req.True(f.state.RecipientHasTopics())

	for _, tt := range []struct {
		typ       compose.MessageType
		composing bool
		hasTopics bool
	}{
		{compose.MessageTypeChannel, true, false},
		{compose.MessageTypeDirect, true, true},
		{compose.MessageTypeNone, false, true},
	} {
		t.Run(tt.typ.String(), func(t *testing.T) {
			f.state.SetMessageType(tt.typ)
			require.Equal(t, tt.typ, f.state.MessageType())
			require.Equal(t, tt.composing, f.state.IsComposing())
			require.Equal(t, tt.hasTopics, f.state.RecipientHasTopics())
		})
	}
}

func TestParseMessageType(t *testing.T) {
	for _, typ := range []compose.MessageType{compose.MessageTypeNone, compose.MessageTypeChannel, compose.MessageTypeDirect} {
		got, err := compose.ParseMessageType(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ, got)
	}

	_, err := compose.ParseMessageType("stream")
	require.Error(t, err)
}

func TestState_RecipientEditedManually(t *testing.T) {
	f := newFixture(t)
	req := require.New(t)

	req.False(f.state.IsRecipientEditedManually())
	f.state.SetRecipientEditedManually(true)
	f.state.SetRecipientEditedManually(true)
	req.True(f.state.IsRecipientEditedManually())
	f.state.SetRecipientEditedManually(false)
	req.False(f.state.IsRecipientEditedManually())
}

func TestState_Reset(t *testing.T) {
	f := newFixture(t)
	f.state.SetMessageType(compose.MessageTypeDirect)
	f.state.SetRecipientEditedManually(true)

	f.state.Reset()

	require.Equal(t, compose.MessageTypeNone, f.state.MessageType())
	require.False(t, f.state.IsRecipientEditedManually())
}

func TestState_ChannelName(t *testing.T) {
	t.Run("should trim both edges on read", func(t *testing.T) {
		f := newFixture(t)
		f.fields.EXPECT().ReadValue(compose.ChannelControl).Return("  general \n", nil)

		name, err := f.state.ChannelName()

		require.NoError(t, err)
		require.Equal(t, "general", name)
	})

	t.Run("should write verbatim", func(t *testing.T) {
		f := newFixture(t)
		f.fields.EXPECT().WriteValue(compose.ChannelControl, " general ").Return(nil)

		require.NoError(t, f.state.SetChannelName(" general "))
	})
}

func TestState_Topic(t *testing.T) {
	t.Run("should keep leading whitespace", func(t *testing.T) {
		f := newFixture(t)
		f.fields.EXPECT().ReadValue(compose.TopicControl).Return("  intro  ", nil)

		topic, err := f.state.Topic()

		require.NoError(t, err)
		require.Equal(t, "  intro", topic)
	})

	t.Run("should return the value before the write", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.fields.EXPECT().ReadValue(compose.TopicControl).Return("old topic ", nil),
			f.fields.EXPECT().WriteValue(compose.TopicControl, "new topic").Return(nil),
		)

		old, err := f.state.SetTopic("new topic")

		require.NoError(t, err)
		require.Equal(t, "old topic", old)
	})
}

func TestState_MessageContent(t *testing.T) {
	t.Run("should keep indentation", func(t *testing.T) {
		f := newFixture(t)
		f.fields.EXPECT().ReadValue(compose.ContentControl).Return("    code()\n\n", nil).Times(2)

		content, err := f.state.MessageContent()
		require.NoError(t, err)
		require.Equal(t, "    code()", content)

		raw, err := f.state.UntrimmedMessageContent()
		require.NoError(t, err)
		require.Equal(t, "    code()\n\n", raw)
	})

	t.Run("should swap content", func(t *testing.T) {
		f := newFixture(t)
		f.fields.EXPECT().ReadValue(compose.ContentControl).Return("draft", nil)
		f.fields.EXPECT().WriteValue(compose.ContentControl, "").Return(nil)

		old, err := f.state.SetMessageContent("")

		require.NoError(t, err)
		require.Equal(t, "draft", old)
	})

	t.Run("should not write when the read fails", func(t *testing.T) {
		f := newFixture(t)
		f.fields.EXPECT().ReadValue(compose.ContentControl).Return("", compose.ErrControlNotMounted)
		f.fields.EXPECT().WriteValue(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.state.SetMessageContent("hello")

		require.ErrorIs(t, err, compose.ErrControlNotMounted)
	})
}

func TestState_HasMessageContent(t *testing.T) {
	for _, tt := range []struct {
		name  string
		value string
		want  bool
	}{
		{"empty", "", false},
		{"whitespace only", " \n\t", false},
		{"padded text", "  x ", true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.fields.EXPECT().ReadValue(compose.ContentControl).Return(tt.value, nil)

			got, err := f.state.HasMessageContent()

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestState_CursorAtStartOfEmptyCompose(t *testing.T) {
	t.Run("should be true for empty content at offset 0", func(t *testing.T) {
		f := newFixture(t)
		f.fields.EXPECT().ReadValue(compose.ContentControl).Return("", nil)
		f.fields.EXPECT().ReadCursorOffset(compose.ContentControl).Return(0, nil)

		got, err := f.state.CursorAtStartOfEmptyCompose()

		require.NoError(t, err)
		require.True(t, got)
	})

	t.Run("should be false when the cursor moved", func(t *testing.T) {
		f := newFixture(t)
		f.fields.EXPECT().ReadValue(compose.ContentControl).Return("", nil)
		f.fields.EXPECT().ReadCursorOffset(compose.ContentControl).Return(3, nil)

		got, err := f.state.CursorAtStartOfEmptyCompose()

		require.NoError(t, err)
		require.False(t, got)
	})

	t.Run("should be false with content", func(t *testing.T) {
		f := newFixture(t)
		f.fields.EXPECT().ReadValue(compose.ContentControl).Return("hi", nil)
		f.fields.EXPECT().ReadCursorOffset(gomock.Any()).Times(0)

		got, err := f.state.CursorAtStartOfEmptyCompose()

		require.NoError(t, err)
		require.False(t, got)
	})
}

func TestState_IsFocusInEmptyCompose(t *testing.T) {
	t.Run("should be false when not composing", func(t *testing.T) {
		f := newFixture(t)
		f.fields.EXPECT().ReadValue(gomock.Any()).Times(0)
		f.focus.EXPECT().FocusedControl().Times(0)

		got, err := f.state.IsFocusInEmptyCompose()

		require.NoError(t, err)
		require.False(t, got)
	})

	t.Run("should be false when content is whitespace", func(t *testing.T) {
		f := newFixture(t)
		f.state.SetMessageType(compose.MessageTypeChannel)
		f.fields.EXPECT().ReadValue(compose.ContentControl).Return(" ", nil)
		f.focus.EXPECT().FocusedControl().Times(0)

		got, err := f.state.IsFocusInEmptyCompose()

		require.NoError(t, err)
		require.False(t, got)
	})

	t.Run("should be true with focus in the textarea", func(t *testing.T) {
		f := newFixture(t)
		f.state.SetMessageType(compose.MessageTypeChannel)
		f.fields.EXPECT().ReadValue(compose.ContentControl).Return("", nil)
		f.focus.EXPECT().FocusedControl().Return(compose.ContentControl, true)

		got, err := f.state.IsFocusInEmptyCompose()

		require.NoError(t, err)
		require.True(t, got)
	})

	for _, tt := range []struct {
		name    string
		control compose.ControlID
		value   string
		want    bool
	}{
		{"empty channel", compose.ChannelControl, "", true},
		{"filled channel", compose.ChannelControl, "general", false},
		{"empty topic", compose.TopicControl, "", true},
		{"whitespace topic", compose.TopicControl, " ", false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.state.SetMessageType(compose.MessageTypeChannel)
			f.fields.EXPECT().ReadValue(compose.ContentControl).Return("", nil)
			f.focus.EXPECT().FocusedControl().Return(tt.control, true)
			f.fields.EXPECT().ReadValue(tt.control).Return(tt.value, nil)

			got, err := f.state.IsFocusInEmptyCompose()

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("should check recipients when focus is on the recipient input", func(t *testing.T) {
		f := newFixture(t)
		f.state.SetMessageType(compose.MessageTypeDirect)
		f.fields.EXPECT().ReadValue(compose.ContentControl).Return("", nil).Times(2)
		f.focus.EXPECT().FocusedControl().Return(compose.RecipientControl, true).Times(2)
		gomock.InOrder(
			f.recipients.EXPECT().Addresses().Return(nil),
			f.recipients.EXPECT().Addresses().Return([]string{"a@x.com"}),
		)

		got, err := f.state.IsFocusInEmptyCompose()
		require.NoError(t, err)
		require.True(t, got)

		got, err = f.state.IsFocusInEmptyCompose()
		require.NoError(t, err)
		require.False(t, got)
	})

	t.Run("should be false without focus", func(t *testing.T) {
		f := newFixture(t)
		f.state.SetMessageType(compose.MessageTypeDirect)
		f.fields.EXPECT().ReadValue(compose.ContentControl).Return("", nil)
		f.focus.EXPECT().FocusedControl().Return(compose.ControlID(""), false)

		got, err := f.state.IsFocusInEmptyCompose()

		require.NoError(t, err)
		require.False(t, got)
	})

	t.Run("should be false for an unknown control", func(t *testing.T) {
		f := newFixture(t)
		f.state.SetMessageType(compose.MessageTypeDirect)
		f.fields.EXPECT().ReadValue(compose.ContentControl).Return("", nil)
		f.focus.EXPECT().FocusedControl().Return(compose.ControlID("search"), true)

		got, err := f.state.IsFocusInEmptyCompose()

		require.NoError(t, err)
		require.False(t, got)
	})
}

func TestState_PrivateRecipients(t *testing.T) {
	f := newFixture(t)
	f.recipients.EXPECT().SetFromAddressString("a@x.com, b@x.com")
	f.recipients.EXPECT().Addresses().Return([]string{"a@x.com", "b@x.com"})

	f.state.SetPrivateRecipients("a@x.com, b@x.com")

	require.Equal(t, []string{"a@x.com", "b@x.com"}, f.state.PrivateRecipients())
}

func TestState_HasFullRecipient(t *testing.T) {
	t.Run("channel without topic", func(t *testing.T) {
		f := newFixture(t)
		f.state.SetMessageType(compose.MessageTypeChannel)
		f.fields.EXPECT().ReadValue(compose.ChannelControl).Return("general", nil)
		f.fields.EXPECT().ReadValue(compose.TopicControl).Return("", nil)
		f.recipients.EXPECT().Addresses().Times(0)

		got, err := f.state.HasFullRecipient()

		require.NoError(t, err)
		require.False(t, got)
	})

	t.Run("channel with topic", func(t *testing.T) {
		f := newFixture(t)
		f.state.SetMessageType(compose.MessageTypeChannel)
		f.fields.EXPECT().ReadValue(compose.ChannelControl).Return("general", nil)
		f.fields.EXPECT().ReadValue(compose.TopicControl).Return("intro", nil)

		got, err := f.state.HasFullRecipient()

		require.NoError(t, err)
		require.True(t, got)
	})

	t.Run("direct without recipients", func(t *testing.T) {
		f := newFixture(t)
		f.state.SetMessageType(compose.MessageTypeDirect)
		f.recipients.EXPECT().Addresses().Return([]string{})
		f.fields.EXPECT().ReadValue(gomock.Any()).Times(0)

		got, err := f.state.HasFullRecipient()

		require.NoError(t, err)
		require.False(t, got)
	})

	t.Run("direct with a recipient", func(t *testing.T) {
		f := newFixture(t)
		f.state.SetMessageType(compose.MessageTypeDirect)
		f.recipients.EXPECT().Addresses().Return([]string{"a@x.com"})

		got, err := f.state.HasFullRecipient()

		require.NoError(t, err)
		require.True(t, got)
	})

	t.Run("should propagate collaborator errors", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("boom")
		f.state.SetMessageType(compose.MessageTypeChannel)
		f.fields.EXPECT().ReadValue(compose.ChannelControl).Return("", boom)

		_, err := f.state.HasFullRecipient()

		require.ErrorIs(t, err, boom)
	})
}
