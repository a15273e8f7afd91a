// internal/client/models/history.go
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

// LoadHistory reads a JSON array of messages used to seed the message list.
// An empty path or a missing file yields an empty history.
func LoadHistory(path string) ([]Message, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", path, err)
	}

	for i, msg := range messages {
		if msg.Type != MessageTypeChannel && msg.Type != MessageTypeDirect {
			return nil, fmt.Errorf("history message %d: unknown type %q", i, msg.Type)
		}
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].SentAt.Before(messages[j].SentAt)
	})
	return messages, nil
}
