package session

import (
	"sort"

	"lectern/internal/timeutil"
)

// ChatEvent is a chat message whose timestamp parsed, placed on the
// seconds-since-midnight axis the engine works on.
type ChatEvent struct {
	AtSec    float64
	Role     Role
	AuthorID string
	Text     string
}

// ChatEvents normalizes chat messages for temporal analysis. Messages whose
// timestamps fail to parse are dropped; the result is stably sorted by time.
func ChatEvents(messages []ChatMessage) []ChatEvent {
	events := make([]ChatEvent, 0, len(messages))
	for _, msg := range messages {
		at, ok := timeutil.ParseClock(msg.Timestamp)
		if !ok {
			continue
		}
		events = append(events, ChatEvent{
			AtSec:    at,
			Role:     ParseRole(string(msg.Role)),
			AuthorID: msg.AuthorID,
			Text:     msg.Text,
		})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].AtSec < events[j].AtSec })
	return events
}
