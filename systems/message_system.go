package systems

import "fmt"

// MessageLog keeps the most recent session messages for the HUD strip
type MessageLog struct {
	Messages    []string
	MaxMessages int
}

// NewMessageLog creates a new message log holding at most maxMessages lines
func NewMessageLog(maxMessages int) *MessageLog {
	if maxMessages <= 0 {
		maxMessages = 100
	}
	return &MessageLog{
		Messages:    []string{},
		MaxMessages: maxMessages,
	}
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.Messages = append(ml.Messages, message)

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// Addf formats and adds a message
func (ml *MessageLog) Addf(format string, args ...interface{}) {
	ml.Add(fmt.Sprintf(format, args...))
}

// Latest returns the newest message, or "" when the log is empty
func (ml *MessageLog) Latest() string {
	if len(ml.Messages) == 0 {
		return ""
	}
	return ml.Messages[len(ml.Messages)-1]
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []string{}
}
