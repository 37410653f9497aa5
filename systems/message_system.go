package systems

import (
	"fmt"
	"io"
	"sync"
)

const defaultMessageCapacity = 100

// MessageLog keeps the most recent generation and spawn messages
type MessageLog struct {
	Messages    []string
	MaxMessages int
	// Echo, when set, receives a copy of every message
	Echo io.Writer
}

var (
	globalMessageLog     *MessageLog
	globalMessageLogOnce sync.Once
)

// GetMessageLog returns the process-wide message log
func GetMessageLog() *MessageLog {
	globalMessageLogOnce.Do(func() {
		globalMessageLog = NewMessageLog()
	})
	return globalMessageLog
}

// NewMessageLog creates an empty log holding up to 100 messages
func NewMessageLog() *MessageLog {
	return &MessageLog{MaxMessages: defaultMessageCapacity}
}

// Add records a message and drops the oldest ones over capacity
func (ml *MessageLog) Add(message string) {
	if ml.Echo != nil {
		fmt.Fprintln(ml.Echo, message)
	}
	ml.Messages = append(ml.Messages, message)
	if over := len(ml.Messages) - ml.MaxMessages; over > 0 {
		ml.Messages = ml.Messages[over:]
	}
}

// Addf formats and records a message
func (ml *MessageLog) Addf(format string, args ...any) {
	ml.Add(fmt.Sprintf(format, args...))
}

// RecentMessages returns up to n messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	n = max(min(n, len(ml.Messages)), 0)
	result := make([]string, 0, n)
	for i := len(ml.Messages) - 1; len(result) < n; i-- {
		result = append(result, ml.Messages[i])
	}
	return result
}

// Clear drops all messages
func (ml *MessageLog) Clear() {
	ml.Messages = nil
}
