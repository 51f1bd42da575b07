package conversation

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a conversation message.
type Sender string

const (
	SenderPatient Sender = "patient"
	SenderBot     Sender = "bot"
)

// Message is one entry in a conversation log.
type Message struct {
	ID          string    `json:"id"`
	Sender      Sender    `json:"sender"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

// NewMessage builds a message with a fresh ID and timestamp.
func NewMessage(sender Sender, text string, suggestions []string) Message {
	return Message{
		ID:          uuid.NewString(),
		Sender:      sender,
		Text:        text,
		CreatedAt:   time.Now().UTC(),
		Suggestions: append([]string(nil), suggestions...),
	}
}

// Log is an append-only conversation transcript. Each chat widget instance
// owns exactly one log; the log is discarded with the widget, never shared.
// The mutex covers the one concurrent writer that exists: the delayed bot
// reply landing while the owner reads.
type Log struct {
	mu       sync.Mutex
	messages []Message
}

// NewLog creates an empty conversation log.
func NewLog() *Log {
	return &Log{}
}

// Append adds a message to the end of the log.
func (l *Log) Append(msg Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

// Messages returns a copy of the transcript in append order.
func (l *Log) Messages() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Message(nil), l.messages...)
}

// Len returns the number of messages in the log.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}
