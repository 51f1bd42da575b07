package webchat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayursutra/platform/internal/conversation"
	"github.com/ayursutra/platform/internal/intent"
)

func newManager(t *testing.T, delay time.Duration) *Manager {
	t.Helper()
	engine := conversation.NewEngine(nil, delay, nil, nil)
	return NewManager(engine, true, nil, nil)
}

func TestOpenSeedsGreeting(t *testing.T) {
	m := newManager(t, 0)

	w := m.Open()
	msgs := w.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, conversation.SenderBot, msgs[0].Sender)
	assert.Equal(t, intent.Respond(intent.TopicGreeting).Text, msgs[0].Text)

	got, ok := m.Get(w.ID())
	require.True(t, ok)
	assert.Same(t, w, got)
	assert.Equal(t, 1, m.OpenCount())
}

func TestGreetingCanBeDisabled(t *testing.T) {
	engine := conversation.NewEngine(nil, 0, nil, nil)
	m := NewManager(engine, false, nil, nil)

	w := m.Open()
	assert.Equal(t, 0, len(w.Messages()))
}

func TestSendAppendsConversation(t *testing.T) {
	m := newManager(t, 0)
	w := m.Open()

	payload, ok := w.Send("How do I prepare before my session?")
	require.True(t, ok)
	assert.Equal(t, intent.TopicPreparation, payload.Topic)

	msgs := w.Messages()
	require.Len(t, msgs, 3) // greeting, patient, bot
	assert.Equal(t, conversation.SenderPatient, msgs[1].Sender)
	assert.Equal(t, conversation.SenderBot, msgs[2].Sender)
}

func TestSendOnClosedWidgetIgnored(t *testing.T) {
	m := newManager(t, 0)
	w := m.Open()
	m.Close(w.ID())

	require.True(t, w.Closed())
	_, ok := w.Send("hello?")
	assert.False(t, ok)
	assert.Equal(t, 1, len(w.Messages()), "closed widget log must not grow")
	assert.Equal(t, 0, m.OpenCount())
}

func TestCloseDiscardsPendingReply(t *testing.T) {
	m := newManager(t, 30*time.Millisecond)
	w := m.Open()

	_, ok := w.Send("diet question")
	require.True(t, ok)
	require.Equal(t, 2, len(w.Messages()), "greeting plus patient message")

	m.Close(w.ID())
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, 2, len(w.Messages()), "pending reply must not land after close")
}

func TestReopenStartsFreshLog(t *testing.T) {
	m := newManager(t, 30*time.Millisecond)

	first := m.Open()
	first.Send("tell me about diet")
	m.Close(first.ID())

	second := m.Open()
	require.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, 1, len(second.Messages()), "reopened widget starts with only the greeting")

	// A reply scheduled in the first widget must never surface in the second.
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 1, len(second.Messages()))
}

func TestCloseUnknownWidgetIsNoop(t *testing.T) {
	m := newManager(t, 0)
	m.Close("no-such-widget")
	assert.Equal(t, 0, m.OpenCount())
}
