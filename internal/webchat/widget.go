package webchat

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ayursutra/platform/internal/conversation"
	"github.com/ayursutra/platform/internal/intent"
	"github.com/ayursutra/platform/internal/observability/metrics"
	"github.com/ayursutra/platform/pkg/logging"
)

// Widget is one open chat widget instance. It owns its conversation log
// exclusively; closing the widget cancels any pending bot reply and discards
// the log. A reopened widget starts from a fresh log, so a reply scheduled
// before the close can never appear in the new conversation.
type Widget struct {
	id     string
	log    *conversation.Log
	engine *conversation.Engine

	ctx    context.Context
	cancel context.CancelFunc
}

// ID returns the widget instance identifier.
func (w *Widget) ID() string {
	return w.id
}

// Send appends the patient utterance and returns the resolved payload. The
// bot reply lands in the transcript after the engine's typing delay. Sending
// on a closed widget is ignored; ok reports whether the message was accepted.
func (w *Widget) Send(text string) (payload intent.Payload, ok bool) {
	if w.ctx.Err() != nil {
		return intent.Payload{}, false
	}
	return w.engine.Converse(w.ctx, w.log, text), true
}

// Messages returns a copy of the widget's transcript.
func (w *Widget) Messages() []conversation.Message {
	return w.log.Messages()
}

// Closed reports whether the widget has been torn down.
func (w *Widget) Closed() bool {
	return w.ctx.Err() != nil
}

// Manager tracks open chat widgets, one conversation log per instance.
type Manager struct {
	engine   *conversation.Engine
	greeting bool
	logger   *logging.Logger
	metrics  *metrics.ChatMetrics

	mu      sync.RWMutex
	widgets map[string]*Widget
}

// NewManager creates a widget manager. When greeting is enabled every new
// widget opens with the assistant's greeting as its sole message.
func NewManager(engine *conversation.Engine, greeting bool, logger *logging.Logger, m *metrics.ChatMetrics) *Manager {
	if engine == nil {
		panic("webchat: manager requires a conversation engine")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Manager{
		engine:   engine,
		greeting: greeting,
		logger:   logger,
		metrics:  m,
		widgets:  make(map[string]*Widget),
	}
}

// Open creates and registers a widget with a fresh, empty conversation log.
func (m *Manager) Open() *Widget {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Widget{
		id:     uuid.NewString(),
		log:    conversation.NewLog(),
		engine: m.engine,
		ctx:    ctx,
		cancel: cancel,
	}
	if m.greeting {
		m.engine.Greet(w.log)
	}

	m.mu.Lock()
	m.widgets[w.id] = w
	m.mu.Unlock()

	m.metrics.ObserveConversationStarted()
	m.logger.Info("chat widget opened", "widget_id", w.id)
	return w
}

// Get returns the open widget with the given ID, if any.
func (m *Manager) Get(id string) (*Widget, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.widgets[id]
	return w, ok
}

// OpenCount returns the number of currently open widgets.
func (m *Manager) OpenCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.widgets)
}

// Close tears down a widget: any pending bot reply is discarded and the
// conversation log is dropped with the instance.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	w, ok := m.widgets[id]
	if ok {
		delete(m.widgets, id)
	}
	m.mu.Unlock()

	if !ok {
		return
	}
	w.cancel()
	m.logger.Info("chat widget closed", "widget_id", id, "messages", w.log.Len())
}
