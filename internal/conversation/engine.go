package conversation

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ayursutra/platform/internal/intent"
	"github.com/ayursutra/platform/internal/observability/metrics"
	"github.com/ayursutra/platform/pkg/logging"
)

// Engine turns patient utterances into transcript entries. The patient
// message is appended and classified synchronously; the bot reply is appended
// after a typing delay so the widget can show a typing indicator. A reply
// delay of zero appends the bot message inline, which tests rely on.
type Engine struct {
	matcher    *intent.Matcher
	replyDelay time.Duration
	logger     *logging.Logger
	tracer     trace.Tracer
	metrics    *metrics.ChatMetrics
}

// NewEngine creates a conversation engine.
func NewEngine(matcher *intent.Matcher, replyDelay time.Duration, logger *logging.Logger, m *metrics.ChatMetrics) *Engine {
	if matcher == nil {
		matcher = intent.NewMatcher(logger, m)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Engine{
		matcher:    matcher,
		replyDelay: replyDelay,
		logger:     logger,
		tracer:     otel.Tracer("ayursutra/conversation"),
		metrics:    m,
	}
}

// Greet seeds the greeting as the sole bot message of an empty log. This is
// the widget-open initialization rule, not a classification result; a
// non-empty log is left untouched.
func (e *Engine) Greet(log *Log) {
	if log.Len() > 0 {
		return
	}
	payload := intent.Respond(intent.TopicGreeting)
	log.Append(NewMessage(SenderBot, payload.Text, payload.Suggestions))
	e.metrics.ObserveMessage(string(SenderBot))
}

// Converse appends the patient utterance to the log, classifies it and
// returns the resolved payload immediately. The bot message carrying the
// payload is appended after the typing delay; cancelling ctx before the
// delay elapses discards the pending reply, so a reply can never land in a
// torn-down or recreated log. The patient message is always visible before
// its bot reply.
func (e *Engine) Converse(ctx context.Context, log *Log, utterance string) intent.Payload {
	ctx, span := e.tracer.Start(ctx, "conversation.converse")
	defer span.End()

	// The initialization rule applies even when the caller skipped the
	// widget-open greeting: an empty log is seeded before anything else.
	e.Greet(log)

	log.Append(NewMessage(SenderPatient, utterance, nil))
	e.metrics.ObserveMessage(string(SenderPatient))

	topic := e.matcher.Classify(ctx, utterance)
	payload := intent.Respond(topic)
	span.SetAttributes(attribute.String("conversation.topic", string(topic)))

	if e.replyDelay <= 0 {
		e.appendReply(log, payload)
		return payload
	}

	timer := time.NewTimer(e.replyDelay)
	go func() {
		defer timer.Stop()
		select {
		case <-ctx.Done():
			e.logger.Debug("pending bot reply discarded", "topic", topic)
		case <-timer.C:
			e.appendReply(log, payload)
		}
	}()

	return payload
}

func (e *Engine) appendReply(log *Log, payload intent.Payload) {
	log.Append(NewMessage(SenderBot, payload.Text, payload.Suggestions))
	e.metrics.ObserveMessage(string(SenderBot))
}
