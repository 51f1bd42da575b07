package intent

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ayursutra/platform/internal/observability/metrics"
	"github.com/ayursutra/platform/pkg/logging"
)

// Classify maps a free-text utterance to exactly one topic using ordered,
// case-insensitive substring matching. It is deterministic and total:
// unmatched input, including the empty string, resolves to TopicFallback.
func Classify(utterance string) Topic {
	m := strings.ToLower(utterance)

	switch {
	case containsAny(m, dietKeywords):
		return TopicDiet
	case containsAny(m, preparationKeywords):
		return TopicPreparation
	case containsAny(m, aftercareKeywords):
		return TopicAftercare
	case containsAny(m, lifestyleKeywords):
		// Inside the lifestyle cascade, stress words win over routine words,
		// and both win over plain lifestyle.
		if containsAny(m, wellnessOverrides) {
			return TopicWellness
		}
		if containsAny(m, routineOverrides) {
			return TopicRoutine
		}
		return TopicLifestyle
	case containsAny(m, wellnessKeywords):
		return TopicWellness
	case containsAny(m, routineKeywords):
		return TopicRoutine
	default:
		return TopicFallback
	}
}

func containsAny(message string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}

// Matcher wraps classification with tracing, metrics and logging for use by
// the conversation engine. The underlying decision logic is the pure
// Classify function.
type Matcher struct {
	logger  *logging.Logger
	tracer  trace.Tracer
	metrics *metrics.ChatMetrics
}

// NewMatcher creates an intent matcher.
func NewMatcher(logger *logging.Logger, m *metrics.ChatMetrics) *Matcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &Matcher{
		logger:  logger,
		tracer:  otel.Tracer("ayursutra/intent-matcher"),
		metrics: m,
	}
}

// Classify resolves an utterance to a topic, recording the decision.
func (m *Matcher) Classify(ctx context.Context, utterance string) Topic {
	_, span := m.tracer.Start(ctx, "intent.classify")
	defer span.End()

	topic := Classify(utterance)

	span.SetAttributes(attribute.String("intent.topic", string(topic)))
	m.metrics.ObserveClassified(string(topic))
	m.logger.Debug("utterance classified", "topic", topic, "length", len(utterance))

	return topic
}

// Respond returns the fixed payload for a topic.
func (m *Matcher) Respond(topic Topic) Payload {
	return Respond(topic)
}
