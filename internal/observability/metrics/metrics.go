package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters for the chat assistant.
type ChatMetrics struct {
	conversationsStarted prometheus.Counter
	messagesTotal        *prometheus.CounterVec
	classifiedTotal      *prometheus.CounterVec
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		conversationsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ayursutra",
			Subsystem: "chat",
			Name:      "conversations_started_total",
			Help:      "Total chat widget sessions opened",
		}),
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ayursutra",
			Subsystem: "chat",
			Name:      "messages_total",
			Help:      "Total conversation messages appended",
		}, []string{"sender"}),
		classifiedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ayursutra",
			Subsystem: "chat",
			Name:      "classified_total",
			Help:      "Total utterances classified, by resolved topic",
		}, []string{"topic"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.conversationsStarted, m.messagesTotal, m.classifiedTotal)
	return m
}

func (m *ChatMetrics) ObserveConversationStarted() {
	if m == nil {
		return
	}
	m.conversationsStarted.Inc()
}

func (m *ChatMetrics) ObserveMessage(sender string) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(sender).Inc()
}

func (m *ChatMetrics) ObserveClassified(topic string) {
	if m == nil {
		return
	}
	m.classifiedTotal.WithLabelValues(topic).Inc()
}

// AccessMetrics exposes counters for navigation decisions.
type AccessMetrics struct {
	navigationTotal *prometheus.CounterVec
	loginsTotal     *prometheus.CounterVec
}

func NewAccessMetrics(reg prometheus.Registerer) *AccessMetrics {
	m := &AccessMetrics{
		navigationTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ayursutra",
			Subsystem: "access",
			Name:      "navigation_total",
			Help:      "Total navigation requests, by role and outcome",
		}, []string{"role", "outcome"}),
		loginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ayursutra",
			Subsystem: "access",
			Name:      "logins_total",
			Help:      "Total logins, by role",
		}, []string{"role"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.navigationTotal, m.loginsTotal)
	return m
}

// ObserveNavigation records a navigation decision. Outcome is "resolved" when
// the requested view was granted and "fallback" when it was redirected.
func (m *AccessMetrics) ObserveNavigation(role string, fallback bool) {
	if m == nil {
		return
	}
	outcome := "resolved"
	if fallback {
		outcome = "fallback"
	}
	m.navigationTotal.WithLabelValues(role, outcome).Inc()
}

func (m *AccessMetrics) ObserveLogin(role string) {
	if m == nil {
		return
	}
	m.loginsTotal.WithLabelValues(role).Inc()
}

// ReminderMetrics exposes counters for the task reminder worker.
type ReminderMetrics struct {
	dispatchedTotal *prometheus.CounterVec
}

func NewReminderMetrics(reg prometheus.Registerer) *ReminderMetrics {
	m := &ReminderMetrics{
		dispatchedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ayursutra",
			Subsystem: "reminders",
			Name:      "dispatched_total",
			Help:      "Total reminders dispatched, by role",
		}, []string{"role"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.dispatchedTotal)
	return m
}

func (m *ReminderMetrics) ObserveDispatched(role string) {
	if m == nil {
		return
	}
	m.dispatchedTotal.WithLabelValues(role).Inc()
}
