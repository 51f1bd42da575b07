package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestChatMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewChatMetrics(reg)

	m.ObserveConversationStarted()
	m.ObserveMessage("patient")
	m.ObserveMessage("patient")
	m.ObserveMessage("bot")
	m.ObserveClassified("diet")

	if got := testutil.ToFloat64(m.conversationsStarted); got != 1 {
		t.Errorf("conversations started = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.messagesTotal.WithLabelValues("patient")); got != 2 {
		t.Errorf("patient messages = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.classifiedTotal.WithLabelValues("diet")); got != 1 {
		t.Errorf("diet classifications = %v, want 1", got)
	}
}

func TestAccessMetricsOutcomeLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAccessMetrics(reg)

	m.ObserveNavigation("patient", false)
	m.ObserveNavigation("patient", true)
	m.ObserveNavigation("patient", true)
	m.ObserveLogin("practitioner")

	if got := testutil.ToFloat64(m.navigationTotal.WithLabelValues("patient", "resolved")); got != 1 {
		t.Errorf("resolved = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.navigationTotal.WithLabelValues("patient", "fallback")); got != 2 {
		t.Errorf("fallback = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.loginsTotal.WithLabelValues("practitioner")); got != 1 {
		t.Errorf("logins = %v, want 1", got)
	}
}

func TestNilReceiversAreSafe(t *testing.T) {
	var chat *ChatMetrics
	var access *AccessMetrics
	var rem *ReminderMetrics

	chat.ObserveConversationStarted()
	chat.ObserveMessage("bot")
	chat.ObserveClassified("fallback")
	access.ObserveNavigation("patient", true)
	access.ObserveLogin("patient")
	rem.ObserveDispatched("practitioner")
}
