package clinic

import (
	"context"
	"math"
	"sort"
	"time"
)

// Stats holds the aggregated numbers behind the practitioner dashboard.
type Stats struct {
	PatientCount      int             `json:"patient_count"`
	SessionsScheduled int64           `json:"sessions_scheduled"`
	SessionsCompleted int64           `json:"sessions_completed"`
	SessionsCancelled int64           `json:"sessions_cancelled"`
	CompletionPct     float64         `json:"completion_pct"`
	AverageRating     float64         `json:"average_rating"`
	FeedbackCount     int             `json:"feedback_count"`
	TherapyBreakdown  []TherapyCount  `json:"therapy_breakdown"`
	NextSession       *TherapySession `json:"next_session,omitempty"`
}

// TherapyCount is the number of booked sessions for one therapy type.
type TherapyCount struct {
	Therapy Therapy `json:"therapy"`
	Count   int64   `json:"count"`
}

// Dashboard aggregates clinic metrics from the store.
type Dashboard struct {
	store *Store
}

// NewDashboard creates a dashboard over the given store.
func NewDashboard(store *Store) *Dashboard {
	if store == nil {
		panic("clinic: dashboard requires a store")
	}
	return &Dashboard{store: store}
}

// Stats computes the dashboard aggregates as of now.
func (d *Dashboard) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	patients, err := d.store.ListPatients(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := d.store.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	feedback, err := d.store.ListFeedback(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{PatientCount: len(patients)}

	byTherapy := make(map[Therapy]int64)
	for _, sess := range sessions {
		byTherapy[sess.Therapy]++
		switch sess.Status {
		case SessionScheduled:
			stats.SessionsScheduled++
			if !sess.ScheduledAt.Before(now) {
				if stats.NextSession == nil || sess.ScheduledAt.Before(stats.NextSession.ScheduledAt) {
					next := sess
					stats.NextSession = &next
				}
			}
		case SessionCompleted:
			stats.SessionsCompleted++
		case SessionCancelled:
			stats.SessionsCancelled++
		}
	}

	closed := stats.SessionsCompleted + stats.SessionsCancelled
	if closed > 0 {
		stats.CompletionPct = roundPct(float64(stats.SessionsCompleted) / float64(closed) * 100)
	}

	stats.FeedbackCount = len(feedback)
	if len(feedback) > 0 {
		var sum int
		for _, f := range feedback {
			sum += f.Rating
		}
		stats.AverageRating = math.Round(float64(sum)/float64(len(feedback))*10) / 10
	}

	stats.TherapyBreakdown = make([]TherapyCount, 0, len(byTherapy))
	for therapy, count := range byTherapy {
		stats.TherapyBreakdown = append(stats.TherapyBreakdown, TherapyCount{Therapy: therapy, Count: count})
	}
	sort.Slice(stats.TherapyBreakdown, func(i, j int) bool {
		if stats.TherapyBreakdown[i].Count != stats.TherapyBreakdown[j].Count {
			return stats.TherapyBreakdown[i].Count > stats.TherapyBreakdown[j].Count
		}
		return stats.TherapyBreakdown[i].Therapy < stats.TherapyBreakdown[j].Therapy
	})

	return stats, nil
}

func roundPct(v float64) float64 {
	return math.Round(v*10) / 10
}
