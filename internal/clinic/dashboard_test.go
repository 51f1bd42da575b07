package clinic

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsEmptyStore(t *testing.T) {
	d := NewDashboard(NewStore())

	stats, err := d.Stats(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.PatientCount)
	assert.Zero(t, stats.CompletionPct)
	assert.Zero(t, stats.AverageRating)
	assert.Nil(t, stats.NextSession)
	assert.Empty(t, stats.TherapyBreakdown)
}

func TestDashboardStatsWithSeedData(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	require.NoError(t, Seed(ctx, store, now))

	d := NewDashboard(store)
	stats, err := d.Stats(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.PatientCount)
	assert.Equal(t, int64(3), stats.SessionsScheduled)
	assert.Equal(t, int64(3), stats.SessionsCompleted)
	assert.Equal(t, int64(0), stats.SessionsCancelled)
	assert.Equal(t, 100.0, stats.CompletionPct)

	// Seeded ratings: 5, 4, 4.
	assert.Equal(t, 3, stats.FeedbackCount)
	assert.InDelta(t, 4.3, stats.AverageRating, 0.01)

	require.NotNil(t, stats.NextSession)
	assert.Equal(t, SessionScheduled, stats.NextSession.Status)
	assert.False(t, stats.NextSession.ScheduledAt.Before(now))

	require.NotEmpty(t, stats.TherapyBreakdown)
	// Shirodhara is booked twice in the seed and leads the breakdown.
	assert.Equal(t, TherapyShirodhara, stats.TherapyBreakdown[0].Therapy)
	assert.Equal(t, int64(2), stats.TherapyBreakdown[0].Count)
}

func TestDashboardCompletionPct(t *testing.T) {
	store := NewStore()
	patient, pract := seedBasics(t, store)
	ctx := context.Background()
	now := time.Now().UTC()

	var ids []TherapySession
	for i := 0; i < 4; i++ {
		sess, err := store.ScheduleSession(ctx, TherapySession{
			PatientID: patient.ID, PractitionerID: pract.ID,
			Therapy: TherapyAbhyanga, ScheduledAt: now.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
		ids = append(ids, sess)
	}

	_, err := store.CompleteSession(ctx, ids[0].ID, "")
	require.NoError(t, err)
	_, err = store.CompleteSession(ctx, ids[1].ID, "")
	require.NoError(t, err)
	_, err = store.CancelSession(ctx, ids[2].ID, "")
	require.NoError(t, err)

	stats, err := NewDashboard(store).Stats(ctx, now)
	require.NoError(t, err)
	assert.InDelta(t, 66.7, stats.CompletionPct, 0.01)
	assert.Equal(t, int64(1), stats.SessionsScheduled)
}
