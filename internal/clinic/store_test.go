package clinic

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBasics(t *testing.T, store *Store) (Patient, Practitioner) {
	t.Helper()
	ctx := context.Background()

	patient, err := store.AddPatient(ctx, Patient{
		Name: "Anita Desai", Age: 42, Dosha: DoshaVata, Condition: "Insomnia",
	})
	require.NoError(t, err)

	pract, err := store.AddPractitioner(ctx, Practitioner{
		Name: "Dr. Deepak Sharma", Specialty: "Panchakarma",
	})
	require.NoError(t, err)

	return patient, pract
}

func TestAddPatientAssignsID(t *testing.T) {
	store := NewStore()
	patient, _ := seedBasics(t, store)

	assert.NotEqual(t, uuid.Nil, patient.ID)
	assert.False(t, patient.CreatedAt.IsZero())

	got, err := store.GetPatient(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, patient, got)
}

func TestGetPatientNotFound(t *testing.T) {
	store := NewStore()
	_, err := store.GetPatient(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleSessionValidatesReferences(t *testing.T) {
	store := NewStore()
	patient, pract := seedBasics(t, store)
	ctx := context.Background()

	_, err := store.ScheduleSession(ctx, TherapySession{
		PatientID:      uuid.New(),
		PractitionerID: pract.ID,
		Therapy:        TherapyAbhyanga,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.ScheduleSession(ctx, TherapySession{
		PatientID:      patient.ID,
		PractitionerID: uuid.New(),
		Therapy:        TherapyAbhyanga,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	sess, err := store.ScheduleSession(ctx, TherapySession{
		PatientID:      patient.ID,
		PractitionerID: pract.ID,
		Therapy:        TherapyAbhyanga,
		ScheduledAt:    time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, SessionScheduled, sess.Status)
	assert.Equal(t, time.Hour, sess.Duration)
}

func TestSessionLifecycle(t *testing.T) {
	store := NewStore()
	patient, pract := seedBasics(t, store)
	ctx := context.Background()

	sess, err := store.ScheduleSession(ctx, TherapySession{
		PatientID: patient.ID, PractitionerID: pract.ID, Therapy: TherapyShirodhara,
	})
	require.NoError(t, err)

	done, err := store.CompleteSession(ctx, sess.ID, "responded well")
	require.NoError(t, err)
	assert.Equal(t, SessionCompleted, done.Status)
	assert.Equal(t, "responded well", done.Notes)

	// A closed session cannot be closed again.
	_, err = store.CancelSession(ctx, sess.ID, "")
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestUpcomingSessionsFilterAndOrder(t *testing.T) {
	store := NewStore()
	patient, pract := seedBasics(t, store)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	past, err := store.ScheduleSession(ctx, TherapySession{
		PatientID: patient.ID, PractitionerID: pract.ID,
		Therapy: TherapyAbhyanga, ScheduledAt: now.Add(-2 * time.Hour),
	})
	require.NoError(t, err)

	later, err := store.ScheduleSession(ctx, TherapySession{
		PatientID: patient.ID, PractitionerID: pract.ID,
		Therapy: TherapyBasti, ScheduledAt: now.Add(48 * time.Hour),
	})
	require.NoError(t, err)

	soon, err := store.ScheduleSession(ctx, TherapySession{
		PatientID: patient.ID, PractitionerID: pract.ID,
		Therapy: TherapySwedana, ScheduledAt: now.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	cancelled, err := store.ScheduleSession(ctx, TherapySession{
		PatientID: patient.ID, PractitionerID: pract.ID,
		Therapy: TherapyNasya, ScheduledAt: now.Add(3 * time.Hour),
	})
	require.NoError(t, err)
	_, err = store.CancelSession(ctx, cancelled.ID, "patient request")
	require.NoError(t, err)

	upcoming, err := store.UpcomingSessions(ctx, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, soon.ID, upcoming[0].ID)
	assert.Equal(t, later.ID, upcoming[1].ID)
	_ = past
}

func TestAddFeedbackValidation(t *testing.T) {
	store := NewStore()
	patient, pract := seedBasics(t, store)
	ctx := context.Background()

	sess, err := store.ScheduleSession(ctx, TherapySession{
		PatientID: patient.ID, PractitionerID: pract.ID, Therapy: TherapyAbhyanga,
	})
	require.NoError(t, err)

	_, err = store.AddFeedback(ctx, Feedback{PatientID: patient.ID, SessionID: sess.ID, Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = store.AddFeedback(ctx, Feedback{PatientID: patient.ID, SessionID: sess.ID, Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = store.AddFeedback(ctx, Feedback{PatientID: patient.ID, SessionID: uuid.New(), Rating: 4})
	assert.ErrorIs(t, err, ErrNotFound)

	f, err := store.AddFeedback(ctx, Feedback{PatientID: patient.ID, SessionID: sess.ID, Rating: 5, Comment: "wonderful"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, f.ID)

	all, err := store.ListFeedback(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 5, all[0].Rating)
}

func TestListPatientsSortedByName(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, name := range []string{"Sunita Patel", "Anita Desai", "Rahul Verma"} {
		_, err := store.AddPatient(ctx, Patient{Name: name})
		require.NoError(t, err)
	}

	patients, err := store.ListPatients(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 3)
	assert.Equal(t, "Anita Desai", patients[0].Name)
	assert.Equal(t, "Rahul Verma", patients[1].Name)
	assert.Equal(t, "Sunita Patel", patients[2].Name)
}
