package clinic

import (
	"context"
	"fmt"
	"time"
)

// Seed loads the demo dataset the UI screens render out of the box: a small
// patient roster, two practitioners, a week of therapy sessions and a few
// feedback entries.
func Seed(ctx context.Context, store *Store, now time.Time) error {
	deepak, err := store.AddPractitioner(ctx, Practitioner{
		Name:      "Dr. Deepak Sharma",
		Specialty: "Panchakarma",
	})
	if err != nil {
		return fmt.Errorf("clinic seed: %w", err)
	}
	meera, err := store.AddPractitioner(ctx, Practitioner{
		Name:      "Dr. Meera Iyer",
		Specialty: "Shirodhara & stress care",
	})
	if err != nil {
		return fmt.Errorf("clinic seed: %w", err)
	}

	patients := []Patient{
		{Name: "Anita Desai", Age: 42, Dosha: DoshaVata, Condition: "Chronic insomnia", TherapyPlan: "14-day Panchakarma"},
		{Name: "Rahul Verma", Age: 35, Dosha: DoshaPitta, Condition: "Acidity and stress", TherapyPlan: "7-day Virechana course"},
		{Name: "Sunita Patel", Age: 58, Dosha: DoshaKapha, Condition: "Joint stiffness", TherapyPlan: "21-day Basti course"},
	}
	for i, p := range patients {
		patients[i], err = store.AddPatient(ctx, p)
		if err != nil {
			return fmt.Errorf("clinic seed: %w", err)
		}
	}

	day := now.Truncate(24 * time.Hour)
	sessions := []TherapySession{
		{PatientID: patients[0].ID, PractitionerID: deepak.ID, Therapy: TherapyAbhyanga, ScheduledAt: day.Add(-48 * time.Hour).Add(10 * time.Hour)},
		{PatientID: patients[0].ID, PractitionerID: meera.ID, Therapy: TherapyShirodhara, ScheduledAt: day.Add(-24 * time.Hour).Add(11 * time.Hour)},
		{PatientID: patients[1].ID, PractitionerID: deepak.ID, Therapy: TherapyVirechana, ScheduledAt: day.Add(-24 * time.Hour).Add(9 * time.Hour)},
		{PatientID: patients[0].ID, PractitionerID: deepak.ID, Therapy: TherapySwedana, ScheduledAt: day.Add(24 * time.Hour).Add(10 * time.Hour)},
		{PatientID: patients[1].ID, PractitionerID: meera.ID, Therapy: TherapyShirodhara, ScheduledAt: day.Add(24 * time.Hour).Add(14 * time.Hour)},
		{PatientID: patients[2].ID, PractitionerID: deepak.ID, Therapy: TherapyBasti, ScheduledAt: day.Add(48 * time.Hour).Add(9 * time.Hour)},
	}
	for i, sess := range sessions {
		sessions[i], err = store.ScheduleSession(ctx, sess)
		if err != nil {
			return fmt.Errorf("clinic seed: %w", err)
		}
	}

	// Past sessions are completed and rated.
	for _, idx := range []int{0, 1, 2} {
		if _, err := store.CompleteSession(ctx, sessions[idx].ID, ""); err != nil {
			return fmt.Errorf("clinic seed: %w", err)
		}
	}
	feedback := []Feedback{
		{PatientID: patients[0].ID, SessionID: sessions[0].ID, Rating: 5, Comment: "Felt deeply relaxed afterwards."},
		{PatientID: patients[0].ID, SessionID: sessions[1].ID, Rating: 4, Comment: "Slept better than I have in weeks."},
		{PatientID: patients[1].ID, SessionID: sessions[2].ID, Rating: 4},
	}
	for _, f := range feedback {
		if _, err := store.AddFeedback(ctx, f); err != nil {
			return fmt.Errorf("clinic seed: %w", err)
		}
	}

	return nil
}
