package clinic

import (
	"time"

	"github.com/google/uuid"
)

// Dosha is the Ayurvedic constitution assigned to a patient.
type Dosha string

const (
	DoshaVata  Dosha = "vata"
	DoshaPitta Dosha = "pitta"
	DoshaKapha Dosha = "kapha"
)

// Therapy names a Panchakarma treatment offered by the clinic.
type Therapy string

const (
	TherapyAbhyanga   Therapy = "abhyanga"
	TherapyShirodhara Therapy = "shirodhara"
	TherapySwedana    Therapy = "swedana"
	TherapyVirechana  Therapy = "virechana"
	TherapyBasti      Therapy = "basti"
	TherapyNasya      Therapy = "nasya"
)

// SessionStatus tracks the lifecycle of a scheduled therapy session.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// Patient is a clinic patient record.
type Patient struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	Dosha       Dosha     `json:"dosha"`
	Condition   string    `json:"condition"`
	TherapyPlan string    `json:"therapy_plan"`
	CreatedAt   time.Time `json:"created_at"`
}

// Practitioner is a member of the treatment staff.
type Practitioner struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	CreatedAt time.Time `json:"created_at"`
}

// TherapySession is one scheduled treatment slot.
type TherapySession struct {
	ID             uuid.UUID     `json:"id"`
	PatientID      uuid.UUID     `json:"patient_id"`
	PractitionerID uuid.UUID     `json:"practitioner_id"`
	Therapy        Therapy       `json:"therapy"`
	ScheduledAt    time.Time     `json:"scheduled_at"`
	Duration       time.Duration `json:"duration"`
	Status         SessionStatus `json:"status"`
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Feedback is a patient's rating of a completed session.
type Feedback struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	SessionID uuid.UUID `json:"session_id"`
	Rating    int       `json:"rating"` // 1..5
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
