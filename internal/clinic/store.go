package clinic

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds the clinic dataset in memory. All screens read through it;
// there is no persistence behind it.
type Store struct {
	mu            sync.RWMutex
	patients      map[uuid.UUID]Patient
	practitioners map[uuid.UUID]Practitioner
	sessions      map[uuid.UUID]TherapySession
	feedback      []Feedback
}

// NewStore creates an empty clinic store.
func NewStore() *Store {
	return &Store{
		patients:      make(map[uuid.UUID]Patient),
		practitioners: make(map[uuid.UUID]Practitioner),
		sessions:      make(map[uuid.UUID]TherapySession),
	}
}

// AddPatient registers a patient record, assigning an ID when missing.
func (s *Store) AddPatient(_ context.Context, p Patient) (Patient, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients[p.ID] = p
	return p, nil
}

// GetPatient returns the patient with the given ID.
func (s *Store) GetPatient(_ context.Context, id uuid.UUID) (Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.patients[id]
	if !ok {
		return Patient{}, fmt.Errorf("patient %s: %w", id, ErrNotFound)
	}
	return p, nil
}

// ListPatients returns all patients ordered by name.
func (s *Store) ListPatients(_ context.Context) ([]Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Patient, 0, len(s.patients))
	for _, p := range s.patients {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// AddPractitioner registers a practitioner, assigning an ID when missing.
func (s *Store) AddPractitioner(_ context.Context, p Practitioner) (Practitioner, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.practitioners[p.ID] = p
	return p, nil
}

// ListPractitioners returns all practitioners ordered by name.
func (s *Store) ListPractitioners(_ context.Context) ([]Practitioner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Practitioner, 0, len(s.practitioners))
	for _, p := range s.practitioners {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ScheduleSession books a therapy session for an existing patient and
// practitioner.
func (s *Store) ScheduleSession(_ context.Context, sess TherapySession) (TherapySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[sess.PatientID]; !ok {
		return TherapySession{}, fmt.Errorf("patient %s: %w", sess.PatientID, ErrNotFound)
	}
	if _, ok := s.practitioners[sess.PractitionerID]; !ok {
		return TherapySession{}, fmt.Errorf("practitioner %s: %w", sess.PractitionerID, ErrNotFound)
	}

	if sess.ID == uuid.Nil {
		sess.ID = uuid.New()
	}
	if sess.Status == "" {
		sess.Status = SessionScheduled
	}
	if sess.Duration == 0 {
		sess.Duration = time.Hour
	}
	now := time.Now().UTC()
	sess.CreatedAt = now
	sess.UpdatedAt = now

	s.sessions[sess.ID] = sess
	return sess, nil
}

// GetSession returns the session with the given ID.
func (s *Store) GetSession(_ context.Context, id uuid.UUID) (TherapySession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return TherapySession{}, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return sess, nil
}

// ListSessions returns all sessions ordered by scheduled time.
func (s *Store) ListSessions(_ context.Context) ([]TherapySession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedSessions(func(TherapySession) bool { return true }), nil
}

// SessionsForPatient returns a patient's sessions ordered by scheduled time.
func (s *Store) SessionsForPatient(_ context.Context, patientID uuid.UUID) ([]TherapySession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedSessions(func(sess TherapySession) bool {
		return sess.PatientID == patientID
	}), nil
}

// UpcomingSessions returns scheduled sessions at or after the given time.
func (s *Store) UpcomingSessions(_ context.Context, from time.Time) ([]TherapySession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedSessions(func(sess TherapySession) bool {
		return sess.Status == SessionScheduled && !sess.ScheduledAt.Before(from)
	}), nil
}

func (s *Store) sortedSessions(keep func(TherapySession) bool) []TherapySession {
	out := make([]TherapySession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		if keep(sess) {
			out = append(out, sess)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out
}

// CompleteSession marks a scheduled session completed.
func (s *Store) CompleteSession(ctx context.Context, id uuid.UUID, notes string) (TherapySession, error) {
	return s.closeSession(id, SessionCompleted, notes)
}

// CancelSession marks a scheduled session cancelled.
func (s *Store) CancelSession(ctx context.Context, id uuid.UUID, notes string) (TherapySession, error) {
	return s.closeSession(id, SessionCancelled, notes)
}

func (s *Store) closeSession(id uuid.UUID, status SessionStatus, notes string) (TherapySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return TherapySession{}, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if sess.Status != SessionScheduled {
		return TherapySession{}, fmt.Errorf("session %s: %w", id, ErrSessionClosed)
	}

	sess.Status = status
	if notes != "" {
		sess.Notes = notes
	}
	sess.UpdatedAt = time.Now().UTC()
	s.sessions[id] = sess
	return sess, nil
}

// AddFeedback records a patient's rating for one of their sessions.
func (s *Store) AddFeedback(_ context.Context, f Feedback) (Feedback, error) {
	if f.Rating < 1 || f.Rating > 5 {
		return Feedback{}, ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[f.PatientID]; !ok {
		return Feedback{}, fmt.Errorf("patient %s: %w", f.PatientID, ErrNotFound)
	}
	if _, ok := s.sessions[f.SessionID]; !ok {
		return Feedback{}, fmt.Errorf("session %s: %w", f.SessionID, ErrNotFound)
	}

	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	s.feedback = append(s.feedback, f)
	return f, nil
}

// ListFeedback returns all feedback in submission order.
func (s *Store) ListFeedback(_ context.Context) ([]Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Feedback(nil), s.feedback...), nil
}
