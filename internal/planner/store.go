package planner

import (
	"context"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
)

const (
	maxNameLen     = 60
	maxLocationLen = 60
	maxNotesLen    = 220
)

// Slot is the durable storage the session collection lives in.
// Load is total: implementations fall back to DefaultWeek on an unset
// or corrupt slot and never fail. Save is best-effort per mutation.
type Slot interface {
	Load(ctx context.Context) []Session
	Save(ctx context.Context, sessions []Session) error
}

// Store is the authoritative in-memory holder of the session
// collection. Every mutator returns a fresh snapshot, keeps the
// collection sorted by (day, start) and fires a best-effort write to
// the slot. Unknown-id mutations are no-ops, not errors.
//
// The original planner ran on a single UI thread; handlers here run
// concurrently, so the store serializes itself with a mutex.
type Store struct {
	mutex    sync.Mutex
	slot     Slot
	sessions []Session
}

func NewStore(ctx context.Context, slot Slot) *Store {
	sessions := slot.Load(ctx)
	sortSessions(sessions)
	return &Store{
		slot:     slot,
		sessions: sessions,
	}
}

// Sessions returns a snapshot of the current collection.
func (s *Store) Sessions() []Session {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return snapshot(s.sessions)
}

func (s *Store) Create(ctx context.Context, draft SessionDraft) []Session {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	session := Session{ID: NewID()}
	applyDraft(&session, draft)

	s.sessions = append(snapshot(s.sessions), session)
	sortSessions(s.sessions)

	s.persist(ctx)
	return snapshot(s.sessions)
}

func (s *Store) Update(ctx context.Context, id string, draft SessionDraft) []Session {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		log.Tracef("update session: unknown id [%s], nothing to do", id)
		return snapshot(s.sessions)
	}

	s.sessions = snapshot(s.sessions)
	applyDraft(&s.sessions[i], draft)
	sortSessions(s.sessions)

	s.persist(ctx)
	return snapshot(s.sessions)
}

func (s *Store) Remove(ctx context.Context, id string) []Session {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		log.Tracef("remove session: unknown id [%s], nothing to do", id)
		return snapshot(s.sessions)
	}

	s.sessions = append(snapshot(s.sessions[:i]), s.sessions[i+1:]...)

	s.persist(ctx)
	return snapshot(s.sessions)
}

func (s *Store) ToggleCompleted(ctx context.Context, id string) []Session {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		log.Tracef("toggle session: unknown id [%s], nothing to do", id)
		return snapshot(s.sessions)
	}

	s.sessions = snapshot(s.sessions)
	s.sessions[i].Completed = !s.sessions[i].Completed

	s.persist(ctx)
	return snapshot(s.sessions)
}

// ReplaceAll swaps the whole collection, re-sorting defensively (the
// seeder already emits canonical order, so this is idempotent there).
func (s *Store) ReplaceAll(ctx context.Context, sessions []Session) []Session {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.sessions = snapshot(sessions)
	sortSessions(s.sessions)

	s.persist(ctx)
	return snapshot(s.sessions)
}

// AutoBalance discards the current collection and replaces it with the
// seeded default week. Destructive reset, not a merge.
func (s *Store) AutoBalance(ctx context.Context) []Session {
	return s.ReplaceAll(ctx, DefaultWeek())
}

func (s *Store) indexOf(id string) int {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			return i
		}
	}
	return -1
}

// persist writes the current collection to the slot, fire-and-forget:
// the in-memory collection stays the source of truth even if
// durability is temporarily lost. Callers must hold the mutex.
func (s *Store) persist(ctx context.Context) {
	if err := s.slot.Save(ctx, s.sessions); err != nil {
		log.Errorf("failed to persist %d sessions: %s", len(s.sessions), err)
	}
}

// applyDraft replaces every field except the id. Free-text fields are
// clipped to the data model caps; duration is taken as an opaque
// positive magnitude, range validation belongs to the form layer.
func applyDraft(session *Session, draft SessionDraft) {
	session.Name = clip(draft.Name, maxNameLen)
	session.Focus = draft.Focus
	session.Intensity = draft.Intensity
	session.Day = draft.Day
	session.Start = draft.Start
	session.Duration = draft.Duration
	session.Location = clip(draft.Location, maxLocationLen)
	session.Notes = clip(draft.Notes, maxNotesLen)
}

func clip(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

func sortSessions(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		di, dj := DayIndex(sessions[i].Day), DayIndex(sessions[j].Day)
		if di != dj {
			return di < dj
		}
		return sessions[i].Start < sessions[j].Start
	})
}

func snapshot(sessions []Session) []Session {
	cp := make([]Session, len(sessions))
	copy(cp, sessions)
	return cp
}
