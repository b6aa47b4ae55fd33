package storage

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memoryDB holds every collection behind one lock so that multi-item
// operations (approval, swap) are atomic for concurrent readers.
type memoryDB struct {
	mu            sync.RWMutex
	programs      map[string]Program
	teams         map[string]Team
	students      map[string]Student
	registrations map[string]Registration
	results       map[string]Result
	publications  map[string]Publication
	replacements  map[string]Replacement
	assignments   map[string]Assignment
	window        RegistrationWindow
}

// NewMemoryStores returns stores backed by process memory. Used for local
// runs without DynamoDB and by tests.
func NewMemoryStores() *Stores {
	db := &memoryDB{
		programs:      make(map[string]Program),
		teams:         make(map[string]Team),
		students:      make(map[string]Student),
		registrations: make(map[string]Registration),
		results:       make(map[string]Result),
		publications:  make(map[string]Publication),
		replacements:  make(map[string]Replacement),
		assignments:   make(map[string]Assignment),
	}
	return &Stores{
		Programs:      &MemoryProgramStorage{db: db},
		Teams:         &MemoryTeamStorage{db: db},
		Students:      &MemoryStudentStorage{db: db},
		Registrations: &MemoryRegistrationStorage{db: db},
		Results:       &MemoryResultStorage{db: db},
		Replacements:  &MemoryReplacementStorage{db: db},
		Assignments:   &MemoryAssignmentStorage{db: db},
		Settings:      &MemorySettingsStorage{db: db},
	}
}

func getFrom[T any](db *memoryDB, m map[string]T, id string) *T {
	db.mu.RLock()
	defer db.mu.RUnlock()
	v, ok := m[id]
	if !ok {
		return nil
	}
	return &v
}

func listFrom[T any](db *memoryDB, m map[string]T, keep func(*T) bool) []*T {
	db.mu.RLock()
	defer db.mu.RUnlock()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*T, 0, len(keys))
	for _, k := range keys {
		v := m[k]
		if keep == nil || keep(&v) {
			out = append(out, &v)
		}
	}
	return out
}

func createIn[T any](db *memoryDB, m map[string]T, id string, v T) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, ok := m[id]; ok {
		return ErrItemWithIDAlreadyExists
	}
	m[id] = v
	return nil
}

func updateIn[T any](db *memoryDB, m map[string]T, id string, v T) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, ok := m[id]; !ok {
		return ErrItemNotFound
	}
	m[id] = v
	return nil
}

func deleteFrom[T any](db *memoryDB, m map[string]T, id string, mustExist bool) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, ok := m[id]; !ok && mustExist {
		return ErrItemNotFound
	}
	delete(m, id)
	return nil
}

type MemoryProgramStorage struct{ db *memoryDB }

func (s *MemoryProgramStorage) Get(_ context.Context, id string) (*Program, error) {
	return getFrom(s.db, s.db.programs, id), nil
}

func (s *MemoryProgramStorage) GetAll(_ context.Context) ([]*Program, error) {
	return listFrom(s.db, s.db.programs, nil), nil
}

func (s *MemoryProgramStorage) Create(_ context.Context, program *Program) error {
	return createIn(s.db, s.db.programs, program.ID, *program)
}

func (s *MemoryProgramStorage) Update(_ context.Context, program *Program) error {
	return updateIn(s.db, s.db.programs, program.ID, *program)
}

func (s *MemoryProgramStorage) Delete(_ context.Context, id string) error {
	return deleteFrom(s.db, s.db.programs, id, false)
}

type MemoryTeamStorage struct{ db *memoryDB }

func (s *MemoryTeamStorage) Get(_ context.Context, id string) (*Team, error) {
	return getFrom(s.db, s.db.teams, id), nil
}

func (s *MemoryTeamStorage) GetAll(_ context.Context) ([]*Team, error) {
	return listFrom(s.db, s.db.teams, nil), nil
}

func (s *MemoryTeamStorage) Create(_ context.Context, team *Team) error {
	return createIn(s.db, s.db.teams, team.ID, *team)
}

func (s *MemoryTeamStorage) Update(_ context.Context, team *Team) error {
	return updateIn(s.db, s.db.teams, team.ID, *team)
}

func (s *MemoryTeamStorage) Delete(_ context.Context, id string) error {
	return deleteFrom(s.db, s.db.teams, id, false)
}

type MemoryStudentStorage struct{ db *memoryDB }

func (s *MemoryStudentStorage) Get(_ context.Context, id string) (*Student, error) {
	return getFrom(s.db, s.db.students, id), nil
}

func (s *MemoryStudentStorage) GetAll(_ context.Context) ([]*Student, error) {
	return listFrom(s.db, s.db.students, nil), nil
}

func (s *MemoryStudentStorage) Create(_ context.Context, student *Student) error {
	return createIn(s.db, s.db.students, student.ID, *student)
}

func (s *MemoryStudentStorage) Update(_ context.Context, student *Student) error {
	return updateIn(s.db, s.db.students, student.ID, *student)
}

func (s *MemoryStudentStorage) Delete(_ context.Context, id string) error {
	return deleteFrom(s.db, s.db.students, id, false)
}

type MemoryRegistrationStorage struct{ db *memoryDB }

func (s *MemoryRegistrationStorage) Get(_ context.Context, programID, studentID string) (*Registration, error) {
	return getFrom(s.db, s.db.registrations, RegistrationKey(programID, studentID)), nil
}

func (s *MemoryRegistrationStorage) GetAll(_ context.Context) ([]*Registration, error) {
	return listFrom(s.db, s.db.registrations, nil), nil
}

func (s *MemoryRegistrationStorage) GetByProgram(_ context.Context, programID string) ([]*Registration, error) {
	return listFrom(s.db, s.db.registrations, func(r *Registration) bool {
		return r.ProgramID == programID
	}), nil
}

func (s *MemoryRegistrationStorage) Create(_ context.Context, registration *Registration) error {
	registration.Key = RegistrationKey(registration.ProgramID, registration.StudentID)
	return createIn(s.db, s.db.registrations, registration.Key, *registration)
}

func (s *MemoryRegistrationStorage) Delete(_ context.Context, programID, studentID string) error {
	return deleteFrom(s.db, s.db.registrations, RegistrationKey(programID, studentID), true)
}

type MemoryResultStorage struct{ db *memoryDB }

func cloneResult(r Result) Result {
	r.Entries = append([]ResultEntry(nil), r.Entries...)
	r.Penalties = append([]Penalty(nil), r.Penalties...)
	return r
}

func (s *MemoryResultStorage) Get(_ context.Context, id string) (*Result, error) {
	r := getFrom(s.db, s.db.results, id)
	if r == nil {
		return nil, nil
	}
	c := cloneResult(*r)
	return &c, nil
}

func (s *MemoryResultStorage) list(keep func(*Result) bool) []*Result {
	items := listFrom(s.db, s.db.results, keep)
	for i, r := range items {
		c := cloneResult(*r)
		items[i] = &c
	}
	return items
}

func (s *MemoryResultStorage) GetAll(_ context.Context) ([]*Result, error) {
	return s.list(nil), nil
}

func (s *MemoryResultStorage) GetByStatus(_ context.Context, status ResultStatus) ([]*Result, error) {
	return s.list(func(r *Result) bool { return r.Status == status }), nil
}

func (s *MemoryResultStorage) GetByProgram(_ context.Context, programID string) ([]*Result, error) {
	return s.list(func(r *Result) bool { return r.ProgramID == programID }), nil
}

func (s *MemoryResultStorage) IsPublished(_ context.Context, programID string) (bool, error) {
	return getFrom(s.db, s.db.publications, programID) != nil, nil
}

func (s *MemoryResultStorage) Create(_ context.Context, result *Result) error {
	return createIn(s.db, s.db.results, result.ID, cloneResult(*result))
}

func (s *MemoryResultStorage) Approve(_ context.Context, id, programID string, at time.Time) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.publications[programID]; ok {
		return ErrAlreadyPublished
	}
	r, ok := s.db.results[id]
	if !ok || r.Status != StatusPending {
		return ErrConditionFailed
	}
	r.Status = StatusApproved
	r.DecidedAt = &at
	s.db.results[id] = r
	s.db.publications[programID] = Publication{ProgramID: programID, ResultID: id, CreatedAt: at}
	return nil
}

func (s *MemoryResultStorage) Reject(_ context.Context, id string, at time.Time) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	r, ok := s.db.results[id]
	if !ok || r.Status != StatusPending {
		return ErrConditionFailed
	}
	r.Status = StatusRejected
	r.DecidedAt = &at
	s.db.results[id] = r
	return nil
}

func (s *MemoryResultStorage) ReplaceApproved(_ context.Context, result *Result) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	r, ok := s.db.results[result.ID]
	if !ok || r.Status != StatusApproved || r.ProgramID != result.ProgramID {
		return ErrConditionFailed
	}
	s.db.results[result.ID] = cloneResult(*result)
	return nil
}

func (s *MemoryResultStorage) DeleteApproved(_ context.Context, id, programID string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	r, ok := s.db.results[id]
	if !ok || r.Status != StatusApproved {
		return ErrConditionFailed
	}
	if p, ok := s.db.publications[programID]; !ok || p.ResultID != id {
		return ErrConditionFailed
	}
	delete(s.db.results, id)
	delete(s.db.publications, programID)
	return nil
}

type MemoryReplacementStorage struct{ db *memoryDB }

func (s *MemoryReplacementStorage) Get(_ context.Context, id string) (*Replacement, error) {
	return getFrom(s.db, s.db.replacements, id), nil
}

func (s *MemoryReplacementStorage) GetAll(_ context.Context) ([]*Replacement, error) {
	return listFrom(s.db, s.db.replacements, nil), nil
}

func (s *MemoryReplacementStorage) FindPending(_ context.Context, programID, oldStudentID string) (*Replacement, error) {
	items := listFrom(s.db, s.db.replacements, func(r *Replacement) bool {
		return r.ProgramID == programID && r.OldStudentID == oldStudentID && r.Status == StatusPending
	})
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

func (s *MemoryReplacementStorage) Create(_ context.Context, replacement *Replacement) error {
	return createIn(s.db, s.db.replacements, replacement.ID, *replacement)
}

func (s *MemoryReplacementStorage) Reject(_ context.Context, id string, at time.Time) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	r, ok := s.db.replacements[id]
	if !ok || r.Status != StatusPending {
		return ErrConditionFailed
	}
	r.Status = StatusRejected
	r.DecidedAt = &at
	s.db.replacements[id] = r
	return nil
}

func (s *MemoryReplacementStorage) ApproveWithSwap(_ context.Context, replacement *Replacement, registration *Registration, at time.Time) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	r, ok := s.db.replacements[replacement.ID]
	if !ok || r.Status != StatusPending {
		return ErrConditionFailed
	}
	oldKey := RegistrationKey(replacement.ProgramID, replacement.OldStudentID)
	if _, ok := s.db.registrations[oldKey]; !ok {
		return ErrConditionFailed
	}
	registration.Key = RegistrationKey(registration.ProgramID, registration.StudentID)
	if _, ok := s.db.registrations[registration.Key]; ok {
		return ErrItemWithIDAlreadyExists
	}

	delete(s.db.registrations, oldKey)
	s.db.registrations[registration.Key] = *registration
	r.Status = StatusApproved
	r.DecidedAt = &at
	s.db.replacements[r.ID] = r
	return nil
}

type MemoryAssignmentStorage struct{ db *memoryDB }

func (s *MemoryAssignmentStorage) Get(_ context.Context, programID, juryID string) (*Assignment, error) {
	return getFrom(s.db, s.db.assignments, AssignmentKey(programID, juryID)), nil
}

func (s *MemoryAssignmentStorage) GetAll(_ context.Context) ([]*Assignment, error) {
	return listFrom(s.db, s.db.assignments, nil), nil
}

func (s *MemoryAssignmentStorage) Create(_ context.Context, assignment *Assignment) error {
	assignment.Key = AssignmentKey(assignment.ProgramID, assignment.JuryID)
	return createIn(s.db, s.db.assignments, assignment.Key, *assignment)
}

func (s *MemoryAssignmentStorage) Delete(_ context.Context, programID, juryID string) error {
	return deleteFrom(s.db, s.db.assignments, AssignmentKey(programID, juryID), true)
}

type MemorySettingsStorage struct{ db *memoryDB }

func (s *MemorySettingsStorage) GetRegistrationWindow(_ context.Context) (RegistrationWindow, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.db.window, nil
}

func (s *MemorySettingsStorage) PutRegistrationWindow(_ context.Context, window RegistrationWindow) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.window = window
	return nil
}
