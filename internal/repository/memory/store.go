// Package memory is an in-process stand-in for the postgres-backed
// repositories. It is used when no database is configured and in tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/repository/contract"
	"career-ai-be/internal/repository/specification"
	"career-ai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	users        map[uuid.UUID]entity.Identity
	profiles     map[uuid.UUID]entity.Profile
	dashboards   map[uuid.UUID]entity.DashboardStats
	learning     []entity.LearningProgress
	jobMatches   []entity.JobMatch
	applications []entity.Application
	interviews   []entity.InterviewSession

	readErr  error
	writeErr error
}

func NewStore() *Store {
	return &Store{
		users:      make(map[uuid.UUID]entity.Identity),
		profiles:   make(map[uuid.UUID]entity.Profile),
		dashboards: make(map[uuid.UUID]entity.DashboardStats),
	}
}

// FailReads makes every subsequent read return err. Pass nil to recover.
func (s *Store) FailReads(err error) {
	s.mu.Lock()
	s.readErr = err
	s.mu.Unlock()
}

// FailWrites makes every subsequent write return err. Pass nil to recover.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	s.writeErr = err
	s.mu.Unlock()
}

func (s *Store) PutDashboard(stats entity.DashboardStats) {
	s.mu.Lock()
	s.dashboards[stats.UserId] = stats
	s.mu.Unlock()
}

func (s *Store) AddLearningProgress(rows ...entity.LearningProgress) {
	s.mu.Lock()
	s.learning = append(s.learning, rows...)
	s.mu.Unlock()
}

func (s *Store) AddJobMatches(rows ...entity.JobMatch) {
	s.mu.Lock()
	s.jobMatches = append(s.jobMatches, rows...)
	s.mu.Unlock()
}

func (s *Store) AddApplications(rows ...entity.Application) {
	s.mu.Lock()
	s.applications = append(s.applications, rows...)
	s.mu.Unlock()
}

func (s *Store) AddInterviewSessions(rows ...entity.InterviewSession) {
	s.mu.Lock()
	s.interviews = append(s.interviews, rows...)
	s.mu.Unlock()
}

// RepositoryFactory

type repositoryFactory struct {
	store *Store
}

func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &repositoryFactory{store: store}
}

func (f *repositoryFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

// unitOfWork has no rollback journal: writes are applied immediately.
type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Begin(context.Context) error { return nil }

func (u *unitOfWork) Commit() error { return nil }

func (u *unitOfWork) Rollback() error { return nil }

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return &userRepository{store: u.store}
}

func (u *unitOfWork) ProfileRepository() contract.ProfileRepository {
	return &profileRepository{store: u.store}
}

func (u *unitOfWork) CareerRepository() contract.CareerRepository {
	return &careerRepository{store: u.store}
}

// spec helpers

type filter struct {
	id      *uuid.UUID
	userId  *uuid.UUID
	email   string
	orderBy string
	desc    bool
	limit   int
	offset  int
}

func readSpecs(specs []specification.Specification) filter {
	var f filter
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			id := s.ID
			f.id = &id
		case specification.UserOwnedBy:
			id := s.UserID
			f.userId = &id
		case specification.ByEmail:
			f.email = strings.ToLower(strings.TrimSpace(s.Email))
		case specification.OrderBy:
			f.orderBy, f.desc = s.Field, s.Desc
		case specification.Pagination:
			p := s.Clamp()
			f.limit, f.offset = p.Limit, p.Offset
		}
	}
	return f
}

func sortAndPage[T any](rows []T, f filter, keys map[string]func(T) time.Time) []T {
	if key, ok := keys[f.orderBy]; ok {
		sort.SliceStable(rows, func(i, j int) bool {
			if f.desc {
				return key(rows[i]).After(key(rows[j]))
			}
			return key(rows[i]).Before(key(rows[j]))
		})
	}
	if f.offset > 0 {
		if f.offset >= len(rows) {
			return rows[:0]
		}
		rows = rows[f.offset:]
	}
	if f.limit > 0 && f.limit < len(rows) {
		rows = rows[:f.limit]
	}
	return rows
}

// users

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(_ context.Context, identity *entity.Identity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.writeErr != nil {
		return r.store.writeErr
	}

	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))
	for _, u := range r.store.users {
		if u.Email == identity.Email {
			return contract.ErrDuplicateEmail
		}
	}
	if identity.Id == uuid.Nil {
		identity.Id = uuid.New()
	}
	r.store.users[identity.Id] = *identity
	return nil
}

func (r *userRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Identity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.readErr != nil {
		return nil, r.store.readErr
	}

	f := readSpecs(specs)
	if f.id == nil && f.email == "" {
		return nil, nil
	}
	for _, u := range r.store.users {
		if f.id != nil && u.Id != *f.id {
			continue
		}
		if f.email != "" && u.Email != f.email {
			continue
		}
		found := u
		return &found, nil
	}
	return nil, nil
}

// profiles

type profileRepository struct {
	store *Store
}

func (r *profileRepository) Upsert(_ context.Context, profile *entity.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.writeErr != nil {
		return r.store.writeErr
	}

	now := time.Now()
	if existing, ok := r.store.profiles[profile.UserId]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	r.store.profiles[profile.UserId] = *profile
	return nil
}

func (r *profileRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.readErr != nil {
		return nil, r.store.readErr
	}

	f := readSpecs(specs)
	if f.userId == nil {
		return nil, nil
	}
	p, ok := r.store.profiles[*f.userId]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// career records

type careerRepository struct {
	store *Store
}

func (r *careerRepository) FindDashboard(_ context.Context, userId uuid.UUID) (*entity.DashboardStats, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.readErr != nil {
		return nil, r.store.readErr
	}

	d, ok := r.store.dashboards[userId]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func ownedRows[T any](rows []T, f filter, owner func(T) uuid.UUID) []T {
	res := make([]T, 0, len(rows))
	for _, row := range rows {
		if f.userId != nil && owner(row) != *f.userId {
			continue
		}
		res = append(res, row)
	}
	return res
}

func pointers[T any](rows []T) []*T {
	res := make([]*T, len(rows))
	for i := range rows {
		res[i] = &rows[i]
	}
	return res
}

func (r *careerRepository) FindLearningProgress(_ context.Context, specs ...specification.Specification) ([]*entity.LearningProgress, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.readErr != nil {
		return nil, r.store.readErr
	}

	f := readSpecs(specs)
	rows := ownedRows(r.store.learning, f, func(l entity.LearningProgress) uuid.UUID { return l.UserId })
	rows = sortAndPage(rows, f, map[string]func(entity.LearningProgress) time.Time{
		"updated_at": func(l entity.LearningProgress) time.Time { return l.UpdatedAt },
	})
	return pointers(rows), nil
}

func (r *careerRepository) FindJobMatches(_ context.Context, specs ...specification.Specification) ([]*entity.JobMatch, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.readErr != nil {
		return nil, r.store.readErr
	}

	f := readSpecs(specs)
	rows := ownedRows(r.store.jobMatches, f, func(j entity.JobMatch) uuid.UUID { return j.UserId })
	rows = sortAndPage(rows, f, map[string]func(entity.JobMatch) time.Time{
		"created_at": func(j entity.JobMatch) time.Time { return j.CreatedAt },
	})
	return pointers(rows), nil
}

func (r *careerRepository) FindApplications(_ context.Context, specs ...specification.Specification) ([]*entity.Application, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.readErr != nil {
		return nil, r.store.readErr
	}

	f := readSpecs(specs)
	rows := ownedRows(r.store.applications, f, func(a entity.Application) uuid.UUID { return a.UserId })
	rows = sortAndPage(rows, f, map[string]func(entity.Application) time.Time{
		"applied_on": func(a entity.Application) time.Time { return a.AppliedOn },
	})
	return pointers(rows), nil
}

func (r *careerRepository) FindInterviewSessions(_ context.Context, specs ...specification.Specification) ([]*entity.InterviewSession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.readErr != nil {
		return nil, r.store.readErr
	}

	f := readSpecs(specs)
	rows := ownedRows(r.store.interviews, f, func(i entity.InterviewSession) uuid.UUID { return i.UserId })
	rows = sortAndPage(rows, f, map[string]func(entity.InterviewSession) time.Time{
		"scheduled_at": func(i entity.InterviewSession) time.Time { return i.ScheduledAt },
	})
	return pointers(rows), nil
}
