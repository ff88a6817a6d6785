package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teenbridge/skillbridge/internal/common"
	"github.com/teenbridge/skillbridge/internal/logging"
	"github.com/teenbridge/skillbridge/internal/storage"
)

// DataKey is the storage slot holding the whole persisted state.
const DataKey = "teenSkillBridgeData"

// schemaVersion is written with every Save.
const schemaVersion = 1

// Store owns the users, jobs and studentApplications collections.
//
// Every mutating operation persists the complete state before returning;
// Save is the commit point, there is no partial or incremental persistence.
// The Store expects a single logical writer and performs no locking; if two
// processes share one data directory, the last Save wins.
type Store struct {
	storage storage.Storage
	log     logging.Logger
	state   *persistedState

	// nowFn is a test seam for timestamps.
	nowFn func() time.Time
}

// New returns an empty, not-yet-loaded Store. Call Load before use.
func New(st storage.Storage, log logging.Logger) *Store {
	return &Store{
		storage: st,
		log:     log.With("component", "store"),
		state:   emptyState(),
		nowFn:   func() time.Time { return time.Now().UTC() },
	}
}

func emptyState() *persistedState {
	return &persistedState{
		Users:               []*User{},
		Jobs:                []*Job{},
		StudentApplications: []*Application{},
	}
}

// Load reads and deserializes the persisted blob. A missing slot initializes
// empty collections. A corrupt blob also falls back to empty collections:
// the condition is logged, not propagated, so startup never aborts on bad
// state. Only storage I/O failures are returned.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.storage.Get(ctx, DataKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.state = emptyState()
			return nil
		}
		return fmt.Errorf("load state: %w", err)
	}

	st := emptyState()
	if err := json.Unmarshal(data, st); err != nil {
		s.log.Warn(ctx, "discarding unreadable persisted state, starting empty",
			"error", err, "cause", common.ErrPersistedStateCorrupt)
		s.state = emptyState()
		return nil
	}

	// normalize nil collections from hand-edited or pre-version blobs
	if st.Users == nil {
		st.Users = []*User{}
	}
	if st.Jobs == nil {
		st.Jobs = []*Job{}
	}
	if st.StudentApplications == nil {
		st.StudentApplications = []*Application{}
	}

	s.state = st
	s.log.Info(ctx, "state loaded",
		"users", len(st.Users), "jobs", len(st.Jobs), "applications", len(st.StudentApplications))
	return nil
}

// Save serializes the complete current state and overwrites the blob slot.
func (s *Store) Save(ctx context.Context) error {
	s.state.SchemaVersion = schemaVersion

	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := s.storage.Set(ctx, DataKey, data); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// FindUserByCredentials returns the user whose email and password both match
// exactly. No normalization is applied to either field.
func (s *Store) FindUserByCredentials(email, password string) (*User, error) {
	for _, u := range s.state.Users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

// FindUserByEmail returns the user with the given email, exact match.
func (s *Store) FindUserByEmail(email string) (*User, error) {
	for _, u := range s.state.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

// CreateUser inserts a new user. It fails with common.ErrDuplicateEmail when
// any existing user has the same email, leaving the collection unchanged.
// Students start with an empty skills list and zeroed counters; providers
// carry none of those fields. Field validation is the caller's concern.
func (s *Store) CreateUser(ctx context.Context, name, email, password string, role Role) (*User, error) {
	if _, err := s.FindUserByEmail(email); err == nil {
		return nil, fmt.Errorf("user %s: %w", email, common.ErrDuplicateEmail)
	}

	u := &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: s.nowFn(),
	}
	if role == RoleStudent {
		u.Skills = []string{}
		u.JobsApplied = new(int)
		u.CoursesEnrolled = new(int)
	}

	s.state.Users = append(s.state.Users, u)
	if err := s.Save(ctx); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user created", "id", u.ID, "role", u.Role)
	return u, nil
}

// CreateJob inserts a new posting. The provider id is trusted as supplied;
// the Store does not verify it references a provider account.
func (s *Store) CreateJob(ctx context.Context, providerID, providerName, title, jobType, description, skills, pay string) (*Job, error) {
	j := &Job{
		ID:           uuid.NewString(),
		ProviderID:   providerID,
		ProviderName: providerName,
		Title:        title,
		Type:         jobType,
		Description:  description,
		Skills:       skills,
		Pay:          pay,
		PostedAt:     s.nowFn(),
	}

	s.state.Jobs = append(s.state.Jobs, j)
	if err := s.Save(ctx); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "job created", "id", j.ID, "provider", j.ProviderID)
	return j, nil
}

// DeleteJob removes the posting and cascades to every application that
// references it. Deleting a nonexistent job is a no-op, not an error.
// Student jobsApplied counters are intentionally left untouched by the
// cascade; they count applications ever made, not applications alive.
func (s *Store) DeleteJob(ctx context.Context, jobID string) error {
	jobs := []*Job{}
	removed := false
	for _, j := range s.state.Jobs {
		if j.ID == jobID {
			removed = true
			continue
		}
		jobs = append(jobs, j)
	}
	if !removed {
		return nil
	}

	apps := []*Application{}
	cascaded := 0
	for _, a := range s.state.StudentApplications {
		if a.JobID == jobID {
			cascaded++
			continue
		}
		apps = append(apps, a)
	}

	s.state.Jobs = jobs
	s.state.StudentApplications = apps

	if err := s.Save(ctx); err != nil {
		return err
	}

	s.log.Info(ctx, "job deleted", "id", jobID, "cascaded_applications", cascaded)
	return nil
}

// ListJobs returns all postings in insertion order, oldest first.
func (s *Store) ListJobs() []*Job {
	return append([]*Job{}, s.state.Jobs...)
}

// ListJobsByProvider returns the provider's postings, same order as ListJobs.
func (s *Store) ListJobsByProvider(providerID string) []*Job {
	result := []*Job{}
	for _, j := range s.state.Jobs {
		if j.ProviderID == providerID {
			result = append(result, j)
		}
	}
	return result
}

// FindJob returns the posting with the given id.
func (s *Store) FindJob(jobID string) (*Job, error) {
	for _, j := range s.state.Jobs {
		if j.ID == jobID {
			return j, nil
		}
	}
	return nil, fmt.Errorf("job %s: %w", jobID, common.ErrJobNotFound)
}

// HasApplied reports whether the student already has an application for the job.
func (s *Store) HasApplied(studentID, jobID string) bool {
	for _, a := range s.state.StudentApplications {
		if a.StudentID == studentID && a.JobID == jobID {
			return true
		}
	}
	return false
}

// CreateApplication records the student's interest in a job.
//
// It fails with common.ErrJobNotFound when the job does not exist and with
// common.ErrAlreadyApplied when an application for the (student, job) pair
// is already present. On success it stores a denormalized snapshot of the
// student and job fields and increments the student's jobsApplied counter
// by exactly one.
func (s *Store) CreateApplication(ctx context.Context, studentID, jobID string) (*Application, error) {
	job, err := s.FindJob(jobID)
	if err != nil {
		return nil, err
	}

	if s.HasApplied(studentID, jobID) {
		return nil, fmt.Errorf("student %s, job %s: %w", studentID, jobID, common.ErrAlreadyApplied)
	}

	var student *User
	for _, u := range s.state.Users {
		if u.ID == studentID {
			student = u
			break
		}
	}
	if student == nil {
		return nil, fmt.Errorf("student %s: %w", studentID, common.ErrNotFound)
	}

	a := &Application{
		ID:           uuid.NewString(),
		StudentID:    student.ID,
		StudentName:  student.Name,
		StudentEmail: student.Email,
		JobID:        job.ID,
		JobTitle:     job.Title,
		ProviderID:   job.ProviderID,
		AppliedAt:    s.nowFn(),
	}

	s.state.StudentApplications = append(s.state.StudentApplications, a)

	if student.JobsApplied == nil {
		student.JobsApplied = new(int)
	}
	*student.JobsApplied++

	if err := s.Save(ctx); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "application created", "id", a.ID, "student", a.StudentID, "job", a.JobID)
	return a, nil
}

// ListApplicationsForProvider returns every application targeting one of the
// provider's postings, in insertion order.
func (s *Store) ListApplicationsForProvider(providerID string) []*Application {
	ownedJobs := make(map[string]struct{})
	for _, j := range s.state.Jobs {
		if j.ProviderID == providerID {
			ownedJobs[j.ID] = struct{}{}
		}
	}

	result := []*Application{}
	for _, a := range s.state.StudentApplications {
		if _, ok := ownedJobs[a.JobID]; ok {
			result = append(result, a)
		}
	}
	return result
}

// Empty reports whether the store holds no user accounts.
func (s *Store) Empty() bool {
	return len(s.state.Users) == 0
}
