package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teenbridge/skillbridge/internal/common"
	"github.com/teenbridge/skillbridge/internal/config"
	"github.com/teenbridge/skillbridge/internal/logging"
	"github.com/teenbridge/skillbridge/internal/session"
	"github.com/teenbridge/skillbridge/internal/storage"
	"github.com/teenbridge/skillbridge/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	st, err := storage.NewFileStorage(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	s := store.New(st, log)
	require.NoError(t, s.Load(context.Background()))

	cfg := &config.Config{}
	cfg.LoadDefaults()

	return &App{
		config:  cfg,
		store:   s,
		session: session.NewManager(st),
		log:     log,
		reader:  rdr(""),
	}
}

// stubInputs replaces the interactive prompt seams with a scripted queue of
// text answers and a fixed password.
func stubInputs(t *testing.T, answers []string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	queue := append([]string{}, answers...)

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(queue) == 0 {
			return "", io.EOF
		}
		next := queue[0]
		queue = queue[1:]
		return next, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }

	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func TestRegister_Student(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, []string{"Alice", "alice@x.com", "student"}, "secret1")

	require.NoError(t, a.Register(ctx))

	require.NotNil(t, a.current)
	assert.Equal(t, store.RoleStudent, a.current.Role)
	assert.True(t, a.isLoggedIn())

	email, err := a.session.Email(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", email)
}

func TestRegister_ShortPasswordRejectedBeforeStore(t *testing.T) {
	a := newTestApp(t)

	stubInputs(t, []string{"Alice", "alice@x.com", "student"}, "abc")

	require.NoError(t, a.Register(context.Background()))

	assert.Nil(t, a.current)
	assert.True(t, a.store.Empty(), "no account may be created for a rejected password")
}

func TestRegister_InvalidRole(t *testing.T) {
	a := newTestApp(t)

	stubInputs(t, []string{"Alice", "alice@x.com", "teacher"}, "secret1")

	require.NoError(t, a.Register(context.Background()))
	assert.Nil(t, a.current)
	assert.True(t, a.store.Empty())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	_, err := a.store.CreateUser(ctx, "Alice", "alice@x.com", "secret1", store.RoleStudent)
	require.NoError(t, err)

	stubInputs(t, []string{"Bob", "alice@x.com", "job-provider"}, "other1")

	require.NoError(t, a.Register(ctx))
	assert.Nil(t, a.current, "conflicting signup must not log in")
}

func TestLogin(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	_, err := a.store.CreateUser(ctx, "Alice", "alice@x.com", "secret1", store.RoleStudent)
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		stubInputs(t, []string{"alice@x.com"}, "nope")
		require.NoError(t, a.Login(ctx))
		assert.Nil(t, a.current)
	})

	t.Run("success", func(t *testing.T) {
		stubInputs(t, []string{"alice@x.com"}, "secret1")
		require.NoError(t, a.Login(ctx))
		require.NotNil(t, a.current)
		assert.Equal(t, "Alice", a.current.Name)

		email, err := a.session.Email(ctx)
		require.NoError(t, err)
		assert.Equal(t, "alice@x.com", email)
	})
}

func TestLogout(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	u, err := a.store.CreateUser(ctx, "Alice", "alice@x.com", "secret1", store.RoleStudent)
	require.NoError(t, err)
	require.NoError(t, a.session.Set(ctx, u.Email))
	a.current = u

	require.NoError(t, a.Logout(ctx))

	assert.Nil(t, a.current)
	_, err = a.session.Email(ctx)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestRestoreSession(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	u, err := a.store.CreateUser(ctx, "Alice", "alice@x.com", "secret1", store.RoleStudent)
	require.NoError(t, err)

	t.Run("resolves to user", func(t *testing.T) {
		require.NoError(t, a.session.Set(ctx, u.Email))
		a.current = nil
		a.restoreSession(ctx)
		require.NotNil(t, a.current)
		assert.Equal(t, u.ID, a.current.ID)
	})

	t.Run("dangling email stays logged out", func(t *testing.T) {
		require.NoError(t, a.session.Set(ctx, "ghost@x.com"))
		a.current = nil
		a.restoreSession(ctx)
		assert.Nil(t, a.current)
	})

	t.Run("no session stays logged out", func(t *testing.T) {
		require.NoError(t, a.session.Clear(ctx))
		a.current = nil
		a.restoreSession(ctx)
		assert.Nil(t, a.current)
	})
}

func TestApply(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	provider, err := a.store.CreateUser(ctx, "Tech Inc", "jobs@tech.com", "secret1", store.RoleProvider)
	require.NoError(t, err)
	job, err := a.store.CreateJob(ctx, provider.ID, provider.Name, "Tutor", "part-time", "", "", "")
	require.NoError(t, err)

	student, err := a.store.CreateUser(ctx, "Alice", "alice@x.com", "secret1", store.RoleStudent)
	require.NoError(t, err)
	a.current = student

	stubInputs(t, []string{job.ID, job.ID}, "")

	require.NoError(t, a.Apply(ctx))
	require.NotNil(t, student.JobsApplied)
	assert.Equal(t, 1, *student.JobsApplied)

	// applying again is reported to the user, not an error, and the
	// counter stays at one
	require.NoError(t, a.Apply(ctx))
	assert.Equal(t, 1, *student.JobsApplied)
}

func TestApply_RequiresStudent(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	provider, err := a.store.CreateUser(ctx, "Tech Inc", "jobs@tech.com", "secret1", store.RoleProvider)
	require.NoError(t, err)
	a.current = provider

	stubInputs(t, []string{"any-id"}, "")

	require.NoError(t, a.Apply(ctx))
	assert.Empty(t, a.store.ListApplicationsForProvider(provider.ID))
}

func TestDeleteJob_Confirmed(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	provider, err := a.store.CreateUser(ctx, "Tech Inc", "jobs@tech.com", "secret1", store.RoleProvider)
	require.NoError(t, err)
	job, err := a.store.CreateJob(ctx, provider.ID, provider.Name, "Tutor", "part-time", "", "", "")
	require.NoError(t, err)
	a.current = provider

	stubInputs(t, []string{job.ID, "y"}, "")

	require.NoError(t, a.DeleteJob(ctx))
	assert.Empty(t, a.store.ListJobsByProvider(provider.ID))
}

func TestDeleteJob_Declined(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	provider, err := a.store.CreateUser(ctx, "Tech Inc", "jobs@tech.com", "secret1", store.RoleProvider)
	require.NoError(t, err)
	job, err := a.store.CreateJob(ctx, provider.ID, provider.Name, "Tutor", "part-time", "", "", "")
	require.NoError(t, err)
	a.current = provider

	stubInputs(t, []string{job.ID, "n"}, "")

	require.NoError(t, a.DeleteJob(ctx))
	assert.Len(t, a.store.ListJobsByProvider(provider.ID), 1, "declined confirmation must keep the job")
}

func TestDeleteJob_OtherProvidersJob(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	owner, err := a.store.CreateUser(ctx, "Tech Inc", "jobs@tech.com", "secret1", store.RoleProvider)
	require.NoError(t, err)
	job, err := a.store.CreateJob(ctx, owner.ID, owner.Name, "Tutor", "part-time", "", "", "")
	require.NoError(t, err)

	other, err := a.store.CreateUser(ctx, "Other Inc", "jobs@other.com", "secret1", store.RoleProvider)
	require.NoError(t, err)
	a.current = other

	stubInputs(t, []string{job.ID, "y"}, "")

	require.NoError(t, a.DeleteJob(ctx))
	assert.Len(t, a.store.ListJobsByProvider(owner.ID), 1, "a provider may only delete own postings")
}
