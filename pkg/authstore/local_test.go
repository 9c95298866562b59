package authstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/pkg/logger"
	"career-ai-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *LocalStore {
	return NewLocalStore(
		memory.NewRepositoryFactory(memory.NewStore()),
		NewTokenIssuer("test-secret", time.Hour),
		NewMemoryRevocationList(),
		nil,
		logger.NewNopLogger(),
	)
}

var meta = entity.SignupMetadata{FullName: "Ada Lovelace", CareerGoal: "upskill", ExperienceLevel: "mid"}

func TestCreateIdentity(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	identity, session, err := store.CreateIdentity(ctx, "Ada@Example.com", "correct-horse", meta)
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", identity.Email)
	assert.Equal(t, meta, identity.Metadata)
	assert.NotEqual(t, "correct-horse", identity.PasswordHash)
	assert.Equal(t, identity.Id, session.UserId)
	assert.NotEmpty(t, session.AccessToken)

	got, err := store.GetSession(ctx, session.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, identity.Id, got.UserId)
	assert.Equal(t, "ada@example.com", got.Email)
}

func TestCreateIdentityRejects(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	_, _, err := store.CreateIdentity(ctx, "taken@example.com", "password123", meta)
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "duplicate email", email: "TAKEN@example.com", password: "password123", wantErr: ErrEmailAlreadyRegistered},
		{name: "malformed email", email: "not-an-email", password: "password123", wantErr: ErrInvalidEmail},
		{name: "short password", email: "new@example.com", password: "short", wantErr: ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, session, err := store.CreateIdentity(ctx, tt.email, tt.password, meta)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, identity)
			assert.Nil(t, session)
		})
	}
}

func TestSignIn(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	identity, _, err := store.CreateIdentity(ctx, "grace@example.com", "hopper-1906", meta)
	require.NoError(t, err)

	session, err := store.SignIn(ctx, "grace@example.com", "hopper-1906")
	require.NoError(t, err)
	assert.Equal(t, identity.Id, session.UserId)

	_, err = store.SignIn(ctx, "grace@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = store.SignIn(ctx, "nobody@example.com", "hopper-1906")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignOutRevokesSession(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	_, session, err := store.CreateIdentity(ctx, "linus@example.com", "penguins!", meta)
	require.NoError(t, err)

	require.NoError(t, store.SignOut(ctx, session.AccessToken))

	got, err := store.GetSession(ctx, session.AccessToken)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetSessionIgnoresBadTokens(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	for _, token := range []string{"", "garbage", "a.b.c"} {
		got, err := store.GetSession(ctx, token)
		assert.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestConcurrentSignupsForSameEmail(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		duplicate int
	)
	start := make(chan struct{})
	for n := 0; n < attempts; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, _, err := store.CreateIdentity(ctx, "a@b.com", "password123", meta)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, ErrEmailAlreadyRegistered):
				duplicate++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, duplicate)

	_, err := store.SignIn(ctx, "a@b.com", "password123")
	assert.NoError(t, err)
}

type recordingMailer struct {
	err  error
	sent chan [2]string
}

func (m *recordingMailer) SendWelcome(toEmail, fullName string) error {
	m.sent <- [2]string{toEmail, fullName}
	return m.err
}

type recordingLogger struct {
	logger.ILogger
	mu    sync.Mutex
	warns []string
	done  chan struct{}
}

func (l *recordingLogger) Warn(module, message string, _ map[string]interface{}) {
	l.mu.Lock()
	l.warns = append(l.warns, module+": "+message)
	l.mu.Unlock()
	close(l.done)
}

func newMailingStore(m *recordingMailer, log logger.ILogger) *LocalStore {
	return NewLocalStore(
		memory.NewRepositoryFactory(memory.NewStore()),
		NewTokenIssuer("test-secret", time.Hour),
		NewMemoryRevocationList(),
		m,
		log,
	)
}

func TestWelcomeMailSentAfterIdentityCreation(t *testing.T) {
	m := &recordingMailer{sent: make(chan [2]string, 1)}
	store := newMailingStore(m, logger.NewNopLogger())

	_, _, err := store.CreateIdentity(context.Background(), "Mail@Example.com", "password123", meta)
	require.NoError(t, err)

	select {
	case got := <-m.sent:
		assert.Equal(t, [2]string{"mail@example.com", "Ada Lovelace"}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("welcome mail was not sent")
	}
}

func TestWelcomeMailFailureIsOnlyLogged(t *testing.T) {
	m := &recordingMailer{err: errors.New("smtp down"), sent: make(chan [2]string, 1)}
	log := &recordingLogger{ILogger: logger.NewNopLogger(), done: make(chan struct{})}
	store := newMailingStore(m, log)

	identity, session, err := store.CreateIdentity(context.Background(), "fail@example.com", "password123", meta)
	require.NoError(t, err)
	assert.NotNil(t, identity)
	assert.NotNil(t, session)

	select {
	case <-log.done:
	case <-time.After(2 * time.Second):
		t.Fatal("mail failure was not logged")
	}
	log.mu.Lock()
	defer log.mu.Unlock()
	assert.Equal(t, []string{"AUTH: Failed to send welcome email"}, log.warns)
}

func TestNoMailWithoutMailer(t *testing.T) {
	store := newTestStore()
	_, _, err := store.CreateIdentity(context.Background(), "quiet@example.com", "password123", meta)
	assert.NoError(t, err)
}
