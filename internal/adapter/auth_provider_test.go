package adapter

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/session"
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type memoryUsers struct {
	mu        sync.Mutex
	users     map[string]*model.UserRecord
	createErr error
}

func (m *memoryUsers) Create(ctx context.Context, dto model.CreateUserDTO) (*model.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	rec := &model.UserRecord{
		UserDTO: model.UserDTO{
			ID:          uuid.NewString(),
			Email:       dto.Email,
			Username:    dto.Username,
			DisplayName: dto.DisplayName,
			Confirmed:   dto.Confirmed,
			CreatedAt:   time.Now(),
		},
		PasswordHash: dto.PasswordHash,
	}
	m.users[rec.ID] = rec
	return rec, nil
}

func (m *memoryUsers) FindByEmail(ctx context.Context, email string) (*model.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) FindByID(ctx context.Context, id string) (*model.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (m *memoryUsers) MarkConfirmed(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.Confirmed = true
	return nil
}

type memoryTokens struct {
	mu            sync.Mutex
	blacklist     map[string]bool
	confirmations map[string]string
}

func (m *memoryTokens) BlacklistToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blacklist[tokenID] = true
	return nil
}

func (m *memoryTokens) IsTokenBlacklisted(ctx context.Context, tokenID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.blacklist[tokenID]
}

func (m *memoryTokens) SaveConfirmation(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmations[tokenHash] = userID
	return nil
}

func (m *memoryTokens) ConsumeConfirmation(ctx context.Context, tokenHash string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	userID := m.confirmations[tokenHash]
	delete(m.confirmations, tokenHash)
	return userID, nil
}

type recordingMailer struct {
	enabled bool
	bodies  []string
}

func (m *recordingMailer) Enabled() bool { return m.enabled }

func (m *recordingMailer) Send(ctx context.Context, to []string, subject string, body string) error {
	m.bodies = append(m.bodies, body)
	return nil
}

var confirmLinkPattern = regexp.MustCompile(`token=([0-9a-f]+)`)

func newTestProvider(mailer *recordingMailer) *AuthProvider {
	cfg := &config.AppConfig{
		JWTSecret:            "test-secret",
		JWTExp:               1,
		AppURL:               "http://localhost:8080",
		ConfirmationExpHours: 24,
	}
	return NewAuthProvider(cfg,
		&memoryUsers{users: map[string]*model.UserRecord{}},
		&memoryTokens{blacklist: map[string]bool{}, confirmations: map[string]string{}},
		mailer,
	)
}

func TestAuthProviderSignUpFlow(t *testing.T) {
	mailer := &recordingMailer{enabled: true}
	p := newTestProvider(mailer)
	ctx := context.Background()
	meta := model.SignUpMetadata{Username: "ahmed", DisplayName: "Ahmed"}

	require.NoError(t, p.SignUp(ctx, "ahmed@example.com", "Abc123", meta))

	t.Run("Duplicate Email Rejected", func(t *testing.T) {
		err := p.SignUp(ctx, "ahmed@example.com", "Abc123", meta)
		assert.ErrorIs(t, err, session.ErrAlreadyRegistered)
	})

	t.Run("Unconfirmed Cannot Sign In", func(t *testing.T) {
		_, err := p.SignIn(ctx, "ahmed@example.com", "Abc123")
		assert.ErrorIs(t, err, session.ErrEmailNotConfirmed)
	})

	t.Run("Confirmation Link Activates Account", func(t *testing.T) {
		require.Len(t, mailer.bodies, 1)
		match := confirmLinkPattern.FindStringSubmatch(mailer.bodies[0])
		require.Len(t, match, 2)
		token, err := url.QueryUnescape(match[1])
		require.NoError(t, err)

		require.NoError(t, p.ConfirmEmail(ctx, token))
		assert.ErrorIs(t, p.ConfirmEmail(ctx, token), session.ErrInvalidConfirmation)

		sess, err := p.SignIn(ctx, "ahmed@example.com", "Abc123")
		require.NoError(t, err)
		assert.Equal(t, "ahmed", sess.User.Username)
	})

	t.Run("Wrong Password Rejected", func(t *testing.T) {
		_, err := p.SignIn(ctx, "ahmed@example.com", "Wrong123")
		assert.ErrorIs(t, err, session.ErrInvalidCredentials)

		_, err = p.SignIn(ctx, "nobody@example.com", "Abc123")
		assert.ErrorIs(t, err, session.ErrInvalidCredentials)
	})
}

func TestAuthProviderSessionLifecycle(t *testing.T) {
	p := newTestProvider(&recordingMailer{})
	ctx := context.Background()
	require.NoError(t, p.SignUp(ctx, "user@example.com", "Abc123", model.SignUpMetadata{Username: "user"}))

	var events []model.AuthEvent
	unsubscribe := p.OnAuthStateChange(func(e model.AuthEvent) { events = append(events, e) })
	defer unsubscribe()

	sess, err := p.SignIn(ctx, "user@example.com", "Abc123")
	require.NoError(t, err)

	got, err := p.GetSession(ctx, sess.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, got.User.ID)

	require.NoError(t, p.SignOut(ctx, sess.AccessToken))

	_, err = p.GetSession(ctx, sess.AccessToken)
	assert.ErrorIs(t, err, session.ErrInvalidSession)

	require.Len(t, events, 2)
	assert.Equal(t, model.AuthEventSignedIn, events[0].Type)
	assert.Equal(t, model.AuthEventSignedOut, events[1].Type)
	assert.Equal(t, sess.AccessToken, events[1].Session.AccessToken)

	_, err = p.GetSession(ctx, "garbage")
	assert.ErrorIs(t, err, session.ErrInvalidSession)
}

func TestAuthProviderGoogle(t *testing.T) {
	p := newTestProvider(&recordingMailer{})
	ctx := context.Background()

	_, err := p.SignInWithGoogle(ctx, "token")
	assert.ErrorIs(t, err, session.ErrProviderDisabled)

	p.googleClientID = "client-id"
	p.validateGoogle = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		if !strings.HasPrefix(token, "good") {
			return nil, errors.New("bad token")
		}
		return &idtoken.Payload{Claims: map[string]interface{}{
			"email":          "Google.User@gmail.com",
			"email_verified": true,
			"name":           "Google User",
		}}, nil
	}

	_, err = p.SignInWithGoogle(ctx, "bad")
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)

	sess, err := p.SignInWithGoogle(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "google.user@gmail.com", sess.User.Email)
	assert.Equal(t, "Google User", sess.User.DisplayName)
	assert.True(t, sess.User.Confirmed)
}

func TestAuthProviderSignUpRace(t *testing.T) {
	ctx := context.Background()
	meta := model.SignUpMetadata{Username: "lina", DisplayName: "Lina"}

	t.Run("Concurrent Duplicate Maps To Already Registered", func(t *testing.T) {
		users := &memoryUsers{users: map[string]*model.UserRecord{}, createErr: fmt.Errorf("insert: %w", model.ErrDuplicateEmail)}
		p := NewAuthProvider(&config.AppConfig{JWTSecret: "secret", JWTExp: 1}, users,
			&memoryTokens{blacklist: map[string]bool{}, confirmations: map[string]string{}},
			&recordingMailer{})

		err := p.SignUp(ctx, "lina@example.com", "Abc123", meta)
		assert.ErrorIs(t, err, session.ErrAlreadyRegistered)
	})

	t.Run("Other Store Failures Pass Through", func(t *testing.T) {
		users := &memoryUsers{users: map[string]*model.UserRecord{}, createErr: errors.New("connection reset")}
		p := NewAuthProvider(&config.AppConfig{JWTSecret: "secret", JWTExp: 1}, users,
			&memoryTokens{blacklist: map[string]bool{}, confirmations: map[string]string{}},
			&recordingMailer{})

		err := p.SignUp(ctx, "lina@example.com", "Abc123", meta)
		require.Error(t, err)
		assert.NotErrorIs(t, err, session.ErrAlreadyRegistered)
	})
}
