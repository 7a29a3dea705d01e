package service

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/session"
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthProvider struct {
	mu        sync.Mutex
	sessions  map[string]*model.Session
	signInErr error
	googleErr error
	resent    []string
	confirmed []string
}

func newFakeAuthProvider() *fakeAuthProvider {
	return &fakeAuthProvider{sessions: make(map[string]*model.Session)}
}

func (p *fakeAuthProvider) SignUp(ctx context.Context, email, password string, metadata model.SignUpMetadata) error {
	return nil
}

func (p *fakeAuthProvider) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	sess := &model.Session{AccessToken: "token-" + email, User: model.UserDTO{ID: "u1", Email: email}}
	p.mu.Lock()
	p.sessions[sess.AccessToken] = sess
	p.mu.Unlock()
	return sess, nil
}

func (p *fakeAuthProvider) SignOut(ctx context.Context, accessToken string) error {
	p.mu.Lock()
	delete(p.sessions, accessToken)
	p.mu.Unlock()
	return nil
}

func (p *fakeAuthProvider) GetSession(ctx context.Context, accessToken string) (*model.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if accessToken == "broken" {
		return nil, errBackendDown
	}
	sess, ok := p.sessions[accessToken]
	if !ok {
		return nil, session.ErrInvalidSession
	}
	return sess, nil
}

func (p *fakeAuthProvider) OnAuthStateChange(listener func(model.AuthEvent)) func() {
	return func() {}
}

func (p *fakeAuthProvider) ResendConfirmation(ctx context.Context, email string) error {
	p.resent = append(p.resent, email)
	return nil
}

func (p *fakeAuthProvider) ConfirmEmail(ctx context.Context, token string) error {
	if token != "valid-confirmation-token" {
		return session.ErrInvalidConfirmation
	}
	p.confirmed = append(p.confirmed, token)
	return nil
}

func (p *fakeAuthProvider) SignInWithGoogle(ctx context.Context, idToken string) (*model.Session, error) {
	if p.googleErr != nil {
		return nil, p.googleErr
	}
	return &model.Session{AccessToken: "google-token"}, nil
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeAuthProvider) {
	t.Helper()
	provider := newFakeAuthProvider()
	limiter := config.NewRateLimiter(time.Hour, 1)
	t.Cleanup(limiter.Stop)
	return NewAuthService(provider, nil, limiter, config.NewValidator()), provider
}

func TestAuthSignIn(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")

	t.Run("Success Returns Session", func(t *testing.T) {
		svc, _ := newAuthFixture(t)
		resp, err := svc.SignIn(ctx, model.SignInRequest{Email: " Amina@Example.com ", Password: "secret1"})
		require.NoError(t, err)
		require.NotNil(t, resp.Session)
		assert.Equal(t, "amina@example.com", resp.Session.User.Email)
		assert.Equal(t, model.NoticeSuccess, resp.Notice.Variant)
	})

	t.Run("Rejected Credentials", func(t *testing.T) {
		svc, provider := newAuthFixture(t)
		provider.signInErr = session.ErrInvalidCredentials

		resp, err := svc.SignIn(ctx, model.SignInRequest{Email: "amina@example.com", Password: "wrong-pass"})
		appErr, ok := helper.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
		assert.Nil(t, resp.Session)
		assert.Equal(t, model.NoticeError, resp.Notice.Variant)
	})

	t.Run("Invalid Form", func(t *testing.T) {
		svc, _ := newAuthFixture(t)
		_, err := svc.SignIn(ctx, model.SignInRequest{Email: "not-an-email", Password: "123"})
		appErr, ok := helper.AsAppError(err)
		require.True(t, ok)
		assert.Contains(t, appErr.Fields, "email")
		assert.Contains(t, appErr.Fields, "password")
	})
}

func TestAuthVerifyToken(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	svc, provider := newAuthFixture(t)
	provider.sessions["tok"] = &model.Session{AccessToken: "tok", User: model.UserDTO{ID: "u1"}}

	sess, err := svc.VerifyToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.User.ID)

	_, err = svc.VerifyToken(ctx, "unknown")
	appErr, _ := helper.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)

	_, err = svc.VerifyToken(ctx, "broken")
	appErr, _ = helper.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
}

func TestAuthSessionAndSignOut(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	svc, provider := newAuthFixture(t)
	provider.sessions["tok"] = &model.Session{AccessToken: "tok", User: model.UserDTO{ID: "u1"}}

	resp := svc.Session(ctx, "tok")
	assert.True(t, resp.Authenticated)

	notice := svc.SignOut(ctx, "tok")
	assert.Equal(t, model.NoticeSuccess, notice.Variant)

	resp = svc.Session(ctx, "tok")
	assert.False(t, resp.Authenticated)
	assert.Nil(t, resp.Session)
}

func TestAuthResendConfirmation(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	svc, provider := newAuthFixture(t)

	_, err := svc.ResendConfirmation(ctx, model.ResendConfirmationRequest{Email: "amina@example.com"}, "10.0.0.1")
	require.NoError(t, err)

	_, err = svc.ResendConfirmation(ctx, model.ResendConfirmationRequest{Email: "AMINA@example.com"}, "10.0.0.2")
	appErr, ok := helper.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, appErr.Code)
	assert.Equal(t, []string{"amina@example.com"}, provider.resent)
}

func TestAuthConfirmEmail(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")
	svc, provider := newAuthFixture(t)

	notice, err := svc.ConfirmEmail(ctx, model.ConfirmEmailRequest{Token: "valid-confirmation-token"})
	require.NoError(t, err)
	assert.Equal(t, model.NoticeSuccess, notice.Variant)
	assert.Len(t, provider.confirmed, 1)

	_, err = svc.ConfirmEmail(ctx, model.ConfirmEmailRequest{Token: "stale-confirmation-token"})
	appErr, ok := helper.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestAuthGoogle(t *testing.T) {
	ctx := helper.WithLocale(context.Background(), "en")

	t.Run("Disabled Provider", func(t *testing.T) {
		svc, provider := newAuthFixture(t)
		provider.googleErr = session.ErrProviderDisabled
		_, err := svc.SignInWithGoogle(ctx, model.GoogleSignInRequest{IDToken: "x"})
		appErr, _ := helper.AsAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Rejected Token", func(t *testing.T) {
		svc, provider := newAuthFixture(t)
		provider.googleErr = errors.Join(session.ErrInvalidCredentials, errors.New("audience mismatch"))
		_, err := svc.SignInWithGoogle(ctx, model.GoogleSignInRequest{IDToken: "x"})
		appErr, _ := helper.AsAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})
}
