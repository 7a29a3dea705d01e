package session

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	mu        sync.Mutex
	listeners map[int]func(model.AuthEvent)
	nextID    int

	signUpErr    error
	signInErr    error
	signOutErr   error
	sessions     map[string]*model.Session
	signUps      []model.SignUpMetadata
	signOutCalls int

	beforeGetSession func()
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		listeners: make(map[int]func(model.AuthEvent)),
		sessions:  make(map[string]*model.Session),
	}
}

func (p *fakeProvider) SignUp(ctx context.Context, email, password string, metadata model.SignUpMetadata) error {
	p.mu.Lock()
	p.signUps = append(p.signUps, metadata)
	p.mu.Unlock()
	return p.signUpErr
}

func (p *fakeProvider) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	sess := &model.Session{AccessToken: "token-" + email, User: model.UserDTO{ID: "u1", Email: email}}
	p.mu.Lock()
	p.sessions[sess.AccessToken] = sess
	p.mu.Unlock()
	p.emit(model.AuthEvent{Type: model.AuthEventSignedIn, Session: sess})
	return sess, nil
}

func (p *fakeProvider) SignOut(ctx context.Context, accessToken string) error {
	p.mu.Lock()
	p.signOutCalls++
	sess := p.sessions[accessToken]
	delete(p.sessions, accessToken)
	p.mu.Unlock()
	if p.signOutErr != nil {
		return p.signOutErr
	}
	if sess != nil {
		p.emit(model.AuthEvent{Type: model.AuthEventSignedOut, Session: sess})
	}
	return nil
}

func (p *fakeProvider) GetSession(ctx context.Context, accessToken string) (*model.Session, error) {
	if p.beforeGetSession != nil {
		p.beforeGetSession()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	sess, ok := p.sessions[accessToken]
	if !ok {
		return nil, ErrInvalidSession
	}
	return sess, nil
}

func (p *fakeProvider) OnAuthStateChange(listener func(model.AuthEvent)) func() {
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.listeners[id] = listener
	p.mu.Unlock()
	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

func (p *fakeProvider) emit(event model.AuthEvent) {
	p.mu.Lock()
	listeners := make([]func(model.AuthEvent), 0, len(p.listeners))
	for _, l := range p.listeners {
		listeners = append(listeners, l)
	}
	p.mu.Unlock()
	for _, l := range listeners {
		l(event)
	}
}

func (p *fakeProvider) listenerCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.listeners)
}

func TestInit(t *testing.T) {
	t.Run("Pull Restores Session", func(t *testing.T) {
		p := newFakeProvider()
		p.sessions["tok"] = &model.Session{AccessToken: "tok", User: model.UserDTO{ID: "u1"}}

		c := NewContext(p, "en")
		defer c.Close()
		c.Init(context.Background(), "tok")

		require.NotNil(t, c.Session())
		assert.Equal(t, "u1", c.User().ID)
		assert.False(t, c.Loading())
	})

	t.Run("Push Before Pull Is Idempotent", func(t *testing.T) {
		p := newFakeProvider()
		sess := &model.Session{AccessToken: "tok", User: model.UserDTO{ID: "u1"}}
		p.sessions["tok"] = sess
		p.beforeGetSession = func() {
			p.emit(model.AuthEvent{Type: model.AuthEventSignedIn, Session: sess})
		}

		c := NewContext(p, "en")
		defer c.Close()
		c.Init(context.Background(), "tok")

		assert.Equal(t, sess, c.Session())
	})

	t.Run("Sign Out Push Wins Over Late Pull", func(t *testing.T) {
		p := newFakeProvider()
		sess := &model.Session{AccessToken: "tok", User: model.UserDTO{ID: "u1"}}
		p.sessions["tok"] = sess
		p.beforeGetSession = func() {
			p.emit(model.AuthEvent{Type: model.AuthEventSignedOut, Session: sess})
		}

		c := NewContext(p, "en")
		defer c.Close()
		c.Init(context.Background(), "tok")

		assert.Nil(t, c.Session())
	})

	t.Run("Unknown Token Leaves Unauthenticated", func(t *testing.T) {
		p := newFakeProvider()
		c := NewContext(p, "en")
		defer c.Close()
		c.Init(context.Background(), "missing")

		assert.Nil(t, c.Session())
		assert.False(t, c.State().Authenticated())
	})

	t.Run("Events For Other Sessions Ignored", func(t *testing.T) {
		p := newFakeProvider()
		p.sessions["tok"] = &model.Session{AccessToken: "tok"}
		c := NewContext(p, "en")
		defer c.Close()
		c.Init(context.Background(), "tok")

		p.emit(model.AuthEvent{Type: model.AuthEventSignedOut, Session: &model.Session{AccessToken: "other"}})
		assert.NotNil(t, c.Session())
	})

	t.Run("Close Releases Subscription", func(t *testing.T) {
		p := newFakeProvider()
		c := NewContext(p, "en")
		c.Init(context.Background(), "")
		assert.Equal(t, 1, p.listenerCount())
		c.Close()
		assert.Equal(t, 0, p.listenerCount())
	})
}

func TestSignUp(t *testing.T) {
	valid := model.SignUpRequest{Email: "Ahmed@Example.com", Password: "Abc123", ConfirmPassword: "Abc123"}

	t.Run("Success Keeps Session Unauthenticated", func(t *testing.T) {
		p := newFakeProvider()
		c := NewContext(p, "en")

		notice, err := c.SignUp(context.Background(), valid)
		require.NoError(t, err)
		assert.Equal(t, model.NoticeSuccess, notice.Variant)
		assert.Nil(t, c.Session())

		require.Len(t, p.signUps, 1)
		assert.Equal(t, "ahmed", p.signUps[0].Username)
		assert.Equal(t, "ahmed", p.signUps[0].DisplayName)
	})

	t.Run("Already Registered", func(t *testing.T) {
		p := newFakeProvider()
		p.signUpErr = ErrAlreadyRegistered
		c := NewContext(p, "en")

		notice, err := c.SignUp(context.Background(), valid)
		appErr, ok := helper.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, helper.KindValidation, appErr.Kind)
		assert.Equal(t, constant.Messages["en"][constant.MsgAlreadyRegistered], notice.Message)
		assert.Equal(t, model.NoticeError, notice.Variant)
	})

	t.Run("Invalid Form Never Reaches Provider", func(t *testing.T) {
		p := newFakeProvider()
		c := NewContext(p, "en")

		_, err := c.SignUp(context.Background(), model.SignUpRequest{Email: "bad", Password: "abc"})
		appErr, ok := helper.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, helper.KindValidation, appErr.Kind)
		assert.Empty(t, p.signUps)
	})
}

func TestSignIn(t *testing.T) {
	t.Run("Rejected Credentials Leave Session Unauthenticated", func(t *testing.T) {
		p := newFakeProvider()
		p.signInErr = ErrInvalidCredentials
		c := NewContext(p, "ar")

		notice, err := c.SignIn(context.Background(), model.SignInRequest{Email: "a@b.dz", Password: "secret1"})
		appErr, ok := helper.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, helper.KindAuth, appErr.Kind)
		assert.Equal(t, model.NoticeError, notice.Variant)
		assert.Equal(t, constant.Messages["ar"][constant.MsgInvalidCredentials], notice.Message)
		assert.Nil(t, c.Session())
		assert.False(t, c.Loading())
	})

	t.Run("Success Populates Session And Notifies", func(t *testing.T) {
		p := newFakeProvider()
		c := NewContext(p, "en")

		var states []State
		cancel := c.Subscribe(func(s State) { states = append(states, s) })
		defer cancel()

		_, err := c.SignIn(context.Background(), model.SignInRequest{Email: "a@b.dz", Password: "secret1"})
		require.NoError(t, err)
		require.NotNil(t, c.Session())

		require.GreaterOrEqual(t, len(states), 2)
		assert.True(t, states[0].Loading)
		last := states[len(states)-1]
		assert.False(t, last.Loading)
		assert.True(t, last.Authenticated())
	})

	t.Run("Backend Failure Is Retryable", func(t *testing.T) {
		p := newFakeProvider()
		p.signInErr = errors.New("connection refused")
		c := NewContext(p, "en")

		_, err := c.SignIn(context.Background(), model.SignInRequest{Email: "a@b.dz", Password: "secret1"})
		appErr, ok := helper.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, helper.KindNetwork, appErr.Kind)
		assert.True(t, appErr.Retryable)
	})
}

func TestSignOut(t *testing.T) {
	t.Run("Clears State Even When Provider Fails", func(t *testing.T) {
		p := newFakeProvider()
		c := NewContext(p, "en")
		_, err := c.SignIn(context.Background(), model.SignInRequest{Email: "a@b.dz", Password: "secret1"})
		require.NoError(t, err)

		p.signOutErr = errors.New("provider down")
		notice := c.SignOut(context.Background())

		assert.Equal(t, model.NoticeSuccess, notice.Variant)
		assert.Nil(t, c.Session())
		assert.Equal(t, 1, p.signOutCalls)
	})

	t.Run("Without Session Skips Provider", func(t *testing.T) {
		p := newFakeProvider()
		c := NewContext(p, "en")
		c.SignOut(context.Background())
		assert.Equal(t, 0, p.signOutCalls)
	})
}
