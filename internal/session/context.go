package session

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
	"context"
	"errors"
	"log/slog"
	"sync"
)

type State struct {
	Session *model.Session `json:"session"`
	Loading bool           `json:"loading"`
}

func (s State) Authenticated() bool {
	return s.Session != nil
}

// Context owns one client's view of the auth session. Every other component
// reads it through Session or Subscribe and never mutates it.
type Context struct {
	provider Provider
	locale   string

	mu          sync.RWMutex
	session     *model.Session
	token       string
	loading     bool
	listeners   map[uint64]func(State)
	nextID      uint64
	unsubscribe func()
}

func NewContext(provider Provider, locale string) *Context {
	return &Context{
		provider:  provider,
		locale:    locale,
		listeners: make(map[uint64]func(State)),
	}
}

// Init subscribes to provider events and then pulls the session for accessToken.
// Either path may land first; both just overwrite the observed state.
func (c *Context) Init(ctx context.Context, accessToken string) {
	c.mu.Lock()
	c.token = accessToken
	c.mu.Unlock()

	unsubscribe := c.provider.OnAuthStateChange(c.handleEvent)
	c.mu.Lock()
	c.unsubscribe = unsubscribe
	c.mu.Unlock()

	if accessToken == "" {
		return
	}

	c.setLoading(true)
	sess, err := c.provider.GetSession(ctx, accessToken)
	if err != nil && !errors.Is(err, ErrInvalidSession) {
		slog.Warn("Failed to load session", "error", err)
	}

	c.mu.Lock()
	if c.token == accessToken {
		c.session = sess
		if sess == nil {
			c.token = ""
		}
	}
	c.loading = false
	c.mu.Unlock()
	c.notify()
}

func (c *Context) handleEvent(event model.AuthEvent) {
	c.mu.Lock()
	if event.Session == nil || c.token == "" || event.Session.AccessToken != c.token {
		c.mu.Unlock()
		return
	}

	switch event.Type {
	case model.AuthEventSignedOut:
		c.session = nil
		c.token = ""
	default:
		c.session = event.Session
	}
	c.mu.Unlock()
	c.notify()
}

func (c *Context) SignUp(ctx context.Context, req model.SignUpRequest) (model.Notice, error) {
	if results := helper.ValidateSignup(c.locale, req); !results.OK() {
		slog.Warn("Validation failed", "op", "signup")
		return c.errorNotice(constant.MsgSignUpErrorTitle, constant.MsgFieldInvalid), results.Error(c.locale)
	}

	c.setLoading(true)
	defer c.setLoading(false)

	email := helper.NormalizeEmail(req.Email)
	metadata := model.SignUpMetadata{
		Username:    req.Username,
		DisplayName: req.DisplayName,
	}
	if metadata.Username == "" {
		metadata.Username = helper.DefaultUsername(email)
	}
	if metadata.DisplayName == "" {
		metadata.DisplayName = helper.EmailLocalPart(email)
	}

	err := c.provider.SignUp(ctx, email, req.Password, metadata)
	switch {
	case err == nil:
		return c.successNotice(constant.MsgSignUpSuccessTitle, constant.MsgSignUpSuccess), nil
	case errors.Is(err, ErrAlreadyRegistered):
		msg := helper.Message(c.locale, constant.MsgAlreadyRegistered)
		appErr := helper.NewConflictError(msg)
		appErr.Fields = map[string]string{"email": msg}
		return c.errorNotice(constant.MsgSignUpErrorTitle, constant.MsgAlreadyRegistered), appErr
	default:
		slog.Error("Sign up failed", "error", err)
		return c.errorNotice(constant.MsgSignUpErrorTitle, constant.MsgSignUpErrorGeneric),
			helper.NewNetworkError(helper.Message(c.locale, constant.MsgSignUpErrorGeneric))
	}
}

func (c *Context) SignIn(ctx context.Context, req model.SignInRequest) (model.Notice, error) {
	if results := helper.ValidateLogin(c.locale, req); !results.OK() {
		slog.Warn("Validation failed", "op", "signin")
		return c.errorNotice(constant.MsgSignInErrorTitle, constant.MsgFieldInvalid), results.Error(c.locale)
	}

	c.setLoading(true)
	defer c.setLoading(false)

	sess, err := c.provider.SignIn(ctx, helper.NormalizeEmail(req.Email), req.Password)
	switch {
	case err == nil:
		c.mu.Lock()
		c.session = sess
		c.token = sess.AccessToken
		c.mu.Unlock()
		return c.successNotice(constant.MsgSignInSuccessTitle, constant.MsgSignInSuccess), nil
	case errors.Is(err, ErrInvalidCredentials):
		return c.errorNotice(constant.MsgSignInErrorTitle, constant.MsgInvalidCredentials),
			helper.NewUnauthorizedError(helper.Message(c.locale, constant.MsgInvalidCredentials))
	case errors.Is(err, ErrEmailNotConfirmed):
		return c.errorNotice(constant.MsgSignInErrorTitle, constant.MsgEmailNotConfirmed),
			helper.NewForbiddenError(helper.Message(c.locale, constant.MsgEmailNotConfirmed))
	default:
		slog.Error("Sign in failed", "error", err)
		return c.errorNotice(constant.MsgSignInErrorTitle, constant.MsgSignInErrorGeneric),
			helper.NewNetworkError(helper.Message(c.locale, constant.MsgSignInErrorGeneric))
	}
}

// SignOut always clears local state. Provider failures are logged only.
func (c *Context) SignOut(ctx context.Context) model.Notice {
	c.setLoading(true)
	defer c.setLoading(false)

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	if token != "" {
		if err := c.provider.SignOut(ctx, token); err != nil {
			slog.Error("Sign out failed at provider", "error", err)
		}
	}

	c.mu.Lock()
	c.session = nil
	c.token = ""
	c.mu.Unlock()

	return c.successNotice(constant.MsgSignOutSuccessTitle, constant.MsgSignOutSuccess)
}

func (c *Context) Session() *model.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *Context) User() *model.UserDTO {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	user := c.session.User
	return &user
}

func (c *Context) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Context) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return State{Session: c.session, Loading: c.loading}
}

// Subscribe registers listener for every state change and returns its cancel func.
func (c *Context) Subscribe(listener func(State)) func() {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.listeners[id] = listener
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Context) Close() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.listeners = make(map[uint64]func(State))
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (c *Context) setLoading(loading bool) {
	c.mu.Lock()
	c.loading = loading
	c.mu.Unlock()
	c.notify()
}

func (c *Context) notify() {
	c.mu.RLock()
	state := State{Session: c.session, Loading: c.loading}
	listeners := make([]func(State), 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.RUnlock()

	for _, l := range listeners {
		l(state)
	}
}

func (c *Context) successNotice(title, message constant.MessageKey) model.Notice {
	return model.Notice{
		Variant: model.NoticeSuccess,
		Title:   helper.Message(c.locale, title),
		Message: helper.Message(c.locale, message),
	}
}

func (c *Context) errorNotice(title, message constant.MessageKey) model.Notice {
	return model.Notice{
		Variant: model.NoticeError,
		Title:   helper.Message(c.locale, title),
		Message: helper.Message(c.locale, message),
	}
}
