package adapter

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/session"
	"context"
	"crypto/rand"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"google.golang.org/api/idtoken"
)

//go:embed template
var templateFS embed.FS

// UserStore persists accounts. Create returns model.ErrDuplicateEmail when the
// e-mail is already taken.
type UserStore interface {
	Create(ctx context.Context, dto model.CreateUserDTO) (*model.UserRecord, error)
	FindByEmail(ctx context.Context, email string) (*model.UserRecord, error)
	FindByID(ctx context.Context, id string) (*model.UserRecord, error)
	MarkConfirmed(ctx context.Context, id string) error
}

type TokenStore interface {
	BlacklistToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, tokenID string) bool
	SaveConfirmation(ctx context.Context, tokenHash, userID string, ttl time.Duration) error
	ConsumeConfirmation(ctx context.Context, tokenHash string) (string, error)
}

type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, to []string, subject string, body string) error
}

type GoogleTokenValidator func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)

// AuthProvider issues HS256 access tokens for users stored in postgres and
// announces sign-in and sign-out to in-process listeners.
type AuthProvider struct {
	users  UserStore
	tokens TokenStore
	mailer Mailer

	jwtSecret       string
	jwtExpHours     int
	appURL          string
	confirmationTTL time.Duration
	googleClientID  string
	smtpAsync       bool
	validateGoogle  GoogleTokenValidator

	mu        sync.RWMutex
	listeners map[uint64]func(model.AuthEvent)
	nextID    uint64
}

func NewAuthProvider(cfg *config.AppConfig, users UserStore, tokens TokenStore, mailer Mailer) *AuthProvider {
	return &AuthProvider{
		users:           users,
		tokens:          tokens,
		mailer:          mailer,
		jwtSecret:       cfg.JWTSecret,
		jwtExpHours:     cfg.JWTExp,
		appURL:          cfg.AppURL,
		confirmationTTL: time.Duration(cfg.ConfirmationExpHours) * time.Hour,
		googleClientID:  cfg.GoogleClientID,
		smtpAsync:       cfg.SMTPAsync,
		validateGoogle:  idtoken.Validate,
		listeners:       make(map[uint64]func(model.AuthEvent)),
	}
}

func (p *AuthProvider) SignUp(ctx context.Context, email, password string, metadata model.SignUpMetadata) error {
	existing, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return session.ErrAlreadyRegistered
	}

	hash, err := helper.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	autoConfirm := !p.mailer.Enabled()
	user, err := p.users.Create(ctx, model.CreateUserDTO{
		Email:        email,
		PasswordHash: hash,
		Username:     metadata.Username,
		DisplayName:  metadata.DisplayName,
		Confirmed:    autoConfirm,
	})
	if errors.Is(err, model.ErrDuplicateEmail) {
		return session.ErrAlreadyRegistered
	}
	if err != nil {
		return err
	}

	if autoConfirm {
		slog.Warn("SMTP not configured, user confirmed without e-mail", "userID", user.ID)
		return nil
	}

	return p.sendConfirmation(ctx, user)
}

func (p *AuthProvider) ResendConfirmation(ctx context.Context, email string) error {
	user, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.Confirmed {
		return nil
	}
	return p.sendConfirmation(ctx, user)
}

func (p *AuthProvider) ConfirmEmail(ctx context.Context, token string) error {
	userID, err := p.tokens.ConsumeConfirmation(ctx, helper.HashToken(token, p.jwtSecret))
	if err != nil {
		return err
	}
	if userID == "" {
		return session.ErrInvalidConfirmation
	}
	return p.users.MarkConfirmed(ctx, userID)
}

func (p *AuthProvider) sendConfirmation(ctx context.Context, user *model.UserRecord) error {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("failed to generate confirmation token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := p.tokens.SaveConfirmation(ctx, helper.HashToken(token, p.jwtSecret), user.ID, p.confirmationTTL); err != nil {
		return fmt.Errorf("failed to save confirmation token: %w", err)
	}

	send := func(ctx context.Context) {
		templateData := struct {
			DisplayName  string
			Link         string
			ExpiresHours int
			Year         int
		}{
			DisplayName:  user.DisplayName,
			Link:         p.appURL + "/api/auth/confirm?token=" + url.QueryEscape(token),
			ExpiresHours: int(p.confirmationTTL.Hours()),
			Year:         time.Now().Year(),
		}

		body, err := helper.GenerateEmailBody(templateFS, "template/confirm_email.html", templateData)
		if err != nil {
			slog.Error("Failed to generate email body", "error", err)
			return
		}

		if err := p.mailer.Send(ctx, []string{user.Email}, "تأكيد البريد الإلكتروني - بلّغ", body); err != nil {
			slog.Error("Failed to send confirmation email", "error", err, "userID", user.ID)
		}
	}

	if p.smtpAsync {
		go send(context.WithoutCancel(ctx))
	} else {
		send(ctx)
	}
	return nil
}

func (p *AuthProvider) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	user, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.PasswordHash == "" || !helper.CheckPasswordHash(password, user.PasswordHash) {
		return nil, session.ErrInvalidCredentials
	}
	if !user.Confirmed {
		return nil, session.ErrEmailNotConfirmed
	}

	return p.issueSession(user.UserDTO)
}

func (p *AuthProvider) SignInWithGoogle(ctx context.Context, idToken string) (*model.Session, error) {
	if p.googleClientID == "" {
		return nil, session.ErrProviderDisabled
	}

	payload, err := p.validateGoogle(ctx, idToken, p.googleClientID)
	if err != nil {
		slog.Warn("Failed to validate google token", "error", err)
		return nil, session.ErrInvalidCredentials
	}

	email, _ := payload.Claims["email"].(string)
	if verified, _ := payload.Claims["email_verified"].(bool); email == "" || !verified {
		return nil, session.ErrInvalidCredentials
	}
	email = helper.NormalizeEmail(email)

	user, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		name, _ := payload.Claims["name"].(string)
		if name == "" {
			name = helper.EmailLocalPart(email)
		}
		user, err = p.users.Create(ctx, model.CreateUserDTO{
			Email:       email,
			Username:    helper.DefaultUsername(email),
			DisplayName: name,
			Confirmed:   true,
		})
		if err != nil {
			return nil, err
		}
	} else if !user.Confirmed {
		if err := p.users.MarkConfirmed(ctx, user.ID); err != nil {
			return nil, err
		}
		user.Confirmed = true
	}

	return p.issueSession(user.UserDTO)
}

func (p *AuthProvider) issueSession(user model.UserDTO) (*model.Session, error) {
	issued, err := helper.GenerateJWT(p.jwtSecret, p.jwtExpHours, user.ID)
	if err != nil {
		return nil, err
	}

	sess := &model.Session{
		AccessToken: issued.Token,
		TokenID:     issued.TokenID,
		ExpiresAt:   issued.ExpiresAt,
		User:        user,
	}
	p.emit(model.AuthEvent{Type: model.AuthEventSignedIn, Session: sess})
	return sess, nil
}

// SignOut blacklists the token for the rest of its lifetime.
func (p *AuthProvider) SignOut(ctx context.Context, accessToken string) error {
	claims, err := helper.ParseJWT(p.jwtSecret, accessToken)
	if err != nil {
		return session.ErrInvalidSession
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		if err := p.tokens.BlacklistToken(ctx, claims.ID, ttl); err != nil {
			return fmt.Errorf("failed to blacklist token: %w", err)
		}
	}

	p.emit(model.AuthEvent{Type: model.AuthEventSignedOut, Session: &model.Session{
		AccessToken: accessToken,
		TokenID:     claims.ID,
		ExpiresAt:   claims.ExpiresAt.Time,
		User:        model.UserDTO{ID: claims.UserID},
	}})
	return nil
}

func (p *AuthProvider) GetSession(ctx context.Context, accessToken string) (*model.Session, error) {
	if accessToken == "" {
		return nil, session.ErrInvalidSession
	}

	claims, err := helper.ParseJWT(p.jwtSecret, accessToken)
	if err != nil {
		return nil, session.ErrInvalidSession
	}

	if p.tokens.IsTokenBlacklisted(ctx, claims.ID) {
		return nil, session.ErrInvalidSession
	}

	user, err := p.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !user.Confirmed {
		return nil, session.ErrInvalidSession
	}

	return &model.Session{
		AccessToken: accessToken,
		TokenID:     claims.ID,
		ExpiresAt:   claims.ExpiresAt.Time,
		User:        user.UserDTO,
	}, nil
}

func (p *AuthProvider) OnAuthStateChange(listener func(model.AuthEvent)) func() {
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

func (p *AuthProvider) emit(event model.AuthEvent) {
	p.mu.RLock()
	listeners := make([]func(model.AuthEvent), 0, len(p.listeners))
	for _, l := range p.listeners {
		listeners = append(listeners, l)
	}
	p.mu.RUnlock()

	for _, l := range listeners {
		l(event)
	}
}
