package session

import (
	"BalaghAPI/internal/model"
	"context"
	"errors"
)

var (
	ErrAlreadyRegistered   = errors.New("user already registered")
	ErrInvalidCredentials  = errors.New("invalid login credentials")
	ErrEmailNotConfirmed   = errors.New("email not confirmed")
	ErrInvalidSession      = errors.New("invalid session")
	ErrInvalidConfirmation = errors.New("invalid or expired confirmation token")
	ErrProviderDisabled    = errors.New("sign-in method is not enabled")
)

// Provider is the backend auth provider. Session changes it causes are
// announced to every OnAuthStateChange listener.
type Provider interface {
	SignUp(ctx context.Context, email, password string, metadata model.SignUpMetadata) error
	SignIn(ctx context.Context, email, password string) (*model.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	GetSession(ctx context.Context, accessToken string) (*model.Session, error)
	OnAuthStateChange(listener func(model.AuthEvent)) (unsubscribe func())
}
