package model

import "time"

type SignUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Username        string `json:"username"`
	DisplayName     string `json:"display_name" validate:"omitempty,max=100"`
	CaptchaToken    string `json:"captcha_token"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleSignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type ResendConfirmationRequest struct {
	Email        string `json:"email" validate:"required,email"`
	CaptchaToken string `json:"captcha_token"`
}

type ConfirmEmailRequest struct {
	Token string `validate:"required,min=16"`
}

// SignUpMetadata travels with a sign-up to the auth provider.
type SignUpMetadata struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type Session struct {
	AccessToken string    `json:"access_token"`
	TokenID     string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        UserDTO   `json:"user"`
}

type AuthEventType string

const (
	AuthEventInitialSession AuthEventType = "INITIAL_SESSION"
	AuthEventSignedIn       AuthEventType = "SIGNED_IN"
	AuthEventSignedOut      AuthEventType = "SIGNED_OUT"
)

type AuthEvent struct {
	Type    AuthEventType `json:"type"`
	Session *Session      `json:"session"`
}

type AuthResponse struct {
	Session *Session `json:"session"`
	Notice  Notice   `json:"notice"`
}

type SessionResponse struct {
	Authenticated bool     `json:"authenticated"`
	Session       *Session `json:"session"`
}
