package service

import (
	"BalaghAPI/internal/config"
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/metrics"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/session"
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

// AuthProvider is the session provider plus the account flows the HTTP surface exposes.
type AuthProvider interface {
	session.Provider
	ResendConfirmation(ctx context.Context, email string) error
	ConfirmEmail(ctx context.Context, token string) error
	SignInWithGoogle(ctx context.Context, idToken string) (*model.Session, error)
}

type CaptchaVerifier interface {
	Enabled() bool
	Verify(ctx context.Context, token string, ip string) error
}

type AuthService struct {
	provider      AuthProvider
	captcha       CaptchaVerifier
	resendLimiter *config.RateLimiter
	validator     *validator.Validate
}

func NewAuthService(provider AuthProvider, captcha CaptchaVerifier, resendLimiter *config.RateLimiter, validator *validator.Validate) *AuthService {
	return &AuthService{
		provider:      provider,
		captcha:       captcha,
		resendLimiter: resendLimiter,
		validator:     validator,
	}
}

func (s *AuthService) verifyCaptcha(ctx context.Context, token, ip string) error {
	if s.captcha == nil || !s.captcha.Enabled() {
		return nil
	}
	if err := s.captcha.Verify(ctx, token, ip); err != nil {
		slog.Warn("Captcha verification failed", "error", err)
		return helper.NewBadRequestError(helper.Message(helper.LocaleFromContext(ctx), constant.MsgCaptchaFailed))
	}
	return nil
}

func (s *AuthService) SignUp(ctx context.Context, req model.SignUpRequest, ip string) (*model.AuthResponse, error) {
	locale := helper.LocaleFromContext(ctx)
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.TranslateValidationErrors(locale, err).Error(locale)
	}
	if err := s.verifyCaptcha(ctx, req.CaptchaToken, ip); err != nil {
		return nil, err
	}

	sc := session.NewContext(s.provider, locale)
	defer sc.Close()

	notice, err := sc.SignUp(ctx, req)
	recordAuth("signup", err)
	if err != nil {
		return &model.AuthResponse{Notice: notice}, err
	}
	return &model.AuthResponse{Notice: notice}, nil
}

func (s *AuthService) SignIn(ctx context.Context, req model.SignInRequest) (*model.AuthResponse, error) {
	sc := session.NewContext(s.provider, helper.LocaleFromContext(ctx))
	defer sc.Close()

	notice, err := sc.SignIn(ctx, req)
	recordAuth("signin", err)
	if err != nil {
		return &model.AuthResponse{Notice: notice}, err
	}
	return &model.AuthResponse{Session: sc.Session(), Notice: notice}, nil
}

// SignOut never fails; provider errors are logged by the session context.
func (s *AuthService) SignOut(ctx context.Context, accessToken string) model.Notice {
	sc := session.NewContext(s.provider, helper.LocaleFromContext(ctx))
	defer sc.Close()

	sc.Init(ctx, accessToken)
	notice := sc.SignOut(ctx)
	recordAuth("signout", nil)
	return notice
}

func (s *AuthService) Session(ctx context.Context, accessToken string) model.SessionResponse {
	sc := session.NewContext(s.provider, helper.LocaleFromContext(ctx))
	defer sc.Close()

	sc.Init(ctx, accessToken)
	sess := sc.Session()
	return model.SessionResponse{Authenticated: sess != nil, Session: sess}
}

// VerifyToken resolves a bearer token into its session for request middleware.
func (s *AuthService) VerifyToken(ctx context.Context, accessToken string) (*model.Session, error) {
	sess, err := s.provider.GetSession(ctx, accessToken)
	if err != nil {
		if !errors.Is(err, session.ErrInvalidSession) {
			slog.Error("Failed to verify session", "error", err)
			return nil, helper.NewServiceUnavailableError("")
		}
		return nil, helper.NewUnauthorizedError(helper.Message(helper.LocaleFromContext(ctx), constant.MsgLoginRequired))
	}
	return sess, nil
}

func (s *AuthService) ConfirmEmail(ctx context.Context, req model.ConfirmEmailRequest) (model.Notice, error) {
	locale := helper.LocaleFromContext(ctx)
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return errorNotice(locale, constant.MsgSignUpErrorTitle, constant.MsgConfirmInvalid),
			helper.NewBadRequestError(helper.Message(locale, constant.MsgConfirmInvalid))
	}

	err := s.provider.ConfirmEmail(ctx, req.Token)
	recordAuth("confirm", err)
	switch {
	case err == nil:
		return successNotice(locale, constant.MsgSignUpSuccessTitle, constant.MsgConfirmSuccess), nil
	case errors.Is(err, session.ErrInvalidConfirmation):
		return errorNotice(locale, constant.MsgSignUpErrorTitle, constant.MsgConfirmInvalid),
			helper.NewBadRequestError(helper.Message(locale, constant.MsgConfirmInvalid))
	default:
		slog.Error("Failed to confirm email", "error", err)
		return errorNotice(locale, constant.MsgSignUpErrorTitle, constant.MsgNetworkError),
			helper.NewNetworkError(helper.Message(locale, constant.MsgNetworkError))
	}
}

// ResendConfirmation answers the same way for unknown and confirmed addresses.
func (s *AuthService) ResendConfirmation(ctx context.Context, req model.ResendConfirmationRequest, ip string) (model.Notice, error) {
	locale := helper.LocaleFromContext(ctx)
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return model.Notice{}, helper.TranslateValidationErrors(locale, err).Error(locale)
	}
	if err := s.verifyCaptcha(ctx, req.CaptchaToken, ip); err != nil {
		return model.Notice{}, err
	}

	email := helper.NormalizeEmail(req.Email)
	if s.resendLimiter != nil {
		if allowed, _ := s.resendLimiter.Allow(email); !allowed {
			return model.Notice{}, helper.NewTooManyRequestsError(helper.Message(locale, constant.MsgTooManyRequests))
		}
	}

	if err := s.provider.ResendConfirmation(ctx, email); err != nil {
		slog.Error("Failed to resend confirmation", "error", err)
		return model.Notice{}, helper.NewNetworkError(helper.Message(locale, constant.MsgNetworkError))
	}
	return successNotice(locale, constant.MsgSignUpSuccessTitle, constant.MsgConfirmationResent), nil
}

func (s *AuthService) SignInWithGoogle(ctx context.Context, req model.GoogleSignInRequest) (*model.AuthResponse, error) {
	locale := helper.LocaleFromContext(ctx)
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	sess, err := s.provider.SignInWithGoogle(ctx, req.IDToken)
	recordAuth("google", err)
	switch {
	case err == nil:
		return &model.AuthResponse{
			Session: sess,
			Notice:  successNotice(locale, constant.MsgSignInSuccessTitle, constant.MsgSignInSuccess),
		}, nil
	case errors.Is(err, session.ErrProviderDisabled):
		return nil, helper.NewNotFoundError("")
	case errors.Is(err, session.ErrInvalidCredentials):
		return nil, helper.NewUnauthorizedError(helper.Message(locale, constant.MsgInvalidCredentials))
	default:
		slog.Error("Google sign in failed", "error", err)
		return nil, helper.NewNetworkError(helper.Message(locale, constant.MsgSignInErrorGeneric))
	}
}

func recordAuth(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.AuthOperations.WithLabelValues(op, result).Inc()
}
