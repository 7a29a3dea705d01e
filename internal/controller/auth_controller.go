package controller

import (
	"BalaghAPI/internal/helper"
	"BalaghAPI/internal/middleware"
	"BalaghAPI/internal/model"
	"BalaghAPI/internal/service"
	"encoding/json"
	"log/slog"
	"net/http"
)

type AuthController struct {
	authService *service.AuthService
	clientIP    func(*http.Request) string
}

func NewAuthController(authService *service.AuthService, clientIP func(*http.Request) string) *AuthController {
	return &AuthController{
		authService: authService,
		clientIP:    clientIP,
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Warn("Invalid request body", "error", err)
		helper.WriteError(w, helper.NewBadRequestError(""))
		return false
	}
	return true
}

// SignUp godoc
// @Summary      Sign Up
// @Description  Register with e-mail and password. A confirmation e-mail is sent unless mail delivery is disabled.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.SignUpRequest true "Sign Up Request"
// @Success      201  {object}  helper.ResponseSuccess{data=model.AuthResponse}
// @Failure      409  {object}  helper.ResponseError
// @Failure      422  {object}  helper.ResponseError
// @Router       /api/auth/signup [post]
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req model.SignUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := c.authService.SignUp(r.Context(), req, c.clientIP(r))
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteCreated(w, resp)
}

// SignIn godoc
// @Summary      Sign In
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.SignInRequest true "Sign In Request"
// @Success      200  {object}  helper.ResponseSuccess{data=model.AuthResponse}
// @Failure      401  {object}  helper.ResponseError
// @Failure      403  {object}  helper.ResponseError
// @Router       /api/auth/signin [post]
func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var req model.SignInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := c.authService.SignIn(r.Context(), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// SignOut godoc
// @Summary      Sign Out
// @Description  Always succeeds and clears the session.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=model.Notice}
// @Security     BearerAuth
// @Router       /api/auth/signout [post]
func (c *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	helper.WriteSuccess(w, c.authService.SignOut(r.Context(), middleware.BearerToken(r)))
}

// Session godoc
// @Summary      Current Session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=model.SessionResponse}
// @Router       /api/auth/session [get]
func (c *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	helper.WriteSuccess(w, c.authService.Session(r.Context(), middleware.BearerToken(r)))
}

// ConfirmEmail godoc
// @Summary      Confirm E-mail
// @Tags         auth
// @Produce      json
// @Param        token query string true "Confirmation token"
// @Success      200  {object}  helper.ResponseSuccess{data=model.Notice}
// @Failure      400  {object}  helper.ResponseError
// @Router       /api/auth/confirm [get]
func (c *AuthController) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	req := model.ConfirmEmailRequest{Token: r.URL.Query().Get("token")}

	notice, err := c.authService.ConfirmEmail(r.Context(), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, notice)
}

// ResendConfirmation godoc
// @Summary      Resend Confirmation
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.ResendConfirmationRequest true "Resend Request"
// @Success      200  {object}  helper.ResponseSuccess{data=model.Notice}
// @Failure      429  {object}  helper.ResponseError
// @Router       /api/auth/resend-confirmation [post]
func (c *AuthController) ResendConfirmation(w http.ResponseWriter, r *http.Request) {
	var req model.ResendConfirmationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	notice, err := c.authService.ResendConfirmation(r.Context(), req, c.clientIP(r))
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, notice)
}

// GoogleSignIn godoc
// @Summary      Google Sign In
// @Description  Exchange a Google ID token for a session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.GoogleSignInRequest true "Google Sign In Request"
// @Success      200  {object}  helper.ResponseSuccess{data=model.AuthResponse}
// @Failure      401  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Router       /api/auth/google [post]
func (c *AuthController) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req model.GoogleSignInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := c.authService.SignInWithGoogle(r.Context(), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}
