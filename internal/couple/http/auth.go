package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/secondate/secondate/internal/couple/service"
	"github.com/secondate/secondate/pkg/couplesdk"
	"github.com/secondate/secondate/pkg/httpx"
	"github.com/secondate/secondate/pkg/slogx"
)

type AuthHandler struct {
	AuthService   *service.AuthService
	SessionTTL    time.Duration
	SecureCookies bool
}

// HandleSignup godoc
//
//	@Summary		Signup Endpoint
//	@Description	Create an account and start a session. The session JWT is returned
//	@Description	in the body and set as an httpOnly cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		couplesdk.SignupRequest	true	"email, password, fullName"
//	@Success		201		{object}	couplesdk.AuthResponse	"success, token, user"
//	@Failure		400		{object}	couplesdk.ErrorResponse	"success, message"
//	@Failure		409		{object}	couplesdk.ErrorResponse	"success, message"
//	@Failure		500		{object}	couplesdk.ErrorResponse	"success, message"
//	@Router			/api/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req couplesdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("Tüm alanlar gereklidir"))
		return
	}

	user, token, err := h.AuthService.Signup(ctx, req.Email, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("Tüm alanlar gereklidir"))
		case errors.Is(err, service.ErrInvalidEmail):
			httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("Geçerli bir email adresi girin"))
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteJSON(w, http.StatusConflict, couplesdk.Fail("Bu email zaten kayıtlı"))
		case errors.Is(err, service.ErrPasswordTooShort):
			httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("Şifre en az 8 karakter uzunluğunda olmalıdır"))
		default:
			log.Error("signup failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, couplesdk.Fail("Kayıt işlemi sırasında bir hata oluştu."))
		}
		return
	}

	httpx.SetSessionCookie(w, token, h.SessionTTL, h.SecureCookies)
	httpx.WriteJSON(w, http.StatusCreated, couplesdk.AuthResponse{
		Success: true,
		Token:   token,
		User: couplesdk.UserPayload{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		},
	})
}

// HandleLogin godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with email and password and start a session.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		couplesdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	couplesdk.AuthResponse	"success, token, user"
//	@Failure		400		{object}	couplesdk.ErrorResponse	"success, message"
//	@Failure		401		{object}	couplesdk.ErrorResponse	"success, message"
//	@Failure		500		{object}	couplesdk.ErrorResponse	"success, message"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req couplesdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("Email ve şifre gereklidir"))
		return
	}

	user, token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("Email ve şifre gereklidir"))
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteJSON(w, http.StatusUnauthorized, couplesdk.Fail("Email veya şifre hatalı"))
		default:
			log.Error("login failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, couplesdk.Fail("Giriş işlemi sırasında bir hata oluştu."))
		}
		return
	}

	httpx.SetSessionCookie(w, token, h.SessionTTL, h.SecureCookies)
	httpx.WriteJSON(w, http.StatusOK, couplesdk.AuthResponse{
		Success: true,
		Token:   token,
		User: couplesdk.UserPayload{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		},
	})
}

// HandleLogout godoc
//
//	@Summary		Logout Endpoint
//	@Description	Clear the session cookie. Always succeeds, even without a session.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	couplesdk.OKResponse	"success"
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	httpx.ClearSessionCookie(w, h.SecureCookies)
	httpx.WriteJSON(w, http.StatusOK, couplesdk.OKResponse{Success: true})
}

// HandleMe godoc
//
//	@Summary		Session Check Endpoint
//	@Description	Return the authenticated account's public profile.
//	@Tags			Auth
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	couplesdk.MeResponse	"success, user"
//	@Failure		401	{object}	couplesdk.ErrorResponse	"success, message"
//	@Failure		404	{object}	couplesdk.ErrorResponse	"success, message"
//	@Failure		500	{object}	couplesdk.ErrorResponse	"success, message"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, err := h.AuthService.GetUserByID(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, couplesdk.Fail("Kullanıcı bulunamadı"))
		default:
			log.Error("session check failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, couplesdk.Fail("Bir hata oluştu"))
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, couplesdk.MeResponse{
		Success: true,
		User: couplesdk.UserPayload{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		},
	})
}
