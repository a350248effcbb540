package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/secondate/secondate/internal/couple/service"
	"github.com/secondate/secondate/pkg/couplesdk"
	"github.com/secondate/secondate/pkg/httpx"
	"github.com/secondate/secondate/pkg/slogx"
)

type InviteLinkHandler struct {
	PairingService *service.PairingService
}

// ServeHTTP godoc
//
//	@Summary		Link Account Endpoint
//	@Description	Complete a pending invite by attaching the caller's account as the
//	@Description	partner. The caller must have saved answers and must not be the
//	@Description	invite's initiator.
//	@Tags			Couple
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		couplesdk.LinkAccountRequest	true	"inviteKey"
//	@Success		200		{object}	couplesdk.LinkAccountResponse	"success, inviteKey"
//	@Failure		400		{object}	couplesdk.ErrorResponse			"success, message"
//	@Failure		401		{object}	couplesdk.ErrorResponse			"success, message"
//	@Failure		404		{object}	couplesdk.ErrorResponse			"success, message"
//	@Failure		409		{object}	couplesdk.ErrorResponse			"success, message"
//	@Failure		500		{object}	couplesdk.ErrorResponse			"success, message"
//	@Router			/api/couple/link-account [post].
func (h *InviteLinkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req couplesdk.LinkAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("Davet anahtarı gerekli"))
		return
	}

	pairing, err := h.PairingService.LinkAccount(ctx, httpx.UserIDFromContext(ctx), req.InviteKey)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteKeyRequired):
			httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("Davet anahtarı gerekli"))
		case errors.Is(err, service.ErrAnswersRequired):
			httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("Önce kendi testini tamamlamalısın"))
		case errors.Is(err, service.ErrInviteNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, couplesdk.Fail("Bağlanabilecek davet bulunamadı"))
		case errors.Is(err, service.ErrInviteCompleted):
			httpx.WriteJSON(w, http.StatusConflict, couplesdk.Fail("Bağlanabilecek davet bulunamadı"))
		case errors.Is(err, service.ErrSelfLink):
			httpx.WriteJSON(w, http.StatusConflict, couplesdk.Fail("Kendi davetine bağlanamazsın"))
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, couplesdk.Fail("Kullanıcı bulunamadı"))
		case errors.Is(err, service.ErrNameRequired):
			httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("İsim bilgini girmelisin"))
		default:
			log.Error("failed to link account", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, couplesdk.Fail("Hesap bağlanırken bir hata oluştu."))
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, couplesdk.LinkAccountResponse{
		Success:   true,
		InviteKey: pairing.InviteKey,
	})
}
