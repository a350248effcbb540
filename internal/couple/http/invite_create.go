package http

import (
	"errors"
	"net/http"

	"github.com/secondate/secondate/internal/couple/service"
	"github.com/secondate/secondate/pkg/couplesdk"
	"github.com/secondate/secondate/pkg/httpx"
	"github.com/secondate/secondate/pkg/slogx"
)

type InviteCreateHandler struct {
	PairingService *service.PairingService
}

// ServeHTTP godoc
//
//	@Summary		Create Invite Endpoint
//	@Description	Open a pending invite for the caller, or return the existing pending
//	@Description	one unchanged. Requires the caller to have saved answers and a display name.
//	@Tags			Couple
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	couplesdk.CreateInviteResponse	"success, inviteKey, status - existing pending invite"
//	@Success		201	{object}	couplesdk.CreateInviteResponse	"success, inviteKey, status - new invite"
//	@Failure		400	{object}	couplesdk.ErrorResponse			"success, message"
//	@Failure		401	{object}	couplesdk.ErrorResponse			"success, message"
//	@Failure		404	{object}	couplesdk.ErrorResponse			"success, message"
//	@Failure		500	{object}	couplesdk.ErrorResponse			"success, message"
//	@Router			/api/couple/invite [post].
func (h *InviteCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	pairing, created, err := h.PairingService.CreateInvite(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAnswersRequired):
			httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("Önce kendi testini tamamlamalısın"))
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, couplesdk.Fail("Kullanıcı bulunamadı"))
		case errors.Is(err, service.ErrNameRequired):
			httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("İsim bilgini girmelisin"))
		default:
			log.Error("failed to create invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, couplesdk.Fail("Davet oluşturulurken bir hata oluştu."))
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httpx.WriteJSON(w, status, couplesdk.CreateInviteResponse{
		Success:   true,
		InviteKey: pairing.InviteKey,
		Status:    string(pairing.Status),
	})
}
