package http

import (
	"errors"
	"net/http"

	"github.com/secondate/secondate/internal/couple/service"
	"github.com/secondate/secondate/pkg/couplesdk"
	"github.com/secondate/secondate/pkg/httpx"
	"github.com/secondate/secondate/pkg/slogx"
)

type InviteGetHandler struct {
	PairingService *service.PairingService
}

// ServeHTTP godoc
//
//	@Summary		Get Invite Endpoint
//	@Description	Public lookup of an invite by key. Returns status and the initiator's
//	@Description	id only; partner data is never exposed here.
//	@Tags			Couple
//	@Produce		json
//	@Param			inviteKey	path		string						true	"Invite key"
//	@Success		200			{object}	couplesdk.GetInviteResponse	"success, status, firstPersonId"
//	@Failure		404			{object}	couplesdk.ErrorResponse		"success, message"
//	@Failure		500			{object}	couplesdk.ErrorResponse		"success, message"
//	@Router			/api/couple/{inviteKey} [get].
func (h *InviteGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	pairing, err := h.PairingService.GetInvite(ctx, r.PathValue("inviteKey"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteNotFound), errors.Is(err, service.ErrInviteKeyRequired):
			httpx.WriteJSON(w, http.StatusNotFound, couplesdk.Fail("Davet bulunamadı"))
		default:
			log.Error("failed to fetch invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, couplesdk.Fail("Davet bilgisi alınırken bir hata oluştu."))
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, couplesdk.GetInviteResponse{
		Success:       true,
		Status:        string(pairing.Status),
		FirstPersonID: pairing.InitiatorID,
	})
}
