package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/secondate/secondate/internal/couple/domain"
	"github.com/secondate/secondate/internal/couple/service"
	"github.com/secondate/secondate/pkg/couplesdk"
	"github.com/secondate/secondate/pkg/httpx"
	"github.com/secondate/secondate/pkg/slogx"
)

type InviteCompleteHandler struct {
	PairingService *service.PairingService
}

// ServeHTTP godoc
//
//	@Summary		Complete Invite Endpoint
//	@Description	Finish a pending invite anonymously with the partner's name and answers.
//	@Description	No account is needed; holding the key is the only credential. The first
//	@Description	completion wins and is final.
//	@Tags			Couple
//	@Accept			json
//	@Produce		json
//	@Param			inviteKey	path		string							true	"Invite key"
//	@Param			request		body		couplesdk.CompleteInviteRequest	true	"partnerName, partnerAnswers"
//	@Success		200			{object}	couplesdk.CompleteInviteResponse	"success, status"
//	@Failure		400			{object}	couplesdk.ErrorResponse				"success, message"
//	@Failure		404			{object}	couplesdk.ErrorResponse				"success, message"
//	@Failure		409			{object}	couplesdk.ErrorResponse				"success, message"
//	@Failure		500			{object}	couplesdk.ErrorResponse				"success, message"
//	@Router			/api/couple/{inviteKey}/complete [post].
func (h *InviteCompleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req couplesdk.CompleteInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("Geçerli cevaplar gereklidir"))
		return
	}

	err := h.PairingService.CompleteInvite(ctx, r.PathValue("inviteKey"), req.PartnerName, domain.AnswerSet(req.PartnerAnswers))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyAnswers):
			httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("Geçerli cevaplar gereklidir"))
		case errors.Is(err, service.ErrPartnerNameRequired):
			httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("İsim boş olamaz"))
		case errors.Is(err, service.ErrInviteNotFound), errors.Is(err, service.ErrInviteKeyRequired):
			httpx.WriteJSON(w, http.StatusNotFound, couplesdk.Fail("Davet bulunamadı"))
		case errors.Is(err, service.ErrInviteCompleted):
			httpx.WriteJSON(w, http.StatusConflict, couplesdk.Fail("Bu davet zaten tamamlanmış"))
		default:
			log.Error("failed to complete invite", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, couplesdk.Fail("Davet tamamlanırken bir hata oluştu."))
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, couplesdk.CompleteInviteResponse{
		Success: true,
		Status:  string(domain.StatusCompleted),
	})
}
