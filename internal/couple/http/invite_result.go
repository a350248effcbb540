package http

import (
	"errors"
	"net/http"

	"github.com/secondate/secondate/internal/couple/service"
	"github.com/secondate/secondate/pkg/couplesdk"
	"github.com/secondate/secondate/pkg/httpx"
	"github.com/secondate/secondate/pkg/slogx"
)

type InviteResultHandler struct {
	PairingService *service.PairingService
}

// ServeHTTP godoc
//
//	@Summary		Couple Result Endpoint
//	@Description	Public read of a completed invite's combined result: both names and
//	@Description	both full answer sets, ready for comparison on the client.
//	@Tags			Couple
//	@Produce		json
//	@Param			inviteKey	path		string						true	"Invite key"
//	@Success		200			{object}	couplesdk.ResultResponse	"success, names, answer sets, status"
//	@Failure		404			{object}	couplesdk.ErrorResponse		"success, message"
//	@Failure		409			{object}	couplesdk.ErrorResponse		"success, message"
//	@Failure		500			{object}	couplesdk.ErrorResponse		"success, message"
//	@Router			/api/couple/{inviteKey}/result [get].
func (h *InviteResultHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	result, err := h.PairingService.GetResult(ctx, r.PathValue("inviteKey"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteNotFound), errors.Is(err, service.ErrInviteKeyRequired):
			httpx.WriteJSON(w, http.StatusNotFound, couplesdk.Fail("Kayıt bulunamadı"))
		case errors.Is(err, service.ErrResultNotReady):
			httpx.WriteJSON(w, http.StatusConflict, couplesdk.Fail("Partner henüz testi tamamlamadı"))
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, couplesdk.Fail("Davet sahibi bulunamadı"))
		case errors.Is(err, service.ErrAnswersNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, couplesdk.Fail("Kullanıcı cevapları bulunamadı"))
		default:
			log.Error("failed to assemble result", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, couplesdk.Fail("Analiz getirilirken bir hata oluştu."))
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, couplesdk.ResultResponse{
		Success:             true,
		FirstPersonName:     result.FirstPersonName,
		SecondPersonName:    result.SecondPersonName,
		FirstPersonAnswers:  result.FirstPersonAnswers,
		SecondPersonAnswers: result.SecondPersonAnswers,
		Status:              string(result.Status),
	})
}
