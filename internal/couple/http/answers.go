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

type AnswersHandler struct {
	AnswersService *service.AnswersService
}

// HandleSave godoc
//
//	@Summary		Save Answers Endpoint
//	@Description	Store the caller's questionnaire answers, replacing any previous submission.
//	@Tags			Answers
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		couplesdk.SaveAnswersRequest	true	"answers"
//	@Success		200		{object}	couplesdk.OKResponse			"success"
//	@Failure		400		{object}	couplesdk.ErrorResponse			"success, message"
//	@Failure		401		{object}	couplesdk.ErrorResponse			"success, message"
//	@Failure		500		{object}	couplesdk.ErrorResponse			"success, message"
//	@Router			/api/answers/save-answers [post].
func (h *AnswersHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req couplesdk.SaveAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("Geçerli cevaplar gereklidir"))
		return
	}

	if err := h.AnswersService.Save(ctx, httpx.UserIDFromContext(ctx), req.Answers); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyAnswers):
			httpx.WriteJSON(w, http.StatusBadRequest, couplesdk.Fail("Geçerli cevaplar gereklidir"))
		default:
			log.Error("failed to save answers", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, couplesdk.Fail("Cevaplarınız kaydedilirken hata oluştu"))
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, couplesdk.OKResponse{Success: true})
}

// HandleGet godoc
//
//	@Summary		Get Answers Endpoint
//	@Description	Return the caller's stored questionnaire answers.
//	@Tags			Answers
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	couplesdk.GetAnswersResponse	"success, answers"
//	@Failure		401	{object}	couplesdk.ErrorResponse			"success, message"
//	@Failure		404	{object}	couplesdk.ErrorResponse			"success, message"
//	@Failure		500	{object}	couplesdk.ErrorResponse			"success, message"
//	@Router			/api/answers/get-answers [get].
func (h *AnswersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	answers, err := h.AnswersService.Get(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAnswersNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, couplesdk.Fail("Cevaplar bulunamadı"))
		default:
			log.Error("failed to fetch answers", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, couplesdk.Fail("Cevaplar getirilirken bir hata oluştu"))
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, couplesdk.GetAnswersResponse{
		Success: true,
		Answers: answers,
	})
}
