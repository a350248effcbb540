package http

import (
	"net/http"

	"github.com/secondate/secondate/internal/couple/domain"
	"github.com/secondate/secondate/internal/couple/service"
	"github.com/secondate/secondate/pkg/couplesdk"
	"github.com/secondate/secondate/pkg/httpx"
	"github.com/secondate/secondate/pkg/slogx"
)

type InviteListHandler struct {
	PairingService *service.PairingService
}

// ServeHTTP godoc
//
//	@Summary		My Invites Endpoint
//	@Description	List every pairing the caller takes part in, newest first. Partner
//	@Description	answer snapshots are excluded from listings.
//	@Tags			Couple
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	couplesdk.MyInvitesResponse	"success, invites"
//	@Failure		401	{object}	couplesdk.ErrorResponse		"success, message"
//	@Failure		500	{object}	couplesdk.ErrorResponse		"success, message"
//	@Router			/api/couple/myInvites [get].
func (h *InviteListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	entries, err := h.PairingService.ListInvitesForUser(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		log.Error("failed to list invites", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, couplesdk.Fail("Davetler alınırken bir hata oluştu."))
		return
	}

	invites := make([]couplesdk.InviteSummary, 0, len(entries))
	for _, e := range entries {
		summary := couplesdk.InviteSummary{
			InviteKey: e.Pairing.InviteKey,
			Status:    string(e.Pairing.Status),
			FirstPerson: couplesdk.PersonRef{
				ID:       e.Initiator.ID,
				FullName: e.Initiator.FullName,
			},
			CreatedAt: e.Pairing.CreatedAt,
			UpdatedAt: e.Pairing.UpdatedAt,
		}

		if e.Partner != nil {
			summary.SecondPerson = &couplesdk.PersonRef{
				ID:       e.Partner.ID,
				FullName: e.Partner.FullName,
			}
		}
		if e.Pairing.Partner.Kind == domain.PartnerAnonymous {
			summary.PartnerName = e.Pairing.Partner.DisplayName
		}

		invites = append(invites, summary)
	}

	httpx.WriteJSON(w, http.StatusOK, couplesdk.MyInvitesResponse{
		Success: true,
		Invites: invites,
	})
}
