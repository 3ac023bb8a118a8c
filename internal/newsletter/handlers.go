package newsletter

import (
	"encoding/json"
	"net/http"

	"github.com/noah-isme/backend-pasar/internal/common"
	"github.com/noah-isme/backend-pasar/internal/obs"
)

// Handler exposes the newsletter subscription endpoint.
type Handler struct {
	Service *Service
}

// Subscribe handles POST /api/newsletter.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "newsletter service not configured", nil)
		return
	}
	var candidate Candidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		obs.ObserveNewsletterSubscription(obs.ResultRejected)
		common.JSONError(w, http.StatusBadRequest, common.CodeValidation, invalidNewsletterMessage, map[string]string{"body": "malformed JSON"})
		return
	}
	created, err := h.Service.Subscribe(r.Context(), candidate)
	if err != nil {
		obs.ObserveNewsletterSubscription(obs.ResultRejected)
		common.WriteError(w, err)
		return
	}
	obs.ObserveNewsletterSubscription(obs.ResultAccepted)
	common.JSON(w, http.StatusCreated, created)
}
