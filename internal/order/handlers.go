package order

import (
	"encoding/json"
	"net/http"

	"github.com/noah-isme/backend-pasar/internal/common"
	"github.com/noah-isme/backend-pasar/internal/obs"
)

// Handler exposes the bulk-order intake endpoint.
type Handler struct {
	Service *Service
}

// Submit handles POST /api/orders.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "order service not configured", nil)
		return
	}
	var candidate Candidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		obs.ObserveOrderSubmission(obs.ResultRejected)
		common.JSONError(w, http.StatusBadRequest, common.CodeValidation, invalidOrderMessage, map[string]string{"body": "malformed JSON"})
		return
	}
	created, err := h.Service.Submit(r.Context(), candidate)
	if err != nil {
		obs.ObserveOrderSubmission(obs.ResultRejected)
		common.WriteError(w, err)
		return
	}
	obs.ObserveOrderSubmission(obs.ResultAccepted)
	common.JSON(w, http.StatusCreated, created)
}
