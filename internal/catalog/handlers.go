package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-pasar/internal/common"
	"github.com/noah-isme/backend-pasar/internal/obs"
)

// Handler exposes the public catalog endpoints.
type Handler struct {
	service *Service
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Service *Service
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{service: cfg.Service}
}

// Products handles GET /api/products.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "catalog service not configured", nil)
		return
	}
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, products)
}

// ProductsByCategory handles GET /api/products/{category}.
func (h *Handler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "catalog service not configured", nil)
		return
	}
	category := chi.URLParam(r, "category")
	products, err := h.service.ListByCategory(r.Context(), category)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, products)
}

// Quote handles GET /api/products/{id}/quote?quantity=N.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "catalog service not configured", nil)
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		obs.ObserveQuoteRequest(obs.ResultRejected)
		common.JSONError(w, http.StatusBadRequest, common.CodeValidation, "Invalid quote request", map[string]any{"id": "must be an integer"})
		return
	}
	rawQty := strings.TrimSpace(r.URL.Query().Get("quantity"))
	quantity, err := strconv.Atoi(rawQty)
	if err != nil {
		obs.ObserveQuoteRequest(obs.ResultRejected)
		common.JSONError(w, http.StatusBadRequest, common.CodeValidation, "Invalid quote request", map[string]any{"quantity": "must be an integer"})
		return
	}
	quote, err := h.service.Quote(r.Context(), id, quantity)
	if err != nil {
		obs.ObserveQuoteRequest(obs.ResultRejected)
		common.WriteError(w, err)
		return
	}
	obs.ObserveQuoteRequest(obs.ResultAccepted)
	common.JSON(w, http.StatusOK, quote)
}

