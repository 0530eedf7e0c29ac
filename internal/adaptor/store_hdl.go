package adaptor

import (
	"encoding/json"
	"net/http"

	"store-ratings/internal/dto/request"
	"store-ratings/internal/usecase"
	"store-ratings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StoreHandler struct {
	service usecase.StoreService
	log     *zap.Logger
}

func NewStoreHandler(service usecase.StoreService, log *zap.Logger) *StoreHandler {
	return &StoreHandler{
		service: service,
		log:     log.With(zap.String("handler", "store")),
	}
}

// ListStores handles GET /stores (any identity)
func (h *StoreHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := request.ParseListStoresRequest(r.URL.Query())

	resp, err := h.service.ListStores(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// Rate handles POST /stores/{id}/rate (any identity)
func (h *StoreHandler) Rate(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	storeID := chi.URLParam(r, "id")
	if storeID == "" {
		utils.ResponseBadRequest(w, "Store ID is required", nil)
		return
	}

	var req request.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Rate(r.Context(), userID, storeID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "rate store")
		return
	}

	utils.ResponseSuccess(w, resp)
}
