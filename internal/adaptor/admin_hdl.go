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

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// CreateUser handles POST /admin/users
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	req := request.ParseListUsersRequest(r.URL.Query())

	resp, err := h.service.ListUsers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// GetUser handles GET /admin/users/{id}
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	resp, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// CreateStore handles POST /admin/stores
func (h *AdminHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateStore(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create store")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// ListStores handles GET /admin/stores
func (h *AdminHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	req := request.ParseListStoresRequest(r.URL.Query())

	resp, err := h.service.ListStores(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// Metrics handles GET /admin/metrics
func (h *AdminHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Metrics(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get metrics")
		return
	}

	utils.ResponseSuccess(w, resp)
}
