package adaptor

import (
	"net/http"

	"store-ratings/internal/data/entity"
	"store-ratings/internal/usecase"
	"store-ratings/pkg/utils"

	"go.uber.org/zap"
)

type OwnerHandler struct {
	service usecase.OwnerService
	log     *zap.Logger
}

func NewOwnerHandler(service usecase.OwnerService, log *zap.Logger) *OwnerHandler {
	return &OwnerHandler{
		service: service,
		log:     log.With(zap.String("handler", "owner")),
	}
}

// Summary handles GET /owner/summary (OWNER, ADMIN)
func (h *OwnerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	requestedOwnerID := r.URL.Query().Get("ownerId")

	resp, err := h.service.Summary(r.Context(), userID, entity.Role(role), requestedOwnerID)
	if err != nil {
		handleServiceError(w, h.log, err, "owner summary")
		return
	}

	utils.ResponseSuccess(w, resp)
}
