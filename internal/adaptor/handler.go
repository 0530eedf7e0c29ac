package adaptor

import (
	"store-ratings/internal/apperr"
	"store-ratings/internal/usecase"
	"store-ratings/pkg/utils"

	"net/http"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	Store *StoreHandler
	Admin *AdminHandler
	Owner *OwnerHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		Store: NewStoreHandler(service.Store, log),
		Admin: NewAdminHandler(service.Admin, log),
		Owner: NewOwnerHandler(service.Owner, log),
	}
}

// handleServiceError maps the error taxonomy to HTTP statuses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), apperr.IssuesOf(err))
	case apperr.KindUnauthorized:
		log.Warn(operation+" unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())
	case apperr.KindForbidden:
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())
	case apperr.KindNotFound:
		log.Warn(operation+" not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())
	case apperr.KindConflict:
		log.Warn(operation+" conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())
	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
