package store_status_put

import (
	"errors"
	"net/http"

	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/converters"
	"marketplace/internal/pkg/httpjson"
	"marketplace/internal/service/catalog"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "store_status_put")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	storeID, err := httpjson.PathInt64(r, "storeId")
	if err != nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid store id")
		return
	}

	var req dto.SetStoreOpenJSONRequestBody
	if err := httpjson.Decode(r, &req); err != nil || req.IsOpen == nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "isOpen is required")
		return
	}

	store, err := h.service.SetStoreOpen(r.Context(), storeID, *req.IsOpen)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidStoreID):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid store id")
		case errors.Is(err, catalog.ErrStoreNotFound):
			httpjson.WriteMessage(w, h.log, http.StatusNotFound, "Store not found")
		default:
			h.log.Error("set store open", logger.NewField("error", err))
			httpjson.WriteMessage(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	message := "Store closed"
	if store.IsOpen {
		message = "Store opened"
	}
	httpjson.Write(w, h.log, http.StatusOK, dto.StoreResponse{
		Message: message,
		Store:   converters.Store(*store),
	})
}
