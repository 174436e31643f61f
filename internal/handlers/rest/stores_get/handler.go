package stores_get

import (
	"net/http"

	"marketplace/internal/handlers/rest/converters"
	"marketplace/internal/pkg/httpjson"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "stores_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.ListOpenStores(r.Context())
	if err != nil {
		h.log.Error("list open stores", logger.NewField("error", err))
		httpjson.WriteMessage(w, h.log, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, converters.Stores(stores))
}
