package delivery_orders_get

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
		log:     log.With(logger.NewField("handler", "delivery_orders_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListPendingForCouriers(r.Context())
	if err != nil {
		h.log.Error("list pending orders", logger.NewField("error", err))
		httpjson.WriteMessage(w, h.log, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, converters.Orders(orders))
}
