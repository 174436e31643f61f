package store_orders_get

import (
	"errors"
	"net/http"

	"marketplace/internal/handlers/rest/converters"
	"marketplace/internal/pkg/httpjson"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "store_orders_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := httpjson.PathInt64(r, "storeId")
	if err != nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid store id")
		return
	}

	orders, err := h.service.ListOrdersForStore(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStoreID):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid store id")
		default:
			h.log.Error("list store orders", logger.NewField("error", err))
			httpjson.WriteMessage(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, converters.Orders(orders))
}
