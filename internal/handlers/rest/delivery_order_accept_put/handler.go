package delivery_order_accept_put

import (
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"marketplace/internal/generated/dto"
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
		log:     log.With(logger.NewField("handler", "delivery_order_accept_put")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := httpjson.PathInt64(r, "orderId")
	if err != nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.AcceptByCourierJSONRequestBody
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "deliveryPersonId is required")
		return
	}

	accepted, err := h.service.AcceptByCourier(r.Context(), orderID, pointer.Get(req.DeliveryPersonId))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			httpjson.WriteMessage(w, h.log, http.StatusNotFound, "Order not found")
		case errors.Is(err, order.ErrInvalidTransition):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "This order is no longer available")
		case errors.Is(err, order.ErrInvalidCourier):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid delivery person")
		case errors.Is(err, order.ErrInvalidOrderID):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid order id")
		default:
			h.log.Error("accept order by courier", logger.NewField("error", err))
			httpjson.WriteMessage(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, dto.OrderResponse{
		Message: "Order accepted",
		Order:   converters.Order(*accepted),
	})
}
