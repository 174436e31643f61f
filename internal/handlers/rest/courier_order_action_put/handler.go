package courier_order_action_put

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/converters"
	"marketplace/internal/pkg/httpjson"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

type action struct {
	apply   func(s Service, ctx context.Context, courierID, orderID int64) (*entities.Order, error)
	message string
}

var actions = map[dto.CourierOrderActionParamsAction]action{
	dto.CourierOrderActionParamsActionPickup:  {apply: Service.MarkPickedUp, message: "Order picked up"},
	dto.CourierOrderActionParamsActionDeliver: {apply: Service.MarkDelivered, message: "Order delivered"},
}

const ActionsPattern = "pickup|deliver"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "courier_order_action_put")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	courierID, err := httpjson.PathInt64(r, "deliveryPersonId")
	if err != nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid delivery person id")
		return
	}
	orderID, err := httpjson.PathInt64(r, "orderId")
	if err != nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid order id")
		return
	}

	act, ok := actions[dto.CourierOrderActionParamsAction(mux.Vars(r)["action"])]
	if !ok {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Unknown action")
		return
	}

	updated, err := act.apply(h.service, r.Context(), courierID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			httpjson.WriteMessage(w, h.log, http.StatusNotFound, "Order not found")
		case errors.Is(err, order.ErrInvalidTransition):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Action is not allowed for the current order status")
		case errors.Is(err, order.ErrInvalidOrderID), errors.Is(err, order.ErrInvalidCourier):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid order or delivery person id")
		default:
			h.log.Error("courier order action", logger.NewField("error", err))
			httpjson.WriteMessage(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, dto.OrderResponse{
		Message: act.message,
		Order:   converters.Order(*updated),
	})
}
