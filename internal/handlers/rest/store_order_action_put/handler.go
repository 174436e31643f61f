package store_order_action_put

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
	apply   func(s Service, ctx context.Context, storeID, orderID int64) (*entities.Order, error)
	message string
}

var actions = map[dto.StoreOrderActionParamsAction]action{
	dto.StoreOrderActionParamsActionAccept:   {apply: Service.AcceptByStore, message: "Order accepted"},
	dto.StoreOrderActionParamsActionReject:   {apply: Service.Reject, message: "Order rejected"},
	dto.StoreOrderActionParamsActionPrepare:  {apply: Service.StartPreparing, message: "Order is being prepared"},
	dto.StoreOrderActionParamsActionReady:    {apply: Service.MarkReady, message: "Order is ready for pickup"},
	dto.StoreOrderActionParamsActionComplete: {apply: Service.CompleteByStore, message: "Order completed"},
}

// ActionsPattern ограничивает переменную {action} в маршруте mux.
const ActionsPattern = "accept|reject|prepare|ready|complete"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "store_order_action_put")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	storeID, err := httpjson.PathInt64(r, "storeId")
	if err != nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid store id")
		return
	}
	orderID, err := httpjson.PathInt64(r, "orderId")
	if err != nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid order id")
		return
	}

	act, ok := actions[dto.StoreOrderActionParamsAction(mux.Vars(r)["action"])]
	if !ok {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Unknown action")
		return
	}

	updated, err := act.apply(h.service, r.Context(), storeID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			httpjson.WriteMessage(w, h.log, http.StatusNotFound, "Order not found")
		case errors.Is(err, order.ErrInvalidTransition):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Action is not allowed for the current order status")
		case errors.Is(err, order.ErrInvalidOrderID):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid order id")
		default:
			h.log.Error("store order action", logger.NewField("error", err))
			httpjson.WriteMessage(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, dto.OrderResponse{
		Message: act.message,
		Order:   converters.Order(*updated),
	})
}
