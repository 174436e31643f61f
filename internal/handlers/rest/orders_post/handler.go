package orders_post

import (
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"marketplace/internal/entities"
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
		log:     log.With(logger.NewField("handler", "orders_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderJSONRequestBody
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Missing required fields")
		return
	}

	created, err := h.service.CreateOrder(r.Context(), entities.OrderDraft{
		UserID:          pointer.Get(req.UserId),
		StoreID:         pointer.Get(req.StoreId),
		Items:           converters.OrderItems(pointer.Get(req.Products)),
		DeliveryAddress: pointer.Get(req.DeliveryAddress),
		PaymentMethod:   pointer.Get(req.PaymentMethod),
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, order.ErrInvalidQuantity):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Quantity must be positive")
		case errors.Is(err, order.ErrInvalidConsumer):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "User is not a consumer")
		case errors.Is(err, order.ErrStoreClosed):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Store is closed")
		case errors.Is(err, order.ErrNoOrderableItems):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "None of the products can be ordered")
		case errors.Is(err, order.ErrStoreNotFound):
			httpjson.WriteMessage(w, h.log, http.StatusNotFound, "Store not found")
		default:
			h.log.Error("create order", logger.NewField("error", err))
			httpjson.WriteMessage(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusCreated, dto.OrderResponse{
		Message: "Order created",
		Order:   converters.Order(*created),
	})
}
