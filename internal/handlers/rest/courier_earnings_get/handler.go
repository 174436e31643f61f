package courier_earnings_get

import (
	"errors"
	"net/http"
	"time"

	"marketplace/internal/handlers/rest/converters"
	"marketplace/internal/pkg/httpjson"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	now     func() time.Time
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "courier_earnings_get")),
		service: service,
		now:     time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	courierID, err := httpjson.PathInt64(r, "deliveryPersonId")
	if err != nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid delivery person id")
		return
	}

	earnings, err := h.service.GetCourierEarnings(r.Context(), courierID, h.now())
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidCourier):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid delivery person id")
		default:
			h.log.Error("courier earnings", logger.NewField("error", err))
			httpjson.WriteMessage(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, converters.CourierEarnings(*earnings))
}
