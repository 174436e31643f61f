package product_availability_put

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
		log:     log.With(logger.NewField("handler", "product_availability_put")),
		service: service,
	}
}

// ServeHTTP переключает доступность товара на противоположную.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	productID, err := httpjson.PathInt64(r, "productId")
	if err != nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.service.ToggleProductAvailability(r.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidProductID):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid product id")
		case errors.Is(err, catalog.ErrProductNotFound):
			httpjson.WriteMessage(w, h.log, http.StatusNotFound, "Product not found")
		default:
			h.log.Error("toggle product availability", logger.NewField("error", err))
			httpjson.WriteMessage(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	message := "Product hidden"
	if product.Available {
		message = "Product available"
	}
	httpjson.Write(w, h.log, http.StatusOK, dto.ProductResponse{
		Message: message,
		Product: converters.Product(*product),
	})
}
