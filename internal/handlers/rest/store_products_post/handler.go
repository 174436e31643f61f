package store_products_post

import (
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/converters"
	"marketplace/internal/pkg/httpjson"
	"marketplace/internal/service/catalog"
	"marketplace/pkg/logger"
)

const messageMissingFields = "Name, price and category are required"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "store_products_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	storeID, err := httpjson.PathInt64(r, "storeId")
	if err != nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid store id")
		return
	}

	var req dto.CreateProductJSONRequestBody
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, messageMissingFields)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), storeID,
		pointer.Get(req.Name), pointer.Get(req.Price), pointer.Get(req.Category))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingRequiredFields):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, messageMissingFields)
		case errors.Is(err, catalog.ErrInvalidPrice):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Price must be positive")
		case errors.Is(err, catalog.ErrInvalidStoreID):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Invalid store id")
		case errors.Is(err, catalog.ErrStoreNotFound):
			httpjson.WriteMessage(w, h.log, http.StatusNotFound, "Store not found")
		default:
			h.log.Error("create product", logger.NewField("error", err))
			httpjson.WriteMessage(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusCreated, dto.ProductResponse{
		Message: "Product created",
		Product: converters.Product(*product),
	})
}
