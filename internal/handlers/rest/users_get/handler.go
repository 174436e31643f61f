package users_get

import (
	"net/http"

	"marketplace/internal/handlers/rest/converters"
	"marketplace/internal/pkg/httpjson"
	"marketplace/pkg/logger"
)

// Handler отдаёт справочник пользователей без хешей паролей. Нужен для отладки клиентов.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "users_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.log.Error("list users", logger.NewField("error", err))
		httpjson.WriteMessage(w, h.log, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, converters.Users(users))
}
