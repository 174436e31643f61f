package login_post

import (
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/converters"
	"marketplace/internal/pkg/httpjson"
	"marketplace/internal/service/user"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "login_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginJSONRequestBody
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Email and password are required")
		return
	}

	u, err := h.service.Authenticate(r.Context(), pointer.Get(req.Email), pointer.Get(req.Password))
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields):
			httpjson.WriteMessage(w, h.log, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, user.ErrInvalidCredentials):
			httpjson.WriteMessage(w, h.log, http.StatusNotFound, "User not found or invalid credentials")
		default:
			h.log.Error("authenticate", logger.NewField("error", err))
			httpjson.WriteMessage(w, h.log, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User:    converters.User(*u),
	})
}
