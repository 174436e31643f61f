package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/generated/dto"
	"marketplace/pkg/logger"
)

const maxBodyBytes = 1 << 20

var ErrInvalidPathParam = errors.New("invalid path parameter")

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func Write(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// WriteMessage отвечает телом {"message": ...}, которое клиенты показывают пользователю.
func WriteMessage(w http.ResponseWriter, log errorLogger, status int, message string) {
	Write(w, log, status, dto.ErrorResponse{Message: message})
}

func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// PathInt64 читает id из переменной маршрута mux.
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %s=%q", ErrInvalidPathParam, name, raw)
	}
	return id, nil
}
