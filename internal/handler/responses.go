package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/QuestTown_Go/internal/domain"
	"github.com/osse101/QuestTown_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload.
// The payload is encoded before any header is written so an encoding
// failure still yields a 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and sends the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "op", op, "error", err)
	} else {
		log.Info(LogMsgServiceError, "op", op, "status", status, "error", err)
	}

	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP statuses and
// messages players can act on
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidLocation):
		return http.StatusBadRequest, ErrMsgInvalidLocationError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrShopItemNotFound):
		return http.StatusNotFound, ErrMsgShopItemNotFoundErr
	case errors.Is(err, domain.ErrShopLocked):
		return http.StatusForbidden, ErrMsgShopLockedError
	case errors.Is(err, domain.ErrNoActiveQuest):
		return http.StatusConflict, ErrMsgNoActiveQuestError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrAlreadyOwned):
		return http.StatusConflict, ErrMsgAlreadyOwnedError
	case errors.Is(err, domain.ErrItemNotOwned):
		return http.StatusConflict, ErrMsgItemNotOwnedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
