package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/QuestTown_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"Nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"Invalid Input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
		{"Invalid Location", fmt.Errorf("%w: %q", domain.ErrInvalidLocation, "moon"), http.StatusBadRequest, ErrMsgInvalidLocationError},
		{"Player Not Found", fmt.Errorf("%w: bob", domain.ErrPlayerNotFound), http.StatusNotFound, ErrMsgPlayerNotFoundError},
		{"Shop Item Not Found", domain.ErrShopItemNotFound, http.StatusNotFound, ErrMsgShopItemNotFoundErr},
		{"Shop Locked", domain.ErrShopLocked, http.StatusForbidden, ErrMsgShopLockedError},
		{"No Active Quest", domain.ErrNoActiveQuest, http.StatusConflict, ErrMsgNoActiveQuestError},
		{"Insufficient Funds", domain.ErrInsufficientFunds, http.StatusConflict, ErrMsgNotEnoughCoinsError},
		{"Already Owned", domain.ErrAlreadyOwned, http.StatusConflict, ErrMsgAlreadyOwnedError},
		{"Item Not Owned", domain.ErrItemNotOwned, http.StatusConflict, ErrMsgItemNotOwnedError},
		{"Persistence Read", domain.ErrPersistenceRead, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"Unknown", errors.New("disk on fire at /var/lib/secret"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestRespondJSON_UnencodablePayload(t *testing.T) {
	w := httptest.NewRecorder()

	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	respondError(w, http.StatusTeapot, "short and stout")

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"short and stout"}`, w.Body.String())
}
