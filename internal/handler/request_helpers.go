package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/QuestTown_Go/internal/logger"
)

// pathParamTag constrains every path parameter the API accepts
const pathParamTag = "required,max=64,key"

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and
// validates it. On failure the response has already been written and the
// handler should return.
//
// Example usage:
//
//	var req QuestRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Request quest"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	if err := decodeBody(r, req, false); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	return validateRequest(r, w, req, actionName)
}

// DecodeOptionalRequest is DecodeAndValidateRequest for endpoints whose
// body may be omitted. An empty body leaves req at its zero value.
func DecodeOptionalRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	if err := decodeBody(r, req, true); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	return validateRequest(r, w, req, actionName)
}

func decodeBody(r *http.Request, req interface{}, optional bool) error {
	if r.Body == nil {
		if optional {
			return nil
		}
		return io.EOF
	}
	err := json.NewDecoder(r.Body).Decode(req)
	if optional && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func validateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	logger.FromContext(r.Context()).Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// GetPathParam reads a chi URL parameter and checks it is a plain key.
// If ok is false the response has already been written.
func GetPathParam(r *http.Request, w http.ResponseWriter, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if err := GetValidator().ValidateVar(value, pathParamTag); err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgPathParamRejected, "param", name)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, name))
		return "", false
	}
	return value, true
}
