// Package response writes JSON bodies and maps domain errors to HTTP
// error responses.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	domainerrors "notes-api/internal/errors"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// JSON writes data as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any, log *zap.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil && log != nil {
		log.Error("failed to encode JSON response", zap.Error(err))
	}
}

// Success writes a 200 OK response.
func Success(w http.ResponseWriter, data any, log *zap.Logger) {
	JSON(w, http.StatusOK, data, log)
}

// Created writes a 201 Created response.
func Created(w http.ResponseWriter, data any, log *zap.Logger) {
	JSON(w, http.StatusCreated, data, log)
}

// Error writes an error body with the given status.
func Error(w http.ResponseWriter, status int, code domainerrors.Code, message string, details any, log *zap.Logger) {
	JSON(w, status, ErrorBody{Code: string(code), Message: message, Details: details}, log)
}

// NotFound writes a 404 Not Found response.
func NotFound(w http.ResponseWriter, message string, log *zap.Logger) {
	Error(w, http.StatusNotFound, domainerrors.CodeNotFound, message, nil, log)
}

// InternalError writes a 500 Internal Server Error response.
func InternalError(w http.ResponseWriter, log *zap.Logger) {
	Error(w, http.StatusInternalServerError, domainerrors.CodeInternal, "internal server error", nil, log)
}

// HandleError writes the response for err. Domain errors keep their code,
// message and details. Anything else is logged and hidden behind a 500.
func HandleError(w http.ResponseWriter, err error, log *zap.Logger) {
	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) && domainErr.Code != domainerrors.CodeInternal {
		Error(w, domainErr.HTTPStatus(), domainErr.Code, domainErr.Message, domainErr.Details, log)
		return
	}

	if log != nil {
		log.Error("unhandled error", zap.Error(err))
	}
	InternalError(w, log)
}
