// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Every response (Success or Error) follows the same JSON envelope:
//
//	{"code": 0, "msg": "OK", "success": true, "data": ...}
//
// The admin frontend branches on "success" and "code", so the envelope is
// emitted for errors as well, with the HTTP status mirrored into "code".
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
	"github.com/taibuivan/elementadmin/internal/platform/ctxutil"
)

// CodeOK is the envelope code of every successful response.
const CodeOK = 0

// Envelope is the JSON envelope shared by success and error responses.
type Envelope struct {
	Code    int                 `json:"code"`
	Msg     string              `json:"msg"`
	Success bool                `json:"success"`
	Data    any                 `json:"data"`
	Error   string              `json:"error,omitempty"`
	Details []apperr.FieldError `json:"details,omitempty"`
	TraceID string              `json:"trace_id,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the standard envelope.
func OK(writer http.ResponseWriter, data any) {
	WithStatus(writer, http.StatusOK, data)
}

// WithStatus writes a successful envelope with a non-default status code.
// Readiness probes use it to report 503 while keeping the same body shape.
func WithStatus(writer http.ResponseWriter, statusCode int, data any) {
	JSON(writer, statusCode, Envelope{
		Code:    CodeOK,
		Msg:     "OK",
		Success: statusCode < http.StatusBadRequest,
		Data:    data,
	})
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	logger := ctxutil.GetLogger(request.Context())
	requestID := ctxutil.GetRequestID(request.Context())

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", requestID),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= http.StatusInternalServerError {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", requestID),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, Envelope{
		Code:    appError.HTTPStatus,
		Msg:     appError.Message,
		Success: false,
		Error:   appError.Code,
		Details: appError.Details,
		TraceID: requestID,
	})
}
