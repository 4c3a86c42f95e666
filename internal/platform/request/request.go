// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
	"github.com/taibuivan/elementadmin/internal/platform/ctxutil"
	"github.com/taibuivan/elementadmin/internal/platform/validate"
	"github.com/taibuivan/elementadmin/internal/system/session"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

An empty body leaves target untouched: list endpoints are posted without a
payload by the admin frontend.

Returns:
  - error: validate.ErrInvalidJSON, or the *apperr.AppError raised by a
    custom UnmarshalJSON (for example a malformed id list)
*/
func DecodeJSON(request *http.Request, target any) error {
	if request.Body == nil {
		return nil
	}

	err := json.NewDecoder(request.Body).Decode(target)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	if appError := apperr.As(err); appError != nil {
		return appError
	}
	return validate.ErrInvalidJSON.WithCause(err)
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Session extracts the login session from the request context.

Returns nil if the request is not authenticated.
*/
func Session(request *http.Request) *session.Session {
	return ctxutil.GetSession(request.Context())
}

/*
RequiredSession ensures the request is authenticated and returns the session.

Returns:
  - *session.Session: The live login session
  - error: session.ErrExpired if the request is not authenticated
*/
func RequiredSession(request *http.Request) (*session.Session, error) {
	current := ctxutil.GetSession(request.Context())
	if current == nil {
		return nil, session.ErrExpired
	}
	return current, nil
}

/*
RequiredUserID returns the id of the currently logged-in user.
*/
func RequiredUserID(request *http.Request) (int64, error) {
	current, err := RequiredSession(request)
	if err != nil {
		return 0, err
	}
	return current.ID, nil
}
