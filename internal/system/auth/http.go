// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/elementadmin/internal/platform/middleware"
	requestutil "github.com/taibuivan/elementadmin/internal/platform/request"
	"github.com/taibuivan/elementadmin/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the token endpoints. They read the token themselves,
// so none of them requires an authenticated group.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Post("/authorizeToken", handler.authorizeToken)
}

/*
login answers the session on success.

Errors, in check order:
  - 400 VALIDATION_ERROR: username or password blank.
  - 401: unknown username or wrong password, with one generic message.
  - 403: the account is disabled. Only reported once the password matched, so a
    disabled account with a wrong password still gets the 401 above.
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.Login(request.Context(), input, middleware.RealIP(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, current)
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	handler.service.Logout(request.Context(), middleware.Token(request))
	respond.OK(writer, nil)
}

func (handler *Handler) authorizeToken(writer http.ResponseWriter, request *http.Request) {
	info, err := handler.service.CheckToken(request.Context(), middleware.Token(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, info)
}
