// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package department

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/elementadmin/internal/platform/request"
	"github.com/taibuivan/elementadmin/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the department endpoints. The caller applies authentication.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/list", handler.list)
	router.Post("/saveOrUpdate", handler.saveOrUpdate)
	router.Post("/deleted", handler.deleted)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	nodes, err := handler.service.Tree(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, nodes)
}

func (handler *Handler) saveOrUpdate(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Department
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Save(request.Context(), userID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleted(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input DeleteInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), userID, input.ID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, nil)
}
