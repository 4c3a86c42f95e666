// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package file

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/elementadmin/internal/platform/constants"
	"github.com/taibuivan/elementadmin/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/elementadmin/internal/platform/request"
	"github.com/taibuivan/elementadmin/internal/platform/respond"
	"github.com/taibuivan/elementadmin/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the management endpoints. The caller applies authentication.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/upload", handler.upload)
	router.Post("/list", handler.list)
	router.Post("/deleted", handler.deleted)
}

// RegisterPublicRoutes mounts the read endpoints used by plain browser links,
// which cannot carry the token header.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/download/{id}", handler.download)
	router.Get("/getFileById", handler.getFileByID)
}

func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxUploadBytes)
	part, header, err := request.FormFile(FieldFile)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			respond.Error(writer, request, validate.RequiredError(FieldFile, "The file is too large"))
		default:
			respond.Error(writer, request, ErrNoFile)
		}
		return
	}
	defer part.Close()

	uploaded, err := handler.service.Upload(request.Context(), userID, Upload{
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		Body:         part,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, uploaded)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	var query ListQuery
	if err := requestutil.DecodeJSON(request, &query); err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.List(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

func (handler *Handler) download(writer http.ResponseWriter, request *http.Request) {
	f, reader, err := handler.service.Open(request.Context(), requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer reader.Close()

	contentType := "application/octet-stream"
	if f.ContentType != nil && *f.ContentType != "" {
		contentType = *f.ContentType
	}
	writer.Header().Set("Content-Type", contentType)
	writer.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.OriginalName}))
	writer.WriteHeader(http.StatusOK)

	// Headers are gone once the copy starts; failures can only be logged.
	if _, err := io.Copy(writer, reader); err != nil {
		ctxutil.GetLogger(request.Context()).Warn("file_download_interrupted", slog.String("file_id", f.ID), slog.Any("error", err))
	}
}

func (handler *Handler) getFileByID(writer http.ResponseWriter, request *http.Request) {
	ref, err := handler.service.Get(request.Context(), request.URL.Query().Get(FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ref)
}

func (handler *Handler) deleted(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input IDInput
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
