// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ravenstrike/rsf-api/internal/platform/middleware"
	requestutil "github.com/ravenstrike/rsf-api/internal/platform/request"
	"github.com/ravenstrike/rsf-api/internal/platform/respond"
	"github.com/ravenstrike/rsf-api/internal/platform/sec"
	"github.com/ravenstrike/rsf-api/internal/platform/validate"
	"github.com/ravenstrike/rsf-api/pkg/pagination"
)

// Handler implements the HTTP layer for the gallery.
type Handler struct {
	galleryService *Service
}

// NewHandler constructs a gallery [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{galleryService: service}
}

// Routes returns the public gallery endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)

	return router
}

// AdminRoutes returns the editorial endpoints: editor+ manages media.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleEditor))
		r.Post("/uploads", handler.newUpload)
		r.Post("/", handler.create)
		r.Delete("/{id}", handler.remove)
	})

	return router
}

/*
GET /api/v1/gallery.

Response:
  - 200: Paginated []Item: Items with short-lived presigned URLs
  - 503: ErrServiceUnavailable: No media bucket configured
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	items, total, err := handler.galleryService.List(request.Context(), page.Limit, page.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(page.Page, page.Limit, total))
}

type newUploadRequest struct {
	ContentType string `json:"content_type"`
}

/*
POST /api/v1/admin/gallery/uploads.

Description: Issues a presigned PUT grant; the SPA uploads directly to the
bucket and then registers the item.

Response:
  - 200: UploadTicket
  - 503: ErrServiceUnavailable: No media bucket configured
*/
func (handler *Handler) newUpload(writer http.ResponseWriter, request *http.Request) {
	var input newUploadRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldContentType, input.ContentType)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ticket, err := handler.galleryService.NewUpload(request.Context(), input.ContentType)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ticket)
}

type createItemRequest struct {
	Title      string `json:"title"`
	StorageKey string `json:"storage_key"`
	MediaType  string `json:"media_type"`
	SortOrder  int    `json:"sort_order"`
}

/*
POST /api/v1/admin/gallery.

Response:
  - 201: Item: Registered gallery item
  - 400: Validation failure
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createItemRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		Required(FieldStorageKey, input.StorageKey).
		OneOf(FieldMediaType, input.MediaType, MediaTypeImage, MediaTypeVideo)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.galleryService.Create(request.Context(), CreateInput{
		Title:      input.Title,
		StorageKey: input.StorageKey,
		MediaType:  input.MediaType,
		SortOrder:  input.SortOrder,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, item)
}

/*
DELETE /api/v1/admin/gallery/{id}.

Response:
  - 204: No Content: Item removed from the gallery
  - 404: ErrNotFound: Unknown item
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.galleryService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
