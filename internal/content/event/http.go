// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package event

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ravenstrike/rsf-api/internal/platform/middleware"
	requestutil "github.com/ravenstrike/rsf-api/internal/platform/request"
	"github.com/ravenstrike/rsf-api/internal/platform/respond"
	"github.com/ravenstrike/rsf-api/internal/platform/sec"
	"github.com/ravenstrike/rsf-api/internal/platform/validate"
	"github.com/ravenstrike/rsf-api/pkg/pagination"
)

// Handler implements the HTTP layer for the games calendar.
type Handler struct {
	eventService *Service
}

// NewHandler constructs an event [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{eventService: service}
}

// Routes returns the public calendar endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPublished)
	router.Get("/{slug}", handler.getBySlug)

	return router
}

// AdminRoutes returns the editorial endpoints: editor+ writes, admin delete.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleEditor))
		r.Get("/", handler.listAll)
		r.Post("/", handler.create)
		r.Patch("/{id}", handler.update)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Delete("/{id}", handler.remove)
	})

	return router
}

// # Public Endpoints

/*
GET /api/v1/games?scope=upcoming|past.

Description: Published games, upcoming (default, ascending) or past
(descending).

Response:
  - 200: Paginated []Event
*/
func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)
	upcoming := request.URL.Query().Get("scope") != "past"

	events, total, err := handler.eventService.ListPublished(request.Context(), upcoming, page.Limit, page.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, events, pagination.NewMeta(page.Page, page.Limit, total))
}

/*
GET /api/v1/games/{slug}.

Response:
  - 200: Event: Published game
  - 404: ErrNotFound: Unknown slug or unpublished game
*/
func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	eventSlug := requestutil.Param(request, "slug")

	found, err := handler.eventService.GetBySlug(request.Context(), eventSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

// # Editorial Endpoints

type createEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	Capacity    int       `json:"capacity"`
	Publish     bool      `json:"publish"`
}

/*
POST /api/v1/admin/games.

Response:
  - 201: Event: Created game
  - 400: Validation failure
  - 409: ErrConflict: Slug already exists
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createEventRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		Required(FieldLocation, input.Location).
		Range(FieldCapacity, input.Capacity, 0, 500)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.eventService.Create(request.Context(), CreateInput{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		Capacity:    input.Capacity,
		Publish:     input.Publish,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

type updateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartsAt    *time.Time `json:"starts_at"`
	Capacity    *int       `json:"capacity"`
	Publish     *bool      `json:"publish"`
}

/*
PATCH /api/v1/admin/games/{id}.

Response:
  - 200: Event: Updated game
  - 404: ErrNotFound: Unknown game
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input updateEventRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if input.Title != nil {
		v.Required(FieldTitle, *input.Title).MaxLen(FieldTitle, *input.Title, 200)
	}
	if input.Capacity != nil {
		v.Range(FieldCapacity, *input.Capacity, 0, 500)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.eventService.Update(request.Context(), id, UpdateInput{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		Capacity:    input.Capacity,
		Publish:     input.Publish,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
GET /api/v1/admin/games.

Response:
  - 200: Paginated []Event: Every non-deleted game
*/
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	events, total, err := handler.eventService.ListAll(request.Context(), page.Limit, page.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, events, pagination.NewMeta(page.Page, page.Limit, total))
}

/*
DELETE /api/v1/admin/games/{id}.

Response:
  - 204: No Content: Game soft-deleted
  - 404: ErrNotFound: Unknown game
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.eventService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
