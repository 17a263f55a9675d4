// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package team

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

// Handler implements the HTTP layer for the roster.
type Handler struct {
	teamService *Service
}

// NewHandler constructs a team [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{teamService: service}
}

// Routes returns the public roster endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listActive)

	return router
}

// AdminRoutes returns the editorial endpoints: editor+ manages the roster.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleEditor))
		r.Get("/", handler.listAll)
		r.Post("/", handler.create)
		r.Patch("/{id}", handler.update)
		r.Delete("/{id}", handler.remove)
	})

	return router
}

/*
GET /api/v1/team.

Response:
  - 200: []Member: Active members ordered by sort order
*/
func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	members, err := handler.teamService.ListActive(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, members)
}

/*
GET /api/v1/admin/team.

Response:
  - 200: Paginated []Member: Active and retired members
*/
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	members, total, err := handler.teamService.ListAll(request.Context(), page.Limit, page.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, members, pagination.NewMeta(page.Page, page.Limit, total))
}

type createMemberRequest struct {
	Callsign  string `json:"callsign"`
	FullName  string `json:"full_name"`
	RoleLabel string `json:"role_label"`
	Bio       string `json:"bio"`
	AvatarKey string `json:"avatar_key"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

/*
POST /api/v1/admin/team.

Response:
  - 201: Member: Created roster entry
  - 400: Validation failure
  - 409: ErrConflict: Callsign already on the roster
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createMemberRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldCallsign, input.Callsign).
		MaxLen(FieldCallsign, input.Callsign, 30).
		Required(FieldRoleLabel, input.RoleLabel).
		MaxLen(FieldRoleLabel, input.RoleLabel, 60).
		MaxLen(FieldBio, input.Bio, 1000)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.teamService.Create(request.Context(), CreateInput{
		Callsign:  input.Callsign,
		FullName:  input.FullName,
		RoleLabel: input.RoleLabel,
		Bio:       input.Bio,
		AvatarKey: input.AvatarKey,
		SortOrder: input.SortOrder,
		IsActive:  input.IsActive,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, member)
}

type updateMemberRequest struct {
	Callsign  *string `json:"callsign"`
	FullName  *string `json:"full_name"`
	RoleLabel *string `json:"role_label"`
	Bio       *string `json:"bio"`
	AvatarKey *string `json:"avatar_key"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

/*
PATCH /api/v1/admin/team/{id}.

Response:
  - 200: Member: Updated roster entry
  - 404: ErrNotFound: Unknown member
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input updateMemberRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if input.Callsign != nil {
		v.Required(FieldCallsign, *input.Callsign).MaxLen(FieldCallsign, *input.Callsign, 30)
	}
	if input.RoleLabel != nil {
		v.Required(FieldRoleLabel, *input.RoleLabel).MaxLen(FieldRoleLabel, *input.RoleLabel, 60)
	}
	if input.Bio != nil {
		v.MaxLen(FieldBio, *input.Bio, 1000)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.teamService.Update(request.Context(), id, UpdateInput{
		Callsign:  input.Callsign,
		FullName:  input.FullName,
		RoleLabel: input.RoleLabel,
		Bio:       input.Bio,
		AvatarKey: input.AvatarKey,
		SortOrder: input.SortOrder,
		IsActive:  input.IsActive,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, member)
}

/*
DELETE /api/v1/admin/team/{id}.

Response:
  - 204: No Content: Member removed
  - 404: ErrNotFound: Unknown member
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.teamService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
