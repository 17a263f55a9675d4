// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package profile

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

// Handler implements the HTTP layer for member profiles.
type Handler struct {
	profileService *Service
}

// NewHandler constructs a profile [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{profileService: service}
}

// Routes returns a [chi.Router] with the self-service profile endpoints.
// Mounted behind RequireAuth.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getOwn)
	router.Patch("/", handler.updateOwn)

	return router
}

// AdminRoutes returns the member administration endpoints, mounted under the
// admin route group.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listMembers)

	// Role management: the superadmin rule is enforced in the service
	// against the stored role, the route gate is only a first filter.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Put("/{id}/role", handler.changeRole)
		r.Get("/{id}/role-history", handler.roleHistory)
	})

	return router
}

// # Self-Service Endpoints

/*
GET /api/v1/me/profile.

Response:
  - 200: Profile: Full member profile
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getOwn(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.profileService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

// updateOwnRequest defines the expected JSON payload for profile updates.
type updateOwnRequest struct {
	DisplayName *string `json:"display_name"`
	Callsign    *string `json:"callsign"`
	AvatarURL   *string `json:"avatar_url"`
	Bio         *string `json:"bio"`
}

/*
PATCH /api/v1/me/profile.

Description: Applies partial updates to the caller's display fields. Role
and status cannot be set here.

Request:
  - body: updateOwnRequest (Partial JSON)

Response:
  - 200: Profile: The updated profile
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) updateOwn(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateOwnRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if input.DisplayName != nil {
		v.MinLen(FieldDisplayName, *input.DisplayName, 2).MaxLen(FieldDisplayName, *input.DisplayName, 50)
	}
	if input.Callsign != nil {
		v.MaxLen(FieldCallsign, *input.Callsign, 30)
	}
	if input.AvatarURL != nil && *input.AvatarURL != "" {
		v.URL(FieldAvatarURL, *input.AvatarURL)
	}
	if input.Bio != nil {
		v.MaxLen(FieldBio, *input.Bio, 500)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.profileService.UpdateOwn(request.Context(), userID, UpdateDisplayInput{
		DisplayName: input.DisplayName,
		Callsign:    input.Callsign,
		AvatarURL:   input.AvatarURL,
		Bio:         input.Bio,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

// # Administration Endpoints

/*
GET /api/v1/admin/members.

Description: Paginated member list with role/status/query filters.

Request:
  - role, status, q: string (query, optional)
  - page, limit: int (query)

Response:
  - 200: Paginated []Profile
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Caller below admin
*/
func (handler *Handler) listMembers(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	filter := ListFilter{
		Role:   request.URL.Query().Get("role"),
		Status: request.URL.Query().Get("status"),
		Query:  request.URL.Query().Get("q"),
	}

	members, total, err := handler.profileService.ListMembers(
		request.Context(), filter, page.Limit, page.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, members, pagination.NewMeta(page.Page, page.Limit, total))
}

// changeRoleRequest carries the new role assignment.
type changeRoleRequest struct {
	Role string `json:"role"`
}

/*
PUT /api/v1/admin/members/{id}/role.

Description: Assigns a new role. The service enforces the superadmin rule
against the stored role and refuses self-demotion.

Request:
  - id: string (UUID)
  - body: changeRoleRequest

Response:
  - 200: Profile: Updated member
  - 400: Validation: Unknown role value
  - 403: ErrForbidden: Caller is not a superadmin, or self-demotion
  - 404: ErrNotFound: No such member
*/
func (handler *Handler) changeRole(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	targetID := requestutil.Param(request, "id")

	var input changeRoleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.profileService.ChangeRole(request.Context(), actorID, targetID, input.Role)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
GET /api/v1/admin/members/{id}/role-history.

Response:
  - 200: []RoleChange: Role assignments, newest first
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Caller below admin
*/
func (handler *Handler) roleHistory(writer http.ResponseWriter, request *http.Request) {
	targetID := requestutil.Param(request, "id")

	history, err := handler.profileService.RoleHistory(request.Context(), targetID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, history)
}
