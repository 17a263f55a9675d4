// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package moderation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/ravenstrike/rsf-api/internal/platform/request"
	"github.com/ravenstrike/rsf-api/internal/platform/respond"
	"github.com/ravenstrike/rsf-api/internal/platform/validate"
	"github.com/ravenstrike/rsf-api/pkg/pagination"
)

// Handler implements the HTTP layer for the admin moderation endpoints.
//
// Routes are mounted under /api/v1/admin behind RequireAuth; fine-grained
// role decisions live in the service's guard, which re-reads roles from the
// profile store rather than trusting the token.
type Handler struct {
	moderationService *Service
}

// NewHandler constructs a moderation [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{moderationService: service}
}

// Routes returns a [chi.Router] configured with the moderation endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// User Moderation
	router.Post("/users/{id}/ban", handler.banUser)
	router.Post("/users/{id}/unban", handler.unbanUser)
	router.Get("/users/{id}", handler.getUserDetails)

	// Audit Trail
	router.Get("/activity", handler.listActivity)

	return router
}

// # User Moderation Endpoints

// banUserRequest carries the optional moderator-supplied context for a ban.
type banUserRequest struct {
	Reason string `json:"reason"`
}

/*
POST /api/v1/admin/users/{id}/ban.

Description: Suspends the target user in both the account and profile stores.

Request:
  - id: string (UUID)
  - body: banUserRequest (optional reason)

Response:
  - 200: {message, user_id, reason}: Both writes committed
  - 400: Validation: Missing target id
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Guard rule named in the message
  - 500: DownstreamError: Message names the write that failed
*/
func (handler *Handler) banUser(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	targetID := requestutil.Param(request, "id")

	// Body is optional; an empty or absent body means no reason given.
	var input banUserRequest
	if request.Body != nil && request.ContentLength != 0 {
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	v := &validate.Validator{}
	v.MaxLen(FieldReason, input.Reason, 500)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.moderationService.Ban(request.Context(), actorID, targetID, input.Reason); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		"message": "User banned successfully",
		"user_id": targetID,
		"reason":  input.Reason,
	})
}

/*
POST /api/v1/admin/users/{id}/unban.

Description: Lifts a suspension in both stores.

Request:
  - id: string (UUID)

Response:
  - 200: {message, user_id}: Both writes committed
  - 400: Validation: Missing target id
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Caller is not admin or superadmin
  - 500: DownstreamError: Message names the write that failed
*/
func (handler *Handler) unbanUser(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	targetID := requestutil.Param(request, "id")

	if err := handler.moderationService.Unban(request.Context(), actorID, targetID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		"message": "User unbanned successfully",
		"user_id": targetID,
	})
}

/*
GET /api/v1/admin/users/{id}.

Description: Returns the merged account-plus-profile record for a user.
Superadmin only.

Request:
  - id: string (UUID)

Response:
  - 200: map: Merged record, account fields winning on collision
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Caller is not a superadmin
  - 404: ErrNotFound: No such account or profile
*/
func (handler *Handler) getUserDetails(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	targetID := requestutil.Param(request, "id")

	details, err := handler.moderationService.UserDetails(request.Context(), actorID, targetID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, details)
}

// # Audit Trail Endpoints

/*
GET /api/v1/admin/activity.

Description: Paginated view of the privileged-action log, newest first.

Request:
  - action: string (query, optional exact match e.g. "user.ban")
  - actor_id: string (query, optional)
  - page, limit: int (query)

Response:
  - 200: Paginated []ActivityEntry
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) listActivity(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	filter := ActivityFilter{
		Action:  request.URL.Query().Get("action"),
		ActorID: request.URL.Query().Get("actor_id"),
	}

	entries, total, err := handler.moderationService.ListActivity(
		request.Context(), filter, page.Limit, page.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(page.Page, page.Limit, total))
}
