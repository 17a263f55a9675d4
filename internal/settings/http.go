// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ravenstrike/rsf-api/internal/platform/middleware"
	requestutil "github.com/ravenstrike/rsf-api/internal/platform/request"
	"github.com/ravenstrike/rsf-api/internal/platform/respond"
	"github.com/ravenstrike/rsf-api/internal/platform/sec"
	"github.com/ravenstrike/rsf-api/internal/platform/validate"
)

// Handler implements the HTTP layer for branding settings.
type Handler struct {
	settingsService *Service
}

// NewHandler constructs a settings [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{settingsService: service}
}

// Routes returns the public settings endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.all)

	return router
}

// AdminRoutes returns the admin-only write endpoint.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Put("/{key}", handler.set)
	})

	return router
}

/*
GET /api/v1/settings.

Response:
  - 200: map[string]string: Every branding key, stored values over defaults
*/
func (handler *Handler) all(writer http.ResponseWriter, request *http.Request) {
	values, err := handler.settingsService.All(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, values)
}

type setSettingRequest struct {
	Value string `json:"value"`
}

/*
PUT /api/v1/admin/settings/{key}.

Response:
  - 200: Setting: Written value
  - 400: Validation failure: Unknown key or oversized value
*/
func (handler *Handler) set(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	key := requestutil.Param(request, "key")

	var input setSettingRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.MaxLen(FieldValue, input.Value, 500)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	setting, err := handler.settingsService.Set(request.Context(), actorID, key, input.Value)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, setting)
}
