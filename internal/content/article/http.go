// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package article

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

// Handler implements the HTTP layer for articles.
type Handler struct {
	articleService *Service
}

// NewHandler constructs an article [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{articleService: service}
}

// Routes returns the public article endpoints.
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
GET /api/v1/articles.

Response:
  - 200: Paginated []Article: Published articles, newest first
*/
func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	articles, total, err := handler.articleService.ListPublished(request.Context(), page.Limit, page.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, articles, pagination.NewMeta(page.Page, page.Limit, total))
}

/*
GET /api/v1/articles/{slug}.

Response:
  - 200: Article: Published article
  - 404: ErrNotFound: Unknown slug or unpublished draft
*/
func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	articleSlug := requestutil.Param(request, "slug")

	found, err := handler.articleService.GetBySlug(request.Context(), articleSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

// # Editorial Endpoints

type createArticleRequest struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Body     string `json:"body"`
	CoverURL string `json:"cover_url"`
	Publish  bool   `json:"publish"`
}

/*
POST /api/v1/admin/articles.

Request:
  - body: createArticleRequest

Response:
  - 201: Article: Created draft or published post
  - 400: Validation failure
  - 403: ErrForbidden: Caller below editor
  - 409: ErrConflict: Slug already exists
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createArticleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		Required(FieldBody, input.Body).
		MaxLen(FieldExcerpt, input.Excerpt, 500)
	if input.CoverURL != "" {
		v.URL(FieldCoverURL, input.CoverURL)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.articleService.Create(request.Context(), CreateInput{
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Body:     input.Body,
		CoverURL: input.CoverURL,
		AuthorID: authorID,
		Publish:  input.Publish,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

type updateArticleRequest struct {
	Title    *string `json:"title"`
	Excerpt  *string `json:"excerpt"`
	Body     *string `json:"body"`
	CoverURL *string `json:"cover_url"`
	Publish  *bool   `json:"publish"`
}

/*
PATCH /api/v1/admin/articles/{id}.

Request:
  - id: string (UUID)
  - body: updateArticleRequest (Partial JSON; publish toggles visibility)

Response:
  - 200: Article: Updated entity
  - 400: Validation failure
  - 404: ErrNotFound: Unknown article
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input updateArticleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if input.Title != nil {
		v.Required(FieldTitle, *input.Title).MaxLen(FieldTitle, *input.Title, 200)
	}
	if input.Excerpt != nil {
		v.MaxLen(FieldExcerpt, *input.Excerpt, 500)
	}
	if input.CoverURL != nil && *input.CoverURL != "" {
		v.URL(FieldCoverURL, *input.CoverURL)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.articleService.Update(request.Context(), id, UpdateInput{
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Body:     input.Body,
		CoverURL: input.CoverURL,
		Publish:  input.Publish,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
GET /api/v1/admin/articles.

Response:
  - 200: Paginated []Article: Drafts and published posts
*/
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	articles, total, err := handler.articleService.ListAll(request.Context(), page.Limit, page.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, articles, pagination.NewMeta(page.Page, page.Limit, total))
}

/*
DELETE /api/v1/admin/articles/{id}.

Response:
  - 204: No Content: Article soft-deleted
  - 403: ErrForbidden: Caller below admin
  - 404: ErrNotFound: Unknown article
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.articleService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
