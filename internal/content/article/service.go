// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package article

import (
	"context"
	"fmt"
	"time"

	"github.com/ravenstrike/rsf-api/pkg/slug"
	"github.com/ravenstrike/rsf-api/pkg/uuid"
)

// Service implements the article use cases.
type Service struct {
	store Store
}

// NewService constructs an article [Service].
func NewService(store Store) *Service {
	return &Service{store: store}
}

// # Public Reads

// ListPublished returns a page of published articles, newest first.
func (service *Service) ListPublished(context context.Context, limit, offset int) ([]*Article, int, error) {
	return service.store.ListPublished(context, limit, offset)
}

// GetBySlug returns one published article.
func (service *Service) GetBySlug(context context.Context, articleSlug string) (*Article, error) {
	return service.store.FindPublishedBySlug(context, articleSlug)
}

// # Editorial Operations

// CreateInput holds the data for a new article draft.
type CreateInput struct {
	Title    string
	Excerpt  string
	Body     string
	CoverURL string
	AuthorID string
	Publish  bool
}

/*
Create persists a new article, generating its slug from the title.

Description: Slug collisions surface as a 409 via the store's unique
constraint; the caller retitles rather than the system suffixing.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Article: Created entity
  - error: Conflict or persistence failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Article, error) {
	article := &Article{
		ID:          uuid.New(),
		Slug:        slug.From(input.Title),
		Title:       input.Title,
		Excerpt:     input.Excerpt,
		Body:        input.Body,
		CoverURL:    input.CoverURL,
		AuthorID:    input.AuthorID,
		IsPublished: input.Publish,
	}
	if input.Publish {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := service.store.Create(context, article); err != nil {
		return nil, err
	}

	return article, nil
}

// UpdateInput holds the mutable article fields. Nil means unchanged.
type UpdateInput struct {
	Title    *string
	Excerpt  *string
	Body     *string
	CoverURL *string
	Publish  *bool
}

/*
Update applies partial updates, including the publish toggle.

Description: A title change regenerates the slug. First-time publishing
stamps PublishedAt; unpublishing keeps the stamp so republishing preserves
the original date.

Parameters:
  - context: context.Context
  - id: string
  - input: UpdateInput

Returns:
  - *Article: Updated entity
  - error: NotFound, Conflict, or persistence failures
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Article, error) {
	article, err := service.store.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		article.Title = *input.Title
		article.Slug = slug.From(*input.Title)
	}
	if input.Excerpt != nil {
		article.Excerpt = *input.Excerpt
	}
	if input.Body != nil {
		article.Body = *input.Body
	}
	if input.CoverURL != nil {
		article.CoverURL = *input.CoverURL
	}
	if input.Publish != nil {
		article.IsPublished = *input.Publish
		if *input.Publish && article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}
	}

	if err := service.store.Update(context, article); err != nil {
		return nil, fmt.Errorf("article_service_update_failed: %w", err)
	}

	return article, nil
}

// ListAll returns every non-deleted article for the admin view.
func (service *Service) ListAll(context context.Context, limit, offset int) ([]*Article, int, error) {
	return service.store.ListAll(context, limit, offset)
}

// Delete soft-deletes an article.
func (service *Service) Delete(context context.Context, id string) error {
	return service.store.SoftDelete(context, id)
}
