// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package article

import "context"

// Store defines the data access contract for articles.
type Store interface {

	/*
		Create persists a new article.

		Parameters:
		  - context: context.Context
		  - article: *Article

		Returns:
		  - error: Persistence failures (Conflict on duplicate slug)
	*/
	Create(context context.Context, article *Article) error

	/*
		FindByID returns any non-deleted article, published or not.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Article, error
	*/
	FindByID(context context.Context, id string) (*Article, error)

	/*
		FindPublishedBySlug returns a published article by slug.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Article, error
	*/
	FindPublishedBySlug(context context.Context, slug string) (*Article, error)

	/*
		ListPublished returns a page of published articles, newest first.

		Parameters:
		  - context: context.Context
		  - limit, offset: int

		Returns:
		  - []*Article, int, error
	*/
	ListPublished(context context.Context, limit, offset int) ([]*Article, int, error)

	/*
		ListAll returns every non-deleted article for the admin view.

		Parameters:
		  - context: context.Context
		  - limit, offset: int

		Returns:
		  - []*Article, int, error
	*/
	ListAll(context context.Context, limit, offset int) ([]*Article, int, error)

	/*
		Update persists changes to an article's mutable fields.

		Parameters:
		  - context: context.Context
		  - article: *Article

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, article *Article) error

	/*
		SoftDelete marks the article as deleted without removing the row.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	SoftDelete(context context.Context, id string) error
}
