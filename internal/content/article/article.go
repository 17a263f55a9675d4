// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

/*
Package article implements the team news section: editor-authored posts with
a publish toggle, addressed publicly by slug.

Unpublished drafts are visible only through the admin routes; the public
listing and slug lookup see published articles exclusively.
*/
package article

import "time"

// Article is one news post.
type Article struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Body        string     `json:"body"`
	CoverURL    string     `json:"cover_url,omitempty"`
	IsPublished bool       `json:"is_published"`
	AuthorID    string     `json:"author_id"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Field identifiers for validation.
const (
	FieldTitle    = "title"
	FieldBody     = "body"
	FieldExcerpt  = "excerpt"
	FieldCoverURL = "cover_url"
)
