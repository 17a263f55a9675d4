// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

// Package gallery implements the media gallery: photos and clips from games,
// stored in the S3-compatible bucket and served through presigned URLs.
package gallery

import "time"

// Item is one gallery entry. URL is derived per request and never persisted.
type Item struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	StorageKey string    `json:"-"`
	MediaType  string    `json:"media_type"`
	SortOrder  int       `json:"sort_order"`
	URL        string    `json:"url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Media types accepted by the gallery.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Field identifiers for validation.
const (
	FieldTitle       = "title"
	FieldStorageKey  = "storage_key"
	FieldMediaType   = "media_type"
	FieldContentType = "content_type"
	FieldSortOrder   = "sort_order"
)
