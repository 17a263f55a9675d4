// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package gallery

import "context"

// Store defines the data access contract for gallery items.
type Store interface {

	/*
		Create persists a new gallery item.
	*/
	Create(context context.Context, item *Item) error

	/*
		FindByID returns a non-deleted gallery item.
	*/
	FindByID(context context.Context, id string) (*Item, error)

	/*
		List returns a page of non-deleted items ordered by sort order.
	*/
	List(context context.Context, limit, offset int) ([]*Item, int, error)

	/*
		SoftDelete marks the item as deleted without removing the row or the
		underlying object.
	*/
	SoftDelete(context context.Context, id string) error
}
