// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package event

import "context"

// Store defines the data access contract for events.
type Store interface {

	/*
		Create persists a new event.

		Parameters:
		  - context: context.Context
		  - event: *Event

		Returns:
		  - error: Persistence failures (Conflict on duplicate slug)
	*/
	Create(context context.Context, event *Event) error

	/*
		FindByID returns any non-deleted event, published or not.
	*/
	FindByID(context context.Context, id string) (*Event, error)

	/*
		FindPublishedBySlug returns a published event by slug.
	*/
	FindPublishedBySlug(context context.Context, slug string) (*Event, error)

	/*
		ListPublished returns a page of published events.

		Parameters:
		  - context: context.Context
		  - upcoming: true for future events ascending, false for past descending
		  - limit, offset: int

		Returns:
		  - []*Event, int, error
	*/
	ListPublished(context context.Context, upcoming bool, limit, offset int) ([]*Event, int, error)

	/*
		ListAll returns every non-deleted event for the admin view.
	*/
	ListAll(context context.Context, limit, offset int) ([]*Event, int, error)

	/*
		Update persists changes to an event's mutable fields.
	*/
	Update(context context.Context, event *Event) error

	/*
		SoftDelete marks the event as deleted without removing the row.
	*/
	SoftDelete(context context.Context, id string) error
}
