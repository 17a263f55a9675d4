// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package team

import "context"

// Store defines the data access contract for roster members.
type Store interface {

	/*
		Create persists a new roster member.

		Returns:
		  - error: Conflict on duplicate callsign, or persistence failures
	*/
	Create(context context.Context, member *Member) error

	/*
		FindByID returns a roster member, active or not.
	*/
	FindByID(context context.Context, id string) (*Member, error)

	/*
		ListActive returns active members ordered by sort order.
	*/
	ListActive(context context.Context) ([]*Member, error)

	/*
		ListAll returns every member, active and retired, for the admin view.
	*/
	ListAll(context context.Context, limit, offset int) ([]*Member, int, error)

	/*
		Update persists changes to a member's mutable fields.
	*/
	Update(context context.Context, member *Member) error

	/*
		Delete removes a roster member.
	*/
	Delete(context context.Context, id string) error
}
