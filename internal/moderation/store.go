// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package moderation

import (
	"context"
	"time"
)

// # Account Data Access

// AccountStore is the moderation contract against the authentication
// subsystem's account records. It is one of the two independently-failable
// stores mutated by ban/unban.
type AccountStore interface {

	/*
		Find returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Account: Hydrated entity
		  - error: Retrieval failures (NotFound included)
	*/
	Find(context context.Context, id string) (*Account, error)

	/*
		SetSuspension writes the account's suspension marker.
		A nil until clears the marker (unban); a non-nil value suspends until
		that instant. Writing the same value twice is a no-op, which keeps
		the operation idempotent under retry.

		Parameters:
		  - context: context.Context
		  - id: string
		  - until: *time.Time

		Returns:
		  - error: Persistence failures
	*/
	SetSuspension(context context.Context, id string, until *time.Time) error
}

// # Profile Data Access

// ProfileStore is the moderation contract against the application profile
// records. The second of the two independently-failable stores.
type ProfileStore interface {

	/*
		Find returns the full profile row for the given account ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Profile: Hydrated entity
		  - error: Retrieval failures (NotFound included)
	*/
	Find(context context.Context, id string) (*Profile, error)

	/*
		SetStatus writes the profile's status column
		(StatusActive or StatusSuspended). Idempotent.

		Parameters:
		  - context: context.Context
		  - id: string
		  - status: string

		Returns:
		  - error: Persistence failures
	*/
	SetStatus(context context.Context, id string, status string) error
}

// # Activity Log Access

// ActivityStore persists and queries the append-only privileged-action log.
type ActivityStore interface {

	/*
		Append persists one activity entry.

		Parameters:
		  - context: context.Context
		  - entry: *ActivityEntry

		Returns:
		  - error: Persistence failures
	*/
	Append(context context.Context, entry *ActivityEntry) error

	/*
		List returns a filtered page of activity entries, newest first,
		with the total count for pagination.

		Parameters:
		  - context: context.Context
		  - filter: ActivityFilter
		  - limit, offset: int

		Returns:
		  - []*ActivityEntry, int, error
	*/
	List(context context.Context, filter ActivityFilter, limit, offset int) ([]*ActivityEntry, int, error)
}
