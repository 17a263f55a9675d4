// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package profile

import "context"

// # Profile Data Access

// Repository defines the data access contract for member profiles.
//
// It deliberately includes the CreateDefault/GetRole pair so the Postgres
// implementation also satisfies the auth package's narrower bootstrap
// contract — one implementation, two consumers.
type Repository interface {

	/*
		Find returns the profile for the given account ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Profile: Hydrated entity
		  - error: Retrieval failures
	*/
	Find(context context.Context, id string) (*Profile, error)

	/*
		CreateDefault inserts the initial profile row for a new account with
		role "user" and status "active".

		Parameters:
		  - context: context.Context
		  - accountID, displayName, callsign: string

		Returns:
		  - error: Persistence failures
	*/
	CreateDefault(context context.Context, accountID, displayName, callsign string) error

	/*
		GetRole returns the stored role string for the account.

		Parameters:
		  - context: context.Context
		  - accountID: string

		Returns:
		  - string: Raw role column value
		  - error: Retrieval failures
	*/
	GetRole(context context.Context, accountID string) (string, error)

	/*
		UpdateDisplay persists the member-editable display fields.

		Parameters:
		  - context: context.Context
		  - profile: *Profile (ID plus the new display values)

		Returns:
		  - error: Persistence failures
	*/
	UpdateDisplay(context context.Context, profile *Profile) error

	/*
		UpdateRole replaces the role column.

		Parameters:
		  - context: context.Context
		  - accountID: string
		  - role: string

		Returns:
		  - error: Persistence failures
	*/
	UpdateRole(context context.Context, accountID, role string) error

	/*
		List returns a filtered page of profiles with the total count.

		Parameters:
		  - context: context.Context
		  - filter: ListFilter
		  - limit, offset: int

		Returns:
		  - []*Profile, int, error
	*/
	List(context context.Context, filter ListFilter, limit, offset int) ([]*Profile, int, error)
}

// # Role History Access

// RoleChangeRepository persists the append-only role assignment history.
type RoleChangeRepository interface {

	/*
		Append persists one role change record.

		Parameters:
		  - context: context.Context
		  - change: *RoleChange

		Returns:
		  - error: Persistence failures
	*/
	Append(context context.Context, change *RoleChange) error

	/*
		ListForUser returns the role history of one account, newest first.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []*RoleChange, error
	*/
	ListForUser(context context.Context, userID string) ([]*RoleChange, error)
}
