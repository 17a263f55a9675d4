// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package sec

import "strings"

// # User Roles

// Role represents the authorization level granted to an account.
//
// The four roles form a single total order used by every authorization
// decision in the system:
//
//	user < editor < admin < superadmin
type Role string

const (
	// Unrestricted system access, including user detail inspection
	RoleSuperadmin Role = "superadmin"

	// Can moderate users and manage every content area
	RoleAdmin Role = "admin"

	// Can create and edit site content (articles, games, gallery, roster)
	RoleEditor Role = "editor"

	// Default role for standard registered members
	RoleUser Role = "user"
)

// # Role Hierarchy

// ParseRole normalizes a stored role string into a [Role].
//
// Comparison is case-insensitive. Unknown or empty values parse to an
// unranked role that fails every privilege check, so a corrupted or missing
// role column degrades to "denied" rather than "allowed".
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// Valid reports whether the role is one of the four known roles.
func (r Role) Valid() bool {
	return r.rank() > 0
}

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.rank() >= target.rank()
}

// rank maps a role to a numeric hierarchy level for comparison logic.
func (r Role) rank() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleSuperadmin:
		return 40
	case RoleAdmin:
		return 30
	case RoleEditor:
		return 20
	case RoleUser:
		return 10
	default:
		return 0
	}
}
