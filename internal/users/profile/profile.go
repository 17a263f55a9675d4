// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

/*
Package profile manages the application-facing member records: display data,
team callsigns, the role column every authorization decision reads, and the
append-only history of role assignments.

# Ownership

The users.profile row is created by the auth package at registration and
mutated here (and by the moderation package, which flips the status column).
Role changes go through exactly one path — the superadmin role-change
operation — so the rolechange history is complete by construction.
*/
package profile

import (
	"time"

	"github.com/ravenstrike/rsf-api/internal/platform/sec"
)

// # Domain Entities

// Profile is the public member record, one-to-one with an account.
type Profile struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Callsign    string    `json:"callsign"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Role        sec.Role  `json:"role"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoleChange is one append-only record of a role assignment.
type RoleChange struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ChangedBy string    `json:"changed_by"`
	OldRole   string    `json:"old_role"`
	NewRole   string    `json:"new_role"`
	CreatedAt time.Time `json:"created_at"`
}

// ListFilter holds the parameters for the admin member list.
type ListFilter struct {
	Role   string // exact role match
	Status string // "active" or "suspended"
	Query  string // substring match on username/display name/callsign
}

// # Field Identifiers

const (
	FieldDisplayName = "display_name"
	FieldCallsign    = "callsign"
	FieldAvatarURL   = "avatar_url"
	FieldBio         = "bio"
	FieldRole        = "role"
)
