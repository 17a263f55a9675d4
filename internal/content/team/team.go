// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

// Package team implements the public roster: the squad members shown on the
// site with callsign, role label and avatar.
package team

import "time"

// Member is one roster entry. AvatarURL is derived per request from AvatarKey.
type Member struct {
	ID        string    `json:"id"`
	Callsign  string    `json:"callsign"`
	FullName  string    `json:"full_name,omitempty"`
	RoleLabel string    `json:"role_label"`
	Bio       string    `json:"bio,omitempty"`
	AvatarKey string    `json:"-"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Field identifiers for validation.
const (
	FieldCallsign  = "callsign"
	FieldFullName  = "full_name"
	FieldRoleLabel = "role_label"
	FieldBio       = "bio"
	FieldAvatarKey = "avatar_key"
	FieldSortOrder = "sort_order"
)
