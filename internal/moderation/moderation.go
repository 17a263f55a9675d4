// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

/*
Package moderation implements the privileged user-moderation operations:
ban, unban, and the superadmin-only user detail lookup.

# Architecture

The package mutates two independently-failable stores: the account store
(authentication subsystem, owns the banneduntil marker) and the profile store
(application record, owns the status column). There is no transaction
spanning the two — both writes are idempotent and executed sequentially, and
a failure names the step that broke so the operator can simply retry the
whole operation until the stores converge.

# Invariant

After any successful ban or unban:

	account suspended  ⇔  profile.status == "suspended"

A partial failure can leave the composite state inconsistent; the system
performs no automatic reconciliation, it only reports which write failed.
*/
package moderation

import (
	"time"

	"github.com/ravenstrike/rsf-api/internal/platform/sec"
)

// # Domain Entities

// Account is the moderation view of an authentication record.
// Mutated only through [AccountStore].
type Account struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	BannedUntil  *time.Time `json:"banned_until,omitempty"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Suspended reports whether the account's suspension marker is active.
func (a *Account) Suspended() bool {
	return a.BannedUntil != nil && a.BannedUntil.After(time.Now())
}

// Profile is the moderation view of the application profile record.
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

// Profile status values. The composite (account, profile) state machine has
// exactly two valid states: {active, active} and {suspended, suspended}.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// # Activity Log

// Activity actions recorded by this package.
const (
	ActionBan        = "user.ban"
	ActionUnban      = "user.unban"
	ActionRoleChange = "user.role_change"
)

// ActivityEntry is one append-only record of a privileged action.
type ActivityEntry struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityFilter holds the parameters for a paginated activity log search.
type ActivityFilter struct {
	Action  string // exact action match, e.g. "user.ban"
	ActorID string // restrict to one actor
}

// # Field Identifiers

// Global field names for validation in the moderation domain.
const (
	FieldUserID = "user_id"
	FieldReason = "reason"
)
