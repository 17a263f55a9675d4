// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package moderation

import (
	"github.com/ravenstrike/rsf-api/internal/platform/apperr"
	"github.com/ravenstrike/rsf-api/internal/platform/sec"
)

// # Authorization Guard
//
// One pure rule set shared by every privileged user-moderation operation.
// The functions have no side effects and compare only the two role values
// handed to them; callers are responsible for loading both roles from the
// profile store (never from a token claim).
//
// Role strings are normalized via [sec.ParseRole] before reaching this file,
// so comparison is case-insensitive and an unknown or missing role ranks
// below every real role — it can never pass a privilege check.

// CanBan decides whether requester may suspend target.
//
// Rules, applied in order:
//  1. Only admins and superadmins may ban at all.
//  2. A superadmin can never be banned, by anyone.
//  3. An admin cannot ban a peer admin; only a superadmin may.
func CanBan(requester, target sec.Role) error {
	if !requester.AtLeast(sec.RoleAdmin) {
		return apperr.Forbidden("Only admins can ban users")
	}

	if target == sec.RoleSuperadmin {
		return apperr.Forbidden("Cannot ban a superadmin")
	}

	if requester == sec.RoleAdmin && target == sec.RoleAdmin {
		return apperr.Forbidden("An admin cannot ban another admin")
	}

	return nil
}

// CanUnban decides whether requester may lift a suspension.
//
// Any admin or superadmin may unban; there is no peer restriction because
// restoring access is strictly less dangerous than revoking it.
func CanUnban(requester sec.Role) error {
	if !requester.AtLeast(sec.RoleAdmin) {
		return apperr.Forbidden("Only admins can unban users")
	}
	return nil
}

// CanViewDetails decides whether requester may read the merged
// account-plus-profile record of another user.
//
// Strictest of the three checks: the merged record exposes authentication
// metadata (email, sign-in times), so it is reserved for superadmins.
func CanViewDetails(requester sec.Role) error {
	if requester != sec.RoleSuperadmin {
		return apperr.Forbidden("Only a superadmin can view user details")
	}
	return nil
}
