// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package moderation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenstrike/rsf-api/internal/moderation"
	"github.com/ravenstrike/rsf-api/internal/platform/apperr"
	"github.com/ravenstrike/rsf-api/internal/platform/sec"
)

/*
TestCanBan_RolePairMatrix exercises every requester/target role pair,
including the unranked zero role for users without a profile.
*/
func TestCanBan_RolePairMatrix(t *testing.T) {
	roles := []sec.Role{sec.RoleSuperadmin, sec.RoleAdmin, sec.RoleEditor, sec.RoleUser, ""}

	allowed := func(requester, target sec.Role) bool {
		switch requester {
		case sec.RoleSuperadmin:
			return target != sec.RoleSuperadmin
		case sec.RoleAdmin:
			return target != sec.RoleSuperadmin && target != sec.RoleAdmin
		default:
			return false
		}
	}

	for _, requester := range roles {
		for _, target := range roles {
			name := string(requester) + "_bans_" + string(target)
			if requester == "" {
				name = "norole_bans_" + string(target)
			}
			if target == "" {
				name = string(requester) + "_bans_norole"
			}

			t.Run(name, func(t *testing.T) {
				err := moderation.CanBan(requester, target)

				if allowed(requester, target) {
					assert.NoError(t, err)
					return
				}

				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, 403, ae.HTTPStatus)
			})
		}
	}
}

/*
TestCanBan_RuleMessages verifies each denial names the rule that fired.
*/
func TestCanBan_RuleMessages(t *testing.T) {
	tests := []struct {
		name      string
		requester sec.Role
		target    sec.Role
		message   string
	}{
		{"editor_cannot_ban", sec.RoleEditor, sec.RoleUser, "Only admins can ban users"},
		{"user_cannot_ban", sec.RoleUser, sec.RoleUser, "Only admins can ban users"},
		{"superadmin_is_untouchable", sec.RoleSuperadmin, sec.RoleSuperadmin, "Cannot ban a superadmin"},
		{"admin_cannot_touch_superadmin", sec.RoleAdmin, sec.RoleSuperadmin, "Cannot ban a superadmin"},
		{"admin_peer_protection", sec.RoleAdmin, sec.RoleAdmin, "An admin cannot ban another admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := moderation.CanBan(tt.requester, tt.target)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.message, ae.Message)
		})
	}
}

/*
TestCanBan_CaseInsensitiveRoles verifies roles normalized through ParseRole
pass the guard regardless of the stored casing.
*/
func TestCanBan_CaseInsensitiveRoles(t *testing.T) {
	requester := sec.ParseRole("  ADMIN ")
	target := sec.ParseRole("User")

	assert.NoError(t, moderation.CanBan(requester, target))

	// Unknown strings rank below every real role and can never ban.
	unknown := sec.ParseRole("moderator")
	err := moderation.CanBan(unknown, target)
	require.Error(t, err)
}

/*
TestCanUnban covers the unban privilege check: admin and above, no peer rule.
*/
func TestCanUnban(t *testing.T) {
	tests := []struct {
		name      string
		requester sec.Role
		allowed   bool
	}{
		{"superadmin", sec.RoleSuperadmin, true},
		{"admin", sec.RoleAdmin, true},
		{"editor", sec.RoleEditor, false},
		{"user", sec.RoleUser, false},
		{"norole", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := moderation.CanUnban(tt.requester)

			if tt.allowed {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "Only admins can unban users", ae.Message)
		})
	}
}

/*
TestCanViewDetails covers the superadmin-only detail lookup check.
*/
func TestCanViewDetails(t *testing.T) {
	assert.NoError(t, moderation.CanViewDetails(sec.RoleSuperadmin))

	for _, requester := range []sec.Role{sec.RoleAdmin, sec.RoleEditor, sec.RoleUser, ""} {
		err := moderation.CanViewDetails(requester)
		require.Error(t, err, "role %q must be denied", requester)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "Only a superadmin can view user details", ae.Message)
		assert.Equal(t, 403, ae.HTTPStatus)
	}
}
