// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ravenstrike/rsf-api/internal/platform/sec"
)

/*
TestParseRole_Normalization verifies case-insensitive, whitespace-tolerant
parsing of stored role strings.
*/
func TestParseRole_Normalization(t *testing.T) {
	testCases := []struct {
		input    string
		expected sec.Role
	}{
		{"admin", sec.RoleAdmin},
		{"ADMIN", sec.RoleAdmin},
		{"  SuperAdmin  ", sec.RoleSuperadmin},
		{"editor", sec.RoleEditor},
		{"user", sec.RoleUser},
		{"", sec.Role("")},
		{"moderator", sec.Role("moderator")},
	}

	for _, testCase := range testCases {
		t.Run(testCase.input, func(t *testing.T) {
			assert.Equal(t, testCase.expected, sec.ParseRole(testCase.input))
		})
	}
}

/*
TestRole_Valid verifies that only the four known roles are valid; unknown
strings degrade to an unranked role.
*/
func TestRole_Valid(t *testing.T) {
	assert.True(t, sec.RoleSuperadmin.Valid())
	assert.True(t, sec.RoleAdmin.Valid())
	assert.True(t, sec.RoleEditor.Valid())
	assert.True(t, sec.RoleUser.Valid())

	assert.False(t, sec.Role("").Valid())
	assert.False(t, sec.Role("moderator").Valid())
	assert.False(t, sec.Role("root").Valid())
}

/*
TestRole_AtLeast verifies the total order user < editor < admin < superadmin
and that unknown roles fail every privilege check.
*/
func TestRole_AtLeast(t *testing.T) {
	ordered := []sec.Role{sec.RoleUser, sec.RoleEditor, sec.RoleAdmin, sec.RoleSuperadmin}

	for i, lower := range ordered {
		for j, higher := range ordered {
			got := lower.AtLeast(higher)
			assert.Equal(t, i >= j, got, "%s.AtLeast(%s)", lower, higher)
		}
	}

	unknown := sec.ParseRole("moderator")
	for _, role := range ordered {
		assert.False(t, unknown.AtLeast(role), "unknown role must not reach %s", role)
	}

	// Everyone outranks an unranked role, including another unranked role.
	assert.True(t, sec.RoleUser.AtLeast(unknown))
	assert.True(t, unknown.AtLeast(sec.Role("")))
}
