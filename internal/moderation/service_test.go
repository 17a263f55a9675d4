// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package moderation_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenstrike/rsf-api/internal/moderation"
	"github.com/ravenstrike/rsf-api/internal/platform/apperr"
	"github.com/ravenstrike/rsf-api/internal/platform/constants"
	"github.com/ravenstrike/rsf-api/internal/platform/sec"
)

// # In-Memory Fakes

type fakeAccountStore struct {
	accounts     map[string]*moderation.Account
	failWrite    error
	writeCalls   int
	lastWrittenTo string
}

func (store *fakeAccountStore) Find(_ context.Context, id string) (*moderation.Account, error) {
	account, ok := store.accounts[id]
	if !ok {
		return nil, apperr.NotFound("Account")
	}
	return account, nil
}

func (store *fakeAccountStore) SetSuspension(_ context.Context, id string, until *time.Time) error {
	if store.failWrite != nil {
		return store.failWrite
	}
	account, ok := store.accounts[id]
	if !ok {
		return apperr.NotFound("Account")
	}
	account.BannedUntil = until
	store.writeCalls++
	store.lastWrittenTo = id
	return nil
}

type fakeProfileStore struct {
	profiles   map[string]*moderation.Profile
	failWrite  error
	writeCalls int
}

func (store *fakeProfileStore) Find(_ context.Context, id string) (*moderation.Profile, error) {
	profile, ok := store.profiles[id]
	if !ok {
		return nil, apperr.NotFound("Profile")
	}
	return profile, nil
}

func (store *fakeProfileStore) SetStatus(_ context.Context, id string, status string) error {
	if store.failWrite != nil {
		return store.failWrite
	}
	profile, ok := store.profiles[id]
	if !ok {
		return apperr.NotFound("Profile")
	}
	profile.Status = status
	store.writeCalls++
	return nil
}

type fakeActivityStore struct {
	entries []*moderation.ActivityEntry
}

func (store *fakeActivityStore) Append(_ context.Context, entry *moderation.ActivityEntry) error {
	store.entries = append(store.entries, entry)
	return nil
}

func (store *fakeActivityStore) List(_ context.Context, _ moderation.ActivityFilter, _, _ int) ([]*moderation.ActivityEntry, int, error) {
	return store.entries, len(store.entries), nil
}

// # Fixture

type fixture struct {
	accounts *fakeAccountStore
	profiles *fakeProfileStore
	activity *fakeActivityStore
	service  *moderation.Service
}

// newFixture seeds one account+profile pair per role, keyed by the role name.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	accounts := &fakeAccountStore{accounts: map[string]*moderation.Account{}}
	profiles := &fakeProfileStore{profiles: map[string]*moderation.Profile{}}
	activity := &fakeActivityStore{}

	created := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	for _, role := range []sec.Role{sec.RoleSuperadmin, sec.RoleAdmin, sec.RoleEditor, sec.RoleUser} {
		id := string(role)
		accounts.accounts[id] = &moderation.Account{
			ID:        id,
			Username:  id,
			Email:     id + "@ravenstrike.team",
			CreatedAt: created,
		}
		profiles.profiles[id] = &moderation.Profile{
			ID:          id,
			DisplayName: id,
			Role:        role,
			Status:      moderation.StatusActive,
			CreatedAt:   created,
			UpdatedAt:   created,
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{
		accounts: accounts,
		profiles: profiles,
		activity: activity,
		service:  moderation.NewService(accounts, profiles, activity, logger),
	}
}

// # Ban

/*
TestBan_WritesBothStores verifies the happy path touches both stores and
records the action in the activity log.
*/
func TestBan_WritesBothStores(t *testing.T) {
	f := newFixture(t)

	err := f.service.Ban(context.Background(), "admin", "user", "repeated spam")
	require.NoError(t, err)

	account := f.accounts.accounts["user"]
	require.NotNil(t, account.BannedUntil)
	assert.Equal(t, constants.SuspendedUntil, *account.BannedUntil)
	assert.True(t, account.Suspended())

	assert.Equal(t, moderation.StatusSuspended, f.profiles.profiles["user"].Status)

	require.Len(t, f.activity.entries, 1)
	assert.Equal(t, moderation.ActionBan, f.activity.entries[0].Action)
	assert.Equal(t, "user", f.activity.entries[0].TargetID)
	assert.Equal(t, "repeated spam", f.activity.entries[0].Detail)
}

/*
TestBan_Idempotent verifies banning an already-banned user succeeds and
leaves the exact same composite state.
*/
func TestBan_Idempotent(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.service.Ban(context.Background(), "admin", "user", ""))
	require.NoError(t, f.service.Ban(context.Background(), "admin", "user", ""))

	account := f.accounts.accounts["user"]
	require.NotNil(t, account.BannedUntil)
	assert.Equal(t, constants.SuspendedUntil, *account.BannedUntil)
	assert.Equal(t, moderation.StatusSuspended, f.profiles.profiles["user"].Status)
}

/*
TestBan_RolesReadFromStore verifies the guard sees the stored role, not
whatever the caller's token claims: an actor whose profile was demoted to
editor is refused even if they present an admin token upstream.
*/
func TestBan_RolesReadFromStore(t *testing.T) {
	f := newFixture(t)
	f.profiles.profiles["admin"].Role = sec.RoleEditor

	err := f.service.Ban(context.Background(), "admin", "user", "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 403, ae.HTTPStatus)
	assert.Equal(t, "Only admins can ban users", ae.Message)
	assert.Zero(t, f.accounts.writeCalls)
	assert.Zero(t, f.profiles.writeCalls)
}

/*
TestBan_MissingTargetID verifies a blank target id is rejected with a
validation error before any store is touched.
*/
func TestBan_MissingTargetID(t *testing.T) {
	f := newFixture(t)

	err := f.service.Ban(context.Background(), "admin", "   ", "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 400, ae.HTTPStatus)
	assert.Zero(t, f.accounts.writeCalls)
	assert.Zero(t, f.profiles.writeCalls)
	assert.Empty(t, f.activity.entries)
}

/*
TestBan_Unauthenticated verifies an empty actor id yields 401 with no writes.
*/
func TestBan_Unauthenticated(t *testing.T) {
	f := newFixture(t)

	err := f.service.Ban(context.Background(), "", "user", "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 401, ae.HTTPStatus)
	assert.Zero(t, f.accounts.writeCalls)
	assert.Zero(t, f.profiles.writeCalls)
}

/*
TestBan_ForbiddenPairsWriteNothing verifies every guard denial happens
before either store write.
*/
func TestBan_ForbiddenPairsWriteNothing(t *testing.T) {
	tests := []struct {
		name    string
		actor   string
		target  string
		message string
	}{
		{"editor_denied", "editor", "user", "Only admins can ban users"},
		{"user_denied", "user", "editor", "Only admins can ban users"},
		{"superadmin_target_protected", "admin", "superadmin", "Cannot ban a superadmin"},
		{"admin_peer_protected", "admin", "admin", "An admin cannot ban another admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			err := f.service.Ban(context.Background(), tt.actor, tt.target, "")
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, 403, ae.HTTPStatus)
			assert.Equal(t, tt.message, ae.Message)
			assert.Zero(t, f.accounts.writeCalls)
			assert.Zero(t, f.profiles.writeCalls)
			assert.Empty(t, f.activity.entries)
		})
	}
}

/*
TestBan_SuperadminBansAdmin verifies the one pair the peer rule does not
cover: a superadmin may ban an admin.
*/
func TestBan_SuperadminBansAdmin(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.service.Ban(context.Background(), "superadmin", "admin", ""))
	assert.Equal(t, moderation.StatusSuspended, f.profiles.profiles["admin"].Status)
}

/*
TestBan_AccountWriteFails verifies a first-step failure names the account
write and leaves the profile untouched.
*/
func TestBan_AccountWriteFails(t *testing.T) {
	f := newFixture(t)
	f.accounts.failWrite = errors.New("connection refused")

	err := f.service.Ban(context.Background(), "admin", "user", "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 500, ae.HTTPStatus)
	assert.Equal(t, "Account suspension write failed", ae.Message)

	assert.Equal(t, moderation.StatusActive, f.profiles.profiles["user"].Status)
	assert.Zero(t, f.profiles.writeCalls)
}

/*
TestBan_ProfileWriteFails verifies a second-step failure names the profile
write while the account marker stays set — the documented partial state that
a retry repairs.
*/
func TestBan_ProfileWriteFails(t *testing.T) {
	f := newFixture(t)
	f.profiles.failWrite = errors.New("connection refused")

	err := f.service.Ban(context.Background(), "admin", "user", "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 500, ae.HTTPStatus)
	assert.Equal(t, "Profile status write failed", ae.Message)

	// First write committed, no rollback.
	require.NotNil(t, f.accounts.accounts["user"].BannedUntil)

	// Retry after the profile store recovers converges both stores.
	f.profiles.failWrite = nil
	require.NoError(t, f.service.Ban(context.Background(), "admin", "user", ""))
	assert.Equal(t, moderation.StatusSuspended, f.profiles.profiles["user"].Status)
}

// # Unban

/*
TestUnban_RoundTrip verifies ban-then-unban restores the original state.
*/
func TestUnban_RoundTrip(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.service.Ban(context.Background(), "admin", "user", ""))
	require.NoError(t, f.service.Unban(context.Background(), "admin", "user"))

	account := f.accounts.accounts["user"]
	assert.Nil(t, account.BannedUntil)
	assert.False(t, account.Suspended())
	assert.Equal(t, moderation.StatusActive, f.profiles.profiles["user"].Status)
}

/*
TestUnban_NoPeerRestriction verifies an admin may unban another admin even
though the ban path forbids that pair.
*/
func TestUnban_NoPeerRestriction(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.service.Ban(context.Background(), "superadmin", "admin", ""))
	require.NoError(t, f.service.Unban(context.Background(), "admin", "admin"))

	assert.Equal(t, moderation.StatusActive, f.profiles.profiles["admin"].Status)
}

/*
TestUnban_Forbidden verifies non-admins cannot unban and nothing is written.
*/
func TestUnban_Forbidden(t *testing.T) {
	f := newFixture(t)

	err := f.service.Unban(context.Background(), "editor", "user")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Only admins can unban users", ae.Message)
	assert.Zero(t, f.accounts.writeCalls)
}

/*
TestUnban_Idempotent verifies unbanning a never-banned user succeeds.
*/
func TestUnban_Idempotent(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.service.Unban(context.Background(), "admin", "user"))
	assert.Nil(t, f.accounts.accounts["user"].BannedUntil)
	assert.Equal(t, moderation.StatusActive, f.profiles.profiles["user"].Status)
}

// # User Details

/*
TestUserDetails_MergesAccountOverProfile verifies the merged record carries
both stores' fields with account values winning on collision.
*/
func TestUserDetails_MergesAccountOverProfile(t *testing.T) {
	f := newFixture(t)

	// Force a collision: same key, different values in the two stores.
	f.accounts.accounts["user"].CreatedAt = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	f.profiles.profiles["user"].CreatedAt = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	details, err := f.service.UserDetails(context.Background(), "superadmin", "user")
	require.NoError(t, err)

	assert.Equal(t, "user", details["id"])
	assert.Equal(t, "user@ravenstrike.team", details["email"])
	assert.Equal(t, f.accounts.accounts["user"].CreatedAt, details["created_at"])

	// Profile-only fields survive the overlay.
	assert.Equal(t, sec.RoleUser, details["role"])
	assert.Equal(t, moderation.StatusActive, details["status"])
	assert.Equal(t, false, details["suspended"])
}

/*
TestUserDetails_SuperadminOnly verifies every lesser role is refused.
*/
func TestUserDetails_SuperadminOnly(t *testing.T) {
	for _, actor := range []string{"admin", "editor", "user"} {
		t.Run(actor, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.service.UserDetails(context.Background(), actor, "user")
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, 403, ae.HTTPStatus)
			assert.Equal(t, "Only a superadmin can view user details", ae.Message)
		})
	}
}

/*
TestUserDetails_TargetNotFound verifies lookup failures propagate as 404.
*/
func TestUserDetails_TargetNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.UserDetails(context.Background(), "superadmin", "ghost")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}
