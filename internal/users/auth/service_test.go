// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenstrike/rsf-api/internal/platform/apperr"
	"github.com/ravenstrike/rsf-api/internal/platform/constants"
	"github.com/ravenstrike/rsf-api/internal/platform/sec"
	"github.com/ravenstrike/rsf-api/internal/users/auth"
)

// # In-Memory Fakes

type fakeAccountRepo struct {
	byID map[string]*auth.Account
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (*auth.Account, error) {
	if a, ok := r.byID[id]; ok {
		return a, nil
	}
	return nil, apperr.NotFound("Account")
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*auth.Account, error) {
	for _, a := range r.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (r *fakeAccountRepo) FindByUsername(_ context.Context, username string) (*auth.Account, error) {
	for _, a := range r.byID {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (r *fakeAccountRepo) Create(_ context.Context, account *auth.Account) error {
	account.CreatedAt = time.Now()
	r.byID[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) UpdatePassword(_ context.Context, id, newHash string) error {
	a, ok := r.byID[id]
	if !ok {
		return apperr.NotFound("Account")
	}
	a.PasswordHash = newHash
	return nil
}

func (r *fakeAccountRepo) RecordSignIn(_ context.Context, id string) error {
	if a, ok := r.byID[id]; ok {
		now := time.Now()
		a.LastSignInAt = &now
	}
	return nil
}

func (r *fakeAccountRepo) MarkVerified(_ context.Context, id string) error {
	a, ok := r.byID[id]
	if !ok {
		return apperr.NotFound("Account")
	}
	a.IsVerified = true
	return nil
}

type fakeProfileRepo struct {
	roles   map[string]string
	created []string
}

func (r *fakeProfileRepo) CreateDefault(_ context.Context, accountID, displayName, callsign string) error {
	r.roles[accountID] = string(sec.RoleUser)
	r.created = append(r.created, accountID)
	return nil
}

func (r *fakeProfileRepo) GetRole(_ context.Context, accountID string) (string, error) {
	if role, ok := r.roles[accountID]; ok {
		return role, nil
	}
	return "", apperr.NotFound("Profile")
}

type fakeSessionRepo struct {
	byHash map[string]*auth.Session
}

func (r *fakeSessionRepo) Create(_ context.Context, s *auth.Session) error {
	s.CreatedAt = time.Now()
	r.byHash[s.TokenHash] = s
	return nil
}

func (r *fakeSessionRepo) FindByTokenHash(_ context.Context, hash string) (*auth.Session, error) {
	s, ok := r.byHash[hash]
	if !ok || s.IsRevoked || s.ExpiresAt.Before(time.Now()) {
		return nil, apperr.NotFound("Session")
	}
	return s, nil
}

func (r *fakeSessionRepo) ListActive(_ context.Context, userID string) ([]*auth.Session, error) {
	active := []*auth.Session{}
	for _, s := range r.byHash {
		if s.UserID == userID && !s.IsRevoked && s.ExpiresAt.After(time.Now()) {
			active = append(active, s)
		}
	}
	return active, nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, sessionID string) error {
	for _, s := range r.byHash {
		if s.ID == sessionID {
			s.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeSessionRepo) RevokeAll(_ context.Context, userID string) error {
	for _, s := range r.byHash {
		if s.UserID == userID {
			s.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeSessionRepo) RevokeOthers(_ context.Context, userID, currentSessionID string) error {
	for _, s := range r.byHash {
		if s.UserID == userID && s.ID != currentSessionID {
			s.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeSessionRepo) DeleteExpired(_ context.Context) error { return nil }

type fakeTokenStore struct {
	values map[string]string
}

func (r *fakeTokenStore) Set(_ context.Context, token, userID string, _ time.Duration) error {
	r.values[token] = userID
	return nil
}

func (r *fakeTokenStore) Get(_ context.Context, token string) (string, error) {
	if id, ok := r.values[token]; ok {
		return id, nil
	}
	return "", apperr.NotFound("Token")
}

func (r *fakeTokenStore) Delete(_ context.Context, token string) error {
	delete(r.values, token)
	return nil
}

type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, username, role string, _ time.Duration) (string, error) {
	return "jwt:" + userID + ":" + role, nil
}

// # Fixture

type authFixture struct {
	accounts *fakeAccountRepo
	profiles *fakeProfileRepo
	sessions *fakeSessionRepo
	resets   *fakeTokenStore
	verifies *fakeTokenStore
	service  *auth.Service
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		accounts: &fakeAccountRepo{byID: map[string]*auth.Account{}},
		profiles: &fakeProfileRepo{roles: map[string]string{}},
		sessions: &fakeSessionRepo{byHash: map[string]*auth.Session{}},
		resets:   &fakeTokenStore{values: map[string]string{}},
		verifies: &fakeTokenStore{values: map[string]string{}},
	}
	f.service = auth.NewService(f.accounts, f.profiles, f.sessions, f.resets, f.verifies, fakeTokenProvider{})
	return f
}

func (f *authFixture) register(t *testing.T, username, email, password string) *auth.Account {
	t.Helper()
	account, err := f.service.Register(context.Background(), auth.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return account
}

// # Registration

/*
TestRegister_SeedsProfile verifies registration creates the account and the
one-to-one profile row with the default role.
*/
func TestRegister_SeedsProfile(t *testing.T) {
	f := newAuthFixture(t)

	account := f.register(t, "raven1", "raven1@example.com", "hunter2hunter2")

	assert.NotEmpty(t, account.ID)
	assert.NotEqual(t, "hunter2hunter2", account.PasswordHash)
	require.Contains(t, f.profiles.roles, account.ID)
	assert.Equal(t, string(sec.RoleUser), f.profiles.roles[account.ID])
}

/*
TestRegister_Conflicts verifies duplicate email and username are refused.
*/
func TestRegister_Conflicts(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "raven1", "raven1@example.com", "hunter2hunter2")

	_, err := f.service.Register(context.Background(), auth.RegisterInput{
		Username: "other", Email: "raven1@example.com", Password: "hunter2hunter2",
	})
	require.Error(t, err)
	assert.Equal(t, "Email is already registered", apperr.As(err).Message)

	_, err = f.service.Register(context.Background(), auth.RegisterInput{
		Username: "raven1", Email: "other@example.com", Password: "hunter2hunter2",
	})
	require.Error(t, err)
	assert.Equal(t, "Username is already taken", apperr.As(err).Message)
}

// # Login

/*
TestLogin_IssuesSession verifies login by username or email yields tokens
and stamps the sign-in time.
*/
func TestLogin_IssuesSession(t *testing.T) {
	f := newAuthFixture(t)
	account := f.register(t, "raven1", "raven1@example.com", "hunter2hunter2")

	session, err := f.service.Login(context.Background(), auth.LoginInput{
		Login: "raven1", Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.NotNil(t, f.accounts.byID[account.ID].LastSignInAt)

	// Email login works too.
	_, err = f.service.Login(context.Background(), auth.LoginInput{
		Login: "raven1@example.com", Password: "hunter2hunter2",
	})
	assert.NoError(t, err)
}

/*
TestLogin_GenericUnauthorized verifies wrong password and unknown identity
return the same message so accounts cannot be enumerated.
*/
func TestLogin_GenericUnauthorized(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "raven1", "raven1@example.com", "hunter2hunter2")

	_, err := f.service.Login(context.Background(), auth.LoginInput{
		Login: "raven1", Password: "wrong-password",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid login credentials", apperr.As(err).Message)

	_, err = f.service.Login(context.Background(), auth.LoginInput{
		Login: "nobody", Password: "whatever1234",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid login credentials", apperr.As(err).Message)
}

/*
TestLogin_SuspendedRefused verifies an account carrying the suspension
marker cannot log in even with correct credentials.
*/
func TestLogin_SuspendedRefused(t *testing.T) {
	f := newAuthFixture(t)
	account := f.register(t, "raven1", "raven1@example.com", "hunter2hunter2")

	until := constants.SuspendedUntil
	f.accounts.byID[account.ID].BannedUntil = &until

	_, err := f.service.Login(context.Background(), auth.LoginInput{
		Login: "raven1", Password: "hunter2hunter2",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 403, ae.HTTPStatus)
	assert.Equal(t, "This account is suspended", ae.Message)
}

/*
TestLogin_ExpiredBanIgnored verifies a banned_until in the past does not
block login.
*/
func TestLogin_ExpiredBanIgnored(t *testing.T) {
	f := newAuthFixture(t)
	account := f.register(t, "raven1", "raven1@example.com", "hunter2hunter2")

	past := time.Now().Add(-time.Hour)
	f.accounts.byID[account.ID].BannedUntil = &past

	_, err := f.service.Login(context.Background(), auth.LoginInput{
		Login: "raven1", Password: "hunter2hunter2",
	})
	assert.NoError(t, err)
}

// # Refresh & Logout

/*
TestRefreshSession_Rotation verifies the old refresh token is dead after a
refresh and the new one works.
*/
func TestRefreshSession_Rotation(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "raven1", "raven1@example.com", "hunter2hunter2")

	first, err := f.service.Login(context.Background(), auth.LoginInput{
		Login: "raven1", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	second, err := f.service.RefreshSession(context.Background(), first.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// Replay of the rotated-out token must fail.
	_, err = f.service.RefreshSession(context.Background(), first.RefreshToken, "", "")
	require.Error(t, err)
	assert.Equal(t, 401, apperr.As(err).HTTPStatus)
}

/*
TestRefreshSession_SuspendedCutOff verifies a ban issued mid-session blocks
the next refresh.
*/
func TestRefreshSession_SuspendedCutOff(t *testing.T) {
	f := newAuthFixture(t)
	account := f.register(t, "raven1", "raven1@example.com", "hunter2hunter2")

	session, err := f.service.Login(context.Background(), auth.LoginInput{
		Login: "raven1", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	until := constants.SuspendedUntil
	f.accounts.byID[account.ID].BannedUntil = &until

	_, err = f.service.RefreshSession(context.Background(), session.RefreshToken, "", "")
	require.Error(t, err)
	assert.Equal(t, "This account is suspended", apperr.As(err).Message)
}

/*
TestLogout_Idempotent verifies logging out an unknown token succeeds.
*/
func TestLogout_Idempotent(t *testing.T) {
	f := newAuthFixture(t)

	assert.NoError(t, f.service.Logout(context.Background(), "never-issued"))
}

// # Password Recovery

/*
TestResetPassword_Flow verifies the full forgot/reset cycle revokes every
session and consumes the token.
*/
func TestResetPassword_Flow(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "raven1", "raven1@example.com", "hunter2hunter2")

	session, err := f.service.Login(context.Background(), auth.LoginInput{
		Login: "raven1", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	token, err := f.service.RequestPasswordReset(context.Background(), "raven1@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, f.service.ResetPassword(context.Background(), token, "new-password-99"))

	// Old password dead, new one works.
	_, err = f.service.Login(context.Background(), auth.LoginInput{
		Login: "raven1", Password: "hunter2hunter2",
	})
	require.Error(t, err)
	_, err = f.service.Login(context.Background(), auth.LoginInput{
		Login: "raven1", Password: "new-password-99",
	})
	assert.NoError(t, err)

	// Pre-reset session revoked, token single-use.
	_, err = f.service.RefreshSession(context.Background(), session.RefreshToken, "", "")
	assert.Error(t, err)
	assert.Error(t, f.service.ResetPassword(context.Background(), token, "another-pass-99"))
}

/*
TestRequestPasswordReset_UnknownEmail verifies no token and no error for an
unregistered email (anti-enumeration).
*/
func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	token, err := f.service.RequestPasswordReset(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
	assert.Empty(t, token)
}
