// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package moderation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenstrike/rsf-api/internal/moderation"
	"github.com/ravenstrike/rsf-api/internal/platform/ctxutil"
	"github.com/ravenstrike/rsf-api/internal/platform/sec"
)

// doRequest runs one request through the moderation router, optionally
// authenticated as actorID.
func doRequest(t *testing.T, f *fixture, method, path, body, actorID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := moderation.NewHandler(f.service)
	router := handler.Routes()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	request := httptest.NewRequest(method, path, reader)
	if actorID != "" {
		claims := &sec.AuthClaims{UserID: actorID}
		request = request.WithContext(ctxutil.WithAuthUser(context.Background(), claims))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHTTP_Ban_RequiresAuth verifies an unauthenticated ban is refused with
401 before any store write.
*/
func TestHTTP_Ban_RequiresAuth(t *testing.T) {
	f := newFixture(t)

	recorder := doRequest(t, f, http.MethodPost, "/users/user/ban", "", "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Zero(t, f.accounts.writeCalls)
	assert.Zero(t, f.profiles.writeCalls)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "UNAUTHORIZED", envelope["code"])
}

/*
TestHTTP_Ban_Success verifies the 200 response echoes the target and reason.
*/
func TestHTTP_Ban_Success(t *testing.T) {
	f := newFixture(t)

	recorder := doRequest(t, f, http.MethodPost, "/users/user/ban",
		`{"reason":"repeated spam"}`, "admin")

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "User banned successfully", envelope.Data["message"])
	assert.Equal(t, "user", envelope.Data["user_id"])
	assert.Equal(t, "repeated spam", envelope.Data["reason"])

	assert.Equal(t, moderation.StatusSuspended, f.profiles.profiles["user"].Status)
}

/*
TestHTTP_Ban_EmptyBodyAllowed verifies the reason body is optional.
*/
func TestHTTP_Ban_EmptyBodyAllowed(t *testing.T) {
	f := newFixture(t)

	recorder := doRequest(t, f, http.MethodPost, "/users/user/ban", "", "admin")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, moderation.StatusSuspended, f.profiles.profiles["user"].Status)
}

/*
TestHTTP_Ban_Forbidden verifies the guard's message reaches the wire as a
403 envelope.
*/
func TestHTTP_Ban_Forbidden(t *testing.T) {
	f := newFixture(t)

	recorder := doRequest(t, f, http.MethodPost, "/users/admin/ban", "", "admin")

	assert.Equal(t, http.StatusForbidden, recorder.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "An admin cannot ban another admin", envelope["error"])
	assert.Equal(t, "FORBIDDEN", envelope["code"])
}

/*
TestHTTP_Unban_Success exercises the unban route round trip.
*/
func TestHTTP_Unban_Success(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.service.Ban(context.Background(), "admin", "user", ""))

	recorder := doRequest(t, f, http.MethodPost, "/users/user/unban", "", "admin")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, moderation.StatusActive, f.profiles.profiles["user"].Status)
	assert.Nil(t, f.accounts.accounts["user"].BannedUntil)
}

/*
TestHTTP_UserDetails verifies the superadmin-only lookup and its merged body.
*/
func TestHTTP_UserDetails(t *testing.T) {
	f := newFixture(t)

	recorder := doRequest(t, f, http.MethodGet, "/users/user", "", "superadmin")
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "user", envelope.Data["id"])
	assert.Equal(t, "user@ravenstrike.team", envelope.Data["email"])
	assert.Equal(t, "user", envelope.Data["role"])

	// Same route, lesser caller.
	recorder = doRequest(t, f, http.MethodGet, "/users/user", "", "admin")
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

/*
TestHTTP_ListActivity verifies the audit trail endpoint pages and filters.
*/
func TestHTTP_ListActivity(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.service.Ban(context.Background(), "admin", "user", "spam"))
	require.NoError(t, f.service.Unban(context.Background(), "admin", "user"))

	recorder := doRequest(t, f, http.MethodGet, "/activity", "", "admin")
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []map[string]any `json:"data"`
		Meta map[string]any   `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 2)
	assert.Equal(t, float64(2), envelope.Meta["total"])
}
