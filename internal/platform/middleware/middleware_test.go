// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ravenstrike/rsf-api/internal/platform/middleware"
)

type corsConfig struct {
	development bool
	origins     []string
}

func (c corsConfig) IsDevelopment() bool      { return c.development }
func (c corsConfig) AllowedOrigins() []string { return c.origins }

func corsHandler(cfg middleware.AppConfig) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return middleware.CORS(cfg)(next)
}

/*
TestCORS_PreflightAllowedOrigin verifies that an OPTIONS preflight from a
permitted origin short-circuits with 204 and the full header set the admin
SPA needs, including Authorization and the client-info headers.
*/
func TestCORS_PreflightAllowedOrigin(t *testing.T) {
	handler := corsHandler(corsConfig{origins: []string{"https://admin.example.com"}})

	request := httptest.NewRequest(http.MethodOptions, "/api/v1/admin/users/42/ban", nil)
	request.Header.Set("Origin", "https://admin.example.com")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "https://admin.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Headers"), "X-Client-Info")
	assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Headers"), "Apikey")
	assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

/*
TestCORS_UnknownOriginGetsNoHeaders verifies that in production an
unlisted origin receives no CORS grant.
*/
func TestCORS_UnknownOriginGetsNoHeaders(t *testing.T) {
	handler := corsHandler(corsConfig{origins: []string{"https://admin.example.com"}})

	request := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	request.Header.Set("Origin", "https://evil.example.net")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestCORS_TeamDomainAlwaysAllowed verifies that any origin under the team
domain is accepted without being listed explicitly.
*/
func TestCORS_TeamDomainAlwaysAllowed(t *testing.T) {
	handler := corsHandler(corsConfig{})

	request := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	request.Header.Set("Origin", "https://admin.ravenstrike.team")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "https://admin.ravenstrike.team", recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestCORS_DevelopmentAllowsAnyOrigin verifies the relaxed development mode.
*/
func TestCORS_DevelopmentAllowsAnyOrigin(t *testing.T) {
	handler := corsHandler(corsConfig{development: true})

	request := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	request.Header.Set("Origin", "http://localhost:5173")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "http://localhost:5173", recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestCORS_NoOriginPassesThrough verifies that same-origin requests without an
Origin header skip CORS processing entirely.
*/
func TestCORS_NoOriginPassesThrough(t *testing.T) {
	handler := corsHandler(corsConfig{})

	request := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}
