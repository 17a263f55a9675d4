// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ravenstrike/rsf-api/pkg/pagination"
)

/*
TestFromRequest_Clamping verifies query parsing with clamping of invalid,
negative, and excessive values.
*/
func TestFromRequest_Clamping(t *testing.T) {
	testCases := []struct {
		name          string
		query         string
		expectedPage  int
		expectedLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit values", "?page=3&limit=50", 3, 50},
		{"zero page", "?page=0", 1, 20},
		{"negative page", "?page=-2", 1, 20},
		{"limit over max", "?limit=1000", 1, 20},
		{"garbage input", "?page=abc&limit=xyz", 1, 20},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/v1/articles"+testCase.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, testCase.expectedPage, params.Page)
			assert.Equal(t, testCase.expectedLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset verifies the SQL offset derivation from page and limit.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 20, pagination.Params{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 90, pagination.Params{Page: 10, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 20}.Offset())
}

/*
TestNewMeta verifies total page calculation, including partial last pages
and empty result sets.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 20, 45)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 45, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	empty := pagination.NewMeta(1, 20, 0)
	assert.Equal(t, 0, empty.TotalPages)

	exact := pagination.NewMeta(1, 10, 30)
	assert.Equal(t, 3, exact.TotalPages)
}
