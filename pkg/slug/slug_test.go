// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ravenstrike/rsf-api/pkg/slug"
)

/*
TestFrom covers the slug pipeline: lowercasing, accent folding, punctuation
replacement, and hyphen cleanup.
*/
func TestFrom(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "Winter Night Ops", "winter-night-ops"},
		{"accents folded", "Opération Château", "operation-chateau"},
		{"punctuation stripped", "CQB: Close & Personal!", "cqb-close-personal"},
		{"multiple spaces collapsed", "Spring   Milsim    2026", "spring-milsim-2026"},
		{"leading and trailing noise", "  --Hello World--  ", "hello-world"},
		{"digits preserved", "Top 10 Loadouts", "top-10-loadouts"},
		{"empty input", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, slug.From(testCase.input))
		})
	}
}
