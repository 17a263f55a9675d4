// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package settings_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenstrike/rsf-api/internal/platform/apperr"
	"github.com/ravenstrike/rsf-api/internal/settings"
)

// fakeStore is an in-memory implementation of [settings.Store].
type fakeStore struct {
	byKey map[string]*settings.Setting
}

func newFakeStore() *fakeStore {
	return &fakeStore{byKey: make(map[string]*settings.Setting)}
}

func (s *fakeStore) List(_ context.Context) ([]*settings.Setting, error) {
	stored := make([]*settings.Setting, 0, len(s.byKey))
	for _, setting := range s.byKey {
		clone := *setting
		stored = append(stored, &clone)
	}
	return stored, nil
}

func (s *fakeStore) Upsert(_ context.Context, setting *settings.Setting) error {
	setting.UpdatedAt = time.Now()
	clone := *setting
	s.byKey[setting.Key] = &clone
	return nil
}

/*
TestAll_DefaultsUntouched verifies that a fresh install serves the complete
default branding set.
*/
func TestAll_DefaultsUntouched(t *testing.T) {
	service := settings.NewService(newFakeStore())

	values, err := service.All(context.Background())
	require.NoError(t, err)

	assert.Len(t, values, len(settings.Defaults))
	assert.Equal(t, "Raven Strike Force", values[settings.KeySiteTitle])
}

/*
TestAll_StoredValuesOverrideDefaults verifies that admin-written values win
over defaults while unwritten keys keep theirs.
*/
func TestAll_StoredValuesOverrideDefaults(t *testing.T) {
	service := settings.NewService(newFakeStore())

	_, err := service.Set(context.Background(), "admin-1", settings.KeyTagline, "Fear the raven")
	require.NoError(t, err)

	values, err := service.All(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Fear the raven", values[settings.KeyTagline])
	assert.Equal(t, "Raven Strike Force", values[settings.KeySiteTitle])
}

/*
TestSet_UnknownKeyRejected verifies that writes outside the known branding
key set fail with a field-level validation error.
*/
func TestSet_UnknownKeyRejected(t *testing.T) {
	store := newFakeStore()
	service := settings.NewService(store)

	_, err := service.Set(context.Background(), "admin-1", "evil_key", "x")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, settings.FieldKey, ae.Details[0].Field)
	assert.Empty(t, store.byKey)
}

/*
TestSet_RecordsActor verifies the writer's account ID lands on the row.
*/
func TestSet_RecordsActor(t *testing.T) {
	store := newFakeStore()
	service := settings.NewService(store)

	written, err := service.Set(context.Background(), "admin-1", settings.KeyPrimaryColor, "#000000")
	require.NoError(t, err)

	assert.Equal(t, "admin-1", written.UpdatedBy)
	assert.Equal(t, "#000000", store.byKey[settings.KeyPrimaryColor].Value)
}
