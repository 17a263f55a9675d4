// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenstrike/rsf-api/internal/content/event"
	"github.com/ravenstrike/rsf-api/internal/platform/apperr"
)

// fakeStore is an in-memory implementation of [event.Store].
type fakeStore struct {
	byID map[string]*event.Event
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: make(map[string]*event.Event)}
}

func (s *fakeStore) Create(_ context.Context, e *event.Event) error {
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	s.byID[e.ID] = e
	return nil
}

func (s *fakeStore) FindByID(_ context.Context, id string) (*event.Event, error) {
	e, ok := s.byID[id]
	if !ok {
		return nil, apperr.NotFound("Game")
	}
	clone := *e
	return &clone, nil
}

func (s *fakeStore) FindPublishedBySlug(_ context.Context, slug string) (*event.Event, error) {
	for _, e := range s.byID {
		if e.Slug == slug && e.IsPublished {
			clone := *e
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Game")
}

func (s *fakeStore) ListPublished(_ context.Context, upcoming bool, limit, offset int) ([]*event.Event, int, error) {
	matched := make([]*event.Event, 0)
	for _, e := range s.byID {
		if e.IsPublished && e.Upcoming() == upcoming {
			matched = append(matched, e)
		}
	}
	return matched, len(matched), nil
}

func (s *fakeStore) ListAll(_ context.Context, limit, offset int) ([]*event.Event, int, error) {
	all := make([]*event.Event, 0, len(s.byID))
	for _, e := range s.byID {
		all = append(all, e)
	}
	return all, len(all), nil
}

func (s *fakeStore) Update(_ context.Context, e *event.Event) error {
	if _, ok := s.byID[e.ID]; !ok {
		return apperr.NotFound("Game")
	}
	clone := *e
	s.byID[e.ID] = &clone
	return nil
}

func (s *fakeStore) SoftDelete(_ context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return apperr.NotFound("Game")
	}
	delete(s.byID, id)
	return nil
}

/*
TestCreate_RequiresStartTime verifies that a game without a start time is
rejected with a field-level validation error before anything is persisted.
*/
func TestCreate_RequiresStartTime(t *testing.T) {
	store := newFakeStore()
	service := event.NewService(store)

	_, err := service.Create(context.Background(), event.CreateInput{
		Title:    "Night Raid",
		Location: "Fort Brazen",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, event.FieldStartsAt, ae.Details[0].Field)
	assert.Empty(t, store.byID)
}

/*
TestCreate_SlugFromTitle verifies slug derivation, including accents and
punctuation in the title.
*/
func TestCreate_SlugFromTitle(t *testing.T) {
	service := event.NewService(newFakeStore())

	created, err := service.Create(context.Background(), event.CreateInput{
		Title:    "Opération: Château d'Hiver!",
		Location: "Fort Brazen",
		StartsAt: time.Now().Add(72 * time.Hour),
		Capacity: 40,
		Publish:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "operation-chateau-d-hiver", created.Slug)
	assert.True(t, created.Upcoming())
}

/*
TestListPublished_SplitsUpcomingAndPast verifies that the public calendar
separates future games from finished ones.
*/
func TestListPublished_SplitsUpcomingAndPast(t *testing.T) {
	service := event.NewService(newFakeStore())

	_, err := service.Create(context.Background(), event.CreateInput{
		Title: "Future Game", Location: "A", StartsAt: time.Now().Add(48 * time.Hour), Publish: true,
	})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), event.CreateInput{
		Title: "Past Game", Location: "B", StartsAt: time.Now().Add(-48 * time.Hour), Publish: true,
	})
	require.NoError(t, err)

	upcoming, total, err := service.ListPublished(context.Background(), true, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Future Game", upcoming[0].Title)

	past, total, err := service.ListPublished(context.Background(), false, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, past, 1)
	assert.Equal(t, "Past Game", past[0].Title)
}

/*
TestUpdate_PartialFields verifies nil-pointer partial updates: only the
provided fields change.
*/
func TestUpdate_PartialFields(t *testing.T) {
	service := event.NewService(newFakeStore())

	start := time.Now().Add(24 * time.Hour)
	created, err := service.Create(context.Background(), event.CreateInput{
		Title: "Skirmish Sunday", Location: "Old Mill", StartsAt: start, Capacity: 30,
	})
	require.NoError(t, err)

	newCapacity := 45
	updated, err := service.Update(context.Background(), created.ID, event.UpdateInput{
		Capacity: &newCapacity,
	})
	require.NoError(t, err)
	assert.Equal(t, 45, updated.Capacity)
	assert.Equal(t, "Skirmish Sunday", updated.Title)
	assert.Equal(t, "Old Mill", updated.Location)
	assert.True(t, updated.StartsAt.Equal(start))
}
