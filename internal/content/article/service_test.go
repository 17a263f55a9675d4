// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package article_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenstrike/rsf-api/internal/content/article"
	"github.com/ravenstrike/rsf-api/internal/platform/apperr"
)

// fakeStore is an in-memory implementation of [article.Store].
type fakeStore struct {
	byID map[string]*article.Article
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: make(map[string]*article.Article)}
}

func (s *fakeStore) Create(_ context.Context, a *article.Article) error {
	for _, existing := range s.byID {
		if existing.Slug == a.Slug {
			return apperr.Conflict("An entry with this identifier already exists")
		}
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	s.byID[a.ID] = a
	return nil
}

func (s *fakeStore) FindByID(_ context.Context, id string) (*article.Article, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}
	clone := *a
	return &clone, nil
}

func (s *fakeStore) FindPublishedBySlug(_ context.Context, slug string) (*article.Article, error) {
	for _, a := range s.byID {
		if a.Slug == slug && a.IsPublished {
			clone := *a
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Article")
}

func (s *fakeStore) ListPublished(_ context.Context, limit, offset int) ([]*article.Article, int, error) {
	published := make([]*article.Article, 0)
	for _, a := range s.byID {
		if a.IsPublished {
			published = append(published, a)
		}
	}
	return published, len(published), nil
}

func (s *fakeStore) ListAll(_ context.Context, limit, offset int) ([]*article.Article, int, error) {
	all := make([]*article.Article, 0, len(s.byID))
	for _, a := range s.byID {
		all = append(all, a)
	}
	return all, len(all), nil
}

func (s *fakeStore) Update(_ context.Context, a *article.Article) error {
	if _, ok := s.byID[a.ID]; !ok {
		return apperr.NotFound("Article")
	}
	clone := *a
	s.byID[a.ID] = &clone
	return nil
}

func (s *fakeStore) SoftDelete(_ context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return apperr.NotFound("Article")
	}
	delete(s.byID, id)
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

/*
TestCreate_DraftAndPublish verifies that publishing at creation time stamps
PublishedAt while drafts stay unstamped.
*/
func TestCreate_DraftAndPublish(t *testing.T) {
	service := article.NewService(newFakeStore())

	draft, err := service.Create(context.Background(), article.CreateInput{
		Title:    "Field Report: Winter Night Ops",
		Body:     "Long form report.",
		AuthorID: "author-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "field-report-winter-night-ops", draft.Slug)
	assert.False(t, draft.IsPublished)
	assert.Nil(t, draft.PublishedAt)

	published, err := service.Create(context.Background(), article.CreateInput{
		Title:    "CQB Training Recap",
		Body:     "Recap body.",
		AuthorID: "author-1",
		Publish:  true,
	})
	require.NoError(t, err)
	assert.True(t, published.IsPublished)
	require.NotNil(t, published.PublishedAt)
}

/*
TestCreate_DuplicateTitleConflicts verifies that two articles resolving to
the same slug surface a 409 rather than silently suffixing.
*/
func TestCreate_DuplicateTitleConflicts(t *testing.T) {
	service := article.NewService(newFakeStore())

	_, err := service.Create(context.Background(), article.CreateInput{
		Title: "Loadout Guide", Body: "v1", AuthorID: "author-1",
	})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), article.CreateInput{
		Title: "Loadout Guide", Body: "v2", AuthorID: "author-2",
	})
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

/*
TestUpdate_TitleRegeneratesSlug verifies that retitling an article moves it
to a new slug and leaves unrelated fields intact.
*/
func TestUpdate_TitleRegeneratesSlug(t *testing.T) {
	store := newFakeStore()
	service := article.NewService(store)

	created, err := service.Create(context.Background(), article.CreateInput{
		Title: "Old Title", Excerpt: "keep me", Body: "body", AuthorID: "author-1",
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID, article.UpdateInput{
		Title: strPtr("Spring Milsim 2026 Announcement"),
	})
	require.NoError(t, err)
	assert.Equal(t, "spring-milsim-2026-announcement", updated.Slug)
	assert.Equal(t, "keep me", updated.Excerpt)
}

/*
TestUpdate_PublishStampIsSticky verifies the publish lifecycle: the first
publish stamps PublishedAt, and unpublishing then republishing keeps the
original stamp.
*/
func TestUpdate_PublishStampIsSticky(t *testing.T) {
	service := article.NewService(newFakeStore())

	created, err := service.Create(context.Background(), article.CreateInput{
		Title: "Sticky Stamp", Body: "body", AuthorID: "author-1",
	})
	require.NoError(t, err)
	require.Nil(t, created.PublishedAt)

	published, err := service.Update(context.Background(), created.ID, article.UpdateInput{
		Publish: boolPtr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt

	unpublished, err := service.Update(context.Background(), created.ID, article.UpdateInput{
		Publish: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, unpublished.IsPublished)
	require.NotNil(t, unpublished.PublishedAt)

	republished, err := service.Update(context.Background(), created.ID, article.UpdateInput{
		Publish: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, firstStamp, *republished.PublishedAt)
}

/*
TestGetBySlug_OnlyPublished verifies that drafts are invisible on the public
read path.
*/
func TestGetBySlug_OnlyPublished(t *testing.T) {
	service := article.NewService(newFakeStore())

	draft, err := service.Create(context.Background(), article.CreateInput{
		Title: "Hidden Draft", Body: "body", AuthorID: "author-1",
	})
	require.NoError(t, err)

	_, err = service.GetBySlug(context.Background(), draft.Slug)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}
