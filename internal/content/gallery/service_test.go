// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package gallery_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenstrike/rsf-api/internal/content/gallery"
	"github.com/ravenstrike/rsf-api/internal/platform/apperr"
)

// fakeStore is an in-memory implementation of [gallery.Store].
type fakeStore struct {
	byID map[string]*gallery.Item
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: make(map[string]*gallery.Item)}
}

func (s *fakeStore) Create(_ context.Context, item *gallery.Item) error {
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	s.byID[item.ID] = item
	return nil
}

func (s *fakeStore) FindByID(_ context.Context, id string) (*gallery.Item, error) {
	item, ok := s.byID[id]
	if !ok {
		return nil, apperr.NotFound("Gallery item")
	}
	clone := *item
	return &clone, nil
}

func (s *fakeStore) List(_ context.Context, limit, offset int) ([]*gallery.Item, int, error) {
	items := make([]*gallery.Item, 0, len(s.byID))
	for _, item := range s.byID {
		clone := *item
		items = append(items, &clone)
	}
	return items, len(items), nil
}

func (s *fakeStore) SoftDelete(_ context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return apperr.NotFound("Gallery item")
	}
	delete(s.byID, id)
	return nil
}

// fakeSigner returns deterministic URLs and can fail per key.
type fakeSigner struct {
	failKeys map[string]bool
}

func (f *fakeSigner) PresignPut(_ context.Context, key, contentType string) (string, error) {
	if f.failKeys[key] {
		return "", errors.New("signing backend down")
	}
	return "https://bucket.test/put/" + key, nil
}

func (f *fakeSigner) PresignGet(_ context.Context, key string) (string, error) {
	if f.failKeys[key] {
		return "", errors.New("signing backend down")
	}
	return "https://bucket.test/get/" + key, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestList_AttachesPresignedURLs verifies that the public listing resolves each
item's storage key into a short-lived GET URL.
*/
func TestList_AttachesPresignedURLs(t *testing.T) {
	store := newFakeStore()
	service := gallery.NewService(store, &fakeSigner{}, testLogger())

	created, err := service.Create(context.Background(), gallery.CreateInput{
		Title:      "Night Ops Squad Photo",
		StorageKey: "gallery/2026/08/abc",
		MediaType:  gallery.MediaTypeImage,
	})
	require.NoError(t, err)

	items, total, err := service.List(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
	assert.Equal(t, "https://bucket.test/get/gallery/2026/08/abc", items[0].URL)
}

/*
TestList_WithoutBucketUnavailable verifies that a deployment without object
storage answers the gallery with 503 instead of broken URLs.
*/
func TestList_WithoutBucketUnavailable(t *testing.T) {
	service := gallery.NewService(newFakeStore(), nil, testLogger())

	_, _, err := service.List(context.Background(), 20, 0)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "SERVICE_UNAVAILABLE", ae.Code)
}

/*
TestList_PresignFailureSkipsItem verifies that one unsignable key does not
blank the whole gallery; the item is returned without a URL.
*/
func TestList_PresignFailureSkipsItem(t *testing.T) {
	store := newFakeStore()
	signer := &fakeSigner{failKeys: map[string]bool{"gallery/bad": true}}
	service := gallery.NewService(store, signer, testLogger())

	_, err := service.Create(context.Background(), gallery.CreateInput{
		Title: "Good", StorageKey: "gallery/good", MediaType: gallery.MediaTypeImage,
	})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), gallery.CreateInput{
		Title: "Bad", StorageKey: "gallery/bad", MediaType: gallery.MediaTypeVideo,
	})
	require.NoError(t, err)

	items, _, err := service.List(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	urls := map[string]string{}
	for _, item := range items {
		urls[item.Title] = item.URL
	}
	assert.NotEmpty(t, urls["Good"])
	assert.Empty(t, urls["Bad"])
}

/*
TestNewUpload_TicketFields verifies the presigned PUT grant: a fresh
date-partitioned key under the gallery prefix and a bounded validity window.
*/
func TestNewUpload_TicketFields(t *testing.T) {
	service := gallery.NewService(newFakeStore(), &fakeSigner{}, testLogger())

	ticket, err := service.NewUpload(context.Background(), "image/jpeg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ticket.StorageKey, "gallery/"))
	assert.Equal(t, "https://bucket.test/put/"+ticket.StorageKey, ticket.UploadURL)
	assert.Equal(t, 900, ticket.ExpiresIn)
}

/*
TestNewUpload_WithoutBucketUnavailable verifies that upload grants are
refused when no bucket is configured.
*/
func TestNewUpload_WithoutBucketUnavailable(t *testing.T) {
	service := gallery.NewService(newFakeStore(), nil, testLogger())

	_, err := service.NewUpload(context.Background(), "image/jpeg")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "SERVICE_UNAVAILABLE", ae.Code)
}
