// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package gallery

import (
	"context"
	"log/slog"

	"github.com/ravenstrike/rsf-api/internal/platform/apperr"
	"github.com/ravenstrike/rsf-api/internal/platform/storage"
	"github.com/ravenstrike/rsf-api/pkg/uuid"
)

// URLSigner is the subset of the media bucket client the gallery needs.
// Satisfied by [storage.Presigner]; nil when no bucket is configured.
type URLSigner interface {
	PresignPut(ctx context.Context, key, contentType string) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
}

// Service implements the gallery use cases.
type Service struct {
	store  Store
	signer URLSigner
	logger *slog.Logger
}

// NewService constructs a gallery [Service]. signer may be nil, in which case
// every operation that needs the bucket returns ServiceUnavailable.
func NewService(store Store, signer URLSigner, logger *slog.Logger) *Service {
	return &Service{store: store, signer: signer, logger: logger}
}

func (service *Service) requireSigner() error {
	if service.signer == nil {
		return apperr.ServiceUnavailable("Media storage is not configured")
	}
	return nil
}

/*
List returns a page of gallery items with presigned GET URLs attached.

Parameters:
  - context: context.Context
  - limit, offset: int

Returns:
  - []*Item, int: Page of items with URLs resolved, plus the total count
  - error: ServiceUnavailable without a bucket, or persistence failures
*/
func (service *Service) List(context context.Context, limit, offset int) ([]*Item, int, error) {
	if err := service.requireSigner(); err != nil {
		return nil, 0, err
	}

	items, total, err := service.store.List(context, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	for _, item := range items {
		url, err := service.signer.PresignGet(context, item.StorageKey)
		if err != nil {
			// A single bad key should not blank the whole gallery.
			service.logger.Warn("gallery presign failed",
				slog.String("item_id", item.ID),
				slog.String("error", err.Error()))
			continue
		}
		item.URL = url
	}

	return items, total, nil
}

// UploadTicket is a presigned PUT grant for a direct-to-bucket upload.
type UploadTicket struct {
	StorageKey string `json:"storage_key"`
	UploadURL  string `json:"upload_url"`
	ExpiresIn  int    `json:"expires_in"`
}

/*
NewUpload issues a presigned PUT URL under a fresh gallery object key. The
caller uploads directly to the bucket, then registers the item via Create.

Returns:
  - *UploadTicket: Key and URL valid for [storage.PresignTTL]
  - error: ServiceUnavailable without a bucket
*/
func (service *Service) NewUpload(context context.Context, contentType string) (*UploadTicket, error) {
	if err := service.requireSigner(); err != nil {
		return nil, err
	}

	key := storage.NewStorageKey("gallery")
	url, err := service.signer.PresignPut(context, key, contentType)
	if err != nil {
		return nil, apperr.Downstream("Upload URL signing", err)
	}

	return &UploadTicket{
		StorageKey: key,
		UploadURL:  url,
		ExpiresIn:  int(storage.PresignTTL.Seconds()),
	}, nil
}

// CreateInput holds the data registering an uploaded object as a gallery item.
type CreateInput struct {
	Title      string
	StorageKey string
	MediaType  string
	SortOrder  int
}

// Create registers an uploaded object as a visible gallery item.
func (service *Service) Create(context context.Context, input CreateInput) (*Item, error) {
	item := &Item{
		ID:         uuid.New(),
		Title:      input.Title,
		StorageKey: input.StorageKey,
		MediaType:  input.MediaType,
		SortOrder:  input.SortOrder,
	}

	if err := service.store.Create(context, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Delete soft-deletes a gallery item. The object stays in the bucket.
func (service *Service) Delete(context context.Context, id string) error {
	return service.store.SoftDelete(context, id)
}
