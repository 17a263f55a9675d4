// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package event

import (
	"context"
	"fmt"
	"time"

	"github.com/ravenstrike/rsf-api/internal/platform/apperr"
	"github.com/ravenstrike/rsf-api/pkg/slug"
	"github.com/ravenstrike/rsf-api/pkg/uuid"
)

// Service implements the games calendar use cases.
type Service struct {
	store Store
}

// NewService constructs an event [Service].
func NewService(store Store) *Service {
	return &Service{store: store}
}

// # Public Reads

// ListPublished returns published events: upcoming ascending or past descending.
func (service *Service) ListPublished(context context.Context, upcoming bool, limit, offset int) ([]*Event, int, error) {
	return service.store.ListPublished(context, upcoming, limit, offset)
}

// GetBySlug returns one published event.
func (service *Service) GetBySlug(context context.Context, eventSlug string) (*Event, error) {
	return service.store.FindPublishedBySlug(context, eventSlug)
}

// # Editorial Operations

// CreateInput holds the data for a new event.
type CreateInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	Capacity    int
	Publish     bool
}

/*
Create persists a new event with a title-derived slug.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Event: Created entity
  - error: Validation, Conflict, or persistence failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Event, error) {
	if input.StartsAt.IsZero() {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldStartsAt,
			Message: "is required",
		})
	}

	event := &Event{
		ID:          uuid.New(),
		Slug:        slug.From(input.Title),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		Capacity:    input.Capacity,
		IsPublished: input.Publish,
	}

	if err := service.store.Create(context, event); err != nil {
		return nil, err
	}

	return event, nil
}

// UpdateInput holds the mutable event fields. Nil means unchanged.
type UpdateInput struct {
	Title       *string
	Description *string
	Location    *string
	StartsAt    *time.Time
	Capacity    *int
	Publish     *bool
}

// Update applies partial updates; a title change regenerates the slug.
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Event, error) {
	event, err := service.store.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		event.Title = *input.Title
		event.Slug = slug.From(*input.Title)
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.StartsAt != nil {
		event.StartsAt = *input.StartsAt
	}
	if input.Capacity != nil {
		event.Capacity = *input.Capacity
	}
	if input.Publish != nil {
		event.IsPublished = *input.Publish
	}

	if err := service.store.Update(context, event); err != nil {
		return nil, fmt.Errorf("event_service_update_failed: %w", err)
	}

	return event, nil
}

// ListAll returns every non-deleted event for the admin view.
func (service *Service) ListAll(context context.Context, limit, offset int) ([]*Event, int, error) {
	return service.store.ListAll(context, limit, offset)
}

// Delete soft-deletes an event.
func (service *Service) Delete(context context.Context, id string) error {
	return service.store.SoftDelete(context, id)
}
