// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package settings

import (
	"context"

	"github.com/ravenstrike/rsf-api/internal/platform/apperr"
)

// Service implements the branding use cases.
type Service struct {
	store Store
}

// NewService constructs a settings [Service].
func NewService(store Store) *Service {
	return &Service{store: store}
}

/*
All returns every branding key with its current value, falling back to
[Defaults] for keys no admin has written yet.

Returns:
  - map[string]string: Complete key set, stored values over defaults
  - error: Persistence failures
*/
func (service *Service) All(context context.Context) (map[string]string, error) {
	stored, err := service.store.List(context)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(Defaults))
	for key, value := range Defaults {
		values[key] = value
	}
	for _, setting := range stored {
		values[setting.Key] = setting.Value
	}

	return values, nil
}

/*
Set writes one branding value.

Parameters:
  - actorID: Admin performing the change, recorded on the row
  - key: Must be a known branding key
  - value: string

Returns:
  - *Setting: Written row
  - error: ValidationError on unknown key, or persistence failures
*/
func (service *Service) Set(context context.Context, actorID, key, value string) (*Setting, error) {
	if !IsKnownKey(key) {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldKey,
			Message: "is not a recognized setting",
		})
	}

	setting := &Setting{
		Key:       key,
		Value:     value,
		UpdatedBy: actorID,
	}

	if err := service.store.Upsert(context, setting); err != nil {
		return nil, err
	}

	return setting, nil
}
