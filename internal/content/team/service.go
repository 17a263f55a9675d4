// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package team

import (
	"context"
	"log/slog"

	"github.com/ravenstrike/rsf-api/pkg/uuid"
)

// AvatarSigner resolves bucket keys to short-lived GET URLs. Satisfied by
// [storage.Presigner]; nil when no bucket is configured, in which case
// avatars are simply omitted.
type AvatarSigner interface {
	PresignGet(ctx context.Context, key string) (string, error)
}

// Service implements the roster use cases.
type Service struct {
	store  Store
	signer AvatarSigner
	logger *slog.Logger
}

// NewService constructs a team [Service].
func NewService(store Store, signer AvatarSigner, logger *slog.Logger) *Service {
	return &Service{store: store, signer: signer, logger: logger}
}

// ListActive returns the public roster with avatar URLs resolved.
func (service *Service) ListActive(context context.Context) ([]*Member, error) {
	members, err := service.store.ListActive(context)
	if err != nil {
		return nil, err
	}

	service.resolveAvatars(context, members)
	return members, nil
}

// ListAll returns the full roster for the admin view.
func (service *Service) ListAll(context context.Context, limit, offset int) ([]*Member, int, error) {
	members, total, err := service.store.ListAll(context, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	service.resolveAvatars(context, members)
	return members, total, nil
}

func (service *Service) resolveAvatars(context context.Context, members []*Member) {
	if service.signer == nil {
		return
	}

	for _, member := range members {
		if member.AvatarKey == "" {
			continue
		}
		url, err := service.signer.PresignGet(context, member.AvatarKey)
		if err != nil {
			service.logger.Warn("avatar presign failed",
				slog.String("member_id", member.ID),
				slog.String("error", err.Error()))
			continue
		}
		member.AvatarURL = url
	}
}

// CreateInput holds the data for a new roster member.
type CreateInput struct {
	Callsign  string
	FullName  string
	RoleLabel string
	Bio       string
	AvatarKey string
	SortOrder int
	IsActive  bool
}

// Create adds a member to the roster.
func (service *Service) Create(context context.Context, input CreateInput) (*Member, error) {
	member := &Member{
		ID:        uuid.New(),
		Callsign:  input.Callsign,
		FullName:  input.FullName,
		RoleLabel: input.RoleLabel,
		Bio:       input.Bio,
		AvatarKey: input.AvatarKey,
		SortOrder: input.SortOrder,
		IsActive:  input.IsActive,
	}

	if err := service.store.Create(context, member); err != nil {
		return nil, err
	}

	return member, nil
}

// UpdateInput holds the mutable member fields. Nil means unchanged.
type UpdateInput struct {
	Callsign  *string
	FullName  *string
	RoleLabel *string
	Bio       *string
	AvatarKey *string
	SortOrder *int
	IsActive  *bool
}

// Update applies partial updates to a roster member.
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Member, error) {
	member, err := service.store.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.Callsign != nil {
		member.Callsign = *input.Callsign
	}
	if input.FullName != nil {
		member.FullName = *input.FullName
	}
	if input.RoleLabel != nil {
		member.RoleLabel = *input.RoleLabel
	}
	if input.Bio != nil {
		member.Bio = *input.Bio
	}
	if input.AvatarKey != nil {
		member.AvatarKey = *input.AvatarKey
	}
	if input.SortOrder != nil {
		member.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}

	if err := service.store.Update(context, member); err != nil {
		return nil, err
	}

	return member, nil
}

// Delete removes a member from the roster.
func (service *Service) Delete(context context.Context, id string) error {
	return service.store.Delete(context, id)
}
