// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package profile

import (
	"context"
	"fmt"

	"github.com/ravenstrike/rsf-api/internal/platform/apperr"
	"github.com/ravenstrike/rsf-api/internal/platform/sec"
	"github.com/ravenstrike/rsf-api/pkg/uuid"
)

// ActivityRecorder is the slice of the moderation subsystem used to mirror
// role changes into the shared activity log.
type ActivityRecorder interface {
	RecordRoleChange(context context.Context, actorID, targetID, oldRole, newRole string)
}

// Service implements the member profile use cases.
type Service struct {
	profiles    Repository
	roleChanges RoleChangeRepository
	activity    ActivityRecorder
}

// NewService constructs a profile [Service].
func NewService(profiles Repository, roleChanges RoleChangeRepository, activity ActivityRecorder) *Service {
	return &Service{
		profiles:    profiles,
		roleChanges: roleChanges,
		activity:    activity,
	}
}

// # Own Profile

// GetProfile returns the full profile of an account.
func (service *Service) GetProfile(context context.Context, accountID string) (*Profile, error) {
	return service.profiles.Find(context, accountID)
}

// UpdateDisplayInput holds the member-editable fields. Nil means unchanged.
type UpdateDisplayInput struct {
	DisplayName *string
	Callsign    *string
	AvatarURL   *string
	Bio         *string
}

/*
UpdateOwn applies partial updates to the caller's display fields.

Description: Role and status are not reachable from this path — they change
only through the role-change and moderation operations.

Parameters:
  - context: context.Context
  - accountID: string
  - input: UpdateDisplayInput

Returns:
  - *Profile: Updated entity
  - error: Retrieval or persistence failures
*/
func (service *Service) UpdateOwn(context context.Context, accountID string, input UpdateDisplayInput) (*Profile, error) {
	profile, err := service.profiles.Find(context, accountID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		profile.DisplayName = *input.DisplayName
	}
	if input.Callsign != nil {
		profile.Callsign = *input.Callsign
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}

	if err := service.profiles.UpdateDisplay(context, profile); err != nil {
		return nil, fmt.Errorf("profile_service_update_failed: %w", err)
	}

	return profile, nil
}

// # Member Administration

// ListMembers returns a filtered page of profiles for the admin panel.
func (service *Service) ListMembers(context context.Context, filter ListFilter, limit, offset int) ([]*Profile, int, error) {
	return service.profiles.List(context, filter, limit, offset)
}

/*
ChangeRole assigns a new role to a member. Superadmin only.

Description: The actor's role is re-read from the store, mirroring the
moderation guard's distrust of token claims. Every successful change appends
a rolechange row and an activity entry.

Parameters:
  - context: context.Context
  - actorID: authenticated caller's account id
  - targetID: member whose role changes
  - newRole: one of user/editor/admin/superadmin (case-insensitive)

Returns:
  - *Profile: Updated entity
  - error: Validation, forbidden, or persistence failures
*/
func (service *Service) ChangeRole(context context.Context, actorID, targetID, newRole string) (*Profile, error) {
	role := sec.ParseRole(newRole)
	if !role.Valid() {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldRole,
			Message: "must be one of: user, editor, admin, superadmin",
		})
	}

	actorRole, err := service.profiles.GetRole(context, actorID)
	if err != nil {
		return nil, err
	}
	if sec.ParseRole(actorRole) != sec.RoleSuperadmin {
		return nil, apperr.Forbidden("Only a superadmin can change roles")
	}

	// A superadmin stripping their own superadmin role would risk locking
	// the team out of role management entirely.
	if actorID == targetID && role != sec.RoleSuperadmin {
		return nil, apperr.Forbidden("You cannot demote your own account")
	}

	target, err := service.profiles.Find(context, targetID)
	if err != nil {
		return nil, err
	}

	oldRole := string(target.Role)
	if sec.ParseRole(oldRole) == role {
		// No-op change: nothing to persist, nothing to log.
		return target, nil
	}

	if err := service.profiles.UpdateRole(context, targetID, string(role)); err != nil {
		return nil, fmt.Errorf("profile_service_role_update_failed: %w", err)
	}

	change := &RoleChange{
		ID:        uuid.New(),
		UserID:    targetID,
		ChangedBy: actorID,
		OldRole:   oldRole,
		NewRole:   string(role),
	}
	if err := service.roleChanges.Append(context, change); err != nil {
		return nil, fmt.Errorf("profile_service_role_history_failed: %w", err)
	}

	service.activity.RecordRoleChange(context, actorID, targetID, oldRole, string(role))

	target.Role = role
	return target, nil
}

// RoleHistory returns the role assignment history of one member, newest first.
func (service *Service) RoleHistory(context context.Context, targetID string) ([]*RoleChange, error) {
	return service.roleChanges.ListForUser(context, targetID)
}
