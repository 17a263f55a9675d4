// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ravenstrike/rsf-api/internal/platform/apperr"
	"github.com/ravenstrike/rsf-api/internal/platform/constants"
	"github.com/ravenstrike/rsf-api/internal/platform/metrics"
	"github.com/ravenstrike/rsf-api/internal/platform/sec"
	"github.com/ravenstrike/rsf-api/internal/platform/validate"
	"github.com/ravenstrike/rsf-api/pkg/uuid"
)

// Service implements the privileged moderation use cases.
//
// # Review Process
//
// Changes to the guard rules or the dual-store write sequence must be
// reviewed by whoever owns the admin panel — the UI surfaces these error
// messages verbatim.
type Service struct {
	accounts AccountStore
	profiles ProfileStore
	activity ActivityStore
	logger   *slog.Logger
}

// NewService constructs a moderation [Service] with its store dependencies.
func NewService(accounts AccountStore, profiles ProfileStore, activity ActivityStore, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		profiles: profiles,
		activity: activity,
		logger:   logger,
	}
}

// # Ban

/*
Ban suspends the target account: writes the far-future suspension marker to
the account store, then flips the profile status to suspended.

Description: Both the caller's and the target's roles are read fresh from
the profile store — never from the caller's token — so revoked privileges
take effect immediately.

Parameters:
  - context: context.Context
  - actorID: authenticated caller's account id
  - targetID: account to suspend
  - reason: optional free-text, echoed back and recorded in the activity log

Returns:
  - error: validation, forbidden, or downstream failures naming the failed step
*/
func (service *Service) Ban(context context.Context, actorID, targetID, reason string) error {
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return validate.RequiredError(FieldUserID, "Target user id is required")
	}

	// Resolve both roles from the profile store
	requesterRole, err := service.resolveRole(context, actorID)
	if err != nil {
		return err
	}
	targetRole, err := service.resolveRole(context, targetID)
	if err != nil {
		return err
	}

	// Apply the shared guard
	if err := CanBan(requesterRole, targetRole); err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("ban", "forbidden").Inc()
		return err
	}

	// Write 1: account suspension marker (authentication store).
	// The sentinel is a fixed instant so a retried ban writes the same value.
	until := constants.SuspendedUntil
	if err := service.accounts.SetSuspension(context, targetID, &until); err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("ban", "error").Inc()
		return wrapStep("Account suspension write", err)
	}

	// Write 2: profile status (application store). No rollback of write 1 on
	// failure — both writes are idempotent, the caller retries the whole
	// operation and the stores converge.
	if err := service.profiles.SetStatus(context, targetID, StatusSuspended); err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("ban", "error").Inc()
		metrics.ModerationPartialWrites.WithLabelValues("ban", "profile_status").Inc()
		return wrapStep("Profile status write", err)
	}

	service.recordActivity(context, actorID, ActionBan, targetID, reason)
	metrics.ModerationActionsTotal.WithLabelValues("ban", "allowed").Inc()

	service.logger.Info("user_banned",
		slog.String("actor_id", actorID),
		slog.String("target_id", targetID),
		slog.String("target_role", string(targetRole)),
	)
	return nil
}

// # Unban

/*
Unban lifts a suspension: clears the account's suspension marker, then flips
the profile status back to active.

Description: Any admin or superadmin may unban — the guard applies no peer
restriction on this path.

Parameters:
  - context: context.Context
  - actorID: authenticated caller's account id
  - targetID: account to restore

Returns:
  - error: validation, forbidden, or downstream failures naming the failed step
*/
func (service *Service) Unban(context context.Context, actorID, targetID string) error {
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return validate.RequiredError(FieldUserID, "Target user id is required")
	}

	requesterRole, err := service.resolveRole(context, actorID)
	if err != nil {
		return err
	}

	if err := CanUnban(requesterRole); err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("unban", "forbidden").Inc()
		return err
	}

	// Write 1: clear the suspension marker (nil = not suspended)
	if err := service.accounts.SetSuspension(context, targetID, nil); err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("unban", "error").Inc()
		return wrapStep("Account suspension clear", err)
	}

	// Write 2: profile status back to active
	if err := service.profiles.SetStatus(context, targetID, StatusActive); err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("unban", "error").Inc()
		metrics.ModerationPartialWrites.WithLabelValues("unban", "profile_status").Inc()
		return wrapStep("Profile status write", err)
	}

	service.recordActivity(context, actorID, ActionUnban, targetID, "")
	metrics.ModerationActionsTotal.WithLabelValues("unban", "allowed").Inc()

	service.logger.Info("user_unbanned",
		slog.String("actor_id", actorID),
		slog.String("target_id", targetID),
	)
	return nil
}

// # User Detail Lookup

/*
UserDetails returns the merged account-plus-profile record for a target.

Description: Superadmin only. The merge starts from the profile row and
overlays the account fields, so account values win on any name collision.

Parameters:
  - context: context.Context
  - actorID: authenticated caller's account id
  - targetID: account to inspect

Returns:
  - map[string]any: merged record
  - error: validation, forbidden, or propagated lookup failures
*/
func (service *Service) UserDetails(context context.Context, actorID, targetID string) (map[string]any, error) {
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return nil, validate.RequiredError(FieldUserID, "Target user id is required")
	}

	requesterRole, err := service.resolveRole(context, actorID)
	if err != nil {
		return nil, err
	}

	if err := CanViewDetails(requesterRole); err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("detail_lookup", "forbidden").Inc()
		return nil, err
	}

	// Not-found from either store propagates as-is.
	profile, err := service.profiles.Find(context, targetID)
	if err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("detail_lookup", "error").Inc()
		return nil, err
	}

	account, err := service.accounts.Find(context, targetID)
	if err != nil {
		metrics.ModerationActionsTotal.WithLabelValues("detail_lookup", "error").Inc()
		return nil, err
	}

	// Profile first, account overlay: account fields take precedence.
	merged := map[string]any{
		"id":           profile.ID,
		"display_name": profile.DisplayName,
		"callsign":     profile.Callsign,
		"avatar_url":   profile.AvatarURL,
		"bio":          profile.Bio,
		"role":         profile.Role,
		"status":       profile.Status,
		"updated_at":   profile.UpdatedAt,
	}
	merged["id"] = account.ID
	merged["username"] = account.Username
	merged["email"] = account.Email
	merged["created_at"] = account.CreatedAt
	merged["last_sign_in_at"] = account.LastSignInAt
	merged["banned_until"] = account.BannedUntil
	merged["suspended"] = account.Suspended()

	metrics.ModerationActionsTotal.WithLabelValues("detail_lookup", "allowed").Inc()
	return merged, nil
}

// # Activity Log

// ListActivity returns a filtered page of the privileged-action log,
// newest first. Role enforcement happens at the route level (admin+).
func (service *Service) ListActivity(context context.Context, filter ActivityFilter, limit, offset int) ([]*ActivityEntry, int, error) {
	return service.activity.List(context, filter, limit, offset)
}

// RecordRoleChange appends a role-change entry on behalf of the profile
// service, keeping the activity taxonomy in one place.
func (service *Service) RecordRoleChange(context context.Context, actorID, targetID, oldRole, newRole string) {
	service.recordActivity(context, actorID, ActionRoleChange, targetID,
		fmt.Sprintf("%s -> %s", oldRole, newRole))
}

// # Internals

// resolveRole loads a user's role from the profile store.
//
// A missing profile resolves to the unranked zero role rather than an error:
// per the guard's contract an unknown role must fail every privilege check,
// and a ban target without a profile must not short-circuit before the
// requester's own authorization is judged.
func (service *Service) resolveRole(context context.Context, userID string) (sec.Role, error) {
	if userID == "" {
		return "", apperr.Unauthorized("Authentication required")
	}

	profile, err := service.profiles.Find(context, userID)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
			return "", nil
		}
		return "", wrapStep("Role lookup", err)
	}

	return sec.ParseRole(string(profile.Role)), nil
}

// recordActivity appends to the audit log without failing the operation.
// The moderation result has already been committed; a lost log line is
// logged loudly but must not convert a successful ban into a 500.
func (service *Service) recordActivity(context context.Context, actorID, action, targetID, detail string) {
	entry := &ActivityEntry{
		ID:         uuid.New(),
		ActorID:    actorID,
		Action:     action,
		TargetType: "user",
		TargetID:   targetID,
		Detail:     detail,
	}

	if err := service.activity.Append(context, entry); err != nil {
		service.logger.Error("activity_append_failed",
			slog.String("action", action),
			slog.String("target_id", targetID),
			slog.Any("error", err),
		)
	}
}

// wrapStep converts a store error into a step-named downstream error,
// passing client-safe 4xx errors (e.g. NotFound) through untouched.
func wrapStep(step string, err error) error {
	if ae := apperr.As(err); ae != nil && ae.HTTPStatus < 500 {
		return err
	}
	return apperr.Downstream(step, err)
}
