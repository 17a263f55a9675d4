// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package moderation

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ravenstrike/rsf-api/internal/platform/database/schema"
	"github.com/ravenstrike/rsf-api/internal/platform/dberr"
)

// # Account Store

// PostgresAccountStore implements [AccountStore] against users.account.
type PostgresAccountStore struct {
	db *pgxpool.Pool
}

// NewPostgresAccountStore constructs a Postgres-backed account store.
func NewPostgresAccountStore(db *pgxpool.Pool) *PostgresAccountStore {
	return &PostgresAccountStore{db: db}
}

func (store *PostgresAccountStore) Find(context context.Context, id string) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Email,
		schema.UserAccount.BannedUntil, schema.UserAccount.LastSignInAt, schema.UserAccount.CreatedAt,
		schema.UserAccount.Table, schema.UserAccount.ID)

	account := &Account{}
	err := store.db.QueryRow(context, query, id).Scan(
		&account.ID, &account.Username, &account.Email,
		&account.BannedUntil, &account.LastSignInAt, &account.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_account")
	}

	return account, nil
}

func (store *PostgresAccountStore) SetSuspension(context context.Context, id string, until *time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = now() WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.BannedUntil,
		schema.UserAccount.UpdatedAt, schema.UserAccount.ID)

	tag, err := store.db.Exec(context, query, id, until)
	if err != nil {
		return dberr.Wrap(err, "set_account_suspension")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// # Profile Store

// PostgresProfileStore implements [ProfileStore] against users.profile.
type PostgresProfileStore struct {
	db *pgxpool.Pool
}

// NewPostgresProfileStore constructs a Postgres-backed profile store.
func NewPostgresProfileStore(db *pgxpool.Pool) *PostgresProfileStore {
	return &PostgresProfileStore{db: db}
}

func (store *PostgresProfileStore) Find(context context.Context, id string) (*Profile, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.UserProfile.ID, schema.UserProfile.DisplayName, schema.UserProfile.Callsign,
		schema.UserProfile.AvatarURL, schema.UserProfile.Bio, schema.UserProfile.Role,
		schema.UserProfile.Status, schema.UserProfile.CreatedAt, schema.UserProfile.UpdatedAt,
		schema.UserProfile.Table, schema.UserProfile.ID)

	profile := &Profile{}
	err := store.db.QueryRow(context, query, id).Scan(
		&profile.ID, &profile.DisplayName, &profile.Callsign,
		&profile.AvatarURL, &profile.Bio, &profile.Role,
		&profile.Status, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_profile")
	}

	return profile, nil
}

func (store *PostgresProfileStore) SetStatus(context context.Context, id string, status string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = now() WHERE %s = $1`,
		schema.UserProfile.Table, schema.UserProfile.Status,
		schema.UserProfile.UpdatedAt, schema.UserProfile.ID)

	tag, err := store.db.Exec(context, query, id, status)
	if err != nil {
		return dberr.Wrap(err, "set_profile_status")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// # Activity Store

// PostgresActivityStore implements [ActivityStore] against system.activitylog.
type PostgresActivityStore struct {
	db *pgxpool.Pool
}

// NewPostgresActivityStore constructs a Postgres-backed activity store.
func NewPostgresActivityStore(db *pgxpool.Pool) *PostgresActivityStore {
	return &PostgresActivityStore{db: db}
}

func (store *PostgresActivityStore) Append(context context.Context, entry *ActivityEntry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`,
		schema.SystemActivityLog.Table,
		schema.SystemActivityLog.ID, schema.SystemActivityLog.ActorID, schema.SystemActivityLog.Action,
		schema.SystemActivityLog.TargetType, schema.SystemActivityLog.TargetID, schema.SystemActivityLog.Detail,
		schema.SystemActivityLog.CreatedAt,
	)

	err := store.db.QueryRow(context, query,
		entry.ID, entry.ActorID, entry.Action,
		entry.TargetType, entry.TargetID, entry.Detail,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "append_activity")
	}

	return nil
}

func (store *PostgresActivityStore) List(context context.Context, filter ActivityFilter, limit, offset int) ([]*ActivityEntry, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	argPos := 1

	if filter.Action != "" {
		where += fmt.Sprintf(" AND %s = $%d", schema.SystemActivityLog.Action, argPos)
		args = append(args, filter.Action)
		argPos++
	}
	if filter.ActorID != "" {
		where += fmt.Sprintf(" AND %s = $%d", schema.SystemActivityLog.ActorID, argPos)
		args = append(args, filter.ActorID)
		argPos++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, schema.SystemActivityLog.Table, where)

	var total int
	if err := store.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_activity")
	}

	listQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s %s
		ORDER BY %s DESC
		LIMIT $%d OFFSET $%d
	`,
		schema.SystemActivityLog.ID, schema.SystemActivityLog.ActorID, schema.SystemActivityLog.Action,
		schema.SystemActivityLog.TargetType, schema.SystemActivityLog.TargetID, schema.SystemActivityLog.Detail,
		schema.SystemActivityLog.CreatedAt,
		schema.SystemActivityLog.Table, where,
		schema.SystemActivityLog.CreatedAt, argPos, argPos+1,
	)
	args = append(args, limit, offset)

	rows, err := store.db.Query(context, listQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_activity")
	}
	defer rows.Close()

	entries := make([]*ActivityEntry, 0)
	for rows.Next() {
		entry := &ActivityEntry{}
		if err := rows.Scan(
			&entry.ID, &entry.ActorID, &entry.Action,
			&entry.TargetType, &entry.TargetID, &entry.Detail,
			&entry.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_activity")
		}
		entries = append(entries, entry)
	}

	return entries, total, nil
}
