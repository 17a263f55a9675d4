// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package profile

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ravenstrike/rsf-api/internal/platform/database/schema"
	"github.com/ravenstrike/rsf-api/internal/platform/dberr"
	"github.com/ravenstrike/rsf-api/internal/platform/sec"
)

// # Profile Repository

// PostgresRepository implements [Repository] against users.profile.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres-backed profile Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func profileColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.UserProfile.ID, schema.UserProfile.DisplayName, schema.UserProfile.Callsign,
		schema.UserProfile.AvatarURL, schema.UserProfile.Bio, schema.UserProfile.Role,
		schema.UserProfile.Status, schema.UserProfile.CreatedAt, schema.UserProfile.UpdatedAt)
}

func scanProfile(row interface{ Scan(dest ...any) error }) (*Profile, error) {
	profile := &Profile{}
	err := row.Scan(
		&profile.ID, &profile.DisplayName, &profile.Callsign,
		&profile.AvatarURL, &profile.Bio, &profile.Role,
		&profile.Status, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (repository *PostgresRepository) Find(context context.Context, id string) (*Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		profileColumns(), schema.UserProfile.Table, schema.UserProfile.ID)

	profile, err := scanProfile(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_profile")
	}
	return profile, nil
}

func (repository *PostgresRepository) CreateDefault(context context.Context, accountID, displayName, callsign string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
	`,
		schema.UserProfile.Table,
		schema.UserProfile.ID, schema.UserProfile.DisplayName, schema.UserProfile.Callsign,
		schema.UserProfile.Role, schema.UserProfile.Status,
	)

	_, err := repository.db.Exec(context, query,
		accountID, displayName, callsign, string(sec.RoleUser), "active")
	if err != nil {
		return dberr.Wrap(err, "create_default_profile")
	}

	return nil
}

func (repository *PostgresRepository) GetRole(context context.Context, accountID string) (string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.UserProfile.Role, schema.UserProfile.Table, schema.UserProfile.ID)

	var role string
	if err := repository.db.QueryRow(context, query, accountID).Scan(&role); err != nil {
		return "", dberr.Wrap(err, "get_profile_role")
	}

	return role, nil
}

func (repository *PostgresRepository) UpdateDisplay(context context.Context, profile *Profile) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = now()
		WHERE %s = $1
	`,
		schema.UserProfile.Table,
		schema.UserProfile.DisplayName, schema.UserProfile.Callsign,
		schema.UserProfile.AvatarURL, schema.UserProfile.Bio,
		schema.UserProfile.UpdatedAt, schema.UserProfile.ID,
	)

	tag, err := repository.db.Exec(context, query,
		profile.ID, profile.DisplayName, profile.Callsign, profile.AvatarURL, profile.Bio)
	if err != nil {
		return dberr.Wrap(err, "update_profile_display")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) UpdateRole(context context.Context, accountID, role string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = now() WHERE %s = $1`,
		schema.UserProfile.Table, schema.UserProfile.Role,
		schema.UserProfile.UpdatedAt, schema.UserProfile.ID)

	tag, err := repository.db.Exec(context, query, accountID, role)
	if err != nil {
		return dberr.Wrap(err, "update_profile_role")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) List(context context.Context, filter ListFilter, limit, offset int) ([]*Profile, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	argPos := 1

	if filter.Role != "" {
		where += fmt.Sprintf(" AND %s = $%d", schema.UserProfile.Role, argPos)
		args = append(args, filter.Role)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND %s = $%d", schema.UserProfile.Status, argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Query != "" {
		where += fmt.Sprintf(" AND (%s ILIKE $%d OR %s ILIKE $%d)",
			schema.UserProfile.DisplayName, argPos, schema.UserProfile.Callsign, argPos)
		args = append(args, "%"+filter.Query+"%")
		argPos++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, schema.UserProfile.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_profiles")
	}

	listQuery := fmt.Sprintf(`
		SELECT %s FROM %s %s
		ORDER BY %s ASC
		LIMIT $%d OFFSET $%d
	`,
		profileColumns(), schema.UserProfile.Table, where,
		schema.UserProfile.CreatedAt, argPos, argPos+1,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, listQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_profiles")
	}
	defer rows.Close()

	profiles := make([]*Profile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_profile")
		}
		profiles = append(profiles, profile)
	}

	return profiles, total, nil
}

// # Role History Repository

// PostgresRoleChangeRepository implements [RoleChangeRepository] against users.rolechange.
type PostgresRoleChangeRepository struct {
	db *pgxpool.Pool
}

// NewRoleChangeRepository creates a new Postgres-backed RoleChangeRepository.
func NewRoleChangeRepository(db *pgxpool.Pool) *PostgresRoleChangeRepository {
	return &PostgresRoleChangeRepository{db: db}
}

func (repository *PostgresRoleChangeRepository) Append(context context.Context, change *RoleChange) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`,
		schema.UserRoleChange.Table,
		schema.UserRoleChange.ID, schema.UserRoleChange.UserID, schema.UserRoleChange.ChangedBy,
		schema.UserRoleChange.OldRole, schema.UserRoleChange.NewRole,
		schema.UserRoleChange.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		change.ID, change.UserID, change.ChangedBy, change.OldRole, change.NewRole,
	).Scan(&change.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "append_role_change")
	}

	return nil
}

func (repository *PostgresRoleChangeRepository) ListForUser(context context.Context, userID string) ([]*RoleChange, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
	`,
		schema.UserRoleChange.ID, schema.UserRoleChange.UserID, schema.UserRoleChange.ChangedBy,
		schema.UserRoleChange.OldRole, schema.UserRoleChange.NewRole, schema.UserRoleChange.CreatedAt,
		schema.UserRoleChange.Table,
		schema.UserRoleChange.UserID,
		schema.UserRoleChange.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_role_changes")
	}
	defer rows.Close()

	changes := make([]*RoleChange, 0)
	for rows.Next() {
		change := &RoleChange{}
		if err := rows.Scan(
			&change.ID, &change.UserID, &change.ChangedBy,
			&change.OldRole, &change.NewRole, &change.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_role_change")
		}
		changes = append(changes, change)
	}

	return changes, nil
}
