// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package team

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ravenstrike/rsf-api/internal/platform/database/schema"
	"github.com/ravenstrike/rsf-api/internal/platform/dberr"
)

// PostgresStore implements [Store] against content.teammember.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a new Postgres-backed roster store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func memberColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentTeamMember.ID, schema.ContentTeamMember.Callsign,
		schema.ContentTeamMember.FullName, schema.ContentTeamMember.RoleLabel,
		schema.ContentTeamMember.Bio, schema.ContentTeamMember.AvatarKey,
		schema.ContentTeamMember.SortOrder, schema.ContentTeamMember.IsActive,
		schema.ContentTeamMember.CreatedAt, schema.ContentTeamMember.UpdatedAt)
}

func scanMember(row interface{ Scan(dest ...any) error }) (*Member, error) {
	member := &Member{}
	err := row.Scan(
		&member.ID, &member.Callsign,
		&member.FullName, &member.RoleLabel,
		&member.Bio, &member.AvatarKey,
		&member.SortOrder, &member.IsActive,
		&member.CreatedAt, &member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (store *PostgresStore) Create(context context.Context, member *Member) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s
	`,
		schema.ContentTeamMember.Table,
		schema.ContentTeamMember.ID, schema.ContentTeamMember.Callsign,
		schema.ContentTeamMember.FullName, schema.ContentTeamMember.RoleLabel,
		schema.ContentTeamMember.Bio, schema.ContentTeamMember.AvatarKey,
		schema.ContentTeamMember.SortOrder, schema.ContentTeamMember.IsActive,
		schema.ContentTeamMember.CreatedAt, schema.ContentTeamMember.UpdatedAt,
	)

	err := store.db.QueryRow(context, query,
		member.ID, member.Callsign, member.FullName, member.RoleLabel,
		member.Bio, member.AvatarKey, member.SortOrder, member.IsActive,
	).Scan(&member.CreatedAt, &member.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_team_member")
	}

	return nil
}

func (store *PostgresStore) FindByID(context context.Context, id string) (*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		memberColumns(), schema.ContentTeamMember.Table, schema.ContentTeamMember.ID)

	member, err := scanMember(store.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_team_member")
	}
	return member, nil
}

func (store *PostgresStore) ListActive(context context.Context) ([]*Member, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = TRUE
		ORDER BY %s ASC, %s ASC
	`,
		memberColumns(), schema.ContentTeamMember.Table,
		schema.ContentTeamMember.IsActive,
		schema.ContentTeamMember.SortOrder, schema.ContentTeamMember.Callsign)

	rows, err := store.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_active_members")
	}
	defer rows.Close()

	members := make([]*Member, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_team_member")
		}
		members = append(members, member)
	}

	return members, nil
}

func (store *PostgresStore) ListAll(context context.Context, limit, offset int) ([]*Member, int, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.ContentTeamMember.Table)

	var total int
	if err := store.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_team_members")
	}

	listQuery := fmt.Sprintf(`
		SELECT %s FROM %s
		ORDER BY %s ASC, %s ASC
		LIMIT $1 OFFSET $2
	`,
		memberColumns(), schema.ContentTeamMember.Table,
		schema.ContentTeamMember.SortOrder, schema.ContentTeamMember.Callsign)

	rows, err := store.db.Query(context, listQuery, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_team_members")
	}
	defer rows.Close()

	members := make([]*Member, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_team_member")
		}
		members = append(members, member)
	}

	return members, total, nil
}

func (store *PostgresStore) Update(context context.Context, member *Member) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = now()
		WHERE %s = $1
	`,
		schema.ContentTeamMember.Table,
		schema.ContentTeamMember.Callsign, schema.ContentTeamMember.FullName,
		schema.ContentTeamMember.RoleLabel, schema.ContentTeamMember.Bio,
		schema.ContentTeamMember.AvatarKey, schema.ContentTeamMember.SortOrder,
		schema.ContentTeamMember.IsActive,
		schema.ContentTeamMember.UpdatedAt,
		schema.ContentTeamMember.ID,
	)

	tag, err := store.db.Exec(context, query,
		member.ID, member.Callsign, member.FullName, member.RoleLabel,
		member.Bio, member.AvatarKey, member.SortOrder, member.IsActive)
	if err != nil {
		return dberr.Wrap(err, "update_team_member")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (store *PostgresStore) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentTeamMember.Table, schema.ContentTeamMember.ID)

	tag, err := store.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_team_member")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
