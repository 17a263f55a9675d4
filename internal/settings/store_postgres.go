// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package settings

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ravenstrike/rsf-api/internal/platform/database/schema"
	"github.com/ravenstrike/rsf-api/internal/platform/dberr"
)

// PostgresStore implements [Store] against system.setting.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a new Postgres-backed settings store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (store *PostgresStore) List(context context.Context) ([]*Setting, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s`,
		schema.SystemSetting.Key, schema.SystemSetting.Value,
		schema.SystemSetting.UpdatedBy, schema.SystemSetting.UpdatedAt,
		schema.SystemSetting.Table)

	rows, err := store.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_settings")
	}
	defer rows.Close()

	stored := make([]*Setting, 0)
	for rows.Next() {
		setting := &Setting{}
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.UpdatedBy, &setting.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_setting")
		}
		stored = append(stored, setting)
	}

	return stored, nil
}

func (store *PostgresStore) Upsert(context context.Context, setting *Setting) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (%s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = now()
		RETURNING %s
	`,
		schema.SystemSetting.Table,
		schema.SystemSetting.Key, schema.SystemSetting.Value,
		schema.SystemSetting.UpdatedBy, schema.SystemSetting.UpdatedAt,
		schema.SystemSetting.Key,
		schema.SystemSetting.Value, schema.SystemSetting.Value,
		schema.SystemSetting.UpdatedBy, schema.SystemSetting.UpdatedBy,
		schema.SystemSetting.UpdatedAt,
		schema.SystemSetting.UpdatedAt,
	)

	err := store.db.QueryRow(context, query, setting.Key, setting.Value, setting.UpdatedBy).
		Scan(&setting.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "upsert_setting")
	}

	return nil
}
