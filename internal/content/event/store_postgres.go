// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package event

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ravenstrike/rsf-api/internal/platform/database/schema"
	"github.com/ravenstrike/rsf-api/internal/platform/dberr"
)

// PostgresStore implements [Store] against content.event.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a new Postgres-backed event store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func eventColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentEvent.ID, schema.ContentEvent.Slug, schema.ContentEvent.Title,
		schema.ContentEvent.Description, schema.ContentEvent.Location,
		schema.ContentEvent.StartsAt, schema.ContentEvent.Capacity,
		schema.ContentEvent.IsPublished, schema.ContentEvent.CreatedAt, schema.ContentEvent.UpdatedAt)
}

func scanEvent(row interface{ Scan(dest ...any) error }) (*Event, error) {
	event := &Event{}
	err := row.Scan(
		&event.ID, &event.Slug, &event.Title,
		&event.Description, &event.Location,
		&event.StartsAt, &event.Capacity,
		&event.IsPublished, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (store *PostgresStore) Create(context context.Context, event *Event) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s
	`,
		schema.ContentEvent.Table,
		schema.ContentEvent.ID, schema.ContentEvent.Slug, schema.ContentEvent.Title,
		schema.ContentEvent.Description, schema.ContentEvent.Location,
		schema.ContentEvent.StartsAt, schema.ContentEvent.Capacity, schema.ContentEvent.IsPublished,
		schema.ContentEvent.CreatedAt, schema.ContentEvent.UpdatedAt,
	)

	err := store.db.QueryRow(context, query,
		event.ID, event.Slug, event.Title,
		event.Description, event.Location,
		event.StartsAt, event.Capacity, event.IsPublished,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_event")
	}

	return nil
}

func (store *PostgresStore) FindByID(context context.Context, id string) (*Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		eventColumns(), schema.ContentEvent.Table,
		schema.ContentEvent.ID, schema.ContentEvent.DeletedAt)

	event, err := scanEvent(store.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_event_by_id")
	}
	return event, nil
}

func (store *PostgresStore) FindPublishedBySlug(context context.Context, slug string) (*Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = TRUE AND %s IS NULL`,
		eventColumns(), schema.ContentEvent.Table,
		schema.ContentEvent.Slug, schema.ContentEvent.IsPublished, schema.ContentEvent.DeletedAt)

	event, err := scanEvent(store.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "find_event_by_slug")
	}
	return event, nil
}

func (store *PostgresStore) ListPublished(context context.Context, upcoming bool, limit, offset int) ([]*Event, int, error) {
	var where, order string
	if upcoming {
		where = fmt.Sprintf("WHERE %s = TRUE AND %s IS NULL AND %s > now()",
			schema.ContentEvent.IsPublished, schema.ContentEvent.DeletedAt, schema.ContentEvent.StartsAt)
		order = fmt.Sprintf("ORDER BY %s ASC", schema.ContentEvent.StartsAt)
	} else {
		where = fmt.Sprintf("WHERE %s = TRUE AND %s IS NULL AND %s <= now()",
			schema.ContentEvent.IsPublished, schema.ContentEvent.DeletedAt, schema.ContentEvent.StartsAt)
		order = fmt.Sprintf("ORDER BY %s DESC", schema.ContentEvent.StartsAt)
	}
	return store.list(context, where, order, limit, offset)
}

func (store *PostgresStore) ListAll(context context.Context, limit, offset int) ([]*Event, int, error) {
	where := fmt.Sprintf("WHERE %s IS NULL", schema.ContentEvent.DeletedAt)
	order := fmt.Sprintf("ORDER BY %s DESC", schema.ContentEvent.StartsAt)
	return store.list(context, where, order, limit, offset)
}

func (store *PostgresStore) list(context context.Context, where, order string, limit, offset int) ([]*Event, int, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, schema.ContentEvent.Table, where)

	var total int
	if err := store.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_events")
	}

	listQuery := fmt.Sprintf(`SELECT %s FROM %s %s %s LIMIT $1 OFFSET $2`,
		eventColumns(), schema.ContentEvent.Table, where, order)

	rows, err := store.db.Query(context, listQuery, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_events")
	}
	defer rows.Close()

	events := make([]*Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_event")
		}
		events = append(events, event)
	}

	return events, total, nil
}

func (store *PostgresStore) Update(context context.Context, event *Event) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = now()
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.ContentEvent.Table,
		schema.ContentEvent.Slug, schema.ContentEvent.Title, schema.ContentEvent.Description,
		schema.ContentEvent.Location, schema.ContentEvent.StartsAt,
		schema.ContentEvent.Capacity, schema.ContentEvent.IsPublished,
		schema.ContentEvent.UpdatedAt,
		schema.ContentEvent.ID, schema.ContentEvent.DeletedAt,
	)

	tag, err := store.db.Exec(context, query,
		event.ID, event.Slug, event.Title, event.Description,
		event.Location, event.StartsAt, event.Capacity, event.IsPublished)
	if err != nil {
		return dberr.Wrap(err, "update_event")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (store *PostgresStore) SoftDelete(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = now() WHERE %s = $1 AND %s IS NULL`,
		schema.ContentEvent.Table, schema.ContentEvent.DeletedAt,
		schema.ContentEvent.ID, schema.ContentEvent.DeletedAt)

	tag, err := store.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_event")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
