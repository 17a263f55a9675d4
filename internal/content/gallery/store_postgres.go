// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package gallery

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ravenstrike/rsf-api/internal/platform/database/schema"
	"github.com/ravenstrike/rsf-api/internal/platform/dberr"
)

// PostgresStore implements [Store] against content.galleryitem.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a new Postgres-backed gallery store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func itemColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		schema.ContentGalleryItem.ID, schema.ContentGalleryItem.Title,
		schema.ContentGalleryItem.StorageKey, schema.ContentGalleryItem.MediaType,
		schema.ContentGalleryItem.SortOrder,
		schema.ContentGalleryItem.CreatedAt, schema.ContentGalleryItem.UpdatedAt)
}

func scanItem(row interface{ Scan(dest ...any) error }) (*Item, error) {
	item := &Item{}
	err := row.Scan(
		&item.ID, &item.Title,
		&item.StorageKey, &item.MediaType,
		&item.SortOrder,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (store *PostgresStore) Create(context context.Context, item *Item) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s
	`,
		schema.ContentGalleryItem.Table,
		schema.ContentGalleryItem.ID, schema.ContentGalleryItem.Title,
		schema.ContentGalleryItem.StorageKey, schema.ContentGalleryItem.MediaType,
		schema.ContentGalleryItem.SortOrder,
		schema.ContentGalleryItem.CreatedAt, schema.ContentGalleryItem.UpdatedAt,
	)

	err := store.db.QueryRow(context, query,
		item.ID, item.Title, item.StorageKey, item.MediaType, item.SortOrder,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_gallery_item")
	}

	return nil
}

func (store *PostgresStore) FindByID(context context.Context, id string) (*Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		itemColumns(), schema.ContentGalleryItem.Table,
		schema.ContentGalleryItem.ID, schema.ContentGalleryItem.DeletedAt)

	item, err := scanItem(store.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_gallery_item")
	}
	return item, nil
}

func (store *PostgresStore) List(context context.Context, limit, offset int) ([]*Item, int, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s IS NULL`,
		schema.ContentGalleryItem.Table, schema.ContentGalleryItem.DeletedAt)

	var total int
	if err := store.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_gallery_items")
	}

	listQuery := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s IS NULL
		ORDER BY %s ASC, %s DESC
		LIMIT $1 OFFSET $2
	`,
		itemColumns(), schema.ContentGalleryItem.Table,
		schema.ContentGalleryItem.DeletedAt,
		schema.ContentGalleryItem.SortOrder, schema.ContentGalleryItem.CreatedAt)

	rows, err := store.db.Query(context, listQuery, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_gallery_items")
	}
	defer rows.Close()

	items := make([]*Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_gallery_item")
		}
		items = append(items, item)
	}

	return items, total, nil
}

func (store *PostgresStore) SoftDelete(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = now() WHERE %s = $1 AND %s IS NULL`,
		schema.ContentGalleryItem.Table, schema.ContentGalleryItem.DeletedAt,
		schema.ContentGalleryItem.ID, schema.ContentGalleryItem.DeletedAt)

	tag, err := store.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_gallery_item")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
