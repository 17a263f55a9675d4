// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package article

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ravenstrike/rsf-api/internal/platform/database/schema"
	"github.com/ravenstrike/rsf-api/internal/platform/dberr"
)

// PostgresStore implements [Store] against content.article.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a new Postgres-backed article store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func articleColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentArticle.ID, schema.ContentArticle.Slug, schema.ContentArticle.Title,
		schema.ContentArticle.Excerpt, schema.ContentArticle.Body, schema.ContentArticle.CoverURL,
		schema.ContentArticle.IsPublished, schema.ContentArticle.AuthorID,
		schema.ContentArticle.PublishedAt, schema.ContentArticle.CreatedAt, schema.ContentArticle.UpdatedAt)
}

func scanArticle(row interface{ Scan(dest ...any) error }) (*Article, error) {
	article := &Article{}
	err := row.Scan(
		&article.ID, &article.Slug, &article.Title,
		&article.Excerpt, &article.Body, &article.CoverURL,
		&article.IsPublished, &article.AuthorID,
		&article.PublishedAt, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return article, nil
}

func (store *PostgresStore) Create(context context.Context, article *Article) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s, %s
	`,
		schema.ContentArticle.Table,
		schema.ContentArticle.ID, schema.ContentArticle.Slug, schema.ContentArticle.Title,
		schema.ContentArticle.Excerpt, schema.ContentArticle.Body, schema.ContentArticle.CoverURL,
		schema.ContentArticle.IsPublished, schema.ContentArticle.AuthorID, schema.ContentArticle.PublishedAt,
		schema.ContentArticle.CreatedAt, schema.ContentArticle.UpdatedAt,
	)

	err := store.db.QueryRow(context, query,
		article.ID, article.Slug, article.Title,
		article.Excerpt, article.Body, article.CoverURL,
		article.IsPublished, article.AuthorID, article.PublishedAt,
	).Scan(&article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_article")
	}

	return nil
}

func (store *PostgresStore) FindByID(context context.Context, id string) (*Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		articleColumns(), schema.ContentArticle.Table,
		schema.ContentArticle.ID, schema.ContentArticle.DeletedAt)

	article, err := scanArticle(store.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_article_by_id")
	}
	return article, nil
}

func (store *PostgresStore) FindPublishedBySlug(context context.Context, slug string) (*Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = TRUE AND %s IS NULL`,
		articleColumns(), schema.ContentArticle.Table,
		schema.ContentArticle.Slug, schema.ContentArticle.IsPublished, schema.ContentArticle.DeletedAt)

	article, err := scanArticle(store.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "find_article_by_slug")
	}
	return article, nil
}

func (store *PostgresStore) ListPublished(context context.Context, limit, offset int) ([]*Article, int, error) {
	where := fmt.Sprintf("WHERE %s = TRUE AND %s IS NULL",
		schema.ContentArticle.IsPublished, schema.ContentArticle.DeletedAt)
	order := fmt.Sprintf("ORDER BY %s DESC", schema.ContentArticle.PublishedAt)
	return store.list(context, where, order, limit, offset)
}

func (store *PostgresStore) ListAll(context context.Context, limit, offset int) ([]*Article, int, error) {
	where := fmt.Sprintf("WHERE %s IS NULL", schema.ContentArticle.DeletedAt)
	order := fmt.Sprintf("ORDER BY %s DESC", schema.ContentArticle.CreatedAt)
	return store.list(context, where, order, limit, offset)
}

func (store *PostgresStore) list(context context.Context, where, order string, limit, offset int) ([]*Article, int, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, schema.ContentArticle.Table, where)

	var total int
	if err := store.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_articles")
	}

	listQuery := fmt.Sprintf(`SELECT %s FROM %s %s %s LIMIT $1 OFFSET $2`,
		articleColumns(), schema.ContentArticle.Table, where, order)

	rows, err := store.db.Query(context, listQuery, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_articles")
	}
	defer rows.Close()

	articles := make([]*Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_article")
		}
		articles = append(articles, article)
	}

	return articles, total, nil
}

func (store *PostgresStore) Update(context context.Context, article *Article) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = now()
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.ContentArticle.Table,
		schema.ContentArticle.Slug, schema.ContentArticle.Title, schema.ContentArticle.Excerpt,
		schema.ContentArticle.Body, schema.ContentArticle.CoverURL,
		schema.ContentArticle.IsPublished, schema.ContentArticle.PublishedAt,
		schema.ContentArticle.UpdatedAt,
		schema.ContentArticle.ID, schema.ContentArticle.DeletedAt,
	)

	tag, err := store.db.Exec(context, query,
		article.ID, article.Slug, article.Title, article.Excerpt,
		article.Body, article.CoverURL, article.IsPublished, article.PublishedAt)
	if err != nil {
		return dberr.Wrap(err, "update_article")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (store *PostgresStore) SoftDelete(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = now() WHERE %s = $1 AND %s IS NULL`,
		schema.ContentArticle.Table, schema.ContentArticle.DeletedAt,
		schema.ContentArticle.ID, schema.ContentArticle.DeletedAt)

	tag, err := store.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_article")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
