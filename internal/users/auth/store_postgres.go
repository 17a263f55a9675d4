// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ravenstrike/rsf-api/internal/platform/database/schema"
	"github.com/ravenstrike/rsf-api/internal/platform/dberr"
)

// # Account Repository

// PostgresAccountRepository implements [AccountRepository] against users.account.
type PostgresAccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new Postgres-backed AccountRepository.
func NewAccountRepository(db *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

// accountColumns is the canonical SELECT column list for hydrating an Account.
func accountColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Email,
		schema.UserAccount.Password, schema.UserAccount.IsVerified,
		schema.UserAccount.BannedUntil, schema.UserAccount.LastSignInAt,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt)
}

// scanAccount hydrates one Account from a row.
func scanAccount(row interface{ Scan(dest ...any) error }) (*Account, error) {
	account := &Account{}
	err := row.Scan(
		&account.ID, &account.Username, &account.Email,
		&account.PasswordHash, &account.IsVerified,
		&account.BannedUntil, &account.LastSignInAt,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		accountColumns(), schema.UserAccount.Table, schema.UserAccount.ID)

	account, err := scanAccount(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_account_by_id")
	}
	return account, nil
}

func (repository *PostgresAccountRepository) FindByEmail(context context.Context, email string) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1)`,
		accountColumns(), schema.UserAccount.Table, schema.UserAccount.Email)

	account, err := scanAccount(repository.db.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "find_account_by_email")
	}
	return account, nil
}

func (repository *PostgresAccountRepository) FindByUsername(context context.Context, username string) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1)`,
		accountColumns(), schema.UserAccount.Table, schema.UserAccount.Username)

	account, err := scanAccount(repository.db.QueryRow(context, query, username))
	if err != nil {
		return nil, dberr.Wrap(err, "find_account_by_username")
	}
	return account, nil
}

func (repository *PostgresAccountRepository) Create(context context.Context, account *Account) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Email,
		schema.UserAccount.Password, schema.UserAccount.IsVerified,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		account.ID, account.Username, account.Email,
		account.PasswordHash, account.IsVerified,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_account")
	}

	return nil
}

func (repository *PostgresAccountRepository) UpdatePassword(context context.Context, accountID, newHash string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = now() WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.Password,
		schema.UserAccount.UpdatedAt, schema.UserAccount.ID)

	tag, err := repository.db.Exec(context, query, accountID, newHash)
	if err != nil {
		return dberr.Wrap(err, "update_account_password")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresAccountRepository) RecordSignIn(context context.Context, accountID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = now() WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.LastSignInAt, schema.UserAccount.ID)

	if _, err := repository.db.Exec(context, query, accountID); err != nil {
		return dberr.Wrap(err, "record_sign_in")
	}
	return nil
}

func (repository *PostgresAccountRepository) MarkVerified(context context.Context, accountID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE, %s = now() WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.IsVerified,
		schema.UserAccount.UpdatedAt, schema.UserAccount.ID)

	tag, err := repository.db.Exec(context, query, accountID)
	if err != nil {
		return dberr.Wrap(err, "mark_account_verified")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// # Session Repository

// PostgresSessionRepository implements [SessionRepository] against users.session.
type PostgresSessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new Postgres-backed SessionRepository.
func NewSessionRepository(db *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (repository *PostgresSessionRepository) Create(context context.Context, session *Session) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`,
		schema.UserSession.Table,
		schema.UserSession.ID, schema.UserSession.UserID, schema.UserSession.TokenHash,
		schema.UserSession.UserAgent, schema.UserSession.IPAddress,
		schema.UserSession.ExpiresAt, schema.UserSession.IsRevoked,
		schema.UserSession.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		session.ID, session.UserID, session.TokenHash,
		session.UserAgent, session.IPAddress,
		session.ExpiresAt, session.IsRevoked,
	).Scan(&session.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_session")
	}

	return nil
}

func (repository *PostgresSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	// Only live sessions qualify: not revoked and not expired.
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE AND %s > now()
	`,
		schema.UserSession.ID, schema.UserSession.UserID, schema.UserSession.TokenHash,
		schema.UserSession.UserAgent, schema.UserSession.IPAddress,
		schema.UserSession.ExpiresAt, schema.UserSession.IsRevoked, schema.UserSession.CreatedAt,
		schema.UserSession.Table,
		schema.UserSession.TokenHash, schema.UserSession.IsRevoked, schema.UserSession.ExpiresAt,
	)

	session := &Session{}
	err := repository.db.QueryRow(context, query, tokenHash).Scan(
		&session.ID, &session.UserID, &session.TokenHash,
		&session.UserAgent, &session.IPAddress,
		&session.ExpiresAt, &session.IsRevoked, &session.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_session_by_token_hash")
	}

	return session, nil
}

func (repository *PostgresSessionRepository) ListActive(context context.Context, userID string) ([]*Session, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE AND %s > now()
		ORDER BY %s DESC
	`,
		schema.UserSession.ID, schema.UserSession.UserID, schema.UserSession.TokenHash,
		schema.UserSession.UserAgent, schema.UserSession.IPAddress,
		schema.UserSession.ExpiresAt, schema.UserSession.IsRevoked, schema.UserSession.CreatedAt,
		schema.UserSession.Table,
		schema.UserSession.UserID, schema.UserSession.IsRevoked, schema.UserSession.ExpiresAt,
		schema.UserSession.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_active_sessions")
	}
	defer rows.Close()

	sessions := make([]*Session, 0)
	for rows.Next() {
		session := &Session{}
		if err := rows.Scan(
			&session.ID, &session.UserID, &session.TokenHash,
			&session.UserAgent, &session.IPAddress,
			&session.ExpiresAt, &session.IsRevoked, &session.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_session")
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func (repository *PostgresSessionRepository) Revoke(context context.Context, sessionID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1`,
		schema.UserSession.Table, schema.UserSession.IsRevoked, schema.UserSession.ID)

	if _, err := repository.db.Exec(context, query, sessionID); err != nil {
		return dberr.Wrap(err, "revoke_session")
	}
	return nil
}

func (repository *PostgresSessionRepository) RevokeAll(context context.Context, userID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1`,
		schema.UserSession.Table, schema.UserSession.IsRevoked, schema.UserSession.UserID)

	if _, err := repository.db.Exec(context, query, userID); err != nil {
		return dberr.Wrap(err, "revoke_all_sessions")
	}
	return nil
}

func (repository *PostgresSessionRepository) RevokeOthers(context context.Context, userID, currentSessionID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1 AND %s <> $2`,
		schema.UserSession.Table, schema.UserSession.IsRevoked,
		schema.UserSession.UserID, schema.UserSession.ID)

	if _, err := repository.db.Exec(context, query, userID, currentSessionID); err != nil {
		return dberr.Wrap(err, "revoke_other_sessions")
	}
	return nil
}

func (repository *PostgresSessionRepository) DeleteExpired(context context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s <= now()`,
		schema.UserSession.Table, schema.UserSession.ExpiresAt)

	if _, err := repository.db.Exec(context, query); err != nil {
		return dberr.Wrap(err, "delete_expired_sessions")
	}
	return nil
}
