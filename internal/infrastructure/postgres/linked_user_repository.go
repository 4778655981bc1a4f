package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"budgea/internal/domain/mirror"
)

// TokenCipher encrypts Budgea tokens at rest.
type TokenCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

type LinkedUserRepository struct {
	db     *DB
	cipher TokenCipher
}

var _ mirror.UserRepository = (*LinkedUserRepository)(nil)

func NewLinkedUserRepository(db *DB, cipher TokenCipher) *LinkedUserRepository {
	return &LinkedUserRepository{db: db, cipher: cipher}
}

const linkedUserColumns = `id, budgea_user_id, label, token_encrypted, last_transaction_sync, created_at, updated_at`

// Create links a Budgea user. Linking an already known user replaces its
// label and token.
func (r *LinkedUserRepository) Create(ctx context.Context, budgeaUserID int64, label, token string) (*mirror.LinkedUser, error) {
	encrypted, err := r.cipher.Encrypt(token)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt token: %w", err)
	}

	query := `
		INSERT INTO linked_users (budgea_user_id, label, token_encrypted)
		VALUES ($1, $2, $3)
		ON CONFLICT (budgea_user_id) DO UPDATE SET
			label = EXCLUDED.label,
			token_encrypted = EXCLUDED.token_encrypted,
			updated_at = CURRENT_TIMESTAMP
		RETURNING ` + linkedUserColumns

	u, err := r.scan(r.db.QueryRowContext(ctx, query, budgeaUserID, label, encrypted))
	if err != nil {
		return nil, fmt.Errorf("failed to create linked user: %w", err)
	}
	return u, nil
}

func (r *LinkedUserRepository) GetByID(ctx context.Context, id int64) (*mirror.LinkedUser, error) {
	query := `SELECT ` + linkedUserColumns + ` FROM linked_users WHERE id = $1`

	u, err := r.scan(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mirror.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get linked user: %w", err)
	}
	return u, nil
}

func (r *LinkedUserRepository) ListWithToken(ctx context.Context) ([]*mirror.LinkedUser, error) {
	query := `
		SELECT ` + linkedUserColumns + `
		FROM linked_users
		WHERE token_encrypted IS NOT NULL AND token_encrypted <> ''
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked users: %w", err)
	}
	defer rows.Close()

	var users []*mirror.LinkedUser
	for rows.Next() {
		u, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan linked user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate linked users: %w", err)
	}
	return users, nil
}

func (r *LinkedUserRepository) ClearToken(ctx context.Context, id int64) error {
	return r.exec(ctx, "clear token",
		`UPDATE linked_users SET token_encrypted = NULL, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
}

func (r *LinkedUserRepository) UpdateLastTransactionSync(ctx context.Context, id int64, at time.Time) error {
	return r.exec(ctx, "update last transaction sync",
		`UPDATE linked_users SET last_transaction_sync = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id, at)
}

func (r *LinkedUserRepository) exec(ctx context.Context, what, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return mirror.ErrUserNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *LinkedUserRepository) scan(row scanner) (*mirror.LinkedUser, error) {
	var (
		u        mirror.LinkedUser
		token    sql.NullString
		lastSync sql.NullTime
	)
	if err := row.Scan(&u.ID, &u.BudgeaUserID, &u.Label, &token, &lastSync, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.LastTransactionSync = timePtr(lastSync)
	if token.Valid && token.String != "" {
		plain, err := r.cipher.Decrypt(token.String)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt token of linked user %d: %w", u.ID, err)
		}
		u.Token = &plain
	}
	return &u, nil
}
