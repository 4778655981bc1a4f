package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"budgea/internal/domain/mirror"
)

type AccountRepository struct {
	db *DB
}

var _ mirror.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Upsert creates or updates an account by its Budgea id.
func (r *AccountRepository) Upsert(ctx context.Context, params mirror.UpsertAccountParams) (bool, error) {
	query := `
		INSERT INTO accounts (
			id, linked_user_id, connection_id, name, type, currency, balance, iban, disabled, last_update
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			connection_id = EXCLUDED.connection_id,
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			currency = EXCLUDED.currency,
			balance = EXCLUDED.balance,
			iban = EXCLUDED.iban,
			disabled = EXCLUDED.disabled,
			last_update = EXCLUDED.last_update,
			updated_at = CURRENT_TIMESTAMP
		RETURNING (xmax = 0)
	`

	var created bool
	err := r.db.QueryRowContext(ctx, query,
		params.ID, params.LinkedUserID, nullInt64(params.ConnectionID), params.Name, params.Type,
		params.Currency, params.Balance, nullString(params.IBAN), params.Disabled, nullTime(params.LastUpdate),
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert account: %w", err)
	}
	return created, nil
}

func (r *AccountRepository) ListByUser(ctx context.Context, linkedUserID int64) ([]*mirror.Account, error) {
	query := `
		SELECT id, linked_user_id, connection_id, name, type, currency, balance, iban, disabled,
		       last_update, created_at, updated_at
		FROM accounts
		WHERE linked_user_id = $1
		ORDER BY name, id
	`

	rows, err := r.db.QueryContext(ctx, query, linkedUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*mirror.Account
	for rows.Next() {
		var (
			a            mirror.Account
			connectionID sql.NullInt64
			iban         sql.NullString
			lastUpdate   sql.NullTime
		)
		if err := rows.Scan(
			&a.ID, &a.LinkedUserID, &connectionID, &a.Name, &a.Type, &a.Currency, &a.Balance, &iban,
			&a.Disabled, &lastUpdate, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		a.ConnectionID = int64Ptr(connectionID)
		a.IBAN = stringPtr(iban)
		a.LastUpdate = timePtr(lastUpdate)
		accounts = append(accounts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}
