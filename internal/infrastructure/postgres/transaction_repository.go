package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"budgea/internal/domain/mirror"
)

type TransactionRepository struct {
	db *DB
}

var _ mirror.TransactionRepository = (*TransactionRepository)(nil)

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Upsert creates or updates a transaction. A transaction that comes back
// after being deleted upstream is revived.
func (r *TransactionRepository) Upsert(ctx context.Context, params mirror.UpsertTransactionParams) (bool, error) {
	query := `
		INSERT INTO transactions (
			id, account_id, linked_user_id, date, value, wording, type, category_id, coming, last_update
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			account_id = EXCLUDED.account_id,
			date = EXCLUDED.date,
			value = EXCLUDED.value,
			wording = EXCLUDED.wording,
			type = EXCLUDED.type,
			category_id = EXCLUDED.category_id,
			coming = EXCLUDED.coming,
			deleted = FALSE,
			last_update = EXCLUDED.last_update,
			updated_at = CURRENT_TIMESTAMP
		RETURNING (xmax = 0)
	`

	var created bool
	err := r.db.QueryRowContext(ctx, query,
		params.ID, params.AccountID, params.LinkedUserID, params.Date, params.Value, params.Wording,
		params.Type, nullInt64(params.CategoryID), params.Coming, nullTime(params.LastUpdate),
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert transaction: %w", err)
	}
	return created, nil
}

func (r *TransactionRepository) MarkDeleted(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET deleted = TRUE, updated_at = CURRENT_TIMESTAMP WHERE id = ANY($1) AND NOT deleted`,
		pq.Array(ids),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark transactions deleted: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n, nil
}

// ListByAccount returns the most recent live transactions of an account.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID int64, limit int) ([]*mirror.Transaction, error) {
	query := `
		SELECT id, account_id, linked_user_id, date, value, wording, type, category_id, coming, deleted, last_update
		FROM transactions
		WHERE account_id = $1 AND NOT deleted
		ORDER BY date DESC, id DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []*mirror.Transaction
	for rows.Next() {
		var (
			tx         mirror.Transaction
			categoryID sql.NullInt64
			lastUpdate sql.NullTime
		)
		if err := rows.Scan(
			&tx.ID, &tx.AccountID, &tx.LinkedUserID, &tx.Date, &tx.Value, &tx.Wording, &tx.Type,
			&categoryID, &tx.Coming, &tx.Deleted, &lastUpdate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		tx.CategoryID = int64Ptr(categoryID)
		tx.LastUpdate = timePtr(lastUpdate)
		txs = append(txs, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txs, nil
}
