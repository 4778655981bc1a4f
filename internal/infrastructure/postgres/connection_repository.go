package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"budgea/internal/domain/mirror"
)

type ConnectionRepository struct {
	db *DB
}

var _ mirror.ConnectionRepository = (*ConnectionRepository)(nil)

func NewConnectionRepository(db *DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

func (r *ConnectionRepository) Upsert(ctx context.Context, state mirror.ConnectionState) error {
	query := `
		INSERT INTO connections (id, linked_user_id, bank_id, bank_name, state, error_message, active, last_update)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			bank_id = EXCLUDED.bank_id,
			bank_name = CASE WHEN EXCLUDED.bank_name = '' THEN connections.bank_name ELSE EXCLUDED.bank_name END,
			state = EXCLUDED.state,
			error_message = EXCLUDED.error_message,
			active = EXCLUDED.active,
			last_update = EXCLUDED.last_update,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, query,
		state.ID, state.LinkedUserID, state.BankID, state.BankName, nullString(state.State),
		nullString(state.ErrorMessage), state.Active, nullTime(state.LastUpdate),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert connection: %w", err)
	}
	return nil
}

func (r *ConnectionRepository) ListByUser(ctx context.Context, linkedUserID int64) ([]*mirror.ConnectionState, error) {
	query := `
		SELECT id, linked_user_id, bank_id, bank_name, state, error_message, active, last_update
		FROM connections
		WHERE linked_user_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, linkedUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	defer rows.Close()

	var states []*mirror.ConnectionState
	for rows.Next() {
		var (
			st         mirror.ConnectionState
			state      sql.NullString
			errMsg     sql.NullString
			lastUpdate sql.NullTime
		)
		if err := rows.Scan(&st.ID, &st.LinkedUserID, &st.BankID, &st.BankName, &state, &errMsg, &st.Active, &lastUpdate); err != nil {
			return nil, fmt.Errorf("failed to scan connection: %w", err)
		}
		st.State = stringPtr(state)
		st.ErrorMessage = stringPtr(errMsg)
		st.LastUpdate = timePtr(lastUpdate)
		states = append(states, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate connections: %w", err)
	}
	return states, nil
}
