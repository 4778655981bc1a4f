package mirror

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, budgeaUserID int64, label, token string) (*LinkedUser, error)
	GetByID(ctx context.Context, id int64) (*LinkedUser, error)
	ListWithToken(ctx context.Context) ([]*LinkedUser, error)
	ClearToken(ctx context.Context, id int64) error
	UpdateLastTransactionSync(ctx context.Context, id int64, at time.Time) error
}

type AccountRepository interface {
	// Upsert reports whether the account was created.
	Upsert(ctx context.Context, params UpsertAccountParams) (bool, error)
	ListByUser(ctx context.Context, linkedUserID int64) ([]*Account, error)
}

type TransactionRepository interface {
	// Upsert reports whether the transaction was created.
	Upsert(ctx context.Context, params UpsertTransactionParams) (bool, error)
	// MarkDeleted flags the given transactions and returns how many were live.
	MarkDeleted(ctx context.Context, ids []int64) (int64, error)
	ListByAccount(ctx context.Context, accountID int64, limit int) ([]*Transaction, error)
}

type ConnectionRepository interface {
	Upsert(ctx context.Context, state ConnectionState) error
	ListByUser(ctx context.Context, linkedUserID int64) ([]*ConnectionState, error)
}
