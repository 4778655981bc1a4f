package mirror

import (
	"context"
	"time"

	"budgea/pkg/budgea"
)

type MockClient struct {
	GetUserFunc          func(ctx context.Context, token string) (*budgea.User, error)
	ExchangeCodeFunc     func(ctx context.Context, code string) (string, error)
	ListConnectionsFunc  func(ctx context.Context, token string) ([]budgea.Connection, error)
	ListAccountsFunc     func(ctx context.Context, token string) ([]budgea.Account, error)
	ListTransactionsFunc func(ctx context.Context, token string, q TransactionQuery) (*budgea.Transactions, error)
}

func (m *MockClient) GetUser(ctx context.Context, token string) (*budgea.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, token)
	}
	return &budgea.User{}, nil
}

func (m *MockClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	if m.ExchangeCodeFunc != nil {
		return m.ExchangeCodeFunc(ctx, code)
	}
	return "token-for-" + code, nil
}

func (m *MockClient) ListConnections(ctx context.Context, token string) ([]budgea.Connection, error) {
	if m.ListConnectionsFunc != nil {
		return m.ListConnectionsFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockClient) ListAccounts(ctx context.Context, token string) ([]budgea.Account, error) {
	if m.ListAccountsFunc != nil {
		return m.ListAccountsFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockClient) ListTransactions(ctx context.Context, token string, q TransactionQuery) (*budgea.Transactions, error) {
	if m.ListTransactionsFunc != nil {
		return m.ListTransactionsFunc(ctx, token, q)
	}
	return &budgea.Transactions{}, nil
}

type MockUserRepo struct {
	CreateFunc                    func(ctx context.Context, budgeaUserID int64, label, token string) (*LinkedUser, error)
	GetByIDFunc                   func(ctx context.Context, id int64) (*LinkedUser, error)
	ListWithTokenFunc             func(ctx context.Context) ([]*LinkedUser, error)
	ClearTokenFunc                func(ctx context.Context, id int64) error
	UpdateLastTransactionSyncFunc func(ctx context.Context, id int64, at time.Time) error
}

func (m *MockUserRepo) Create(ctx context.Context, budgeaUserID int64, label, token string) (*LinkedUser, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, budgeaUserID, label, token)
	}
	return &LinkedUser{BudgeaUserID: budgeaUserID, Label: label, Token: &token}, nil
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*LinkedUser, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *MockUserRepo) ListWithToken(ctx context.Context) ([]*LinkedUser, error) {
	if m.ListWithTokenFunc != nil {
		return m.ListWithTokenFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepo) ClearToken(ctx context.Context, id int64) error {
	if m.ClearTokenFunc != nil {
		return m.ClearTokenFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepo) UpdateLastTransactionSync(ctx context.Context, id int64, at time.Time) error {
	if m.UpdateLastTransactionSyncFunc != nil {
		return m.UpdateLastTransactionSyncFunc(ctx, id, at)
	}
	return nil
}

type MockAccountRepo struct {
	UpsertFunc     func(ctx context.Context, params UpsertAccountParams) (bool, error)
	ListByUserFunc func(ctx context.Context, linkedUserID int64) ([]*Account, error)
}

func (m *MockAccountRepo) Upsert(ctx context.Context, params UpsertAccountParams) (bool, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, params)
	}
	return true, nil
}

func (m *MockAccountRepo) ListByUser(ctx context.Context, linkedUserID int64) ([]*Account, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, linkedUserID)
	}
	return nil, nil
}

type MockTransactionRepo struct {
	UpsertFunc        func(ctx context.Context, params UpsertTransactionParams) (bool, error)
	MarkDeletedFunc   func(ctx context.Context, ids []int64) (int64, error)
	ListByAccountFunc func(ctx context.Context, accountID int64, limit int) ([]*Transaction, error)
}

func (m *MockTransactionRepo) Upsert(ctx context.Context, params UpsertTransactionParams) (bool, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, params)
	}
	return true, nil
}

func (m *MockTransactionRepo) MarkDeleted(ctx context.Context, ids []int64) (int64, error) {
	if m.MarkDeletedFunc != nil {
		return m.MarkDeletedFunc(ctx, ids)
	}
	return int64(len(ids)), nil
}

func (m *MockTransactionRepo) ListByAccount(ctx context.Context, accountID int64, limit int) ([]*Transaction, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit)
	}
	return nil, nil
}

type MockConnectionRepo struct {
	UpsertFunc     func(ctx context.Context, state ConnectionState) error
	ListByUserFunc func(ctx context.Context, linkedUserID int64) ([]*ConnectionState, error)
}

func (m *MockConnectionRepo) Upsert(ctx context.Context, state ConnectionState) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, state)
	}
	return nil
}

func (m *MockConnectionRepo) ListByUser(ctx context.Context, linkedUserID int64) ([]*ConnectionState, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, linkedUserID)
	}
	return nil, nil
}

func linkedUser(token string) *MockUserRepo {
	return &MockUserRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*LinkedUser, error) {
			return &LinkedUser{ID: id, BudgeaUserID: 100 + id, Token: &token}, nil
		},
	}
}
