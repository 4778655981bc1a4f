package scheduler

import (
	"context"
	"errors"
	"testing"

	"budgea/internal/domain/mirror"
)

type mockAccountSyncer struct {
	result *mirror.SyncResult
	err    error
	calls  int
}

func (m *mockAccountSyncer) SyncUserAccounts(ctx context.Context, userID int64) (*mirror.SyncResult, error) {
	m.calls++
	if m.result == nil {
		m.result = &mirror.SyncResult{UserID: userID}
	}
	return m.result, m.err
}

type mockTransactionSyncer struct {
	result *mirror.TransactionSyncResult
	err    error
	calls  int
}

func (m *mockTransactionSyncer) SyncUserTransactions(ctx context.Context, userID int64) (*mirror.TransactionSyncResult, error) {
	m.calls++
	if m.result == nil {
		m.result = &mirror.TransactionSyncResult{UserID: userID}
	}
	return m.result, m.err
}

func TestUserSyncJob_Execute(t *testing.T) {
	tests := []struct {
		name        string
		accounts    *mockAccountSyncer
		txs         *mockTransactionSyncer
		wantErr     error
		wantTxCalls int
	}{
		{
			name:        "Success",
			accounts:    &mockAccountSyncer{},
			txs:         &mockTransactionSyncer{},
			wantTxCalls: 1,
		},
		{
			name:        "Unauthorized Stops Before Transactions",
			accounts:    &mockAccountSyncer{err: mirror.ErrTokenUnauthorized},
			txs:         &mockTransactionSyncer{},
			wantErr:     mirror.ErrTokenUnauthorized,
			wantTxCalls: 0,
		},
		{
			name:        "Transaction Failure",
			accounts:    &mockAccountSyncer{},
			txs:         &mockTransactionSyncer{err: errors.New("db down")},
			wantTxCalls: 1,
		},
		{
			name:        "Item Errors Are Reported",
			accounts:    &mockAccountSyncer{result: &mirror.SyncResult{Errors: []string{"account 1"}}},
			txs:         &mockTransactionSyncer{},
			wantErr:     ErrPartialSync,
			wantTxCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := NewUserSyncJob(7, tt.accounts, tt.txs, quietLogger())
			err := job.Execute(context.Background())

			switch {
			case tt.wantErr != nil && !errors.Is(err, tt.wantErr):
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			case tt.name == "Transaction Failure" && err == nil:
				t.Error("Execute() expected error")
			case tt.name == "Success" && err != nil:
				t.Errorf("Execute() unexpected error: %v", err)
			}
			if tt.txs.calls != tt.wantTxCalls {
				t.Errorf("transaction sync calls = %d, want %d", tt.txs.calls, tt.wantTxCalls)
			}
			if job.UserID() != 7 {
				t.Errorf("UserID() = %d, want 7", job.UserID())
			}
		})
	}
}

type stubUsers []*mirror.LinkedUser

func (s stubUsers) ListWithToken(ctx context.Context) ([]*mirror.LinkedUser, error) {
	return s, nil
}

func TestSyncJobProvider(t *testing.T) {
	provider := SyncJobProvider(stubUsers{{ID: 1}, {ID: 4}}, &mockAccountSyncer{}, &mockTransactionSyncer{}, quietLogger())

	jobs, err := provider(context.Background())
	if err != nil {
		t.Fatalf("provider() error = %v", err)
	}
	if len(jobs) != 2 || jobs[0].UserID() != 1 || jobs[1].UserID() != 4 {
		t.Errorf("provider() jobs = %v", jobs)
	}
}
