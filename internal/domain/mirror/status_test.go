package mirror

import (
	"context"
	"errors"
	"testing"
)

func TestUserStatus(t *testing.T) {
	conns := &MockConnectionRepo{
		ListByUserFunc: func(ctx context.Context, linkedUserID int64) ([]*ConnectionState, error) {
			return []*ConnectionState{{ID: 5, LinkedUserID: linkedUserID, BankName: "Test Bank", Active: true}}, nil
		},
	}
	accounts := &MockAccountRepo{
		ListByUserFunc: func(ctx context.Context, linkedUserID int64) ([]*Account, error) {
			return []*Account{{ID: 11, LinkedUserID: linkedUserID}, {ID: 12, LinkedUserID: linkedUserID}}, nil
		},
	}

	st, err := NewStatusService(linkedUser("tok"), accounts, &MockTransactionRepo{}, conns).UserStatus(context.Background(), 3)
	if err != nil {
		t.Fatalf("UserStatus() unexpected error: %v", err)
	}
	if st.User.ID != 3 {
		t.Errorf("User.ID = %d, want 3", st.User.ID)
	}
	if len(st.Connections) != 1 || st.Connections[0].BankName != "Test Bank" {
		t.Errorf("Connections = %+v", st.Connections)
	}
	if len(st.Accounts) != 2 {
		t.Errorf("len(Accounts) = %d, want 2", len(st.Accounts))
	}
}

func TestUserStatus_Errors(t *testing.T) {
	tests := []struct {
		name     string
		users    UserRepository
		accounts AccountRepository
		wantErr  error
	}{
		{
			name:     "Unknown User",
			users:    &MockUserRepo{},
			accounts: &MockAccountRepo{},
			wantErr:  ErrUserNotFound,
		},
		{
			name:  "Account Listing Fails",
			users: linkedUser("tok"),
			accounts: &MockAccountRepo{
				ListByUserFunc: func(ctx context.Context, linkedUserID int64) ([]*Account, error) {
					return nil, errors.New("db down")
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewStatusService(tt.users, tt.accounts, &MockTransactionRepo{}, &MockConnectionRepo{})
			st, err := svc.UserStatus(context.Background(), 1)
			if err == nil {
				t.Fatalf("UserStatus() = %+v, want error", st)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("UserStatus() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecentTransactions_DefaultLimit(t *testing.T) {
	var gotLimit int
	txs := &MockTransactionRepo{
		ListByAccountFunc: func(ctx context.Context, accountID int64, limit int) ([]*Transaction, error) {
			gotLimit = limit
			return []*Transaction{{ID: 1, AccountID: accountID}}, nil
		},
	}
	svc := NewStatusService(&MockUserRepo{}, &MockAccountRepo{}, txs, &MockConnectionRepo{})

	got, err := svc.RecentTransactions(context.Background(), 11, 0)
	if err != nil {
		t.Fatalf("RecentTransactions() unexpected error: %v", err)
	}
	if gotLimit != 50 {
		t.Errorf("limit = %d, want 50", gotLimit)
	}
	if len(got) != 1 || got[0].AccountID != 11 {
		t.Errorf("RecentTransactions() = %+v", got)
	}
}
