package mirror

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// UserStatus is what the mirror holds for one linked user.
type UserStatus struct {
	User        *LinkedUser
	Connections []*ConnectionState
	Accounts    []*Account
}

// StatusService reads mirrored data back from storage. It never calls Budgea.
type StatusService struct {
	userRepo        UserRepository
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	connectionRepo  ConnectionRepository
}

func NewStatusService(
	userRepo UserRepository,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	connectionRepo ConnectionRepository,
) *StatusService {
	return &StatusService{
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		connectionRepo:  connectionRepo,
	}
}

func (s *StatusService) UserStatus(ctx context.Context, userID int64) (*UserStatus, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	st := &UserStatus{User: u}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if st.Connections, err = s.connectionRepo.ListByUser(gctx, userID); err != nil {
			return fmt.Errorf("failed to list connections: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if st.Accounts, err = s.accountRepo.ListByUser(gctx, userID); err != nil {
			return fmt.Errorf("failed to list accounts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return st, nil
}

// RecentTransactions returns up to limit live transactions of an account,
// newest first.
func (s *StatusService) RecentTransactions(ctx context.Context, accountID int64, limit int) ([]*Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	txs, err := s.transactionRepo.ListByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}
