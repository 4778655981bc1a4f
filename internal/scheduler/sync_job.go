package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"budgea/internal/domain/mirror"
)

type AccountSyncer interface {
	SyncUserAccounts(ctx context.Context, userID int64) (*mirror.SyncResult, error)
}

type TransactionSyncer interface {
	SyncUserTransactions(ctx context.Context, userID int64) (*mirror.TransactionSyncResult, error)
}

// ErrPartialSync is returned when a sync finished but some items failed.
var ErrPartialSync = errors.New("sync completed with errors")

// UserSyncJob mirrors accounts then transactions of one linked user.
// Transactions are skipped when the account sync fails, so they never
// reference an account that is not stored.
type UserSyncJob struct {
	userID       int64
	accounts     AccountSyncer
	transactions TransactionSyncer
	log          logrus.FieldLogger
}

var _ Job = (*UserSyncJob)(nil)

func NewUserSyncJob(userID int64, accounts AccountSyncer, transactions TransactionSyncer, log logrus.FieldLogger) *UserSyncJob {
	return &UserSyncJob{
		userID:       userID,
		accounts:     accounts,
		transactions: transactions,
		log:          log.WithField("user_id", userID),
	}
}

func (j *UserSyncJob) Execute(ctx context.Context) error {
	accResult, err := j.accounts.SyncUserAccounts(ctx, j.userID)
	if err != nil {
		if errors.Is(err, mirror.ErrTokenUnauthorized) {
			j.log.Warn("Token rejected, user needs to be linked again")
		}
		return fmt.Errorf("account sync failed, skipping transaction sync: %w", err)
	}

	txResult, err := j.transactions.SyncUserTransactions(ctx, j.userID)
	if err != nil {
		return fmt.Errorf("transaction sync failed: %w", err)
	}

	j.log.WithFields(logrus.Fields{
		"accounts_created":     accResult.Created,
		"accounts_updated":     accResult.Updated,
		"needs_action":         accResult.NeedsAction,
		"transactions_created": txResult.Created,
		"transactions_updated": txResult.Updated,
		"transactions_deleted": txResult.Deleted,
	}).Info("User sync complete")

	if n := len(accResult.Errors) + len(txResult.Errors); n > 0 {
		return fmt.Errorf("%w: %d item errors", ErrPartialSync, n)
	}
	return nil
}

func (j *UserSyncJob) UserID() int64 {
	return j.userID
}

func (j *UserSyncJob) Description() string {
	return fmt.Sprintf("Budgea sync (accounts + transactions) for user %d", j.userID)
}

// UserLister is the part of the user store the job provider needs.
type UserLister interface {
	ListWithToken(ctx context.Context) ([]*mirror.LinkedUser, error)
}

// SyncJobProvider returns one UserSyncJob per linked user holding a token.
func SyncJobProvider(users UserLister, accounts AccountSyncer, transactions TransactionSyncer, log logrus.FieldLogger) JobProvider {
	return func(ctx context.Context) ([]Job, error) {
		linked, err := users.ListWithToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list linked users: %w", err)
		}
		jobs := make([]Job, 0, len(linked))
		for _, u := range linked {
			jobs = append(jobs, NewUserSyncJob(u.ID, accounts, transactions, log))
		}
		return jobs, nil
	}
}
