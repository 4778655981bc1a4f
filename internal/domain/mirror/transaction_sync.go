package mirror

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"budgea/pkg/budgea"
)

const defaultPageSize = 500

// TransactionSyncResult contains the results of a transaction sync
type TransactionSyncResult struct {
	UserID            int64
	TransactionsFound int
	Created           int
	Updated           int
	Deleted           int
	Skipped           int // transactions of accounts that are not mirrored
	Incremental       bool
	Errors            []string
}

// TransactionSyncService mirrors the transactions of a linked user. After the
// first import it only asks Budgea for what changed since the previous run.
type TransactionSyncService struct {
	client          BudgeaClient
	userRepo        UserRepository
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	startDate       time.Time
	pageSize        int
	now             func() time.Time
	log             logrus.FieldLogger
}

func NewTransactionSyncService(
	client BudgeaClient,
	userRepo UserRepository,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	startDate time.Time,
	log logrus.FieldLogger,
) *TransactionSyncService {
	return &TransactionSyncService{
		client:          client,
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		startDate:       startDate,
		pageSize:        defaultPageSize,
		now:             time.Now,
		log:             log.WithField("component", "transaction_sync"),
	}
}

// SyncUserTransactions imports new and changed transactions of a user.
// Returns ErrTokenUnauthorized when Budgea rejects the token.
func (s *TransactionSyncService) SyncUserTransactions(ctx context.Context, userID int64) (*TransactionSyncResult, error) {
	result := &TransactionSyncResult{UserID: userID, Errors: []string{}}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return result, fmt.Errorf("failed to get user: %w", err)
	}
	if !u.HasToken() {
		return result, ErrNoToken
	}

	accounts, err := s.accountRepo.ListByUser(ctx, userID)
	if err != nil {
		return result, fmt.Errorf("failed to list user accounts: %w", err)
	}
	known := make(map[int64]bool, len(accounts))
	for _, a := range accounts {
		known[a.ID] = true
	}

	// Captured before fetching so changes made during the sync are seen next time.
	syncStartedAt := s.now()
	query := TransactionQuery{MinDate: s.startDate, Limit: s.pageSize}
	if u.LastTransactionSync != nil {
		query.LastUpdate = u.LastTransactionSync
		result.Incremental = true
	}

	log := s.log.WithFields(logrus.Fields{"user_id": userID, "incremental": result.Incremental})

	seen := make(map[int64]bool)
	for {
		page, err := s.client.ListTransactions(ctx, *u.Token, query)
		if err != nil {
			return result, clearOnUnauthorized(ctx, s.userRepo, s.log, userID, err, "failed to fetch transactions from Budgea")
		}

		var deleted []int64
		fresh := 0
		for i := range page.Transactions {
			tx := &page.Transactions[i]
			if seen[tx.ID] {
				continue
			}
			seen[tx.ID] = true
			fresh++
			switch {
			case !known[tx.IDAccount]:
				result.Skipped++
			case !tx.Deleted.IsZero():
				deleted = append(deleted, tx.ID)
			default:
				if err := s.upsertTransaction(ctx, userID, tx, result); err != nil {
					errMsg := fmt.Sprintf("failed to process transaction %d: %v", tx.ID, err)
					result.Errors = append(result.Errors, errMsg)
					log.Warn(errMsg)
				}
			}
		}
		if len(deleted) > 0 {
			n, err := s.transactionRepo.MarkDeleted(ctx, deleted)
			if err != nil {
				errMsg := fmt.Sprintf("failed to mark %d transactions deleted: %v", len(deleted), err)
				result.Errors = append(result.Errors, errMsg)
				log.Warn(errMsg)
			}
			result.Deleted += int(n)
		}

		result.TransactionsFound += fresh

		if len(page.Transactions) < query.Limit {
			break
		}
		// A full page with nothing new means the offset is not being honoured.
		if fresh == 0 {
			log.WithField("offset", query.Offset).Warn("Budgea repeated a page of transactions, stopping pagination")
			break
		}
		query.Offset += len(page.Transactions)
	}

	if err := s.userRepo.UpdateLastTransactionSync(ctx, userID, syncStartedAt); err != nil {
		return result, fmt.Errorf("failed to store sync cursor: %w", err)
	}

	log.WithFields(logrus.Fields{
		"found":   result.TransactionsFound,
		"created": result.Created,
		"updated": result.Updated,
		"deleted": result.Deleted,
		"skipped": result.Skipped,
		"errors":  len(result.Errors),
	}).Info("Transaction sync complete")

	return result, nil
}

func (s *TransactionSyncService) upsertTransaction(ctx context.Context, userID int64, tx *budgea.Transaction, result *TransactionSyncResult) error {
	date := tx.Date.Time
	if date.IsZero() {
		date = tx.RDate.Time
	}
	params := UpsertTransactionParams{
		ID:           tx.ID,
		AccountID:    tx.IDAccount,
		LinkedUserID: userID,
		Date:         date,
		Value:        tx.Value,
		Wording:      tx.Label(),
		Type:         tx.Type,
		CategoryID:   tx.IDCategory,
		Coming:       tx.Coming,
	}
	if !tx.LastUpdate.IsZero() {
		t := tx.LastUpdate.Time
		params.LastUpdate = &t
	}

	created, err := s.transactionRepo.Upsert(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to upsert transaction: %w", err)
	}
	if created {
		result.Created++
	} else {
		result.Updated++
	}
	return nil
}
