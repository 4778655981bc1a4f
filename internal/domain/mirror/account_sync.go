package mirror

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"budgea/pkg/budgea"
)

// SyncResult contains the results of an account sync
type SyncResult struct {
	UserID           int64
	AccountsFound    int
	Created          int
	Updated          int
	ConnectionsFound int
	NeedsAction      int // connections waiting on the user (credentials, SCA)
	Errors           []string
}

// AccountSyncService mirrors the connections and accounts of a linked user.
type AccountSyncService struct {
	client         BudgeaClient
	userRepo       UserRepository
	accountRepo    AccountRepository
	connectionRepo ConnectionRepository
	log            logrus.FieldLogger
}

func NewAccountSyncService(
	client BudgeaClient,
	userRepo UserRepository,
	accountRepo AccountRepository,
	connectionRepo ConnectionRepository,
	log logrus.FieldLogger,
) *AccountSyncService {
	return &AccountSyncService{
		client:         client,
		userRepo:       userRepo,
		accountRepo:    accountRepo,
		connectionRepo: connectionRepo,
		log:            log.WithField("component", "account_sync"),
	}
}

// SyncUserAccounts fetches connections and accounts for a user and stores them.
// Returns ErrTokenUnauthorized if Budgea rejects the token, in which case the
// token is cleared and callers should stop the entire sync.
func (s *AccountSyncService) SyncUserAccounts(ctx context.Context, userID int64) (*SyncResult, error) {
	result := &SyncResult{UserID: userID, Errors: []string{}}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return result, fmt.Errorf("failed to get user: %w", err)
	}
	if !u.HasToken() {
		return result, ErrNoToken
	}

	var (
		connections []budgea.Connection
		accounts    []budgea.Account
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		connections, err = s.client.ListConnections(gctx, *u.Token)
		return err
	})
	g.Go(func() error {
		var err error
		accounts, err = s.client.ListAccounts(gctx, *u.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		return result, s.handleFetchError(ctx, userID, err)
	}

	result.ConnectionsFound = len(connections)
	result.AccountsFound = len(accounts)
	log := s.log.WithField("user_id", userID)
	log.Infof("Syncing %d connections and %d accounts", result.ConnectionsFound, result.AccountsFound)

	for i := range connections {
		c := &connections[i]
		if c.NeedsUserAction() {
			result.NeedsAction++
		}
		if err := s.connectionRepo.Upsert(ctx, connectionState(userID, c)); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to store connection %d: %v", c.ID, err))
		}
	}

	for i := range accounts {
		if err := s.syncAccount(ctx, userID, &accounts[i], result); err != nil {
			errMsg := fmt.Sprintf("failed to sync account %d: %v", accounts[i].ID, err)
			result.Errors = append(result.Errors, errMsg)
			log.Warn(errMsg)
		}
	}

	log.WithFields(logrus.Fields{
		"created":      result.Created,
		"updated":      result.Updated,
		"needs_action": result.NeedsAction,
		"errors":       len(result.Errors),
	}).Info("Account sync complete")

	return result, nil
}

// handleFetchError clears the token on a 401.
func (s *AccountSyncService) handleFetchError(ctx context.Context, userID int64, err error) error {
	return clearOnUnauthorized(ctx, s.userRepo, s.log, userID, err, "failed to fetch accounts from Budgea")
}

func clearOnUnauthorized(ctx context.Context, repo UserRepository, log logrus.FieldLogger, userID int64, err error, msg string) error {
	if !budgea.IsUnauthorized(err) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	log.WithField("user_id", userID).Warn("Budgea returned 401, clearing token and stopping sync")
	if clearErr := repo.ClearToken(ctx, userID); clearErr != nil {
		return errors.Join(ErrTokenUnauthorized, fmt.Errorf("failed to clear token: %w", clearErr))
	}
	return ErrTokenUnauthorized
}

func (s *AccountSyncService) syncAccount(ctx context.Context, userID int64, a *budgea.Account, result *SyncResult) error {
	params := UpsertAccountParams{
		ID:           a.ID,
		LinkedUserID: userID,
		ConnectionID: a.IDConnection,
		Name:         a.Name,
		Type:         a.Type,
		Currency:     a.CurrencyCode(),
		IBAN:         a.IBAN,
		Disabled:     !a.Disabled.IsZero(),
	}
	if params.Name == "" {
		params.Name = a.OriginalName
	}
	if a.Balance.Valid {
		params.Balance = a.Balance.Decimal
	}
	if !a.LastUpdate.IsZero() {
		t := a.LastUpdate.Time
		params.LastUpdate = &t
	}

	created, err := s.accountRepo.Upsert(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}
	if created {
		result.Created++
	} else {
		result.Updated++
	}
	return nil
}

func connectionState(userID int64, c *budgea.Connection) ConnectionState {
	st := ConnectionState{
		ID:           c.ID,
		LinkedUserID: userID,
		BankID:       c.IDBank,
		State:        c.State,
		ErrorMessage: c.ErrorMessage,
		Active:       c.Active,
	}
	if st.State == nil {
		st.State = c.Error
	}
	if st.BankID == 0 {
		st.BankID = c.IDConnector
	}
	if c.Bank != nil {
		st.BankName = c.Bank.Name
	}
	if !c.LastUpdate.IsZero() {
		t := c.LastUpdate.Time
		st.LastUpdate = &t
	}
	return st
}
