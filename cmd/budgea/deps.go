package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"budgea/internal/domain/mirror"
	"budgea/internal/infrastructure/crypto"
	"budgea/internal/infrastructure/postgres"
	"budgea/internal/shared/config"
	"budgea/internal/shared/logging"
	"budgea/pkg/budgea"
)

type app struct {
	cfg *config.Config
	log *logrus.Logger
}

func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logging.Setup(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log}, nil
}

// apiClient builds a client sending token, or BUDGEA_TOKEN when token is empty.
func (a *app) apiClient(token string) *budgea.APIClient {
	bc := budgea.NewConfiguration()
	bc.BasePath = a.cfg.Budgea.BaseURL
	bc.HTTPClient = &http.Client{Timeout: a.cfg.Budgea.Timeout}
	bc.MaxConcurrency = a.cfg.Budgea.MaxConcurrency
	bc.Logger = logging.Component(a.log, "budgea_client")
	bc.Token = a.cfg.Budgea.Token
	if token != "" {
		bc.Token = token
	}
	return budgea.NewAPIClient(bc)
}

func (a *app) mirrorClient() *mirror.Client {
	return mirror.NewClient(a.apiClient("")).WithCredentials(a.cfg.Budgea.ClientID, a.cfg.Budgea.ClientSecret)
}

type store struct {
	db           *postgres.DB
	users        *postgres.LinkedUserRepository
	accounts     *postgres.AccountRepository
	transactions *postgres.TransactionRepository
	connections  *postgres.ConnectionRepository
}

func (a *app) openStore(ctx context.Context) (*store, error) {
	if err := a.cfg.RequireStorage(); err != nil {
		return nil, err
	}
	enc, err := crypto.NewEncryptor(a.cfg.Encryption.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to create encryptor: %w", err)
	}
	db, err := postgres.New(ctx, a.cfg.Database.ConnectionString(), postgres.DefaultPool)
	if err != nil {
		return nil, err
	}
	a.log.WithField("host", a.cfg.Database.Host).Info("Connected to database")

	return &store{
		db:           db,
		users:        postgres.NewLinkedUserRepository(db, enc),
		accounts:     postgres.NewAccountRepository(db),
		transactions: postgres.NewTransactionRepository(db),
		connections:  postgres.NewConnectionRepository(db),
	}, nil
}

func (s *store) Close() error {
	return s.db.Close()
}

type syncServices struct {
	accounts     *mirror.AccountSyncService
	transactions *mirror.TransactionSyncService
}

func (a *app) syncServices(st *store) (*syncServices, error) {
	start, err := a.cfg.Budgea.SyncStart()
	if err != nil {
		return nil, err
	}
	client := a.mirrorClient()
	return &syncServices{
		accounts:     mirror.NewAccountSyncService(client, st.users, st.accounts, st.connections, a.log),
		transactions: mirror.NewTransactionSyncService(client, st.users, st.accounts, st.transactions, start, a.log),
	}, nil
}
