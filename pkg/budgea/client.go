package budgea

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/semaphore"
)

// APIClient talks to one Budgea domain. It is safe for concurrent use.
type APIClient struct {
	cfg        *Configuration
	httpClient *http.Client
	sem        *semaphore.Weighted
	common     service

	Administration *AdministrationAPI
	Auth           *AuthAPI
	Banks          *BanksAPI
	Users          *UsersAPI
	Connections    *ConnectionsAPI
	Accounts       *AccountsAPI
	Transactions   *TransactionsAPI
	Documents      *DocumentsAPI
	Recipients     *RecipientsAPI
	Transfers      *TransfersAPI
	Alerts         *AlertsAPI
}

type service struct {
	client *APIClient
}

// NewAPIClient creates a client. A nil cfg uses NewConfiguration().
func NewAPIClient(cfg *Configuration) *APIClient {
	if cfg == nil {
		cfg = NewConfiguration()
	}
	if cfg.BasePath == "" {
		cfg.BasePath = DefaultBasePath
	}
	cfg.BasePath = strings.TrimRight(cfg.BasePath, "/")
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}

	base := http.DefaultClient
	if cfg.HTTPClient != nil {
		base = cfg.HTTPClient
	}
	hc := *base
	transport := hc.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	hc.Transport = otelhttp.NewTransport(transport)

	c := &APIClient{
		cfg:        cfg,
		httpClient: &hc,
		sem:        semaphore.NewWeighted(cfg.MaxConcurrency),
	}
	c.wire()
	return c
}

func (c *APIClient) wire() {
	c.common.client = c
	c.Administration = (*AdministrationAPI)(&c.common)
	c.Auth = (*AuthAPI)(&c.common)
	c.Banks = (*BanksAPI)(&c.common)
	c.Users = (*UsersAPI)(&c.common)
	c.Connections = (*ConnectionsAPI)(&c.common)
	c.Accounts = (*AccountsAPI)(&c.common)
	c.Transactions = (*TransactionsAPI)(&c.common)
	c.Documents = (*DocumentsAPI)(&c.common)
	c.Recipients = (*RecipientsAPI)(&c.common)
	c.Transfers = (*TransfersAPI)(&c.common)
	c.Alerts = (*AlertsAPI)(&c.common)
}

// Configuration returns the client settings. They must not be changed while
// calls are in flight.
func (c *APIClient) Configuration() *Configuration {
	return c.cfg
}

// WithToken returns a client sending token on authenticated calls. The HTTP
// client and the async pool are shared with c.
func (c *APIClient) WithToken(token string) *APIClient {
	cfg := *c.cfg
	cfg.DefaultHeader = make(map[string]string, len(c.cfg.DefaultHeader))
	for k, v := range c.cfg.DefaultHeader {
		cfg.DefaultHeader[k] = v
	}
	cfg.Token = token

	clone := &APIClient{
		cfg:        &cfg,
		httpClient: c.httpClient,
		sem:        c.sem,
	}
	clone.wire()
	return clone
}
