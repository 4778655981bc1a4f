package mirror

import (
	"context"
	"errors"
	"time"

	"budgea/pkg/budgea"
)

// BudgeaClient is the part of the Budgea API the mirror needs. Every call
// runs with the token of the user being synced.
type BudgeaClient interface {
	GetUser(ctx context.Context, token string) (*budgea.User, error)
	ExchangeCode(ctx context.Context, code string) (string, error)
	ListConnections(ctx context.Context, token string) ([]budgea.Connection, error)
	ListAccounts(ctx context.Context, token string) ([]budgea.Account, error)
	ListTransactions(ctx context.Context, token string, q TransactionQuery) (*budgea.Transactions, error)
}

// TransactionQuery pages through the transactions of a user. LastUpdate, when
// set, restricts the page to transactions changed since that instant.
type TransactionQuery struct {
	MinDate    time.Time
	LastUpdate *time.Time
	Limit      int
	Offset     int
}

var errEmptyAccessToken = errors.New("budgea returned an empty access token")

// Client adapts *budgea.APIClient to BudgeaClient.
type Client struct {
	api          *budgea.APIClient
	clientID     string
	clientSecret string
}

var _ BudgeaClient = (*Client)(nil)

func NewClient(api *budgea.APIClient) *Client {
	return &Client{api: api}
}

// WithCredentials sets the client id and secret sent when exchanging codes.
func (c *Client) WithCredentials(clientID, clientSecret string) *Client {
	c.clientID = clientID
	c.clientSecret = clientSecret
	return c
}

// ExchangeCode trades a temporary code for a permanent user token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	params := budgea.Params{}
	if c.clientID != "" {
		params["client_id"] = c.clientID
		params["client_secret"] = c.clientSecret
	}
	resp, err := c.api.Auth.ExchangeCode(ctx, code, params)
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", errEmptyAccessToken
	}
	return resp.AccessToken, nil
}

func (c *Client) GetUser(ctx context.Context, token string) (*budgea.User, error) {
	return c.api.WithToken(token).Users.GetUser(ctx, budgea.Me, nil)
}

func (c *Client) ListConnections(ctx context.Context, token string) ([]budgea.Connection, error) {
	resp, err := c.api.WithToken(token).Connections.ListConnections(ctx, budgea.Me, budgea.Params{"expand": "bank"})
	if err != nil {
		return nil, err
	}
	return resp.Connections, nil
}

func (c *Client) ListAccounts(ctx context.Context, token string) ([]budgea.Account, error) {
	resp, err := c.api.WithToken(token).Accounts.ListAccounts(ctx, budgea.Me, budgea.Params{"all": true})
	if err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

func (c *Client) ListTransactions(ctx context.Context, token string, q TransactionQuery) (*budgea.Transactions, error) {
	params := budgea.Params{
		"limit":  q.Limit,
		"offset": q.Offset,
	}
	if !q.MinDate.IsZero() {
		params["min_date"] = budgea.Date{Time: q.MinDate}
	}
	if q.LastUpdate != nil {
		params["last_update"] = budgea.DateTime{Time: q.LastUpdate.UTC()}
	}
	return c.api.WithToken(token).Transactions.ListTransactions(ctx, budgea.Me, params)
}
