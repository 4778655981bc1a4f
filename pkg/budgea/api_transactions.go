package budgea

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

// TransactionsAPI reads and edits transactions.
type TransactionsAPI service

var (
	opListTransactions = register(&Operation{
		Name:         "users_id_user_transactions_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/transactions",
		PathParams:   []string{"id_user"},
		QueryParams:  []string{"limit", "offset", "min_date", "max_date", "income", "deleted", "all_accounts", "last_update", "wording", "min_value", "max_value", "search", "value", "date", "expand"},
		Required:     []string{"id_user"},
		ResponseType: "Transactions",
		Auth:         []string{authScheme},
	})
	opListAccountTransactions = register(&Operation{
		Name:         "users_id_user_accounts_id_account_transactions_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/accounts/{id_account}/transactions",
		PathParams:   []string{"id_user", "id_account"},
		QueryParams:  []string{"limit", "offset", "min_date", "max_date", "income", "deleted", "all_accounts", "last_update", "wording", "min_value", "max_value", "search", "value", "date", "expand"},
		Required:     []string{"id_user", "id_account"},
		ResponseType: "Transactions",
		Auth:         []string{authScheme},
	})
	opCreateTransaction = register(&Operation{
		Name:         "users_id_user_accounts_id_account_transactions_post",
		Method:       http.MethodPost,
		Path:         "/users/{id_user}/accounts/{id_account}/transactions",
		PathParams:   []string{"id_user", "id_account"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"original_wording", "value", "date", "type", "state", "rdate", "coming", "active", "date_scraped", "id_category", "comment"},
		Required:     []string{"id_user", "id_account", "original_wording", "value", "date"},
		ContentType:  contentTypeForm,
		ResponseType: "Transaction",
		Auth:         []string{authScheme},
	})
	opUpdateTransaction = register(&Operation{
		Name:         "users_id_user_transactions_id_transaction_put",
		Method:       http.MethodPut,
		Path:         "/users/{id_user}/transactions/{id_transaction}",
		PathParams:   []string{"id_user", "id_transaction"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"wording", "application_date", "id_category", "comment", "active", "coming"},
		Required:     []string{"id_user", "id_transaction"},
		ContentType:  contentTypeForm,
		ResponseType: "Transaction",
		Auth:         []string{authScheme},
	})
	opDeleteTransaction = register(&Operation{
		Name:         "users_id_user_transactions_id_transaction_delete",
		Method:       http.MethodDelete,
		Path:         "/users/{id_user}/transactions/{id_transaction}",
		PathParams:   []string{"id_user", "id_transaction"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_user", "id_transaction"},
		ResponseType: "Transaction",
		Auth:         []string{authScheme},
	})
)

// ListTransactions returns the transactions of every account of a user. Use
// "last_update" to fetch only what changed since a previous call.
func (a *TransactionsAPI) ListTransactions(ctx context.Context, idUser string, opts Params) (*Transactions, error) {
	out, _, err := a.ListTransactionsWithHTTPInfo(ctx, idUser, opts)
	return out, err
}

// ListTransactionsWithHTTPInfo is ListTransactions and also returns the HTTP response.
func (a *TransactionsAPI) ListTransactionsWithHTTPInfo(ctx context.Context, idUser string, opts Params) (*Transactions, *http.Response, error) {
	return invoke[*Transactions](ctx, a.client, opListTransactions, bind(opts, "id_user", idUser))
}

// ListAccountTransactions returns the transactions of one account.
func (a *TransactionsAPI) ListAccountTransactions(ctx context.Context, idUser string, idAccount int64, opts Params) (*Transactions, error) {
	out, _, err := a.ListAccountTransactionsWithHTTPInfo(ctx, idUser, idAccount, opts)
	return out, err
}

// ListAccountTransactionsWithHTTPInfo is ListAccountTransactions and also returns the HTTP response.
func (a *TransactionsAPI) ListAccountTransactionsWithHTTPInfo(ctx context.Context, idUser string, idAccount int64, opts Params) (*Transactions, *http.Response, error) {
	return invoke[*Transactions](ctx, a.client, opListAccountTransactions, bind(opts, "id_user", idUser, "id_account", idAccount))
}

// CreateTransaction adds a manual transaction to an account.
func (a *TransactionsAPI) CreateTransaction(ctx context.Context, idUser string, idAccount int64, originalWording string, value decimal.Decimal, date Date, opts Params) (*Transaction, error) {
	out, _, err := a.CreateTransactionWithHTTPInfo(ctx, idUser, idAccount, originalWording, value, date, opts)
	return out, err
}

// CreateTransactionWithHTTPInfo is CreateTransaction and also returns the HTTP response.
func (a *TransactionsAPI) CreateTransactionWithHTTPInfo(ctx context.Context, idUser string, idAccount int64, originalWording string, value decimal.Decimal, date Date, opts Params) (*Transaction, *http.Response, error) {
	return invoke[*Transaction](ctx, a.client, opCreateTransaction, bind(opts, "id_user", idUser, "id_account", idAccount, "original_wording", originalWording, "value", value, "date", date))
}

// UpdateTransaction changes a transaction.
func (a *TransactionsAPI) UpdateTransaction(ctx context.Context, idUser string, idTransaction int64, opts Params) (*Transaction, error) {
	out, _, err := a.UpdateTransactionWithHTTPInfo(ctx, idUser, idTransaction, opts)
	return out, err
}

// UpdateTransactionWithHTTPInfo is UpdateTransaction and also returns the HTTP response.
func (a *TransactionsAPI) UpdateTransactionWithHTTPInfo(ctx context.Context, idUser string, idTransaction int64, opts Params) (*Transaction, *http.Response, error) {
	return invoke[*Transaction](ctx, a.client, opUpdateTransaction, bind(opts, "id_user", idUser, "id_transaction", idTransaction))
}

// DeleteTransaction removes a transaction.
func (a *TransactionsAPI) DeleteTransaction(ctx context.Context, idUser string, idTransaction int64, opts Params) (*Transaction, error) {
	out, _, err := a.DeleteTransactionWithHTTPInfo(ctx, idUser, idTransaction, opts)
	return out, err
}

// DeleteTransactionWithHTTPInfo is DeleteTransaction and also returns the HTTP response.
func (a *TransactionsAPI) DeleteTransactionWithHTTPInfo(ctx context.Context, idUser string, idTransaction int64, opts Params) (*Transaction, *http.Response, error) {
	return invoke[*Transaction](ctx, a.client, opDeleteTransaction, bind(opts, "id_user", idUser, "id_transaction", idTransaction))
}
