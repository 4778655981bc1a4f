package budgea

import (
	"context"
	"net/http"
)

// AccountsAPI manages the bank accounts of a user.
type AccountsAPI service

var (
	opListAccounts = register(&Operation{
		Name:         "users_id_user_accounts_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/accounts",
		PathParams:   []string{"id_user"},
		QueryParams:  []string{"expand", "all", "currency"},
		Required:     []string{"id_user"},
		ResponseType: "Accounts",
		Auth:         []string{authScheme},
	})
	opListConnectionAccounts = register(&Operation{
		Name:         "users_id_user_connections_id_connection_accounts_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/connections/{id_connection}/accounts",
		PathParams:   []string{"id_user", "id_connection"},
		QueryParams:  []string{"expand", "all"},
		Required:     []string{"id_user", "id_connection"},
		ResponseType: "Accounts",
		Auth:         []string{authScheme},
	})
	opGetAccount = register(&Operation{
		Name:         "users_id_user_accounts_id_account_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/accounts/{id_account}",
		PathParams:   []string{"id_user", "id_account"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_user", "id_account"},
		ResponseType: "Account",
		Auth:         []string{authScheme},
	})
	opUpdateAccount = register(&Operation{
		Name:         "users_id_user_accounts_id_account_put",
		Method:       http.MethodPut,
		Path:         "/users/{id_user}/accounts/{id_account}",
		PathParams:   []string{"id_user", "id_account"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"display", "name", "disabled", "bookmarked", "usage"},
		Required:     []string{"id_user", "id_account"},
		ContentType:  contentTypeForm,
		ResponseType: "Account",
		Auth:         []string{authScheme},
	})
	opDeleteAccount = register(&Operation{
		Name:         "users_id_user_accounts_id_account_delete",
		Method:       http.MethodDelete,
		Path:         "/users/{id_user}/accounts/{id_account}",
		PathParams:   []string{"id_user", "id_account"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_user", "id_account"},
		ResponseType: "Account",
		Auth:         []string{authScheme},
	})
)

// ListAccounts returns the accounts of a user with their total balance. Set
// "all" to include disabled accounts.
func (a *AccountsAPI) ListAccounts(ctx context.Context, idUser string, opts Params) (*Accounts, error) {
	out, _, err := a.ListAccountsWithHTTPInfo(ctx, idUser, opts)
	return out, err
}

// ListAccountsWithHTTPInfo is ListAccounts and also returns the HTTP response.
func (a *AccountsAPI) ListAccountsWithHTTPInfo(ctx context.Context, idUser string, opts Params) (*Accounts, *http.Response, error) {
	return invoke[*Accounts](ctx, a.client, opListAccounts, bind(opts, "id_user", idUser))
}

// ListConnectionAccounts returns the accounts of one connection.
func (a *AccountsAPI) ListConnectionAccounts(ctx context.Context, idUser string, idConnection int64, opts Params) (*Accounts, error) {
	out, _, err := a.ListConnectionAccountsWithHTTPInfo(ctx, idUser, idConnection, opts)
	return out, err
}

// ListConnectionAccountsWithHTTPInfo is ListConnectionAccounts and also returns the HTTP response.
func (a *AccountsAPI) ListConnectionAccountsWithHTTPInfo(ctx context.Context, idUser string, idConnection int64, opts Params) (*Accounts, *http.Response, error) {
	return invoke[*Accounts](ctx, a.client, opListConnectionAccounts, bind(opts, "id_user", idUser, "id_connection", idConnection))
}

// GetAccount returns a single account.
func (a *AccountsAPI) GetAccount(ctx context.Context, idUser string, idAccount int64, opts Params) (*Account, error) {
	out, _, err := a.GetAccountWithHTTPInfo(ctx, idUser, idAccount, opts)
	return out, err
}

// GetAccountWithHTTPInfo is GetAccount and also returns the HTTP response.
func (a *AccountsAPI) GetAccountWithHTTPInfo(ctx context.Context, idUser string, idAccount int64, opts Params) (*Account, *http.Response, error) {
	return invoke[*Account](ctx, a.client, opGetAccount, bind(opts, "id_user", idUser, "id_account", idAccount))
}

// UpdateAccount changes an account, for instance to disable it.
func (a *AccountsAPI) UpdateAccount(ctx context.Context, idUser string, idAccount int64, opts Params) (*Account, error) {
	out, _, err := a.UpdateAccountWithHTTPInfo(ctx, idUser, idAccount, opts)
	return out, err
}

// UpdateAccountWithHTTPInfo is UpdateAccount and also returns the HTTP response.
func (a *AccountsAPI) UpdateAccountWithHTTPInfo(ctx context.Context, idUser string, idAccount int64, opts Params) (*Account, *http.Response, error) {
	return invoke[*Account](ctx, a.client, opUpdateAccount, bind(opts, "id_user", idUser, "id_account", idAccount))
}

// DeleteAccount removes an account.
func (a *AccountsAPI) DeleteAccount(ctx context.Context, idUser string, idAccount int64, opts Params) (*Account, error) {
	out, _, err := a.DeleteAccountWithHTTPInfo(ctx, idUser, idAccount, opts)
	return out, err
}

// DeleteAccountWithHTTPInfo is DeleteAccount and also returns the HTTP response.
func (a *AccountsAPI) DeleteAccountWithHTTPInfo(ctx context.Context, idUser string, idAccount int64, opts Params) (*Account, *http.Response, error) {
	return invoke[*Account](ctx, a.client, opDeleteAccount, bind(opts, "id_user", idUser, "id_account", idAccount))
}
