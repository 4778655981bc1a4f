package budgea

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

// TransfersAPI creates and follows transfers.
type TransfersAPI service

var (
	opListTransfers = register(&Operation{
		Name:         "users_id_user_transfers_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/transfers",
		PathParams:   []string{"id_user"},
		QueryParams:  []string{"limit", "offset", "min_date", "max_date", "state", "id_account", "expand"},
		Required:     []string{"id_user"},
		ResponseType: "Transfers",
		Auth:         []string{authScheme},
	})
	opCreateTransfer = register(&Operation{
		Name:         "users_id_user_accounts_id_account_recipients_id_recipient_transfers_post",
		Method:       http.MethodPost,
		Path:         "/users/{id_user}/accounts/{id_account}/recipients/{id_recipient}/transfers",
		PathParams:   []string{"id_user", "id_account", "id_recipient"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"amount", "label", "exec_date"},
		Required:     []string{"id_user", "id_account", "id_recipient", "amount", "label"},
		ContentType:  contentTypeForm,
		ResponseType: "Transfer",
		Auth:         []string{authScheme},
	})
	opGetTransfer = register(&Operation{
		Name:         "users_id_user_transfers_id_transfer_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/transfers/{id_transfer}",
		PathParams:   []string{"id_user", "id_transfer"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_user", "id_transfer"},
		ResponseType: "Transfer",
		Auth:         []string{authScheme},
	})
	opExecuteTransfer = register(&Operation{
		Name:         "users_id_user_transfers_id_transfer_post",
		Method:       http.MethodPost,
		Path:         "/users/{id_user}/transfers/{id_transfer}",
		PathParams:   []string{"id_user", "id_transfer"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"validated", "fields"},
		Required:     []string{"id_user", "id_transfer"},
		ContentType:  contentTypeForm,
		ResponseType: "Transfer",
		Auth:         []string{authScheme},
	})
	opCancelTransfer = register(&Operation{
		Name:         "users_id_user_transfers_id_transfer_delete",
		Method:       http.MethodDelete,
		Path:         "/users/{id_user}/transfers/{id_transfer}",
		PathParams:   []string{"id_user", "id_transfer"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_user", "id_transfer"},
		ResponseType: "Transfer",
		Auth:         []string{authScheme},
	})
)

// ListTransfers returns the transfers of a user.
func (a *TransfersAPI) ListTransfers(ctx context.Context, idUser string, opts Params) (*Transfers, error) {
	out, _, err := a.ListTransfersWithHTTPInfo(ctx, idUser, opts)
	return out, err
}

// ListTransfersWithHTTPInfo is ListTransfers and also returns the HTTP response.
func (a *TransfersAPI) ListTransfersWithHTTPInfo(ctx context.Context, idUser string, opts Params) (*Transfers, *http.Response, error) {
	return invoke[*Transfers](ctx, a.client, opListTransfers, bind(opts, "id_user", idUser))
}

// CreateTransfer prepares a transfer. It is sent to the bank only once
// ExecuteTransfer validates it.
func (a *TransfersAPI) CreateTransfer(ctx context.Context, idUser string, idAccount, idRecipient int64, amount decimal.Decimal, label string, opts Params) (*Transfer, error) {
	out, _, err := a.CreateTransferWithHTTPInfo(ctx, idUser, idAccount, idRecipient, amount, label, opts)
	return out, err
}

// CreateTransferWithHTTPInfo is CreateTransfer and also returns the HTTP response.
func (a *TransfersAPI) CreateTransferWithHTTPInfo(ctx context.Context, idUser string, idAccount, idRecipient int64, amount decimal.Decimal, label string, opts Params) (*Transfer, *http.Response, error) {
	return invoke[*Transfer](ctx, a.client, opCreateTransfer, bind(opts, "id_user", idUser, "id_account", idAccount, "id_recipient", idRecipient, "amount", amount, "label", label))
}

// GetTransfer returns a single transfer.
func (a *TransfersAPI) GetTransfer(ctx context.Context, idUser string, idTransfer int64, opts Params) (*Transfer, error) {
	out, _, err := a.GetTransferWithHTTPInfo(ctx, idUser, idTransfer, opts)
	return out, err
}

// GetTransferWithHTTPInfo is GetTransfer and also returns the HTTP response.
func (a *TransfersAPI) GetTransferWithHTTPInfo(ctx context.Context, idUser string, idTransfer int64, opts Params) (*Transfer, *http.Response, error) {
	return invoke[*Transfer](ctx, a.client, opGetTransfer, bind(opts, "id_user", idUser, "id_transfer", idTransfer))
}

// ExecuteTransfer executes a prepared transfer.
func (a *TransfersAPI) ExecuteTransfer(ctx context.Context, idUser string, idTransfer int64, opts Params) (*Transfer, error) {
	out, _, err := a.ExecuteTransferWithHTTPInfo(ctx, idUser, idTransfer, opts)
	return out, err
}

// ExecuteTransferWithHTTPInfo is ExecuteTransfer and also returns the HTTP response.
func (a *TransfersAPI) ExecuteTransferWithHTTPInfo(ctx context.Context, idUser string, idTransfer int64, opts Params) (*Transfer, *http.Response, error) {
	return invoke[*Transfer](ctx, a.client, opExecuteTransfer, bind(opts, "id_user", idUser, "id_transfer", idTransfer))
}

// CancelTransfer cancels a pending transfer.
func (a *TransfersAPI) CancelTransfer(ctx context.Context, idUser string, idTransfer int64, opts Params) (*Transfer, error) {
	out, _, err := a.CancelTransferWithHTTPInfo(ctx, idUser, idTransfer, opts)
	return out, err
}

// CancelTransferWithHTTPInfo is CancelTransfer and also returns the HTTP response.
func (a *TransfersAPI) CancelTransferWithHTTPInfo(ctx context.Context, idUser string, idTransfer int64, opts Params) (*Transfer, *http.Response, error) {
	return invoke[*Transfer](ctx, a.client, opCancelTransfer, bind(opts, "id_user", idUser, "id_transfer", idTransfer))
}
