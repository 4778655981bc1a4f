package budgea

import (
	"context"
	"net/http"
)

// RecipientsAPI manages transfer beneficiaries.
type RecipientsAPI service

var (
	opListRecipients = register(&Operation{
		Name:         "users_id_user_accounts_id_account_recipients_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/accounts/{id_account}/recipients",
		PathParams:   []string{"id_user", "id_account"},
		QueryParams:  []string{"limit", "offset", "all", "expand"},
		Required:     []string{"id_user", "id_account"},
		ResponseType: "Recipients",
		Auth:         []string{authScheme},
	})
	opCreateRecipient = register(&Operation{
		Name:         "users_id_user_accounts_id_account_recipients_post",
		Method:       http.MethodPost,
		Path:         "/users/{id_user}/accounts/{id_account}/recipients",
		PathParams:   []string{"id_user", "id_account"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"label", "iban", "category", "bank_name"},
		Required:     []string{"id_user", "id_account", "label", "iban"},
		ContentType:  contentTypeForm,
		ResponseType: "Recipient",
		Auth:         []string{authScheme},
	})
	opUpdateRecipient = register(&Operation{
		Name:         "users_id_user_accounts_id_account_recipients_id_recipient_post",
		Method:       http.MethodPost,
		Path:         "/users/{id_user}/accounts/{id_account}/recipients/{id_recipient}",
		PathParams:   []string{"id_user", "id_account", "id_recipient"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"label", "category", "fields"},
		Required:     []string{"id_user", "id_account", "id_recipient"},
		ContentType:  contentTypeForm,
		ResponseType: "Recipient",
		Auth:         []string{authScheme},
	})
	opDeleteRecipient = register(&Operation{
		Name:         "users_id_user_accounts_id_account_recipients_id_recipient_delete",
		Method:       http.MethodDelete,
		Path:         "/users/{id_user}/accounts/{id_account}/recipients/{id_recipient}",
		PathParams:   []string{"id_user", "id_account", "id_recipient"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_user", "id_account", "id_recipient"},
		ResponseType: "Recipient",
		Auth:         []string{authScheme},
	})
)

// ListRecipients returns the transfer recipients of an account.
func (a *RecipientsAPI) ListRecipients(ctx context.Context, idUser string, idAccount int64, opts Params) (*Recipients, error) {
	out, _, err := a.ListRecipientsWithHTTPInfo(ctx, idUser, idAccount, opts)
	return out, err
}

// ListRecipientsWithHTTPInfo is ListRecipients and also returns the HTTP response.
func (a *RecipientsAPI) ListRecipientsWithHTTPInfo(ctx context.Context, idUser string, idAccount int64, opts Params) (*Recipients, *http.Response, error) {
	return invoke[*Recipients](ctx, a.client, opListRecipients, bind(opts, "id_user", idUser, "id_account", idAccount))
}

// CreateRecipient adds a beneficiary to an account. The bank may require a
// validation, in which case the returned recipient carries a pending state.
func (a *RecipientsAPI) CreateRecipient(ctx context.Context, idUser string, idAccount int64, label, iban string, opts Params) (*Recipient, error) {
	out, _, err := a.CreateRecipientWithHTTPInfo(ctx, idUser, idAccount, label, iban, opts)
	return out, err
}

// CreateRecipientWithHTTPInfo is CreateRecipient and also returns the HTTP response.
func (a *RecipientsAPI) CreateRecipientWithHTTPInfo(ctx context.Context, idUser string, idAccount int64, label, iban string, opts Params) (*Recipient, *http.Response, error) {
	return invoke[*Recipient](ctx, a.client, opCreateRecipient, bind(opts, "id_user", idUser, "id_account", idAccount, "label", label, "iban", iban))
}

// UpdateRecipient changes a recipient.
func (a *RecipientsAPI) UpdateRecipient(ctx context.Context, idUser string, idAccount, idRecipient int64, opts Params) (*Recipient, error) {
	out, _, err := a.UpdateRecipientWithHTTPInfo(ctx, idUser, idAccount, idRecipient, opts)
	return out, err
}

// UpdateRecipientWithHTTPInfo is UpdateRecipient and also returns the HTTP response.
func (a *RecipientsAPI) UpdateRecipientWithHTTPInfo(ctx context.Context, idUser string, idAccount, idRecipient int64, opts Params) (*Recipient, *http.Response, error) {
	return invoke[*Recipient](ctx, a.client, opUpdateRecipient, bind(opts, "id_user", idUser, "id_account", idAccount, "id_recipient", idRecipient))
}

// DeleteRecipient removes a recipient.
func (a *RecipientsAPI) DeleteRecipient(ctx context.Context, idUser string, idAccount, idRecipient int64, opts Params) (*Recipient, error) {
	out, _, err := a.DeleteRecipientWithHTTPInfo(ctx, idUser, idAccount, idRecipient, opts)
	return out, err
}

// DeleteRecipientWithHTTPInfo is DeleteRecipient and also returns the HTTP response.
func (a *RecipientsAPI) DeleteRecipientWithHTTPInfo(ctx context.Context, idUser string, idAccount, idRecipient int64, opts Params) (*Recipient, *http.Response, error) {
	return invoke[*Recipient](ctx, a.client, opDeleteRecipient, bind(opts, "id_user", idUser, "id_account", idAccount, "id_recipient", idRecipient))
}
