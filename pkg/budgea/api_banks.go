package budgea

import (
	"context"
	"net/http"
)

// BanksAPI lists bank and provider connectors.
type BanksAPI service

var (
	opListBanks = register(&Operation{
		Name:         "banks_get",
		Method:       http.MethodGet,
		Path:         "/banks",
		QueryParams:  []string{"expand", "limit", "offset"},
		ResponseType: "Banks",
		Auth:         []string{authScheme},
	})
	opGetBank = register(&Operation{
		Name:         "banks_id_bank_get",
		Method:       http.MethodGet,
		Path:         "/banks/{id_bank}",
		PathParams:   []string{"id_bank"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_bank"},
		ResponseType: "Bank",
		Auth:         []string{authScheme},
	})
	opListBankFields = register(&Operation{
		Name:         "banks_id_bank_fields_get",
		Method:       http.MethodGet,
		Path:         "/banks/{id_bank}/fields",
		PathParams:   []string{"id_bank"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_bank"},
		ResponseType: "Fields",
		Auth:         []string{authScheme},
	})
	opListBankCategories = register(&Operation{
		Name:         "banks_categories_get",
		Method:       http.MethodGet,
		Path:         "/banks/categories",
		QueryParams:  []string{"expand"},
		ResponseType: "BankCategories",
		Auth:         []string{authScheme},
	})
	opListProviders = register(&Operation{
		Name:         "providers_get",
		Method:       http.MethodGet,
		Path:         "/providers",
		QueryParams:  []string{"expand", "limit", "offset"},
		ResponseType: "Banks",
		Auth:         []string{authScheme},
	})
)

// ListBanks returns the bank connectors available on the domain.
func (a *BanksAPI) ListBanks(ctx context.Context, opts Params) (*Banks, error) {
	out, _, err := a.ListBanksWithHTTPInfo(ctx, opts)
	return out, err
}

// ListBanksWithHTTPInfo is ListBanks and also returns the HTTP response.
func (a *BanksAPI) ListBanksWithHTTPInfo(ctx context.Context, opts Params) (*Banks, *http.Response, error) {
	return invoke[*Banks](ctx, a.client, opListBanks, opts)
}

// GetBank returns a single bank connector.
func (a *BanksAPI) GetBank(ctx context.Context, idBank int64, opts Params) (*Bank, error) {
	out, _, err := a.GetBankWithHTTPInfo(ctx, idBank, opts)
	return out, err
}

// GetBankWithHTTPInfo is GetBank and also returns the HTTP response.
func (a *BanksAPI) GetBankWithHTTPInfo(ctx context.Context, idBank int64, opts Params) (*Bank, *http.Response, error) {
	return invoke[*Bank](ctx, a.client, opGetBank, bind(opts, "id_bank", idBank))
}

// ListBankFields returns the login form of a connector.
func (a *BanksAPI) ListBankFields(ctx context.Context, idBank int64, opts Params) (*Fields, error) {
	out, _, err := a.ListBankFieldsWithHTTPInfo(ctx, idBank, opts)
	return out, err
}

// ListBankFieldsWithHTTPInfo is ListBankFields and also returns the HTTP response.
func (a *BanksAPI) ListBankFieldsWithHTTPInfo(ctx context.Context, idBank int64, opts Params) (*Fields, *http.Response, error) {
	return invoke[*Fields](ctx, a.client, opListBankFields, bind(opts, "id_bank", idBank))
}

// ListBankCategories returns the bank categories.
func (a *BanksAPI) ListBankCategories(ctx context.Context, opts Params) (*BankCategories, error) {
	out, _, err := a.ListBankCategoriesWithHTTPInfo(ctx, opts)
	return out, err
}

// ListBankCategoriesWithHTTPInfo is ListBankCategories and also returns the HTTP response.
func (a *BanksAPI) ListBankCategoriesWithHTTPInfo(ctx context.Context, opts Params) (*BankCategories, *http.Response, error) {
	return invoke[*BankCategories](ctx, a.client, opListBankCategories, opts)
}

// ListProviders returns the document providers (bills, payslips) available on
// the domain.
func (a *BanksAPI) ListProviders(ctx context.Context, opts Params) (*Banks, error) {
	out, _, err := a.ListProvidersWithHTTPInfo(ctx, opts)
	return out, err
}

// ListProvidersWithHTTPInfo is ListProviders and also returns the HTTP response.
func (a *BanksAPI) ListProvidersWithHTTPInfo(ctx context.Context, opts Params) (*Banks, *http.Response, error) {
	return invoke[*Banks](ctx, a.client, opListProviders, opts)
}
