package budgea

import (
	"context"
	"encoding/json"
	"net/http"
)

// AdministrationAPI manages the domain: OAuth clients, merchants,
// configuration, monitoring and webhooks. Calls need a manage token.
type AdministrationAPI service

var (
	opListClients = register(&Operation{
		Name:         "clients_get",
		Method:       http.MethodGet,
		Path:         "/clients",
		QueryParams:  []string{"expand"},
		ResponseType: "Clients",
		Auth:         []string{authScheme},
	})
	opDeleteClient = register(&Operation{
		Name:         "clients_id_client_delete",
		Method:       http.MethodDelete,
		Path:         "/clients/{id_client}",
		PathParams:   []string{"id_client"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_client"},
		ResponseType: "Client",
		Auth:         []string{authScheme},
	})
	opGetClient = register(&Operation{
		Name:         "clients_id_client_get",
		Method:       http.MethodGet,
		Path:         "/clients/{id_client}",
		PathParams:   []string{"id_client"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_client"},
		ResponseType: "Client",
		Auth:         []string{authScheme},
	})
	opDeleteClientLogo = register(&Operation{
		Name:         "clients_id_client_logo_delete",
		Method:       http.MethodDelete,
		Path:         "/clients/{id_client}/logo",
		PathParams:   []string{"id_client"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_client"},
		ResponseType: "File",
		Auth:         []string{authScheme},
	})
	opUploadClientLogo = register(&Operation{
		Name:         "clients_id_client_logo_post",
		Method:       http.MethodPost,
		Path:         "/clients/{id_client}/logo",
		PathParams:   []string{"id_client"},
		QueryParams:  []string{"expand"},
		FileParams:   []string{"file"},
		Required:     []string{"id_client"},
		ResponseType: "File",
		Auth:         []string{authScheme},
	})
	opUpdateClient = register(&Operation{
		Name:         "clients_id_client_put",
		Method:       http.MethodPut,
		Path:         "/clients/{id_client}",
		PathParams:   []string{"id_client"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"config", "description", "description_banks", "description_providers", "generate_keys", "name", "primary_color", "pro", "redirect_uris", "secondary_color", "secret", "update_config"},
		Required:     []string{"id_client"},
		ResponseType: "Client",
		Auth:         []string{authScheme},
	})
	opCreateClient = register(&Operation{
		Name:         "clients_post",
		Method:       http.MethodPost,
		Path:         "/clients",
		QueryParams:  []string{"expand"},
		FormParams:   []string{"config", "generate_keys", "name", "redirect_uris"},
		ResponseType: "Client",
		Auth:         []string{authScheme},
	})
	opGetConfig = register(&Operation{
		Name:         "config_get",
		Method:       http.MethodGet,
		Path:         "/config",
		QueryParams:  []string{"search"},
		ResponseType: "object",
		Auth:         []string{authScheme},
	})
	opListConfigLogs = register(&Operation{
		Name:         "config_logs_get",
		Method:       http.MethodGet,
		Path:         "/config/logs",
		QueryParams:  []string{"search", "type", "min_date", "max_date", "expand"},
		ResponseType: "ConfigLogs",
		Auth:         []string{authScheme},
	})
	opUpdateConfig = register(&Operation{
		Name:         "config_post",
		Method:       http.MethodPost,
		Path:         "/config",
		QueryParams:  []string{"search"},
		FormParams:   []string{"config"},
		ResponseType: "object",
		Auth:         []string{authScheme},
	})
	opListMerchants = register(&Operation{
		Name:         "merchants_get",
		Method:       http.MethodGet,
		Path:         "/merchants",
		QueryParams:  []string{"expand"},
		ResponseType: "Merchants",
		Auth:         []string{authScheme},
	})
	opDeleteMerchantLogo = register(&Operation{
		Name:         "merchants_id_client_logo_delete",
		Method:       http.MethodDelete,
		Path:         "/merchants/{id_client}/logo",
		PathParams:   []string{"id_client"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_client"},
		ResponseType: "File",
		Auth:         []string{authScheme},
	})
	opUploadMerchantLogo = register(&Operation{
		Name:         "merchants_id_client_logo_post",
		Method:       http.MethodPost,
		Path:         "/merchants/{id_client}/logo",
		PathParams:   []string{"id_client"},
		QueryParams:  []string{"expand"},
		FileParams:   []string{"file"},
		Required:     []string{"id_client"},
		ResponseType: "File",
		Auth:         []string{authScheme},
	})
	opCreateMerchant = register(&Operation{
		Name:         "merchants_post",
		Method:       http.MethodPost,
		Path:         "/merchants",
		QueryParams:  []string{"expand"},
		FormParams:   []string{"iban", "name", "redirect_uris"},
		Required:     []string{"iban", "name", "redirect_uris"},
		ResponseType: "Client",
		Auth:         []string{authScheme},
	})
	opGetMonitoring = register(&Operation{
		Name:         "monitoring_get",
		Method:       http.MethodGet,
		Path:         "/monitoring",
		QueryParams:  []string{"period"},
		ResponseType: "object",
		Auth:         []string{authScheme},
	})
	opTestSync = register(&Operation{
		Name:   "test_sync_post",
		Method: http.MethodPost,
		Path:   "/test/sync",
		Auth:   []string{authScheme},
	})
	opTestWebhooks = register(&Operation{
		Name:   "test_webhooks_post",
		Method: http.MethodPost,
		Path:   "/test/webhooks",
		Auth:   []string{authScheme},
	})
	opDeleteWebhookAuths = register(&Operation{
		Name:         "webhooks_auth_delete",
		Method:       http.MethodDelete,
		Path:         "/webhooks/auth",
		QueryParams:  []string{"expand"},
		ResponseType: "AuthProvider",
		Auth:         []string{authScheme},
	})
	opListWebhookAuths = register(&Operation{
		Name:         "webhooks_auth_get",
		Method:       http.MethodGet,
		Path:         "/webhooks/auth",
		QueryParams:  []string{"expand"},
		ResponseType: "WebhooksAuth",
		Auth:         []string{authScheme},
	})
	opDeleteWebhookAuth = register(&Operation{
		Name:         "webhooks_auth_id_auth_delete",
		Method:       http.MethodDelete,
		Path:         "/webhooks/auth/{id_auth}",
		PathParams:   []string{"id_auth"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_auth"},
		ResponseType: "AuthProvider",
		Auth:         []string{authScheme},
	})
	opUpdateWebhookAuth = register(&Operation{
		Name:         "webhooks_auth_id_auth_post",
		Method:       http.MethodPost,
		Path:         "/webhooks/auth/{id_auth}",
		PathParams:   []string{"id_auth"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"name", "type", "config"},
		Required:     []string{"id_auth", "name", "type"},
		ResponseType: "AuthProvider",
		Auth:         []string{authScheme},
	})
	opReplaceWebhookAuth = register(&Operation{
		Name:         "webhooks_auth_id_auth_put",
		Method:       http.MethodPut,
		Path:         "/webhooks/auth/{id_auth}",
		PathParams:   []string{"id_auth"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"name", "type", "config"},
		Required:     []string{"id_auth", "name", "type"},
		ResponseType: "AuthProvider",
		Auth:         []string{authScheme},
	})
	opCreateWebhookAuth = register(&Operation{
		Name:         "webhooks_auth_post",
		Method:       http.MethodPost,
		Path:         "/webhooks/auth",
		QueryParams:  []string{"expand"},
		FormParams:   []string{"name", "type", "config"},
		Required:     []string{"name", "type"},
		ResponseType: "AuthProvider",
		Auth:         []string{authScheme},
	})
	opDeleteWebhooks = register(&Operation{
		Name:         "webhooks_delete",
		Method:       http.MethodDelete,
		Path:         "/webhooks",
		QueryParams:  []string{"expand"},
		ResponseType: "Webhook",
		Auth:         []string{authScheme},
	})
	opListWebhooks = register(&Operation{
		Name:         "webhooks_get",
		Method:       http.MethodGet,
		Path:         "/webhooks",
		QueryParams:  []string{"expand"},
		ResponseType: "Webhooks",
		Auth:         []string{authScheme},
	})
	opDeleteWebhookData = register(&Operation{
		Name:         "webhooks_id_webhook_add_to_data_delete",
		Method:       http.MethodDelete,
		Path:         "/webhooks/{id_webhook}/add_to_data",
		PathParams:   []string{"id_webhook"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_webhook"},
		ResponseType: "Webhook",
		Auth:         []string{authScheme},
	})
	opListWebhookData = register(&Operation{
		Name:         "webhooks_id_webhook_add_to_data_get",
		Method:       http.MethodGet,
		Path:         "/webhooks/{id_webhook}/add_to_data",
		PathParams:   []string{"id_webhook"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_webhook"},
		ResponseType: "WebHookAddToData",
		Auth:         []string{authScheme},
	})
	opDeleteWebhookDataKey = register(&Operation{
		Name:         "webhooks_id_webhook_add_to_data_key_delete",
		Method:       http.MethodDelete,
		Path:         "/webhooks/{id_webhook}/add_to_data/{key}",
		PathParams:   []string{"id_webhook", "key"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_webhook", "key"},
		ResponseType: "Webhook",
		Auth:         []string{authScheme},
	})
	opGetWebhookDataKey = register(&Operation{
		Name:         "webhooks_id_webhook_add_to_data_key_get",
		Method:       http.MethodGet,
		Path:         "/webhooks/{id_webhook}/add_to_data/{key}",
		PathParams:   []string{"id_webhook", "key"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_webhook", "key"},
		ResponseType: "Webhook",
		Auth:         []string{authScheme},
	})
	opSetWebhookDataKey = register(&Operation{
		Name:         "webhooks_id_webhook_add_to_data_key_post",
		Method:       http.MethodPost,
		Path:         "/webhooks/{id_webhook}/add_to_data/{key}",
		PathParams:   []string{"id_webhook", "key"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"value"},
		Required:     []string{"id_webhook", "key"},
		ResponseType: "Webhook",
		Auth:         []string{authScheme},
	})
	opAddWebhookData = register(&Operation{
		Name:         "webhooks_id_webhook_add_to_data_post",
		Method:       http.MethodPost,
		Path:         "/webhooks/{id_webhook}/add_to_data",
		PathParams:   []string{"id_webhook"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"key", "value"},
		Required:     []string{"id_webhook"},
		ResponseType: "Webhook",
		Auth:         []string{authScheme},
	})
	opDeleteWebhook = register(&Operation{
		Name:         "webhooks_id_webhook_delete",
		Method:       http.MethodDelete,
		Path:         "/webhooks/{id_webhook}",
		PathParams:   []string{"id_webhook"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_webhook"},
		ResponseType: "Webhook",
		Auth:         []string{authScheme},
	})
	opListWebhookLogs = register(&Operation{
		Name:         "webhooks_id_webhook_logs_get",
		Method:       http.MethodGet,
		Path:         "/webhooks/{id_webhook}/logs",
		PathParams:   []string{"id_webhook"},
		QueryParams:  []string{"id_user", "limit", "offset", "min_date", "max_date", "expand"},
		Required:     []string{"id_webhook"},
		ResponseType: "WebHookLogs",
		Auth:         []string{authScheme},
	})
	opUpdateWebhook = register(&Operation{
		Name:         "webhooks_id_webhook_post",
		Method:       http.MethodPost,
		Path:         "/webhooks/{id_webhook}",
		PathParams:   []string{"id_webhook"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"deleted", "event", "id_auth", "id_service", "id_user", "url"},
		Required:     []string{"id_webhook"},
		ResponseType: "Webhook",
		Auth:         []string{authScheme},
	})
	opReplaceWebhook = register(&Operation{
		Name:         "webhooks_id_webhook_put",
		Method:       http.MethodPut,
		Path:         "/webhooks/{id_webhook}",
		PathParams:   []string{"id_webhook"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"deleted", "event", "id_auth", "id_service", "id_user", "url"},
		Required:     []string{"id_webhook"},
		ResponseType: "Webhook",
		Auth:         []string{authScheme},
	})
	opCreateWebhook = register(&Operation{
		Name:         "webhooks_post",
		Method:       http.MethodPost,
		Path:         "/webhooks",
		QueryParams:  []string{"expand"},
		FormParams:   []string{"event", "id_auth", "id_service", "id_user", "params", "url"},
		ResponseType: "Webhook",
		Auth:         []string{authScheme},
	})
)

// ListClients returns the OAuth clients of the domain.
func (a *AdministrationAPI) ListClients(ctx context.Context, opts Params) (*Clients, error) {
	out, _, err := a.ListClientsWithHTTPInfo(ctx, opts)
	return out, err
}

// ListClientsWithHTTPInfo is ListClients and also returns the HTTP response.
func (a *AdministrationAPI) ListClientsWithHTTPInfo(ctx context.Context, opts Params) (*Clients, *http.Response, error) {
	return invoke[*Clients](ctx, a.client, opListClients, opts)
}

// DeleteClient removes an OAuth client.
func (a *AdministrationAPI) DeleteClient(ctx context.Context, idClient int64, opts Params) (*Client, error) {
	out, _, err := a.DeleteClientWithHTTPInfo(ctx, idClient, opts)
	return out, err
}

// DeleteClientWithHTTPInfo is DeleteClient and also returns the HTTP response.
func (a *AdministrationAPI) DeleteClientWithHTTPInfo(ctx context.Context, idClient int64, opts Params) (*Client, *http.Response, error) {
	return invoke[*Client](ctx, a.client, opDeleteClient, bind(opts, "id_client", idClient))
}

// GetClient returns one OAuth client.
func (a *AdministrationAPI) GetClient(ctx context.Context, idClient int64, opts Params) (*Client, error) {
	out, _, err := a.GetClientWithHTTPInfo(ctx, idClient, opts)
	return out, err
}

// GetClientWithHTTPInfo is GetClient and also returns the HTTP response.
func (a *AdministrationAPI) GetClientWithHTTPInfo(ctx context.Context, idClient int64, opts Params) (*Client, *http.Response, error) {
	return invoke[*Client](ctx, a.client, opGetClient, bind(opts, "id_client", idClient))
}

// DeleteClientLogo removes the logo of a client.
func (a *AdministrationAPI) DeleteClientLogo(ctx context.Context, idClient int64, opts Params) ([]byte, error) {
	out, _, err := a.DeleteClientLogoWithHTTPInfo(ctx, idClient, opts)
	return out, err
}

// DeleteClientLogoWithHTTPInfo is DeleteClientLogo and also returns the HTTP response.
func (a *AdministrationAPI) DeleteClientLogoWithHTTPInfo(ctx context.Context, idClient int64, opts Params) ([]byte, *http.Response, error) {
	return invoke[[]byte](ctx, a.client, opDeleteClientLogo, bind(opts, "id_client", idClient))
}

// UploadClientLogo sets the logo of a client. Pass the image under the "file"
// key of opts.
func (a *AdministrationAPI) UploadClientLogo(ctx context.Context, idClient int64, opts Params) ([]byte, error) {
	out, _, err := a.UploadClientLogoWithHTTPInfo(ctx, idClient, opts)
	return out, err
}

// UploadClientLogoWithHTTPInfo is UploadClientLogo and also returns the HTTP response.
func (a *AdministrationAPI) UploadClientLogoWithHTTPInfo(ctx context.Context, idClient int64, opts Params) ([]byte, *http.Response, error) {
	return invoke[[]byte](ctx, a.client, opUploadClientLogo, bind(opts, "id_client", idClient))
}

// UpdateClient changes an OAuth client. Setting "generate_keys" to true
// rotates the key pair.
func (a *AdministrationAPI) UpdateClient(ctx context.Context, idClient int64, opts Params) (*Client, error) {
	out, _, err := a.UpdateClientWithHTTPInfo(ctx, idClient, opts)
	return out, err
}

// UpdateClientWithHTTPInfo is UpdateClient and also returns the HTTP response.
func (a *AdministrationAPI) UpdateClientWithHTTPInfo(ctx context.Context, idClient int64, opts Params) (*Client, *http.Response, error) {
	return invoke[*Client](ctx, a.client, opUpdateClient, bind(opts, "id_client", idClient))
}

// CreateClient declares a new OAuth client.
func (a *AdministrationAPI) CreateClient(ctx context.Context, opts Params) (*Client, error) {
	out, _, err := a.CreateClientWithHTTPInfo(ctx, opts)
	return out, err
}

// CreateClientWithHTTPInfo is CreateClient and also returns the HTTP response.
func (a *AdministrationAPI) CreateClientWithHTTPInfo(ctx context.Context, opts Params) (*Client, *http.Response, error) {
	return invoke[*Client](ctx, a.client, opCreateClient, opts)
}

// GetConfig returns the domain configuration keys, optionally filtered by
// "search".
func (a *AdministrationAPI) GetConfig(ctx context.Context, opts Params) (json.RawMessage, error) {
	out, _, err := a.GetConfigWithHTTPInfo(ctx, opts)
	return out, err
}

// GetConfigWithHTTPInfo is GetConfig and also returns the HTTP response.
func (a *AdministrationAPI) GetConfigWithHTTPInfo(ctx context.Context, opts Params) (json.RawMessage, *http.Response, error) {
	return invoke[json.RawMessage](ctx, a.client, opGetConfig, opts)
}

// ListConfigLogs returns the history of configuration changes.
func (a *AdministrationAPI) ListConfigLogs(ctx context.Context, opts Params) (*ConfigLogs, error) {
	out, _, err := a.ListConfigLogsWithHTTPInfo(ctx, opts)
	return out, err
}

// ListConfigLogsWithHTTPInfo is ListConfigLogs and also returns the HTTP response.
func (a *AdministrationAPI) ListConfigLogsWithHTTPInfo(ctx context.Context, opts Params) (*ConfigLogs, *http.Response, error) {
	return invoke[*ConfigLogs](ctx, a.client, opListConfigLogs, opts)
}

// UpdateConfig sets configuration keys. The "config" option is a
// map[string]string sent as one form field per key.
func (a *AdministrationAPI) UpdateConfig(ctx context.Context, opts Params) (json.RawMessage, error) {
	out, _, err := a.UpdateConfigWithHTTPInfo(ctx, opts)
	return out, err
}

// UpdateConfigWithHTTPInfo is UpdateConfig and also returns the HTTP response.
func (a *AdministrationAPI) UpdateConfigWithHTTPInfo(ctx context.Context, opts Params) (json.RawMessage, *http.Response, error) {
	return invoke[json.RawMessage](ctx, a.client, opUpdateConfig, opts)
}

// ListMerchants returns the merchants of the domain.
func (a *AdministrationAPI) ListMerchants(ctx context.Context, opts Params) (*Merchants, error) {
	out, _, err := a.ListMerchantsWithHTTPInfo(ctx, opts)
	return out, err
}

// ListMerchantsWithHTTPInfo is ListMerchants and also returns the HTTP response.
func (a *AdministrationAPI) ListMerchantsWithHTTPInfo(ctx context.Context, opts Params) (*Merchants, *http.Response, error) {
	return invoke[*Merchants](ctx, a.client, opListMerchants, opts)
}

// DeleteMerchantLogo removes the logo of a merchant.
func (a *AdministrationAPI) DeleteMerchantLogo(ctx context.Context, idClient int64, opts Params) ([]byte, error) {
	out, _, err := a.DeleteMerchantLogoWithHTTPInfo(ctx, idClient, opts)
	return out, err
}

// DeleteMerchantLogoWithHTTPInfo is DeleteMerchantLogo and also returns the HTTP response.
func (a *AdministrationAPI) DeleteMerchantLogoWithHTTPInfo(ctx context.Context, idClient int64, opts Params) ([]byte, *http.Response, error) {
	return invoke[[]byte](ctx, a.client, opDeleteMerchantLogo, bind(opts, "id_client", idClient))
}

// UploadMerchantLogo sets the logo of a merchant.
func (a *AdministrationAPI) UploadMerchantLogo(ctx context.Context, idClient int64, opts Params) ([]byte, error) {
	out, _, err := a.UploadMerchantLogoWithHTTPInfo(ctx, idClient, opts)
	return out, err
}

// UploadMerchantLogoWithHTTPInfo is UploadMerchantLogo and also returns the HTTP response.
func (a *AdministrationAPI) UploadMerchantLogoWithHTTPInfo(ctx context.Context, idClient int64, opts Params) ([]byte, *http.Response, error) {
	return invoke[[]byte](ctx, a.client, opUploadMerchantLogo, bind(opts, "id_client", idClient))
}

// CreateMerchant declares a merchant able to receive payments on iban.
func (a *AdministrationAPI) CreateMerchant(ctx context.Context, iban, name string, redirectURIs []string, opts Params) (*Client, error) {
	out, _, err := a.CreateMerchantWithHTTPInfo(ctx, iban, name, redirectURIs, opts)
	return out, err
}

// CreateMerchantWithHTTPInfo is CreateMerchant and also returns the HTTP response.
func (a *AdministrationAPI) CreateMerchantWithHTTPInfo(ctx context.Context, iban, name string, redirectURIs []string, opts Params) (*Client, *http.Response, error) {
	return invoke[*Client](ctx, a.client, opCreateMerchant, bind(opts, "iban", iban, "name", name, "redirect_uris", redirectURIs))
}

// GetMonitoring returns synchronization statistics of the domain.
func (a *AdministrationAPI) GetMonitoring(ctx context.Context, opts Params) (json.RawMessage, error) {
	out, _, err := a.GetMonitoringWithHTTPInfo(ctx, opts)
	return out, err
}

// GetMonitoringWithHTTPInfo is GetMonitoring and also returns the HTTP response.
func (a *AdministrationAPI) GetMonitoringWithHTTPInfo(ctx context.Context, opts Params) (json.RawMessage, *http.Response, error) {
	return invoke[json.RawMessage](ctx, a.client, opGetMonitoring, opts)
}

// TestSync triggers a test synchronization.
func (a *AdministrationAPI) TestSync(ctx context.Context, opts Params) error {
	_, err := a.TestSyncWithHTTPInfo(ctx, opts)
	return err
}

// TestSyncWithHTTPInfo is TestSync and also returns the HTTP response.
func (a *AdministrationAPI) TestSyncWithHTTPInfo(ctx context.Context, opts Params) (*http.Response, error) {
	return a.client.call(ctx, opTestSync, opts, nil)
}

// TestWebhooks sends a test payload to every webhook of the domain.
func (a *AdministrationAPI) TestWebhooks(ctx context.Context, opts Params) error {
	_, err := a.TestWebhooksWithHTTPInfo(ctx, opts)
	return err
}

// TestWebhooksWithHTTPInfo is TestWebhooks and also returns the HTTP response.
func (a *AdministrationAPI) TestWebhooksWithHTTPInfo(ctx context.Context, opts Params) (*http.Response, error) {
	return a.client.call(ctx, opTestWebhooks, opts, nil)
}

// DeleteWebhookAuths removes every webhook authentication method.
func (a *AdministrationAPI) DeleteWebhookAuths(ctx context.Context, opts Params) (*AuthProvider, error) {
	out, _, err := a.DeleteWebhookAuthsWithHTTPInfo(ctx, opts)
	return out, err
}

// DeleteWebhookAuthsWithHTTPInfo is DeleteWebhookAuths and also returns the HTTP response.
func (a *AdministrationAPI) DeleteWebhookAuthsWithHTTPInfo(ctx context.Context, opts Params) (*AuthProvider, *http.Response, error) {
	return invoke[*AuthProvider](ctx, a.client, opDeleteWebhookAuths, opts)
}

// ListWebhookAuths returns the webhook authentication methods.
func (a *AdministrationAPI) ListWebhookAuths(ctx context.Context, opts Params) (*WebhooksAuth, error) {
	out, _, err := a.ListWebhookAuthsWithHTTPInfo(ctx, opts)
	return out, err
}

// ListWebhookAuthsWithHTTPInfo is ListWebhookAuths and also returns the HTTP response.
func (a *AdministrationAPI) ListWebhookAuthsWithHTTPInfo(ctx context.Context, opts Params) (*WebhooksAuth, *http.Response, error) {
	return invoke[*WebhooksAuth](ctx, a.client, opListWebhookAuths, opts)
}

// DeleteWebhookAuth removes a webhook authentication method.
func (a *AdministrationAPI) DeleteWebhookAuth(ctx context.Context, idAuth int64, opts Params) (*AuthProvider, error) {
	out, _, err := a.DeleteWebhookAuthWithHTTPInfo(ctx, idAuth, opts)
	return out, err
}

// DeleteWebhookAuthWithHTTPInfo is DeleteWebhookAuth and also returns the HTTP response.
func (a *AdministrationAPI) DeleteWebhookAuthWithHTTPInfo(ctx context.Context, idAuth int64, opts Params) (*AuthProvider, *http.Response, error) {
	return invoke[*AuthProvider](ctx, a.client, opDeleteWebhookAuth, bind(opts, "id_auth", idAuth))
}

// UpdateWebhookAuth changes a webhook authentication method.
func (a *AdministrationAPI) UpdateWebhookAuth(ctx context.Context, idAuth int64, name string, authType int, opts Params) (*AuthProvider, error) {
	out, _, err := a.UpdateWebhookAuthWithHTTPInfo(ctx, idAuth, name, authType, opts)
	return out, err
}

// UpdateWebhookAuthWithHTTPInfo is UpdateWebhookAuth and also returns the HTTP response.
func (a *AdministrationAPI) UpdateWebhookAuthWithHTTPInfo(ctx context.Context, idAuth int64, name string, authType int, opts Params) (*AuthProvider, *http.Response, error) {
	return invoke[*AuthProvider](ctx, a.client, opUpdateWebhookAuth, bind(opts, "id_auth", idAuth, "name", name, "type", authType))
}

// ReplaceWebhookAuth overwrites a webhook authentication method.
func (a *AdministrationAPI) ReplaceWebhookAuth(ctx context.Context, idAuth int64, name string, authType int, opts Params) (*AuthProvider, error) {
	out, _, err := a.ReplaceWebhookAuthWithHTTPInfo(ctx, idAuth, name, authType, opts)
	return out, err
}

// ReplaceWebhookAuthWithHTTPInfo is ReplaceWebhookAuth and also returns the HTTP response.
func (a *AdministrationAPI) ReplaceWebhookAuthWithHTTPInfo(ctx context.Context, idAuth int64, name string, authType int, opts Params) (*AuthProvider, *http.Response, error) {
	return invoke[*AuthProvider](ctx, a.client, opReplaceWebhookAuth, bind(opts, "id_auth", idAuth, "name", name, "type", authType))
}

// CreateWebhookAuth adds an authentication method for webhooks.
func (a *AdministrationAPI) CreateWebhookAuth(ctx context.Context, name string, authType int, opts Params) (*AuthProvider, error) {
	out, _, err := a.CreateWebhookAuthWithHTTPInfo(ctx, name, authType, opts)
	return out, err
}

// CreateWebhookAuthWithHTTPInfo is CreateWebhookAuth and also returns the HTTP response.
func (a *AdministrationAPI) CreateWebhookAuthWithHTTPInfo(ctx context.Context, name string, authType int, opts Params) (*AuthProvider, *http.Response, error) {
	return invoke[*AuthProvider](ctx, a.client, opCreateWebhookAuth, bind(opts, "name", name, "type", authType))
}

// DeleteWebhooks removes every webhook of the domain.
func (a *AdministrationAPI) DeleteWebhooks(ctx context.Context, opts Params) (*Webhook, error) {
	out, _, err := a.DeleteWebhooksWithHTTPInfo(ctx, opts)
	return out, err
}

// DeleteWebhooksWithHTTPInfo is DeleteWebhooks and also returns the HTTP response.
func (a *AdministrationAPI) DeleteWebhooksWithHTTPInfo(ctx context.Context, opts Params) (*Webhook, *http.Response, error) {
	return invoke[*Webhook](ctx, a.client, opDeleteWebhooks, opts)
}

// ListWebhooks returns the webhooks of the domain.
func (a *AdministrationAPI) ListWebhooks(ctx context.Context, opts Params) (*Webhooks, error) {
	out, _, err := a.ListWebhooksWithHTTPInfo(ctx, opts)
	return out, err
}

// ListWebhooksWithHTTPInfo is ListWebhooks and also returns the HTTP response.
func (a *AdministrationAPI) ListWebhooksWithHTTPInfo(ctx context.Context, opts Params) (*Webhooks, *http.Response, error) {
	return invoke[*Webhooks](ctx, a.client, opListWebhooks, opts)
}

// DeleteWebhookData removes every extra key sent with a webhook.
func (a *AdministrationAPI) DeleteWebhookData(ctx context.Context, idWebhook int64, opts Params) (*Webhook, error) {
	out, _, err := a.DeleteWebhookDataWithHTTPInfo(ctx, idWebhook, opts)
	return out, err
}

// DeleteWebhookDataWithHTTPInfo is DeleteWebhookData and also returns the HTTP response.
func (a *AdministrationAPI) DeleteWebhookDataWithHTTPInfo(ctx context.Context, idWebhook int64, opts Params) (*Webhook, *http.Response, error) {
	return invoke[*Webhook](ctx, a.client, opDeleteWebhookData, bind(opts, "id_webhook", idWebhook))
}

// ListWebhookData returns the extra keys sent with a webhook.
func (a *AdministrationAPI) ListWebhookData(ctx context.Context, idWebhook int64, opts Params) (*WebHookAddToData, error) {
	out, _, err := a.ListWebhookDataWithHTTPInfo(ctx, idWebhook, opts)
	return out, err
}

// ListWebhookDataWithHTTPInfo is ListWebhookData and also returns the HTTP response.
func (a *AdministrationAPI) ListWebhookDataWithHTTPInfo(ctx context.Context, idWebhook int64, opts Params) (*WebHookAddToData, *http.Response, error) {
	return invoke[*WebHookAddToData](ctx, a.client, opListWebhookData, bind(opts, "id_webhook", idWebhook))
}

// DeleteWebhookDataKey removes one additional data key from a webhook.
func (a *AdministrationAPI) DeleteWebhookDataKey(ctx context.Context, idWebhook int64, key string, opts Params) (*Webhook, error) {
	out, _, err := a.DeleteWebhookDataKeyWithHTTPInfo(ctx, idWebhook, key, opts)
	return out, err
}

// DeleteWebhookDataKeyWithHTTPInfo is DeleteWebhookDataKey and also returns the HTTP response.
func (a *AdministrationAPI) DeleteWebhookDataKeyWithHTTPInfo(ctx context.Context, idWebhook int64, key string, opts Params) (*Webhook, *http.Response, error) {
	return invoke[*Webhook](ctx, a.client, opDeleteWebhookDataKey, bind(opts, "id_webhook", idWebhook, "key", key))
}

// GetWebhookDataKey returns one additional data key of a webhook.
func (a *AdministrationAPI) GetWebhookDataKey(ctx context.Context, idWebhook int64, key string, opts Params) (*Webhook, error) {
	out, _, err := a.GetWebhookDataKeyWithHTTPInfo(ctx, idWebhook, key, opts)
	return out, err
}

// GetWebhookDataKeyWithHTTPInfo is GetWebhookDataKey and also returns the HTTP response.
func (a *AdministrationAPI) GetWebhookDataKeyWithHTTPInfo(ctx context.Context, idWebhook int64, key string, opts Params) (*Webhook, *http.Response, error) {
	return invoke[*Webhook](ctx, a.client, opGetWebhookDataKey, bind(opts, "id_webhook", idWebhook, "key", key))
}

// SetWebhookDataKey sets the value of an extra key sent with a webhook.
func (a *AdministrationAPI) SetWebhookDataKey(ctx context.Context, idWebhook int64, key string, opts Params) (*Webhook, error) {
	out, _, err := a.SetWebhookDataKeyWithHTTPInfo(ctx, idWebhook, key, opts)
	return out, err
}

// SetWebhookDataKeyWithHTTPInfo is SetWebhookDataKey and also returns the HTTP response.
func (a *AdministrationAPI) SetWebhookDataKeyWithHTTPInfo(ctx context.Context, idWebhook int64, key string, opts Params) (*Webhook, *http.Response, error) {
	return invoke[*Webhook](ctx, a.client, opSetWebhookDataKey, bind(opts, "id_webhook", idWebhook, "key", key))
}

// AddWebhookData adds an extra key/value pair to the payloads of a webhook.
func (a *AdministrationAPI) AddWebhookData(ctx context.Context, idWebhook int64, opts Params) (*Webhook, error) {
	out, _, err := a.AddWebhookDataWithHTTPInfo(ctx, idWebhook, opts)
	return out, err
}

// AddWebhookDataWithHTTPInfo is AddWebhookData and also returns the HTTP response.
func (a *AdministrationAPI) AddWebhookDataWithHTTPInfo(ctx context.Context, idWebhook int64, opts Params) (*Webhook, *http.Response, error) {
	return invoke[*Webhook](ctx, a.client, opAddWebhookData, bind(opts, "id_webhook", idWebhook))
}

// DeleteWebhook removes a webhook.
func (a *AdministrationAPI) DeleteWebhook(ctx context.Context, idWebhook int64, opts Params) (*Webhook, error) {
	out, _, err := a.DeleteWebhookWithHTTPInfo(ctx, idWebhook, opts)
	return out, err
}

// DeleteWebhookWithHTTPInfo is DeleteWebhook and also returns the HTTP response.
func (a *AdministrationAPI) DeleteWebhookWithHTTPInfo(ctx context.Context, idWebhook int64, opts Params) (*Webhook, *http.Response, error) {
	return invoke[*Webhook](ctx, a.client, opDeleteWebhook, bind(opts, "id_webhook", idWebhook))
}

// ListWebhookLogs returns the delivery attempts of a webhook.
func (a *AdministrationAPI) ListWebhookLogs(ctx context.Context, idWebhook int64, opts Params) (*WebHookLogs, error) {
	out, _, err := a.ListWebhookLogsWithHTTPInfo(ctx, idWebhook, opts)
	return out, err
}

// ListWebhookLogsWithHTTPInfo is ListWebhookLogs and also returns the HTTP response.
func (a *AdministrationAPI) ListWebhookLogsWithHTTPInfo(ctx context.Context, idWebhook int64, opts Params) (*WebHookLogs, *http.Response, error) {
	return invoke[*WebHookLogs](ctx, a.client, opListWebhookLogs, bind(opts, "id_webhook", idWebhook))
}

// UpdateWebhook changes a webhook. Setting "deleted" to true disables it.
func (a *AdministrationAPI) UpdateWebhook(ctx context.Context, idWebhook int64, opts Params) (*Webhook, error) {
	out, _, err := a.UpdateWebhookWithHTTPInfo(ctx, idWebhook, opts)
	return out, err
}

// UpdateWebhookWithHTTPInfo is UpdateWebhook and also returns the HTTP response.
func (a *AdministrationAPI) UpdateWebhookWithHTTPInfo(ctx context.Context, idWebhook int64, opts Params) (*Webhook, *http.Response, error) {
	return invoke[*Webhook](ctx, a.client, opUpdateWebhook, bind(opts, "id_webhook", idWebhook))
}

// ReplaceWebhook overwrites a webhook.
func (a *AdministrationAPI) ReplaceWebhook(ctx context.Context, idWebhook int64, opts Params) (*Webhook, error) {
	out, _, err := a.ReplaceWebhookWithHTTPInfo(ctx, idWebhook, opts)
	return out, err
}

// ReplaceWebhookWithHTTPInfo is ReplaceWebhook and also returns the HTTP response.
func (a *AdministrationAPI) ReplaceWebhookWithHTTPInfo(ctx context.Context, idWebhook int64, opts Params) (*Webhook, *http.Response, error) {
	return invoke[*Webhook](ctx, a.client, opReplaceWebhook, bind(opts, "id_webhook", idWebhook))
}

// CreateWebhook registers a URL called on event.
func (a *AdministrationAPI) CreateWebhook(ctx context.Context, opts Params) (*Webhook, error) {
	out, _, err := a.CreateWebhookWithHTTPInfo(ctx, opts)
	return out, err
}

// CreateWebhookWithHTTPInfo is CreateWebhook and also returns the HTTP response.
func (a *AdministrationAPI) CreateWebhookWithHTTPInfo(ctx context.Context, opts Params) (*Webhook, *http.Response, error) {
	return invoke[*Webhook](ctx, a.client, opCreateWebhook, opts)
}
