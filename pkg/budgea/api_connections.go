package budgea

import (
	"context"
	"net/http"
)

// ConnectionsAPI manages the bank connections of a user.
type ConnectionsAPI service

var (
	opListConnections = register(&Operation{
		Name:         "users_id_user_connections_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/connections",
		PathParams:   []string{"id_user"},
		QueryParams:  []string{"expand", "source"},
		Required:     []string{"id_user"},
		ResponseType: "Connections",
		Auth:         []string{authScheme},
	})
	opCreateConnection = register(&Operation{
		Name:         "users_id_user_connections_post",
		Method:       http.MethodPost,
		Path:         "/users/{id_user}/connections",
		PathParams:   []string{"id_user"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"id_bank", "fields", "login", "password", "id_provider"},
		Required:     []string{"id_user", "id_bank"},
		ContentType:  contentTypeForm,
		ResponseType: "Connection",
		Auth:         []string{authScheme},
	})
	opGetConnection = register(&Operation{
		Name:         "users_id_user_connections_id_connection_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/connections/{id_connection}",
		PathParams:   []string{"id_user", "id_connection"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_user", "id_connection"},
		ResponseType: "Connection",
		Auth:         []string{authScheme},
	})
	opSyncConnection = register(&Operation{
		Name:         "users_id_user_connections_id_connection_put",
		Method:       http.MethodPut,
		Path:         "/users/{id_user}/connections/{id_connection}",
		PathParams:   []string{"id_user", "id_connection"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_user", "id_connection"},
		ResponseType: "Connection",
		Auth:         []string{authScheme},
	})
	opUpdateConnection = register(&Operation{
		Name:         "users_id_user_connections_id_connection_post",
		Method:       http.MethodPost,
		Path:         "/users/{id_user}/connections/{id_connection}",
		PathParams:   []string{"id_user", "id_connection"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"fields", "active", "decoupled", "resume"},
		Required:     []string{"id_user", "id_connection"},
		ContentType:  contentTypeForm,
		ResponseType: "Connection",
		Auth:         []string{authScheme},
	})
	opDeleteConnection = register(&Operation{
		Name:         "users_id_user_connections_id_connection_delete",
		Method:       http.MethodDelete,
		Path:         "/users/{id_user}/connections/{id_connection}",
		PathParams:   []string{"id_user", "id_connection"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_user", "id_connection"},
		ResponseType: "Connection",
		Auth:         []string{authScheme},
	})
	opListConnectionLogs = register(&Operation{
		Name:         "users_id_user_connections_id_connection_logs_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/connections/{id_connection}/logs",
		PathParams:   []string{"id_user", "id_connection"},
		QueryParams:  []string{"limit", "offset", "min_date", "max_date", "state", "period", "expand"},
		Required:     []string{"id_user", "id_connection"},
		ResponseType: "ConnectionLogs",
		Auth:         []string{authScheme},
	})
)

// ListConnections returns the connections of a user.
func (a *ConnectionsAPI) ListConnections(ctx context.Context, idUser string, opts Params) (*Connections, error) {
	out, _, err := a.ListConnectionsWithHTTPInfo(ctx, idUser, opts)
	return out, err
}

// ListConnectionsWithHTTPInfo is ListConnections and also returns the HTTP response.
func (a *ConnectionsAPI) ListConnectionsWithHTTPInfo(ctx context.Context, idUser string, opts Params) (*Connections, *http.Response, error) {
	return invoke[*Connections](ctx, a.client, opListConnections, bind(opts, "id_user", idUser))
}

// CreateConnection adds a connection to a bank and runs its first
// synchronization. The "fields" option is a map[string]string of the connector
// login form, see ListBankFields.
func (a *ConnectionsAPI) CreateConnection(ctx context.Context, idUser string, idBank int64, opts Params) (*Connection, error) {
	out, _, err := a.CreateConnectionWithHTTPInfo(ctx, idUser, idBank, opts)
	return out, err
}

// CreateConnectionWithHTTPInfo is CreateConnection and also returns the HTTP response.
func (a *ConnectionsAPI) CreateConnectionWithHTTPInfo(ctx context.Context, idUser string, idBank int64, opts Params) (*Connection, *http.Response, error) {
	return invoke[*Connection](ctx, a.client, opCreateConnection, bind(opts, "id_user", idUser, "id_bank", idBank))
}

// GetConnection returns a single connection.
func (a *ConnectionsAPI) GetConnection(ctx context.Context, idUser string, idConnection int64, opts Params) (*Connection, error) {
	out, _, err := a.GetConnectionWithHTTPInfo(ctx, idUser, idConnection, opts)
	return out, err
}

// GetConnectionWithHTTPInfo is GetConnection and also returns the HTTP response.
func (a *ConnectionsAPI) GetConnectionWithHTTPInfo(ctx context.Context, idUser string, idConnection int64, opts Params) (*Connection, *http.Response, error) {
	return invoke[*Connection](ctx, a.client, opGetConnection, bind(opts, "id_user", idUser, "id_connection", idConnection))
}

// SyncConnection forces a synchronization of the connection.
func (a *ConnectionsAPI) SyncConnection(ctx context.Context, idUser string, idConnection int64, opts Params) (*Connection, error) {
	out, _, err := a.SyncConnectionWithHTTPInfo(ctx, idUser, idConnection, opts)
	return out, err
}

// SyncConnectionWithHTTPInfo is SyncConnection and also returns the HTTP response.
func (a *ConnectionsAPI) SyncConnectionWithHTTPInfo(ctx context.Context, idUser string, idConnection int64, opts Params) (*Connection, *http.Response, error) {
	return invoke[*Connection](ctx, a.client, opSyncConnection, bind(opts, "id_user", idUser, "id_connection", idConnection))
}

// UpdateConnection sends new credentials or the answer to a two-factor
// challenge, or enables and disables the connection.
func (a *ConnectionsAPI) UpdateConnection(ctx context.Context, idUser string, idConnection int64, opts Params) (*Connection, error) {
	out, _, err := a.UpdateConnectionWithHTTPInfo(ctx, idUser, idConnection, opts)
	return out, err
}

// UpdateConnectionWithHTTPInfo is UpdateConnection and also returns the HTTP response.
func (a *ConnectionsAPI) UpdateConnectionWithHTTPInfo(ctx context.Context, idUser string, idConnection int64, opts Params) (*Connection, *http.Response, error) {
	return invoke[*Connection](ctx, a.client, opUpdateConnection, bind(opts, "id_user", idUser, "id_connection", idConnection))
}

// DeleteConnection removes a connection and its accounts.
func (a *ConnectionsAPI) DeleteConnection(ctx context.Context, idUser string, idConnection int64, opts Params) (*Connection, error) {
	out, _, err := a.DeleteConnectionWithHTTPInfo(ctx, idUser, idConnection, opts)
	return out, err
}

// DeleteConnectionWithHTTPInfo is DeleteConnection and also returns the HTTP response.
func (a *ConnectionsAPI) DeleteConnectionWithHTTPInfo(ctx context.Context, idUser string, idConnection int64, opts Params) (*Connection, *http.Response, error) {
	return invoke[*Connection](ctx, a.client, opDeleteConnection, bind(opts, "id_user", idUser, "id_connection", idConnection))
}

// ListConnectionLogs returns the synchronization logs of a connection.
func (a *ConnectionsAPI) ListConnectionLogs(ctx context.Context, idUser string, idConnection int64, opts Params) (*ConnectionLogs, error) {
	out, _, err := a.ListConnectionLogsWithHTTPInfo(ctx, idUser, idConnection, opts)
	return out, err
}

// ListConnectionLogsWithHTTPInfo is ListConnectionLogs and also returns the HTTP response.
func (a *ConnectionsAPI) ListConnectionLogsWithHTTPInfo(ctx context.Context, idUser string, idConnection int64, opts Params) (*ConnectionLogs, *http.Response, error) {
	return invoke[*ConnectionLogs](ctx, a.client, opListConnectionLogs, bind(opts, "id_user", idUser, "id_connection", idConnection))
}
