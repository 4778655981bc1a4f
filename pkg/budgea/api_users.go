package budgea

import (
	"context"
	"net/http"
)

// UsersAPI manages users.
type UsersAPI service

var (
	opListUsers = register(&Operation{
		Name:         "users_get",
		Method:       http.MethodGet,
		Path:         "/users",
		QueryParams:  []string{"expand", "limit", "offset"},
		ResponseType: "Users",
		Auth:         []string{authScheme},
	})
	opGetUser = register(&Operation{
		Name:         "users_id_user_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}",
		PathParams:   []string{"id_user"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_user"},
		ResponseType: "User",
		Auth:         []string{authScheme},
	})
	opDeleteUser = register(&Operation{
		Name:         "users_id_user_delete",
		Method:       http.MethodDelete,
		Path:         "/users/{id_user}",
		PathParams:   []string{"id_user"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_user"},
		ResponseType: "User",
		Auth:         []string{authScheme},
	})
	opGetUserConfig = register(&Operation{
		Name:         "users_id_user_config_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/config",
		PathParams:   []string{"id_user"},
		Required:     []string{"id_user"},
		ResponseType: "UserConfig",
		Auth:         []string{authScheme},
	})
	opListUserLogs = register(&Operation{
		Name:         "users_id_user_logs_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/logs",
		PathParams:   []string{"id_user"},
		QueryParams:  []string{"limit", "offset", "min_date", "max_date", "state", "period", "id_connection", "id_bank", "charged", "expand"},
		Required:     []string{"id_user"},
		ResponseType: "ConnectionLogs",
		Auth:         []string{authScheme},
	})
)

// ListUsers returns the users of the domain. Needs a manage token.
func (a *UsersAPI) ListUsers(ctx context.Context, opts Params) (*Users, error) {
	out, _, err := a.ListUsersWithHTTPInfo(ctx, opts)
	return out, err
}

// ListUsersWithHTTPInfo is ListUsers and also returns the HTTP response.
func (a *UsersAPI) ListUsersWithHTTPInfo(ctx context.Context, opts Params) (*Users, *http.Response, error) {
	return invoke[*Users](ctx, a.client, opListUsers, opts)
}

// GetUser returns a user. Use Me for the owner of the token.
func (a *UsersAPI) GetUser(ctx context.Context, idUser string, opts Params) (*User, error) {
	out, _, err := a.GetUserWithHTTPInfo(ctx, idUser, opts)
	return out, err
}

// GetUserWithHTTPInfo is GetUser and also returns the HTTP response.
func (a *UsersAPI) GetUserWithHTTPInfo(ctx context.Context, idUser string, opts Params) (*User, *http.Response, error) {
	return invoke[*User](ctx, a.client, opGetUser, bind(opts, "id_user", idUser))
}

// DeleteUser removes a user with all its connections and data.
func (a *UsersAPI) DeleteUser(ctx context.Context, idUser string, opts Params) (*User, error) {
	out, _, err := a.DeleteUserWithHTTPInfo(ctx, idUser, opts)
	return out, err
}

// DeleteUserWithHTTPInfo is DeleteUser and also returns the HTTP response.
func (a *UsersAPI) DeleteUserWithHTTPInfo(ctx context.Context, idUser string, opts Params) (*User, *http.Response, error) {
	return invoke[*User](ctx, a.client, opDeleteUser, bind(opts, "id_user", idUser))
}

// GetUserConfig returns the configuration of a user.
func (a *UsersAPI) GetUserConfig(ctx context.Context, idUser string, opts Params) (UserConfig, error) {
	out, _, err := a.GetUserConfigWithHTTPInfo(ctx, idUser, opts)
	return out, err
}

// GetUserConfigWithHTTPInfo is GetUserConfig and also returns the HTTP response.
func (a *UsersAPI) GetUserConfigWithHTTPInfo(ctx context.Context, idUser string, opts Params) (UserConfig, *http.Response, error) {
	return invoke[UserConfig](ctx, a.client, opGetUserConfig, bind(opts, "id_user", idUser))
}

// ListUserLogs returns the synchronization logs of every connection of a user.
func (a *UsersAPI) ListUserLogs(ctx context.Context, idUser string, opts Params) (*ConnectionLogs, error) {
	out, _, err := a.ListUserLogsWithHTTPInfo(ctx, idUser, opts)
	return out, err
}

// ListUserLogsWithHTTPInfo is ListUserLogs and also returns the HTTP response.
func (a *UsersAPI) ListUserLogsWithHTTPInfo(ctx context.Context, idUser string, opts Params) (*ConnectionLogs, *http.Response, error) {
	return invoke[*ConnectionLogs](ctx, a.client, opListUserLogs, bind(opts, "id_user", idUser))
}
