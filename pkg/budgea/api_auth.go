package budgea

import (
	"context"
	"net/http"
)

// AuthAPI creates users and exchanges codes for tokens.
type AuthAPI service

var (
	opInitAnonymousUser = register(&Operation{
		Name:         "auth_init_post",
		Method:       http.MethodPost,
		Path:         "/auth/init",
		FormParams:   []string{"client_id", "client_secret"},
		ContentType:  contentTypeForm,
		ResponseType: "AuthInit",
	})
	opGetTemporaryCode = register(&Operation{
		Name:         "auth_token_code_get",
		Method:       http.MethodGet,
		Path:         "/auth/token/code",
		QueryParams:  []string{"type"},
		ResponseType: "AuthTokenCode",
		Auth:         []string{authScheme},
	})
	opExchangeCode = register(&Operation{
		Name:         "auth_token_access_post",
		Method:       http.MethodPost,
		Path:         "/auth/token/access",
		FormParams:   []string{"code", "client_id", "client_secret", "redirect_uri", "grant_type"},
		Required:     []string{"code"},
		ContentType:  contentTypeForm,
		ResponseType: "AccessToken",
	})
	opCreateJWT = register(&Operation{
		Name:         "auth_jwt_post",
		Method:       http.MethodPost,
		Path:         "/auth/jwt",
		FormParams:   []string{"expire", "id_user"},
		ContentType:  contentTypeForm,
		ResponseType: "JWT",
		Auth:         []string{authScheme},
	})
)

// InitAnonymousUser creates a user and returns its permanent token. With
// client credentials in opts the token is bound to that client.
func (a *AuthAPI) InitAnonymousUser(ctx context.Context, opts Params) (*AuthInit, error) {
	out, _, err := a.InitAnonymousUserWithHTTPInfo(ctx, opts)
	return out, err
}

// InitAnonymousUserWithHTTPInfo is InitAnonymousUser and also returns the HTTP response.
func (a *AuthAPI) InitAnonymousUserWithHTTPInfo(ctx context.Context, opts Params) (*AuthInit, *http.Response, error) {
	return invoke[*AuthInit](ctx, a.client, opInitAnonymousUser, opts)
}

// GetTemporaryCode returns a short-lived code for the user owning the token,
// for use by a webview.
func (a *AuthAPI) GetTemporaryCode(ctx context.Context, opts Params) (*AuthTokenCode, error) {
	out, _, err := a.GetTemporaryCodeWithHTTPInfo(ctx, opts)
	return out, err
}

// GetTemporaryCodeWithHTTPInfo is GetTemporaryCode and also returns the HTTP response.
func (a *AuthAPI) GetTemporaryCodeWithHTTPInfo(ctx context.Context, opts Params) (*AuthTokenCode, *http.Response, error) {
	return invoke[*AuthTokenCode](ctx, a.client, opGetTemporaryCode, opts)
}

// ExchangeCode trades a temporary or OAuth code for a permanent access token.
func (a *AuthAPI) ExchangeCode(ctx context.Context, code string, opts Params) (*AccessToken, error) {
	out, _, err := a.ExchangeCodeWithHTTPInfo(ctx, code, opts)
	return out, err
}

// ExchangeCodeWithHTTPInfo is ExchangeCode and also returns the HTTP response.
func (a *AuthAPI) ExchangeCodeWithHTTPInfo(ctx context.Context, code string, opts Params) (*AccessToken, *http.Response, error) {
	return invoke[*AccessToken](ctx, a.client, opExchangeCode, bind(opts, "code", code))
}

// CreateJWT issues a JSON web token for the current user.
func (a *AuthAPI) CreateJWT(ctx context.Context, opts Params) (*JWT, error) {
	out, _, err := a.CreateJWTWithHTTPInfo(ctx, opts)
	return out, err
}

// CreateJWTWithHTTPInfo is CreateJWT and also returns the HTTP response.
func (a *AuthAPI) CreateJWTWithHTTPInfo(ctx context.Context, opts Params) (*JWT, *http.Response, error) {
	return invoke[*JWT](ctx, a.client, opCreateJWT, opts)
}
