package budgea

import (
	"errors"
	"maps"
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placeholder = regexp.MustCompile(`\{([a-z_]+)\}`)

func TestOperations_TableConsistency(t *testing.T) {
	ops := Operations()
	require.NotEmpty(t, ops)

	seen := map[string]bool{}
	for _, op := range ops {
		t.Run(op.Name, func(t *testing.T) {
			assert.False(t, seen[op.Name], "duplicate operation name")
			seen[op.Name] = true

			var tokens []string
			for _, m := range placeholder.FindAllStringSubmatch(op.Path, -1) {
				tokens = append(tokens, m[1])
			}
			assert.ElementsMatch(t, tokens, op.PathParams, "path params must match the template")
			for _, p := range op.PathParams {
				assert.Contains(t, op.Required, p, "path param %s must be required", p)
			}
			for _, r := range op.Required {
				assert.True(t, op.Declares(r), "required param %s is not declared", r)
			}
			for _, f := range op.FileParams {
				assert.NotContains(t, op.QueryParams, f)
				assert.NotContains(t, op.FormParams, f)
			}
			if len(op.FileParams) > 0 {
				assert.Equal(t, contentTypeMultipart, op.ContentType)
			}

			all := op.Params()
			unique := slices.Compact(slices.Sorted(slices.Values(all)))
			assert.Len(t, unique, len(all), "a param is declared in two buckets")
		})
	}
}

func TestOperations_AdministrationSurface(t *testing.T) {
	names := []string{
		"clients_get", "clients_id_client_delete", "clients_id_client_get",
		"clients_id_client_logo_delete", "clients_id_client_logo_post", "clients_id_client_put",
		"clients_post", "config_get", "config_logs_get", "config_post", "merchants_get",
		"merchants_id_client_logo_delete", "merchants_id_client_logo_post", "merchants_post",
		"monitoring_get", "test_sync_post", "test_webhooks_post", "webhooks_auth_delete",
		"webhooks_auth_get", "webhooks_auth_id_auth_delete", "webhooks_auth_id_auth_post",
		"webhooks_auth_id_auth_put", "webhooks_auth_post", "webhooks_delete", "webhooks_get",
		"webhooks_id_webhook_add_to_data_delete", "webhooks_id_webhook_add_to_data_get",
		"webhooks_id_webhook_add_to_data_key_delete", "webhooks_id_webhook_add_to_data_key_get",
		"webhooks_id_webhook_add_to_data_key_post", "webhooks_id_webhook_add_to_data_post",
		"webhooks_id_webhook_delete", "webhooks_id_webhook_logs_get", "webhooks_id_webhook_post",
		"webhooks_id_webhook_put", "webhooks_post",
	}
	for _, name := range names {
		op, ok := LookupOperation(name)
		if assert.True(t, ok, "missing operation %s", name) {
			assert.Equal(t, []string{authScheme}, op.Auth)
		}
	}
}

func TestOperation_Bind(t *testing.T) {
	tests := []struct {
		name      string
		op        *Operation
		params    Params
		wantErr   error
		wantParam string
		check     func(t *testing.T, r *request)
	}{
		{
			name:      "unexpected parameter",
			op:        opListWebhookLogs,
			params:    Params{"id_webhook": int64(7), "foo": 1},
			wantErr:   ErrUnexpectedParameter,
			wantParam: "foo",
		},
		{
			name:      "missing path parameter",
			op:        opListWebhookLogs,
			params:    Params{"limit": 10},
			wantErr:   ErrMissingParameter,
			wantParam: "id_webhook",
		},
		{
			name:      "empty required string",
			op:        opCreateWebhookAuth,
			params:    Params{"name": "", "type": 1},
			wantErr:   ErrMissingParameter,
			wantParam: "name",
		},
		{
			name:      "zero date is missing",
			op:        opCreateTransaction,
			params:    Params{"id_user": Me, "id_account": int64(1), "original_wording": "CB", "value": 1, "date": Date{}},
			wantErr:   ErrMissingParameter,
			wantParam: "date",
		},
		{
			name:   "path and query",
			op:     opListWebhookLogs,
			params: Params{"id_webhook": int64(42), "limit": 10, "min_date": NewDate(2024, 1, 31), "expand": nil},
			check: func(t *testing.T, r *request) {
				assert.Equal(t, "/webhooks/42/logs", r.path)
				assert.Equal(t, "10", r.query.Get("limit"))
				assert.Equal(t, "2024-01-31", r.query.Get("min_date"))
				assert.False(t, r.query.Has("expand"), "nil optional must be absent")
				assert.False(t, r.query.Has("offset"))
				assert.Empty(t, r.form)
			},
		},
		{
			name:   "path values are escaped",
			op:     opGetWebhookDataKey,
			params: Params{"id_webhook": int64(1), "key": "a/b c"},
			check: func(t *testing.T, r *request) {
				assert.Equal(t, "/webhooks/1/add_to_data/a%2Fb%20c", r.path)
			},
		},
		{
			name:   "form with csv list",
			op:     opCreateMerchant,
			params: Params{"iban": "FR76", "name": "shop", "redirect_uris": []string{"https://a", "https://b"}},
			check: func(t *testing.T, r *request) {
				assert.Equal(t, "/merchants", r.path)
				assert.Equal(t, "https://a,https://b", r.form.Get("redirect_uris"))
				assert.Equal(t, "FR76", r.form.Get("iban"))
				assert.Empty(t, r.query)
			},
		},
		{
			name: "dynamic fields are flattened",
			op:   opCreateConnection,
			params: Params{
				"id_user": Me, "id_bank": int64(59),
				"fields": map[string]string{"login": "u", "password": "p"},
			},
			check: func(t *testing.T, r *request) {
				assert.Equal(t, "59", r.form.Get("id_bank"))
				assert.Equal(t, "u", r.form.Get("login"))
				assert.Equal(t, "p", r.form.Get("password"))
				assert.False(t, r.form.Has("fields"))
			},
		},
		{
			name:   "file goes to the file bucket",
			op:     opUploadClientLogo,
			params: Params{"id_client": int64(3), "file": []byte("png")},
			check: func(t *testing.T, r *request) {
				assert.Contains(t, r.files, "file")
				assert.Empty(t, r.form)
				assert.Empty(t, r.query)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.op.bind(tt.params)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				var perr *ParamError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, tt.wantParam, perr.Param)
				assert.Equal(t, tt.op.Name, perr.Operation)
				return
			}
			require.NoError(t, err)
			tt.check(t, r)
		})
	}
}

func TestParamError_Messages(t *testing.T) {
	_, err := opGetClient.bind(Params{"id_client": int64(1), "bogus": true})
	require.Error(t, err)
	assert.Equal(t, `budgea: got an unexpected parameter "bogus" to method clients_id_client_get`, err.Error())

	_, err = opGetClient.bind(nil)
	require.Error(t, err)
	assert.Equal(t, `budgea: missing the required parameter "id_client" when calling clients_id_client_get`, err.Error())
}

func TestBind_DoesNotMutateOptions(t *testing.T) {
	opts := Params{"expand": "accounts"}
	p := bind(opts, "id_user", Me)

	assert.Len(t, opts, 1)
	assert.Equal(t, Me, p["id_user"])
	assert.Equal(t, "accounts", p["expand"])
}

func TestOperations_BindRejectsIncompleteParams(t *testing.T) {
	for _, op := range Operations() {
		t.Run(op.Name, func(t *testing.T) {
			full := Params{}
			for _, name := range op.Required {
				full[name] = "x"
			}

			for _, name := range op.Required {
				params := maps.Clone(full)
				delete(params, name)

				_, err := op.bind(params)
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMissingParameter)
				var perr *ParamError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, name, perr.Param)
			}

			params := maps.Clone(full)
			params["bogus_param"] = "x"
			_, err := op.bind(params)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnexpectedParameter)
			var perr *ParamError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "bogus_param", perr.Param)
		})
	}
}
