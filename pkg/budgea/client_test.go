package budgea

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := NewConfiguration()
	cfg.BasePath = srv.URL + "/2.0/"
	cfg.Token = "secret-token"
	return NewAPIClient(cfg)
}

func TestAPIClient_ListWebhookLogs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/2.0/webhooks/42/logs", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("min_date"))
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"webhooklogs":[{"id":1,"id_webhook":42,"timestamp":"2024-01-02 03:04:05","status":200}],"total":1}`))
	})

	logs, err := client.Administration.ListWebhookLogs(context.Background(), 42, Params{
		"limit":    5,
		"min_date": NewDate(2024, 1, 1),
	})
	require.NoError(t, err)
	require.Len(t, logs.Logs, 1)
	assert.Equal(t, int64(42), logs.Logs[0].IDWebhook)
	assert.Equal(t, 200, *logs.Logs[0].Status)
	assert.Equal(t, 2024, logs.Logs[0].Timestamp.Year())
}

func TestAPIClient_ParamErrorSendsNothing(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	_, err := client.Administration.CreateMerchant(context.Background(), "FR76", "", []string{"https://x"}, nil)
	assert.True(t, errors.Is(err, ErrMissingParameter))

	_, err = client.Administration.ListClients(context.Background(), Params{"page": 2})
	assert.True(t, errors.Is(err, ErrUnexpectedParameter))

	_, err = client.Do(context.Background(), opGetClient, Params{"unknown": 1, "id_client": int64(1)})
	assert.True(t, errors.Is(err, ErrUnexpectedParameter))

	assert.Equal(t, int32(0), hits.Load())
}

func TestAPIClient_MultipartForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/2.0/webhooks/auth", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "hmac", r.FormValue("name"))
		assert.Equal(t, "2", r.FormValue("type"))
		assert.Empty(t, r.FormValue("config"))
		w.Write([]byte(`{"id":9,"name":"hmac","type":2}`))
	})

	auth, err := client.Administration.CreateWebhookAuth(context.Background(), "hmac", 2, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(9), auth.ID)
}

func TestAPIClient_UrlencodedForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "150.25", r.PostForm.Get("amount"))
		assert.Equal(t, "rent", r.PostForm.Get("label"))
		assert.Equal(t, "/2.0/users/me/accounts/3/recipients/8/transfers", r.URL.Path)
		w.Write([]byte(`{"id":5,"id_account":3,"id_recipient":8,"amount":150.25,"label":"rent","state":"created"}`))
	})

	tr, err := client.Transfers.CreateTransfer(context.Background(), Me, 3, 8, decimal.RequireFromString("150.25"), "rent", nil)
	require.NoError(t, err)
	assert.True(t, tr.Amount.Equal(decimal.RequireFromString("150.25")))
	assert.Equal(t, "created", tr.State)
}

func TestAPIClient_FileUpload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "invoice", r.FormValue("name"))
		assert.Equal(t, "4", r.FormValue("id_type"))

		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		body, _ := io.ReadAll(f)
		assert.Equal(t, "invoice.pdf", hdr.Filename)
		assert.Equal(t, "application/pdf", hdr.Header.Get("Content-Type"))
		assert.Equal(t, "%PDF-1.4", string(body))
		w.Write([]byte(`{"id":77,"id_user":1,"id_type":4,"name":"invoice","has_file":true}`))
	})

	doc, err := client.Documents.CreateDocument(context.Background(), Me, "invoice", 4, Params{
		"file": File{Name: "invoice.pdf", ContentType: "application/pdf", Reader: strings.NewReader("%PDF-1.4")},
	})
	require.NoError(t, err)
	assert.True(t, doc.HasFile)
}

func TestAPIClient_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"webhookNotFound","description":"no such webhook"}`))
	})

	_, resp, err := client.Administration.GetClientWithHTTPInfo(context.Background(), 1, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "webhookNotFound", apiErr.Code)
	assert.Contains(t, err.Error(), "no such webhook")
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPIClient_NonJSONError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	err := client.Administration.TestSync(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, StatusCode(err))
	assert.Contains(t, err.Error(), "API request failed with status 502")
}

func TestAPIClient_NoAuthOperation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"auth_token":"tok","type":"permanent","id_user":12}`))
	})

	created, err := client.Auth.InitAnonymousUser(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "tok", created.AuthToken)
	assert.Equal(t, int64(12), created.IDUser)
}

func TestAPIClient_WithToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":3,"signin":"2020-01-01 00:00:00"}`))
	})

	user, err := client.WithToken("user-token").Users.GetUser(context.Background(), Me, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "secret-token", client.Configuration().Token)
}

func TestAPIClient_RawResponses(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/2.0/clients/4/logo":
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte{0x89, 'P', 'N', 'G'})
		case "/2.0/config":
			w.Write([]byte(`{"autosync.enabled":"1"}`))
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	})
	ctx := context.Background()

	logo, err := client.Administration.DeleteClientLogo(ctx, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, logo)

	cfg, resp, err := client.Administration.GetConfigWithHTTPInfo(ctx, nil)
	require.NoError(t, err)
	var keys map[string]string
	require.NoError(t, json.Unmarshal(cfg, &keys))
	assert.Equal(t, "1", keys["autosync.enabled"])

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, string(cfg), string(body), "body stays readable after decoding")

	raw, err := client.Do(ctx, opListMerchants, nil)
	require.NoError(t, err)
	defer raw.Body.Close()
	assert.Equal(t, http.StatusTeapot, raw.StatusCode)
}

func TestAPIClient_ContextDeadline(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Banks.ListBanks(ctx, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestAPIClient_ZeroRequiredValueIsSent(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "0", r.FormValue("type"))
		w.Write([]byte(`{"id":3,"name":"hmac","type":0}`))
	})

	auth, err := client.Administration.CreateWebhookAuth(context.Background(), "hmac", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), auth.ID)
	assert.Equal(t, int32(1), hits.Load())

	_, err = client.Administration.GetClient(context.Background(), 0, nil)
	assert.True(t, errors.Is(err, ErrMissingParameter), "a zero path id is still missing")
	assert.Equal(t, int32(1), hits.Load())
}
