package mirror

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"budgea/pkg/budgea"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := budgea.NewConfiguration()
	cfg.BasePath = srv.URL
	return NewClient(budgea.NewAPIClient(cfg))
}

func TestClient_ExchangeCode(t *testing.T) {
	tests := []struct {
		name       string
		id, secret string
		wantForm   map[string]string
	}{
		{
			name:     "With Credentials",
			id:       "client-1",
			secret:   "s3cret",
			wantForm: map[string]string{"code": "tmp", "client_id": "client-1", "client_secret": "s3cret"},
		},
		{
			name:     "Without Credentials",
			wantForm: map[string]string{"code": "tmp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/auth/token/access" {
					t.Errorf("path = %s", r.URL.Path)
				}
				if err := r.ParseForm(); err != nil {
					t.Fatalf("ParseForm() error = %v", err)
				}
				if len(r.PostForm) != len(tt.wantForm) {
					t.Errorf("form = %v, want %v", r.PostForm, tt.wantForm)
				}
				for k, v := range tt.wantForm {
					if got := r.PostForm.Get(k); got != v {
						t.Errorf("form[%s] = %q, want %q", k, got, v)
					}
				}
				w.Write([]byte(`{"access_token":"permanent","token_type":"Bearer"}`))
			}).WithCredentials(tt.id, tt.secret)

			token, err := c.ExchangeCode(context.Background(), "tmp")
			if err != nil {
				t.Fatalf("ExchangeCode() unexpected error: %v", err)
			}
			if token != "permanent" {
				t.Errorf("ExchangeCode() = %q, want permanent", token)
			}
		})
	}
}

func TestClient_ExchangeCodeEmptyToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":""}`))
	})
	if _, err := c.ExchangeCode(context.Background(), "tmp"); !errors.Is(err, errEmptyAccessToken) {
		t.Errorf("ExchangeCode() error = %v, want errEmptyAccessToken", err)
	}
}
