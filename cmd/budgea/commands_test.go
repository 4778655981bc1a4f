package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgea/internal/domain/mirror"
	"budgea/internal/scheduler"
	"budgea/internal/shared/logging"
	"budgea/pkg/budgea"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(context.Background())
}

func int64Ptr(v int64) *int64 { return &v }

func TestRoot_RejectsUnknownOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	rf := &RootFlags{}
	err := run(t, NewCmdRoot(buf, rf), "banks", "-o", "xml")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedOutput))
	assert.Empty(t, buf.String())
}

func TestBanks(t *testing.T) {
	handler := func(ctx context.Context) (*BanksResponse, error) {
		return &BanksResponse{
			Banks: []budgea.Bank{
				{ID: 40, Name: "Connecteur de test", IDCategory: int64Ptr(1)},
				{ID: 59, Name: "Other bank"},
			},
			Categories: []budgea.BankCategory{{ID: 1, Name: "Banques"}},
		}, nil
	}

	t.Run("human", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, run(t, BuildCmdBanks(buf, handler, &RootFlags{Output: OutputHuman})))

		out := buf.String()
		assert.Contains(t, out, "NAME")
		assert.Contains(t, out, "Connecteur de test")
		assert.Contains(t, out, "Banques")
	})

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, run(t, BuildCmdBanks(buf, handler, &RootFlags{Output: OutputJSON})))

		var got BanksResponse
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got.Banks, 2)
		assert.Equal(t, int64(59), got.Banks[1].ID)
	})

	t.Run("handler error", func(t *testing.T) {
		boom := errors.New("boom")
		cmd := BuildCmdBanks(io.Discard, func(ctx context.Context) (*BanksResponse, error) {
			return nil, boom
		}, &RootFlags{Output: OutputHuman})
		assert.ErrorIs(t, run(t, cmd), boom)
	})
}

func TestAccounts_PassesAllFlag(t *testing.T) {
	var gotAll bool
	handler := func(ctx context.Context, all bool) (*budgea.Accounts, error) {
		gotAll = all
		return &budgea.Accounts{Accounts: []budgea.Account{{
			ID:      1,
			Name:    "Compte chèque",
			Balance: decimal.NewNullDecimal(decimal.RequireFromString("1523.5")),
		}}}, nil
	}

	buf := &bytes.Buffer{}
	require.NoError(t, run(t, BuildCmdAccounts(buf, handler, &RootFlags{Output: OutputHuman}), "--all"))
	assert.True(t, gotAll)
	assert.Contains(t, buf.String(), "1523.50")
}

func TestTransactionsRequest_Params(t *testing.T) {
	tests := []struct {
		name    string
		req     TransactionsRequest
		wantErr string
		check   func(t *testing.T, p budgea.Params)
	}{
		{
			name: "dates and limit",
			req:  TransactionsRequest{MinDate: "2024-01-01", MaxDate: "2024-01-31", Limit: 10},
			check: func(t *testing.T, p budgea.Params) {
				assert.Equal(t, 10, p["limit"])
				assert.Equal(t, budgea.NewDate(2024, 1, 1), p["min_date"])
				assert.Equal(t, budgea.NewDate(2024, 1, 31), p["max_date"])
			},
		},
		{
			name: "empty request",
			req:  TransactionsRequest{},
			check: func(t *testing.T, p budgea.Params) {
				assert.Empty(t, p)
			},
		},
		{
			name:    "bad min date",
			req:     TransactionsRequest{MinDate: "01/02/2024"},
			wantErr: "invalid --min-date",
		},
		{
			name:    "bad max date",
			req:     TransactionsRequest{MaxDate: "2024-13-01"},
			wantErr: "invalid --max-date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.req.params()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestTransactions_Flags(t *testing.T) {
	var got TransactionsRequest
	handler := func(ctx context.Context, req TransactionsRequest) (*budgea.Transactions, error) {
		got = req
		return &budgea.Transactions{}, nil
	}

	cmd := BuildCmdTransactions(io.Discard, handler, &RootFlags{Output: OutputJSON})
	require.NoError(t, run(t, cmd, "--account", "7", "--min-date", "2024-02-01"))
	assert.Equal(t, TransactionsRequest{AccountID: 7, MinDate: "2024-02-01", Limit: 50}, got)
}

func TestUploadDocument_DefaultsNameToFile(t *testing.T) {
	var got UploadDocumentRequest
	handler := func(ctx context.Context, req UploadDocumentRequest) (*budgea.Document, error) {
		got = req
		return &budgea.Document{ID: 77, Name: req.Name, IDType: req.TypeID, HasFile: true}, nil
	}

	buf := &bytes.Buffer{}
	cmd := BuildCmdUploadDocument(buf, handler, &RootFlags{Output: OutputHuman})
	require.NoError(t, run(t, cmd, "/tmp/scans/invoice.pdf", "--type", "4"))

	assert.Equal(t, "invoice.pdf", got.Name)
	assert.Equal(t, int64(4), got.TypeID)
	assert.Contains(t, buf.String(), "77")
}

func TestUploadDocument_RequiresType(t *testing.T) {
	called := false
	cmd := BuildCmdUploadDocument(io.Discard, func(ctx context.Context, req UploadDocumentRequest) (*budgea.Document, error) {
		called = true
		return &budgea.Document{}, nil
	}, &RootFlags{Output: OutputHuman})

	assert.Error(t, run(t, cmd, "invoice.pdf"))
	assert.False(t, called)
}

func TestWebhookLogs_ParsesID(t *testing.T) {
	var gotID int64
	var gotLimit int
	handler := func(ctx context.Context, id int64, limit int) (*budgea.WebHookLogs, error) {
		gotID, gotLimit = id, limit
		status := 200
		return &budgea.WebHookLogs{Logs: []budgea.WebHookLog{{ID: 1, IDWebhook: id, Status: &status}}}, nil
	}

	buf := &bytes.Buffer{}
	require.NoError(t, run(t, BuildCmdWebhookLogs(buf, handler, &RootFlags{Output: OutputJSON}), "42", "--limit", "5"))
	assert.Equal(t, int64(42), gotID)
	assert.Equal(t, 5, gotLimit)
	assert.Contains(t, buf.String(), `"webhooklogs"`)

	err := run(t, BuildCmdWebhookLogs(io.Discard, handler, &RootFlags{Output: OutputJSON}), "abc")
	assert.Error(t, err)
}

func TestSync_Once(t *testing.T) {
	var gotUser int64
	once := func(ctx context.Context, userID int64) (*SyncSummary, error) {
		gotUser = userID
		return &SyncSummary{Users: []UserSyncStatus{{UserID: 3}}}, nil
	}
	daemon := func(ctx context.Context) error {
		t.Fatal("daemon must not start with --once")
		return nil
	}

	buf := &bytes.Buffer{}
	require.NoError(t, run(t, BuildCmdSync(buf, once, daemon, &RootFlags{Output: OutputHuman}), "--once", "--user-id", "3"))
	assert.Equal(t, int64(3), gotUser)
	assert.Contains(t, buf.String(), "ok")
}

func TestSync_OnceReportsFailures(t *testing.T) {
	once := func(ctx context.Context, userID int64) (*SyncSummary, error) {
		return &SyncSummary{
			Users:  []UserSyncStatus{{UserID: 1}, {UserID: 2, Error: "account sync failed"}},
			Failed: 1,
		}, nil
	}

	buf := &bytes.Buffer{}
	err := run(t, BuildCmdSync(buf, once, nil, &RootFlags{Output: OutputJSON}), "--once")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 user syncs failed")

	var got SyncSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "account sync failed", got.Users[1].Error)
}

func TestSync_Daemon(t *testing.T) {
	called := false
	daemon := func(ctx context.Context) error {
		called = true
		return nil
	}

	require.NoError(t, run(t, BuildCmdSync(io.Discard, nil, daemon, &RootFlags{Output: OutputHuman})))
	assert.True(t, called)

	err := run(t, BuildCmdSync(io.Discard, nil, daemon, &RootFlags{Output: OutputHuman}), "--user-id", "4")
	assert.Error(t, err)
}

type stubJob struct {
	id      int64
	err     error
	running *atomic.Int32
	peak    *atomic.Int32
}

func (j *stubJob) Execute(ctx context.Context) error {
	n := j.running.Add(1)
	defer j.running.Add(-1)
	for {
		p := j.peak.Load()
		if n <= p || j.peak.CompareAndSwap(p, n) {
			break
		}
	}
	return j.err
}

func (j *stubJob) UserID() int64       { return j.id }
func (j *stubJob) Description() string { return "stub" }

func TestRunJobs(t *testing.T) {
	var running, peak atomic.Int32
	jobs := make([]scheduler.Job, 0, 5)
	for i := int64(1); i <= 5; i++ {
		j := &stubJob{id: i, running: &running, peak: &peak}
		if i%2 == 0 {
			j.err = errors.New("sync failed")
		}
		jobs = append(jobs, j)
	}

	log, hook := test.NewNullLogger()
	ld := logging.NewLogData(log)
	summary := runJobs(context.Background(), jobs, 2, ld)

	require.Len(t, summary.Users, 5)
	assert.Equal(t, 2, summary.Failed)
	for i, u := range summary.Users {
		assert.Equal(t, int64(i+1), u.UserID, "results keep job order")
	}
	assert.Equal(t, "sync failed", summary.Users[1].Error)
	assert.Empty(t, summary.Users[0].Error)
	assert.LessOrEqual(t, peak.Load(), int32(2))

	ld.Log().Info("done")
	assert.Contains(t, hook.LastEntry().Data, "job_time")
}

func TestNewMirrorStatus_HidesToken(t *testing.T) {
	token := "secret"
	state := "SCARequired"
	st := &mirror.UserStatus{
		User: &mirror.LinkedUser{ID: 1, BudgeaUserID: 42, Label: "alice", Token: &token},
		Connections: []*mirror.ConnectionState{
			{ID: 5, BankName: "Test Bank", State: &state},
		},
		Accounts: []*mirror.Account{
			{ID: 11, Name: "Livret A", Balance: decimal.RequireFromString("10.5"), Currency: "EUR"},
		},
	}

	buf := &bytes.Buffer{}
	handler := func(ctx context.Context, id int64) (*MirrorStatus, error) {
		return newMirrorStatus(st), nil
	}
	require.NoError(t, run(t, BuildCmdMirrorStatus(buf, handler, &RootFlags{Output: OutputJSON}), "1"))

	assert.NotContains(t, buf.String(), "secret")
	var got MirrorStatus
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.True(t, got.Linked)
	assert.Equal(t, "SCARequired", *got.Connections[0].State)
	assert.True(t, got.Accounts[0].Balance.Equal(decimal.RequireFromString("10.5")))

	buf.Reset()
	require.NoError(t, run(t, BuildCmdMirrorStatus(buf, handler, &RootFlags{Output: OutputHuman}), "1"))
	assert.Contains(t, buf.String(), "Livret A")
	assert.Contains(t, buf.String(), "10.50")
}

func TestLink_Flags(t *testing.T) {
	var got LinkRequest
	handler := func(ctx context.Context, req LinkRequest) (*mirror.LinkedUser, error) {
		got = req
		return &mirror.LinkedUser{ID: 1, BudgeaUserID: 42, Label: req.Label}, nil
	}

	buf := &bytes.Buffer{}
	require.NoError(t, run(t, BuildCmdLink(buf, handler, &RootFlags{Output: OutputHuman}), "--code", "tmp", "--label", "alice"))
	assert.Equal(t, LinkRequest{Code: "tmp", Label: "alice"}, got)
	assert.Contains(t, buf.String(), "alice")

	require.NoError(t, run(t, BuildCmdLink(io.Discard, handler, &RootFlags{Output: OutputJSON, Token: "perm"})))
	assert.Equal(t, LinkRequest{Token: "perm"}, got)

	err := run(t, BuildCmdLink(io.Discard, handler, &RootFlags{Output: OutputJSON, Token: "perm"}), "--code", "tmp")
	assert.Error(t, err)
}
