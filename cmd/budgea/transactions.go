package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"budgea/internal/shared/logging"
	"budgea/pkg/budgea"
)

type TransactionsRequest struct {
	AccountID int64
	MinDate   string
	MaxDate   string
	Limit     int
}

// params converts the request to query parameters, rejecting malformed dates.
func (r TransactionsRequest) params() (budgea.Params, error) {
	p := budgea.Params{}
	if r.Limit > 0 {
		p["limit"] = r.Limit
	}
	dates := []struct{ param, flag, value string }{
		{"min_date", "min-date", r.MinDate},
		{"max_date", "max-date", r.MaxDate},
	}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		parsed, err := budgea.ParseDate(d.value)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s: %w", d.flag, err)
		}
		p[d.param] = parsed
	}
	return p, nil
}

type ListTransactionsHandler func(ctx context.Context, req TransactionsRequest) (*budgea.Transactions, error)

func NewCmdTransactions(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, req TransactionsRequest) (*budgea.Transactions, error) {
		params, err := req.params()
		if err != nil {
			return nil, err
		}
		a, err := loadApp()
		if err != nil {
			return nil, err
		}
		api := a.apiClient(rf.Token)

		var resp *budgea.Transactions
		err = logging.Run("Command", "transactions", a.log, func(ld *logging.LogData) error {
			if req.AccountID != 0 {
				resp, err = api.Transactions.ListAccountTransactions(ctx, rf.User, req.AccountID, params)
			} else {
				resp, err = api.Transactions.ListTransactions(ctx, rf.User, params)
			}
			if err != nil {
				return err
			}
			ld.AddData("transactions", len(resp.Transactions))
			return nil
		})
		return resp, err
	}
	return BuildCmdTransactions(w, h, rf)
}

func BuildCmdTransactions(w io.Writer, handler ListTransactionsHandler, rf *RootFlags) *cobra.Command {
	req := TransactionsRequest{}
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List the transactions of a user or of one account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := handler(cmd.Context(), req)
			if err != nil {
				return err
			}
			if rf.Output == OutputJSON {
				return printJSON(w, resp)
			}
			t := newTable(w, "ID", "DATE", "ACCOUNT", "VALUE", "LABEL")
			for _, tx := range resp.Transactions {
				t.row(tx.ID, tx.Date, tx.IDAccount, tx.Value.StringFixed(2), tx.Label())
			}
			return t.flush()
		},
	}
	cmd.Flags().Int64Var(&req.AccountID, "account", 0, "Only list transactions of this account")
	cmd.Flags().StringVar(&req.MinDate, "min-date", "", "Earliest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.MaxDate, "max-date", "", "Latest date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&req.Limit, "limit", 50, "Maximum number of transactions")
	return cmd
}
