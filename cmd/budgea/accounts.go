package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"budgea/internal/shared/logging"
	"budgea/pkg/budgea"
)

type ListAccountsHandler func(ctx context.Context, all bool) (*budgea.Accounts, error)

func NewCmdAccounts(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, all bool) (*budgea.Accounts, error) {
		a, err := loadApp()
		if err != nil {
			return nil, err
		}
		var resp *budgea.Accounts
		err = logging.Run("Command", "accounts", a.log, func(ld *logging.LogData) error {
			params := budgea.Params{}
			if all {
				params["all"] = true
			}
			resp, err = a.apiClient(rf.Token).Accounts.ListAccounts(ctx, rf.User, params)
			if err != nil {
				return err
			}
			ld.AddData("accounts", len(resp.Accounts))
			return nil
		})
		return resp, err
	}
	return BuildCmdAccounts(w, h, rf)
}

func BuildCmdAccounts(w io.Writer, handler ListAccountsHandler, rf *RootFlags) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the bank accounts of a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := handler(cmd.Context(), all)
			if err != nil {
				return err
			}
			if rf.Output == OutputJSON {
				return printJSON(w, resp)
			}
			t := newTable(w, "ID", "NAME", "TYPE", "BALANCE", "CURRENCY", "IBAN")
			for _, acc := range resp.Accounts {
				balance := "-"
				if acc.Balance.Valid {
					balance = acc.Balance.Decimal.StringFixed(2)
				}
				t.row(acc.ID, acc.Name, acc.Type, balance, acc.CurrencyCode(), deref(acc.IBAN))
			}
			return t.flush()
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include disabled accounts")
	return cmd
}
