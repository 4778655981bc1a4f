package main

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"budgea/internal/domain/mirror"
	"budgea/internal/shared/logging"
)

// MirrorStatus is the printable view of a linked user. The token is never shown.
type MirrorStatus struct {
	ID                  int64              `json:"id"`
	BudgeaUserID        int64              `json:"budgea_user_id"`
	Label               string             `json:"label"`
	Linked              bool               `json:"linked"`
	LastTransactionSync *time.Time         `json:"last_transaction_sync"`
	Connections         []MirrorConnection `json:"connections"`
	Accounts            []MirrorAccount    `json:"accounts"`
}

type MirrorConnection struct {
	ID         int64      `json:"id"`
	Bank       string     `json:"bank"`
	State      *string    `json:"state"`
	Active     bool       `json:"active"`
	LastUpdate *time.Time `json:"last_update"`
}

type MirrorAccount struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Disabled bool            `json:"disabled"`
}

type MirrorTransaction struct {
	ID      int64           `json:"id"`
	Date    string          `json:"date"`
	Value   decimal.Decimal `json:"value"`
	Wording string          `json:"wording"`
	Coming  bool            `json:"coming"`
}

func newMirrorStatus(st *mirror.UserStatus) *MirrorStatus {
	out := &MirrorStatus{
		ID:                  st.User.ID,
		BudgeaUserID:        st.User.BudgeaUserID,
		Label:               st.User.Label,
		Linked:              st.User.HasToken(),
		LastTransactionSync: st.User.LastTransactionSync,
		Connections:         make([]MirrorConnection, 0, len(st.Connections)),
		Accounts:            make([]MirrorAccount, 0, len(st.Accounts)),
	}
	for _, c := range st.Connections {
		out.Connections = append(out.Connections, MirrorConnection{
			ID: c.ID, Bank: c.BankName, State: c.State, Active: c.Active, LastUpdate: c.LastUpdate,
		})
	}
	for _, a := range st.Accounts {
		out.Accounts = append(out.Accounts, MirrorAccount{
			ID: a.ID, Name: a.Name, Type: a.Type, Balance: a.Balance, Currency: a.Currency, Disabled: a.Disabled,
		})
	}
	return out
}

type MirrorStatusHandler func(ctx context.Context, linkedUserID int64) (*MirrorStatus, error)

type MirrorTransactionsHandler func(ctx context.Context, accountID int64, limit int) ([]MirrorTransaction, error)

func NewCmdMirror(w io.Writer, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Inspect the local copy of linked users' data",
	}

	withStatus := func(ctx context.Context, name string, fn func(*mirror.StatusService, *logging.LogData) error) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		st, err := a.openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()
		svc := mirror.NewStatusService(st.users, st.accounts, st.transactions, st.connections)
		return logging.Run("Command", name, a.log, func(ld *logging.LogData) error {
			return fn(svc, ld)
		})
	}

	status := func(ctx context.Context, linkedUserID int64) (*MirrorStatus, error) {
		var out *MirrorStatus
		err := withStatus(ctx, "mirror.status", func(svc *mirror.StatusService, ld *logging.LogData) error {
			ld.AddData("user_id", linkedUserID)
			st, err := svc.UserStatus(ctx, linkedUserID)
			if err != nil {
				return err
			}
			out = newMirrorStatus(st)
			return nil
		})
		return out, err
	}
	transactions := func(ctx context.Context, accountID int64, limit int) ([]MirrorTransaction, error) {
		var out []MirrorTransaction
		err := withStatus(ctx, "mirror.transactions", func(svc *mirror.StatusService, ld *logging.LogData) error {
			txs, err := svc.RecentTransactions(ctx, accountID, limit)
			if err != nil {
				return err
			}
			out = make([]MirrorTransaction, 0, len(txs))
			for _, tx := range txs {
				out = append(out, MirrorTransaction{
					ID: tx.ID, Date: tx.Date.Format("2006-01-02"), Value: tx.Value, Wording: tx.Wording, Coming: tx.Coming,
				})
			}
			ld.AddData("transactions", len(out))
			return nil
		})
		return out, err
	}

	cmd.AddCommand(
		BuildCmdMirrorStatus(w, status, rf),
		BuildCmdMirrorTransactions(w, transactions, rf),
	)
	return cmd
}

func BuildCmdMirrorStatus(w io.Writer, handler MirrorStatusHandler, rf *RootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status LINKED_USER_ID",
		Short: "Show the stored connections and accounts of a linked user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			st, err := handler(cmd.Context(), id)
			if err != nil {
				return err
			}
			if rf.Output == OutputJSON {
				return printJSON(w, st)
			}

			t := newTable(w, "CONNECTION", "BANK", "STATE", "ACTIVE")
			for _, c := range st.Connections {
				t.row(c.ID, c.Bank, deref(c.State), c.Active)
			}
			if err := t.flush(); err != nil {
				return err
			}
			io.WriteString(w, "\n")
			t = newTable(w, "ACCOUNT", "NAME", "TYPE", "BALANCE", "CURRENCY")
			for _, a := range st.Accounts {
				t.row(a.ID, a.Name, a.Type, a.Balance.StringFixed(2), a.Currency)
			}
			return t.flush()
		},
	}
}

func BuildCmdMirrorTransactions(w io.Writer, handler MirrorTransactionsHandler, rf *RootFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "transactions ACCOUNT_ID",
		Short: "List the most recent stored transactions of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			txs, err := handler(cmd.Context(), id, limit)
			if err != nil {
				return err
			}
			if rf.Output == OutputJSON {
				return printJSON(w, txs)
			}
			t := newTable(w, "ID", "DATE", "VALUE", "WORDING")
			for _, tx := range txs {
				t.row(tx.ID, tx.Date, tx.Value.StringFixed(2), tx.Wording)
			}
			return t.flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of transactions")
	return cmd
}
