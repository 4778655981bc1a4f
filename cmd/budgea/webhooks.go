package main

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"budgea/internal/shared/logging"
	"budgea/pkg/budgea"
)

type ListWebhooksHandler func(ctx context.Context) (*budgea.Webhooks, error)

type ListWebhookLogsHandler func(ctx context.Context, webhookID int64, limit int) (*budgea.WebHookLogs, error)

func NewCmdWebhooks(w io.Writer, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Inspect the webhooks of the domain (manage token required)",
	}

	list := func(ctx context.Context) (*budgea.Webhooks, error) {
		a, err := loadApp()
		if err != nil {
			return nil, err
		}
		var resp *budgea.Webhooks
		err = logging.Run("Command", "webhooks.list", a.log, func(ld *logging.LogData) error {
			resp, err = a.apiClient(rf.Token).Administration.ListWebhooks(ctx, nil)
			return err
		})
		return resp, err
	}
	logs := func(ctx context.Context, webhookID int64, limit int) (*budgea.WebHookLogs, error) {
		a, err := loadApp()
		if err != nil {
			return nil, err
		}
		var resp *budgea.WebHookLogs
		err = logging.Run("Command", "webhooks.logs", a.log, func(ld *logging.LogData) error {
			ld.AddData("webhook_id", webhookID)
			resp, err = a.apiClient(rf.Token).Administration.ListWebhookLogs(ctx, webhookID, budgea.Params{"limit": limit})
			return err
		})
		return resp, err
	}

	cmd.AddCommand(
		BuildCmdListWebhooks(w, list, rf),
		BuildCmdWebhookLogs(w, logs, rf),
	)
	return cmd
}

func BuildCmdListWebhooks(w io.Writer, handler ListWebhooksHandler, rf *RootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := handler(cmd.Context())
			if err != nil {
				return err
			}
			if rf.Output == OutputJSON {
				return printJSON(w, resp)
			}
			t := newTable(w, "ID", "EVENT", "URL", "AUTH")
			for _, wh := range resp.Webhooks {
				t.row(wh.ID, wh.Event, wh.URL, deref(wh.IDAuth))
			}
			return t.flush()
		},
	}
}

func BuildCmdWebhookLogs(w io.Writer, handler ListWebhookLogsHandler, rf *RootFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "logs WEBHOOK_ID",
		Short: "Show the delivery logs of a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			resp, err := handler(cmd.Context(), id, limit)
			if err != nil {
				return err
			}
			if rf.Output == OutputJSON {
				return printJSON(w, resp)
			}
			t := newTable(w, "ID", "TIMESTAMP", "STATUS", "RETRY")
			for _, l := range resp.Logs {
				t.row(l.ID, l.Timestamp, deref(l.Status), l.Retry)
			}
			return t.flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of logs")
	return cmd
}
