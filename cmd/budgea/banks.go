package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"budgea/internal/shared/logging"
	"budgea/pkg/budgea"
)

type BanksResponse struct {
	Banks      []budgea.Bank         `json:"banks"`
	Categories []budgea.BankCategory `json:"categories"`
}

type ListBanksHandler func(ctx context.Context) (*BanksResponse, error)

func NewCmdBanks(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context) (*BanksResponse, error) {
		a, err := loadApp()
		if err != nil {
			return nil, err
		}
		api := a.apiClient(rf.Token)

		resp := &BanksResponse{}
		err = logging.Run("Command", "banks", a.log, func(ld *logging.LogData) error {
			banks := budgea.Async(ctx, api, func(ctx context.Context) (*budgea.Banks, error) {
				return api.Banks.ListBanks(ctx, nil)
			})
			categories := budgea.Async(ctx, api, func(ctx context.Context) (*budgea.BankCategories, error) {
				return api.Banks.ListBankCategories(ctx, nil)
			})

			b, err := banks.Get(ctx)
			if err != nil {
				return err
			}
			c, err := categories.Get(ctx)
			if err != nil {
				return err
			}
			resp.Banks, resp.Categories = b.Banks, c.Categories
			ld.AddData("banks", len(resp.Banks))
			return nil
		})
		return resp, err
	}
	return BuildCmdBanks(w, h, rf)
}

func BuildCmdBanks(w io.Writer, handler ListBanksHandler, rf *RootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List the banks available on the domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := handler(cmd.Context())
			if err != nil {
				return err
			}
			if rf.Output == OutputJSON {
				return printJSON(w, resp)
			}
			return printBanks(w, resp)
		},
	}
}

func printBanks(w io.Writer, resp *BanksResponse) error {
	names := make(map[int64]string, len(resp.Categories))
	for _, c := range resp.Categories {
		names[c.ID] = c.Name
	}

	t := newTable(w, "ID", "NAME", "CATEGORY", "CAPABILITIES")
	for _, b := range resp.Banks {
		category := "-"
		if b.IDCategory != nil {
			if n, ok := names[*b.IDCategory]; ok {
				category = n
			}
		}
		t.row(b.ID, b.Name, category, len(b.Capabilities))
	}
	return t.flush()
}
