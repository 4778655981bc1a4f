package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"budgea/internal/infrastructure/postgres"
	"budgea/internal/shared/logging"
)

type MigrateHandler func(ctx context.Context) (*postgres.MigrationStatus, error)

func NewCmdMigrate(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context) (*postgres.MigrationStatus, error) {
		a, err := loadApp()
		if err != nil {
			return nil, err
		}
		st, err := a.openStore(ctx)
		if err != nil {
			return nil, err
		}
		defer st.Close()

		var status *postgres.MigrationStatus
		err = logging.Run("Command", "migrate", a.log, func(ld *logging.LogData) error {
			status, err = postgres.Migrate(st.db, a.log)
			return err
		})
		return status, err
	}
	return BuildCmdMigrate(w, h, rf)
}

func BuildCmdMigrate(w io.Writer, handler MigrateHandler, rf *RootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := handler(cmd.Context())
			if err != nil {
				return err
			}
			if rf.Output == OutputJSON {
				return printJSON(w, struct {
					Before uint `json:"before"`
					After  uint `json:"after"`
					Dirty  bool `json:"dirty"`
				}{status.Before, status.After, status.Dirty})
			}
			t := newTable(w, "BEFORE", "AFTER", "DIRTY")
			t.row(status.Before, status.After, status.Dirty)
			return t.flush()
		},
	}
}
