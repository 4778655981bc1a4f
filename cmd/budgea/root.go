package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const (
	OutputHuman = "human"
	OutputJSON  = "json"
)

var ErrUnsupportedOutput = errors.New("unsupported output format")

type Writer struct {
	Out io.Writer
	Err io.Writer
}

// RootFlags are shared by every command.
type RootFlags struct {
	Output string
	Token  string
	User   string
}

func (rf *RootFlags) validate() error {
	switch rf.Output {
	case OutputHuman, OutputJSON:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedOutput, rf.Output)
}

// Execute runs the root command and returns the process exit code.
func Execute(w *Writer) int {
	rf := &RootFlags{}
	c := NewCmdRoot(w.Out, rf)
	c.SetErr(w.Err)

	err := c.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}
	if rf.Output == OutputJSON {
		if jsonErr := printJSON(w.Err, struct {
			Err string `json:"error"`
		}{err.Error()}); jsonErr == nil {
			return 1
		}
	}
	fmt.Fprintln(w.Err, "Error:", err)
	return 1
}

func NewCmdRoot(w io.Writer, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "budgea",
		Short:         "Budgea API client and account mirror",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return rf.validate()
		},
	}

	cmd.PersistentFlags().StringVarP(&rf.Output, "output", "o", OutputHuman, "Output format: human or json")
	cmd.PersistentFlags().StringVar(&rf.Token, "token", "", "Budgea token (defaults to BUDGEA_TOKEN)")
	cmd.PersistentFlags().StringVar(&rf.User, "user", "me", "Budgea user id")

	cmd.AddCommand(
		NewCmdBanks(w, rf),
		NewCmdAccounts(w, rf),
		NewCmdTransactions(w, rf),
		NewCmdDocuments(w, rf),
		NewCmdWebhooks(w, rf),
		NewCmdLink(w, rf),
		NewCmdMirror(w, rf),
		NewCmdMigrate(w, rf),
		NewCmdSync(w, rf),
	)
	return cmd
}
