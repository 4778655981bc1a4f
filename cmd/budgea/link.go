package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"budgea/internal/domain/mirror"
	"budgea/internal/shared/logging"
)

// LinkRequest carries either a permanent token or a temporary code to exchange.
type LinkRequest struct {
	Token string
	Code  string
	Label string
}

type LinkHandler func(ctx context.Context, req LinkRequest) (*mirror.LinkedUser, error)

func NewCmdLink(w io.Writer, rf *RootFlags) *cobra.Command {
	h := func(ctx context.Context, req LinkRequest) (*mirror.LinkedUser, error) {
		a, err := loadApp()
		if err != nil {
			return nil, err
		}
		st, err := a.openStore(ctx)
		if err != nil {
			return nil, err
		}
		defer st.Close()

		var user *mirror.LinkedUser
		err = logging.Run("Command", "link", a.log, func(ld *logging.LogData) error {
			svc := mirror.NewLinkService(a.mirrorClient(), st.users)
			if req.Code != "" {
				user, err = svc.LinkCode(ctx, req.Code, req.Label)
			} else {
				user, err = svc.Link(ctx, req.Token, req.Label)
			}
			if err != nil {
				return err
			}
			ld.AddData("linked_user_id", user.ID)
			ld.AddData("budgea_user_id", user.BudgeaUserID)
			return nil
		})
		return user, err
	}
	return BuildCmdLink(w, h, rf)
}

func BuildCmdLink(w io.Writer, handler LinkHandler, rf *RootFlags) *cobra.Command {
	req := LinkRequest{}
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Store a user token so its accounts are mirrored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Code != "" && rf.Token != "" {
				return fmt.Errorf("--code and --token are mutually exclusive")
			}
			req.Token = rf.Token
			user, err := handler(cmd.Context(), req)
			if err != nil {
				return err
			}
			if rf.Output == OutputJSON {
				return printJSON(w, struct {
					ID           int64  `json:"id"`
					BudgeaUserID int64  `json:"budgea_user_id"`
					Label        string `json:"label"`
				}{user.ID, user.BudgeaUserID, user.Label})
			}
			t := newTable(w, "ID", "BUDGEA USER", "LABEL")
			t.row(user.ID, user.BudgeaUserID, user.Label)
			return t.flush()
		},
	}
	cmd.Flags().StringVar(&req.Label, "label", "", "Free-form label for the linked user")
	cmd.Flags().StringVar(&req.Code, "code", "", "Temporary code to exchange for a permanent token")
	return cmd
}
