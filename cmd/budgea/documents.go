package main

import (
	"context"
	"io"
	"mime"
	"path/filepath"

	"github.com/spf13/cobra"

	"budgea/internal/shared/logging"
	"budgea/pkg/budgea"
)

type UploadDocumentRequest struct {
	Path   string
	Name   string
	TypeID int64
}

type UploadDocumentHandler func(ctx context.Context, req UploadDocumentRequest) (*budgea.Document, error)

func NewCmdDocuments(w io.Writer, rf *RootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "documents",
		Short: "Manage user documents",
	}

	h := func(ctx context.Context, req UploadDocumentRequest) (*budgea.Document, error) {
		a, err := loadApp()
		if err != nil {
			return nil, err
		}
		var doc *budgea.Document
		err = logging.Run("Command", "documents.upload", a.log, func(ld *logging.LogData) error {
			f := budgea.FileFromPath(req.Path)
			f.ContentType = mime.TypeByExtension(filepath.Ext(req.Path))
			doc, err = a.apiClient(rf.Token).Documents.CreateDocument(ctx, rf.User, req.Name, req.TypeID, budgea.Params{"file": f})
			if err != nil {
				return err
			}
			ld.AddData("document_id", doc.ID)
			return nil
		})
		return doc, err
	}
	cmd.AddCommand(BuildCmdUploadDocument(w, h, rf))
	return cmd
}

func BuildCmdUploadDocument(w io.Writer, handler UploadDocumentHandler, rf *RootFlags) *cobra.Command {
	req := UploadDocumentRequest{}
	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a file as a new document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Path = args[0]
			if req.Name == "" {
				req.Name = filepath.Base(req.Path)
			}
			doc, err := handler(cmd.Context(), req)
			if err != nil {
				return err
			}
			if rf.Output == OutputJSON {
				return printJSON(w, doc)
			}
			t := newTable(w, "ID", "NAME", "TYPE", "HAS FILE")
			t.row(doc.ID, doc.Name, doc.IDType, doc.HasFile)
			return t.flush()
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Document name (defaults to the file name)")
	cmd.Flags().Int64Var(&req.TypeID, "type", 0, "Document type id")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
