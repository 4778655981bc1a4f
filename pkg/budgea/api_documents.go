package budgea

import (
	"context"
	"net/http"
)

// DocumentsAPI manages the documents of a user and lists document types.
type DocumentsAPI service

var (
	opListDocuments = register(&Operation{
		Name:         "users_id_user_documents_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/documents",
		PathParams:   []string{"id_user"},
		QueryParams:  []string{"limit", "offset", "min_date", "max_date", "id_type", "id_transaction", "id_subscription", "expand"},
		Required:     []string{"id_user"},
		ResponseType: "Documents",
		Auth:         []string{authScheme},
	})
	opCreateDocument = register(&Operation{
		Name:         "users_id_user_documents_post",
		Method:       http.MethodPost,
		Path:         "/users/{id_user}/documents",
		PathParams:   []string{"id_user"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"name", "id_type", "url", "date", "duedate", "total_amount", "untaxed_amount", "vat", "income", "id_category", "id_transaction", "number", "issuer"},
		FileParams:   []string{"file"},
		Required:     []string{"id_user", "name", "id_type"},
		ResponseType: "Document",
		Auth:         []string{authScheme},
	})
	opGetDocument = register(&Operation{
		Name:         "users_id_user_documents_id_document_get",
		Method:       http.MethodGet,
		Path:         "/users/{id_user}/documents/{id_document}",
		PathParams:   []string{"id_user", "id_document"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_user", "id_document"},
		ResponseType: "Document",
		Auth:         []string{authScheme},
	})
	opUpdateDocument = register(&Operation{
		Name:         "users_id_user_documents_id_document_put",
		Method:       http.MethodPut,
		Path:         "/users/{id_user}/documents/{id_document}",
		PathParams:   []string{"id_user", "id_document"},
		QueryParams:  []string{"expand"},
		FormParams:   []string{"name", "id_type", "url", "date", "duedate", "total_amount", "untaxed_amount", "vat", "income", "id_category", "id_transaction", "number", "issuer", "readonly"},
		FileParams:   []string{"file"},
		Required:     []string{"id_user", "id_document"},
		ResponseType: "Document",
		Auth:         []string{authScheme},
	})
	opDeleteDocument = register(&Operation{
		Name:         "users_id_user_documents_id_document_delete",
		Method:       http.MethodDelete,
		Path:         "/users/{id_user}/documents/{id_document}",
		PathParams:   []string{"id_user", "id_document"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_user", "id_document"},
		ResponseType: "Document",
		Auth:         []string{authScheme},
	})
	opListDocumentTypes = register(&Operation{
		Name:         "documenttypes_get",
		Method:       http.MethodGet,
		Path:         "/documenttypes",
		QueryParams:  []string{"expand", "attacheable"},
		ResponseType: "DocumentTypes",
		Auth:         []string{authScheme},
	})
	opGetDocumentType = register(&Operation{
		Name:         "documenttypes_id_document_type_get",
		Method:       http.MethodGet,
		Path:         "/documenttypes/{id_document_type}",
		PathParams:   []string{"id_document_type"},
		QueryParams:  []string{"expand"},
		Required:     []string{"id_document_type"},
		ResponseType: "DocumentType",
		Auth:         []string{authScheme},
	})
)

// ListDocuments returns the documents of a user.
func (a *DocumentsAPI) ListDocuments(ctx context.Context, idUser string, opts Params) (*Documents, error) {
	out, _, err := a.ListDocumentsWithHTTPInfo(ctx, idUser, opts)
	return out, err
}

// ListDocumentsWithHTTPInfo is ListDocuments and also returns the HTTP response.
func (a *DocumentsAPI) ListDocumentsWithHTTPInfo(ctx context.Context, idUser string, opts Params) (*Documents, *http.Response, error) {
	return invoke[*Documents](ctx, a.client, opListDocuments, bind(opts, "id_user", idUser))
}

// CreateDocument uploads a document. The content goes under the "file" key of
// opts as a File, an *os.File, a path or a []byte.
func (a *DocumentsAPI) CreateDocument(ctx context.Context, idUser, name string, idType int64, opts Params) (*Document, error) {
	out, _, err := a.CreateDocumentWithHTTPInfo(ctx, idUser, name, idType, opts)
	return out, err
}

// CreateDocumentWithHTTPInfo is CreateDocument and also returns the HTTP response.
func (a *DocumentsAPI) CreateDocumentWithHTTPInfo(ctx context.Context, idUser, name string, idType int64, opts Params) (*Document, *http.Response, error) {
	return invoke[*Document](ctx, a.client, opCreateDocument, bind(opts, "id_user", idUser, "name", name, "id_type", idType))
}

// GetDocument returns a single document.
func (a *DocumentsAPI) GetDocument(ctx context.Context, idUser string, idDocument int64, opts Params) (*Document, error) {
	out, _, err := a.GetDocumentWithHTTPInfo(ctx, idUser, idDocument, opts)
	return out, err
}

// GetDocumentWithHTTPInfo is GetDocument and also returns the HTTP response.
func (a *DocumentsAPI) GetDocumentWithHTTPInfo(ctx context.Context, idUser string, idDocument int64, opts Params) (*Document, *http.Response, error) {
	return invoke[*Document](ctx, a.client, opGetDocument, bind(opts, "id_user", idUser, "id_document", idDocument))
}

// UpdateDocument changes the metadata of a document.
func (a *DocumentsAPI) UpdateDocument(ctx context.Context, idUser string, idDocument int64, opts Params) (*Document, error) {
	out, _, err := a.UpdateDocumentWithHTTPInfo(ctx, idUser, idDocument, opts)
	return out, err
}

// UpdateDocumentWithHTTPInfo is UpdateDocument and also returns the HTTP response.
func (a *DocumentsAPI) UpdateDocumentWithHTTPInfo(ctx context.Context, idUser string, idDocument int64, opts Params) (*Document, *http.Response, error) {
	return invoke[*Document](ctx, a.client, opUpdateDocument, bind(opts, "id_user", idUser, "id_document", idDocument))
}

// DeleteDocument removes a document.
func (a *DocumentsAPI) DeleteDocument(ctx context.Context, idUser string, idDocument int64, opts Params) (*Document, error) {
	out, _, err := a.DeleteDocumentWithHTTPInfo(ctx, idUser, idDocument, opts)
	return out, err
}

// DeleteDocumentWithHTTPInfo is DeleteDocument and also returns the HTTP response.
func (a *DocumentsAPI) DeleteDocumentWithHTTPInfo(ctx context.Context, idUser string, idDocument int64, opts Params) (*Document, *http.Response, error) {
	return invoke[*Document](ctx, a.client, opDeleteDocument, bind(opts, "id_user", idUser, "id_document", idDocument))
}

// ListDocumentTypes returns the known document types.
func (a *DocumentsAPI) ListDocumentTypes(ctx context.Context, opts Params) (*DocumentTypes, error) {
	out, _, err := a.ListDocumentTypesWithHTTPInfo(ctx, opts)
	return out, err
}

// ListDocumentTypesWithHTTPInfo is ListDocumentTypes and also returns the HTTP response.
func (a *DocumentsAPI) ListDocumentTypesWithHTTPInfo(ctx context.Context, opts Params) (*DocumentTypes, *http.Response, error) {
	return invoke[*DocumentTypes](ctx, a.client, opListDocumentTypes, opts)
}

// GetDocumentType returns a single document type.
func (a *DocumentsAPI) GetDocumentType(ctx context.Context, idDocumentType int64, opts Params) (*DocumentType, error) {
	out, _, err := a.GetDocumentTypeWithHTTPInfo(ctx, idDocumentType, opts)
	return out, err
}

// GetDocumentTypeWithHTTPInfo is GetDocumentType and also returns the HTTP response.
func (a *DocumentsAPI) GetDocumentTypeWithHTTPInfo(ctx context.Context, idDocumentType int64, opts Params) (*DocumentType, *http.Response, error) {
	return invoke[*DocumentType](ctx, a.client, opGetDocumentType, bind(opts, "id_document_type", idDocumentType))
}
