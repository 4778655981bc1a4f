package budgea

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"sort"
	"strings"
)

const (
	contentTypeJSON      = "application/json"
	contentTypeMultipart = "multipart/form-data"
	contentTypeForm      = "application/x-www-form-urlencoded"

	// authScheme is the only security scheme the API declares: a token sent
	// in the Authorization header.
	authScheme = "Authorization"
)

// Operation is one endpoint of the API: an HTTP method, a URL template and
// the static table saying where each declared parameter goes.
type Operation struct {
	// Name is the operation id, used in error messages and telemetry.
	Name   string
	Method string
	// Path is relative to the configured base path, e.g. /webhooks/{id_webhook}.
	Path string

	PathParams  []string
	QueryParams []string
	FormParams  []string
	FileParams  []string
	Required    []string

	// ContentType of the request body when form or file params are present.
	ContentType string
	// ResponseType names the DTO decoded from a successful response; empty when
	// the endpoint returns nothing useful.
	ResponseType string
	// Auth lists the security schemes applied to the request.
	Auth []string
}

var registry []*Operation

// register adds op to the operation table and fills defaults.
func register(op *Operation) *Operation {
	if op.ContentType == "" && (len(op.FormParams) > 0 || len(op.FileParams) > 0) {
		op.ContentType = contentTypeMultipart
	}
	registry = append(registry, op)
	return op
}

// Operations returns every endpoint known to the client, in registration order.
func Operations() []*Operation {
	return slices.Clone(registry)
}

// LookupOperation returns the operation with the given name.
func LookupOperation(name string) (*Operation, bool) {
	for _, op := range registry {
		if op.Name == name {
			return op, true
		}
	}
	return nil, false
}

// Declares reports whether name is a parameter of the operation.
func (op *Operation) Declares(name string) bool {
	return slices.Contains(op.PathParams, name) ||
		slices.Contains(op.QueryParams, name) ||
		slices.Contains(op.FormParams, name) ||
		slices.Contains(op.FileParams, name)
}

// Params returns every declared parameter name.
func (op *Operation) Params() []string {
	all := make([]string, 0, len(op.PathParams)+len(op.QueryParams)+len(op.FormParams)+len(op.FileParams))
	all = append(all, op.PathParams...)
	all = append(all, op.QueryParams...)
	all = append(all, op.FormParams...)
	all = append(all, op.FileParams...)
	return all
}

// request holds the parameter buckets of a bound call.
type request struct {
	path  string
	query url.Values
	form  url.Values
	files map[string]File
}

func (op *Operation) paramError(name string, err error) *ParamError {
	return &ParamError{Operation: op.Name, Param: name, Err: err}
}

// bind validates params against the operation table and splits them into
// path, query, form and file buckets.
func (op *Operation) bind(params Params) (*request, error) {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !op.Declares(name) {
			return nil, op.paramError(name, ErrUnexpectedParameter)
		}
	}

	for _, name := range op.Required {
		if isMissing(params[name], slices.Contains(op.PathParams, name)) {
			return nil, op.paramError(name, ErrMissingParameter)
		}
	}

	req := &request{
		path:  op.Path,
		query: url.Values{},
		form:  url.Values{},
		files: map[string]File{},
	}

	for _, name := range op.PathParams {
		s, err := formatValue(params[name])
		if err != nil {
			return nil, op.paramError(name, err)
		}
		req.path = strings.Replace(req.path, "{"+name+"}", url.PathEscape(s), 1)
	}
	if strings.ContainsAny(req.path, "{}") {
		return nil, fmt.Errorf("budgea: %s: unresolved placeholder in %s", op.Name, req.path)
	}

	for _, name := range op.QueryParams {
		v, ok := params[name]
		if !ok || isAbsent(v) {
			continue
		}
		s, err := formatValue(v)
		if err != nil {
			return nil, op.paramError(name, err)
		}
		req.query.Add(name, s)
	}

	for _, name := range op.FormParams {
		v, ok := params[name]
		if !ok || isAbsent(v) {
			continue
		}
		// A map is a set of dynamic fields, e.g. the login form of a connector.
		if fields, isMap := v.(map[string]string); isMap {
			for k, fv := range fields {
				req.form.Add(k, fv)
			}
			continue
		}
		s, err := formatValue(v)
		if err != nil {
			return nil, op.paramError(name, err)
		}
		req.form.Add(name, s)
	}

	for _, name := range op.FileParams {
		v, ok := params[name]
		if !ok || isAbsent(v) {
			continue
		}
		f, err := toFile(name, v)
		if err != nil {
			return nil, op.paramError(name, err)
		}
		req.files[name] = f
	}

	return req, nil
}

// hasBody reports whether the bound call sends a request body.
func (r *request) hasBody() bool {
	return len(r.form) > 0 || len(r.files) > 0
}

// methodAllowsBody is false for verbs where the API never expects a body.
func methodAllowsBody(method string) bool {
	return method != http.MethodGet && method != http.MethodHead
}
