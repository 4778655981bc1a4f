package budgea

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// invoke runs op and decodes the response body into a T.
func invoke[T any](ctx context.Context, c *APIClient, op *Operation, params Params) (T, *http.Response, error) {
	var out T
	resp, err := c.call(ctx, op, params, &out)
	if err != nil {
		var zero T
		return zero, resp, err
	}
	return out, resp, nil
}

// Do binds params to op and sends the request without reading the response.
// Non-2xx statuses are not turned into errors. The caller must close the body.
func (c *APIClient) Do(ctx context.Context, op *Operation, params Params) (*http.Response, error) {
	req, err := op.bind(params)
	if err != nil {
		return nil, err
	}
	httpReq, err := c.prepareRequest(ctx, op, req)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	return resp, nil
}

// call binds params, sends the request and decodes a 2xx body into out.
// out may be nil when the operation returns nothing.
func (c *APIClient) call(ctx context.Context, op *Operation, params Params, out any) (*http.Response, error) {
	req, err := op.bind(params)
	if err != nil {
		return nil, err
	}

	ctx, span := clientTracer.Start(ctx, "budgea."+op.Name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("budgea.operation", op.Name),
			attribute.String("http.method", op.Method),
			attribute.String("http.route", op.Path),
		),
	)
	defer span.End()

	log := c.cfg.Logger.WithFields(logrus.Fields{
		"operation": op.Name,
		"method":    op.Method,
		"path":      req.path,
	})
	log.Debugf("Call.%v.Start", op.Name)

	start := time.Now()
	resp, body, err := c.send(ctx, op, req)
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	recordCall(ctx, op, status, start)
	span.SetAttributes(attribute.Int("http.status_code", status))

	if err == nil && (status < 200 || status > 299) {
		err = newAPIError(op, resp, body)
	}
	if err == nil && out != nil {
		err = decode(body, out)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.WithError(err).WithField("status", status).Errorf("Call.%v.Error", op.Name)
		return resp, err
	}

	log.WithField("status", status).Debugf("Call.%v.Complete", op.Name)
	return resp, nil
}

// send performs the request and reads the whole body. The returned response
// carries a fresh reader over the same bytes.
func (c *APIClient) send(ctx context.Context, op *Operation, req *request) (*http.Response, []byte, error) {
	httpReq, err := c.prepareRequest(ctx, op, req)
	if err != nil {
		return nil, nil, err
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, body, nil
}

func (c *APIClient) prepareRequest(ctx context.Context, op *Operation, req *request) (*http.Request, error) {
	u := c.cfg.BasePath + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	if req.hasBody() && methodAllowsBody(op.Method) {
		var err error
		if len(req.files) > 0 || op.ContentType == contentTypeMultipart {
			body, contentType, err = encodeMultipart(req)
		} else {
			body, contentType = strings.NewReader(req.form.Encode()), contentTypeForm
		}
		if err != nil {
			return nil, err
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, op.Method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range c.cfg.DefaultHeader {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("Accept", contentTypeJSON)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if c.cfg.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	httpReq.Header.Set("X-Request-Id", uuid.NewString())
	if len(op.Auth) > 0 {
		if auth := c.cfg.authorization(); auth != "" {
			httpReq.Header.Set(authScheme, auth)
		}
	}
	return httpReq, nil
}

// encodeMultipart writes form fields in name order followed by the uploads.
func encodeMultipart(req *request) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	keys := make([]string, 0, len(req.form))
	for k := range req.form {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range req.form[k] {
			if err := w.WriteField(k, v); err != nil {
				return nil, "", fmt.Errorf("failed to write form field %s: %w", k, err)
			}
		}
	}

	names := make([]string, 0, len(req.files))
	for name := range req.files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writeFile(w, name, req.files[name]); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFile(w *multipart.Writer, field string, f File) error {
	rc, err := f.open()
	if err != nil {
		return err
	}
	defer rc.Close()

	filename := f.Name
	if filename == "" {
		filename = field
	}
	ct := f.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(field), quoteEscaper.Replace(filename)))
	h.Set("Content-Type", ct)
	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create file part %s: %w", field, err)
	}
	if _, err := io.Copy(part, rc); err != nil {
		return fmt.Errorf("failed to write file part %s: %w", field, err)
	}
	return nil
}

// decode unmarshals a JSON body into out. *[]byte receives the raw bytes.
func decode(body []byte, out any) error {
	if raw, ok := out.(*[]byte); ok {
		*raw = body
		return nil
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
