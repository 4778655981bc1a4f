package budgea

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Parameter validation errors. They are always wrapped in a *ParamError and
// are returned before any request is sent.
var (
	ErrUnexpectedParameter = errors.New("unexpected parameter")
	ErrMissingParameter    = errors.New("missing required parameter")
	ErrInvalidParameter    = errors.New("invalid parameter value")
)

// ParamError reports a parameter rejected while binding a call.
type ParamError struct {
	Operation string
	Param     string
	Err       error
}

func (e *ParamError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnexpectedParameter):
		return fmt.Sprintf("budgea: got an unexpected parameter %q to method %s", e.Param, e.Operation)
	case errors.Is(e.Err, ErrMissingParameter):
		return fmt.Sprintf("budgea: missing the required parameter %q when calling %s", e.Param, e.Operation)
	default:
		return fmt.Sprintf("budgea: %s: parameter %q: %v", e.Operation, e.Param, e.Err)
	}
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// APIError is returned when the API answers with a non-2xx status.
// Code, Message and Description are filled when the body is a Budgea error document.
type APIError struct {
	Operation  string
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte

	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

func newAPIError(op *Operation, resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		Operation:  op.Name,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
	}
	// Best effort: non-JSON bodies keep only the raw bytes.
	_ = json.Unmarshal(body, apiErr)
	return apiErr
}

func (e *APIError) Error() string {
	if e.Code == "" && e.Message == "" && e.Description == "" {
		return fmt.Sprintf("budgea: %s: API request failed with status %d: %s", e.Operation, e.StatusCode, string(e.Body))
	}
	msg := e.Message
	if msg == "" {
		msg = e.Description
	}
	return fmt.Sprintf("budgea: %s: API error (status %d): %s - %s", e.Operation, e.StatusCode, e.Code, msg)
}

// IsUnauthorized reports whether err is an API error with status 401.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by an *APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
