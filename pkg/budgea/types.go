package budgea

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Me addresses the user owning the access token in /users/{id_user} routes.
const Me = "me"

// Date is a calendar date sent and received as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate returns the date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("failed to parse date '%s': %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := parseWireTime(b, dateLayout)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// DateTime is a timestamp sent and received as YYYY-MM-DD HH:MM:SS.
type DateTime struct {
	time.Time
}

func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.String())), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	t, err := parseWireTime(b, dateTimeLayout)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// parseWireTime accepts null, the preferred layout, and the other layouts the
// API is known to emit for the same field.
func parseWireTime(b []byte, preferred string) (time.Time, error) {
	if bytes.Equal(b, []byte("null")) {
		return time.Time{}, nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse time %s: %w", string(b), err)
	}
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{preferred, dateTimeLayout, dateLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse time '%s'", s)
}

// File is a multipart upload. Reader is consumed once; a File built with
// FileFromPath opens the file when the request body is encoded.
type File struct {
	Name        string
	ContentType string
	Reader      io.Reader

	path string
}

// FileFromPath returns a File that reads the named file at send time.
func FileFromPath(path string) File {
	return File{Name: filepath.Base(path), path: path}
}

func (f File) open() (io.ReadCloser, error) {
	// Readers supplied by the caller stay open; only files opened here are closed.
	if f.Reader != nil {
		return io.NopCloser(f.Reader), nil
	}
	if f.path == "" {
		return nil, fmt.Errorf("file %q has no content", f.Name)
	}
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	return fh, nil
}
