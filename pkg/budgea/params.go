package budgea

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Params carries the optional parameters of a call, keyed by their wire name
// (for example "expand", "min_date", "limit"). A nil value is treated as absent.
type Params map[string]any

// bind returns a copy of opts with the required positional values set.
// kv alternates names and values.
func bind(opts Params, kv ...any) Params {
	out := make(Params, len(opts)+len(kv)/2)
	for k, v := range opts {
		out[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i].(string)] = kv[i+1]
	}
	return out
}

// isMissing reports whether a required value counts as not provided: nil, a
// nil pointer, an empty string or a zero date. A zero integer is missing only
// when it fills a path identifier.
func isMissing(v any, identifier bool) bool {
	switch x := v.(type) {
	case nil:
		return true
	case Date:
		return x.IsZero()
	case DateTime:
		return x.IsZero()
	case time.Time:
		return x.IsZero()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return identifier && rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return identifier && rv.Uint() == 0
	}
	return false
}

// isAbsent reports whether an optional value should be left out of the request.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// formatValue renders a scalar the way the API expects it in a query string
// or a form field. Slices use the csv collection format.
func formatValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case decimal.Decimal:
		return x.String(), nil
	case Date:
		return x.String(), nil
	case DateTime:
		return x.String(), nil
	case time.Time:
		return x.Format(time.RFC3339), nil
	case fmt.Stringer:
		return x.String(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return "", nil
		}
		return formatValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s, err := formatValue(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	}
	return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidParameter, v)
}

// toFile converts the accepted upload representations into a File.
func toFile(name string, v any) (File, error) {
	switch x := v.(type) {
	case File:
		return x, nil
	case *File:
		return *x, nil
	case *os.File:
		return File{Name: filepath.Base(x.Name()), Reader: x}, nil
	case string:
		return FileFromPath(x), nil
	case []byte:
		return File{Name: name, Reader: bytes.NewReader(x)}, nil
	}
	return File{}, fmt.Errorf("%w: cannot upload %T", ErrInvalidParameter, v)
}
