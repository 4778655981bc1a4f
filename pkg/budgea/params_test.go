package budgea

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountUsage string

func TestFormatValue(t *testing.T) {
	name := "savings"
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "abc", "abc"},
		{"bool", true, "true"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"float", 12.5, "12.5"},
		{"decimal", decimal.RequireFromString("1234.56"), "1234.56"},
		{"date", NewDate(2023, time.March, 4), "2023-03-04"},
		{"datetime", DateTime{time.Date(2023, 3, 4, 5, 6, 7, 0, time.UTC)}, "2023-03-04 05:06:07"},
		{"named string", accountUsage("priv"), "priv"},
		{"pointer", &name, "savings"},
		{"string slice", []string{"a", "b", "c"}, "a,b,c"},
		{"int slice", []int64{1, 2}, "1,2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatValue(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatValue_Unsupported(t *testing.T) {
	_, err := formatValue(struct{ A int }{1})
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestIsMissing(t *testing.T) {
	var nilPtr *int64
	tests := []struct {
		name       string
		in         any
		identifier bool
		want       bool
	}{
		{"nil", nil, false, true},
		{"nil pointer", nilPtr, false, true},
		{"empty string", "", false, true},
		{"zero id", int64(0), true, true},
		{"zero value", 0, false, false},
		{"nil slice", []string(nil), false, true},
		{"zero date", Date{}, false, true},
		{"me", Me, true, false},
		{"id", int64(12), true, false},
		{"false", false, false, false},
		{"decimal zero", decimal.Zero, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isMissing(tt.in, tt.identifier))
		})
	}
}

func TestToFile(t *testing.T) {
	f, err := toFile("file", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, "file", f.Name)

	f, err = toFile("file", "/tmp/invoice.pdf")
	require.NoError(t, err)
	assert.Equal(t, "invoice.pdf", f.Name)

	_, err = toFile("file", 12)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}
