package postgres

import (
	"strings"
	"testing"
)

func TestMaskStatement(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "placeholders kept",
			in:   "SELECT id FROM accounts WHERE linked_user_id = $1 AND id = $12",
			want: "SELECT id FROM accounts WHERE linked_user_id = $1 AND id = $12",
		},
		{
			name: "string literal",
			in:   "UPDATE linked_users SET label = 'alice' WHERE id = $1",
			want: "UPDATE linked_users SET label = '?' WHERE id = $1",
		},
		{
			name: "escaped quote",
			in:   "SELECT 'it''s' FROM t",
			want: "SELECT '?' FROM t",
		},
		{
			name: "numeric literal",
			in:   "SELECT * FROM transactions LIMIT 100 OFFSET 2.5",
			want: "SELECT * FROM transactions LIMIT ? OFFSET ?",
		},
		{
			name: "digits inside identifiers",
			in:   "SELECT col1 FROM t2",
			want: "SELECT col1 FROM t2",
		},
		{
			name: "unterminated literal",
			in:   "SELECT 'oops",
			want: "SELECT '?'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskStatement(tt.in); got != tt.want {
				t.Errorf("maskStatement(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMaskStatement_Truncates(t *testing.T) {
	got := maskStatement("SELECT " + strings.Repeat("x", 400))
	if len(got) != maxStatementLen+3 || !strings.HasSuffix(got, "...") {
		t.Errorf("maskStatement() length = %d, want truncated to %d", len(got), maxStatementLen+3)
	}
}

func TestStatementVerb(t *testing.T) {
	tests := map[string]string{
		"  select 1":                       "SELECT",
		"\n\t\tINSERT INTO accounts (id)": "INSERT",
		"DELETE":                           "DELETE",
		"":                                 "",
	}
	for in, want := range tests {
		if got := statementVerb(in); got != want {
			t.Errorf("statementVerb(%q) = %q, want %q", in, got, want)
		}
	}
}
