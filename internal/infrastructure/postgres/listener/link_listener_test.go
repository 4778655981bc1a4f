package listener

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestParsePayload(t *testing.T) {
	id, err := parsePayload(`{"id":42}`)
	if err != nil {
		t.Fatalf("parsePayload() error = %v", err)
	}
	if id != 42 {
		t.Errorf("parsePayload() = %d, want 42", id)
	}

	if _, err := parsePayload("not json"); err == nil {
		t.Error("parsePayload() expected error for invalid payload")
	}
}

func TestDispatch(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	var got []int64
	l := NewLinkListener("", func(ctx context.Context, id int64) {
		got = append(got, id)
	}, log)

	l.dispatch(context.Background(), `{"id":7}`)
	l.dispatch(context.Background(), `{`)

	if len(got) != 1 || got[0] != 7 {
		t.Errorf("handler calls = %v, want [7]", got)
	}
	if last := hook.LastEntry(); last == nil || last.Level != logrus.WarnLevel {
		t.Errorf("expected a warning for the bad payload, got %+v", last)
	}
}
