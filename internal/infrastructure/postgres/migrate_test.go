package postgres

import (
	"io/fs"
	"strings"
	"testing"
)

func TestMigrationFiles_Paired(t *testing.T) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	up, down := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			up[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			down[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file %s in migrations", name)
		}
	}
	if len(up) == 0 {
		t.Fatal("no migrations embedded")
	}
	for v := range up {
		if !down[v] {
			t.Errorf("migration %s has no down file", v)
		}
	}
}

func TestMigrations_NotifyOnTokenUpdate(t *testing.T) {
	body, err := fs.ReadFile(migrationFiles, "migrations/000002_notify_relink.up.sql")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	sql := string(body)
	for _, want := range []string{
		"AFTER INSERT OR UPDATE OF token_encrypted ON linked_users",
		"NEW.token_encrypted IS DISTINCT FROM OLD.token_encrypted",
		"pg_notify('linked_user_created'",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("migration does not contain %q", want)
		}
	}
}
