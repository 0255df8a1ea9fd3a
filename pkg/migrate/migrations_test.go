package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMigrationsDirIsValid(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir invalid: %v", err)
	}
}

func TestMigrationsCoverCoreTables(t *testing.T) {
	entries, err := os.ReadDir("migrations")
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}

	var all strings.Builder
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join("migrations", e.Name()))
		if err != nil {
			t.Fatalf("read %s: %v", e.Name(), err)
		}
		all.Write(b)
	}

	for _, table := range []string{
		"brands", "devices", "device_variants", "cities",
		"pricing_records", "pickup_requests", "audit_records", "admin_users",
	} {
		if !strings.Contains(all.String(), "CREATE TABLE "+table) {
			t.Fatalf("no migration creates table %q", table)
		}
	}
}

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()
	path, err := CreateSQLMigration(dir, "Add Something New!")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	base := filepath.Base(path)
	if !strings.HasSuffix(base, "_add_something_new.sql") {
		t.Fatalf("unexpected filename %q", base)
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("generated migration invalid: %v", err)
	}
}
