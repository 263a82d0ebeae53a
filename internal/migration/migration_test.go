package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testFS(files map[string]string) fstest.MapFS {
	m := fstest.MapFS{}
	for name, content := range files {
		m[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return m
}

func TestApply_FreshDatabase(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"001_init.sql":  "CREATE TABLE things (id TEXT PRIMARY KEY);",
		"002_extra.sql": "ALTER TABLE things ADD COLUMN name TEXT;",
	}))

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied %d migrations, want 2", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	if _, err := db.Exec("INSERT INTO things (id, name) VALUES ('a', 'b')"); err != nil {
		t.Errorf("migrated schema unusable: %v", err)
	}
}

func TestApply_Idempotent(t *testing.T) {
	db := openTestDB(t)
	fsys := testFS(map[string]string{
		"001_init.sql": "CREATE TABLE things (id TEXT PRIMARY KEY);",
	})

	if _, err := NewRunner(db, fsys).Apply(nil); err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}
	applied, err := NewRunner(db, fsys).Apply(nil)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("second Apply ran %d migrations, want 0", applied)
	}
}

func TestApply_RollsBackFailedMigration(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"001_bad.sql": "CREATE TABLE broken (;",
	}))

	if _, err := runner.Apply(nil); err == nil {
		t.Fatal("Apply should fail on invalid SQL")
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("version = %d after failed migration, want 0", version)
	}
}

func TestApply_NewerSchemaRejected(t *testing.T) {
	db := openTestDB(t)
	newer := testFS(map[string]string{
		"001_init.sql": "CREATE TABLE things (id TEXT PRIMARY KEY);",
		"002_more.sql": "CREATE TABLE others (id TEXT PRIMARY KEY);",
	})
	if _, err := NewRunner(db, newer).Apply(nil); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	older := NewRunner(db, testFS(map[string]string{
		"001_init.sql": "CREATE TABLE things (id TEXT PRIMARY KEY);",
	}))
	if _, err := older.Apply(nil); err == nil {
		t.Error("Apply should reject a database newer than its migrations")
	}
	if err := older.ValidateVersion(); err == nil {
		t.Error("ValidateVersion should reject a database newer than its migrations")
	}
}

func TestReadMigrations_BadFilenames(t *testing.T) {
	db := openTestDB(t)

	tests := map[string]string{
		"noversion.sql": "SELECT 1;",
		"0_zero.sql":    "SELECT 1;",
		"abc_name.sql":  "SELECT 1;",
	}
	for name, content := range tests {
		runner := NewRunner(db, testFS(map[string]string{name: content}))
		if _, err := runner.ReadMigrations(); err == nil {
			t.Errorf("ReadMigrations should reject filename %q", name)
		}
	}
}

func TestReadMigrations_DuplicateVersion(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"001_a.sql": "SELECT 1;",
		"001_b.sql": "SELECT 1;",
	}))

	if _, err := runner.ReadMigrations(); err == nil {
		t.Error("ReadMigrations should reject duplicate versions")
	}
}

func TestReadMigrations_SortsByVersion(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS(map[string]string{
		"010_last.sql":   "SELECT 1;",
		"002_middle.sql": "SELECT 1;",
		"001_first.sql":  "SELECT 1;",
	}))

	migrations, err := runner.ReadMigrations()
	if err != nil {
		t.Fatalf("ReadMigrations failed: %v", err)
	}
	if len(migrations) != 3 {
		t.Fatalf("got %d migrations", len(migrations))
	}
	for i, want := range []int{1, 2, 10} {
		if migrations[i].Version != want {
			t.Errorf("migrations[%d].Version = %d, want %d", i, migrations[i].Version, want)
		}
	}
	if migrations[2].Name != "last" {
		t.Errorf("Name = %q, want last", migrations[2].Name)
	}
}
