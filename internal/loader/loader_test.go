package loader

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/storekit-labs/martgen/internal/dataset"
	"github.com/storekit-labs/martgen/internal/export"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	dir := t.TempDir()
	db, err := sql.Open("sqlite3", filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func writeFixtures(t *testing.T, rows int) string {
	t.Helper()
	dir := t.TempDir()
	if err := export.WriteDataset(dir, dataset.New(17).Generate(rows)); err != nil {
		t.Fatalf("Failed to write fixtures: %v", err)
	}
	return dir
}

func TestLoadDir(t *testing.T) {
	db := testDB(t)
	dir := writeFixtures(t, 30)

	l := New(db, "sqlite")
	if err := l.LoadDir(context.Background(), dir); err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	for _, table := range []string{"customers", "products", "orders", "order_items", "payments"} {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			t.Fatalf("Failed to count %s: %v", table, err)
		}
		if count != 30 {
			t.Errorf("Table %s has %d rows, want 30", table, count)
		}
	}

	// The five-table join must resolve for every order.
	var joined int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM orders o
		JOIN customers c ON c.customer_id = o.customer_id
		JOIN order_items oi ON oi.order_id = o.order_id
		JOIN products p ON p.product_id = oi.product_id
		JOIN payments pay ON pay.order_id = o.order_id
	`).Scan(&joined)
	if err != nil {
		t.Fatalf("Join query failed: %v", err)
	}
	if joined != 30 {
		t.Errorf("Join resolved %d rows, want 30", joined)
	}

	// Typed columns must load as numbers, not text.
	var maxPrice float64
	if err := db.QueryRow("SELECT MAX(price) FROM products").Scan(&maxPrice); err != nil {
		t.Fatalf("Failed to read max price: %v", err)
	}
	if maxPrice <= 0 || maxPrice > 250 {
		t.Errorf("Max product price %.2f outside (0, 250]", maxPrice)
	}
}

func TestLoadReplacesPriorContents(t *testing.T) {
	db := testDB(t)
	l := New(db, "sqlite")

	first := writeFixtures(t, 40)
	if err := l.LoadDir(context.Background(), first); err != nil {
		t.Fatalf("First load failed: %v", err)
	}

	second := writeFixtures(t, 15)
	if err := l.LoadDir(context.Background(), second); err != nil {
		t.Fatalf("Second load failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM customers").Scan(&count); err != nil {
		t.Fatalf("Failed to count customers: %v", err)
	}
	if count != 15 {
		t.Errorf("Expected full replace to leave 15 rows, got %d", count)
	}
}

func TestLoadFileRejectsBadTableName(t *testing.T) {
	db := testDB(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "drop table;.csv")
	if err := os.WriteFile(bad, []byte("a,b\n1,2\n"), 0644); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}

	if _, err := New(db, "sqlite").LoadFile(context.Background(), bad); err == nil {
		t.Error("Expected error for invalid table name, got nil")
	}
}

func TestLoadDirEmpty(t *testing.T) {
	db := testDB(t)
	if err := New(db, "sqlite").LoadDir(context.Background(), t.TempDir()); err != nil {
		t.Errorf("LoadDir on empty directory should not fail: %v", err)
	}
}

func TestLoadUnknownTableFallsBackToText(t *testing.T) {
	db := testDB(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "extras.csv")
	if err := os.WriteFile(path, []byte("k,v\nalpha,1\nbeta,2\n"), 0644); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}

	count, err := New(db, "sqlite").LoadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 rows, got %d", count)
	}

	var v string
	if err := db.QueryRow("SELECT v FROM extras WHERE k = 'alpha'").Scan(&v); err != nil {
		t.Fatalf("Failed to read extras: %v", err)
	}
	if v != "1" {
		t.Errorf("Expected TEXT value \"1\", got %q", v)
	}
}
