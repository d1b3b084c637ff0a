package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/storekit-labs/martgen/internal/dataset"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return rows
}

func TestWriteDataset(t *testing.T) {
	dir, err := os.MkdirTemp("", "martgen-export")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(dir)

	ds := dataset.New(11).Generate(25)
	if err := WriteDataset(dir, ds); err != nil {
		t.Fatalf("WriteDataset failed: %v", err)
	}

	expected := map[string][]string{
		CustomersFile:  dataset.Customer{}.Header(),
		ProductsFile:   dataset.Product{}.Header(),
		OrdersFile:     dataset.Order{}.Header(),
		OrderItemsFile: dataset.OrderItem{}.Header(),
		PaymentsFile:   dataset.Payment{}.Header(),
	}

	for name, header := range expected {
		rows := readCSV(t, filepath.Join(dir, name))
		if len(rows) != 26 {
			t.Errorf("%s: expected header + 25 rows, got %d lines", name, len(rows))
		}
		if !reflect.DeepEqual(rows[0], header) {
			t.Errorf("%s: header %v, want %v", name, rows[0], header)
		}
		for i, row := range rows[1:] {
			if len(row) != len(header) {
				t.Errorf("%s row %d: %d fields, want %d", name, i, len(row), len(header))
			}
		}
	}
}

func TestWriteDatasetEmpty(t *testing.T) {
	dir, err := os.MkdirTemp("", "martgen-export")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(dir)

	if err := WriteDataset(dir, dataset.New(1).Generate(0)); err != nil {
		t.Fatalf("WriteDataset failed for empty dataset: %v", err)
	}

	rows := readCSV(t, filepath.Join(dir, CustomersFile))
	if len(rows) != 1 {
		t.Errorf("Empty dataset should still write the header row, got %d lines", len(rows))
	}
}

func TestWriteDatasetIsDeterministicWithFixedSeed(t *testing.T) {
	dirA, err := os.MkdirTemp("", "martgen-export-a")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(dirA)
	dirB, err := os.MkdirTemp("", "martgen-export-b")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(dirB)

	anchor := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := WriteDataset(dirA, dataset.NewAt(55, anchor).Generate(40)); err != nil {
		t.Fatalf("WriteDataset failed: %v", err)
	}
	if err := WriteDataset(dirB, dataset.NewAt(55, anchor).Generate(40)); err != nil {
		t.Fatalf("WriteDataset failed: %v", err)
	}

	for _, name := range []string{CustomersFile, ProductsFile, OrdersFile, OrderItemsFile, PaymentsFile} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, name))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", name, err)
		}
		if string(a) != string(b) {
			t.Errorf("%s differs between identically seeded runs", name)
		}
	}
}
