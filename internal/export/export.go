package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/storekit-labs/martgen/internal/dataset"
)

// File names double as table names for the loader, which infers the target
// table from each file's base name.
const (
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
	PaymentsFile   = "payments.csv"
)

// WriteDataset writes all five tables of a generated dataset as CSV files
// into dir, creating it if needed. Files are UTF-8, comma-delimited, with a
// header row and fixed column order.
func WriteDataset(dir string, ds *dataset.Dataset) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := writeTable(dir, CustomersFile, dataset.Customer{}.Header(), customerRecords(ds.Customers)); err != nil {
		return err
	}
	if err := writeTable(dir, ProductsFile, dataset.Product{}.Header(), productRecords(ds.Products)); err != nil {
		return err
	}
	if err := writeTable(dir, OrdersFile, dataset.Order{}.Header(), orderRecords(ds.Orders)); err != nil {
		return err
	}
	if err := writeTable(dir, OrderItemsFile, dataset.OrderItem{}.Header(), itemRecords(ds.OrderItems)); err != nil {
		return err
	}
	return writeTable(dir, PaymentsFile, dataset.Payment{}.Header(), paymentRecords(ds.Payments))
}

func writeTable(dir, name string, header []string, rows [][]string) error {
	filePath := filepath.Join(dir, name)
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", filePath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", name, err)
		}
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}

func customerRecords(customers []dataset.Customer) [][]string {
	rows := make([][]string, len(customers))
	for i, c := range customers {
		rows[i] = c.Record()
	}
	return rows
}

func productRecords(products []dataset.Product) [][]string {
	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = p.Record()
	}
	return rows
}

func orderRecords(orders []dataset.Order) [][]string {
	rows := make([][]string, len(orders))
	for i, o := range orders {
		rows[i] = o.Record()
	}
	return rows
}

func itemRecords(items []dataset.OrderItem) [][]string {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = it.Record()
	}
	return rows
}

func paymentRecords(payments []dataset.Payment) [][]string {
	rows := make([][]string, len(payments))
	for i, p := range payments {
		rows[i] = p.Record()
	}
	return rows
}
