package cmd

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/storekit-labs/martgen/internal/config"
)

var queryLimit uint64

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a sample join across the loaded tables",
	Long: `
Run a read-only join of orders with their customer, line item and product,
and print one row per order.

Examples:
  martgen query
  martgen query --limit 50`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		db, err := openDB(cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		query, _, err := squirrel.
			Select(
				"c.first_name", "c.last_name", "o.order_date",
				"p.name", "oi.quantity", "oi.unit_price", "oi.line_total",
			).
			From("orders o").
			Join("customers c ON c.customer_id = o.customer_id").
			Join("order_items oi ON oi.order_id = o.order_id").
			Join("products p ON p.product_id = oi.product_id").
			Limit(queryLimit).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		rows, err := db.Query(query)
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}
		defer rows.Close()

		color.Cyan("%-22s %-12s %-28s %4s %10s %12s", "Customer", "Order Date", "Product", "Qty", "Unit", "Total")

		count := 0
		for rows.Next() {
			var firstName, lastName, orderDate, productName string
			var quantity int
			var unitPrice, lineTotal float64

			if err := rows.Scan(&firstName, &lastName, &orderDate, &productName, &quantity, &unitPrice, &lineTotal); err != nil {
				return fmt.Errorf("failed to scan row: %w", err)
			}

			fmt.Printf("%-22s %-12s %-28s %4d %10.2f %12.2f\n",
				firstName+" "+lastName, orderDate, productName, quantity, unitPrice, lineTotal)
			count++
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to read rows: %w", err)
		}

		color.Green("\n✅ %d rows", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().Uint64Var(&queryLimit, "limit", 20, "Maximum number of rows to print")
}
