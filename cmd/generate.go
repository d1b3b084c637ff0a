package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/storekit-labs/martgen/internal/config"
	"github.com/storekit-labs/martgen/internal/dataset"
	"github.com/storekit-labs/martgen/internal/export"
)

var (
	generateRows int
	generateSeed int64
	generateOut  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic e-commerce dataset",
	Long: `
Generate customers, products, orders, order items and payments with
consistent foreign keys and derived totals, and write them as CSV files.

Examples:
  martgen generate
  martgen generate --rows 500
  martgen generate --seed 42 --out fixtures`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		rows := cfg.Generate.Rows
		if cmd.Flags().Changed("rows") {
			rows = generateRows
		}
		seed := cfg.Generate.Seed
		if cmd.Flags().Changed("seed") {
			seed = generateSeed
		}
		outDir := cfg.DataDir
		if generateOut != "" {
			outDir = generateOut
		}

		if rows < 0 {
			return fmt.Errorf("row count cannot be negative: %d", rows)
		}

		color.Cyan("🛒 Generating %d rows per table...", rows)
		if seed != 0 {
			color.White("   Using fixed seed %d (reproducible output)", seed)
		}

		ds := dataset.New(seed).Generate(rows)

		if err := export.WriteDataset(outDir, ds); err != nil {
			return err
		}

		color.Green("✅ %d customers, %d products, %d orders", len(ds.Customers), len(ds.Products), len(ds.Orders))
		color.Green("✅ %d order items, %d payments", len(ds.OrderItems), len(ds.Payments))
		color.Cyan("📁 Synthetic datasets created in %s", outDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&generateRows, "rows", 200, "Number of rows to generate per table")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed (0 = seed from the clock)")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Output directory (overrides data_dir)")
}
