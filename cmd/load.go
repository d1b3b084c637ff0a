package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/storekit-labs/martgen/internal/config"
	"github.com/storekit-labs/martgen/internal/loader"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

var loadDir string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Bulk-load the generated CSV files into the database",
	Long: `
Load every CSV file in the data directory into the configured database.
Each file replaces the table named after its base name.

Examples:
  martgen load
  martgen load --dir fixtures`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		dir := cfg.DataDir
		if loadDir != "" {
			dir = loadDir
		}

		db, err := openDB(cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		color.Cyan("📦 Loading CSV files from %s into %s database...", dir, cfg.Database.Provider)
		fmt.Println()

		if err := loader.New(db, cfg.Database.Provider).LoadDir(context.Background(), dir); err != nil {
			return err
		}

		color.Green("\n✅ Load completed")
		return nil
	},
}

func openDB(cfg *config.Config) (*sql.DB, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	var driverName string
	switch cfg.Database.Provider {
	case "postgresql", "postgres":
		driverName = "pgx"
	case "mysql":
		driverName = "mysql"
	default:
		driverName = "sqlite3"
		dbURL = strings.TrimPrefix(dbURL, "sqlite://")
		if dir := filepath.Dir(dbURL); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open(driverName, dbURL)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVar(&loadDir, "dir", "", "Directory containing the CSV files (overrides data_dir)")
}
