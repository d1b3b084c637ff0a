package loader

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/fatih/color"
)

const batchSize = 100

// validIdentifier validates table/column names to prevent SQL injection,
// since identifiers cannot be bound as parameters.
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Loader bulk-loads CSV files into same-named tables, replacing any prior
// contents. It assumes nothing about which tables exist beforehand.
type Loader struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

func New(db *sql.DB, provider string) *Loader {
	var format squirrel.PlaceholderFormat = squirrel.Question
	switch provider {
	case "postgresql", "postgres":
		format = squirrel.Dollar
	}
	return &Loader{
		db: db,
		qb: squirrel.StatementBuilder.PlaceholderFormat(format),
	}
}

// LoadDir loads every *.csv file in dir, in name order. The target table
// name is inferred from each file's base name.
func (l *Loader) LoadDir(ctx context.Context, dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return fmt.Errorf("failed to list CSV files in %s: %w", dir, err)
	}
	if len(files) == 0 {
		color.Yellow("⚠️  No CSV files found in %s", dir)
		return nil
	}
	sort.Strings(files)

	for _, file := range files {
		table := strings.TrimSuffix(filepath.Base(file), ".csv")
		color.Cyan("  📝 Loading %s...", table)

		count, err := l.LoadFile(ctx, file)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
		color.Green("  ✅ Loaded %d rows into table '%s'", count, table)
	}

	return nil
}

// LoadFile replaces the table named after the file's base name with the
// file's rows, inside a single transaction. Returns the row count.
func (l *Loader) LoadFile(ctx context.Context, path string) (int, error) {
	table := strings.TrimSuffix(filepath.Base(path), ".csv")
	if !validIdentifier.MatchString(table) {
		return 0, fmt.Errorf("invalid table name: %s", table)
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("CSV file has no header row: %s", path)
	}

	header := records[0]
	for _, col := range header {
		if !validIdentifier.MatchString(col) {
			return 0, fmt.Errorf("invalid column name in %s: %s", path, col)
		}
	}
	rows := records[1:]

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := l.replaceTable(ctx, tx, table, header); err != nil {
		return 0, err
	}

	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := l.insertBatch(ctx, tx, table, header, rows[start:end]); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return len(rows), nil
}

func (l *Loader) replaceTable(ctx context.Context, tx *sql.Tx, table string, header []string) error {
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}

	defs := make([]string, len(header))
	for i, col := range header {
		defs[i] = fmt.Sprintf("%s %s", col, columnType(table, col))
	}

	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

func (l *Loader) insertBatch(ctx context.Context, tx *sql.Tx, table string, header []string, rows [][]string) error {
	builder := l.qb.Insert(table).Columns(header...)
	for _, row := range rows {
		values := make([]interface{}, len(header))
		for i, field := range row {
			values[i] = convertField(table, header[i], field)
		}
		builder = builder.Values(values...)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

// convertField coerces a CSV field to the column's declared type so typed
// columns load as numbers on every provider. Unparseable values fall back
// to the raw string and let the database complain.
func convertField(table, column, field string) interface{} {
	switch columnType(table, column) {
	case "INTEGER":
		if n, err := strconv.ParseInt(field, 10, 64); err == nil {
			return n
		}
	case "REAL":
		if f, err := strconv.ParseFloat(field, 64); err == nil {
			return f
		}
	}
	return field
}
