package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed schema.sql
var schemaSQL string

const countTablesSQL = `SELECT COUNT(*) FROM sqlite_schema WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`

// schemaStatements splits the embedded schema into individual statements.
func schemaStatements() []string {
	var out []string
	for _, stmt := range strings.Split(schemaSQL, ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// InstallSchema installs the application schema unless some table already
// exists. The check and the install share one exclusive transaction, so
// concurrent startups cannot both create the tables. It reports whether the
// schema was installed by this call.
func InstallSchema(ctx context.Context, db *sql.DB) (installed bool, err error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return false, fmt.Errorf("acquire connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.ExecContext(ctx, "BEGIN EXCLUSIVE"); err != nil {
		return false, fmt.Errorf("begin schema transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_, _ = conn.ExecContext(context.Background(), "ROLLBACK")
		}
	}()

	var tables int
	if err := conn.QueryRowContext(ctx, countTablesSQL).Scan(&tables); err != nil {
		return false, fmt.Errorf("count tables: %w", err)
	}
	if tables > 0 {
		return false, nil
	}

	for i, stmt := range schemaStatements() {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return false, fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		return false, fmt.Errorf("commit schema transaction: %w", err)
	}
	committed = true
	return true, nil
}
