package sqlite

import (
	"database/sql"
	"fmt"
)

// wantedColumns lists columns that must exist per table, with the DDL used to
// add them when missing. Only additions are ever applied; existing columns are
// never altered or dropped.
var wantedColumns = map[string][]columnDef{
	"schedules": {
		{"note", "TEXT NOT NULL DEFAULT ''"},
		{"location", "TEXT NOT NULL DEFAULT ''"},
		{"end_at", "DATETIME"},
		{"channel_name", "TEXT NOT NULL DEFAULT ''"},
		{"source_deep_link", "TEXT NOT NULL DEFAULT ''"},
		{"source_raw_text", "TEXT NOT NULL DEFAULT ''"},
		{"tag_id", "TEXT NOT NULL DEFAULT ''"},
		{"links", "TEXT NOT NULL DEFAULT '[]'"},
		{"notification_sent", "INTEGER NOT NULL DEFAULT 0"},
		{"is_done", "INTEGER NOT NULL DEFAULT 0"},
	},
	"workspace_configurations": {
		{"channel_name", "TEXT NOT NULL DEFAULT ''"},
		{"user_id", "TEXT NOT NULL DEFAULT ''"},
		{"team_id", "TEXT NOT NULL DEFAULT ''"},
		{"keywords", "TEXT NOT NULL DEFAULT '[]'"},
		{"enabled", "INTEGER NOT NULL DEFAULT 1"},
		{"color", "TEXT NOT NULL DEFAULT ''"},
	},
	"tags": {
		{"color", "TEXT NOT NULL DEFAULT ''"},
	},
}

type columnDef struct {
	name string
	ddl  string
}

// SyncColumns introspects each table and adds any missing columns. Databases
// created by older releases pick up new columns without a versioned migration.
func SyncColumns(db *sql.DB) error {
	for table, cols := range wantedColumns {
		existing, err := tableColumns(db, table)
		if err != nil {
			return fmt.Errorf("failed to introspect table %s: %w", table, err)
		}

		for _, col := range cols {
			if existing[col.name] {
				continue
			}

			stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, col.name, col.ddl)
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("failed to add column %s.%s: %w", table, col.name, err)
			}
		}
	}

	return nil
}

func tableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			dfltValue  sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &primaryKey); err != nil {
			return nil, err
		}
		columns[name] = true
	}

	return columns, rows.Err()
}
