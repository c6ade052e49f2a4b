package sqlite

import "database/sql"

// schema holds the SQL statements to set up the database. These run on
// every open to ensure the table exists; snapshots themselves carry no
// version and are never migrated.
const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// setupSchema executes the schema setup.
func setupSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
