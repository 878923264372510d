package db

// SchemaSQL is the complete schema for a todo database.
//
// This is the single source of truth for the database schema. Repository
// tests load it through GetSchemaSQL() instead of hardcoding CREATE TABLE
// statements, so a column referenced by the sqlite adapter that does not
// exist here fails immediately with "no such column".
//
// Every statement is IF NOT EXISTS; applying the schema twice is a no-op.
const SchemaSQL = `
-- Todos
CREATE TABLE IF NOT EXISTS todo (
	id INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
	content TEXT NOT NULL,
	is_done BOOLEAN NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	done_at DATETIME
);
`

// GetSchemaSQL returns the authoritative schema.
func GetSchemaSQL() string {
	return SchemaSQL
}
