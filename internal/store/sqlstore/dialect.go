package sqlstore

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// dialect holds what differs between drivers. setup statements run before
// migration; returning selects INSERT ... RETURNING id over LastInsertId.
type dialect struct {
	name       string
	driverName string
	setup      []string
	schema     string
	returning  bool
	maxConns   int
}

var dialects = map[string]dialect{
	"postgres": {
		name:       "postgres",
		driverName: "pgx",
		schema: `
CREATE TABLE IF NOT EXISTS tasks (
    id          BIGSERIAL PRIMARY KEY,
    title       VARCHAR(100) NOT NULL,
    description VARCHAR(500),
    status      VARCHAR(20) NOT NULL DEFAULT 'TODO',
    due_date    DATE
)`,
		returning: true,
	},
	"mysql": {
		name:       "mysql",
		driverName: "mysql",
		schema: `
CREATE TABLE IF NOT EXISTS tasks (
    id          BIGINT PRIMARY KEY AUTO_INCREMENT,
    title       VARCHAR(100) NOT NULL,
    description VARCHAR(500),
    status      VARCHAR(20) NOT NULL DEFAULT 'TODO',
    due_date    DATE
)`,
	},
	"sqlite": {
		name:       "sqlite",
		driverName: "sqlite",
		setup: []string{
			"PRAGMA journal_mode = WAL",
			"PRAGMA busy_timeout = 5000",
			"PRAGMA synchronous = NORMAL",
			"PRAGMA foreign_keys = ON",
		},
		schema: `
CREATE TABLE IF NOT EXISTS tasks (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    title       TEXT NOT NULL,
    description TEXT,
    status      TEXT NOT NULL DEFAULT 'TODO',
    due_date    TEXT
)`,
		// One connection keeps the pragmas and avoids SQLITE_BUSY between writers.
		maxConns: 1,
	},
}

func lookupDialect(name string) (dialect, error) {
	d, ok := dialects[name]
	if !ok {
		return dialect{}, fmt.Errorf("sqlstore: unsupported driver %q", name)
	}
	return d, nil
}
