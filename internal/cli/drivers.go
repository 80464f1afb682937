package cli

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb" // registers "duckdb"
	_ "modernc.org/sqlite"              // registers "sqlite"
)

// openDB opens and pings dsn with one of the config.Drivers.
func openDB(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect %s database %q: %w", driver, dsn, err)
	}
	return db, nil
}
