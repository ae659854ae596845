// -----------------------------------------------------------------------------
// Database Package
// -----------------------------------------------------------------------------
// MySQL connection setup with pooling. The returned *sql.DB is handed
// to the repositories explicitly; no package-level handle exists.
// -----------------------------------------------------------------------------

package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// PoolConfig tunes the sql.DB connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultPoolConfig returns pool settings suitable for a small service.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    25,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// Connect opens a MySQL connection pool for the given DSN and verifies
// it with a ping before returning. A zero PoolConfig falls back to
// DefaultPoolConfig.
func Connect(dsn string, pool PoolConfig) (*sql.DB, error) {
	if pool == (PoolConfig{}) {
		pool = DefaultPoolConfig()
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	log.Println("database connection established")
	return db, nil
}
