package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"  // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/ridloal/inventory-management/internal/platform/config"
	"github.com/ridloal/inventory-management/internal/platform/logger"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// sqlDriverNames maps a configured backend to its database/sql driver.
var sqlDriverNames = map[string]string{
	config.DriverSQLite:   "sqlite",
	config.DriverPostgres: "pgx",
	config.DriverMySQL:    "mysql",
}

// Connect opens the configured database, applies pool limits and verifies the
// connection. The returned handle owns the pool; release it with Close.
func Connect(cfg config.DBConfig) (*gorm.DB, error) {
	driverName, ok := sqlDriverNames[cfg.Driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if cfg.Driver == config.DriverSQLite {
		if err := ensureDir(cfg.DSN); err != nil {
			return nil, err
		}
	}

	sqlDB, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	if cfg.Driver == config.DriverSQLite {
		// SQLite serialises writers; a single connection avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	}

	if err = sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db, err := gorm.Open(dialector(cfg.Driver, sqlDB), &gorm.Config{
		Logger: logger.Gorm(cfg.LogLevel),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to initialise orm: %w", err)
	}

	logger.Info("Successfully connected to the %s database", cfg.Driver)
	return db, nil
}

func dialector(driver string, conn *sql.DB) gorm.Dialector {
	switch driver {
	case config.DriverPostgres:
		return postgres.New(postgres.Config{Conn: conn})
	case config.DriverMySQL:
		return mysql.New(mysql.Config{Conn: conn})
	default:
		return &sqlite.Dialector{DriverName: "sqlite", Conn: conn}
	}
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func ensureDir(dsn string) error {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("create database dir: %w", err)
	}
	return nil
}
