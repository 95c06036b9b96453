package storage

import (
	"cmp"
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options selects and configures the database.
type Options struct {
	Driver string

	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLitePath is a file path or a "file:" URI.
	SQLitePath string

	// DSN, when set, replaces the connection string built from the fields
	// above.
	DSN string

	// Debug logs every statement.
	Debug bool
}

// PostgresDSN builds a key/value connection string.
func (o Options) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		o.Host, o.Port, o.User, o.Password, o.Name, o.SSLMode,
	)
}

// SQLiteDSN returns the SQLite path with foreign keys enabled. Foreign keys
// are off by default in SQLite and cascades depend on them.
func (o Options) SQLiteDSN() string {
	sep := "?"
	if strings.Contains(o.SQLitePath, "?") {
		sep = "&"
	}
	return o.SQLitePath + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// Open connects to the configured database. Constraint errors are
// translated to gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
//
// SQLite is limited to one open connection: every statement, including
// those of concurrent transactions, runs on the same writer.
func Open(opts Options) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
	if opts.Debug {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cmp.Or(opts.DSN, opts.PostgresDSN()))
	case DriverSQLite:
		dialector = sqlite.Open(cmp.Or(opts.DSN, opts.SQLiteDSN()))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", opts.Driver, err)
	}

	if opts.Driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Ping checks that the database answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
