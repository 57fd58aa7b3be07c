package db

import (
	"fmt"
	"net/url"
	"time"

	"github.com/radhian/receipt-reconciliation/config"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mssql"    //mssql
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	_ "github.com/jinzhu/gorm/dialects/sqlite"   //sqlite
	"github.com/labstack/gommon/log"
)

const (
	maxOpenConns    = 10
	maxIdleConns    = 2
	connMaxLifetime = 30 * time.Minute
)

// DSN builds the driver specific connection string for database on the configured server.
func DSN(cfg config.DBConfig, database string) (string, error) {
	switch cfg.Driver {
	case "mssql":
		u := &url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(cfg.User, cfg.Password),
			Host:     hostPort(cfg.Host, cfg.Port),
			RawQuery: url.Values{"database": {database}}.Encode(),
		}
		return u.String(), nil
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
			cfg.Host, cfg.Port, cfg.User, database, cfg.Password), nil
	case "sqlite3":
		return database, nil
	}
	return "", fmt.Errorf("unsupported db driver %q", cfg.Driver)
}

// Open connects to one database and sizes its pool.
func Open(cfg config.DBConfig, database string) (*gorm.DB, error) {
	dsn, err := DSN(cfg, database)
	if err != nil {
		return nil, err
	}

	log.Infof("[DB] Connecting to %s database %q on %s", cfg.Driver, database, hostPort(cfg.Host, cfg.Port))
	conn, err := gorm.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to database %s: %w", database, err)
	}

	conn.DB().SetMaxOpenConns(maxOpenConns)
	conn.DB().SetMaxIdleConns(maxIdleConns)
	conn.DB().SetConnMaxLifetime(connMaxLifetime)
	conn.LogMode(false)

	log.Infof("[DB] Connected to database %s", database)
	return conn, nil
}

func hostPort(host, port string) string {
	if port == "" {
		return host
	}
	return host + ":" + port
}
