package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App AppConfig
	DB  DBConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOCKLEDGER_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"STOCKLEDGER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOCKLEDGER_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Driver selects the storage engine. sqlite opens Path, postgres
	// connects with DSN.
	Driver string `envconfig:"STOCKLEDGER_DB_DRIVER" default:"sqlite"`
	Path   string `envconfig:"STOCKLEDGER_DB_PATH" default:"stocks.db"`
	DSN    string `envconfig:"STOCKLEDGER_DB_DSN"`

	MaxOpenConns    int           `envconfig:"STOCKLEDGER_DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"STOCKLEDGER_DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"STOCKLEDGER_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STOCKLEDGER_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return db.Driver == DriverSQLite
}

func (db DBConfig) IsPostgres() bool {
	return db.Driver == DriverPostgres
}

func (db *DBConfig) normalize() error {
	db.Driver = strings.TrimSpace(strings.ToLower(db.Driver))

	switch db.Driver {
	case DriverSQLite:
		if strings.TrimSpace(db.Path) == "" {
			return fmt.Errorf("%s is required when %s is %s", EnvDBPath, EnvDBDriver, DriverSQLite)
		}
	case DriverPostgres:
		if strings.TrimSpace(db.DSN) == "" {
			return fmt.Errorf("%s is required when %s is %s", EnvDBDSN, EnvDBDriver, DriverPostgres)
		}
	default:
		return fmt.Errorf("%s must be one of %s", EnvDBDriver, strings.Join(validDrivers, ", "))
	}

	return nil
}
