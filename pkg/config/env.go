package config

const EnvPrefix = "STOCKLEDGER"

const (
	EnvAppEnv       = "STOCKLEDGER_APP_ENV"
	EnvLogLevel     = "STOCKLEDGER_LOG_LEVEL"
	EnvLogWarnStack = "STOCKLEDGER_LOG_WARN_STACK"

	EnvDBDriver          = "STOCKLEDGER_DB_DRIVER"
	EnvDBPath            = "STOCKLEDGER_DB_PATH"
	EnvDBDSN             = "STOCKLEDGER_DB_DSN"
	EnvDBMaxOpenConns    = "STOCKLEDGER_DB_MAX_OPEN_CONNS"
	EnvDBMaxIdleConns    = "STOCKLEDGER_DB_MAX_IDLE_CONNS"
	EnvDBConnMaxLifetime = "STOCKLEDGER_DB_CONN_MAX_LIFETIME"
	EnvDBConnMaxIdleTime = "STOCKLEDGER_DB_CONN_MAX_IDLE_TIME"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var validDrivers = []string{DriverSQLite, DriverPostgres}
