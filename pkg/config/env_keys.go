package config

// EnvPrefix is the envconfig prefix shared by every binary in this module.
const EnvPrefix = "localmart"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv   = "LOCALMART_APP_ENV"
	EnvPort     = "LOCALMART_APP_PORT"
	EnvDBDSN    = "LOCALMART_DB_DSN"
	EnvDBHost   = "LOCALMART_DB_HOST"
	EnvDBUser   = "LOCALMART_DB_USER"
	EnvDBName   = "LOCALMART_DB_NAME"
	EnvRedisURL = "LOCALMART_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
