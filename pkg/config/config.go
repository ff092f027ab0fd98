package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App              AppConfig
	Service          ServiceConfig
	DB               DBConfig
	Redis            RedisConfig
	ContactRateLimit ContactRateLimitConfig
	FeatureFlags     FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LOCALMART_APP_ENV" required:"true"`
	Port         string `envconfig:"LOCALMART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"LOCALMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LOCALMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"LOCALMART_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"LOCALMART_DB_DSN"`
	Driver string `envconfig:"LOCALMART_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LOCALMART_DB_HOST"`
	LegacyPort     int    `envconfig:"LOCALMART_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LOCALMART_DB_USER"`
	LegacyPassword string `envconfig:"LOCALMART_DB_PASSWORD"`
	LegacyName     string `envconfig:"LOCALMART_DB_NAME"`
	LegacySSLMode  string `envconfig:"LOCALMART_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LOCALMART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LOCALMART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LOCALMART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LOCALMART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LOCALMART_REDIS_URL" required:"true"`
	Address      string        `envconfig:"LOCALMART_REDIS_ADDR"`
	Password     string        `envconfig:"LOCALMART_REDIS_PASSWORD"`
	DB           int           `envconfig:"LOCALMART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LOCALMART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LOCALMART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LOCALMART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LOCALMART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LOCALMART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// ContactRateLimitConfig throttles portfolio contact-form submissions.
type ContactRateLimitConfig struct {
	Window     time.Duration `envconfig:"LOCALMART_CONTACT_RATE_LIMIT_WINDOW" default:"1h"`
	IPLimit    int           `envconfig:"LOCALMART_CONTACT_RATE_LIMIT_IP_LIMIT" default:"5"`
	EmailLimit int           `envconfig:"LOCALMART_CONTACT_RATE_LIMIT_EMAIL_LIMIT" default:"5"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"LOCALMART_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"LOCALMART_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
