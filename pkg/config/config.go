package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is empty because every field carries its full CCC_* name.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Redis    RedisConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	if cfg.Store.Driver == StoreDriverRedis && cfg.Redis.URL == "" && cfg.Redis.Address == "" {
		return nil, fmt.Errorf("redis store driver requires CCC_REDIS_URL or CCC_REDIS_ADDR")
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CCC_APP_ENV" default:"dev"`
	Port         string `envconfig:"CCC_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CCC_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CCC_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

const (
	StoreDriverSQLite = "sqlite"
	StoreDriverRedis  = "redis"
	StoreDriverMemory = "memory"
)

// StoreConfig selects and configures the blob store backing the cart and
// order snapshots.
type StoreConfig struct {
	Driver     string `envconfig:"CCC_STORE_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"CCC_STORE_SQLITE_PATH" default:"storefront.db"`
	Namespace  string `envconfig:"CCC_STORE_NAMESPACE" default:"ccc"`
}

func (s StoreConfig) validate() error {
	switch s.Driver {
	case StoreDriverSQLite, StoreDriverRedis, StoreDriverMemory:
		return nil
	}
	return fmt.Errorf("unknown store driver %q", s.Driver)
}

type RedisConfig struct {
	URL          string        `envconfig:"CCC_REDIS_URL"`
	Address      string        `envconfig:"CCC_REDIS_ADDR"`
	Password     string        `envconfig:"CCC_REDIS_PASSWORD"`
	DB           int           `envconfig:"CCC_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CCC_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CCC_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CCC_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CCC_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CCC_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CheckoutConfig struct {
	DeliveryFeeCents int    `envconfig:"CCC_CHECKOUT_DELIVERY_FEE_CENTS" default:"7500"`
	OrderIDPrefix    string `envconfig:"CCC_CHECKOUT_ORDER_ID_PREFIX" default:"CCC"`
}
