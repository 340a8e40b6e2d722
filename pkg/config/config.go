package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	POS           POSConfig
	Cache         CacheConfig
	Tables        TablesConfig
	Orders        OrdersConfig
	Branding      BrandingConfig
	CORS          CORSConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	if err := cfg.POS.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KIOSK_APP_ENV" required:"true"`
	Port         string `envconfig:"KIOSK_APP_PORT" default:"8001"`
	LogLevel     string `envconfig:"KIOSK_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"KIOSK_LOG_FORMAT" default:"json"`
	LogFile      string `envconfig:"KIOSK_LOG_FILE"`
	LogWarnStack bool   `envconfig:"KIOSK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"KIOSK_DB_DRIVER" default:"postgres"`
	DSN    string `envconfig:"KIOSK_DB_DSN" required:"true"`

	MaxOpenConns    int           `envconfig:"KIOSK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"KIOSK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"KIOSK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"KIOSK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// NormalizedDriver lowercases the driver name and maps aliases.
func (db DBConfig) NormalizedDriver() string {
	driver := strings.ToLower(strings.TrimSpace(db.Driver))
	switch driver {
	case "", "postgresql", "pg":
		return DBDriverPostgres
	case "sqlite3":
		return DBDriverSQLite
	}
	return driver
}

func (db DBConfig) validate() error {
	switch db.NormalizedDriver() {
	case DBDriverPostgres, DBDriverSQLite, DBDriverMySQL:
		return nil
	}
	return fmt.Errorf("%s must be one of %s, %s, %s", EnvDBDriver, DBDriverPostgres, DBDriverSQLite, DBDriverMySQL)
}

// RedisConfig is optional; an empty URL and address keeps the cache in-process.
type RedisConfig struct {
	URL          string        `envconfig:"KIOSK_REDIS_URL"`
	Address      string        `envconfig:"KIOSK_REDIS_ADDR"`
	Password     string        `envconfig:"KIOSK_REDIS_PASSWORD"`
	DB           int           `envconfig:"KIOSK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KIOSK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"KIOSK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"KIOSK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KIOSK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"KIOSK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type POSConfig struct {
	BaseURL    string        `envconfig:"KIOSK_POS_BASE_URL" required:"true"`
	Timeout    time.Duration `envconfig:"KIOSK_POS_TIMEOUT" default:"30s"`
	LoginPath  string        `envconfig:"KIOSK_POS_LOGIN_PATH" default:"/auth/login"`
	FoodsPath  string        `envconfig:"KIOSK_POS_FOODS_PATH" default:"/foods"`
	TablesPath string        `envconfig:"KIOSK_POS_TABLES_PATH" default:"/tables"`
	OrderPath  string        `envconfig:"KIOSK_POS_ORDER_PATH" default:"/orders/place"`
	// RateLimit caps outbound requests per second; zero disables the limiter.
	RateLimit float64 `envconfig:"KIOSK_POS_RATE_LIMIT" default:"0"`
	RateBurst int     `envconfig:"KIOSK_POS_RATE_BURST" default:"10"`
}

func (p POSConfig) validate() error {
	if !strings.HasPrefix(p.BaseURL, "http://") && !strings.HasPrefix(p.BaseURL, "https://") {
		return fmt.Errorf("%s must be an http(s) url", EnvPOSBaseURL)
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("%s must be positive", EnvPOSTimeout)
	}
	return nil
}

type CacheConfig struct {
	MenuTTL   time.Duration `envconfig:"KIOSK_CACHE_MENU_TTL" default:"5m"`
	TablesTTL time.Duration `envconfig:"KIOSK_CACHE_TABLES_TTL" default:"5m"`
}

type TablesConfig struct {
	FallbackEnabled bool `envconfig:"KIOSK_TABLES_FALLBACK_ENABLED" default:"true"`
	FallbackCount   int  `envconfig:"KIOSK_TABLES_FALLBACK_COUNT" default:"100"`
}

type OrdersConfig struct {
	AdoptPOSID bool `envconfig:"KIOSK_ORDERS_ADOPT_POS_ID" default:"true"`
}

type BrandingConfig struct {
	PrimaryColor   string `envconfig:"KIOSK_BRANDING_PRIMARY_COLOR" default:"#1A1A1A"`
	AccentColor    string `envconfig:"KIOSK_BRANDING_ACCENT_COLOR" default:"#C5A059"`
	LogoURL        string `envconfig:"KIOSK_BRANDING_LOGO_URL"`
	RestaurantName string `envconfig:"KIOSK_BRANDING_RESTAURANT_NAME" default:"Hotel Lumiere"`
}

type CORSConfig struct {
	Origins []string `envconfig:"KIOSK_CORS_ORIGINS" default:"*"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"KIOSK_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"KIOSK_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"KIOSK_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"KIOSK_AUTO_MIGRATE" default:"false"`
}
