package config

const EnvPrefix = "KIOSK"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
	DBDriverMySQL    = "mysql"
)

const (
	EnvAppEnv           = "KIOSK_APP_ENV"
	EnvPort             = "KIOSK_APP_PORT"
	EnvDBDriver         = "KIOSK_DB_DRIVER"
	EnvDBDSN            = "KIOSK_DB_DSN"
	EnvRedisURL         = "KIOSK_REDIS_URL"
	EnvPOSBaseURL       = "KIOSK_POS_BASE_URL"
	EnvPOSTimeout       = "KIOSK_POS_TIMEOUT"
	EnvCacheMenuTTL     = "KIOSK_CACHE_MENU_TTL"
	EnvTablesFallback   = "KIOSK_TABLES_FALLBACK_ENABLED"
	EnvCORSOrigins      = "KIOSK_CORS_ORIGINS"
	EnvOrdersAdoptPOSID = "KIOSK_ORDERS_ADOPT_POS_ID"
	EnvAuthLoginWindow  = "KIOSK_AUTH_RATE_LIMIT_LOGIN_WINDOW"
	EnvAuthLoginIPLimit = "KIOSK_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT"
	EnvAutoMigrate      = "KIOSK_AUTO_MIGRATE"
)
