package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (store endpoint, API key, secrets)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	Coupon CouponConfig
	Notify NotifyConfig
	Redis  RedisConfig
	Lock   LockConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3003"`
}

// StoreConfig points at the Strapi REST API that owns coupon and account records.
type StoreConfig struct {
	BaseURL           string        `envconfig:"STRAPI_API_ENDPOINT" required:"true"`
	Token             string        `envconfig:"STRAPI_API_KEY" required:"true"`
	Timeout           time.Duration `envconfig:"STRAPI_TIMEOUT" default:"10s"`
	CouponCollection  string        `envconfig:"STRAPI_COUPON_COLLECTION" default:"coupons"`
	AccountCollection string        `envconfig:"STRAPI_ACCOUNT_COLLECTION" default:"coupon-sys-accounts"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Accept-Language,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Australia/Melbourne"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"36000"` // 10*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"168h"`
}

// CookieConfig applies to the client-readable session cookies set on login.
type CookieConfig struct {
	Domain   string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool          `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	MaxAge   time.Duration `envconfig:"COOKIE_MAX_AGE" default:"168h"`
}

type CouponConfig struct {
	DefaultUses int    `envconfig:"COUPON_DEFAULT_USES" default:"1"`
	TimeZone    string `envconfig:"COUPON_TIMEZONE" default:"UTC"`
	PageSize    int    `envconfig:"COUPON_PAGE_SIZE" default:"12"`
	QRSize      int    `envconfig:"COUPON_QR_SIZE" default:"256"`
}

type NotifyConfig struct {
	EmailEndpoint string        `envconfig:"EMAIL_NOTIFY_ENDPOINT" default:""`
	Attempts      uint          `envconfig:"EMAIL_NOTIFY_ATTEMPTS" default:"3"`
	Delay         time.Duration `envconfig:"EMAIL_NOTIFY_DELAY" default:"500ms"`
	Timeout       time.Duration `envconfig:"EMAIL_NOTIFY_TIMEOUT" default:"15s"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// LockConfig selects how concurrent redemptions of the same coupon are serialised.
// "none" keeps every request independent.
type LockConfig struct {
	Backend string        `envconfig:"REDEMPTION_LOCK" default:"none"`
	TTL     time.Duration `envconfig:"REDEMPTION_LOCK_TTL" default:"10s"`
	Retries int           `envconfig:"REDEMPTION_LOCK_RETRIES" default:"30"`
}

const (
	LockBackendNone   = "none"
	LockBackendMemory = "memory"
	LockBackendRedis  = "redis"
)

func (c CouponConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	switch cfg.Lock.Backend {
	case LockBackendNone, LockBackendMemory:
	case LockBackendRedis:
		if cfg.Redis.Addr == "" {
			return Config{}, fmt.Errorf("REDEMPTION_LOCK=redis requires REDIS_ADDR")
		}
	default:
		return Config{}, fmt.Errorf("unknown REDEMPTION_LOCK backend %q", cfg.Lock.Backend)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			BaseURL:           "http://localhost:1337/api",
			Token:             "test-token",
			Timeout:           5 * time.Second,
			CouponCollection:  "coupons",
			AccountCollection: "coupon-sys-accounts",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-0123456789",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
			MaxAge:   7 * 24 * time.Hour,
		},
		Coupon: CouponConfig{
			DefaultUses: 1,
			TimeZone:    "UTC",
			PageSize:    12,
			QRSize:      256,
		},
		Notify: NotifyConfig{
			Attempts: 1,
			Delay:    time.Millisecond,
			Timeout:  time.Second,
		},
		Lock: LockConfig{
			Backend: LockBackendNone,
			TTL:     time.Second,
			Retries: 3,
		},
	}
}
