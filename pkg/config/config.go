package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix is empty because every tag already carries the SHOPVIBE_ prefix.
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPVIBE_APP_ENV" default:"development"`
	Port         string `envconfig:"SHOPVIBE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SHOPVIBE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPVIBE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"SHOPVIBE_REDIS_URL"`
	Address      string        `envconfig:"SHOPVIBE_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"SHOPVIBE_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOPVIBE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOPVIBE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOPVIBE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOPVIBE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPVIBE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPVIBE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CheckoutConfig carries the storefront pricing rules. The cart summary and
// the checkout quote share one canonical tax rate; the legacy storefront
// showed 8% on the cart page and 18% at checkout, which was a bug.
type CheckoutConfig struct {
	TaxRate               float64       `envconfig:"SHOPVIBE_CHECKOUT_TAX_RATE" default:"0.18"`
	ShippingFlatFee       int64         `envconfig:"SHOPVIBE_CHECKOUT_SHIPPING_FLAT_FEE" default:"99"`
	FreeShippingThreshold int64         `envconfig:"SHOPVIBE_CHECKOUT_FREE_SHIPPING_THRESHOLD" default:"999"`
	CouponCode            string        `envconfig:"SHOPVIBE_CHECKOUT_COUPON_CODE" default:"save10"`
	CouponPercent         int64         `envconfig:"SHOPVIBE_CHECKOUT_COUPON_PERCENT" default:"10"`
	ProcessingDelay       time.Duration `envconfig:"SHOPVIBE_CHECKOUT_PROCESSING_DELAY" default:"2s"`
}

func (c CheckoutConfig) validate() error {
	if c.TaxRate < 0 || c.TaxRate >= 1 {
		return fmt.Errorf("checkout tax rate must be in [0, 1), got %v", c.TaxRate)
	}
	if c.ShippingFlatFee < 0 {
		return fmt.Errorf("shipping flat fee must be non-negative, got %d", c.ShippingFlatFee)
	}
	if c.CouponPercent < 0 || c.CouponPercent > 100 {
		return fmt.Errorf("coupon percent must be in [0, 100], got %d", c.CouponPercent)
	}
	return nil
}
