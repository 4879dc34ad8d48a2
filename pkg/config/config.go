package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "salesbridge"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv   = "SALESBRIDGE_APP_ENV"
	EnvLogLevel = "SALESBRIDGE_LOG_LEVEL"
	EnvCSVPath  = "SALESBRIDGE_CSV_PATH"
	EnvAPIURL   = "SALESBRIDGE_API_URL"
	EnvDBPath   = "SALESBRIDGE_DB_PATH"
	EnvTable    = "SALESBRIDGE_DEST_TABLE"
)

type Config struct {
	App      AppConfig
	Pipeline PipelineConfig
	Fixture  FixtureConfig
}

// Load reads configuration from the environment. Every value carries a
// default, so a bare invocation runs the pipeline against the stock
// file/endpoint/database locations.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Pipeline.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SALESBRIDGE_APP_ENV" default:"development"`
	LogLevel     string `envconfig:"SALESBRIDGE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SALESBRIDGE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// PipelineConfig fixes the two source locations and the destination store.
type PipelineConfig struct {
	CSVPath     string        `envconfig:"SALESBRIDGE_CSV_PATH" default:"online_sales.csv"`
	APIURL      string        `envconfig:"SALESBRIDGE_API_URL" default:"https://fakestoreapi.com/products"`
	HTTPTimeout time.Duration `envconfig:"SALESBRIDGE_HTTP_TIMEOUT" default:"10s"`
	DBPath      string        `envconfig:"SALESBRIDGE_DB_PATH" default:"sales_data.db"`
	DestTable   string        `envconfig:"SALESBRIDGE_DEST_TABLE" default:"master_sales"`
}

func (p PipelineConfig) validate() error {
	if strings.TrimSpace(p.CSVPath) == "" {
		return fmt.Errorf("csv path must not be empty")
	}
	if strings.TrimSpace(p.APIURL) == "" {
		return fmt.Errorf("api url must not be empty")
	}
	if strings.TrimSpace(p.DBPath) == "" {
		return fmt.Errorf("db path must not be empty")
	}
	if strings.TrimSpace(p.DestTable) == "" {
		return fmt.Errorf("destination table must not be empty")
	}
	return nil
}

// FixtureConfig configures the local stand-in for the products API.
type FixtureConfig struct {
	Addr     string `envconfig:"SALESBRIDGE_FIXTURE_ADDR" default:":8099"`
	SeedPath string `envconfig:"SALESBRIDGE_FIXTURE_SEED"`
}
