package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Report        Report        `mapstructure:",squash"`
	ReportRefresh ReportRefresh `mapstructure:",squash"`
	CORS          CORS          `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port" validate:"required,numeric"`
}

type Report struct {
	RecordCount     int           `mapstructure:"report_record_count" validate:"gte=0"`
	Year            int           `mapstructure:"report_year" validate:"gte=1,lte=9999"`
	Seed            int64         `mapstructure:"report_seed"`
	Strict          bool          `mapstructure:"report_strict"`
	DepartmentOrder string        `mapstructure:"report_department_order" validate:"oneof=first-seen sorted"`
	CurrencySymbol  string        `mapstructure:"report_currency_symbol" validate:"required"`
	CacheTTL        time.Duration `mapstructure:"report_cache_ttl" validate:"gt=0"`
}

type ReportRefresh struct {
	CronSchedule string `mapstructure:"report_refresh_cron" validate:"required"`
	Enabled      bool   `mapstructure:"report_refresh_enabled"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Addr is the listen address of the HTTP server
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)

	v.SetDefault("REPORT_RECORD_COUNT", 1000)
	v.SetDefault("REPORT_YEAR", 2023)
	v.SetDefault("REPORT_SEED", 0) // time based
	v.SetDefault("REPORT_STRICT", false)
	v.SetDefault("REPORT_DEPARTMENT_ORDER", "first-seen")
	v.SetDefault("REPORT_CURRENCY_SYMBOL", "$")
	v.SetDefault("REPORT_CACHE_TTL", "15m")

	v.SetDefault("REPORT_REFRESH_CRON", "*/10 * * * *") // every 10 minutes
	v.SetDefault("REPORT_REFRESH_ENABLED", false)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("LOG_LEVEL", "debug")
}

// NewConfig reads the configuration from the environment and an optional .env file
func NewConfig() (*Config, error) {
	return NewConfigWith(viper.GetViper())
}

// NewConfigWith is NewConfig on a given viper instance, which may carry bound CLI flags
func NewConfigWith(v *viper.Viper) (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Debug(".env file read by viper")
	}

	return Load(v)
}

// Load decodes and validates the configuration held by v
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks every field against its validate tag
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not get the working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug(".env file loaded from: ", location)
			return
		}
	}

	logrus.Debug("no .env file found, using the environment only")
}
