package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port               string `mapstructure:"port"`
	ReadTimeoutSec     int    `mapstructure:"read_timeout_sec"`
	WriteTimeoutSec    int    `mapstructure:"write_timeout_sec"`
	ShutdownTimeoutSec int    `mapstructure:"shutdown_timeout_sec"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

// Archive toggles persistence of fetched rates in postgres.
type Archive struct {
	Enabled bool `mapstructure:"enabled"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type Sources struct {
	ECBCurrentURL          string `mapstructure:"ecb_current_url"`
	ECBHistoric90URL       string `mapstructure:"ecb_hist90_url"`
	ECBHistoricURL         string `mapstructure:"ecb_hist_url"`
	IMFURL                 string `mapstructure:"imf_url"`
	PayloadCacheTTLSeconds int    `mapstructure:"payload_cache_ttl_seconds"`
	PayloadCacheMaxBytes   int64  `mapstructure:"payload_cache_max_bytes"`
}

type Scheduler struct {
	Enabled        bool     `mapstructure:"enabled"`
	JobDurationSec int      `mapstructure:"job_duration_sec"`
	Providers      []string `mapstructure:"providers"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	Archive    Archive    `mapstructure:"archive"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
	Sources    Sources    `mapstructure:"sources"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
}

// Init reads .env, the yaml config file and environment overrides. Both files are optional.
func Init(configFile string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.read_timeout_sec", 5)
	v.SetDefault("http_server.write_timeout_sec", 60)
	v.SetDefault("http_server.shutdown_timeout_sec", 10)
	v.SetDefault("db_server.port", "5432")
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("archive.enabled", false)
	v.SetDefault("http_client.timeout_seconds", 30)
	v.SetDefault("logging.level", "info")
	v.SetDefault("sources.ecb_current_url", "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml")
	v.SetDefault("sources.ecb_hist90_url", "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-hist-90d.xml")
	v.SetDefault("sources.ecb_hist_url", "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-hist.xml")
	v.SetDefault("sources.imf_url", "https://www.imf.org/external/np/fin/data/rms_five.aspx?tsvflag=Y")
	v.SetDefault("sources.payload_cache_ttl_seconds", 300)
	v.SetDefault("sources.payload_cache_max_bytes", 64<<20)
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.job_duration_sec", 3600)
	v.SetDefault("scheduler.providers", []string{"ECB", "ECB-HIST90", "IMF"})

	// http server env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")
	_ = v.BindEnv("archive.enabled", "ARCHIVE_ENABLED")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	// source env vars, handy for pointing at file:// mirrors
	_ = v.BindEnv("sources.ecb_current_url", "ECB_CURRENT_URL")
	_ = v.BindEnv("sources.ecb_hist90_url", "ECB_HIST90_URL")
	_ = v.BindEnv("sources.ecb_hist_url", "ECB_HIST_URL")
	_ = v.BindEnv("sources.imf_url", "IMF_URL")

	_ = v.BindEnv("scheduler.enabled", "SCHEDULER_ENABLED")
	_ = v.BindEnv("scheduler.job_duration_sec", "SCHEDULER_JOB_DURATION_SEC")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if raw := os.Getenv("SCHEDULER_PROVIDERS"); raw != "" {
		cfg.Scheduler.Providers = splitList(raw)
	}
	return &cfg, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
