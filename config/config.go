package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

const (
	defaultServerAddress   = ":8080"
	defaultBackendAddress  = "http://localhost:8081"
	defaultRefreshInterval = time.Minute
	defaultPageSize        = 20
	defaultMaxPageSize     = 100
	defaultLogLevel        = "debug"
)

type Config struct {
	ServerAddr      string
	BackendAddr     string
	BackendToken    string
	AuthTokenKey    string
	RefreshInterval time.Duration
	DefaultPageSize int
	MaxPageSize     int
	LogLevel        string
}

// New returns new Config. Flags provide defaults, environment variables win.
func New() (*Config, error) {
	cfg := Config{
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     defaultMaxPageSize,
	}

	// initialize flags
	flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddress, "admin server address")
	flag.StringVar(&cfg.BackendAddr, "b", defaultBackendAddress, "storefront backend address")
	flag.StringVar(&cfg.BackendToken, "t", "", "bearer token for backend requests")
	flag.StringVar(&cfg.AuthTokenKey, "k", "", "hex-encoded key for admin token verification")
	flag.DurationVar(&cfg.RefreshInterval, "i", defaultRefreshInterval, "background refresh interval")
	flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")

	flag.Parse()

	applyEnv(&cfg)

	return &cfg, nil
}

// applyEnv overrides config values from environment variables
func applyEnv(cfg *Config) {
	if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
		cfg.ServerAddr = runAddrEnv
	}
	if backendAddrEnv := os.Getenv("BACKEND_ADDRESS"); backendAddrEnv != "" {
		cfg.BackendAddr = backendAddrEnv
	}
	if backendTokenEnv := os.Getenv("BACKEND_TOKEN"); backendTokenEnv != "" {
		cfg.BackendToken = backendTokenEnv
	}
	if authKeyEnv := os.Getenv("AUTH_TOKEN_KEY"); authKeyEnv != "" {
		cfg.AuthTokenKey = authKeyEnv
	}
	if intervalEnv := os.Getenv("REFRESH_INTERVAL"); intervalEnv != "" {
		if interval, err := time.ParseDuration(intervalEnv); err == nil {
			cfg.RefreshInterval = interval
		}
	}
	if pageSizeEnv := os.Getenv("PAGE_SIZE"); pageSizeEnv != "" {
		if size, err := strconv.Atoi(pageSizeEnv); err == nil && size > 0 {
			cfg.DefaultPageSize = size
		}
	}
	if maxPageSizeEnv := os.Getenv("MAX_PAGE_SIZE"); maxPageSizeEnv != "" {
		if size, err := strconv.Atoi(maxPageSizeEnv); err == nil && size > 0 {
			cfg.MaxPageSize = size
		}
	}
	if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
		cfg.LogLevel = logLevelEnv
	}
}
