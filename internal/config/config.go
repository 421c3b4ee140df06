package config

import (
	"fmt"
	"os"

	"onebuttonprompt/internal/core"
	"onebuttonprompt/internal/util"

	"gopkg.in/yaml.v2"
)

// ServerConfig server configuration
type ServerConfig struct {
	Port    string
	GinMode string
	// CORSOrigins lists the browser origins the CORS middleware allows; "*" allows any.
	CORSOrigins []string
	// RateLimit is the sustained per-client rate in requests per minute. Zero disables limiting.
	RateLimit  int
	RateBurst  int
	RedisURL   string
	StatsFile  string
	ConfigFile string
	Storage    core.StorageInterface
	Logger     core.Logger
}

// FileConfig is the optional YAML file named by CONFIG_FILE.
type FileConfig struct {
	Server struct {
		Port        string   `yaml:"port"`
		GinMode     string   `yaml:"gin_mode"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`
	RateLimit struct {
		PerMinute int `yaml:"per_minute"`
		Burst     int `yaml:"burst"`
	} `yaml:"rate_limit"`
	Storage struct {
		RedisURL  string `yaml:"redis_url"`
		StatsFile string `yaml:"stats_file"`
	} `yaml:"storage"`
}

// DefaultServerConfig returns the built-in defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:        core.DefaultPort,
		GinMode:     core.DefaultGinMode,
		CORSOrigins: []string{core.DefaultCORSOrigin},
		RateLimit:   core.DefaultRateLimit,
		RateBurst:   core.DefaultRateBurst,
		StatsFile:   core.StatsFilePath,
	}
}

// LoadFileConfig reads configuration from a YAML file
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path from CONFIG_FILE
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// apply overlays the non-zero file values on top of config.
func (f *FileConfig) apply(config *ServerConfig) {
	overlay := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	overlay(&config.Port, f.Server.Port)
	overlay(&config.GinMode, f.Server.GinMode)
	if len(f.Server.CORSOrigins) > 0 {
		config.CORSOrigins = f.Server.CORSOrigins
	}
	overlay(&config.RedisURL, f.Storage.RedisURL)
	overlay(&config.StatsFile, f.Storage.StatsFile)
	if f.RateLimit.PerMinute != 0 {
		config.RateLimit = f.RateLimit.PerMinute
	}
	if f.RateLimit.Burst != 0 {
		config.RateBurst = f.RateLimit.Burst
	}
}

// LoadServerConfigFromEnv loads server config from environment variables.
// When CONFIG_FILE is set its values form the base and env variables override them.
func LoadServerConfigFromEnv(logger core.Logger) (ServerConfig, error) {
	config := DefaultServerConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fileConfig, err := LoadFileConfig(path)
		if err != nil {
			return config, err
		}
		fileConfig.apply(&config)
		config.ConfigFile = path
		logger.Info("Loaded config file %s", path)
	}

	config.Port = util.GetEnvWithDefault("PORT", config.Port)
	config.GinMode = util.GetEnvWithDefault("GIN_MODE", config.GinMode)
	if origins := util.ParseEnvList(os.Getenv("CORS_ORIGINS")); len(origins) > 0 {
		config.CORSOrigins = origins
	}
	config.RateLimit = util.GetEnvInt("RATE_LIMIT", config.RateLimit)
	config.RateBurst = util.GetEnvInt("RATE_BURST", config.RateBurst)
	config.RedisURL = util.GetEnvWithDefault("REDIS_URL", config.RedisURL)
	config.StatsFile = util.GetEnvWithDefault("STATS_FILE", config.StatsFile)

	if config.RateLimit <= 0 {
		logger.Warn("Rate limiting disabled (RATE_LIMIT=%d)", config.RateLimit)
	} else if config.RateBurst <= 0 {
		config.RateBurst = 1
	}

	logger.Debug("Server config: port=%s mode=%s rate=%d/min burst=%d", config.Port, config.GinMode, config.RateLimit, config.RateBurst)
	return config, nil
}
