package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the tool
type Config struct {
	DocumentsDir  string
	DBPath        string
	RulesJSON     string
	ResultsJSON   string
	Workers       int
	BatchSize     int
	FlushInterval int // seconds - watch mode flushes pending records after this time
	RescanSeconds int // watch mode directory rescan period
	Log           LogConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from config file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("documents_dir", ".")
	v.SetDefault("db_path", "adcheck.db")
	v.SetDefault("rules_json", "extracted_rules.json")
	v.SetDefault("results_json", "evaluation_results.json")
	v.SetDefault("workers", 4)
	v.SetDefault("batch_size", 50)
	v.SetDefault("flush_interval", 5)
	v.SetDefault("rescan_seconds", 30)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath("/etc/adcheck")
	v.AddConfigPath(".")

	if configPath := os.Getenv("ADCHECK_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}

	// Read config file (if it exists)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK - we'll use defaults + env vars
	}

	v.SetEnvPrefix("ADCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		DocumentsDir:  v.GetString("documents_dir"),
		DBPath:        v.GetString("db_path"),
		RulesJSON:     v.GetString("rules_json"),
		ResultsJSON:   v.GetString("results_json"),
		Workers:       v.GetInt("workers"),
		BatchSize:     v.GetInt("batch_size"),
		FlushInterval: v.GetInt("flush_interval"),
		RescanSeconds: v.GetInt("rescan_seconds"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func validate(cfg *Config) error {
	if cfg.DocumentsDir == "" {
		return fmt.Errorf("documents_dir is required")
	}

	if cfg.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}

	if cfg.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}

	if cfg.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be greater than 0")
	}

	if cfg.FlushInterval <= 0 {
		return fmt.Errorf("flush_interval must be greater than 0")
	}

	if cfg.RescanSeconds <= 0 {
		return fmt.Errorf("rescan_seconds must be greater than 0")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	return nil
}
