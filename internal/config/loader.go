package config

import (
	"fmt"
	"os"

	"filestats/pkg/logger"
	"filestats/pkg/models"
	"filestats/pkg/stats"
	"filestats/pkg/utils"

	"gopkg.in/yaml.v3"
)

// MaxChunkSize bounds the configured chunk size
const MaxChunkSize = 64 * 1024 * 1024

// Loader handles configuration loading and validation
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadConfig loads configuration from file or returns default config.
// A config file that does not exist is not an error.
func (l *Loader) LoadConfig(configFile string) (*models.Config, error) {
	config := l.getDefaultConfig()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			data, err := os.ReadFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	return config, nil
}

// getDefaultConfig returns the default configuration
func (l *Loader) getDefaultConfig() *models.Config {
	return &models.Config{
		Reader: models.ReaderConfig{
			ChunkSize: "64KB",
			Encoding:  stats.DefaultEncoding,
		},
		Output: models.OutputConfig{
			Format: models.FormatText,
		},
		Log: models.LogConfig{
			Level: "warn",
		},
	}
}

// OverrideWithFlags overrides config values with command line flags
func (l *Loader) OverrideWithFlags(config *models.Config, flags *models.CLIOptions) error {
	if flags.ChunkSize != "" {
		config.Reader.ChunkSize = flags.ChunkSize
	}

	if flags.Encoding != "" {
		config.Reader.Encoding = flags.Encoding
	}

	if flags.Format != "" {
		config.Output.Format = models.OutputFormat(flags.Format)
	}

	if flags.Quiet {
		config.Log.Level = "error"
	} else if flags.Verbose {
		config.Log.Level = "debug"
	}

	return nil
}

// ValidateConfig validates the configuration
func (l *Loader) ValidateConfig(config *models.Config) error {
	if _, err := ChunkSizeBytes(config); err != nil {
		return err
	}

	if _, err := stats.LookupEncoding(config.Reader.Encoding); err != nil {
		return fmt.Errorf("invalid encoding: %w", err)
	}

	if !config.Output.Format.Valid() {
		return fmt.Errorf("invalid output format %q (valid: text, json, yaml)", config.Output.Format)
	}

	if config.Log.Level != "" && !logger.ValidLevel(config.Log.Level) {
		return fmt.Errorf("invalid log level %q", config.Log.Level)
	}

	return nil
}

// ChunkSizeBytes returns the configured chunk size in bytes
func ChunkSizeBytes(config *models.Config) (int, error) {
	size, err := utils.ParseSize(config.Reader.ChunkSize)
	if err != nil {
		return 0, fmt.Errorf("invalid chunk_size: %w", err)
	}
	if size <= 0 || size > MaxChunkSize {
		return 0, fmt.Errorf("invalid chunk_size: %s must be between 1B and %s", config.Reader.ChunkSize, utils.FormatBytes(MaxChunkSize))
	}
	return int(size), nil
}
