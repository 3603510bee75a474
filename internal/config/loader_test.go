package config

import (
	"os"
	"path/filepath"
	"testing"

	"filestats/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
}

func TestLoader_LoadConfig(t *testing.T) {
	loader := NewLoader()

	t.Run("should load default config when no file specified", func(t *testing.T) {
		config, err := loader.LoadConfig("")
		require.NoError(t, err)
		assert.NotNil(t, config)

		assert.Equal(t, "64KB", config.Reader.ChunkSize)
		assert.Equal(t, "utf-8", config.Reader.Encoding)
		assert.Equal(t, models.FormatText, config.Output.Format)
		assert.Equal(t, "warn", config.Log.Level)
	})

	t.Run("should use default config when file does not exist", func(t *testing.T) {
		config, err := loader.LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yml"))
		require.NoError(t, err)
		assert.Equal(t, "64KB", config.Reader.ChunkSize)
	})

	t.Run("should load config from valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "filestats.yml")
		configContent := `
reader:
  chunk_size: "4KB"
  encoding: "utf-16le"
output:
  format: yaml
`
		require.NoError(t, os.WriteFile(path, []byte(configContent), 0o644))

		config, err := loader.LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "4KB", config.Reader.ChunkSize)
		assert.Equal(t, "utf-16le", config.Reader.Encoding)
		assert.Equal(t, models.FormatYAML, config.Output.Format)
		// keys absent from the file keep their defaults
		assert.Equal(t, "warn", config.Log.Level)
	})

	t.Run("should error on invalid YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yml")
		require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o644))

		_, err := loader.LoadConfig(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestLoader_OverrideWithFlags(t *testing.T) {
	loader := NewLoader()

	t.Run("should override config with CLI options", func(t *testing.T) {
		config := loader.getDefaultConfig()

		cliOptions := &models.CLIOptions{
			ChunkSize: "1B",
			Encoding:  "latin-1",
			Format:    "json",
			Verbose:   true,
		}

		err := loader.OverrideWithFlags(config, cliOptions)
		require.NoError(t, err)

		assert.Equal(t, "1B", config.Reader.ChunkSize)
		assert.Equal(t, "latin-1", config.Reader.Encoding)
		assert.Equal(t, models.FormatJSON, config.Output.Format)
		assert.Equal(t, "debug", config.Log.Level)
	})

	t.Run("should prefer quiet over verbose", func(t *testing.T) {
		config := loader.getDefaultConfig()

		err := loader.OverrideWithFlags(config, &models.CLIOptions{Verbose: true, Quiet: true})
		require.NoError(t, err)

		assert.Equal(t, "error", config.Log.Level)
	})

	t.Run("should not override empty CLI options", func(t *testing.T) {
		config := loader.getDefaultConfig()

		err := loader.OverrideWithFlags(config, &models.CLIOptions{})
		require.NoError(t, err)

		assert.Equal(t, "64KB", config.Reader.ChunkSize)
		assert.Equal(t, "utf-8", config.Reader.Encoding)
		assert.Equal(t, models.FormatText, config.Output.Format)
		assert.Equal(t, "warn", config.Log.Level)
	})
}

func TestLoader_ValidateConfig(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name     string
		mutate   func(*models.Config)
		errorMsg string
	}{
		{
			name:   "should validate default config",
			mutate: func(*models.Config) {},
		},
		{
			name:   "should accept a one byte chunk",
			mutate: func(c *models.Config) { c.Reader.ChunkSize = "1" },
		},
		{
			name:     "should error on invalid chunk size",
			mutate:   func(c *models.Config) { c.Reader.ChunkSize = "lots" },
			errorMsg: "invalid chunk_size",
		},
		{
			name:     "should error on zero chunk size",
			mutate:   func(c *models.Config) { c.Reader.ChunkSize = "0KB" },
			errorMsg: "invalid chunk_size",
		},
		{
			name:     "should error on oversized chunk",
			mutate:   func(c *models.Config) { c.Reader.ChunkSize = "1GB" },
			errorMsg: "invalid chunk_size",
		},
		{
			name:     "should error on unknown encoding",
			mutate:   func(c *models.Config) { c.Reader.Encoding = "ebcdic" },
			errorMsg: "invalid encoding",
		},
		{
			name:     "should error on unknown format",
			mutate:   func(c *models.Config) { c.Output.Format = "xml" },
			errorMsg: "invalid output format",
		},
		{
			name:     "should error on unknown log level",
			mutate:   func(c *models.Config) { c.Log.Level = "trace" },
			errorMsg: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := loader.getDefaultConfig()
			tt.mutate(config)

			err := loader.ValidateConfig(config)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestChunkSizeBytes(t *testing.T) {
	size, err := ChunkSizeBytes(&models.Config{Reader: models.ReaderConfig{ChunkSize: "64KB"}})
	require.NoError(t, err)
	assert.Equal(t, 65536, size)
}
