package models

// Config represents the complete configuration for filestats
type Config struct {
	Reader ReaderConfig `yaml:"reader"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// ReaderConfig contains source reading settings
type ReaderConfig struct {
	ChunkSize string `yaml:"chunk_size"` // e.g. "64KB"
	Encoding  string `yaml:"encoding"`
}

// OutputConfig contains report settings
type OutputConfig struct {
	Format OutputFormat `yaml:"format"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// OutputFormat is the presentation of the computed statistics
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Valid reports whether f is a known format
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// CLIOptions contains command-line options
type CLIOptions struct {
	ChunkSize  string
	Encoding   string
	Format     string
	ConfigFile string
	Verbose    bool
	Quiet      bool
}
