package cmd

import (
	"fmt"
	"strings"

	"filestats/internal/config"
	"filestats/internal/source"
	"filestats/pkg/logger"
	"filestats/pkg/models"
	"filestats/pkg/stats"

	"github.com/spf13/cobra"
)

var (
	// Version information
	Version = "0.1.0"

	// CLI flags
	chunkSize  string
	encoding   string
	format     string
	configFile string
	verbose    bool
	quiet      bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "filestats <path>",
	Short:   "Print character, line, space, tab, word and special character counts of a file",
	Version: Version,
	Long: `filestats reads a text file once, front to back, in fixed-size chunks and prints
the number of characters, lines, spaces, tabs, words and special characters it contains.

Memory use depends on the chunk size only, not on the size of the file.

Definitions:
  - characters are Unicode code points
  - a line ends at \n, \r or \r\n; a last line without terminator also counts
  - a word is a run of letters and digits
  - special characters are neither whitespace nor letters or digits

Examples:
  filestats notes.txt
  filestats notes.txt --format json
  filestats legacy.txt --encoding latin-1
  filestats huge.log --chunk-size 1MB -v
  filestats notes.txt --config .filestats.yml`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runStats,
}

func init() {
	RootCmd.Flags().StringVar(&chunkSize, "chunk-size", "", "Bytes read per chunk, e.g. 64KB (default from config: 64KB)")
	RootCmd.Flags().StringVar(&encoding, "encoding", "", fmt.Sprintf("Text encoding of the file (%s)", strings.Join(stats.EncodingNames(), ", ")))
	RootCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json or yaml")
	RootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	RootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	RootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
}

// runStats executes the root command
func runStats(cmd *cobra.Command, args []string) error {
	cliOptions := &models.CLIOptions{
		ChunkSize:  chunkSize,
		Encoding:   encoding,
		Format:     format,
		ConfigFile: configFile,
		Verbose:    verbose,
		Quiet:      quiet,
	}

	cfg, err := loadConfig(cliOptions)
	if err != nil {
		logger.Logger.WithError(err).Debug("Configuration failed")
		return err
	}
	logger.SetLevel(cfg.Log.Level)

	orchestrator := NewOrchestrator(cfg, source.NewOSOpener())
	return orchestrator.Process(cmd.Context(), args[0], cmd.OutOrStdout())
}

// loadConfig loads the config file, applies flags and validates the result
func loadConfig(cliOptions *models.CLIOptions) (*models.Config, error) {
	configLoader := config.NewLoader()

	cfg, err := configLoader.LoadConfig(cliOptions.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := configLoader.OverrideWithFlags(cfg, cliOptions); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}

	if err := configLoader.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
