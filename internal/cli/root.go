// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamalhansen/quill/internal/config"
	"github.com/jamalhansen/quill/internal/ui"
)

var (
	// Global flags
	configPath string

	// Resolved values
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Quill - frontmatter enrichment for markdown notes",
	Long: `Quill fills in the metadata block of markdown notes: a creation date
taken from the file itself, a title derived from the filename, and a short
generated description. Existing values are never touched, so running it
again over an enriched directory is a no-op.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}

		ui.DisableStylesIfNotTTY()

		var err error
		cfg, err = config.LoadFrom(config.ResolveConfigPath(configPath))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}
