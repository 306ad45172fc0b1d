package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"github.com/jamalhansen/quill/internal/config"
	"github.com/jamalhansen/quill/internal/generate"
	"github.com/jamalhansen/quill/internal/notes"
	"github.com/jamalhansen/quill/internal/runner"
	"github.com/jamalhansen/quill/internal/ui"
)

var (
	enrichDir     string
	enrichPattern string
	enrichWorkers int
	enrichDryRun  bool
)

var enrichCmd = &cobra.Command{
	Use:   "enrich [directory]",
	Short: "Fill in missing frontmatter across a notes directory",
	Long: `Process every note file in a directory: parse its frontmatter, fill in
missing Created, Title, and Description fields, and rewrite the file in
place. Files that are already fully enriched are left untouched.

The directory argument falls back to default_directory from the config.

Examples:
  quill enrich ~/vaults/pytexas
  quill enrich --dry-run ~/notes        # Report changes without writing
  quill enrich --pattern '**/*.md' ~/notes
  quill enrich --workers 4 --json ~/notes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEnrich,
}

func runEnrich(cmd *cobra.Command, args []string) error {
	cfg := getConfig()

	// Precedence: --dir flag, positional argument, config default.
	dir := cfg.DefaultDirectory
	if len(args) > 0 {
		dir = args[0]
	}
	if enrichDir != "" {
		dir = enrichDir
	}
	if dir == "" {
		return handleError(ErrConfigInvalid,
			errors.New("no directory given"),
			"Pass a directory argument or set default_directory in the config")
	}
	dir = config.ExpandPath(dir)

	pattern := cfg.Pattern
	if cmd.Flags().Changed("pattern") {
		pattern = enrichPattern
	}
	workers := cfg.Workers
	if cmd.Flags().Changed("workers") {
		workers = enrichWorkers
	}

	describer, err := buildDescriber(cfg.Generator, enrichDryRun)
	if err != nil {
		return handleError(ErrGeneratorError, err,
			"Check the [generator] section of the config")
	}

	summary, err := runner.Run(cmd.Context(), runner.Options{
		Dir:       dir,
		Pattern:   pattern,
		Workers:   workers,
		DryRun:    enrichDryRun,
		Describer: describer,
	})
	if err != nil {
		switch {
		case errors.Is(err, notes.ErrNotFound):
			return handleError(ErrDirNotFound, err, "Check the directory path")
		case errors.Is(err, notes.ErrNotADirectory):
			return handleError(ErrNotADirectory, err, "The target must be a directory of note files")
		default:
			return handleError(ErrInternal, err, "")
		}
	}

	if isJSONOutput() {
		return outputEnrichSummary(summary)
	}

	for _, r := range summary.Results {
		switch {
		case r.Err != nil:
			fmt.Println(ui.Errorf("%s: %v", ui.FilePath(r.Path), r.Err))
		case r.Changed && enrichDryRun:
			fmt.Println(ui.Successf("%s %s", ui.FilePath(r.Path), ui.Hint("(would update)")))
		case r.Changed:
			fmt.Println(ui.Successf("%s", ui.FilePath(r.Path)))
		default:
			fmt.Println(ui.Hint(fmt.Sprintf("  %s (up to date)", r.Path)))
		}
	}
	fmt.Println()
	fmt.Printf("%d processed, %d updated, %d failed\n",
		len(summary.Results), summary.Changed(), summary.Failed())

	if summary.Failed() > 0 {
		return fmt.Errorf("%d file(s) failed", summary.Failed())
	}
	return nil
}

// buildDescriber picks the generation backend. Dry runs use the static
// backend so no generation calls are made.
func buildDescriber(gc config.GeneratorConfig, dryRun bool) (generate.Describer, error) {
	if dryRun {
		return generate.Static{Description: "(pending)"}, nil
	}
	return generate.New(generate.Options{
		Provider:    gc.Provider,
		Model:       gc.Model,
		APIKey:      gc.APIKey,
		BaseURL:     gc.BaseURL,
		Timeout:     time.Duration(gc.TimeoutSecs) * time.Second,
		MaxTokens:   gc.MaxTokens,
		Temperature: gc.Temperature,
	})
}

// fileResultJSON is the per-file entry in the JSON envelope.
type fileResultJSON struct {
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

func outputEnrichSummary(summary *runner.Summary) error {
	files := make([]fileResultJSON, 0, len(summary.Results))
	for _, r := range summary.Results {
		entry := fileResultJSON{Path: r.Path, Changed: r.Changed}
		if r.Err != nil {
			entry.Error = r.Err.Error()
			entry.Code = fileErrorCode(r.Err)
		}
		files = append(files, entry)
	}
	outputSuccess(map[string]interface{}{
		"files":   files,
		"updated": summary.Changed(),
		"failed":  summary.Failed(),
		"dry_run": enrichDryRun,
	}, &Meta{Count: len(files)})
	return nil
}

// fileErrorCode classifies a per-file error into a stable code.
func fileErrorCode(err error) string {
	var we *runner.WriteError
	switch {
	case errors.As(err, &we):
		return ErrFileWriteError
	case errors.Is(err, fs.ErrNotExist):
		return ErrFileNotFound
	case generate.IsGenerationError(err):
		return ErrGenerationFailed
	default:
		return ErrInternal
	}
}

func init() {
	enrichCmd.Flags().StringVar(&enrichDir, "dir", "", "Notes directory (overrides the positional argument)")
	enrichCmd.Flags().StringVar(&enrichPattern, "pattern", notes.DefaultPattern, "Glob pattern for note files")
	enrichCmd.Flags().IntVar(&enrichWorkers, "workers", 1, "Number of files to process concurrently")
	enrichCmd.Flags().BoolVar(&enrichDryRun, "dry-run", false, "Report what would change without writing")
	rootCmd.AddCommand(enrichCmd)
}
