package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
	"github.com/vsinha/nwcorner/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/nwcorner/pkg/infrastructure/repositories/yaml"
	"github.com/vsinha/nwcorner/pkg/logging"
)

var validate = validator.New()

// NewRootCommand builds the nwcorner command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "nwcorner",
		Short: "Initial transportation plans by the North-West Corner method",
		Long: `nwcorner builds an initial basic feasible plan for a transportation problem.

Unbalanced problems are balanced with a zero-cost fictitious supplier or
consumer, then the allocation walks from the top-left route to the bottom-right
one, recording every step and the running cost.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSolveCobraCommand())
	root.AddCommand(newGenerateCobraCommand())
	root.AddCommand(newEditCobraCommand())
	return root
}

// LoadProblemFile reads a problem from a .csv, .yaml or .yml file
func LoadProblemFile(path string) (*entities.Problem, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return csv.NewLoader().LoadProblem(path)
	case ".yaml", ".yml":
		return yaml.NewLoader().LoadProblem(path)
	default:
		return nil, fmt.Errorf("unsupported problem file %s (expected .csv, .yaml or .yml)", path)
	}
}

// WriteProblemFile writes p to path as CSV or YAML
func WriteProblemFile(path, format string, p entities.Problem) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	switch format {
	case "yaml":
		err = yaml.WriteProblem(file, p)
	default:
		err = csv.NewWriter().WriteProblem(file, p)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// formatForPath picks yaml for .yaml/.yml paths and csv otherwise
func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "csv"
	}
}

// problemName derives a problem name from its file path
func problemName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// setupLogging installs a logger on stderr: debug level when verbose, warnings otherwise
func setupLogging(verbose bool, format string, w io.Writer) error {
	level := "warn"
	if verbose {
		level = "debug"
	}

	logger, err := logging.New(logging.Config{Level: level, Format: format, Writer: w})
	if err != nil {
		return err
	}
	logging.SetLogger(logger)
	return nil
}
