package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vsinha/nwcorner/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	Color     bool // Style the text report for a terminal
}

// Formats lists every supported output format
var Formats = []string{"text", "json", "csv", "html", "svg"}

// RequiresOutputDir reports whether format only writes files
func RequiresOutputDir(format string) bool {
	switch format {
	case "csv", "html", "svg":
		return true
	default:
		return false
	}
}

// Generate renders result in the configured format. Text and JSON go to w
// unless an output directory is set; the remaining formats always write files.
func Generate(w io.Writer, result *dto.SolveResult, config Config) error {
	if result == nil || result.Solution == nil {
		return fmt.Errorf("no solution to render")
	}

	switch config.Format {
	case "text":
		return generateTextOutput(w, result, config)
	case "json":
		return generateJSONOutput(w, result, config)
	case "csv":
		return generateCSVOutput(w, result, config)
	case "html":
		return generateHTMLOutput(w, result, config)
	case "svg":
		return generateSVGOutput(w, result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(w io.Writer, result *dto.SolveResult, config Config) error {
	if err := writeReport(w, result, newTheme(config.Color)); err != nil {
		return err
	}

	if config.OutputDir == "" {
		return nil
	}

	file, err := createOutputFile(config.OutputDir, "results.txt")
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteReport(file, result); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	if config.Verbose {
		fmt.Fprintf(w, "💾 Results saved to: %s\n", file.Name())
	}
	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(w io.Writer, result *dto.SolveResult, config Config) error {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		_, err := fmt.Fprintln(w, string(jsonData))
		return err
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "solution.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(w, "💾 JSON results saved to: %s\n", filename)
	}
	return nil
}

// createOutputFile creates name inside dir, creating dir first if needed
func createOutputFile(dir, name string) (*os.File, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", name, err)
	}
	return file, nil
}
