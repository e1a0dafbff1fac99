package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vsinha/nwcorner/pkg/application/dto"
	"github.com/vsinha/nwcorner/pkg/application/services"
	"github.com/vsinha/nwcorner/pkg/domain/entities"
	"github.com/vsinha/nwcorner/pkg/domain/repositories"
	"github.com/vsinha/nwcorner/pkg/infrastructure/generator"
	"github.com/vsinha/nwcorner/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/nwcorner/pkg/interfaces/cli/output"
	"github.com/vsinha/nwcorner/pkg/interfaces/cli/playback"
)

// SolveConfig holds configuration for the solve command
type SolveConfig struct {
	Files       []string      `validate:"dive,required"`
	Default     bool          // Solve the built-in three-by-three problem
	Random      bool          // Solve a randomly generated problem
	Seed        int64         // Random seed, 0 picks one from the clock
	Format      string        `validate:"oneof=text json csv html svg"`
	OutputDir   string        // Output directory for results (required for csv, html and svg)
	Animate     bool          // Reveal the steps one by one before the final report
	Interval    time.Duration `validate:"gte=0"`
	ForcePace   bool          // Pace playback even when stdout is not a terminal
	Concurrency int           `validate:"gte=0"`
	LogFormat   string        `validate:"oneof=text json"`
	Verbose     bool
}

// DefaultSolveConfig returns the flag defaults
func DefaultSolveConfig() SolveConfig {
	return SolveConfig{
		Format:    "text",
		Interval:  playback.DefaultInterval,
		LogFormat: "text",
	}
}

// Validate checks field constraints and that exactly one problem source is chosen
func (c SolveConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	sources := 0
	if len(c.Files) > 0 {
		sources++
	}
	if c.Default {
		sources++
	}
	if c.Random {
		sources++
	}
	if sources > 1 {
		return fmt.Errorf("choose only one of --file, --default or --random")
	}

	if output.RequiresOutputDir(c.Format) && c.OutputDir == "" {
		return fmt.Errorf("--output is required for %s format", c.Format)
	}
	return nil
}

// SolveCommand loads problems, solves them and renders the results
type SolveCommand struct {
	config SolveConfig
	out    io.Writer
	errOut io.Writer
}

// NewSolveCommand creates a new solve command writing to out and logging to errOut
func NewSolveCommand(config SolveConfig, out, errOut io.Writer) *SolveCommand {
	return &SolveCommand{
		config: config,
		out:    out,
		errOut: errOut,
	}
}

func newSolveCobraCommand() *cobra.Command {
	config := DefaultSolveConfig()

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one or more transportation problems",
		Long: `Solve transportation problems by the North-West Corner method.

Problems come from CSV or YAML files (--file, repeatable), the built-in
three-by-three problem (--default, used when no source is given) or a random
problem (--random).`,
		Example: `  nwcorner solve --default
  nwcorner solve --file problem.csv --animate --interval 500ms
  nwcorner solve --file a.csv --file b.yaml --format csv --output results
  nwcorner solve --random --seed 42 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.ForcePace = cmd.Flags().Changed("interval")
			return NewSolveCommand(config, cmd.OutOrStdout(), cmd.ErrOrStderr()).Execute(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&config.Files, "file", "f", nil, "Problem file (.csv, .yaml or .yml); repeatable")
	flags.BoolVar(&config.Default, "default", false, "Solve the built-in example problem")
	flags.BoolVar(&config.Random, "random", false, "Solve a randomly generated problem")
	flags.Int64Var(&config.Seed, "seed", 0, "Random seed for --random (0 = time based)")
	flags.StringVar(&config.Format, "format", config.Format, "Output format: text, json, csv, html, svg")
	flags.StringVarP(&config.OutputDir, "output", "o", "", "Output directory for results")
	flags.BoolVar(&config.Animate, "animate", false, "Reveal allocation steps one at a time")
	flags.DurationVar(&config.Interval, "interval", config.Interval, "Delay between animated steps")
	flags.IntVar(&config.Concurrency, "concurrency", 0, "Maximum problems solved in parallel (0 = GOMAXPROCS)")
	flags.StringVar(&config.LogFormat, "log-format", config.LogFormat, "Log format: text or json")
	flags.BoolVarP(&config.Verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

// Execute runs the solve command
func (c *SolveCommand) Execute(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := c.config.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if err := setupLogging(c.config.Verbose, c.config.LogFormat, c.errOut); err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Fprintln(c.out, "📂 Loading problems...")
	}
	repo, err := c.loadProblems()
	if err != nil {
		return err
	}

	problems, err := repo.GetAllProblems()
	if err != nil {
		return fmt.Errorf("failed to list problems: %w", err)
	}
	if c.config.Verbose {
		fmt.Fprintf(c.out, "✅ Loaded %d problem(s)\n", len(problems))
		for _, np := range problems {
			fmt.Fprintf(c.out, "  %s: %d suppliers, %d consumers\n",
				np.Name, np.Problem.Suppliers(), np.Problem.Consumers())
		}
		fmt.Fprintln(c.out, "🔄 Running North-West Corner allocation...")
	}

	service := services.NewTransportServiceWithConfig(
		services.ServiceConfig{MaxConcurrency: c.config.Concurrency}, nil)
	results, err := service.SolveAll(ctx, repo)
	if err != nil {
		return err
	}

	for _, result := range results {
		if c.config.Animate {
			if err := c.animate(ctx, result); err != nil {
				return err
			}
		}

		config := output.Config{
			Format:    c.config.Format,
			OutputDir: c.outputDirFor(result, len(results)),
			Verbose:   c.config.Verbose,
			Color:     isTerminal(c.out),
		}
		if err := output.Generate(c.out, result, config); err != nil {
			return fmt.Errorf("failed to write results for %s: %w", result.Name, err)
		}
	}

	return nil
}

// loadProblems fills an in-memory repository from the configured source
func (c *SolveCommand) loadProblems() (repositories.ProblemRepository, error) {
	repo := memory.NewProblemRepository(max(1, len(c.config.Files)))

	switch {
	case len(c.config.Files) > 0:
		for _, path := range c.config.Files {
			p, err := LoadProblemFile(path)
			if err != nil {
				return nil, fmt.Errorf("error loading problem: %w", err)
			}
			if err := repo.SaveProblem(problemName(path), *p); err != nil {
				return nil, fmt.Errorf("failed to store problem %s: %w", path, err)
			}
		}

	case c.config.Random:
		genConfig := generator.DefaultConfig()
		genConfig.Seed = c.config.Seed
		if err := repo.SaveProblem("random", generator.New(genConfig).Generate()); err != nil {
			return nil, err
		}

	default:
		if err := repo.SaveProblem("default", entities.DefaultProblem()); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

// animate reveals the steps of result. Pacing only applies on a terminal
// unless an interval was given explicitly.
func (c *SolveCommand) animate(ctx context.Context, result *dto.SolveResult) error {
	interval := c.config.Interval
	if !c.config.ForcePace && !isTerminal(c.out) {
		interval = 0
	}

	solution := result.Solution
	fmt.Fprintf(c.out, "▶️  %s: %d step(s)\n\n", result.Name, solution.StepCount())
	if note := output.FictitiousNote(solution.Fictitious); note != "" {
		fmt.Fprintf(c.out, "⚠️  %s\n\n", note)
	}

	player := playback.NewPlayer(interval)
	return player.Play(ctx, solution.Steps, func(i int, step entities.Step) error {
		return output.RenderStep(c.out, solution.Problem, i, step)
	})
}

// outputDirFor gives every result its own subdirectory when several are written
func (c *SolveCommand) outputDirFor(result *dto.SolveResult, count int) string {
	if c.config.OutputDir == "" || count == 1 {
		return c.config.OutputDir
	}
	return filepath.Join(c.config.OutputDir, sanitizeName(result.Name))
}

func sanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == os.PathSeparator || r == '/' || r == ':' {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		return "problem"
	}
	return name
}
