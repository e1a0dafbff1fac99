package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vsinha/nwcorner/pkg/domain/entities"
	"github.com/vsinha/nwcorner/pkg/infrastructure/generator"
)

// GenerateConfig holds configuration for problem generation
type GenerateConfig struct {
	Output    string `validate:"required"`                 // Problem file to write
	Format    string `validate:"omitempty,oneof=csv yaml"` // Empty picks the format from the file extension
	Seed      int64  // Random seed for reproducible generation
	Suppliers int    `validate:"gte=0,lte=10"` // Fixed supplier count, 0 = random
	Consumers int    `validate:"gte=0,lte=10"` // Fixed consumer count, 0 = random
	Verbose   bool   // Verbose output
}

// GenerateCommand writes a random problem file
type GenerateCommand struct {
	config GenerateConfig
	out    io.Writer
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(config GenerateConfig, out io.Writer) *GenerateCommand {
	if config.Format == "" {
		config.Format = formatForPath(config.Output)
	}
	return &GenerateCommand{
		config: config,
		out:    out,
	}
}

func newGenerateCobraCommand() *cobra.Command {
	var config GenerateConfig

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random transportation problem to a file",
		Example: `  nwcorner generate --output problem.csv --seed 42
  nwcorner generate --output problem.yaml --suppliers 4 --consumers 6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewGenerateCommand(config, cmd.OutOrStdout()).Execute(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&config.Output, "output", "o", "", "Problem file to write")
	flags.StringVar(&config.Format, "format", "", "File format: csv or yaml (default from extension)")
	flags.Int64Var(&config.Seed, "seed", 0, "Random seed for reproducible generation (0 = time based)")
	flags.IntVar(&config.Suppliers, "suppliers", 0, "Number of suppliers (0 = random 2-5)")
	flags.IntVar(&config.Consumers, "consumers", 0, "Number of consumers (0 = random 2-5)")
	flags.BoolVarP(&config.Verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if err := validate.Struct(cmd.config); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	genConfig := generator.DefaultConfig()
	genConfig.Seed = cmd.config.Seed
	if cmd.config.Suppliers > 0 {
		genConfig.MinSuppliers, genConfig.MaxSuppliers = cmd.config.Suppliers, cmd.config.Suppliers
	}
	if cmd.config.Consumers > 0 {
		genConfig.MinConsumers, genConfig.MaxConsumers = cmd.config.Consumers, cmd.config.Consumers
	}
	if err := genConfig.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Fprintf(cmd.out, "🔧 Generating problem (seed %d)\n", cmd.config.Seed)
	}

	p := generator.New(genConfig).Generate()
	if err := WriteProblemFile(cmd.config.Output, cmd.config.Format, p); err != nil {
		return err
	}

	if cmd.config.Verbose {
		cmd.printSummary(p)
	}
	return nil
}

func (cmd *GenerateCommand) printSummary(p entities.Problem) {
	fmt.Fprintf(cmd.out, "✅ Problem written to %s\n", cmd.config.Output)
	fmt.Fprintf(cmd.out, "  Suppliers: %d (total supply %s)\n", p.Suppliers(), p.Supply.Total())
	fmt.Fprintf(cmd.out, "  Consumers: %d (total demand %s)\n", p.Consumers(), p.Demand.Total())
}
